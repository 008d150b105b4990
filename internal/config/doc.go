// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config.yaml and YON_-prefixed environment
// variables. The analysis and srs groups carry the scoring policy so it can be
// tuned per deployment without code changes.
package config
