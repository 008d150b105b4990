// Package service contains the application-specific use cases. Its
// subpackages orchestrate the pure domain packages (analysis, srs) and the
// repositories defined in internal/store:
//
//   - review: per-topic spaced-repetition updates under a row lock
//   - performance: storing exam sittings and analyzing, planning and
//     comparing them
//   - auth: access token issuing and validation
//
// Services receive dependencies through constructor injection and never
// depend on a specific storage implementation.
package service
