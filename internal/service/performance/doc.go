// Package performance stores exam sittings and serves their analysis,
// study roadmap and progress comparison for the owning user.
package performance
