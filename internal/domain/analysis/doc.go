// Package analysis implements exam-performance analysis: net scoring,
// per-topic weakness scoring and ranking, weekly study roadmaps and the
// comparison of two exam snapshots. Everything here is pure computation over
// in-memory attempts; policy constants are carried by Config.
package analysis
