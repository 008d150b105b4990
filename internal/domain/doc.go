// Package domain contains the core business entities, value objects, and
// domain errors of the exam-preparation backend: question attempts, exam
// records and the per-topic spaced repetition state. It is independent of any
// storage or delivery mechanism; the algorithms operating on these types live
// in the analysis and srs subpackages.
package domain
