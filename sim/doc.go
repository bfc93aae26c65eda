// Package sim provides the core term-by-term curriculum simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - curriculum.go: Course, Curriculum, and DegreePlan inputs
//   - state.go: the engine-owned progress/attempt matrices and the
//     enrolled -> graduated/stopout population partition
//   - simulator.go: the term loop (enroll, grade, graduate, stop out, terminate)
//
// # Architecture
//
// The sim package defines the engine and the two model ports; concrete
// inputs are built elsewhere:
//   - sim/csvio/: curriculum and degree-plan loading from CSV
//   - cmd/: CLI flag surface and YAML scenario presets
//
// # Key Interfaces
//
// The extension points are two small interfaces (models.go):
//   - PerformanceModel: trains on a curriculum, predicts a grade per
//     student/course pair and a stopout decision per student/term
//   - EnrollmentModel: fills course rosters each term, constrained by
//     CanEnroll and the per-term credit cap
//
// Built-in implementations are PassRateModel and GreedyEnrollment.
package sim
