// The two model ports of the engine. The simulator depends only on these
// interfaces; concrete implementations (built-in or caller-supplied) are
// injected through NewSimulator.

package sim

// PerformanceModel predicts academic outcomes. Train is called exactly
// once, before the first term; a training error aborts the run.
type PerformanceModel interface {
	// Train fits the model on the curriculum. Must be called before any
	// prediction; an error is fatal to the run.
	Train(c *Curriculum) error

	// PredictGrade returns a grade on the 0.0-4.0+ scale for the
	// student/course pair. May be deterministic or stochastic.
	PredictGrade(course *Course, s *Student) float64

	// PredictStopout reports whether the student leaves the program at
	// the end of the given term. Only consulted when stopout modeling is
	// enabled.
	PredictStopout(s *Student, term int) bool
}

// EnrollmentModel fills course rosters for one term. Implementations may
// only create pairings for which CanEnroll holds and must respect the
// per-term credit cap; the engine does not re-validate.
type EnrollmentModel interface {
	Enroll(term int, st *SimulationState, maxCredits float64)
}
