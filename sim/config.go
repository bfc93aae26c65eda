package sim

// SimConfig groups the engine parameters for NewSimulator.
type SimConfig struct {
	NumStudents  int     // cohort size (must be > 0)
	MaxCredits   float64 // per-term credit cap (default 18)
	Duration     int     // maximum terms to simulate (default 8)
	DurationLock bool    // run the full duration even after all students resolve
	Stopouts     bool    // enable stopout modeling
}

// NewSimConfig builds a SimConfig from individual values.
func NewSimConfig(numStudents int, maxCredits float64, duration int, durationLock bool, stopouts bool) SimConfig {
	return SimConfig{
		NumStudents:  numStudents,
		MaxCredits:   maxCredits,
		Duration:     duration,
		DurationLock: durationLock,
		Stopouts:     stopouts,
	}
}

// PassRateConfig groups the built-in performance model parameters.
type PassRateConfig struct {
	MeanGrade   float64 // prior mean grade for courses without history (default 3.0)
	GradeStdDev float64 // spread of grade draws around the course prior (default 0.75)
	StopoutRate float64 // per-term Bernoulli stopout probability (default 0.0)
}

// NewPassRateConfig builds a PassRateConfig from individual values.
func NewPassRateConfig(meanGrade, gradeStdDev, stopoutRate float64) PassRateConfig {
	return PassRateConfig{
		MeanGrade:   meanGrade,
		GradeStdDev: gradeStdDev,
		StopoutRate: stopoutRate,
	}
}
