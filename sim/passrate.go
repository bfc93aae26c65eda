// Built-in performance models. PassRateModel is the default: it fits a
// per-course grade prior from whatever grade history the curriculum
// carries and draws stochastic grades around it. FixedGradeModel backs
// tests and deterministic scenario replays.

package sim

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
)

// GradeCeiling caps predicted grades; 4.33 corresponds to an A+.
const GradeCeiling = 4.33

// PassRateModel is the default PerformanceModel. Training derives a prior
// mean grade per course: the mean of the course's recorded grade history
// when present, the configured MeanGrade otherwise. Prediction draws from
// a normal around the prior, clamped to [0, GradeCeiling]; stopout is a
// per-term Bernoulli draw.
type PassRateModel struct {
	Config PassRateConfig

	rng     *PartitionedRNG
	priors  map[int]float64 // course id -> prior mean grade
	trained bool
}

// NewPassRateModel creates an untrained model. The RNG is shared with the
// simulator so a single seed pins the whole run.
func NewPassRateModel(cfg PassRateConfig, rng *PartitionedRNG) *PassRateModel {
	return &PassRateModel{
		Config: cfg,
		rng:    rng,
		priors: make(map[int]float64),
	}
}

func (m *PassRateModel) Train(c *Curriculum) error {
	if c == nil || c.NumCourses() == 0 {
		return errors.New("passrate: cannot train on an empty curriculum")
	}
	for _, course := range c.Courses {
		prior := m.Config.MeanGrade
		if n := len(course.Counters.Grades); n > 0 {
			sum := 0.0
			for _, g := range course.Counters.Grades {
				sum += g
			}
			prior = sum / float64(n)
		}
		m.priors[course.Id] = prior
		logrus.Debugf("passrate: course %q prior %.2f", course.DisplayName(), prior)
	}
	m.trained = true
	return nil
}

func (m *PassRateModel) PredictGrade(course *Course, s *Student) float64 {
	prior, ok := m.priors[course.Id]
	if !ok {
		prior = m.Config.MeanGrade
	}
	grade := prior + m.rng.ForSubsystem(SubsystemGrades).NormFloat64()*m.Config.GradeStdDev
	return math.Min(math.Max(grade, 0), GradeCeiling)
}

func (m *PassRateModel) PredictStopout(s *Student, term int) bool {
	if m.Config.StopoutRate <= 0 {
		return false
	}
	return m.rng.ForSubsystem(SubsystemStopout).Float64() < m.Config.StopoutRate
}

// FixedGradeModel returns the same grade for every prediction and never
// stops a student out. Useful for deterministic scenarios.
type FixedGradeModel struct {
	Grade float64
}

func (m *FixedGradeModel) Train(c *Curriculum) error { return nil }

func (m *FixedGradeModel) PredictGrade(course *Course, s *Student) float64 {
	return m.Grade
}

func (m *FixedGradeModel) PredictStopout(s *Student, term int) bool { return false }
