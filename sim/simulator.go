// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// PassThreshold is the minimum grade counted as passing a course: strictly
// above 1.67, the C-minus boundary.
const PassThreshold = 1.67

// Simulator is the core object that holds the term loop, the model ports,
// and the run's mutable state.
type Simulator struct {
	Plan        *DegreePlan
	Performance PerformanceModel
	Enrollment  EnrollmentModel
	Config      SimConfig

	State  *SimulationState
	Result *SimulationResult

	// running total of graduation terms, folded into AvgTimeToDegree
	gradTermTotal int
}

// NewSimulator wires a degree plan, the two models, and the engine config
// into a runnable simulator. State is created fresh here; course counters
// are reset so nothing leaks between runs on a shared curriculum.
func NewSimulator(plan *DegreePlan, performance PerformanceModel, enrollment EnrollmentModel, cfg SimConfig) *Simulator {
	plan.Curriculum.ResetCounters()
	return &Simulator{
		Plan:        plan,
		Performance: performance,
		Enrollment:  enrollment,
		Config:      cfg,
		State:       NewSimulationState(plan, cfg.NumStudents),
		Result:      &SimulationResult{},
	}
}

// Run executes the full simulation and returns the aggregated result.
// Training failure aborts before the first term; there is no partial
// result on error.
func (sim *Simulator) Run() (*SimulationResult, error) {
	if err := sim.Performance.Train(sim.Plan.Curriculum); err != nil {
		return nil, fmt.Errorf("performance model training failed: %w", err)
	}

	duration := sim.Config.Duration
	for term := 1; term <= sim.Config.Duration; term++ {
		sim.runTerm(term)

		logrus.Infof("[term %02d] enrolled=%d graduated=%d stopouts=%d",
			term, len(sim.State.Enrolled), len(sim.State.Graduated), len(sim.State.Stopouts))

		if len(sim.State.Enrolled) == 0 && !sim.Config.DurationLock {
			duration = term
			break
		}
	}

	sim.finalize(duration)
	return sim.Result, nil
}

// runTerm advances the simulation by one term: enrollment, grading, GPA
// recomputation, graduation, stopout, and rate bookkeeping.
func (sim *Simulator) runTerm(term int) {
	st := sim.State

	// Rosters are per-term; clear them before the enrollment model runs.
	for _, c := range sim.Plan.Curriculum.Courses {
		c.ClearRoster()
	}
	sim.Enrollment.Enroll(term, st, sim.Config.MaxCredits)

	sim.gradeEnrollments(term)
	sim.recomputeGPA()
	sim.checkGraduation(term)
	if sim.Config.Stopouts {
		sim.checkStopouts(term)
	}

	n := float64(st.NumStudents)
	sim.Result.TermGradRates = append(sim.Result.TermGradRates, float64(len(st.Graduated))/n)
	sim.Result.TermStopoutRates = append(sim.Result.TermStopoutRates, float64(len(st.Stopouts))/n)
}

// gradeEnrollments predicts a grade for every student/course pairing this
// term and applies the outcome to the shared matrices and counters.
func (sim *Simulator) gradeEnrollments(term int) {
	st := sim.State
	for _, c := range sim.Plan.Curriculum.Courses {
		for _, s := range c.Counters.Enrolled {
			grade := sim.Performance.PredictGrade(c, s)
			s.Performance[c.DisplayName()] = grade
			c.Counters.Grades = append(c.Counters.Grades, grade)

			if grade > PassThreshold {
				st.Progress[s.Id][c.Id] = 1
				c.Counters.PassedByTerm[term]++
				s.TermPassed[c.Id] = term
			} else {
				c.Counters.Failures++
				st.Attempts[s.Id][c.Id]++
			}

			// Credits and quality points accrue regardless of outcome.
			s.CreditsAttempted += c.Credits
			s.QualityPoints += grade * c.Credits

			logrus.Debugf("[term %02d] student %d %q grade %.2f", term, s.Id, c.DisplayName(), grade)
		}
	}
}

// recomputeGPA refreshes each enrolled student's GPA and resets the term
// credit counter for the next term. A student with zero attempted credits
// is skipped: the GPA stays at its zero value rather than dividing by zero.
func (sim *Simulator) recomputeGPA() {
	for _, s := range sim.State.Enrolled {
		if s.CreditsAttempted > 0 {
			s.GPA = s.QualityPoints / s.CreditsAttempted
		}
		s.TermCredits = 0
	}
}

// checkGraduation moves students whose progress row is complete from
// enrolled to graduated. The enrolled slice is rebuilt in one read-only
// pass; nothing is deleted in place.
func (sim *Simulator) checkGraduation(term int) {
	st := sim.State
	numCourses := sim.Plan.Curriculum.NumCourses()

	remaining := make([]*Student, 0, len(st.Enrolled))
	for _, s := range st.Enrolled {
		if st.PassedCount(s) == numCourses {
			s.GradTerm = term
			st.Graduated = append(st.Graduated, s)
			sim.gradTermTotal += term
		} else {
			remaining = append(remaining, s)
		}
	}
	st.Enrolled = remaining
}

// checkStopouts runs after graduation on the freshly rebuilt enrolled
// slice, so the stopout pass never sees students who graduated this term.
func (sim *Simulator) checkStopouts(term int) {
	st := sim.State

	remaining := make([]*Student, 0, len(st.Enrolled))
	for _, s := range st.Enrolled {
		if sim.Performance.PredictStopout(s, term) {
			s.Stopout = true
			st.Stopouts = append(st.Stopouts, s)
		} else {
			remaining = append(remaining, s)
		}
	}
	st.Enrolled = remaining
}

// finalize fills the aggregate fields of the result once the loop ends.
func (sim *Simulator) finalize(duration int) {
	st := sim.State
	n := float64(st.NumStudents)

	sim.Result.Duration = duration
	sim.Result.GradRate = float64(len(st.Graduated)) / n
	sim.Result.StopoutRate = float64(len(st.Stopouts)) / n
	sim.Result.Graduated = st.Graduated
	sim.Result.Stopouts = st.Stopouts
	sim.Result.aggregate(st.Graduated)
}
