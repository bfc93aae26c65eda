// Built-in greedy enrollment model. For each student it walks the degree
// plan's terms in order and takes every eligible course until the per-term
// credit cap blocks further additions, then sweeps any remaining courses
// by id. The plan's term placement is a hint; eligibility is decided by
// CanEnroll alone.

package sim

// GreedyEnrollment is the default EnrollmentModel.
type GreedyEnrollment struct{}

func (g *GreedyEnrollment) Enroll(term int, st *SimulationState, maxCredits float64) {
	for _, s := range st.Enrolled {
		for _, planTerm := range st.Plan.Terms {
			for _, c := range planTerm {
				if CanEnroll(s, c, term, st, maxCredits) {
					st.EnrollStudent(s, c, term)
				}
			}
		}
		// Sweep courses the plan leaves unplaced. Duplicate pickups are
		// blocked by the roster clause of CanEnroll.
		for _, c := range st.Plan.Curriculum.Courses {
			if CanEnroll(s, c, term, st, maxCredits) {
				st.EnrollStudent(s, c, term)
			}
		}
	}
}
