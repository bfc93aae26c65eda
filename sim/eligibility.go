// Enrollment eligibility predicates. These are pure reads over the
// simulation state; enrollment models must consult CanEnroll before
// creating any student/course pairing.

package sim

// CanEnroll reports whether student s may be scheduled into course c in
// the given term. All of the following must hold:
//   - s is not already on c's current-term roster
//   - every prerequisite of c has been passed
//   - s has not already passed c
//   - adding c's credits keeps s within the per-term credit cap
//   - c is offered by this term (MinTerm)
//   - s satisfies the corequisite rule for c
func CanEnroll(s *Student, c *Course, term int, st *SimulationState, maxCredits float64) bool {
	if c.HasEnrolled(s) {
		return false
	}
	if !prereqsPassed(s, c, st) {
		return false
	}
	if st.Progress[s.Id][c.Id] != 0 {
		return false
	}
	if s.TermCredits+c.Credits > maxCredits {
		return false
	}
	if c.MinTerm > term {
		return false
	}
	return EnrolledInCoreqs(s, c, st)
}

// prereqsPassed checks that the sum of s's progress entries over c's
// prerequisites equals the prerequisite count. Courses without
// prerequisites trivially pass.
func prereqsPassed(s *Student, c *Course, st *SimulationState) bool {
	passed := 0
	for _, p := range c.Prereqs {
		passed += st.Progress[s.Id][p]
	}
	return passed == len(c.Prereqs)
}

// EnrolledInCoreqs reports whether s is currently enrolled in, or has
// already passed, every corequisite of c. Every corequisite is evaluated;
// the checks are side-effect free and the rule is a plain conjunction.
func EnrolledInCoreqs(s *Student, c *Course, st *SimulationState) bool {
	ok := true
	for _, k := range c.Coreqs {
		coreq := st.Plan.Curriculum.Course(k)
		if !coreq.HasEnrolled(s) && st.Progress[s.Id][k] != 1 {
			ok = false
		}
	}
	return ok
}
