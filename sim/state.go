// Engine-owned mutable simulation state: the progress and attempt
// matrices plus the enrolled/graduated/stopout population partition.
// The state is passed explicitly through every step of the term loop.

package sim

// SimulationState holds everything the term loop mutates.
//
// Invariants, maintained by the engine and checked by the test suite:
//   - Progress cells only ever go 0 -> 1, never back
//   - Attempts cells start at 1 and only increment
//   - Enrolled, Graduated, and Stopouts are pairwise disjoint and
//     together contain every student at every term boundary
type SimulationState struct {
	Plan        *DegreePlan
	NumStudents int

	Progress [][]int // NumStudents x NumCourses, 1 once passed
	Attempts [][]int // NumStudents x NumCourses, minimum 1

	Enrolled  []*Student // shrinks as students graduate or stop out
	Graduated []*Student
	Stopouts  []*Student
}

// NewSimulationState creates the student population and zeroed matrices
// for one run. Every attempts cell starts at 1: the first try at a course
// is attempt one, and each failure adds another.
func NewSimulationState(plan *DegreePlan, numStudents int) *SimulationState {
	numCourses := plan.Curriculum.NumCourses()
	st := &SimulationState{
		Plan:        plan,
		NumStudents: numStudents,
		Progress:    make([][]int, numStudents),
		Attempts:    make([][]int, numStudents),
		Enrolled:    make([]*Student, 0, numStudents),
	}
	for i := 0; i < numStudents; i++ {
		st.Progress[i] = make([]int, numCourses)
		st.Attempts[i] = make([]int, numCourses)
		for j := range st.Attempts[i] {
			st.Attempts[i][j] = 1
		}
		st.Enrolled = append(st.Enrolled, NewStudent(i, numCourses))
	}
	return st
}

// PassedCount returns the sum of the student's progress row, i.e. the
// number of distinct courses passed so far.
func (st *SimulationState) PassedCount(s *Student) int {
	count := 0
	for _, v := range st.Progress[s.Id] {
		count += v
	}
	return count
}

// EnrollStudent records an enrollment of s into c for the given term:
// roster and history membership, per-term enrollment counter, and the
// student's term credit load. Callers must have checked CanEnroll first.
func (st *SimulationState) EnrollStudent(s *Student, c *Course, term int) {
	c.Counters.Enrolled = append(c.Counters.Enrolled, s)
	c.Counters.History = append(c.Counters.History, s)
	c.Counters.EnrolledByTerm[term]++
	s.TermCredits += c.Credits
}
