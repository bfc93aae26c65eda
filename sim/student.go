// Defines the Student struct that models an individual student in the
// simulation. Tracks per-course pass terms, recorded grades, credit and
// quality-point accumulation, and the graduation/stopout outcome.

package sim

// Student models a single student's academic record across the run.
type Student struct {
	Id int // index into the engine's progress and attempt matrices

	TermPassed  []int              // course id -> term the course was passed (0 = not yet)
	Performance map[string]float64 // course display name -> predicted grade

	CreditsAttempted float64 // cumulative credit hours attempted
	QualityPoints    float64 // cumulative grade * credit hours
	GPA              float64 // QualityPoints / CreditsAttempted
	TermCredits      float64 // credit hours scheduled in the current term

	GradTerm int  // term the student graduated (0 = not graduated)
	Stopout  bool // true once the student has stopped out
}

// NewStudent creates a blank record for a curriculum of numCourses courses.
func NewStudent(id, numCourses int) *Student {
	return &Student{
		Id:          id,
		TermPassed:  make([]int, numCourses),
		Performance: make(map[string]float64),
	}
}
