// Defines the Course, Curriculum, and DegreePlan input types.
// The curriculum is a DAG of courses connected by prerequisite and
// corequisite edges; the degree plan adds the intended term placement.

package sim

import (
	"fmt"
	"strings"
)

// CourseCounters is the per-course bookkeeping block owned by a single
// simulation run. ResetCounters must be called before the first term.
type CourseCounters struct {
	EnrolledByTerm map[int]int // term -> number of enrollments that term
	PassedByTerm   map[int]int // term -> number of passes that term
	Failures       int         // cumulative failed attempts
	Grades         []float64   // every grade ever recorded for this course
	Enrolled       []*Student  // current-term roster, cleared at term start
	History        []*Student  // every student ever enrolled
}

// Course is a node in the curriculum graph. Id doubles as the course's
// column index in the engine's progress and attempt matrices.
type Course struct {
	Id      int
	Prefix  string  // e.g. "MATH"
	Number  string  // e.g. "101"
	Name    string  // e.g. "Calculus I"
	Credits float64 // credit hours
	Prereqs []int   // course ids that must be passed before enrolling
	Coreqs  []int   // course ids that must be taken concurrently or passed
	MinTerm int     // earliest term (1-based) this course is offered

	Counters CourseCounters
}

// DisplayName returns the composite name under which grades are recorded
// in a student's performance map.
func (c *Course) DisplayName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", c.Prefix, c.Number, c.Name))
}

// ResetCounters clears all per-run bookkeeping on the course.
func (c *Course) ResetCounters() {
	c.Counters = CourseCounters{
		EnrolledByTerm: make(map[int]int),
		PassedByTerm:   make(map[int]int),
	}
}

// ClearRoster empties the current-term roster. The engine calls this at
// the start of every term, before the enrollment model runs.
func (c *Course) ClearRoster() {
	c.Counters.Enrolled = c.Counters.Enrolled[:0]
}

// HasEnrolled reports whether s is on the course's current-term roster.
func (c *Course) HasEnrolled(s *Student) bool {
	for _, e := range c.Counters.Enrolled {
		if e.Id == s.Id {
			return true
		}
	}
	return false
}

// Curriculum is the set of courses plus the prerequisite/corequisite edge
// relation carried on each course. The engine assumes the prerequisite
// relation is acyclic; Validate enforces it at load time.
type Curriculum struct {
	Courses []*Course
}

func (c *Curriculum) NumCourses() int {
	return len(c.Courses)
}

// Course returns the course with the given id. Ids are dense indices, so
// this is a slice lookup.
func (c *Curriculum) Course(id int) *Course {
	return c.Courses[id]
}

// ResetCounters resets every course's per-run counter block.
func (c *Curriculum) ResetCounters() {
	for _, course := range c.Courses {
		course.ResetCounters()
	}
}

// Validate checks structural integrity: ids must be dense and match slice
// positions, every edge must reference a known course, and the
// prerequisite relation must be acyclic.
func (c *Curriculum) Validate() error {
	n := len(c.Courses)
	for i, course := range c.Courses {
		if course.Id != i {
			return fmt.Errorf("course %q has id %d, want %d", course.DisplayName(), course.Id, i)
		}
		for _, p := range course.Prereqs {
			if p < 0 || p >= n {
				return fmt.Errorf("course %q references unknown prerequisite id %d", course.DisplayName(), p)
			}
		}
		for _, k := range course.Coreqs {
			if k < 0 || k >= n {
				return fmt.Errorf("course %q references unknown corequisite id %d", course.DisplayName(), k)
			}
		}
	}

	// Three-color DFS over prerequisite edges.
	const (
		white = iota
		gray
		black
	)
	color := make([]int, n)
	var visit func(id int) error
	visit = func(id int) error {
		color[id] = gray
		for _, p := range c.Courses[id].Prereqs {
			switch color[p] {
			case gray:
				return fmt.Errorf("prerequisite cycle through course %q", c.Courses[p].DisplayName())
			case white:
				if err := visit(p); err != nil {
					return err
				}
			}
		}
		color[id] = black
		return nil
	}
	for id := range c.Courses {
		if color[id] == white {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// DegreePlan pairs a curriculum with its intended term-by-term placement.
// Terms are a hint for the enrollment model, not a hard constraint.
type DegreePlan struct {
	Curriculum *Curriculum
	Terms      [][]*Course
}
