package sim

// Shared construction helpers for the sim package tests.

// testCourse builds a course with dense id and per-run counters reset.
func testCourse(id int, credits float64, prereqs, coreqs []int, minTerm int) *Course {
	c := &Course{
		Id:      id,
		Prefix:  "CRS",
		Number:  string(rune('A' + id)),
		Name:    "Course",
		Credits: credits,
		Prereqs: prereqs,
		Coreqs:  coreqs,
		MinTerm: minTerm,
	}
	c.ResetCounters()
	return c
}

// testPlan builds a degree plan whose term placement is given explicitly.
// The curriculum is the concatenation of all terms, ordered by course id.
func testPlan(terms ...[]*Course) *DegreePlan {
	var all []*Course
	for _, t := range terms {
		all = append(all, t...)
	}
	byID := make([]*Course, len(all))
	for _, c := range all {
		byID[c.Id] = c
	}
	return &DegreePlan{
		Curriculum: &Curriculum{Courses: byID},
		Terms:      terms,
	}
}

// singleCoursePlan is the one-course curriculum used by several scenarios.
func singleCoursePlan(credits float64) *DegreePlan {
	return testPlan([]*Course{testCourse(0, credits, nil, nil, 1)})
}
