package sim

import (
	"testing"
)

func rosterIDs(c *Course) []int {
	ids := make([]int, len(c.Counters.Enrolled))
	for i, s := range c.Counters.Enrolled {
		ids[i] = s.Id
	}
	return ids
}

func TestGreedyEnrollment_TakesEveryEligibleCourse(t *testing.T) {
	a := testCourse(0, 3, nil, nil, 1)
	b := testCourse(1, 3, nil, nil, 1)
	plan := testPlan([]*Course{a}, []*Course{b})
	st := NewSimulationState(plan, 1)

	(&GreedyEnrollment{}).Enroll(1, st, 18)

	if len(a.Counters.Enrolled) != 1 || len(b.Counters.Enrolled) != 1 {
		t.Fatalf("expected enrollment in both eligible courses, rosters %v / %v", rosterIDs(a), rosterIDs(b))
	}
	if st.Enrolled[0].TermCredits != 6 {
		t.Errorf("term credits = %v, want 6", st.Enrolled[0].TermCredits)
	}
}

func TestGreedyEnrollment_RespectsCreditCap(t *testing.T) {
	a := testCourse(0, 10, nil, nil, 1)
	b := testCourse(1, 10, nil, nil, 1)
	plan := testPlan([]*Course{a, b})
	st := NewSimulationState(plan, 1)

	(&GreedyEnrollment{}).Enroll(1, st, 18)

	total := len(a.Counters.Enrolled) + len(b.Counters.Enrolled)
	if total != 1 {
		t.Fatalf("two 10-credit courses under an 18-credit cap: %d enrollments, want 1", total)
	}
	if st.Enrolled[0].TermCredits != 10 {
		t.Errorf("term credits = %v, want 10", st.Enrolled[0].TermCredits)
	}
}

func TestGreedyEnrollment_BlocksUnmetPrerequisite(t *testing.T) {
	a := testCourse(0, 3, nil, nil, 1)
	b := testCourse(1, 3, []int{0}, nil, 1)
	plan := testPlan([]*Course{a}, []*Course{b})
	st := NewSimulationState(plan, 1)

	(&GreedyEnrollment{}).Enroll(1, st, 18)

	if len(b.Counters.Enrolled) != 0 {
		t.Errorf("B scheduled despite unpassed prerequisite, roster %v", rosterIDs(b))
	}
	if len(a.Counters.Enrolled) != 1 {
		t.Errorf("A not scheduled, roster %v", rosterIDs(a))
	}
}

func TestGreedyEnrollment_SkipsPassedCourses(t *testing.T) {
	a := testCourse(0, 3, nil, nil, 1)
	b := testCourse(1, 3, nil, nil, 1)
	plan := testPlan([]*Course{a, b})
	st := NewSimulationState(plan, 1)
	st.Progress[0][a.Id] = 1

	(&GreedyEnrollment{}).Enroll(2, st, 18)

	if len(a.Counters.Enrolled) != 0 {
		t.Errorf("already-passed A scheduled again, roster %v", rosterIDs(a))
	}
	if len(b.Counters.Enrolled) != 1 {
		t.Errorf("B not scheduled, roster %v", rosterIDs(b))
	}
}

func TestGreedyEnrollment_OneDirectionalCoreqSameTerm(t *testing.T) {
	// B lists A as corequisite. Greedy picks A first (plan order), which
	// makes B eligible in the same term.
	a := testCourse(0, 3, nil, nil, 1)
	b := testCourse(1, 3, nil, []int{0}, 1)
	plan := testPlan([]*Course{a, b})
	st := NewSimulationState(plan, 1)

	(&GreedyEnrollment{}).Enroll(1, st, 18)

	if len(a.Counters.Enrolled) != 1 || len(b.Counters.Enrolled) != 1 {
		t.Fatalf("coreq pair not co-scheduled, rosters %v / %v", rosterIDs(a), rosterIDs(b))
	}
}

func TestGreedyEnrollment_EveryPairingSatisfiesCanEnroll(t *testing.T) {
	// Port-contract check: replay every roster entry against CanEnroll on
	// a fresh state mirror.
	a := testCourse(0, 4, nil, nil, 1)
	b := testCourse(1, 4, []int{0}, nil, 1)
	c := testCourse(2, 3, nil, nil, 2)
	plan := testPlan([]*Course{a, b}, []*Course{c})
	st := NewSimulationState(plan, 3)

	(&GreedyEnrollment{}).Enroll(1, st, 8)

	for _, course := range plan.Curriculum.Courses {
		for _, s := range course.Counters.Enrolled {
			if st.Progress[s.Id][course.Id] != 0 {
				t.Errorf("student %d enrolled in already-passed course %d", s.Id, course.Id)
			}
			if course.MinTerm > 1 {
				t.Errorf("student %d enrolled in course %d before its offering term", s.Id, course.Id)
			}
			for _, p := range course.Prereqs {
				if st.Progress[s.Id][p] != 1 {
					t.Errorf("student %d enrolled in course %d with unpassed prerequisite %d", s.Id, course.Id, p)
				}
			}
		}
	}
	for _, s := range st.Enrolled {
		if s.TermCredits > 8 {
			t.Errorf("student %d scheduled %v credits over the cap of 8", s.Id, s.TermCredits)
		}
	}
}
