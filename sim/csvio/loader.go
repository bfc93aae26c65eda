// Package csvio loads curricula and degree plans from CSV files.
//
// One row per course:
//
//	Prefix,Number,Name,Credit_Hours,Prerequisites,Corequisites,Min_Term,Term
//	MATH,101,Calculus I,4,,,1,1
//	MATH,102,Calculus II,4,MATH 101,,1,2
//
// Prerequisites and Corequisites are semicolon-separated "Prefix Number"
// references to other rows. Term is the plan's intended placement.
package csvio

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/degree-sim/degree-sim/sim"
)

type courseRecord struct {
	Prefix  string  `csv:"Prefix"`
	Number  string  `csv:"Number"`
	Name    string  `csv:"Name"`
	Credits float64 `csv:"Credit_Hours"`
	Prereqs string  `csv:"Prerequisites"`
	Coreqs  string  `csv:"Corequisites"`
	MinTerm int     `csv:"Min_Term"`
	Term    int     `csv:"Term"`
}

func (r *courseRecord) key() string {
	return strings.TrimSpace(r.Prefix) + " " + strings.TrimSpace(r.Number)
}

// LoadDegreePlan reads a course table and builds the curriculum and its
// term placement. Reference resolution, duplicate detection, and DAG
// validation all happen here; the engine assumes a valid plan.
func LoadDegreePlan(path string) (*sim.DegreePlan, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open courses file: %w", err)
	}
	defer file.Close()

	records := []*courseRecord{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("parse courses file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("courses file %s contains no courses", path)
	}

	// First pass: assign dense ids and index by "Prefix Number" key.
	index := make(map[string]int, len(records))
	courses := make([]*sim.Course, 0, len(records))
	for i, rec := range records {
		key := rec.key()
		if _, dup := index[key]; dup {
			return nil, fmt.Errorf("duplicate course %q", key)
		}
		index[key] = i
		minTerm := rec.MinTerm
		if minTerm < 1 {
			minTerm = 1
		}
		courses = append(courses, &sim.Course{
			Id:      i,
			Prefix:  strings.TrimSpace(rec.Prefix),
			Number:  strings.TrimSpace(rec.Number),
			Name:    strings.TrimSpace(rec.Name),
			Credits: rec.Credits,
			MinTerm: minTerm,
		})
	}

	// Second pass: resolve edge references now that every id exists.
	for i, rec := range records {
		prereqs, err := resolveRefs(rec.Prereqs, index)
		if err != nil {
			return nil, fmt.Errorf("course %q prerequisites: %w", rec.key(), err)
		}
		coreqs, err := resolveRefs(rec.Coreqs, index)
		if err != nil {
			return nil, fmt.Errorf("course %q corequisites: %w", rec.key(), err)
		}
		courses[i].Prereqs = prereqs
		courses[i].Coreqs = coreqs
	}

	curriculum := &sim.Curriculum{Courses: courses}
	if err := curriculum.Validate(); err != nil {
		return nil, fmt.Errorf("invalid curriculum in %s: %w", path, err)
	}

	return &sim.DegreePlan{
		Curriculum: curriculum,
		Terms:      buildTerms(records, courses),
	}, nil
}

// resolveRefs turns a semicolon-separated reference cell into course ids.
func resolveRefs(cell string, index map[string]int) ([]int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	parts := strings.Split(cell, ";")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		key := strings.Join(strings.Fields(part), " ")
		id, ok := index[key]
		if !ok {
			return nil, fmt.Errorf("unknown course reference %q", key)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// buildTerms groups courses by their planned term. Rows without a term
// (Term <= 0) are placed in the last term so the plan still covers the
// whole curriculum.
func buildTerms(records []*courseRecord, courses []*sim.Course) [][]*sim.Course {
	maxTerm := 1
	for _, rec := range records {
		if rec.Term > maxTerm {
			maxTerm = rec.Term
		}
	}
	terms := make([][]*sim.Course, maxTerm)
	for i, rec := range records {
		t := rec.Term
		if t < 1 {
			t = maxTerm
		}
		terms[t-1] = append(terms[t-1], courses[i])
	}
	return terms
}
