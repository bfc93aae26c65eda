// Aggregates simulation-wide statistics for final reporting.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// SimulationResult is the value returned to the caller at the end of a
// run. Rate vectors are cumulative per term, not per-term deltas.
type SimulationResult struct {
	Duration int // terms actually simulated

	TermGradRates    []float64 // cumulative graduation rate after each term
	TermStopoutRates []float64 // cumulative stopout rate after each term

	GradRate    float64 // final |graduated| / numStudents
	StopoutRate float64 // final |stopouts| / numStudents

	AvgTimeToDegree float64 // mean terms to graduation, over graduates
	MeanGradGPA     float64 // mean final GPA, over graduates

	Graduated []*Student
	Stopouts  []*Student
}

// aggregate computes the graduate-population means. Both are 0 when
// nobody graduated.
func (r *SimulationResult) aggregate(graduated []*Student) {
	if len(graduated) == 0 {
		return
	}
	terms := make([]float64, len(graduated))
	gpas := make([]float64, len(graduated))
	for i, s := range graduated {
		terms[i] = float64(s.GradTerm)
		gpas[i] = s.GPA
	}
	r.AvgTimeToDegree = stat.Mean(terms, nil)
	r.MeanGradGPA = stat.Mean(gpas, nil)
}

// Print displays the aggregated statistics at the end of the simulation.
func (r *SimulationResult) Print() {
	fmt.Println("=== Simulation Results ===")
	fmt.Printf("Terms Simulated      : %d\n", r.Duration)
	fmt.Printf("Graduation Rate      : %.2f%%\n", r.GradRate*100)
	fmt.Printf("Stopout Rate         : %.2f%%\n", r.StopoutRate*100)
	if len(r.Graduated) > 0 {
		fmt.Printf("Avg Time to Degree   : %.2f terms\n", r.AvgTimeToDegree)
		fmt.Printf("Mean Graduate GPA    : %.2f\n", r.MeanGradGPA)
	}
	fmt.Printf("Cumulative Grad Rates: %v\n", fmtRates(r.TermGradRates))
	if r.StopoutRate > 0 {
		fmt.Printf("Cumulative Stopout   : %v\n", fmtRates(r.TermStopoutRates))
	}
}

func fmtRates(rates []float64) []string {
	out := make([]string, len(rates))
	for i, v := range rates {
		out[i] = fmt.Sprintf("%.3f", v)
	}
	return out
}
