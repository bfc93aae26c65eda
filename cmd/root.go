package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/degree-sim/degree-sim/sim"
	"github.com/degree-sim/degree-sim/sim/csvio"
)

var (
	// CLI flags for the engine
	seed         int64   // Seed for stochastic grade/stopout draws
	logLevel     string  // Log verbosity level
	numStudents  int     // Cohort size
	duration     int     // Maximum terms to simulate
	durationLock bool    // Run the full duration even after all students resolve
	maxCredits   float64 // Per-term credit cap
	stopouts     bool    // Enable stopout modeling

	// CLI flags for inputs
	coursesFile   string // Curriculum/degree-plan CSV path
	scenarioName  string // Named preset in the scenarios file
	scenariosFile string // YAML scenario presets path

	// CLI flags for the built-in pass-rate model
	meanGrade   float64 // Prior mean grade for courses without history
	gradeStdev  float64 // Spread of grade draws around the course prior
	stopoutRate float64 // Per-term stopout probability
	fixedGrade  float64 // If >= 0, every prediction returns this grade
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "degree-sim",
	Short: "Term-by-term simulator for student cohorts in a degree plan",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the curriculum simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if coursesFile == "" {
			logrus.Fatalf("Courses file not provided. Exiting simulation.")
		}

		// A named scenario replaces the engine/model defaults wholesale.
		if scenarioName != "" {
			sc := LoadScenario(scenariosFile, scenarioName)
			numStudents = sc.Students
			duration = sc.Duration
			durationLock = sc.DurationLock
			maxCredits = sc.MaxCredits
			stopouts = sc.Stopouts
			meanGrade = sc.MeanGrade
			gradeStdev = sc.GradeStdev
			stopoutRate = sc.StopoutRate
		}
		if numStudents <= 0 {
			logrus.Fatalf("Cohort size must be positive, got %d", numStudents)
		}

		plan, err := csvio.LoadDegreePlan(coursesFile)
		if err != nil {
			logrus.Fatalf("Unable to load degree plan: %v", err)
		}

		logrus.Infof("Starting simulation with %d students, %d courses, duration=%d terms, maxCredits=%.1f",
			numStudents, plan.Curriculum.NumCourses(), duration, maxCredits)

		startTime := time.Now()

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
		var performance sim.PerformanceModel
		if fixedGrade >= 0 {
			performance = &sim.FixedGradeModel{Grade: fixedGrade}
		} else {
			performance = sim.NewPassRateModel(sim.NewPassRateConfig(meanGrade, gradeStdev, stopoutRate), rng)
		}

		s := sim.NewSimulator(
			plan,
			performance,
			&sim.GreedyEnrollment{},
			sim.NewSimConfig(numStudents, maxCredits, duration, durationLock, stopouts),
		)
		result, err := s.Run()
		if err != nil {
			logrus.Fatalf("Simulation aborted: %v", err)
		}
		result.Print()

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for stochastic grade and stopout draws")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Engine configs
	runCmd.Flags().IntVar(&numStudents, "students", 100, "Number of students in the cohort")
	runCmd.Flags().IntVar(&duration, "duration", 8, "Maximum number of terms to simulate")
	runCmd.Flags().BoolVar(&durationLock, "duration-lock", false, "Run the full duration even after all students resolve")
	runCmd.Flags().Float64Var(&maxCredits, "max-credits", 18, "Per-term credit cap")
	runCmd.Flags().BoolVar(&stopouts, "stopouts", false, "Enable stopout modeling")

	// Input configs
	runCmd.Flags().StringVar(&coursesFile, "courses", "", "Curriculum/degree-plan CSV file")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset")
	runCmd.Flags().StringVar(&scenariosFile, "scenarios", "scenarios.yaml", "YAML scenario presets file")

	// Built-in pass-rate model configs
	runCmd.Flags().Float64Var(&meanGrade, "mean-grade", 3.0, "Prior mean grade for courses without history")
	runCmd.Flags().Float64Var(&gradeStdev, "grade-stdev", 0.75, "Spread of grade draws around the course prior")
	runCmd.Flags().Float64Var(&stopoutRate, "stopout-rate", 0.0, "Per-term stopout probability")
	runCmd.Flags().Float64Var(&fixedGrade, "fixed-grade", -1, "If >= 0, every prediction returns this grade")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
