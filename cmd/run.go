package cmd

import (
	"context"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/classdivide/classdivide/divide"
	"github.com/classdivide/classdivide/divide/history"
	"github.com/classdivide/classdivide/divide/roster"
	"github.com/classdivide/classdivide/divide/stats"
)

var (
	inputPath   string // Roster file (.xlsx or .csv)
	columnsPath string // Column-mapping YAML
	outputPath  string // Destination for the division (.xlsx or .csv)
	numClasses  int    // Number of classes to divide into
	iterations  int    // Evaluation budget per search instance
	seed        int64  // Master seed (0 = nondeterministic)
	paramsPath  string // Optional OptimizationParams YAML overlay
	preset      string // Parameter preset: default, relaxed, strict, adaptive
	instances   int    // Parallel instance override (0 = auto)
	skipHistory bool   // Don't record this run in the history file
)

// runCmd divides a roster into balanced classes.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Divide a student roster into balanced classes",
	Run: func(cmd *cobra.Command, args []string) {
		if inputPath == "" {
			logrus.Fatalf("no input roster provided (--input)")
		}
		if columnsPath == "" {
			logrus.Fatalf("no column spec provided (--columns)")
		}

		spec, err := roster.LoadColumnSpec(columnsPath)
		if err != nil {
			logrus.Fatalf("unable to read column spec: %v", err)
		}

		var students []*divide.Student
		if strings.EqualFold(filepath.Ext(inputPath), ".csv") {
			students, err = roster.LoadCSV(inputPath, spec)
		} else {
			students, err = roster.LoadExcel(inputPath, spec)
		}
		if err != nil {
			logrus.Fatalf("unable to load roster: %v", err)
		}
		logrus.Infof("loaded %d students from %s", len(students), inputPath)

		params := presetParams(preset, len(students))
		if paramsPath != "" {
			overlay, err := divide.LoadParams(paramsPath)
			if err != nil {
				logrus.Fatalf("unable to read params file: %v", err)
			}
			params = overlay
		}
		if instances > 0 {
			params.NumParallelInstances = instances
		}

		cfg := divide.NewDivideConfig(numClasses).
			WithIterations(iterations).
			WithSeed(seed).
			WithParams(params)

		// Ctrl-C returns the best division found so far instead of
		// discarding the run.
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		startTime := time.Now()
		classes := divide.Divide(ctx, students, cfg)

		reportDivision(classes, params)
		logrus.Infof("total wall time %s", time.Since(startTime).Round(time.Millisecond))

		if outputPath != "" {
			subjects := subjectsOf(students)
			if strings.EqualFold(filepath.Ext(outputPath), ".csv") {
				err = roster.ExportCSV(classes, outputPath, subjects, nil)
			} else {
				err = roster.ExportExcel(classes, outputPath, subjects, nil)
			}
			if err != nil {
				logrus.Fatalf("unable to export division: %v", err)
			}
			logrus.Infof("division written to %s", outputPath)
		}

		if !skipHistory {
			recordRun(len(students), params)
		}
	},
}

func presetParams(name string, studentCount int) divide.OptimizationParams {
	switch name {
	case "", "default":
		return divide.DefaultParams()
	case "relaxed":
		return divide.RelaxedParams()
	case "strict":
		return divide.StrictParams()
	case "adaptive":
		return divide.AdaptiveParams(studentCount)
	default:
		logrus.Fatalf("unknown preset %q (want default, relaxed, strict, or adaptive)", name)
		return divide.OptimizationParams{}
	}
}

func subjectsOf(students []*divide.Student) []string {
	if len(students) == 0 {
		return nil
	}
	subjects := make([]string, 0, len(students[0].Scores))
	for name := range students[0].Scores {
		subjects = append(subjects, name)
	}
	slices.Sort(subjects)
	return subjects
}

func reportDivision(classes []*divide.Class, params divide.OptimizationParams) {
	v := divide.ValidateWithParams(classes, params)
	logrus.Infof("score spread %.2f (met=%v), gender ratio spread %.2f (met=%v), size spread %d (met=%v)",
		v.MaxScoreDiff, v.ScoreConstraintMet,
		v.MaxGenderRatioDiff, v.GenderConstraintMet,
		v.MaxClassSizeDiff, v.ClassSizeConstraintMet)
	for _, sd := range v.SubjectMaxDiffs {
		logrus.Debugf("subject %s spread %.2f", sd.Subject, sd.Diff)
	}

	summary := stats.Summarize(classes)
	logrus.Infof("class averages: mean %.2f, stddev %.2f, range %.2f",
		summary.MeanScore, summary.StdDev, summary.ScoreRange)
}

func recordRun(numStudents int, params divide.OptimizationParams) {
	mgr, err := history.NewManager()
	if err != nil {
		logrus.Warnf("history unavailable: %v", err)
		return
	}
	format := "xlsx"
	if strings.EqualFold(filepath.Ext(outputPath), ".csv") {
		format = "csv"
	}
	rec := history.NewRecord(inputPath, outputPath, numClasses, numStudents, format, params)
	if err := mgr.Add(rec); err != nil {
		logrus.Warnf("unable to record run history: %v", err)
	}
}

func init() {
	runCmd.Flags().StringVar(&inputPath, "input", "", "roster file (.xlsx or .csv)")
	runCmd.Flags().StringVar(&columnsPath, "columns", "", "column-mapping YAML file")
	runCmd.Flags().StringVar(&outputPath, "output", "", "write the division to this file (.xlsx or .csv)")
	runCmd.Flags().IntVar(&numClasses, "classes", 3, "number of classes")
	runCmd.Flags().IntVar(&iterations, "iterations", 500000, "evaluation budget per search instance")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "master seed; 0 picks a random seed each run")
	runCmd.Flags().StringVar(&paramsPath, "params", "", "optimization parameter YAML overlay")
	runCmd.Flags().StringVar(&preset, "preset", "default", "parameter preset (default, relaxed, strict, adaptive)")
	runCmd.Flags().IntVar(&instances, "instances", 0, "parallel search instances (0 = auto from CPU count)")
	runCmd.Flags().BoolVar(&skipHistory, "no-history", false, "skip recording this run in the history file")
	rootCmd.AddCommand(runCmd)
}
