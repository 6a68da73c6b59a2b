package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/classdivide/classdivide/divide"
	"github.com/classdivide/classdivide/divide/roster"
)

var (
	divisionPath        string // Exported division file to re-check
	divisionColumnsPath string // Column-mapping YAML for the division file
	validateParamsPath  string // Optional threshold overlay
	classColumn         int    // 0-based column holding the class number
)

// validateCmd re-checks an exported division against the hard constraints.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Re-check an exported division against the balance constraints",
	Run: func(cmd *cobra.Command, args []string) {
		if divisionPath == "" {
			logrus.Fatalf("no division file provided (--division)")
		}
		if divisionColumnsPath == "" {
			logrus.Fatalf("no column spec provided (--columns)")
		}

		spec, err := roster.LoadColumnSpec(divisionColumnsPath)
		if err != nil {
			logrus.Fatalf("unable to read column spec: %v", err)
		}

		classes, err := roster.LoadDivision(divisionPath, spec, classColumn)
		if err != nil {
			logrus.Fatalf("unable to load division: %v", err)
		}

		params := divide.DefaultParams()
		if validateParamsPath != "" {
			params, err = divide.LoadParams(validateParamsPath)
			if err != nil {
				logrus.Fatalf("unable to read params file: %v", err)
			}
		}

		logrus.Infof("validating %d classes from %s", len(classes), divisionPath)
		reportDivision(classes, params)
	},
}

func init() {
	validateCmd.Flags().StringVar(&divisionPath, "division", "", "exported division file (.xlsx or .csv)")
	validateCmd.Flags().StringVar(&divisionColumnsPath, "columns", "", "column-mapping YAML for the division file")
	validateCmd.Flags().StringVar(&validateParamsPath, "params", "", "threshold YAML overlay")
	validateCmd.Flags().IntVar(&classColumn, "class-column", 0, "column holding the class number (0-based)")
	rootCmd.AddCommand(validateCmd)
}
