package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/classdivide/classdivide/divide/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past division runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		mgr, err := history.NewManager()
		if err != nil {
			logrus.Fatalf("history unavailable: %v", err)
		}
		records, err := mgr.Load()
		if err != nil {
			logrus.Fatalf("unable to load history: %v", err)
		}
		if len(records) == 0 {
			fmt.Println("no recorded runs")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWHEN\tINPUT\tCLASSES\tSTUDENTS\tFORMAT")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
				r.ID[:8], r.Timestamp.Format("2006-01-02 15:04"), r.InputPath,
				r.NumClasses, r.NumStudents, r.Format)
		}
		w.Flush()
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one recorded run",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mgr, err := history.NewManager()
		if err != nil {
			logrus.Fatalf("history unavailable: %v", err)
		}
		// Accept the abbreviated ids printed by list.
		records, err := mgr.Load()
		if err != nil {
			logrus.Fatalf("unable to load history: %v", err)
		}
		for _, r := range records {
			if r.ID == args[0] || (len(args[0]) >= 8 && r.ID[:8] == args[0][:8]) {
				if err := mgr.Delete(r.ID); err != nil {
					logrus.Fatalf("unable to delete record: %v", err)
				}
				fmt.Printf("deleted %s\n", r.ID)
				return
			}
		}
		logrus.Fatalf("no record matching %q", args[0])
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	Run: func(cmd *cobra.Command, args []string) {
		mgr, err := history.NewManager()
		if err != nil {
			logrus.Fatalf("history unavailable: %v", err)
		}
		if err := mgr.Clear(); err != nil {
			logrus.Fatalf("unable to clear history: %v", err)
		}
		fmt.Println("history cleared")
	},
}

func init() {
	historyCmd.AddCommand(historyListCmd, historyDeleteCmd, historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
