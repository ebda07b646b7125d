package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cupb-tools/gpacalc/internal/config"
	"github.com/cupb-tools/gpacalc/internal/history"
	"github.com/cupb-tools/gpacalc/internal/render"
	"github.com/go-kit/log"
	"github.com/spf13/cobra"
)

func historyCmd(logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved calculation records",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(logger)
			if err != nil {
				return err
			}

			records := store.List()
			if len(records) == 0 {
				fmt.Fprintln(os.Stderr, "No history records.")
				return nil
			}

			for i, rec := range records {
				total := 0.0
				for _, c := range rec.CourseCredits {
					total += c
				}
				fmt.Printf("%d\t%s\t%s\n", i, rec.Timestamp,
					render.Summary(rec.CourseCount, total, rec.AvgScore, rec.OverallGPA))
			}
			return nil
		},
	}

	cmd.AddCommand(historyShowCmd(logger))
	cmd.AddCommand(historyDeleteCmd(logger))
	cmd.AddCommand(historyClearCmd(logger))

	return cmd
}

func historyShowCmd(logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Show one record in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be an integer: %q", args[0])
			}

			store, err := openStore(logger)
			if err != nil {
				return err
			}

			rec, ok := store.Get(index)
			if !ok {
				return fmt.Errorf("no record at index %d", index)
			}

			fmt.Printf("Record %d (%s)\n\n", index, rec.Timestamp)
			for i, name := range rec.CourseNames {
				fmt.Printf("  %-3d %s  grade %.1f  credit %.1f\n",
					i+1, name, rec.CourseGrades[i], rec.CourseCredits[i])
			}
			fmt.Printf("\nAverage score: %.2f\nOverall GPA:   %.1f\n", rec.AvgScore, rec.OverallGPA)
			return nil
		},
	}
}

func historyDeleteCmd(logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete one record; later records shift down",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be an integer: %q", args[0])
			}

			store, err := openStore(logger)
			if err != nil {
				return err
			}

			if !store.Delete(index) {
				return fmt.Errorf("no record at index %d", index)
			}
			fmt.Fprintf(os.Stderr, "Deleted record %d.\n", index)
			return nil
		},
	}
}

func historyClearCmd(logger log.Logger) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all history records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear history without --yes")
			}

			store, err := openStore(logger)
			if err != nil {
				return err
			}

			if !store.Clear() {
				return fmt.Errorf("could not clear history")
			}
			fmt.Fprintln(os.Stderr, "History cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm clearing all records")

	return cmd
}

func openStore(logger log.Logger) (*history.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return history.NewStore(cfg.HistoryPath, logger), nil
}
