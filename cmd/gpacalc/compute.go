package main

import (
	"fmt"
	"os"

	"github.com/cupb-tools/gpacalc/internal/config"
	"github.com/cupb-tools/gpacalc/internal/grade"
	"github.com/cupb-tools/gpacalc/internal/history"
	"github.com/cupb-tools/gpacalc/internal/render"
	"github.com/cupb-tools/gpacalc/internal/sheet"
	"github.com/cupb-tools/gpacalc/internal/tui"
	"github.com/go-kit/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func computeCmd(logger log.Logger) *cobra.Command {
	var save, plain bool

	cmd := &cobra.Command{
		Use:   "compute <file.xlsx>",
		Short: "Compute average score and GPA from a course spreadsheet",
		Long: `Parses the first sheet of a course spreadsheet and computes the
credit-weighted average score, per-course grade points, and overall GPA.

When stdout is a terminal the parsed table opens in an interactive
review screen where grades and credits can be corrected before
computing; results can be saved to history from there. When piped (or
with --plain) the table and metrics print as text, and --save appends
the record to history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			opts := sheet.Options{
				HeaderSkipRows: cfg.HeaderSkipRows,
				NameCol:        cfg.NameCol,
				GradeCol:       cfg.GradeCol,
				CreditCol:      cfg.CreditCol,
			}
			tbl, err := sheet.Load(args[0], opts, logger)
			if err != nil {
				return err
			}

			calc := grade.NewCalculator(logger)
			store := history.NewStore(cfg.HistoryPath, logger)

			// Interactive review/edit when stdout is a terminal
			if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
				return tui.Run(args[0], tbl, calc, store)
			}

			return computePlain(tbl, calc, store, save)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Append the result to history (plain mode)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain text output, no interactive review")

	return cmd
}

func computePlain(tbl *sheet.Table, calc *grade.Calculator, store *history.Store, save bool) error {
	if err := calc.LoadData(tbl.Names, tbl.Grades, tbl.Credits); err != nil {
		return fmt.Errorf("load course data: %w", err)
	}

	avg, err := calc.AverageScore()
	if err != nil {
		return fmt.Errorf("average score: %w", err)
	}
	gpas, err := calc.CourseGPA()
	if err != nil {
		return fmt.Errorf("course grade points: %w", err)
	}
	overall, err := calc.OverallGPA()
	if err != nil {
		return fmt.Errorf("overall GPA: %w", err)
	}

	ropts := render.Options{Color: term.IsTerminal(int(os.Stdout.Fd()))}
	fmt.Print(render.Results(calc.Names(), calc.Grades(), calc.Credits(), gpas, avg, overall, ropts))

	if save {
		rec := history.Record{
			CourseNames:   calc.Names(),
			CourseGrades:  calc.Grades(),
			CourseCredits: calc.Credits(),
			CourseCount:   calc.Count(),
			AvgScore:      avg,
			OverallGPA:    overall,
		}
		if store.Append(rec) {
			fmt.Fprintf(os.Stderr, "Saved to %s\n", store.Path())
		} else {
			fmt.Fprintln(os.Stderr, "Warning: could not save to history")
		}
	}

	return nil
}
