package main

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	rootCmd := &cobra.Command{
		Use:     "gpacalc",
		Short:   "GPA counter - compute weighted averages and grade points from a course spreadsheet",
		Version: version,
	}

	rootCmd.AddCommand(computeCmd(logger))
	rootCmd.AddCommand(historyCmd(logger))
	rootCmd.AddCommand(doctorCmd(logger))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
