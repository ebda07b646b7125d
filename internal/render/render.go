package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	colorReset   = "\033[0m"
	colorHeader  = "\033[1;34m" // bold blue
	colorMetric  = "\033[1;32m" // bold green
	colorFailing = "\033[1;31m" // bold red
	colorDim     = "\033[2m"
)

// Options controls table rendering for plain (piped) output.
type Options struct {
	Color bool // ANSI colors; off when stdout is not a terminal
}

// Table renders the raw parsed course table, one row per course, with
// CJK-safe column alignment. Grades/credits are shown as loaded, before
// normalization, so the user can spot bad cells.
func Table(names []string, grades, credits []any, opts Options) string {
	var b strings.Builder

	header := fmt.Sprintf("%s  %s  %s  %s",
		runewidth.FillRight("#", 3),
		runewidth.FillRight("Course", nameWidth(names)),
		runewidth.FillRight("Grade", 8),
		"Credit")
	b.WriteString(paint(header, colorHeader, opts.Color))
	b.WriteString("\n")

	for i, name := range names {
		b.WriteString(fmt.Sprintf("%s  %s  %s  %v\n",
			runewidth.FillRight(fmt.Sprintf("%d", i+1), 3),
			runewidth.FillRight(name, nameWidth(names)),
			runewidth.FillRight(fmt.Sprintf("%v", grades[i]), 8),
			credits[i]))
	}
	return b.String()
}

// Results renders the three computed metrics plus the per-course grade
// points. Failing courses (grade point 0 with grade < 60) are marked.
func Results(names []string, grades, credits, gpas []float64, avg, overall float64, opts Options) string {
	var b strings.Builder

	header := fmt.Sprintf("%s  %s  %s  %s  %s",
		runewidth.FillRight("#", 3),
		runewidth.FillRight("Course", nameWidth(names)),
		runewidth.FillRight("Grade", 8),
		runewidth.FillRight("Credit", 7),
		"GPA")
	b.WriteString(paint(header, colorHeader, opts.Color))
	b.WriteString("\n")

	for i, name := range names {
		line := fmt.Sprintf("%s  %s  %s  %s  %.1f",
			runewidth.FillRight(fmt.Sprintf("%d", i+1), 3),
			runewidth.FillRight(name, nameWidth(names)),
			runewidth.FillRight(trimFloat(grades[i]), 8),
			runewidth.FillRight(trimFloat(credits[i]), 7),
			gpas[i])
		if grades[i] < 60 {
			line = paint(line, colorFailing, opts.Color) + paint("  (failing)", colorDim, opts.Color)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Average score: %s\n", paint(fmt.Sprintf("%.2f", avg), colorMetric, opts.Color)))
	b.WriteString(fmt.Sprintf("Overall GPA:   %s\n", paint(fmt.Sprintf("%.1f", overall), colorMetric, opts.Color)))
	return b.String()
}

// Summary is the one-line form used for clipboard copy and history
// listings.
func Summary(count int, totalCredits, avg, overall float64) string {
	return fmt.Sprintf("%d courses, %s credits, average score %.2f, GPA %.1f",
		count, trimFloat(totalCredits), avg, overall)
}

func nameWidth(names []string) int {
	w := 10
	for _, n := range names {
		if nw := runewidth.StringWidth(n); nw > w {
			w = nw
		}
	}
	return w
}

// trimFloat drops a trailing ".0" so whole numbers print bare.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

func paint(s, color string, on bool) string {
	if !on {
		return s
	}
	return color + s + colorReset
}
