package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// column widths shared by the review and results tables
const (
	colIdxW    = 3
	colGradeW  = 10
	colCreditW = 7
	colGpaW    = 5
)

// renderTable renders the review screen: the raw course table with a
// cursor and, when editing, the input replacing the edited cell.
func (m model) renderTable(width, height int) string {
	if len(m.names) == 0 {
		return styleRowNormal.Foreground(colorDim).
			Width(width).Height(height).
			Render("No courses")
	}

	nameW := m.nameColWidth(width)

	var lines []string
	lines = append(lines, styleTableHeader.Render(fmt.Sprintf("%s %s %s %s",
		runewidth.FillRight("#", colIdxW),
		runewidth.FillRight("Course", nameW),
		runewidth.FillRight("Grade", colGradeW),
		"Credit")))

	for i := m.tableOffset; i < len(m.names); i++ {
		if len(lines) >= height {
			break
		}

		gradeCell := fmt.Sprintf("%v", m.grades[i])
		creditCell := fmt.Sprintf("%v", m.credits[i])
		if m.editing && i == m.cursor {
			if m.editField == fieldGrade {
				gradeCell = m.editInput.View()
			} else {
				creditCell = m.editInput.View()
			}
		}

		row := fmt.Sprintf("%s %s %s %s",
			runewidth.FillRight(fmt.Sprintf("%d", i+1), colIdxW),
			runewidth.FillRight(runewidth.Truncate(m.names[i], nameW, "…"), nameW),
			runewidth.FillRight(gradeCell, colGradeW),
			creditCell)

		if i == m.cursor {
			row = styleRowSelected.Render("> ") + row
		} else {
			row = "  " + styleRowNormal.Render(row)
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

// renderResults renders the metrics screen: per-course grade points and
// the two aggregate metrics.
func (m model) renderResults(width, height int) string {
	names := m.calc.Names()
	grades := m.calc.Grades()
	credits := m.calc.Credits()
	nameW := m.nameColWidth(width)

	var lines []string
	lines = append(lines, styleTableHeader.Render(fmt.Sprintf("%s %s %s %s %s",
		runewidth.FillRight("#", colIdxW),
		runewidth.FillRight("Course", nameW),
		runewidth.FillRight("Grade", colGradeW),
		runewidth.FillRight("Credit", colCreditW),
		runewidth.FillRight("GPA", colGpaW))))

	for i := range names {
		// leave room for the metric lines below
		if len(lines) >= height-3 {
			lines = append(lines, styleRowNormal.Foreground(colorDim).Render(
				fmt.Sprintf("  ... (%d more)", len(names)-i)))
			break
		}

		row := fmt.Sprintf("  %s %s %s %s %s",
			runewidth.FillRight(fmt.Sprintf("%d", i+1), colIdxW),
			runewidth.FillRight(runewidth.Truncate(names[i], nameW, "…"), nameW),
			runewidth.FillRight(fmt.Sprintf("%.1f", grades[i]), colGradeW),
			runewidth.FillRight(fmt.Sprintf("%.1f", credits[i]), colCreditW),
			fmt.Sprintf("%.1f", m.gpas[i]))

		if grades[i] < 60 {
			lines = append(lines, styleRowFailing.Render(row))
		} else {
			lines = append(lines, styleRowNormal.Render(row))
		}
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  Total credits: %.1f", m.calc.TotalCredits()))
	lines = append(lines, "  Average score: "+styleMetric.Render(fmt.Sprintf("%.2f", m.avg)))
	lines = append(lines, "  Overall GPA:   "+styleMetric.Render(fmt.Sprintf("%.1f", m.overall)))

	return strings.Join(lines, "\n")
}

// nameColWidth sizes the course-name column to the widest name that
// still leaves room for the fixed columns.
func (m model) nameColWidth(panelWidth int) int {
	w := 10
	for _, n := range m.names {
		if nw := runewidth.StringWidth(n); nw > w {
			w = nw
		}
	}
	maxW := panelWidth - colIdxW - colGradeW - colCreditW - colGpaW - 8
	if maxW < 10 {
		maxW = 10
	}
	if w > maxW {
		w = maxW
	}
	return w
}

// adjustTableScroll keeps the cursor visible within the table viewport.
func (m *model) adjustTableScroll(tableHeight int) {
	visibleRows := tableHeight - 1 // header
	if visibleRows < 1 {
		visibleRows = 1
	}
	if m.cursor < m.tableOffset {
		m.tableOffset = m.cursor
	}
	if m.cursor >= m.tableOffset+visibleRows {
		m.tableOffset = m.cursor - visibleRows + 1
	}
}
