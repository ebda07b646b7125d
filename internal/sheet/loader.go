package sheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/xuri/excelize/v2"
)

// Options is the fixed column/row layout of a course spreadsheet.
// Columns are 0-indexed; data rows start after HeaderSkipRows.
type Options struct {
	HeaderSkipRows int
	NameCol        int
	GradeCol       int
	CreditCol      int
}

// DefaultOptions matches the standard export layout: one header row,
// then name/grade/credit in columns 1-3 (column 0 is a sequence number).
func DefaultOptions() Options {
	return Options{
		HeaderSkipRows: 1,
		NameCol:        1,
		GradeCol:       2,
		CreditCol:      3,
	}
}

// Table is the parsed course table, in row order. Grades and credits
// are kept raw; normalization happens in the calculator.
type Table struct {
	Names   []string
	Grades  []any
	Credits []any
}

func (t *Table) Count() int { return len(t.Names) }

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// FormatError reports a spreadsheet that cannot serve as a course
// table: wrong extension, unparseable content, or too little data.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return e.Msg
}

// Load parses the first sheet of an .xlsx/.xls file into a course
// table. A row counts iff its name cell is non-empty after trimming;
// blank-name rows are skipped silently. Valid rows with missing grade
// or credit cells are kept with a warning.
func Load(path string, opts Options, logger log.Logger) (*Table, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".xls" {
		return nil, &FormatError{Msg: fmt.Sprintf("unsupported file format %q, only .xlsx and .xls are supported", ext)}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FormatError{Msg: fmt.Sprintf("cannot parse spreadsheet: %v", err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &FormatError{Msg: "spreadsheet has no sheets"}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &FormatError{Msg: fmt.Sprintf("cannot read sheet %q: %v", sheets[0], err)}
	}

	requiredCols := max3(opts.NameCol, opts.GradeCol, opts.CreditCol) + 1
	maxWidth := 0
	for _, row := range rows {
		if len(row) > maxWidth {
			maxWidth = len(row)
		}
	}
	if maxWidth < requiredCols {
		return nil, &FormatError{Msg: fmt.Sprintf("spreadsheet has too few columns, at least %d required", requiredCols)}
	}
	if len(rows) <= opts.HeaderSkipRows {
		return nil, &FormatError{Msg: fmt.Sprintf("spreadsheet has too few rows, at least %d required", opts.HeaderSkipRows+1)}
	}

	tbl := &Table{}
	for i := opts.HeaderSkipRows; i < len(rows); i++ {
		name := strings.TrimSpace(cell(rows[i], opts.NameCol))
		if name == "" {
			continue
		}

		gradeCell := cell(rows[i], opts.GradeCol)
		creditCell := cell(rows[i], opts.CreditCol)
		if strings.TrimSpace(gradeCell) == "" {
			logger.Log("level", "warn", "row", i+1, "course", name, "msg", "missing grade cell")
		}
		if strings.TrimSpace(creditCell) == "" {
			logger.Log("level", "warn", "row", i+1, "course", name, "msg", "missing credit cell")
		}

		tbl.Names = append(tbl.Names, name)
		tbl.Grades = append(tbl.Grades, gradeCell)
		tbl.Credits = append(tbl.Credits, creditCell)
	}

	if tbl.Count() == 0 {
		return nil, &FormatError{Msg: "no valid course data found"}
	}

	logger.Log("level", "info", "courses", tbl.Count(), "msg", "loaded course table")
	return tbl, nil
}

// cell returns the trimmed-row-safe value at col; excelize drops
// trailing empty cells, so short rows read as empty strings.
func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
