package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cupb-tools/gpacalc/internal/grade"
	"github.com/cupb-tools/gpacalc/internal/history"
	"github.com/cupb-tools/gpacalc/internal/render"
	"github.com/cupb-tools/gpacalc/internal/sheet"
)

type tuiMode int

const (
	modeReview tuiMode = iota
	modeResults
)

const (
	fieldGrade = iota
	fieldCredit
)

// model

type model struct {
	calc       *grade.Calculator
	store      *history.Store
	sourcePath string

	// editable copy of the parsed table
	names   []string
	grades  []any
	credits []any

	mode        tuiMode
	cursor      int
	tableOffset int

	editing   bool
	editField int
	editInput textinput.Model

	// computed metrics, valid in modeResults
	avg     float64
	gpas    []float64
	overall float64
	saved   bool

	status   string
	width    int
	height   int
	ready    bool
	quitting bool
}

func initialModel(path string, tbl *sheet.Table, calc *grade.Calculator, store *history.Store) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 16

	return model{
		calc:       calc,
		store:      store,
		sourcePath: path,
		names:      append([]string(nil), tbl.Names...),
		grades:     append([]any(nil), tbl.Grades...),
		credits:    append([]any(nil), tbl.Credits...),
		editInput:  ti,
	}
}

// Run starts the confirm/edit TUI and blocks until it exits. The user
// reviews the parsed table, optionally edits grade/credit cells,
// confirms to compute, and can save the result to history.
func Run(path string, tbl *sheet.Table, calc *grade.Calculator, store *history.Store) error {
	m := initialModel(path, tbl, calc, store)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		if m.mode == modeResults {
			return m.updateResults(msg)
		}
		return m.updateReview(msg)
	}

	return m, nil
}

// updateReview handles keys on the course table screen.
func (m model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustTableScroll(m.panelHeight())
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.names)-1 {
			m.cursor++
			m.adjustTableScroll(m.panelHeight())
		}

	case key.Matches(msg, keys.Confirm):
		return m.compute()

	case key.Matches(msg, keys.Edit):
		m.editing = true
		m.editField = fieldGrade
		m.editInput.SetValue(fmt.Sprintf("%v", m.grades[m.cursor]))
		m.editInput.CursorEnd()
		m.editInput.Focus()
		m.status = ""
		return m, textinput.Blink
	}

	return m, nil
}

// updateEditing handles keys while a grade/credit cell is being edited.
func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Cancel):
		m.editing = false
		m.editInput.Blur()
		return m, nil

	case key.Matches(msg, keys.Field):
		// apply current field, move to the other one
		m.applyEdit()
		if m.editField == fieldGrade {
			m.editField = fieldCredit
			m.editInput.SetValue(fmt.Sprintf("%v", m.credits[m.cursor]))
		} else {
			m.editField = fieldGrade
			m.editInput.SetValue(fmt.Sprintf("%v", m.grades[m.cursor]))
		}
		m.editInput.CursorEnd()
		return m, nil

	case key.Matches(msg, keys.Apply):
		m.applyEdit()
		m.editing = false
		m.editInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// updateResults handles keys on the metrics screen.
func (m model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		m.mode = modeReview
		m.status = ""
		return m, nil

	case key.Matches(msg, keys.Save):
		if m.saved {
			m.status = "already saved"
			return m, nil
		}
		rec := history.Record{
			CourseNames:   m.calc.Names(),
			CourseGrades:  m.calc.Grades(),
			CourseCredits: m.calc.Credits(),
			CourseCount:   m.calc.Count(),
			AvgScore:      m.avg,
			OverallGPA:    m.overall,
		}
		if m.store.Append(rec) {
			m.saved = true
			m.status = "saved to " + m.store.Path()
		} else {
			m.status = "save failed, see log"
		}
		return m, nil

	case key.Matches(msg, keys.Copy):
		summary := render.Summary(m.calc.Count(), m.calc.TotalCredits(), m.avg, m.overall)
		if err := clipboard.WriteAll(summary); err != nil {
			m.status = summary
		} else {
			m.status = "copied: " + summary
		}
		return m, nil
	}

	return m, nil
}

// applyEdit writes the edit input back into the raw table. The value
// stays raw; bad input degrades with a warning at compute time, same as
// a bad spreadsheet cell.
func (m *model) applyEdit() {
	v := strings.TrimSpace(m.editInput.Value())
	if m.editField == fieldGrade {
		m.grades[m.cursor] = v
	} else {
		m.credits[m.cursor] = v
	}
}

// compute loads the (possibly edited) table into the calculator and
// derives the three metrics.
func (m model) compute() (tea.Model, tea.Cmd) {
	if err := m.calc.LoadData(m.names, m.grades, m.credits); err != nil {
		m.status = "error: " + err.Error()
		return m, nil
	}

	avg, err := m.calc.AverageScore()
	if err != nil {
		m.status = "error: " + err.Error()
		return m, nil
	}
	gpas, err := m.calc.CourseGPA()
	if err != nil {
		m.status = "error: " + err.Error()
		return m, nil
	}
	overall, err := m.calc.OverallGPA()
	if err != nil {
		m.status = "error: " + err.Error()
		return m, nil
	}

	m.avg = avg
	m.gpas = gpas
	m.overall = overall
	m.saved = false
	m.mode = modeResults
	m.status = ""
	return m, nil
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	title := styleTitle.Render(m.sourcePath)

	var content string
	if m.mode == modeResults {
		content = m.renderResults(m.panelWidth(), m.panelHeight())
	} else {
		content = m.renderTable(m.panelWidth(), m.panelHeight())
	}

	panel := stylePanelBorder.
		Width(m.panelWidth()).
		Height(m.panelHeight()).
		Render(content)

	status := m.statusBar()

	return lipgloss.JoinVertical(lipgloss.Left, title, panel, status)
}

// helper methods

func (m model) panelWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width - 4
	if w < 30 {
		w = 30
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract title (1) + status bar (1) + borders (2)
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

func (m model) statusBar() string {
	if m.status != "" {
		return styleStatusBar.Render(m.status)
	}

	var parts []string
	switch {
	case m.editing:
		parts = append(parts, "enter apply", "tab grade/credit", "esc cancel")
	case m.mode == modeResults:
		parts = append(parts, "s save", "c copy summary", "b back", "esc quit")
	default:
		parts = append(parts, fmt.Sprintf("%d courses", len(m.names)))
		parts = append(parts, "up/dn navigate", "enter edit", "y compute", "esc quit")
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}
