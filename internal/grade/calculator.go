package grade

import (
	"fmt"
	"math"

	"github.com/go-kit/log"
)

const (
	// passThreshold separates passing from failing percentage grades.
	passThreshold = 60
	// failAverageFloor is the nominal score a failing course contributes
	// to the weighted average, per institutional convention.
	failAverageFloor = 40
)

// Calculator holds one normalized course set and derives the three
// institutional metrics from it. All state is replaced wholesale on
// each LoadData call; there is no partial update path.
type Calculator struct {
	logger log.Logger

	names        []string
	grades       []float64
	credits      []float64
	totalCredits float64
}

func NewCalculator(logger log.Logger) *Calculator {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Calculator{logger: logger}
}

// LoadData normalizes and stores a course set. Names must be parallel
// to grades and credits; raw grade/credit values may be strings or
// numbers, as spreadsheet cells are. Per-cell problems are logged and
// degraded per the normalization rules; only structural problems fail.
func (c *Calculator) LoadData(names []string, rawGrades, rawCredits []any) error {
	if names == nil || rawGrades == nil || rawCredits == nil {
		return &TypeMismatchError{Msg: "course names, grades and credits must all be sequences"}
	}
	if len(names) != len(rawGrades) || len(names) != len(rawCredits) {
		return &ValidationError{Msg: fmt.Sprintf(
			"course names, grades and credits must have equal length (got %d/%d/%d)",
			len(names), len(rawGrades), len(rawCredits))}
	}
	if len(names) == 0 {
		return &ValidationError{Msg: "course data must not be empty"}
	}

	grades := make([]float64, len(names))
	credits := make([]float64, len(names))
	total := 0.0

	for i, raw := range rawCredits {
		v, warns := NormalizeCredit(raw)
		c.warn(names[i], warns)
		credits[i] = v
		total += v
	}
	for i, raw := range rawGrades {
		v, warns := NormalizeGrade(raw)
		c.warn(names[i], warns)
		grades[i] = v
	}

	if total == 0 {
		c.logger.Log("level", "warn", "msg", "total credits is zero, metric calculations will fail")
	}

	c.names = append([]string(nil), names...)
	c.grades = grades
	c.credits = credits
	c.totalCredits = total
	return nil
}

// AverageScore computes the credit-weighted average score (平均学分绩).
// Failing grades contribute the nominal 40-point floor instead of
// their true score. The result is not rounded.
func (c *Calculator) AverageScore() (float64, error) {
	if err := c.requireCredits(); err != nil {
		return 0, err
	}

	sum := 0.0
	for i, g := range c.grades {
		if g < passThreshold {
			g = failAverageFloor
		}
		sum += g * c.credits[i]
	}
	return sum / c.totalCredits, nil
}

// CourseGPA computes the per-course grade points (课程绩点) on the 0-5
// scale. Failing courses earn 0 regardless of exact score; passing
// grades go through the institution's piecewise band formula, rounded
// to one decimal.
func (c *Calculator) CourseGPA() ([]float64, error) {
	if len(c.names) == 0 {
		return nil, &ValidationError{Msg: "no course data loaded, cannot compute grade points"}
	}

	out := make([]float64, len(c.grades))
	for i, g := range c.grades {
		if g < passThreshold {
			out[i] = 0
			continue
		}
		gp := bandGradePoint(g)
		if gp < 0 {
			c.logger.Log("level", "warn", "course", c.names[i], "msg", "grade point is negative, clamped to 0")
			gp = 0
		} else if gp > 5 {
			c.logger.Log("level", "warn", "course", c.names[i], "gpa", gp, "msg", "grade point exceeds 5.0")
		}
		out[i] = round1(gp)
	}
	return out, nil
}

// OverallGPA computes the credit-weighted mean of grade points
// (平均学分绩点), rounded to one decimal.
func (c *Calculator) OverallGPA() (float64, error) {
	if err := c.requireCredits(); err != nil {
		return 0, err
	}

	gpas, err := c.CourseGPA()
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for i, gp := range gpas {
		sum += gp * c.credits[i]
	}
	overall := sum / c.totalCredits

	if overall < 0 {
		c.logger.Log("level", "warn", "gpa", overall, "msg", "overall GPA is negative, clamped to 0")
		overall = 0
	} else if overall > 5 {
		c.logger.Log("level", "warn", "gpa", overall, "msg", "overall GPA exceeds 5.0")
	}
	return round1(overall), nil
}

func (c *Calculator) Count() int            { return len(c.names) }
func (c *Calculator) TotalCredits() float64 { return c.totalCredits }
func (c *Calculator) Names() []string       { return c.names }
func (c *Calculator) Grades() []float64     { return c.grades }
func (c *Calculator) Credits() []float64    { return c.credits }

func (c *Calculator) requireCredits() error {
	if len(c.names) == 0 {
		return &ValidationError{Msg: "no course data loaded"}
	}
	if c.totalCredits == 0 {
		return &ValidationError{Msg: "total credits is zero"}
	}
	return nil
}

func (c *Calculator) warn(course string, warns []string) {
	for _, w := range warns {
		c.logger.Log("level", "warn", "course", course, "msg", w)
	}
}

// bandGradePoint maps a passing percentage grade to a grade point:
// m + n - 5 where m is the truncated decade (int(g) / 10) and n the
// fractional position within it (g/10 - m). This maps 60 to 1.0 and
// 100 to 5.0 with a half-point notch at each decade; the truncating
// division is part of the defined formula, not an artifact.
func bandGradePoint(g float64) float64 {
	m := math.Trunc(math.Trunc(g) / 10)
	n := g/10 - m
	return m + n - 5
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
