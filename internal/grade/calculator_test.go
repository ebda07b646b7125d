package grade

import (
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	return NewCalculator(log.NewNopLogger())
}

func TestLoadDataNilSequences(t *testing.T) {
	c := newTestCalculator(t)

	err := c.LoadData(nil, []any{90}, []any{3})
	var tme *TypeMismatchError
	assert.ErrorAs(t, err, &tme)

	err = c.LoadData([]string{"Math"}, nil, []any{3})
	assert.ErrorAs(t, err, &tme)

	err = c.LoadData([]string{"Math"}, []any{90}, nil)
	assert.ErrorAs(t, err, &tme)
}

func TestLoadDataLengthMismatch(t *testing.T) {
	c := newTestCalculator(t)

	err := c.LoadData([]string{"Math", "PE"}, []any{90}, []any{3, 2})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestLoadDataEmpty(t *testing.T) {
	c := newTestCalculator(t)

	err := c.LoadData([]string{}, []any{}, []any{})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestLoadDataNormalizes(t *testing.T) {
	c := newTestCalculator(t)

	err := c.LoadData(
		[]string{"Math", "PE", "English"},
		[]any{"95", "不及格", 72},
		[]any{4, "2", 3.0},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Count())
	assert.Equal(t, []float64{95, 0, 72}, c.Grades())
	assert.Equal(t, []float64{4, 2, 3}, c.Credits())
	assert.Equal(t, 9.0, c.TotalCredits())
}

func TestLoadDataIdempotent(t *testing.T) {
	c := newTestCalculator(t)
	names := []string{"Math", "English"}
	grades := []any{88, 72}
	credits := []any{4, 3}

	require.NoError(t, c.LoadData(names, grades, credits))
	first := append([]float64(nil), c.Grades()...)

	require.NoError(t, c.LoadData(names, grades, credits))
	assert.Equal(t, first, c.Grades())
	assert.Equal(t, 7.0, c.TotalCredits())
	assert.Equal(t, 2, c.Count())
}

func TestLoadDataReplacesWholesale(t *testing.T) {
	c := newTestCalculator(t)

	require.NoError(t, c.LoadData([]string{"Math", "PE"}, []any{90, 70}, []any{4, 2}))
	require.NoError(t, c.LoadData([]string{"English"}, []any{80}, []any{3}))

	assert.Equal(t, 1, c.Count())
	assert.Equal(t, []string{"English"}, c.Names())
	assert.Equal(t, 3.0, c.TotalCredits())
}

func TestMetricsRequireData(t *testing.T) {
	c := newTestCalculator(t)
	var ve *ValidationError

	_, err := c.AverageScore()
	assert.ErrorAs(t, err, &ve)

	_, err = c.CourseGPA()
	assert.ErrorAs(t, err, &ve)

	_, err = c.OverallGPA()
	assert.ErrorAs(t, err, &ve)
}

func TestMetricsRequireCredits(t *testing.T) {
	c := newTestCalculator(t)
	// loads fine, but every credit degrades to 0
	require.NoError(t, c.LoadData([]string{"Math"}, []any{90}, []any{"x"}))
	assert.Equal(t, 0.0, c.TotalCredits())

	var ve *ValidationError
	_, err := c.AverageScore()
	assert.ErrorAs(t, err, &ve)

	_, err = c.OverallGPA()
	assert.ErrorAs(t, err, &ve)

	// per-course grade points do not need credits
	gpas, err := c.CourseGPA()
	assert.NoError(t, err)
	assert.Equal(t, []float64{4.0}, gpas)
}

func TestAverageScoreFailingFloor(t *testing.T) {
	c := newTestCalculator(t)
	require.NoError(t, c.LoadData(
		[]string{"Math", "PE"},
		[]any{55, 80}, // 55 is failing, counts as 40
		[]any{2, 2},
	))

	avg, err := c.AverageScore()
	require.NoError(t, err)
	assert.InDelta(t, (40.0*2+80*2)/4, avg, 1e-9)
}

func TestCourseGPABoundaries(t *testing.T) {
	c := newTestCalculator(t)
	require.NoError(t, c.LoadData(
		[]string{"a", "b", "c", "d", "e"},
		[]any{60, 100, 59.9, 70, 79.9},
		[]any{1, 1, 1, 1, 1},
	))

	gpas, err := c.CourseGPA()
	require.NoError(t, err)
	assert.Equal(t, 1.0, gpas[0], "grade 60 maps to 1.0")
	assert.Equal(t, 5.0, gpas[1], "grade 100 maps to 5.0")
	assert.Equal(t, 0.0, gpas[2], "grade 59.9 is failing")
	assert.Equal(t, 2.0, gpas[3], "decade boundary uses truncating division")
	assert.Equal(t, 3.0, gpas[4], "2.99 rounds to 3.0")
}

func TestCourseGPACurveNotch(t *testing.T) {
	// the band formula has a half-point notch at each decade: 69 -> 1.9
	// but 70 -> 2.0, not 1.95-style linear interpolation
	c := newTestCalculator(t)
	require.NoError(t, c.LoadData(
		[]string{"a", "b", "c"},
		[]any{69, 70, 75},
		[]any{1, 1, 1},
	))

	gpas, err := c.CourseGPA()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.9, 2.0, 2.5}, gpas)
}

func TestWorkedExample(t *testing.T) {
	c := newTestCalculator(t)
	require.NoError(t, c.LoadData(
		[]string{"Math", "PE", "English"},
		[]any{95, "不及格", 72},
		[]any{4, 2, 3},
	))

	assert.Equal(t, 9.0, c.TotalCredits())

	avg, err := c.AverageScore()
	require.NoError(t, err)
	// adjusted grades [95, 40, 72]: (95*4+40*2+72*3)/9
	assert.InDelta(t, 676.0/9, avg, 1e-9)

	gpas, err := c.CourseGPA()
	require.NoError(t, err)
	assert.Equal(t, []float64{4.5, 0, 2.2}, gpas)

	overall, err := c.OverallGPA()
	require.NoError(t, err)
	// (4.5*4 + 0*2 + 2.2*3)/9 = 2.733... -> 2.7
	assert.Equal(t, 2.7, overall)
}
