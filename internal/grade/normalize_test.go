package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGradeLabels(t *testing.T) {
	cases := map[string]float64{
		"优秀":  95,
		"良好":  85,
		"中等":  75,
		"及格":  65,
		"不及格": 0,
	}
	for label, want := range cases {
		got, warns := NormalizeGrade(label)
		assert.Equal(t, want, got, "label %s", label)
		assert.Empty(t, warns)
	}

	// labels trim surrounding whitespace
	got, warns := NormalizeGrade("  优秀 ")
	assert.Equal(t, 95.0, got)
	assert.Empty(t, warns)
}

func TestNormalizeGradeNumeric(t *testing.T) {
	got, warns := NormalizeGrade("87.5")
	assert.Equal(t, 87.5, got)
	assert.Empty(t, warns)

	got, warns = NormalizeGrade(72)
	assert.Equal(t, 72.0, got)
	assert.Empty(t, warns)

	got, warns = NormalizeGrade(float64(90))
	assert.Equal(t, 90.0, got)
	assert.Empty(t, warns)
}

func TestNormalizeGradeClamp(t *testing.T) {
	got, warns := NormalizeGrade(-5)
	assert.Equal(t, 0.0, got)
	assert.Len(t, warns, 1)

	got, warns = NormalizeGrade("105")
	assert.Equal(t, 100.0, got)
	assert.Len(t, warns, 1)
}

func TestNormalizeGradeGarbage(t *testing.T) {
	for _, raw := range []any{"abc", "", nil, struct{}{}} {
		got, warns := NormalizeGrade(raw)
		assert.Equal(t, 0.0, got, "raw %v", raw)
		assert.Len(t, warns, 1, "raw %v", raw)
	}
}

func TestNormalizeGradeRange(t *testing.T) {
	// output is always within [0,100] no matter the input
	for _, raw := range []any{"-999", 1e9, "优秀", "nonsense", 59.9, 100, 0} {
		got, _ := NormalizeGrade(raw)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestNormalizeCredit(t *testing.T) {
	got, warns := NormalizeCredit("3")
	assert.Equal(t, 3.0, got)
	assert.Empty(t, warns)

	got, warns = NormalizeCredit(2.5)
	assert.Equal(t, 2.5, got)
	assert.Empty(t, warns)

	// no categorical mapping for credits
	got, warns = NormalizeCredit("优秀")
	assert.Equal(t, 0.0, got)
	assert.Len(t, warns, 1)

	got, warns = NormalizeCredit(-1)
	assert.Equal(t, 0.0, got)
	assert.Len(t, warns, 1)

	got, warns = NormalizeCredit("x")
	assert.Equal(t, 0.0, got)
	assert.Len(t, warns, 1)
}
