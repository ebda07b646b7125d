package grade

import (
	"fmt"
	"strconv"
	"strings"
)

// labelScores maps the five-level categorical scale to percentage
// scores. 不及格 (failing) maps to 0, not to the 40-point floor used by
// the average-score metric; that substitution happens at calculation
// time only.
var labelScores = map[string]float64{
	"优秀":  95,
	"良好":  85,
	"中等":  75,
	"及格":  65,
	"不及格": 0,
}

// NormalizeGrade maps one raw grade cell to a score in [0,100].
// Categorical labels hit the fixed mapping; anything else goes through
// numeric conversion and clamping. Bad values degrade to 0 with a
// warning, never an error: one malformed cell must not abort a whole
// file.
func NormalizeGrade(raw any) (float64, []string) {
	if s, ok := raw.(string); ok {
		if v, ok := labelScores[strings.TrimSpace(s)]; ok {
			return v, nil
		}
	}

	v, ok := toFloat(raw)
	if !ok {
		return 0, []string{fmt.Sprintf("grade %q is not numeric or a recognized label, using 0", raw)}
	}
	if v < 0 {
		return 0, []string{fmt.Sprintf("grade %v is negative, clamped to 0", raw)}
	}
	if v > 100 {
		return 100, []string{fmt.Sprintf("grade %v exceeds 100, clamped to 100", raw)}
	}
	return v, nil
}

// NormalizeCredit maps one raw credit cell to a non-negative number.
// Same degrade-to-zero policy as grades, but there is no categorical
// mapping and no upper clamp.
func NormalizeCredit(raw any) (float64, []string) {
	v, ok := toFloat(raw)
	if !ok {
		return 0, []string{fmt.Sprintf("credit %q is not numeric, using 0", raw)}
	}
	if v < 0 {
		return 0, []string{fmt.Sprintf("credit %v is negative, using 0", raw)}
	}
	return v, nil
}

// toFloat converts the cell value types a spreadsheet can produce.
func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
