package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "data", "history.json"), log.NewNopLogger())
}

func sampleRecord() Record {
	return Record{
		CourseNames:   []string{"高等数学", "体育", "大学英语"},
		CourseGrades:  []float64{95, 0, 72},
		CourseCredits: []float64{4, 2, 3},
		CourseCount:   3,
		AvgScore:      75.11,
		OverallGPA:    2.7,
	}
}

func TestAppendAndList(t *testing.T) {
	s := newTestStore(t)

	assert.Empty(t, s.List(), "missing file reads as empty history")
	assert.True(t, s.Append(sampleRecord()))

	records := s.List()
	require.Len(t, records, 1)

	got := records[0]
	want := sampleRecord()
	assert.Equal(t, want.CourseNames, got.CourseNames)
	assert.Equal(t, want.CourseGrades, got.CourseGrades)
	assert.Equal(t, want.CourseCredits, got.CourseCredits)
	assert.Equal(t, want.CourseCount, got.CourseCount)
	assert.Equal(t, want.AvgScore, got.AvgScore)
	assert.Equal(t, want.OverallGPA, got.OverallGPA)

	// timestamp is stamped on append and is valid RFC 3339
	_, err := time.Parse(time.RFC3339, got.Timestamp)
	assert.NoError(t, err)
}

func TestGet(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.Append(sampleRecord()))

	_, ok := s.Get(-1)
	assert.False(t, ok)
	_, ok = s.Get(1)
	assert.False(t, ok)

	rec, ok := s.Get(0)
	assert.True(t, ok)
	assert.Equal(t, 3, rec.CourseCount)
}

func TestDeleteShiftsIndices(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 3; i++ {
		rec := sampleRecord()
		rec.CourseCount = i
		require.True(t, s.Append(rec))
	}

	assert.True(t, s.Delete(1))

	records := s.List()
	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].CourseCount)
	assert.Equal(t, 2, records[1].CourseCount, "record after the deleted one shifts down")
}

func TestDeleteOutOfRange(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.Append(sampleRecord()))

	assert.False(t, s.Delete(5))
	assert.False(t, s.Delete(-1))
	assert.Len(t, s.List(), 1, "failed delete must not mutate the log")
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.Append(sampleRecord()))
	require.True(t, s.Append(sampleRecord()))

	assert.True(t, s.Clear())
	assert.Empty(t, s.List())

	// the file holds a valid empty array, not nothing
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	var records []Record
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Empty(t, records)
}

func TestCorruptFileReadsAsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	assert.Empty(t, s.List())

	// appending over a corrupt file leaves a valid one-record log
	assert.True(t, s.Append(sampleRecord()))
	assert.Len(t, s.List(), 1)
}

func TestOnDiskFieldNames(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.Append(sampleRecord()))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	for _, field := range []string{
		"course_names", "course_grades", "course_credits",
		"course_count", "avg_score", "overall_gpa", "timestamp",
	} {
		assert.Contains(t, raw[0], field)
	}
}
