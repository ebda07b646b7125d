package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/go-kit/log"
)

// Record is one persisted calculation result. Field names are part of
// the on-disk format.
type Record struct {
	CourseNames   []string  `json:"course_names"`
	CourseGrades  []float64 `json:"course_grades"`
	CourseCredits []float64 `json:"course_credits"`
	CourseCount   int       `json:"course_count"`
	AvgScore      float64   `json:"avg_score"`
	OverallGPA    float64   `json:"overall_gpa"`
	Timestamp     string    `json:"timestamp"`
}

// Store persists records as a single JSON array at path, rewriting the
// whole file on every mutation. Records are identified by their
// position in the array; deleting one shifts later indices down.
//
// The store degrades rather than fails: a missing or corrupt file reads
// as empty history, and write failures return false instead of an
// error, so persistence problems never block a calculation.
type Store struct {
	path   string
	logger log.Logger
}

func NewStore(path string, logger log.Logger) *Store {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string { return s.path }

// Append adds a record to the end of the log, stamping the current time
// if the record carries none.
func (s *Store) Append(rec Record) bool {
	if rec.Timestamp == "" {
		rec.Timestamp = time.Now().Format(time.RFC3339)
	}
	records := s.List()
	records = append(records, rec)
	return s.write(records)
}

// List returns all records in insertion order. Missing or unreadable
// history reads as empty.
func (s *Store) List() []Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Log("level", "error", "path", s.path, "err", err, "msg", "cannot read history file")
		}
		return []Record{}
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Log("level", "error", "path", s.path, "err", err, "msg", "history file is corrupt, treating as empty")
		return []Record{}
	}
	if records == nil {
		records = []Record{}
	}
	return records
}

// Get returns the record at index, reporting absence for out-of-range
// indices.
func (s *Store) Get(index int) (Record, bool) {
	records := s.List()
	if index < 0 || index >= len(records) {
		return Record{}, false
	}
	return records[index], true
}

// Delete removes the record at index. Out-of-range indices return
// false without touching the log.
func (s *Store) Delete(index int) bool {
	records := s.List()
	if index < 0 || index >= len(records) {
		s.logger.Log("level", "warn", "index", index, "count", len(records), "msg", "delete index out of range")
		return false
	}
	records = append(records[:index], records[index+1:]...)
	return s.write(records)
}

// Clear empties the log, leaving a valid empty array on disk.
func (s *Store) Clear() bool {
	return s.write([]Record{})
}

func (s *Store) write(records []Record) bool {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Log("level", "error", "path", s.path, "err", err, "msg", "cannot create history dir")
		return false
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		s.logger.Log("level", "error", "err", err, "msg", "cannot encode history")
		return false
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Log("level", "error", "path", s.path, "err", err, "msg", "cannot write history file")
		return false
	}
	return true
}
