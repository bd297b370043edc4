package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/jeanpaul/roster/internal/student"
)

// DefaultPath is where the roster lives when nothing else is configured.
const DefaultPath = "students.json"

// JSONStore keeps the whole roster as a single pretty-printed JSON array.
// Every Save is a full snapshot overwrite.
type JSONStore struct {
	path   string
	logger *zap.Logger
}

// New returns a store for path. A nil logger discards diagnostics.
func New(path string, logger *zap.Logger) *JSONStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONStore{
		path:   path,
		logger: logger.Named("store"),
	}
}

// Load reads the roster from disk. It never fails: a missing, unreadable or
// malformed file yields an empty roster and a logged diagnostic.
func (s *JSONStore) Load() []student.Student {
	empty := []student.Student{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no roster file, starting empty", zap.String("path", s.path))
			return empty
		}
		s.logger.Warn("roster file unreadable, starting empty", zap.String("path", s.path), zap.Error(err))
		return empty
	}

	if err := checkShape(data); err != nil {
		s.logger.Warn("roster file malformed, starting empty", zap.String("path", s.path), zap.Error(err))
		return empty
	}

	var students []student.Student
	if err := json.Unmarshal(data, &students); err != nil {
		s.logger.Warn("roster file malformed, starting empty", zap.String("path", s.path), zap.Error(err))
		return empty
	}
	if students == nil {
		return empty
	}

	s.logger.Debug("roster loaded", zap.String("path", s.path), zap.Int("students", len(students)))
	return students
}

// Save overwrites the file with the full roster.
func (s *JSONStore) Save(students []student.Student) error {
	if students == nil {
		students = []student.Student{}
	}

	data, err := json.MarshalIndent(students, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode roster: %w", err)
	}

	if err := writeFile(s.path, data); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}

	s.logger.Debug("roster saved", zap.String("path", s.path), zap.Int("students", len(students)))
	return nil
}

// writeFile writes through a sibling temp file and renames it into place so
// readers only ever see a complete snapshot. An existing file keeps its
// permission bits.
func writeFile(path string, data []byte) error {
	perm := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		os.Remove(tmpPath)
		return err
	}
	// WriteFile applies the umask; set the mode explicitly.
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
