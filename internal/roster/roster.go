// Package roster holds the ordered list of students for a session and keeps
// the store in step with every change.
package roster

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jeanpaul/roster/internal/student"
)

var ErrInvalidIndex = errors.New("Please enter a valid index.")

// Saver persists a full snapshot of the roster.
type Saver interface {
	Save(students []student.Student) error
}

// PersistError means a change could not be written. The in-memory roster has
// already been rolled back when it is returned.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("roster: %s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Roster is the single owner of the in-memory student list. Order is
// insertion order and defines the positional index shown to the user.
type Roster struct {
	students []student.Student
	saver    Saver
}

func New(initial []student.Student, saver Saver) *Roster {
	students := make([]student.Student, len(initial))
	copy(students, initial)
	return &Roster{students: students, saver: saver}
}

func (r *Roster) Len() int { return len(r.students) }

// Students returns a copy of the list.
func (r *Roster) Students() []student.Student {
	return slices.Clone(r.students)
}

// At returns the record at 0-based index i.
func (r *Roster) At(i int) (student.Student, error) {
	if i < 0 || i >= len(r.students) {
		return student.Student{}, ErrInvalidIndex
	}
	return r.students[i], nil
}

func (r *Roster) Add(s student.Student) error {
	r.students = append(r.students, s)
	if err := r.save("add"); err != nil {
		r.students = r.students[:len(r.students)-1]
		return err
	}
	return nil
}

// Replace swaps the record at 0-based index i for s.
func (r *Roster) Replace(i int, s student.Student) error {
	if i < 0 || i >= len(r.students) {
		return ErrInvalidIndex
	}
	old := r.students[i]
	r.students[i] = s
	if err := r.save("edit"); err != nil {
		r.students[i] = old
		return err
	}
	return nil
}

// Remove deletes the record at 0-based index i. Later records move up one
// position.
func (r *Roster) Remove(i int) (student.Student, error) {
	if i < 0 || i >= len(r.students) {
		return student.Student{}, ErrInvalidIndex
	}
	removed := r.students[i]
	r.students = slices.Delete(r.students, i, i+1)
	if err := r.save("remove"); err != nil {
		r.students = slices.Insert(r.students, i, removed)
		return student.Student{}, err
	}
	return removed, nil
}

// ParseIndex turns a 1-based position typed by the user into a 0-based index.
func (r *Roster) ParseIndex(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > len(r.students) {
		return 0, ErrInvalidIndex
	}
	return n - 1, nil
}

// Lines renders every record with its 1-based position.
func (r *Roster) Lines() []string {
	lines := make([]string, len(r.students))
	for i, s := range r.students {
		lines[i] = Line(i+1, s)
	}
	return lines
}

func Line(pos int, s student.Student) string {
	return fmt.Sprintf("%d. Name: %s, Roll No: %s, Age: %d, Grade: %s, Class: %s, Section: %s",
		pos, s.Name, s.RollNo, s.Age, s.Grade, s.Class, s.Section)
}

func (r *Roster) save(op string) error {
	if err := r.saver.Save(r.students); err != nil {
		return &PersistError{Op: op, Err: err}
	}
	return nil
}
