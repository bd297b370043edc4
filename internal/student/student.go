// Package student defines the student record and the closed value sets its
// choice fields draw from.
package student

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	MinAge = 12
	MaxAge = 70
)

var ErrInvalidAge = fmt.Errorf("Please enter a valid age between %d and %d.", MinAge, MaxAge)

// Grade is a letter grade.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeF     Grade = "F"
)

// Class is the quarter a student is enrolled in.
type Class string

const (
	ClassQ1 Class = "Q1"
	ClassQ2 Class = "Q2"
	ClassQ3 Class = "Q3"
	ClassQ4 Class = "Q4"
)

// Section is the time slot a student attends.
type Section string

const (
	SectionMorning   Section = "Morning"
	SectionAfternoon Section = "Afternoon"
)

// Student is a single roster record. The JSON names match the on-disk format.
type Student struct {
	Name    string  `json:"name"`
	RollNo  string  `json:"rollNo"`
	Age     int     `json:"age"`
	Grade   Grade   `json:"grade"`
	Class   Class   `json:"studentClass"`
	Section Section `json:"section"`
}

func AllGrades() []Grade {
	return []Grade{GradeAPlus, GradeA, GradeB, GradeC, GradeF}
}

func AllClasses() []Class {
	return []Class{ClassQ1, ClassQ2, ClassQ3, ClassQ4}
}

func AllSections() []Section {
	return []Section{SectionMorning, SectionAfternoon}
}

// ParseAge accepts a base-10 integer within [MinAge, MaxAge].
func ParseAge(text string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || age < MinAge || age > MaxAge {
		return 0, ErrInvalidAge
	}
	return age, nil
}

func ParseGrade(text string) (Grade, error) {
	return parseOption(text, AllGrades(), "grade")
}

func ParseClass(text string) (Class, error) {
	return parseOption(text, AllClasses(), "class")
}

func ParseSection(text string) (Section, error) {
	return parseOption(text, AllSections(), "section")
}

// Labels converts an ordered value set into its display labels.
func Labels[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

var errUnknownOption = errors.New("unknown option")

func parseOption[T ~string](text string, values []T, field string) (T, error) {
	for _, v := range values {
		if string(v) == text {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("student: %s %q: %w", field, text, errUnknownOption)
}
