// Package session runs the interactive menu loop over a roster.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeanpaul/roster/internal/prompt"
	"github.com/jeanpaul/roster/internal/roster"
	"github.com/jeanpaul/roster/internal/student"
	"github.com/jeanpaul/roster/internal/tui"
)

// Session owns the roster for the lifetime of the process. All changes go
// through its flows.
type Session struct {
	roster *roster.Roster
	prompt prompt.Prompter
	out    io.Writer
	logger *zap.Logger
}

func New(r *roster.Roster, p prompt.Prompter, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		roster: r,
		prompt: p,
		out:    out,
		logger: logger.Named("session"),
	}
}

// Run shows the menu until the user picks Exit. It returns prompt.ErrAborted
// when input is interrupted and a *roster.PersistError when a change could
// not be saved.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, tui.BannerStyle.Render("Student Management System"))
	fmt.Fprintln(s.out)

	for {
		action, err := s.chooseAction(ctx)
		if err != nil {
			return err
		}
		s.logger.Debug("action chosen", zap.Stringer("action", action))

		switch action {
		case ActionAdd:
			err = s.addStudent(ctx)
		case ActionEdit:
			err = s.editStudent(ctx)
		case ActionRemove:
			err = s.removeStudent(ctx)
		case ActionList:
			s.listStudents()
		case ActionExit:
			fmt.Fprintln(s.out, tui.FarewellStyle.Render("Goodbye!"))
			return nil
		}
		if err != nil {
			var perr *roster.PersistError
			if errors.As(err, &perr) {
				s.logger.Error("save failed", zap.Stringer("action", action), zap.Error(err))
			}
			return err
		}
	}
}

func (s *Session) chooseAction(ctx context.Context) (Action, error) {
	label, err := s.prompt.Select(ctx, prompt.Choice{
		Message: "Choose an action:",
		Options: actionLabelsInOrder(),
	})
	if err != nil {
		return 0, err
	}
	return parseAction(label)
}

func (s *Session) addStudent(ctx context.Context) error {
	st, err := s.askStudent(ctx, addQuestions, student.Student{})
	if err != nil {
		return err
	}
	if err := s.roster.Add(st); err != nil {
		return err
	}
	s.logger.Info("student added", zap.String("name", st.Name), zap.Int("students", s.roster.Len()))

	s.notice(tui.SuccessStyle, "Student added successfully!")
	s.listStudents()
	return nil
}

func (s *Session) editStudent(ctx context.Context) error {
	if s.roster.Len() == 0 {
		s.notice(tui.ErrorStyle, "No students to edit.")
		return nil
	}

	index, err := s.askIndex(ctx, "Enter the index of the student to edit:")
	if err != nil {
		return err
	}
	current, err := s.roster.At(index)
	if err != nil {
		return err
	}

	updated, err := s.askStudent(ctx, editQuestions, current)
	if err != nil {
		return err
	}
	if err := s.roster.Replace(index, updated); err != nil {
		return err
	}
	s.logger.Info("student updated", zap.Int("position", index+1), zap.String("name", updated.Name))

	s.notice(tui.SuccessStyle, "Student information updated successfully!")
	s.listStudents()
	return nil
}

func (s *Session) removeStudent(ctx context.Context) error {
	if s.roster.Len() == 0 {
		s.notice(tui.ErrorStyle, "No students to remove.")
		return nil
	}

	index, err := s.askIndex(ctx, "Enter the index of the student to remove:")
	if err != nil {
		return err
	}
	removed, err := s.roster.Remove(index)
	if err != nil {
		return err
	}
	s.logger.Info("student removed", zap.Int("position", index+1), zap.String("name", removed.Name))

	s.notice(tui.RemovedStyle, fmt.Sprintf("Student %s removed successfully!", removed.Name))
	s.listStudents()
	return nil
}

func (s *Session) listStudents() {
	fmt.Fprintln(s.out, tui.HeaderStyle.Render("List of Students:"))
	fmt.Fprintln(s.out)
	for _, line := range s.roster.Lines() {
		fmt.Fprintln(s.out, line)
	}
	fmt.Fprintln(s.out)
}

func (s *Session) notice(style lipgloss.Style, msg string) {
	fmt.Fprintln(s.out, style.Render(msg))
	fmt.Fprintln(s.out)
}

// askIndex keeps asking until the answer is a valid 1-based position.
func (s *Session) askIndex(ctx context.Context, message string) (int, error) {
	var index int
	_, err := s.askUntilValid(ctx, prompt.Question{Message: message}, func(answer string) error {
		var err error
		index, err = s.roster.ParseIndex(answer)
		return err
	})
	return index, err
}

func (s *Session) askUntilValid(ctx context.Context, q prompt.Question, validate func(string) error) (string, error) {
	for {
		answer, err := s.prompt.Input(ctx, q)
		if err != nil {
			return "", err
		}
		if verr := validate(answer); verr != nil {
			s.logger.Debug("answer rejected", zap.String("question", q.Message), zap.String("answer", answer))
			q.Err = verr.Error()
			continue
		}
		return answer, nil
	}
}

type fieldQuestions struct {
	name, rollNo, age, grade, class, section string
}

var addQuestions = fieldQuestions{
	name:    "Enter the student name:",
	rollNo:  "Enter the student roll number:",
	age:     fmt.Sprintf("Enter the student age (between %d and %d):", student.MinAge, student.MaxAge),
	grade:   "Choose the student grade:",
	class:   "Choose the student class:",
	section: "Choose the student section:",
}

var editQuestions = fieldQuestions{
	name:    "Enter the new student name:",
	rollNo:  "Enter the new student roll number:",
	age:     fmt.Sprintf("Enter the new student age (between %d and %d):", student.MinAge, student.MaxAge),
	grade:   "Choose the new student grade:",
	class:   "Choose the new student class:",
	section: "Choose the new student section:",
}

// askStudent runs the six field prompts. Fields of defaults pre-fill the
// answers; a zero Student means no defaults.
func (s *Session) askStudent(ctx context.Context, qs fieldQuestions, defaults student.Student) (student.Student, error) {
	var st student.Student
	var err error

	if st.Name, err = s.prompt.Input(ctx, prompt.Question{Message: qs.name, Default: defaults.Name}); err != nil {
		return st, err
	}
	if st.RollNo, err = s.prompt.Input(ctx, prompt.Question{Message: qs.rollNo, Default: defaults.RollNo}); err != nil {
		return st, err
	}

	ageDefault := ""
	if defaults.Age != 0 {
		ageDefault = strconv.Itoa(defaults.Age)
	}
	_, err = s.askUntilValid(ctx, prompt.Question{Message: qs.age, Default: ageDefault}, func(answer string) error {
		var err error
		st.Age, err = student.ParseAge(answer)
		return err
	})
	if err != nil {
		return st, err
	}

	grade, err := s.prompt.Select(ctx, prompt.Choice{
		Message: qs.grade,
		Options: student.Labels(student.AllGrades()),
		Default: string(defaults.Grade),
	})
	if err != nil {
		return st, err
	}
	if st.Grade, err = student.ParseGrade(grade); err != nil {
		return st, err
	}

	class, err := s.prompt.Select(ctx, prompt.Choice{
		Message: qs.class,
		Options: student.Labels(student.AllClasses()),
		Default: string(defaults.Class),
	})
	if err != nil {
		return st, err
	}
	if st.Class, err = student.ParseClass(class); err != nil {
		return st, err
	}

	section, err := s.prompt.Select(ctx, prompt.Choice{
		Message: qs.section,
		Options: student.Labels(student.AllSections()),
		Default: string(defaults.Section),
	})
	if err != nil {
		return st, err
	}
	if st.Section, err = student.ParseSection(section); err != nil {
		return st, err
	}

	return st, nil
}
