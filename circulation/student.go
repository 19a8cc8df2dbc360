package circulation

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Student is a roster record. The ID is an opaque identifier generated at
// creation; Number is a display/sort attribute and is not required to be
// unique.
type Student struct {
	ID        string    `json:"id"`
	Number    int       `json:"number"`
	Name      string    `json:"name"`
	AddedDate time.Time `json:"addedDate"`
}

// StudentInput carries the caller-supplied fields for AddStudent. A nil
// Number asks the store to assign max(existing numbers)+1, or 0 for an empty
// roster.
type StudentInput struct {
	Number *int
	Name   string
}

// BulkFailure pairs a rejected bulk entry with the error that rejected it.
type BulkFailure struct {
	Input StudentInput
	Err   error
}

// BulkResult reports the outcome of AddStudentsBulk: the records created and
// the entries that failed, each in input order.
type BulkResult struct {
	Added  []Student
	Failed []BulkFailure
}

// AddStudent adds a student to the roster and re-sorts it by number
// ascending. Duplicate numbers are permitted.
func (s *Store) AddStudent(ctx context.Context, input StudentInput) (Student, error) {
	if strings.TrimSpace(input.Name) == "" {
		return Student{}, ErrEmptyStudentName
	}

	number := 0
	if input.Number != nil {
		number = *input.Number
	} else if len(s.students) > 0 {
		for _, existing := range s.students {
			if existing.Number > number {
				number = existing.Number
			}
		}
		number++
	}

	student := Student{
		ID:        uuid.NewString(),
		Number:    number,
		Name:      input.Name,
		AddedDate: s.clock(),
	}

	s.students = append(s.students, student)
	sort.SliceStable(s.students, func(i, j int) bool {
		return s.students[i].Number < s.students[j].Number
	})

	if err := s.persistStudents(ctx); err != nil {
		return student, err
	}

	s.logOperation(ctx, logMsgStudentAdded, logAttrStudentID, student.ID)
	s.countOperation("add_student")

	return student, nil
}

// AddStudentsBulk applies AddStudent to each entry independently, in input
// order. Partial failure is tolerated; failed entries are collected with
// their errors instead of aborting the batch.
func (s *Store) AddStudentsBulk(ctx context.Context, inputs []StudentInput) BulkResult {
	result := BulkResult{}

	for _, input := range inputs {
		student, err := s.AddStudent(ctx, input)
		if err != nil {
			result.Failed = append(result.Failed, BulkFailure{Input: input, Err: err})
			continue
		}

		result.Added = append(result.Added, student)
	}

	return result
}

// DeleteStudent removes a student from the roster. It fails with
// ErrStudentHasActiveLoans while any active loan references the student;
// history entries never block deletion. Removing an unknown id is a no-op.
func (s *Store) DeleteStudent(ctx context.Context, id string) error {
	for _, loan := range s.loans {
		if loan.StudentID == id {
			return ErrStudentHasActiveLoans
		}
	}

	kept := make([]Student, 0, len(s.students))
	for _, student := range s.students {
		if student.ID != id {
			kept = append(kept, student)
		}
	}
	s.students = kept

	if err := s.persistStudents(ctx); err != nil {
		return err
	}

	s.logOperation(ctx, logMsgStudentDeleted, logAttrStudentID, id)
	s.countOperation("delete_student")

	return nil
}

// GetStudent returns the student with the given id, reporting whether it
// exists.
func (s *Store) GetStudent(id string) (Student, bool) {
	for _, student := range s.students {
		if student.ID == id {
			return student, true
		}
	}

	return Student{}, false
}

// Students returns the roster sorted by number ascending.
func (s *Store) Students() []Student {
	students := make([]Student, len(s.students))
	copy(students, s.students)

	return students
}
