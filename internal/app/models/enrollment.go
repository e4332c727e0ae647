package models

import (
	"fmt"
	"math"
	"time"

	"github.com/emre/campushub/internal/pkg/apperrors"
)

// EnrollmentStatus represents the lifecycle state of an enrollment.
type EnrollmentStatus string

// Possible enrollment statuses. Enrolled is the only initial state; any
// status may follow any other (the permissive transition policy is carried
// from the stored data contract, see UpdateEnrollmentStatus).
const (
	StatusEnrolled  EnrollmentStatus = "enrolled"
	StatusCompleted EnrollmentStatus = "completed"
	StatusDropped   EnrollmentStatus = "dropped"
	StatusFailed    EnrollmentStatus = "failed"
)

// Valid reports whether s is a known enrollment status.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case StatusEnrolled, StatusCompleted, StatusDropped, StatusFailed:
		return true
	}
	return false
}

// LetterGrade is the letter-grade enum, including the incomplete (I),
// withdrawn (W) and audit (AU) markers. A nil *LetterGrade means ungraded.
type LetterGrade string

// LetterGrades lists every valid letter grade value.
var LetterGrades = []LetterGrade{
	"A+", "A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "F",
	"I", "W", "AU",
}

// Valid reports whether g is a known letter grade.
func (g LetterGrade) Valid() bool {
	for _, lg := range LetterGrades {
		if g == lg {
			return true
		}
	}
	return false
}

// AttendanceStatus values carried from the stored data contract.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// Valid reports whether s is a known attendance status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// AttendanceRecord is one attendance entry for an enrollment. At most one
// record exists per calendar date; recording twice for the same date
// overwrites status and notes.
type AttendanceRecord struct {
	ID           int64            `json:"id" db:"id"`
	EnrollmentID int64            `json:"-" db:"enrollment_id"`
	Date         time.Time        `json:"date" db:"entry_date"`
	Status       AttendanceStatus `json:"status" db:"status"`
	Notes        *string          `json:"notes,omitempty" db:"notes"`
}

// AssignmentStatus values carried from the stored data contract.
type AssignmentStatus string

const (
	AssignmentNotSubmitted AssignmentStatus = "not_submitted"
	AssignmentSubmitted    AssignmentStatus = "submitted"
	AssignmentGraded       AssignmentStatus = "graded"
	AssignmentLate         AssignmentStatus = "late"
)

// Valid reports whether s is a known assignment status.
func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentNotSubmitted, AssignmentSubmitted, AssignmentGraded, AssignmentLate:
		return true
	}
	return false
}

// Assignment is an assignment sub-record of an enrollment.
type Assignment struct {
	ID            int64            `json:"id" db:"id"`
	EnrollmentID  int64            `json:"-" db:"enrollment_id"`
	Title         string           `json:"title" db:"title"`
	Description   *string          `json:"description,omitempty" db:"description"`
	DueDate       *time.Time       `json:"dueDate,omitempty" db:"due_date"`
	SubmittedDate *time.Time       `json:"submittedDate,omitempty" db:"submitted_date"`
	Status        AssignmentStatus `json:"status" db:"status"`
	Score         *float64         `json:"score,omitempty" db:"score"`
	MaxScore      *float64         `json:"maxScore,omitempty" db:"max_score"`
	Feedback      *string          `json:"feedback,omitempty" db:"feedback"`
	FileURL       *string          `json:"fileUrl,omitempty" db:"file_url"`
}

// ExamType values carried from the stored data contract.
type ExamType string

const (
	ExamQuiz         ExamType = "quiz"
	ExamMidterm      ExamType = "midterm"
	ExamFinal        ExamType = "final"
	ExamProject      ExamType = "project"
	ExamPresentation ExamType = "presentation"
)

// Valid reports whether t is a known exam type.
func (t ExamType) Valid() bool {
	switch t {
	case ExamQuiz, ExamMidterm, ExamFinal, ExamProject, ExamPresentation:
		return true
	}
	return false
}

// Exam is an exam sub-record of an enrollment.
type Exam struct {
	ID           int64      `json:"id" db:"id"`
	EnrollmentID int64      `json:"-" db:"enrollment_id"`
	Title        string     `json:"title" db:"title"`
	ExamType     ExamType   `json:"examType" db:"exam_type"`
	Date         *time.Time `json:"date,omitempty" db:"exam_date"`
	Score        *float64   `json:"score,omitempty" db:"score"`
	MaxScore     *float64   `json:"maxScore,omitempty" db:"max_score"`
	Weightage    *float64   `json:"weightage,omitempty" db:"weightage"`
	Notes        *string    `json:"notes,omitempty" db:"notes"`
}

// Enrollment is the join record between one Student and one Course, carrying
// grading and attendance state. The (student, course) pair is unique.
type Enrollment struct {
	ID             int64            `json:"id" db:"id"`
	StudentID      int64            `json:"student" db:"student_id"`
	CourseID       int64            `json:"course" db:"course_id"`
	EnrollmentDate time.Time        `json:"enrollmentDate" db:"enrollment_date"`
	Status         EnrollmentStatus `json:"status" db:"status"`
	Grade          *LetterGrade     `json:"grade,omitempty" db:"grade"`
	FinalGrade     *LetterGrade     `json:"finalGrade,omitempty" db:"final_grade"`
	IsActive       bool             `json:"isActive" db:"is_active"`
	CreatedAt      time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time        `json:"updatedAt" db:"updated_at"`

	Attendance  []AttendanceRecord `json:"attendance"`
	Assignments []Assignment       `json:"assignments"`
	Exams       []Exam             `json:"exams"`

	// Relations (populated when needed)
	Student *Student `json:"studentDetails,omitempty"`
	Course  *Course  `json:"courseDetails,omitempty"`
}

// Validate checks field constraints before the record is written.
func (e *Enrollment) Validate() error {
	if e.StudentID <= 0 {
		return apperrors.NewValidationError("enrollment must reference a student")
	}
	if e.CourseID <= 0 {
		return apperrors.NewValidationError("enrollment must reference a course")
	}
	if !e.Status.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown enrollment status %q", e.Status))
	}
	if e.Grade != nil && !e.Grade.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown grade %q", *e.Grade))
	}
	if e.FinalGrade != nil && !e.FinalGrade.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown final grade %q", *e.FinalGrade))
	}
	return nil
}

// FindAssignment returns the assignment sub-record with the given id, or nil.
func (e *Enrollment) FindAssignment(assignmentID int64) *Assignment {
	for i := range e.Assignments {
		if e.Assignments[i].ID == assignmentID {
			return &e.Assignments[i]
		}
	}
	return nil
}

// FindExam returns the exam sub-record with the given id, or nil.
func (e *Enrollment) FindExam(examID int64) *Exam {
	for i := range e.Exams {
		if e.Exams[i].ID == examID {
			return &e.Exams[i]
		}
	}
	return nil
}

// CalculateFinalGrade maps the raw point total of all assignment and exam
// scores (missing scores count as 0) onto a letter grade with fixed
// absolute thresholds. This is the simplified absolute-point scale carried
// from the stored grading policy; it deliberately ignores maxScore and exam
// weightage. CurrentGradePercentage is the normalized alternative.
func (e *Enrollment) CalculateFinalGrade() LetterGrade {
	var total float64
	for _, a := range e.Assignments {
		if a.Score != nil {
			total += *a.Score
		}
	}
	for _, x := range e.Exams {
		if x.Score != nil {
			total += *x.Score
		}
	}

	switch {
	case total >= 90:
		return "A"
	case total >= 80:
		return "B"
	case total >= 70:
		return "C"
	case total >= 60:
		return "D"
	default:
		return "F"
	}
}

// CurrentGradePercentage returns round(sum(score) / sum(maxScore) * 100)
// over all assignments and exams that carry both a score and a maxScore,
// or 0 when no such items exist.
func (e *Enrollment) CurrentGradePercentage() int {
	var total, maxPossible float64
	for _, a := range e.Assignments {
		if a.Score != nil && a.MaxScore != nil && *a.MaxScore > 0 {
			total += *a.Score
			maxPossible += *a.MaxScore
		}
	}
	for _, x := range e.Exams {
		if x.Score != nil && x.MaxScore != nil && *x.MaxScore > 0 {
			total += *x.Score
			maxPossible += *x.MaxScore
		}
	}

	if maxPossible == 0 {
		return 0
	}
	return int(math.Round(total / maxPossible * 100))
}

// AttendancePercentage returns round(100 * (present + late) / total) over
// all attendance records, or 0 when none exist.
func (e *Enrollment) AttendancePercentage() int {
	if len(e.Attendance) == 0 {
		return 0
	}

	present := 0
	for _, rec := range e.Attendance {
		if rec.Status == AttendancePresent || rec.Status == AttendanceLate {
			present++
		}
	}
	return int(math.Round(float64(present) / float64(len(e.Attendance)) * 100))
}
