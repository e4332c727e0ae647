package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/emre/campushub/internal/pkg/apperrors"
)

// academicYearPattern matches the YYYY-YYYY academic year format.
var academicYearPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// Course represents a course offered by a department and owned by one
// faculty member. Code is globally unique.
type Course struct {
	ID           int64      `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	Code         string     `json:"code" db:"code" example:"CS301"`
	Credits      int        `json:"credits" db:"credits"`
	Description  string     `json:"description" db:"description"`
	Department   Department `json:"department" db:"department"`
	FacultyID    int64      `json:"faculty" db:"faculty_id"`
	Semester     int        `json:"semester" db:"semester"`
	AcademicYear string     `json:"academicYear" db:"academic_year" example:"2026-2027"`
	MaxStudents  int        `json:"maxStudents" db:"max_students"`
	IsActive     bool       `json:"isActive" db:"is_active"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Faculty *Faculty `json:"facultyDetails,omitempty"`
}

// Validate checks field constraints before the record is written.
func (c *Course) Validate() error {
	if c.Title == "" || len(c.Title) > 100 {
		return apperrors.NewValidationError("title is required and cannot be more than 100 characters")
	}
	if c.Code == "" || len(c.Code) > 20 {
		return apperrors.NewValidationError("code is required and cannot be more than 20 characters")
	}
	if c.Credits < 1 || c.Credits > 10 {
		return apperrors.NewValidationError("credits must be between 1 and 10")
	}
	if len(c.Description) > 500 {
		return apperrors.NewValidationError("description cannot be more than 500 characters")
	}
	if !c.Department.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown department %q", c.Department))
	}
	if c.FacultyID <= 0 {
		return apperrors.NewValidationError("course must reference a faculty member")
	}
	if c.Semester < 1 || c.Semester > 8 {
		return apperrors.NewValidationError("semester must be between 1 and 8")
	}
	if !academicYearPattern.MatchString(c.AcademicYear) {
		return apperrors.NewValidationError("academic year must use format YYYY-YYYY")
	}
	if c.MaxStudents < 1 {
		return apperrors.NewValidationError("maximum students must be at least 1")
	}
	return nil
}
