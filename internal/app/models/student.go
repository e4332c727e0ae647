package models

import (
	"fmt"
	"time"

	"github.com/emre/campushub/internal/pkg/apperrors"
)

// Student defines the student profile based on the 'students' table.
// StudentID is generated at creation time and immutable afterwards.
type Student struct {
	ID            int64      `json:"id" db:"id"`
	UserID        int64      `json:"user" db:"user_id"`
	StudentID     string     `json:"studentId" db:"student_id" example:"26CS001"`
	Department    Department `json:"department" db:"department"`
	Year          int        `json:"year" db:"year"`
	Semester      int        `json:"semester" db:"semester"`
	Section       string     `json:"section" db:"section"`
	DateOfBirth   time.Time  `json:"dateOfBirth" db:"date_of_birth"`
	Gender        Gender     `json:"gender" db:"gender"`
	BloodGroup    *string    `json:"bloodGroup,omitempty" db:"blood_group"`
	Address       Address    `json:"address"`
	ContactNumber string     `json:"contactNumber,omitempty" db:"contact_number"`
	ParentName    string     `json:"parentName" db:"parent_name"`
	ParentContact string     `json:"parentContact" db:"parent_contact"`
	AdmissionDate time.Time  `json:"admissionDate" db:"admission_date"`
	IsActive      bool       `json:"isActive" db:"is_active"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User *User `json:"userDetails,omitempty"`
}

// Validate checks field constraints before the record is written.
func (s *Student) Validate() error {
	if s.UserID <= 0 {
		return apperrors.NewValidationError("student must reference an account")
	}
	if !s.Department.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown department %q", s.Department))
	}
	if s.Year < 1 || s.Year > 4 {
		return apperrors.NewValidationError("year must be between 1 and 4")
	}
	if s.Semester < 1 || s.Semester > 8 {
		return apperrors.NewValidationError("semester must be between 1 and 8")
	}
	if len(s.Section) != 1 || s.Section[0] < 'A' || s.Section[0] > 'Z' {
		return apperrors.NewValidationError("section must be a single uppercase letter")
	}
	if s.DateOfBirth.IsZero() {
		return apperrors.NewValidationError("date of birth is required")
	}
	if !s.Gender.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown gender %q", s.Gender))
	}
	if s.BloodGroup != nil && !ValidBloodGroup(*s.BloodGroup) {
		return apperrors.NewValidationError(fmt.Sprintf("unknown blood group %q", *s.BloodGroup))
	}
	if len(s.ContactNumber) > 15 {
		return apperrors.NewValidationError("contact number cannot be longer than 15 characters")
	}
	if s.ParentName == "" {
		return apperrors.NewValidationError("parent/guardian name is required")
	}
	if s.ParentContact == "" {
		return apperrors.NewValidationError("parent/guardian contact number is required")
	}
	return nil
}
