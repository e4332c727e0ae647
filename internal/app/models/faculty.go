package models

import (
	"fmt"
	"time"

	"github.com/emre/campushub/internal/pkg/apperrors"
)

// Designation is the fixed set of faculty designations.
type Designation string

const (
	DesignationProfessor          Designation = "Professor"
	DesignationAssociateProfessor Designation = "Associate Professor"
	DesignationAssistantProfessor Designation = "Assistant Professor"
	DesignationLecturer           Designation = "Lecturer"
	DesignationVisitingFaculty    Designation = "Visiting Faculty"
	DesignationAdjunctFaculty     Designation = "Adjunct Faculty"
)

// Designations lists every valid designation value.
var Designations = []Designation{
	DesignationProfessor,
	DesignationAssociateProfessor,
	DesignationAssistantProfessor,
	DesignationLecturer,
	DesignationVisitingFaculty,
	DesignationAdjunctFaculty,
}

// Valid reports whether d is a known designation.
func (d Designation) Valid() bool {
	for _, des := range Designations {
		if d == des {
			return true
		}
	}
	return false
}

// Qualification is the fixed set of faculty qualifications.
type Qualification string

// Qualifications lists every valid qualification value.
var Qualifications = []Qualification{
	"Ph.D", "M.Tech", "M.E", "M.Sc", "B.Tech", "B.E", "M.Phil", "MS", "MBA",
}

// Valid reports whether q is a known qualification.
func (q Qualification) Valid() bool {
	for _, qual := range Qualifications {
		if q == qual {
			return true
		}
	}
	return false
}

// Faculty defines the faculty profile based on the 'faculty_members' table.
// EmployeeID is generated at creation time and immutable afterwards.
type Faculty struct {
	ID             int64         `json:"id" db:"id"`
	UserID         int64         `json:"user" db:"user_id"`
	EmployeeID     string        `json:"employeeId" db:"employee_id" example:"F26CS001"`
	Department     Department    `json:"department" db:"department"`
	Designation    Designation   `json:"designation" db:"designation"`
	Qualification  Qualification `json:"qualification" db:"qualification"`
	Specialization []string      `json:"specialization" db:"specialization"`
	DateOfJoining  time.Time     `json:"dateOfJoining" db:"date_of_joining"`
	DateOfBirth    time.Time     `json:"dateOfBirth" db:"date_of_birth"`
	Gender         Gender        `json:"gender" db:"gender"`
	BloodGroup     *string       `json:"bloodGroup,omitempty" db:"blood_group"`
	Address        Address       `json:"address"`
	ContactNumber  string        `json:"contactNumber,omitempty" db:"contact_number"`
	IsActive       bool          `json:"isActive" db:"is_active"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User *User `json:"userDetails,omitempty"`
}

// Validate checks field constraints before the record is written.
func (f *Faculty) Validate() error {
	if f.UserID <= 0 {
		return apperrors.NewValidationError("faculty member must reference an account")
	}
	if !f.Department.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown department %q", f.Department))
	}
	if !f.Designation.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown designation %q", f.Designation))
	}
	if !f.Qualification.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown qualification %q", f.Qualification))
	}
	if len(f.Specialization) == 0 {
		return apperrors.NewValidationError("at least one specialization is required")
	}
	if f.DateOfJoining.IsZero() {
		return apperrors.NewValidationError("date of joining is required")
	}
	if f.DateOfBirth.IsZero() {
		return apperrors.NewValidationError("date of birth is required")
	}
	if !f.Gender.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown gender %q", f.Gender))
	}
	if f.BloodGroup != nil && !ValidBloodGroup(*f.BloodGroup) {
		return apperrors.NewValidationError(fmt.Sprintf("unknown blood group %q", *f.BloodGroup))
	}
	if len(f.ContactNumber) > 15 {
		return apperrors.NewValidationError("contact number cannot be longer than 15 characters")
	}
	return nil
}
