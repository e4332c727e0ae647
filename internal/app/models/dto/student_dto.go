package dto

import "time"

// CreateStudentRequest carries the fields needed to create a student
// profile. The student identifier is generated server-side.
type CreateStudentRequest struct {
	UserID        int64     `json:"user" binding:"required,gt=0"`
	Department    string    `json:"department" binding:"required"`
	Year          int       `json:"year" binding:"required,min=1,max=4"`
	Semester      int       `json:"semester" binding:"required,min=1,max=8"`
	Section       string    `json:"section" binding:"required,len=1"`
	DateOfBirth   time.Time `json:"dateOfBirth" binding:"required"`
	Gender        string    `json:"gender" binding:"required,oneof=Male Female Other"`
	BloodGroup    *string   `json:"bloodGroup,omitempty"`
	Street        string    `json:"street,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	Country       string    `json:"country,omitempty"`
	Pincode       string    `json:"pincode,omitempty"`
	ContactNumber string    `json:"contactNumber,omitempty" binding:"omitempty,max=15"`
	ParentName    string    `json:"parentName" binding:"required"`
	ParentContact string    `json:"parentContact" binding:"required"`
}

// UpdateStudentRequest carries the mutable student profile fields. The
// identifier, account reference and department are immutable.
type UpdateStudentRequest struct {
	Year          *int    `json:"year,omitempty" binding:"omitempty,min=1,max=4"`
	Semester      *int    `json:"semester,omitempty" binding:"omitempty,min=1,max=8"`
	Section       *string `json:"section,omitempty" binding:"omitempty,len=1"`
	BloodGroup    *string `json:"bloodGroup,omitempty"`
	Street        *string `json:"street,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	Country       *string `json:"country,omitempty"`
	Pincode       *string `json:"pincode,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty" binding:"omitempty,max=15"`
	ParentName    *string `json:"parentName,omitempty"`
	ParentContact *string `json:"parentContact,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}
