package dto

import "time"

// CreateFacultyRequest carries the fields needed to create a faculty
// profile. The employee identifier is generated server-side.
type CreateFacultyRequest struct {
	UserID         int64     `json:"user" binding:"required,gt=0"`
	Department     string    `json:"department" binding:"required"`
	Designation    string    `json:"designation" binding:"required"`
	Qualification  string    `json:"qualification" binding:"required"`
	Specialization []string  `json:"specialization" binding:"required,min=1"`
	DateOfJoining  time.Time `json:"dateOfJoining" binding:"required"`
	DateOfBirth    time.Time `json:"dateOfBirth" binding:"required"`
	Gender         string    `json:"gender" binding:"required,oneof=Male Female Other"`
	BloodGroup     *string   `json:"bloodGroup,omitempty"`
	Street         string    `json:"street,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	Country        string    `json:"country,omitempty"`
	Pincode        string    `json:"pincode,omitempty"`
	ContactNumber  string    `json:"contactNumber,omitempty" binding:"omitempty,max=15"`
}

// UpdateFacultyRequest carries the mutable faculty profile fields.
type UpdateFacultyRequest struct {
	Designation    *string  `json:"designation,omitempty"`
	Qualification  *string  `json:"qualification,omitempty"`
	Specialization []string `json:"specialization,omitempty"`
	BloodGroup     *string  `json:"bloodGroup,omitempty"`
	Street         *string  `json:"street,omitempty"`
	City           *string  `json:"city,omitempty"`
	State          *string  `json:"state,omitempty"`
	Country        *string  `json:"country,omitempty"`
	Pincode        *string  `json:"pincode,omitempty"`
	ContactNumber  *string  `json:"contactNumber,omitempty" binding:"omitempty,max=15"`
	IsActive       *bool    `json:"isActive,omitempty"`
}
