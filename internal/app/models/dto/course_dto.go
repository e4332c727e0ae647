package dto

// CreateCourseRequest carries the fields needed to create a course.
type CreateCourseRequest struct {
	Title        string `json:"title" binding:"required,max=100"`
	Code         string `json:"code" binding:"required,max=20"`
	Credits      int    `json:"credits" binding:"required,min=1,max=10"`
	Description  string `json:"description" binding:"required,max=500"`
	Department   string `json:"department" binding:"required"`
	FacultyID    int64  `json:"faculty" binding:"required,gt=0"`
	Semester     int    `json:"semester" binding:"required,min=1,max=8"`
	AcademicYear string `json:"academicYear" binding:"required"`
	MaxStudents  int    `json:"maxStudents" binding:"required,min=1"`
}

// UpdateCourseRequest carries the mutable course fields. Code is immutable.
type UpdateCourseRequest struct {
	Title        *string `json:"title,omitempty" binding:"omitempty,max=100"`
	Credits      *int    `json:"credits,omitempty" binding:"omitempty,min=1,max=10"`
	Description  *string `json:"description,omitempty" binding:"omitempty,max=500"`
	FacultyID    *int64  `json:"faculty,omitempty" binding:"omitempty,gt=0"`
	Semester     *int    `json:"semester,omitempty" binding:"omitempty,min=1,max=8"`
	AcademicYear *string `json:"academicYear,omitempty"`
	MaxStudents  *int    `json:"maxStudents,omitempty" binding:"omitempty,min=1"`
	IsActive     *bool   `json:"isActive,omitempty"`
}
