package models

// StudentFilter provides equality filters for listing students.
type StudentFilter struct {
	Department Department
	Year       int
	Semester   int
	Section    string
}

// FacultyFilter provides equality filters for listing faculty members.
type FacultyFilter struct {
	Department  Department
	Designation Designation
}

// CourseFilter provides equality filters for listing courses.
type CourseFilter struct {
	Department Department
	FacultyID  int64
	Semester   int
	ActiveOnly bool
}

// EnrollmentFilter provides equality filters for listing enrollments.
type EnrollmentFilter struct {
	StudentID int64
	CourseID  int64
	Status    EnrollmentStatus
}
