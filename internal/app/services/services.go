package services

import (
	"github.com/emre/campushub/internal/app/repositories"
)

// Services is a container for all services
type Services struct {
	StudentService    StudentService
	FacultyService    FacultyService
	CourseService     CourseService
	EnrollmentService EnrollmentService
	GradingService    GradingService
}

// NewServices creates a new services container wired to the repositories.
func NewServices(repos *repositories.Repositories) *Services {
	students := repos.StudentRepository
	faculties := repos.FacultyRepository
	courses := repos.CourseRepository
	enrollments := repos.EnrollmentRepository
	users := repos.UserRepository
	sequences := repos.SequenceRepository

	return &Services{
		StudentService:    NewStudentService(students, users, enrollments, sequences, nil),
		FacultyService:    NewFacultyService(faculties, users, courses, enrollments, sequences, nil),
		CourseService:     NewCourseService(courses, faculties, enrollments),
		EnrollmentService: NewEnrollmentService(enrollments, students, faculties, courses, nil),
		GradingService:    NewGradingService(enrollments, students, faculties, courses, nil),
	}
}
