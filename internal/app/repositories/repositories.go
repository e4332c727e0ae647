package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is a container for all repositories
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	FacultyRepository    *FacultyRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	SequenceRepository   *SequenceRepository
}

// NewRepositories creates a new repositories container
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		StudentRepository:    NewStudentRepository(db),
		FacultyRepository:    NewFacultyRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		SequenceRepository:   NewSequenceRepository(db),
	}
}
