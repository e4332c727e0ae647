package services

import (
	"context"
	"time"

	"github.com/emre/campushub/internal/app/models"
)

// Clock supplies the current time. Injectable so identifier years and
// enrollment dates are deterministic in tests.
type Clock func() time.Time

// UserStore is the account persistence surface the services consume.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// StudentStore is the student persistence surface the services consume.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	List(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// FacultyStore is the faculty persistence surface the services consume.
type FacultyStore interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Faculty, error)
	List(ctx context.Context, filter models.FacultyFilter) ([]*models.Faculty, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore is the course persistence surface the services consume.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	ListByFacultyID(ctx context.Context, facultyID int64) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStore is the enrollment persistence surface the services
// consume. Create must enforce the course capacity limit atomically, and
// UpsertAttendance must overwrite any existing record for the same date.
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error)
	CountByCourseID(ctx context.Context, courseID int64) (int, error)
	UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus, grade *models.LetterGrade) error
	SetFinalGrade(ctx context.Context, id int64, grade models.LetterGrade) error
	Delete(ctx context.Context, id int64) error
	DeleteByCourseID(ctx context.Context, courseID int64) error
	DeleteByStudentID(ctx context.Context, studentID int64) error

	UpsertAttendance(ctx context.Context, record *models.AttendanceRecord) error
	AddAssignment(ctx context.Context, assignment *models.Assignment) error
	UpdateAssignment(ctx context.Context, assignment *models.Assignment) error
	AddExam(ctx context.Context, exam *models.Exam) error
	UpdateExam(ctx context.Context, exam *models.Exam) error
}

// SequenceStore allocates monotonically increasing numbers per bucket.
type SequenceStore interface {
	Next(ctx context.Context, bucket string) (int, error)
}
