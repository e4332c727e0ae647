package services

import (
	"context"
	"time"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/pkg/identifier"
)

// StudentService defines operations on student profiles.
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
	ListStudents(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentService struct {
	students    StudentStore
	users       UserStore
	enrollments EnrollmentStore
	sequences   SequenceStore
	now         Clock
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore, users UserStore, enrollments EnrollmentStore,
	sequences SequenceStore, now Clock) StudentService {
	if now == nil {
		now = time.Now
	}
	return &studentService{
		students:    students,
		users:       users,
		enrollments: enrollments,
		sequences:   sequences,
		now:         now,
	}
}

// CreateStudent creates a student profile for an existing account and
// assigns the generated student identifier. The identifier sequence is
// allocated per (department, year) bucket, so concurrent creations in the
// same bucket never collide; the calendar year of admission supplies the
// two leading digits.
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	now := s.now()
	student := &models.Student{
		UserID:      req.UserID,
		Department:  models.Department(req.Department),
		Year:        req.Year,
		Semester:    req.Semester,
		Section:     req.Section,
		DateOfBirth: req.DateOfBirth,
		Gender:      models.Gender(req.Gender),
		BloodGroup:  req.BloodGroup,
		Address: models.Address{
			Street:  req.Street,
			City:    req.City,
			State:   req.State,
			Country: req.Country,
			Pincode: req.Pincode,
		},
		ContactNumber: req.ContactNumber,
		ParentName:    req.ParentName,
		ParentContact: req.ParentContact,
		AdmissionDate: now,
		IsActive:      true,
	}
	if err := student.Validate(); err != nil {
		return nil, err
	}

	seq, err := s.sequences.Next(ctx, identifier.StudentBucket(req.Department, req.Year))
	if err != nil {
		return nil, err
	}
	student.StudentID = identifier.StudentID(req.Department, now.Year(), seq)

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudent retrieves a student profile by ID
func (s *studentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// GetStudentByUserID retrieves the student profile linked to an account
func (s *studentService) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return s.students.GetByUserID(ctx, userID)
}

// ListStudents retrieves students matching the filter
func (s *studentService) ListStudents(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error) {
	return s.students.List(ctx, filter)
}

// UpdateStudent applies the provided fields to an existing student profile.
// The identifier, account reference and department stay as created.
func (s *studentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Year != nil {
		student.Year = *req.Year
	}
	if req.Semester != nil {
		student.Semester = *req.Semester
	}
	if req.Section != nil {
		student.Section = *req.Section
	}
	if req.BloodGroup != nil {
		student.BloodGroup = req.BloodGroup
	}
	if req.Street != nil {
		student.Address.Street = *req.Street
	}
	if req.City != nil {
		student.Address.City = *req.City
	}
	if req.State != nil {
		student.Address.State = *req.State
	}
	if req.Country != nil {
		student.Address.Country = *req.Country
	}
	if req.Pincode != nil {
		student.Address.Pincode = *req.Pincode
	}
	if req.ContactNumber != nil {
		student.ContactNumber = *req.ContactNumber
	}
	if req.ParentName != nil {
		student.ParentName = *req.ParentName
	}
	if req.ParentContact != nil {
		student.ParentContact = *req.ParentContact
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := student.Validate(); err != nil {
		return nil, err
	}
	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student and every enrollment that references it.
// The enrollments go first; their attendance, assignment and exam
// sub-records follow them in the store.
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	if _, err := s.students.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.enrollments.DeleteByStudentID(ctx, id); err != nil {
		return err
	}
	return s.students.Delete(ctx, id)
}
