package services

import (
	"context"
	"time"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/pkg/identifier"
)

// FacultyService defines operations on faculty profiles.
type FacultyService interface {
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	GetFaculty(ctx context.Context, id int64) (*models.Faculty, error)
	GetFacultyByUserID(ctx context.Context, userID int64) (*models.Faculty, error)
	ListFaculty(ctx context.Context, filter models.FacultyFilter) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id int64) error
}

type facultyService struct {
	faculties   FacultyStore
	users       UserStore
	courses     CourseStore
	enrollments EnrollmentStore
	sequences   SequenceStore
	now         Clock
}

// NewFacultyService creates a new faculty service
func NewFacultyService(faculties FacultyStore, users UserStore, courses CourseStore,
	enrollments EnrollmentStore, sequences SequenceStore, now Clock) FacultyService {
	if now == nil {
		now = time.Now
	}
	return &facultyService{
		faculties:   faculties,
		users:       users,
		courses:     courses,
		enrollments: enrollments,
		sequences:   sequences,
		now:         now,
	}
}

// CreateFaculty creates a faculty profile for an existing account and
// assigns the generated employee identifier. The sequence bucket is keyed
// by (department, joining year), so identifiers stay unique under
// concurrent creations.
func (s *facultyService) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		UserID:         req.UserID,
		Department:     models.Department(req.Department),
		Designation:    models.Designation(req.Designation),
		Qualification:  models.Qualification(req.Qualification),
		Specialization: req.Specialization,
		DateOfJoining:  req.DateOfJoining,
		DateOfBirth:    req.DateOfBirth,
		Gender:         models.Gender(req.Gender),
		BloodGroup:     req.BloodGroup,
		Address: models.Address{
			Street:  req.Street,
			City:    req.City,
			State:   req.State,
			Country: req.Country,
			Pincode: req.Pincode,
		},
		ContactNumber: req.ContactNumber,
		IsActive:      true,
	}
	if err := faculty.Validate(); err != nil {
		return nil, err
	}

	joinYear := req.DateOfJoining.Year()
	seq, err := s.sequences.Next(ctx, identifier.FacultyBucket(req.Department, joinYear))
	if err != nil {
		return nil, err
	}
	faculty.EmployeeID = identifier.FacultyID(req.Department, joinYear, seq)

	if err := s.faculties.Create(ctx, faculty); err != nil {
		return nil, err
	}

	return faculty, nil
}

// GetFaculty retrieves a faculty member by ID
func (s *facultyService) GetFaculty(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.faculties.GetByID(ctx, id)
}

// GetFacultyByUserID retrieves the faculty profile linked to an account
func (s *facultyService) GetFacultyByUserID(ctx context.Context, userID int64) (*models.Faculty, error) {
	return s.faculties.GetByUserID(ctx, userID)
}

// ListFaculty retrieves faculty members matching the filter
func (s *facultyService) ListFaculty(ctx context.Context, filter models.FacultyFilter) ([]*models.Faculty, error) {
	return s.faculties.List(ctx, filter)
}

// UpdateFaculty applies the provided fields to an existing faculty profile.
// The identifier, account reference and department stay as created.
func (s *facultyService) UpdateFaculty(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	faculty, err := s.faculties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Designation != nil {
		faculty.Designation = models.Designation(*req.Designation)
	}
	if req.Qualification != nil {
		faculty.Qualification = models.Qualification(*req.Qualification)
	}
	if req.Specialization != nil {
		faculty.Specialization = req.Specialization
	}
	if req.BloodGroup != nil {
		faculty.BloodGroup = req.BloodGroup
	}
	if req.Street != nil {
		faculty.Address.Street = *req.Street
	}
	if req.City != nil {
		faculty.Address.City = *req.City
	}
	if req.State != nil {
		faculty.Address.State = *req.State
	}
	if req.Country != nil {
		faculty.Address.Country = *req.Country
	}
	if req.Pincode != nil {
		faculty.Address.Pincode = *req.Pincode
	}
	if req.ContactNumber != nil {
		faculty.ContactNumber = *req.ContactNumber
	}
	if req.IsActive != nil {
		faculty.IsActive = *req.IsActive
	}

	if err := faculty.Validate(); err != nil {
		return nil, err
	}
	if err := s.faculties.Update(ctx, faculty); err != nil {
		return nil, err
	}

	return faculty, nil
}

// DeleteFaculty removes a faculty member together with every course they
// teach and all enrollments into those courses. Deletion order matters:
// enrollments, then courses, then the profile itself.
func (s *facultyService) DeleteFaculty(ctx context.Context, id int64) error {
	if _, err := s.faculties.GetByID(ctx, id); err != nil {
		return err
	}

	courses, err := s.courses.ListByFacultyID(ctx, id)
	if err != nil {
		return err
	}
	for _, course := range courses {
		if err := s.enrollments.DeleteByCourseID(ctx, course.ID); err != nil {
			return err
		}
		if err := s.courses.Delete(ctx, course.ID); err != nil {
			return err
		}
	}

	return s.faculties.Delete(ctx, id)
}
