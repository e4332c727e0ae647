package services

import (
	"context"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/pkg/apperrors"
)

// CourseService defines operations on courses.
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

type courseService struct {
	courses     CourseStore
	faculties   FacultyStore
	enrollments EnrollmentStore
}

// NewCourseService creates a new course service
func NewCourseService(courses CourseStore, faculties FacultyStore, enrollments EnrollmentStore) CourseService {
	return &courseService{
		courses:     courses,
		faculties:   faculties,
		enrollments: enrollments,
	}
}

// CreateCourse creates a course owned by an existing faculty member.
func (s *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if _, err := s.faculties.GetByID(ctx, req.FacultyID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:        req.Title,
		Code:         req.Code,
		Credits:      req.Credits,
		Description:  req.Description,
		Department:   models.Department(req.Department),
		FacultyID:    req.FacultyID,
		Semester:     req.Semester,
		AcademicYear: req.AcademicYear,
		MaxStudents:  req.MaxStudents,
		IsActive:     true,
	}
	if err := course.Validate(); err != nil {
		return nil, err
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourse retrieves a course by ID
func (s *courseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// ListCourses retrieves courses matching the filter
func (s *courseService) ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	return s.courses.List(ctx, filter)
}

// UpdateCourse applies the provided fields to an existing course. The code
// is immutable; shrinking MaxStudents below the current enrollment count is
// rejected so existing enrollments never exceed capacity.
func (s *courseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.FacultyID != nil {
		if _, err := s.faculties.GetByID(ctx, *req.FacultyID); err != nil {
			return nil, err
		}
		course.FacultyID = *req.FacultyID
	}
	if req.Semester != nil {
		course.Semester = *req.Semester
	}
	if req.AcademicYear != nil {
		course.AcademicYear = *req.AcademicYear
	}
	if req.MaxStudents != nil {
		enrolled, err := s.enrollments.CountByCourseID(ctx, id)
		if err != nil {
			return nil, err
		}
		if *req.MaxStudents < enrolled {
			return nil, apperrors.NewValidationError("maximum students cannot be lower than the current enrollment count")
		}
		course.MaxStudents = *req.MaxStudents
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course and every enrollment into it. The
// enrollments go first so nothing keeps referencing a vanished course.
func (s *courseService) DeleteCourse(ctx context.Context, id int64) error {
	if _, err := s.courses.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.enrollments.DeleteByCourseID(ctx, id); err != nil {
		return err
	}
	return s.courses.Delete(ctx, id)
}
