package services

import (
	"context"
	"fmt"
	"time"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/pkg/apperrors"
	"github.com/emre/campushub/internal/pkg/helpers"
)

// EnrollmentService defines the enrollment lifecycle operations: enrolling
// into a course, transitioning status, recording attendance and removal.
type EnrollmentService interface {
	Enroll(ctx context.Context, principal models.Principal, courseID int64, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	GetEnrollment(ctx context.Context, principal models.Principal, id int64) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context, principal models.Principal, filter models.EnrollmentFilter) ([]*models.Enrollment, error)
	UpdateEnrollmentStatus(ctx context.Context, principal models.Principal, id int64, req *dto.UpdateEnrollmentStatusRequest) (*models.Enrollment, error)
	RecordAttendance(ctx context.Context, principal models.Principal, id int64, req *dto.RecordAttendanceRequest) (*models.AttendanceRecord, error)
	DeleteEnrollment(ctx context.Context, principal models.Principal, id int64) error
}

type enrollmentService struct {
	enrollments EnrollmentStore
	students    StudentStore
	faculties   FacultyStore
	courses     CourseStore
	now         Clock
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollments EnrollmentStore, students StudentStore,
	faculties FacultyStore, courses CourseStore, now Clock) EnrollmentService {
	if now == nil {
		now = time.Now
	}
	return &enrollmentService{
		enrollments: enrollments,
		students:    students,
		faculties:   faculties,
		courses:     courses,
		now:         now,
	}
}

// Enroll enrolls a student into a course. Students always enroll themselves;
// admins may enroll any student by passing their id. The store rejects the
// write when the course is full or the pair is already enrolled, so two
// racing requests for the last seat cannot both succeed.
func (s *enrollmentService) Enroll(ctx context.Context, principal models.Principal, courseID int64, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	var studentID int64
	switch {
	case principal.Role == models.RoleStudent:
		student, err := ownStudent(ctx, s.students, principal)
		if err != nil {
			return nil, err
		}
		studentID = student.ID
	case principal.IsAdmin():
		if req.StudentID <= 0 {
			return nil, apperrors.NewValidationError("admin enrollment requires a student id")
		}
		if _, err := s.students.GetByID(ctx, req.StudentID); err != nil {
			return nil, err
		}
		studentID = req.StudentID
	default:
		return nil, apperrors.NewForbiddenError("only students and admins may create enrollments")
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsActive {
		return nil, apperrors.NewValidationError("cannot enroll into an inactive course")
	}

	enrollment := &models.Enrollment{
		StudentID:      studentID,
		CourseID:       courseID,
		EnrollmentDate: s.now(),
		Status:         models.StatusEnrolled,
		IsActive:       true,
	}
	if err := enrollment.Validate(); err != nil {
		return nil, err
	}

	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// GetEnrollment retrieves one enrollment with its sub-records. Students see
// only their own enrollments; faculty only those of courses they teach.
func (s *enrollmentService) GetEnrollment(ctx context.Context, principal models.Principal, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureCanViewEnrollment(ctx, s.students, s.faculties, s.courses, principal, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ListEnrollments retrieves enrollments matching the filter. Non-admin
// callers get the filter narrowed to their own scope: students to their own
// enrollments, faculty to one of their own courses.
func (s *enrollmentService) ListEnrollments(ctx context.Context, principal models.Principal, filter models.EnrollmentFilter) ([]*models.Enrollment, error) {
	switch {
	case principal.IsAdmin():
		// unrestricted
	case principal.Role == models.RoleStudent:
		student, err := ownStudent(ctx, s.students, principal)
		if err != nil {
			return nil, err
		}
		filter.StudentID = student.ID
	case principal.Role == models.RoleFaculty:
		if filter.CourseID == 0 {
			return nil, apperrors.NewValidationError("faculty listing requires a course id")
		}
		faculty, err := s.faculties.GetByUserID(ctx, principal.UserID)
		if err != nil {
			return nil, err
		}
		course, err := s.courses.GetByID(ctx, filter.CourseID)
		if err != nil {
			return nil, err
		}
		if course.FacultyID != faculty.ID {
			return nil, apperrors.NewForbiddenError("caller does not teach this course")
		}
	default:
		return nil, apperrors.ErrPermissionDenied
	}

	return s.enrollments.List(ctx, filter)
}

// UpdateEnrollmentStatus transitions the enrollment to the requested status.
// Any status may follow any other; the history is not constrained. A grade
// supplied alongside the transition is stored and triggers a final-grade
// recompute over all recorded scores.
func (s *enrollmentService) UpdateEnrollmentStatus(ctx context.Context, principal models.Principal, id int64, req *dto.UpdateEnrollmentStatusRequest) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureInstructorOrAdmin(ctx, s.faculties, s.courses, principal, enrollment); err != nil {
		return nil, err
	}

	status := models.EnrollmentStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown enrollment status %q", req.Status))
	}

	var grade *models.LetterGrade
	if req.Grade != nil {
		g := models.LetterGrade(*req.Grade)
		if !g.Valid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown grade %q", *req.Grade))
		}
		grade = &g
	}

	if err := s.enrollments.UpdateStatus(ctx, id, status, grade); err != nil {
		return nil, err
	}

	if grade != nil {
		final := enrollment.CalculateFinalGrade()
		if err := s.enrollments.SetFinalGrade(ctx, id, final); err != nil {
			return nil, err
		}
	}

	return s.enrollments.GetByID(ctx, id)
}

// RecordAttendance records attendance for one calendar date, overwriting any
// record already present for that date. The incoming timestamp is truncated
// to its UTC calendar date so two timestamps on the same day hit the same
// record. Absent notes keep the previous value.
func (s *enrollmentService) RecordAttendance(ctx context.Context, principal models.Principal, id int64, req *dto.RecordAttendanceRequest) (*models.AttendanceRecord, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureInstructorOrAdmin(ctx, s.faculties, s.courses, principal, enrollment); err != nil {
		return nil, err
	}

	status := models.AttendanceStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown attendance status %q", req.Status))
	}

	record := &models.AttendanceRecord{
		EnrollmentID: id,
		Date:         helpers.TruncateToDate(req.Date),
		Status:       status,
		Notes:        req.Notes,
	}
	if err := s.enrollments.UpsertAttendance(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteEnrollment removes an enrollment and its sub-records. Admin only;
// students who want out of a course drop it via a status transition instead.
func (s *enrollmentService) DeleteEnrollment(ctx context.Context, principal models.Principal, id int64) error {
	if !principal.IsAdmin() {
		return apperrors.NewForbiddenError("only admins may delete enrollments")
	}
	return s.enrollments.Delete(ctx, id)
}
