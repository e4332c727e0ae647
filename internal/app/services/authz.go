package services

import (
	"context"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/pkg/apperrors"
)

// ownStudent resolves the student profile linked to the caller's account.
func ownStudent(ctx context.Context, students StudentStore, principal models.Principal) (*models.Student, error) {
	if principal.Role != models.RoleStudent {
		return nil, apperrors.NewForbiddenError("caller is not a student")
	}
	return students.GetByUserID(ctx, principal.UserID)
}

// ensureInstructorOrAdmin allows admins through and otherwise requires the
// caller to be the faculty member teaching the enrollment's course.
func ensureInstructorOrAdmin(ctx context.Context, faculties FacultyStore, courses CourseStore,
	principal models.Principal, enrollment *models.Enrollment) error {
	if principal.IsAdmin() {
		return nil
	}
	if principal.Role != models.RoleFaculty {
		return apperrors.NewForbiddenError("only the course instructor or an admin may perform this operation")
	}

	faculty, err := faculties.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return err
	}
	course, err := courses.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return err
	}
	if course.FacultyID != faculty.ID {
		return apperrors.NewForbiddenError("caller does not teach this course")
	}
	return nil
}

// ensureCanViewEnrollment allows admins, the enrolled student and the course
// instructor to read an enrollment.
func ensureCanViewEnrollment(ctx context.Context, students StudentStore, faculties FacultyStore,
	courses CourseStore, principal models.Principal, enrollment *models.Enrollment) error {
	if principal.IsAdmin() {
		return nil
	}

	switch principal.Role {
	case models.RoleStudent:
		student, err := students.GetByUserID(ctx, principal.UserID)
		if err != nil {
			return err
		}
		if student.ID != enrollment.StudentID {
			return apperrors.NewForbiddenError("students may only view their own enrollments")
		}
		return nil
	case models.RoleFaculty:
		return ensureInstructorOrAdmin(ctx, faculties, courses, principal, enrollment)
	}

	return apperrors.ErrPermissionDenied
}
