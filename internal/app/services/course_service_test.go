package services

import (
	"context"
	"errors"
	"testing"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/pkg/apperrors"
)

func validCreateCourseRequest(facultyID int64) *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Title:        "Operating Systems",
		Code:         "CS305",
		Credits:      4,
		Description:  "Processes, scheduling and memory management",
		Department:   "Computer Science",
		FacultyID:    facultyID,
		Semester:     5,
		AcademicYear: "2026-2027",
		MaxStudents:  60,
	}
}

func TestCreateCourse(t *testing.T) {
	e := newEnv()
	faculty, _ := e.addFaculty(t)

	course, err := e.courseSvc.CreateCourse(context.Background(), validCreateCourseRequest(faculty.ID))
	if err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	if !course.IsActive {
		t.Error("new course should be active")
	}
	if course.FacultyID != faculty.ID {
		t.Errorf("FacultyID = %d, want %d", course.FacultyID, faculty.ID)
	}
}

func TestCreateCourseRejectsUnknownFaculty(t *testing.T) {
	e := newEnv()

	_, err := e.courseSvc.CreateCourse(context.Background(), validCreateCourseRequest(42))
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Errorf("err = %v, want faculty not found", err)
	}
}

func TestCreateCourseRejectsDuplicateCode(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	faculty, _ := e.addFaculty(t)

	if _, err := e.courseSvc.CreateCourse(ctx, validCreateCourseRequest(faculty.ID)); err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}

	_, err := e.courseSvc.CreateCourse(ctx, validCreateCourseRequest(faculty.ID))
	if !errors.Is(err, apperrors.ErrCourseCodeExists) {
		t.Errorf("err = %v, want ErrCourseCodeExists", err)
	}
}

func TestUpdateCourseRejectsShrinkBelowEnrollment(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	faculty, _ := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	for i := 0; i < 2; i++ {
		_, principal := e.addStudent(t)
		if _, err := e.enrollmentSvc.Enroll(ctx, principal, course.ID, &dto.CreateEnrollmentRequest{}); err != nil {
			t.Fatalf("Enroll: %v", err)
		}
	}

	one := 1
	_, err := e.courseSvc.UpdateCourse(ctx, course.ID, &dto.UpdateCourseRequest{MaxStudents: &one})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("err = %v, want validation failure", err)
	}

	// shrinking to exactly the enrolled count is fine
	two := 2
	updated, err := e.courseSvc.UpdateCourse(ctx, course.ID, &dto.UpdateCourseRequest{MaxStudents: &two})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated.MaxStudents != 2 {
		t.Errorf("MaxStudents = %d, want 2", updated.MaxStudents)
	}
}

func TestUpdateCourseReassignsFaculty(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	faculty, _ := e.addFaculty(t)
	other, _ := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	unknown := int64(99)
	if _, err := e.courseSvc.UpdateCourse(ctx, course.ID, &dto.UpdateCourseRequest{FacultyID: &unknown}); !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Errorf("err = %v, want faculty not found", err)
	}

	updated, err := e.courseSvc.UpdateCourse(ctx, course.ID, &dto.UpdateCourseRequest{FacultyID: &other.ID})
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated.FacultyID != other.ID {
		t.Errorf("FacultyID = %d, want %d", updated.FacultyID, other.ID)
	}
}

func TestDeleteCourseCascadesEnrollments(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	faculty, _ := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)
	student, principal := e.addStudent(t)

	if _, err := e.enrollmentSvc.Enroll(ctx, principal, course.ID, &dto.CreateEnrollmentRequest{}); err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	if err := e.courseSvc.DeleteCourse(ctx, course.ID); err != nil {
		t.Fatalf("DeleteCourse: %v", err)
	}

	if _, err := e.courses.GetByID(ctx, course.ID); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("course still present after delete: %v", err)
	}
	remaining, _ := e.enrollments.List(ctx, models.EnrollmentFilter{StudentID: student.ID})
	if len(remaining) != 0 {
		t.Errorf("enrollments remaining after delete: %d", len(remaining))
	}
}
