package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/pkg/apperrors"
)

func TestEnrollStudentSelf(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	student, principal := e.addStudent(t)
	faculty, _ := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	enrollment, err := e.enrollmentSvc.Enroll(ctx, principal, course.ID, &dto.CreateEnrollmentRequest{})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if enrollment.StudentID != student.ID {
		t.Errorf("StudentID = %d, want %d", enrollment.StudentID, student.ID)
	}
	if enrollment.Status != models.StatusEnrolled {
		t.Errorf("Status = %q, want %q", enrollment.Status, models.StatusEnrolled)
	}
	if enrollment.EnrollmentDate != testClock() {
		t.Errorf("EnrollmentDate = %v, want %v", enrollment.EnrollmentDate, testClock())
	}
}

func TestEnrollDuplicateRejected(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, principal := e.addStudent(t)
	faculty, _ := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	if _, err := e.enrollmentSvc.Enroll(ctx, principal, course.ID, &dto.CreateEnrollmentRequest{}); err != nil {
		t.Fatalf("first Enroll: %v", err)
	}

	_, err := e.enrollmentSvc.Enroll(ctx, principal, course.ID, &dto.CreateEnrollmentRequest{})
	if !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Errorf("err = %v, want ErrAlreadyEnrolled", err)
	}
}

func TestEnrollCapacityEnforced(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	faculty, _ := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 2)

	for i := 0; i < 2; i++ {
		_, principal := e.addStudent(t)
		if _, err := e.enrollmentSvc.Enroll(ctx, principal, course.ID, &dto.CreateEnrollmentRequest{}); err != nil {
			t.Fatalf("Enroll %d: %v", i, err)
		}
	}

	_, overflow := e.addStudent(t)
	_, err := e.enrollmentSvc.Enroll(ctx, overflow, course.ID, &dto.CreateEnrollmentRequest{})
	if !errors.Is(err, apperrors.ErrCourseCapacityFull) {
		t.Errorf("err = %v, want ErrCourseCapacityFull", err)
	}
}

func TestEnrollAdminOnBehalf(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	student, _ := e.addStudent(t)
	faculty, _ := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)
	admin := e.adminPrincipal()

	enrollment, err := e.enrollmentSvc.Enroll(ctx, admin, course.ID,
		&dto.CreateEnrollmentRequest{StudentID: student.ID})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if enrollment.StudentID != student.ID {
		t.Errorf("StudentID = %d, want %d", enrollment.StudentID, student.ID)
	}

	// admin must name the student
	_, err = e.enrollmentSvc.Enroll(ctx, admin, course.ID, &dto.CreateEnrollmentRequest{})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("err = %v, want validation failure", err)
	}
}

func TestEnrollFacultyForbidden(t *testing.T) {
	e := newEnv()
	faculty, principal := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	_, err := e.enrollmentSvc.Enroll(context.Background(), principal, course.ID, &dto.CreateEnrollmentRequest{})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("err = %v, want permission denied", err)
	}
}

func TestEnrollInactiveCourseRejected(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, principal := e.addStudent(t)
	faculty, _ := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)
	course.IsActive = false

	_, err := e.enrollmentSvc.Enroll(ctx, principal, course.ID, &dto.CreateEnrollmentRequest{})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("err = %v, want validation failure", err)
	}
}

func TestGetEnrollmentAuthorization(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, owner := e.addStudent(t)
	faculty, instructor := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	enrollment, err := e.enrollmentSvc.Enroll(ctx, owner, course.ID, &dto.CreateEnrollmentRequest{})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	if _, err := e.enrollmentSvc.GetEnrollment(ctx, owner, enrollment.ID); err != nil {
		t.Errorf("owner read: %v", err)
	}
	if _, err := e.enrollmentSvc.GetEnrollment(ctx, instructor, enrollment.ID); err != nil {
		t.Errorf("instructor read: %v", err)
	}
	if _, err := e.enrollmentSvc.GetEnrollment(ctx, e.adminPrincipal(), enrollment.ID); err != nil {
		t.Errorf("admin read: %v", err)
	}

	_, stranger := e.addStudent(t)
	if _, err := e.enrollmentSvc.GetEnrollment(ctx, stranger, enrollment.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("stranger read: err = %v, want permission denied", err)
	}

	_, otherFaculty := e.addFaculty(t)
	if _, err := e.enrollmentSvc.GetEnrollment(ctx, otherFaculty, enrollment.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("non-instructor read: err = %v, want permission denied", err)
	}
}

func TestListEnrollmentsScopedToStudent(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	studentA, principalA := e.addStudent(t)
	_, principalB := e.addStudent(t)
	faculty, _ := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	if _, err := e.enrollmentSvc.Enroll(ctx, principalA, course.ID, &dto.CreateEnrollmentRequest{}); err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if _, err := e.enrollmentSvc.Enroll(ctx, principalB, course.ID, &dto.CreateEnrollmentRequest{}); err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	// student asking for everything still only sees their own
	list, err := e.enrollmentSvc.ListEnrollments(ctx, principalA, models.EnrollmentFilter{})
	if err != nil {
		t.Fatalf("ListEnrollments: %v", err)
	}
	if len(list) != 1 || list[0].StudentID != studentA.ID {
		t.Errorf("student sees %d enrollments, want only their own", len(list))
	}

	all, err := e.enrollmentSvc.ListEnrollments(ctx, e.adminPrincipal(), models.EnrollmentFilter{})
	if err != nil {
		t.Fatalf("ListEnrollments: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin sees %d enrollments, want 2", len(all))
	}
}

func TestUpdateEnrollmentStatus(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, owner := e.addStudent(t)
	faculty, instructor := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	enrollment, err := e.enrollmentSvc.Enroll(ctx, owner, course.ID, &dto.CreateEnrollmentRequest{})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	// the student cannot transition their own enrollment
	_, err = e.enrollmentSvc.UpdateEnrollmentStatus(ctx, owner, enrollment.ID,
		&dto.UpdateEnrollmentStatusRequest{Status: "dropped"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("student transition: err = %v, want permission denied", err)
	}

	updated, err := e.enrollmentSvc.UpdateEnrollmentStatus(ctx, instructor, enrollment.ID,
		&dto.UpdateEnrollmentStatusRequest{Status: "completed"})
	if err != nil {
		t.Fatalf("UpdateEnrollmentStatus: %v", err)
	}
	if updated.Status != models.StatusCompleted {
		t.Errorf("Status = %q, want completed", updated.Status)
	}

	// any status may follow any other
	updated, err = e.enrollmentSvc.UpdateEnrollmentStatus(ctx, instructor, enrollment.ID,
		&dto.UpdateEnrollmentStatusRequest{Status: "enrolled"})
	if err != nil {
		t.Fatalf("UpdateEnrollmentStatus: %v", err)
	}
	if updated.Status != models.StatusEnrolled {
		t.Errorf("Status = %q, want enrolled", updated.Status)
	}
}

func TestUpdateEnrollmentStatusWithGrade(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, owner := e.addStudent(t)
	faculty, instructor := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	enrollment, err := e.enrollmentSvc.Enroll(ctx, owner, course.ID, &dto.CreateEnrollmentRequest{})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	grade := "A-"
	updated, err := e.enrollmentSvc.UpdateEnrollmentStatus(ctx, instructor, enrollment.ID,
		&dto.UpdateEnrollmentStatusRequest{Status: "completed", Grade: &grade})
	if err != nil {
		t.Fatalf("UpdateEnrollmentStatus: %v", err)
	}
	if updated.Grade == nil || *updated.Grade != "A-" {
		t.Errorf("Grade = %v, want A-", updated.Grade)
	}
	// no scores recorded, so the recomputed final grade is F
	if updated.FinalGrade == nil || *updated.FinalGrade != "F" {
		t.Errorf("FinalGrade = %v, want F", updated.FinalGrade)
	}

	bad := "E"
	_, err = e.enrollmentSvc.UpdateEnrollmentStatus(ctx, instructor, enrollment.ID,
		&dto.UpdateEnrollmentStatusRequest{Status: "completed", Grade: &bad})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("err = %v, want validation failure", err)
	}
}

func TestRecordAttendanceUpsertsSameDate(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, owner := e.addStudent(t)
	faculty, instructor := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	enrollment, err := e.enrollmentSvc.Enroll(ctx, owner, course.ID, &dto.CreateEnrollmentRequest{})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	morning := time.Date(2026, time.September, 2, 9, 15, 0, 0, time.UTC)
	notes := "left early"
	if _, err := e.enrollmentSvc.RecordAttendance(ctx, instructor, enrollment.ID,
		&dto.RecordAttendanceRequest{Date: morning, Status: "present", Notes: &notes}); err != nil {
		t.Fatalf("RecordAttendance: %v", err)
	}

	// same calendar date, different wall-clock time, no notes: status is
	// overwritten, notes survive
	afternoon := time.Date(2026, time.September, 2, 15, 45, 0, 0, time.UTC)
	record, err := e.enrollmentSvc.RecordAttendance(ctx, instructor, enrollment.ID,
		&dto.RecordAttendanceRequest{Date: afternoon, Status: "late"})
	if err != nil {
		t.Fatalf("RecordAttendance: %v", err)
	}
	if record.Status != models.AttendanceLate {
		t.Errorf("Status = %q, want late", record.Status)
	}
	if record.Notes == nil || *record.Notes != "left early" {
		t.Errorf("Notes = %v, want retained", record.Notes)
	}

	got, err := e.enrollmentSvc.GetEnrollment(ctx, instructor, enrollment.ID)
	if err != nil {
		t.Fatalf("GetEnrollment: %v", err)
	}
	if len(got.Attendance) != 1 {
		t.Fatalf("attendance records = %d, want 1", len(got.Attendance))
	}
	wantDate := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	if !got.Attendance[0].Date.Equal(wantDate) {
		t.Errorf("Date = %v, want %v", got.Attendance[0].Date, wantDate)
	}
}

func TestRecordAttendanceForbiddenForStudents(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, owner := e.addStudent(t)
	faculty, _ := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	enrollment, err := e.enrollmentSvc.Enroll(ctx, owner, course.ID, &dto.CreateEnrollmentRequest{})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	_, err = e.enrollmentSvc.RecordAttendance(ctx, owner, enrollment.ID,
		&dto.RecordAttendanceRequest{Date: testClock(), Status: "present"})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("err = %v, want permission denied", err)
	}
}

func TestDeleteEnrollmentAdminOnly(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, owner := e.addStudent(t)
	faculty, _ := e.addFaculty(t)
	course := e.addCourse(t, faculty.ID, 30)

	enrollment, err := e.enrollmentSvc.Enroll(ctx, owner, course.ID, &dto.CreateEnrollmentRequest{})
	if err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	if err := e.enrollmentSvc.DeleteEnrollment(ctx, owner, enrollment.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("student delete: err = %v, want permission denied", err)
	}
	if err := e.enrollmentSvc.DeleteEnrollment(ctx, e.adminPrincipal(), enrollment.ID); err != nil {
		t.Errorf("admin delete: %v", err)
	}
}
