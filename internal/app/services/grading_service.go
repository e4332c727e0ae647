package services

import (
	"context"
	"fmt"
	"time"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/pkg/apperrors"
)

// GradingService defines operations on the assignment and exam sub-records
// of an enrollment, plus the derived grade summary.
type GradingService interface {
	AddAssignment(ctx context.Context, principal models.Principal, enrollmentID int64, req *dto.AddAssignmentRequest) (*models.Assignment, error)
	SubmitAssignment(ctx context.Context, principal models.Principal, enrollmentID, assignmentID int64, req *dto.SubmitAssignmentRequest) (*models.Assignment, error)
	GradeAssignment(ctx context.Context, principal models.Principal, enrollmentID, assignmentID int64, req *dto.GradeAssignmentRequest) (*models.Assignment, error)
	AddExam(ctx context.Context, principal models.Principal, enrollmentID int64, req *dto.AddExamRequest) (*models.Exam, error)
	RecordExamScore(ctx context.Context, principal models.Principal, enrollmentID, examID int64, req *dto.RecordExamScoreRequest) (*models.Exam, error)
	GradeSummary(ctx context.Context, principal models.Principal, enrollmentID int64) (*dto.GradeSummaryResponse, error)
}

type gradingService struct {
	enrollments EnrollmentStore
	students    StudentStore
	faculties   FacultyStore
	courses     CourseStore
	now         Clock
}

// NewGradingService creates a new grading service
func NewGradingService(enrollments EnrollmentStore, students StudentStore,
	faculties FacultyStore, courses CourseStore, now Clock) GradingService {
	if now == nil {
		now = time.Now
	}
	return &gradingService{
		enrollments: enrollments,
		students:    students,
		faculties:   faculties,
		courses:     courses,
		now:         now,
	}
}

// AddAssignment attaches a new assignment to an enrollment. Instructor or
// admin only; the assignment starts unsubmitted.
func (s *gradingService) AddAssignment(ctx context.Context, principal models.Principal, enrollmentID int64, req *dto.AddAssignmentRequest) (*models.Assignment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if err := ensureInstructorOrAdmin(ctx, s.faculties, s.courses, principal, enrollment); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		EnrollmentID: enrollmentID,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		Status:       models.AssignmentNotSubmitted,
		MaxScore:     req.MaxScore,
	}
	if err := s.enrollments.AddAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// SubmitAssignment marks an assignment submitted by the enrolled student.
// A past-due submission is still recorded as submitted; the submitted date
// carries the lateness.
func (s *gradingService) SubmitAssignment(ctx context.Context, principal models.Principal, enrollmentID, assignmentID int64, req *dto.SubmitAssignmentRequest) (*models.Assignment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}

	student, err := ownStudent(ctx, s.students, principal)
	if err != nil {
		return nil, err
	}
	if student.ID != enrollment.StudentID {
		return nil, apperrors.NewForbiddenError("students may only submit their own assignments")
	}

	assignment := enrollment.FindAssignment(assignmentID)
	if assignment == nil {
		return nil, apperrors.ErrAssignmentNotFound
	}
	if assignment.Status == models.AssignmentGraded {
		return nil, apperrors.NewConflictError("assignment has already been graded")
	}

	submittedAt := s.now()
	assignment.SubmittedDate = &submittedAt
	assignment.Status = models.AssignmentSubmitted
	if req.FileURL != nil {
		assignment.FileURL = req.FileURL
	}

	if err := s.enrollments.UpdateAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// GradeAssignment records a score and feedback on an assignment and
// recomputes the enrollment's final grade from all recorded scores.
func (s *gradingService) GradeAssignment(ctx context.Context, principal models.Principal, enrollmentID, assignmentID int64, req *dto.GradeAssignmentRequest) (*models.Assignment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if err := ensureInstructorOrAdmin(ctx, s.faculties, s.courses, principal, enrollment); err != nil {
		return nil, err
	}

	assignment := enrollment.FindAssignment(assignmentID)
	if assignment == nil {
		return nil, apperrors.ErrAssignmentNotFound
	}
	if assignment.MaxScore != nil && req.Score > *assignment.MaxScore {
		return nil, apperrors.NewValidationError(fmt.Sprintf("score cannot exceed the maximum of %g", *assignment.MaxScore))
	}

	score := req.Score
	assignment.Score = &score
	if req.Feedback != "" {
		feedback := req.Feedback
		assignment.Feedback = &feedback
	}
	assignment.Status = models.AssignmentGraded

	if err := s.enrollments.UpdateAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	if err := s.enrollments.SetFinalGrade(ctx, enrollmentID, enrollment.CalculateFinalGrade()); err != nil {
		return nil, err
	}

	return assignment, nil
}

// AddExam attaches a new exam to an enrollment. Instructor or admin only.
func (s *gradingService) AddExam(ctx context.Context, principal models.Principal, enrollmentID int64, req *dto.AddExamRequest) (*models.Exam, error) {
	enrollment, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if err := ensureInstructorOrAdmin(ctx, s.faculties, s.courses, principal, enrollment); err != nil {
		return nil, err
	}

	examType := models.ExamType(req.ExamType)
	if !examType.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown exam type %q", req.ExamType))
	}

	exam := &models.Exam{
		EnrollmentID: enrollmentID,
		Title:        req.Title,
		ExamType:     examType,
		Date:         req.Date,
		MaxScore:     req.MaxScore,
		Weightage:    req.Weightage,
	}
	if err := s.enrollments.AddExam(ctx, exam); err != nil {
		return nil, err
	}

	return exam, nil
}

// RecordExamScore records a score on an exam and recomputes the
// enrollment's final grade from all recorded scores.
func (s *gradingService) RecordExamScore(ctx context.Context, principal models.Principal, enrollmentID, examID int64, req *dto.RecordExamScoreRequest) (*models.Exam, error) {
	enrollment, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if err := ensureInstructorOrAdmin(ctx, s.faculties, s.courses, principal, enrollment); err != nil {
		return nil, err
	}

	exam := enrollment.FindExam(examID)
	if exam == nil {
		return nil, apperrors.ErrExamNotFound
	}
	if exam.MaxScore != nil && req.Score > *exam.MaxScore {
		return nil, apperrors.NewValidationError(fmt.Sprintf("score cannot exceed the maximum of %g", *exam.MaxScore))
	}

	score := req.Score
	exam.Score = &score
	if req.Notes != nil {
		exam.Notes = req.Notes
	}

	if err := s.enrollments.UpdateExam(ctx, exam); err != nil {
		return nil, err
	}

	if err := s.enrollments.SetFinalGrade(ctx, enrollmentID, enrollment.CalculateFinalGrade()); err != nil {
		return nil, err
	}

	return exam, nil
}

// GradeSummary returns the derived academic metrics of an enrollment:
// attendance percentage, normalized current grade percentage, the stored
// final grade and the raw point total.
func (s *gradingService) GradeSummary(ctx context.Context, principal models.Principal, enrollmentID int64) (*dto.GradeSummaryResponse, error) {
	enrollment, err := s.enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if err := ensureCanViewEnrollment(ctx, s.students, s.faculties, s.courses, principal, enrollment); err != nil {
		return nil, err
	}

	var total float64
	for _, a := range enrollment.Assignments {
		if a.Score != nil {
			total += *a.Score
		}
	}
	for _, x := range enrollment.Exams {
		if x.Score != nil {
			total += *x.Score
		}
	}

	summary := &dto.GradeSummaryResponse{
		EnrollmentID:           enrollment.ID,
		Status:                 string(enrollment.Status),
		AttendancePercentage:   enrollment.AttendancePercentage(),
		CurrentGradePercentage: enrollment.CurrentGradePercentage(),
		TotalScore:             total,
	}
	if enrollment.FinalGrade != nil {
		fg := string(*enrollment.FinalGrade)
		summary.FinalGrade = &fg
	}

	return summary, nil
}
