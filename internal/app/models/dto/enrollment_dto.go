package dto

import "time"

// CreateEnrollmentRequest enrolls a student into a course. StudentID is
// only honored for admin callers; students always enroll themselves.
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"student,omitempty" binding:"omitempty,gt=0"`
}

// UpdateEnrollmentStatusRequest transitions the enrollment status. A grade
// may be set in the same call; doing so triggers a final-grade recompute.
type UpdateEnrollmentStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=enrolled completed dropped failed"`
	Grade  *string `json:"grade,omitempty"`
}

// RecordAttendanceRequest records (or overwrites) attendance for one
// calendar date.
type RecordAttendanceRequest struct {
	Date   time.Time `json:"date" binding:"required"`
	Status string    `json:"status" binding:"required,oneof=present absent late excused"`
	Notes  *string   `json:"notes,omitempty"`
}

// AddAssignmentRequest creates an assignment sub-record on an enrollment.
type AddAssignmentRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	MaxScore    *float64   `json:"maxScore,omitempty" binding:"omitempty,gt=0"`
}

// SubmitAssignmentRequest marks an assignment submitted, optionally with an
// opaque file reference produced by the upload layer.
type SubmitAssignmentRequest struct {
	FileURL *string `json:"fileUrl,omitempty"`
}

// GradeAssignmentRequest records a score and feedback on an assignment.
type GradeAssignmentRequest struct {
	Score    float64 `json:"score" binding:"min=0"`
	Feedback string  `json:"feedback,omitempty"`
}

// AddExamRequest creates an exam sub-record on an enrollment.
type AddExamRequest struct {
	Title     string     `json:"title" binding:"required"`
	ExamType  string     `json:"examType" binding:"required,oneof=quiz midterm final project presentation"`
	Date      *time.Time `json:"date,omitempty"`
	MaxScore  *float64   `json:"maxScore,omitempty" binding:"omitempty,gt=0"`
	Weightage *float64   `json:"weightage,omitempty" binding:"omitempty,gt=0"`
}

// RecordExamScoreRequest records a score on an exam.
type RecordExamScoreRequest struct {
	Score float64 `json:"score" binding:"min=0"`
	Notes *string `json:"notes,omitempty"`
}

// GradeSummaryResponse exposes the derived academic metrics of an
// enrollment. AttendancePercentage and CurrentGradePercentage are computed
// on read; FinalGrade is recomputed after grade-affecting mutations.
type GradeSummaryResponse struct {
	EnrollmentID           int64   `json:"enrollmentId"`
	Status                 string  `json:"status"`
	AttendancePercentage   int     `json:"attendancePercentage"`
	CurrentGradePercentage int     `json:"currentGradePercentage"`
	FinalGrade             *string `json:"finalGrade,omitempty"`
	TotalScore             float64 `json:"totalScore"`
}
