package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/app/services"
	"github.com/emre/campushub/internal/middleware"
)

// GradingController handles assignment and exam sub-records and the derived
// grade summary of an enrollment
type GradingController struct {
	gradingService services.GradingService
}

// NewGradingController creates a new GradingController
func NewGradingController(gradingService services.GradingService) *GradingController {
	return &GradingController{
		gradingService: gradingService,
	}
}

// AddAssignment attaches an assignment to an enrollment
// @Summary Add an assignment
// @Description Attaches a new assignment to an enrollment. Instructor or admin only.
// @Tags grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body dto.AddAssignmentRequest true "Assignment information"
// @Success 201 {object} dto.APIResponse{data=models.Assignment}
// @Failure 403 {object} dto.ErrorResponse "Caller does not teach this course"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/assignments [post]
func (c *GradingController) AddAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.AddAssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.gradingService.AddAssignment(ctx, principal, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(assignment))
}

// SubmitAssignment marks an assignment submitted
// @Summary Submit an assignment
// @Description Marks an assignment submitted by the enrolled student, recording the submission date. Resubmitting a graded assignment is rejected.
// @Tags grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param assignmentId path int true "Assignment ID"
// @Param request body dto.SubmitAssignmentRequest false "Submission information"
// @Success 200 {object} dto.APIResponse{data=models.Assignment}
// @Failure 403 {object} dto.ErrorResponse "Not the enrolled student"
// @Failure 404 {object} dto.ErrorResponse "Enrollment or assignment not found"
// @Failure 409 {object} dto.ErrorResponse "Assignment already graded"
// @Router /enrollments/{id}/assignments/{assignmentId}/submit [post]
func (c *GradingController) SubmitAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	assignmentID, ok := parseIDParam(ctx, "assignmentId")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.SubmitAssignmentRequest
	if ctx.Request.ContentLength > 0 && !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.gradingService.SubmitAssignment(ctx, principal, id, assignmentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignment))
}

// GradeAssignment records a score on an assignment
// @Summary Grade an assignment
// @Description Records a score and feedback on an assignment and recomputes the final grade. Instructor or admin only.
// @Tags grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param assignmentId path int true "Assignment ID"
// @Param request body dto.GradeAssignmentRequest true "Score and feedback"
// @Success 200 {object} dto.APIResponse{data=models.Assignment}
// @Failure 400 {object} dto.ErrorResponse "Score exceeds the maximum"
// @Failure 403 {object} dto.ErrorResponse "Caller does not teach this course"
// @Failure 404 {object} dto.ErrorResponse "Enrollment or assignment not found"
// @Router /enrollments/{id}/assignments/{assignmentId}/grade [post]
func (c *GradingController) GradeAssignment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	assignmentID, ok := parseIDParam(ctx, "assignmentId")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.GradeAssignmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.gradingService.GradeAssignment(ctx, principal, id, assignmentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignment))
}

// AddExam attaches an exam to an enrollment
// @Summary Add an exam
// @Description Attaches a new exam to an enrollment. Instructor or admin only.
// @Tags grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body dto.AddExamRequest true "Exam information"
// @Success 201 {object} dto.APIResponse{data=models.Exam}
// @Failure 403 {object} dto.ErrorResponse "Caller does not teach this course"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/exams [post]
func (c *GradingController) AddExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.AddExamRequest
	if !bindJSON(ctx, &req) {
		return
	}

	exam, err := c.gradingService.AddExam(ctx, principal, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(exam))
}

// RecordExamScore records a score on an exam
// @Summary Record an exam score
// @Description Records a score on an exam and recomputes the final grade. Instructor or admin only.
// @Tags grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param examId path int true "Exam ID"
// @Param request body dto.RecordExamScoreRequest true "Score and notes"
// @Success 200 {object} dto.APIResponse{data=models.Exam}
// @Failure 400 {object} dto.ErrorResponse "Score exceeds the maximum"
// @Failure 403 {object} dto.ErrorResponse "Caller does not teach this course"
// @Failure 404 {object} dto.ErrorResponse "Enrollment or exam not found"
// @Router /enrollments/{id}/exams/{examId}/score [post]
func (c *GradingController) RecordExamScore(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	examID, ok := parseIDParam(ctx, "examId")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.RecordExamScoreRequest
	if !bindJSON(ctx, &req) {
		return
	}

	exam, err := c.gradingService.RecordExamScore(ctx, principal, id, examID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exam))
}

// GradeSummary returns the derived academic metrics of an enrollment
// @Summary Get the grade summary
// @Description Returns attendance percentage, normalized current grade percentage, final grade and the raw point total of an enrollment.
// @Tags grading
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeSummaryResponse}
// @Failure 403 {object} dto.ErrorResponse "Caller may not view this enrollment"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/grades [get]
func (c *GradingController) GradeSummary(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	summary, err := c.gradingService.GradeSummary(ctx, principal, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}
