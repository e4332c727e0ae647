package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/app/services"
	"github.com/emre/campushub/internal/middleware"
)

// EnrollmentController handles the enrollment lifecycle operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll enrolls a student into a course
// @Summary Enroll into a course
// @Description Enrolls the calling student (or, for admins, the given student) into a course. Fails when the course is full or the student is already enrolled.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CreateEnrollmentRequest false "Enrollment information (student id, admin only)"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Caller may not create enrollments"
// @Failure 404 {object} dto.ErrorResponse "Course or student not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled or course capacity reached"
// @Router /courses/{id}/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateEnrollmentRequest
	if ctx.Request.ContentLength > 0 && !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx, principal, courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment))
}

// GetEnrollment retrieves one enrollment with its sub-records
// @Summary Get enrollment by ID
// @Description Retrieves an enrollment with its attendance, assignment and exam records. Students see only their own enrollments; faculty only those of courses they teach.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 403 {object} dto.ErrorResponse "Caller may not view this enrollment"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollment(ctx, principal, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// ListEnrollments retrieves enrollments matching the query filters
// @Summary List enrollments
// @Description Lists enrollments. Students are scoped to their own; faculty must name one of their courses.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param student query int false "Filter by student (admin only)"
// @Param course query int false "Filter by course"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment}
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	filter := models.EnrollmentFilter{
		Status: models.EnrollmentStatus(ctx.Query("status")),
	}
	if studentID, err := strconv.ParseInt(ctx.Query("student"), 10, 64); err == nil {
		filter.StudentID = studentID
	}
	if courseID, err := strconv.ParseInt(ctx.Query("course"), 10, 64); err == nil {
		filter.CourseID = courseID
	}

	enrollments, err := c.enrollmentService.ListEnrollments(ctx, principal, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(enrollments, len(enrollments)))
}

// UpdateEnrollmentStatus transitions the enrollment status
// @Summary Update enrollment status
// @Description Transitions the enrollment to the given status. A grade supplied alongside the transition is stored and triggers a final-grade recompute. Instructor or admin only.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateEnrollmentStatusRequest true "New status and optional grade"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Invalid status or grade"
// @Failure 403 {object} dto.ErrorResponse "Caller does not teach this course"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/status [put]
func (c *EnrollmentController) UpdateEnrollmentStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.UpdateEnrollmentStatus(ctx, principal, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// RecordAttendance records attendance for one calendar date
// @Summary Record attendance
// @Description Records (or overwrites) the attendance entry for one calendar date. Instructor or admin only.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body dto.RecordAttendanceRequest true "Attendance entry"
// @Success 200 {object} dto.APIResponse{data=models.AttendanceRecord}
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance data"
// @Failure 403 {object} dto.ErrorResponse "Caller does not teach this course"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/attendance [post]
func (c *EnrollmentController) RecordAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.RecordAttendanceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	record, err := c.enrollmentService.RecordAttendance(ctx, principal, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// DeleteEnrollment deletes an enrollment
// @Summary Delete an enrollment
// @Description Deletes an enrollment and its sub-records. Admin only.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 204 "Enrollment deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, principal, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
