package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/app/services"
	"github.com/emre/campushub/internal/middleware"
)

// Controllers is a container for all controllers
type Controllers struct {
	StudentController    *StudentController
	FacultyController    *FacultyController
	CourseController     *CourseController
	EnrollmentController *EnrollmentController
	GradingController    *GradingController
}

// NewControllers creates a new controllers container
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		StudentController:    NewStudentController(svcs.StudentService),
		FacultyController:    NewFacultyController(svcs.FacultyService),
		CourseController:     NewCourseController(svcs.CourseService),
		EnrollmentController: NewEnrollmentController(svcs.EnrollmentService),
		GradingController:    NewGradingController(svcs.GradingService),
	}
}

// parseIDParam parses a numeric path parameter, writing the 400 response
// itself on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, fmt.Sprintf("Invalid %s", name))
		errorDetail = errorDetail.WithDetails(fmt.Sprintf("%s must be a positive number", name))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// requirePrincipal fetches the caller identity set by the auth middleware,
// writing the 401 response itself when it is missing.
func requirePrincipal(ctx *gin.Context) (models.Principal, bool) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
	}
	return principal, ok
}

// bindJSON binds the request body, writing the 400 response itself on
// failure.
func bindJSON(ctx *gin.Context, target interface{}) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}
