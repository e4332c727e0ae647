package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/app/services"
	"github.com/emre/campushub/internal/middleware"
)

// FacultyController handles faculty profile operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// CreateFaculty handles faculty profile creation
// @Summary Create a new faculty member
// @Description Creates a faculty profile for an existing account and assigns the generated employee identifier
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=models.Faculty} "Faculty member created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty member already exists for this account"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.CreateFaculty(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(faculty))
}

// GetFaculty retrieves a faculty member by ID
// @Summary Get faculty member by ID
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetFaculty(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// ListFaculty retrieves faculty members matching the query filters
// @Summary List faculty members
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param department query string false "Filter by department"
// @Param designation query string false "Filter by designation"
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Router /faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	filter := models.FacultyFilter{
		Department:  models.Department(ctx.Query("department")),
		Designation: models.Designation(ctx.Query("designation")),
	}

	faculty, err := c.facultyService.ListFaculty(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(faculty, len(faculty)))
}

// UpdateFaculty updates an existing faculty profile
// @Summary Update a faculty member
// @Description Updates the mutable fields of a faculty profile. The identifier, account reference and department are immutable.
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Updated faculty information"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.UpdateFaculty(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculty))
}

// DeleteFaculty deletes a faculty member, their courses and all enrollments
// into those courses
// @Summary Delete a faculty member
// @Description Deletes a faculty profile together with every course they teach and all enrollments into those courses
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 204 "Faculty member deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
