package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/campushub/internal/app/controllers"
	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/middleware"
)

// SetupRoutes wires all API routes onto the engine. Entity management is
// admin-only; the enrollment lifecycle endpoints do their own fine-grained
// authorization in the service layer.
func SetupRoutes(router *gin.Engine, ctrl *controllers.Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)

	students := v1.Group("/students")
	{
		students.POST("", adminOnly, ctrl.StudentController.CreateStudent)
		students.GET("", ctrl.StudentController.ListStudents)
		students.GET("/:id", ctrl.StudentController.GetStudent)
		students.PUT("/:id", adminOnly, ctrl.StudentController.UpdateStudent)
		students.DELETE("/:id", adminOnly, ctrl.StudentController.DeleteStudent)
	}

	faculty := v1.Group("/faculty")
	{
		faculty.POST("", adminOnly, ctrl.FacultyController.CreateFaculty)
		faculty.GET("", ctrl.FacultyController.ListFaculty)
		faculty.GET("/:id", ctrl.FacultyController.GetFaculty)
		faculty.PUT("/:id", adminOnly, ctrl.FacultyController.UpdateFaculty)
		faculty.DELETE("/:id", adminOnly, ctrl.FacultyController.DeleteFaculty)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", adminOnly, ctrl.CourseController.CreateCourse)
		courses.GET("", ctrl.CourseController.ListCourses)
		courses.GET("/:id", ctrl.CourseController.GetCourse)
		courses.PUT("/:id", adminOnly, ctrl.CourseController.UpdateCourse)
		courses.DELETE("/:id", adminOnly, ctrl.CourseController.DeleteCourse)

		courses.POST("/:id/enrollments", ctrl.EnrollmentController.Enroll)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", ctrl.EnrollmentController.ListEnrollments)
		enrollments.GET("/:id", ctrl.EnrollmentController.GetEnrollment)
		enrollments.PUT("/:id/status", ctrl.EnrollmentController.UpdateEnrollmentStatus)
		enrollments.POST("/:id/attendance", ctrl.EnrollmentController.RecordAttendance)
		enrollments.DELETE("/:id", ctrl.EnrollmentController.DeleteEnrollment)

		enrollments.GET("/:id/grades", ctrl.GradingController.GradeSummary)
		enrollments.POST("/:id/assignments", ctrl.GradingController.AddAssignment)
		enrollments.POST("/:id/assignments/:assignmentId/submit", ctrl.GradingController.SubmitAssignment)
		enrollments.POST("/:id/assignments/:assignmentId/grade", ctrl.GradingController.GradeAssignment)
		enrollments.POST("/:id/exams", ctrl.GradingController.AddExam)
		enrollments.POST("/:id/exams/:examId/score", ctrl.GradingController.RecordExamScore)
	}
}
