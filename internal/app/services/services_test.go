package services

import (
	"context"
	"testing"
	"time"

	"github.com/emre/campushub/internal/app/models"
)

var testClock = func() time.Time {
	return time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
}

// env wires every service to shared in-memory fakes.
type env struct {
	users       *fakeUserStore
	students    *fakeStudentStore
	faculties   *fakeFacultyStore
	courses     *fakeCourseStore
	enrollments *fakeEnrollmentStore
	sequences   *fakeSequenceStore

	studentSvc    StudentService
	facultySvc    FacultyService
	courseSvc     CourseService
	enrollmentSvc EnrollmentService
	gradingSvc    GradingService
}

func newEnv() *env {
	users := newFakeUserStore()
	students := newFakeStudentStore()
	faculties := newFakeFacultyStore()
	courses := newFakeCourseStore()
	enrollments := newFakeEnrollmentStore(courses)
	sequences := newFakeSequenceStore()

	return &env{
		users:       users,
		students:    students,
		faculties:   faculties,
		courses:     courses,
		enrollments: enrollments,
		sequences:   sequences,

		studentSvc:    NewStudentService(students, users, enrollments, sequences, testClock),
		facultySvc:    NewFacultyService(faculties, users, courses, enrollments, sequences, testClock),
		courseSvc:     NewCourseService(courses, faculties, enrollments),
		enrollmentSvc: NewEnrollmentService(enrollments, students, faculties, courses, testClock),
		gradingSvc:    NewGradingService(enrollments, students, faculties, courses, testClock),
	}
}

func (e *env) addUser(role models.Role) *models.User {
	user := &models.User{
		Email:    "user@campushub.test",
		Name:     "Test User",
		Role:     role,
		IsActive: true,
	}
	_ = e.users.Create(context.Background(), user)
	return user
}

func (e *env) addStudent(t *testing.T) (*models.Student, models.Principal) {
	t.Helper()
	user := e.addUser(models.RoleStudent)
	student := &models.Student{
		UserID:        user.ID,
		StudentID:     "26CS00" + string(rune('0'+user.ID)),
		Department:    models.DeptComputerScience,
		Year:          2,
		Semester:      3,
		Section:       "A",
		DateOfBirth:   time.Date(2006, time.March, 14, 0, 0, 0, 0, time.UTC),
		Gender:        models.GenderFemale,
		ParentName:    "Parent",
		ParentContact: "5550001111",
		IsActive:      true,
	}
	if err := e.students.Create(context.Background(), student); err != nil {
		t.Fatalf("seeding student: %v", err)
	}
	return student, models.Principal{UserID: user.ID, Role: models.RoleStudent}
}

func (e *env) addFaculty(t *testing.T) (*models.Faculty, models.Principal) {
	t.Helper()
	user := e.addUser(models.RoleFaculty)
	faculty := &models.Faculty{
		UserID:         user.ID,
		EmployeeID:     "F26CS00" + string(rune('0'+user.ID)),
		Department:     models.DeptComputerScience,
		Designation:    models.DesignationProfessor,
		Qualification:  "Ph.D",
		Specialization: []string{"Databases"},
		DateOfJoining:  time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC),
		DateOfBirth:    time.Date(1980, time.January, 2, 0, 0, 0, 0, time.UTC),
		Gender:         models.GenderMale,
		IsActive:       true,
	}
	if err := e.faculties.Create(context.Background(), faculty); err != nil {
		t.Fatalf("seeding faculty: %v", err)
	}
	return faculty, models.Principal{UserID: user.ID, Role: models.RoleFaculty}
}

func (e *env) addCourse(t *testing.T, facultyID int64, maxStudents int) *models.Course {
	t.Helper()
	course := &models.Course{
		Title:        "Database Systems",
		Code:         "CS301-" + string(rune('0'+e.courses.nextID)),
		Credits:      4,
		Description:  "Relational databases and SQL",
		Department:   models.DeptComputerScience,
		FacultyID:    facultyID,
		Semester:     3,
		AcademicYear: "2026-2027",
		MaxStudents:  maxStudents,
		IsActive:     true,
	}
	if err := e.courses.Create(context.Background(), course); err != nil {
		t.Fatalf("seeding course: %v", err)
	}
	return course
}

func (e *env) adminPrincipal() models.Principal {
	user := e.addUser(models.RoleAdmin)
	return models.Principal{UserID: user.ID, Role: models.RoleAdmin}
}
