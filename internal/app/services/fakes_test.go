package services

import (
	"context"
	"fmt"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/pkg/apperrors"
)

// In-memory store fakes. They mirror the persistence-layer invariants the
// services rely on: unique constraints, capacity enforcement on enrollment
// creation and the per-date attendance upsert.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("user %d not found", id))
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("user not found")
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[int64]*models.Student{}}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, s := range f.students {
		if s.UserID == student.UserID {
			return apperrors.ErrStudentAlreadyExists
		}
		if s.StudentID == student.StudentID {
			return apperrors.NewConflictError("student identifier already assigned")
		}
	}
	f.nextID++
	student.ID = f.nextID
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeStudentStore) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) List(_ context.Context, filter models.StudentFilter) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if filter.Department != "" && s.Department != filter.Department {
			continue
		}
		if filter.Year != 0 && s.Year != filter.Year {
			continue
		}
		if filter.Semester != 0 && s.Semester != filter.Semester {
			continue
		}
		if filter.Section != "" && s.Section != filter.Section {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeFacultyStore struct {
	faculties map[int64]*models.Faculty
	nextID    int64
}

func newFakeFacultyStore() *fakeFacultyStore {
	return &fakeFacultyStore{faculties: map[int64]*models.Faculty{}}
}

func (f *fakeFacultyStore) Create(_ context.Context, faculty *models.Faculty) error {
	for _, existing := range f.faculties {
		if existing.UserID == faculty.UserID {
			return apperrors.ErrFacultyAlreadyExists
		}
	}
	f.nextID++
	faculty.ID = f.nextID
	f.faculties[faculty.ID] = faculty
	return nil
}

func (f *fakeFacultyStore) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	faculty, ok := f.faculties[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	return faculty, nil
}

func (f *fakeFacultyStore) GetByUserID(_ context.Context, userID int64) (*models.Faculty, error) {
	for _, faculty := range f.faculties {
		if faculty.UserID == userID {
			return faculty, nil
		}
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (f *fakeFacultyStore) List(_ context.Context, filter models.FacultyFilter) ([]*models.Faculty, error) {
	var out []*models.Faculty
	for _, faculty := range f.faculties {
		if filter.Department != "" && faculty.Department != filter.Department {
			continue
		}
		if filter.Designation != "" && faculty.Designation != filter.Designation {
			continue
		}
		out = append(out, faculty)
	}
	return out, nil
}

func (f *fakeFacultyStore) Update(_ context.Context, faculty *models.Faculty) error {
	if _, ok := f.faculties[faculty.ID]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	f.faculties[faculty.ID] = faculty
	return nil
}

func (f *fakeFacultyStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.faculties[id]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	delete(f.faculties, id)
	return nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: map[int64]*models.Course{}}
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	for _, c := range f.courses {
		if c.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	f.nextID++
	course.ID = f.nextID
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseStore) List(_ context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if filter.Department != "" && c.Department != filter.Department {
			continue
		}
		if filter.FacultyID != 0 && c.FacultyID != filter.FacultyID {
			continue
		}
		if filter.Semester != 0 && c.Semester != filter.Semester {
			continue
		}
		if filter.ActiveOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseStore) ListByFacultyID(ctx context.Context, facultyID int64) ([]*models.Course, error) {
	return f.List(ctx, models.CourseFilter{FacultyID: facultyID})
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

type fakeEnrollmentStore struct {
	courses     *fakeCourseStore
	enrollments map[int64]*models.Enrollment
	nextID      int64
	subID       int64
}

func newFakeEnrollmentStore(courses *fakeCourseStore) *fakeEnrollmentStore {
	return &fakeEnrollmentStore{
		courses:     courses,
		enrollments: map[int64]*models.Enrollment{},
	}
}

func (f *fakeEnrollmentStore) Create(_ context.Context, enrollment *models.Enrollment) error {
	course, ok := f.courses.courses[enrollment.CourseID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}

	count := 0
	for _, e := range f.enrollments {
		if e.CourseID == enrollment.CourseID {
			count++
		}
		if e.CourseID == enrollment.CourseID && e.StudentID == enrollment.StudentID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	if count >= course.MaxStudents {
		return apperrors.NewCapacityError("course has reached its maximum capacity")
	}

	f.nextID++
	enrollment.ID = f.nextID
	f.enrollments[enrollment.ID] = enrollment
	return nil
}

// GetByID hands out a copy so callers mutate nothing until they write back
// through an update method, like a real store.
func (f *fakeEnrollmentStore) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	enrollment, ok := f.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	cp := *enrollment
	cp.Attendance = append([]models.AttendanceRecord(nil), enrollment.Attendance...)
	cp.Assignments = append([]models.Assignment(nil), enrollment.Assignments...)
	cp.Exams = append([]models.Exam(nil), enrollment.Exams...)
	return &cp, nil
}

func (f *fakeEnrollmentStore) List(_ context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range f.enrollments {
		if filter.StudentID != 0 && e.StudentID != filter.StudentID {
			continue
		}
		if filter.CourseID != 0 && e.CourseID != filter.CourseID {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEnrollmentStore) CountByCourseID(_ context.Context, courseID int64) (int, error) {
	count := 0
	for _, e := range f.enrollments {
		if e.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEnrollmentStore) UpdateStatus(_ context.Context, id int64, status models.EnrollmentStatus, grade *models.LetterGrade) error {
	enrollment, ok := f.enrollments[id]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	enrollment.Status = status
	if grade != nil {
		enrollment.Grade = grade
	}
	return nil
}

func (f *fakeEnrollmentStore) SetFinalGrade(_ context.Context, id int64, grade models.LetterGrade) error {
	enrollment, ok := f.enrollments[id]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	enrollment.FinalGrade = &grade
	return nil
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.enrollments[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(f.enrollments, id)
	return nil
}

func (f *fakeEnrollmentStore) DeleteByCourseID(_ context.Context, courseID int64) error {
	for id, e := range f.enrollments {
		if e.CourseID == courseID {
			delete(f.enrollments, id)
		}
	}
	return nil
}

func (f *fakeEnrollmentStore) DeleteByStudentID(_ context.Context, studentID int64) error {
	for id, e := range f.enrollments {
		if e.StudentID == studentID {
			delete(f.enrollments, id)
		}
	}
	return nil
}

func (f *fakeEnrollmentStore) UpsertAttendance(_ context.Context, record *models.AttendanceRecord) error {
	enrollment, ok := f.enrollments[record.EnrollmentID]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	for i := range enrollment.Attendance {
		existing := &enrollment.Attendance[i]
		if existing.Date.Equal(record.Date) {
			existing.Status = record.Status
			if record.Notes != nil {
				existing.Notes = record.Notes
			}
			record.ID = existing.ID
			record.Notes = existing.Notes
			return nil
		}
	}
	f.subID++
	record.ID = f.subID
	enrollment.Attendance = append(enrollment.Attendance, *record)
	return nil
}

func (f *fakeEnrollmentStore) AddAssignment(_ context.Context, assignment *models.Assignment) error {
	enrollment, ok := f.enrollments[assignment.EnrollmentID]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	f.subID++
	assignment.ID = f.subID
	enrollment.Assignments = append(enrollment.Assignments, *assignment)
	return nil
}

func (f *fakeEnrollmentStore) UpdateAssignment(_ context.Context, assignment *models.Assignment) error {
	enrollment, ok := f.enrollments[assignment.EnrollmentID]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	for i := range enrollment.Assignments {
		if enrollment.Assignments[i].ID == assignment.ID {
			enrollment.Assignments[i] = *assignment
			return nil
		}
	}
	return apperrors.ErrAssignmentNotFound
}

func (f *fakeEnrollmentStore) AddExam(_ context.Context, exam *models.Exam) error {
	enrollment, ok := f.enrollments[exam.EnrollmentID]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	f.subID++
	exam.ID = f.subID
	enrollment.Exams = append(enrollment.Exams, *exam)
	return nil
}

func (f *fakeEnrollmentStore) UpdateExam(_ context.Context, exam *models.Exam) error {
	enrollment, ok := f.enrollments[exam.EnrollmentID]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	for i := range enrollment.Exams {
		if enrollment.Exams[i].ID == exam.ID {
			enrollment.Exams[i] = *exam
			return nil
		}
	}
	return apperrors.ErrExamNotFound
}

type fakeSequenceStore struct {
	counters map[string]int
}

func newFakeSequenceStore() *fakeSequenceStore {
	return &fakeSequenceStore{counters: map[string]int{}}
}

func (f *fakeSequenceStore) Next(_ context.Context, bucket string) (int, error) {
	f.counters[bucket]++
	return f.counters[bucket], nil
}
