package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/db"
	"github.com/emre/campushub/internal/pkg/apperrors"
	"github.com/emre/campushub/internal/pkg/dberrors"
)

const enrollmentColumns = `id, student_id, course_id, enrollment_date, status,
	grade, final_grade, is_active, created_at, updated_at`

// EnrollmentRepository handles database operations for enrollments and
// their attendance, assignment and exam sub-records.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	var e models.Enrollment
	err := row.Scan(
		&e.ID,
		&e.StudentID,
		&e.CourseID,
		&e.EnrollmentDate,
		&e.Status,
		&e.Grade,
		&e.FinalGrade,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persists a new enrollment while enforcing the course capacity
// limit. The course row is locked for the duration of the transaction so
// concurrent enrollment attempts near capacity serialize on the
// count-and-insert instead of racing past the check.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var maxStudents int
		err := tx.QueryRow(ctx,
			`SELECT max_students FROM courses WHERE id = $1 FOR UPDATE`,
			enrollment.CourseID,
		).Scan(&maxStudents)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error locking course row: %w", err)
		}

		var count int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM enrollments WHERE course_id = $1`,
			enrollment.CourseID,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("error counting enrollments: %w", err)
		}

		if count >= maxStudents {
			return apperrors.NewCapacityError(
				fmt.Sprintf("course has reached its maximum capacity of %d students", maxStudents))
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO enrollments (student_id, course_id, enrollment_date, status, is_active)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at`,
			enrollment.StudentID, enrollment.CourseID, enrollment.EnrollmentDate,
			enrollment.Status, enrollment.IsActive,
		).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "enrollments_student_id_course_id_key") {
				return apperrors.ErrAlreadyEnrolled
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
}

// GetByID retrieves an enrollment with all of its sub-records loaded.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE id = $1`

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	if enrollment.Attendance, err = r.ListAttendance(ctx, id); err != nil {
		return nil, err
	}
	if enrollment.Assignments, err = r.ListAssignments(ctx, id); err != nil {
		return nil, err
	}
	if enrollment.Exams, err = r.ListExams(ctx, id); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// CountByCourseID counts all enrollments of a course.
func (r *EnrollmentRepository) CountByCourseID(ctx context.Context, courseID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE course_id = $1`, courseID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// List retrieves enrollments matching the given equality filters. Sub-records
// are not loaded for list queries.
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]*models.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments`

	var conditions []string
	var args []interface{}

	if filter.StudentID != 0 {
		args = append(args, filter.StudentID)
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", len(args)))
	}
	if filter.CourseID != 0 {
		args = append(args, filter.CourseID)
		conditions = append(conditions, fmt.Sprintf("course_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// UpdateStatus transitions the enrollment status and optionally sets the
// grade field.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus, grade *models.LetterGrade) error {
	query := `
		UPDATE enrollments
		SET status = $1, grade = COALESCE($2, grade), updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, status, grade, id)
	if err != nil {
		return fmt.Errorf("error updating enrollment status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// SetFinalGrade persists a recomputed final grade.
func (r *EnrollmentRepository) SetFinalGrade(ctx context.Context, id int64, grade models.LetterGrade) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE enrollments SET final_grade = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		grade, id,
	)
	if err != nil {
		return fmt.Errorf("error setting final grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete deletes an enrollment by ID. Sub-records go with it via the child
// table cascade.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// DeleteByCourseID removes all enrollments of a course.
func (r *EnrollmentRepository) DeleteByCourseID(ctx context.Context, courseID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE course_id = $1`, courseID)
	if err != nil {
		return fmt.Errorf("error deleting enrollments by course: %w", err)
	}
	return nil
}

// DeleteByStudentID removes all enrollments of a student.
func (r *EnrollmentRepository) DeleteByStudentID(ctx context.Context, studentID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deleting enrollments by student: %w", err)
	}
	return nil
}

// --- Attendance sub-records ---

// UpsertAttendance inserts or overwrites the attendance record for the
// given calendar date in one statement. Absent notes keep the prior value.
func (r *EnrollmentRepository) UpsertAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (enrollment_id, entry_date, status, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (enrollment_id, entry_date)
		DO UPDATE SET status = EXCLUDED.status,
			notes = COALESCE(EXCLUDED.notes, attendance_records.notes)
		RETURNING id, notes
	`

	err := r.db.QueryRow(ctx, query,
		record.EnrollmentID, record.Date, record.Status, record.Notes,
	).Scan(&record.ID, &record.Notes)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error upserting attendance record: %w", err)
	}

	return nil
}

// ListAttendance retrieves the attendance records of an enrollment in date
// order.
func (r *EnrollmentRepository) ListAttendance(ctx context.Context, enrollmentID int64) ([]models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, enrollment_id, entry_date, status, notes
		FROM attendance_records
		WHERE enrollment_id = $1
		ORDER BY entry_date`, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance records: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.EnrollmentID, &rec.Date, &rec.Status, &rec.Notes); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// --- Assignment sub-records ---

// AddAssignment appends an assignment sub-record to an enrollment.
func (r *EnrollmentRepository) AddAssignment(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (enrollment_id, title, description, due_date, status, max_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		assignment.EnrollmentID, assignment.Title, assignment.Description,
		assignment.DueDate, assignment.Status, assignment.MaxScore,
	).Scan(&assignment.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error adding assignment: %w", err)
	}

	return nil
}

// UpdateAssignment writes back the mutable fields of one assignment
// sub-record, a per-record update rather than a whole-document rewrite.
func (r *EnrollmentRepository) UpdateAssignment(ctx context.Context, assignment *models.Assignment) error {
	query := `
		UPDATE assignments
		SET submitted_date = $1, status = $2, score = $3, feedback = $4, file_url = $5
		WHERE id = $6 AND enrollment_id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		assignment.SubmittedDate, assignment.Status, assignment.Score,
		assignment.Feedback, assignment.FileURL,
		assignment.ID, assignment.EnrollmentID,
	)
	if err != nil {
		return fmt.Errorf("error updating assignment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// ListAssignments retrieves the assignment sub-records of an enrollment.
func (r *EnrollmentRepository) ListAssignments(ctx context.Context, enrollmentID int64) ([]models.Assignment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, enrollment_id, title, description, due_date, submitted_date,
			status, score, max_score, feedback, file_url
		FROM assignments
		WHERE enrollment_id = $1
		ORDER BY id`, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(&a.ID, &a.EnrollmentID, &a.Title, &a.Description,
			&a.DueDate, &a.SubmittedDate, &a.Status, &a.Score, &a.MaxScore,
			&a.Feedback, &a.FileURL); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

// --- Exam sub-records ---

// AddExam appends an exam sub-record to an enrollment.
func (r *EnrollmentRepository) AddExam(ctx context.Context, exam *models.Exam) error {
	query := `
		INSERT INTO exams (enrollment_id, title, exam_type, exam_date, max_score, weightage)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		exam.EnrollmentID, exam.Title, exam.ExamType, exam.Date,
		exam.MaxScore, exam.Weightage,
	).Scan(&exam.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("error adding exam: %w", err)
	}

	return nil
}

// UpdateExam writes back the mutable fields of one exam sub-record.
func (r *EnrollmentRepository) UpdateExam(ctx context.Context, exam *models.Exam) error {
	query := `
		UPDATE exams
		SET score = $1, notes = $2
		WHERE id = $3 AND enrollment_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, exam.Score, exam.Notes, exam.ID, exam.EnrollmentID)
	if err != nil {
		return fmt.Errorf("error updating exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// ListExams retrieves the exam sub-records of an enrollment.
func (r *EnrollmentRepository) ListExams(ctx context.Context, enrollmentID int64) ([]models.Exam, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, enrollment_id, title, exam_type, exam_date, score, max_score, weightage, notes
		FROM exams
		WHERE enrollment_id = $1
		ORDER BY id`, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error listing exams: %w", err)
	}
	defer rows.Close()

	var exams []models.Exam
	for rows.Next() {
		var x models.Exam
		if err := rows.Scan(&x.ID, &x.EnrollmentID, &x.Title, &x.ExamType,
			&x.Date, &x.Score, &x.MaxScore, &x.Weightage, &x.Notes); err != nil {
			return nil, err
		}
		exams = append(exams, x)
	}

	return exams, rows.Err()
}
