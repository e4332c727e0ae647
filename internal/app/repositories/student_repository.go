package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/campushub/internal/app/models"
	"github.com/emre/campushub/internal/pkg/apperrors"
	"github.com/emre/campushub/internal/pkg/dberrors"
)

const studentColumns = `id, user_id, student_id, department, year, semester, section,
	date_of_birth, gender, blood_group,
	address_street, address_city, address_state, address_country, address_pincode,
	contact_number, parent_name, parent_contact, admission_date, is_active,
	created_at, updated_at`

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.StudentID,
		&s.Department,
		&s.Year,
		&s.Semester,
		&s.Section,
		&s.DateOfBirth,
		&s.Gender,
		&s.BloodGroup,
		&s.Address.Street,
		&s.Address.City,
		&s.Address.State,
		&s.Address.Country,
		&s.Address.Pincode,
		&s.ContactNumber,
		&s.ParentName,
		&s.ParentContact,
		&s.AdmissionDate,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create creates a new student profile. The one-profile-per-account and
// unique-identifier invariants are enforced by the table constraints.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, student_id, department, year, semester, section,
			date_of_birth, gender, blood_group,
			address_street, address_city, address_state, address_country, address_pincode,
			contact_number, parent_name, parent_contact, admission_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.UserID, student.StudentID, student.Department, student.Year,
		student.Semester, student.Section, student.DateOfBirth, student.Gender,
		student.BloodGroup,
		student.Address.Street, student.Address.City, student.Address.State,
		student.Address.Country, student.Address.Pincode,
		student.ContactNumber, student.ParentName, student.ParentContact,
		student.AdmissionDate, student.IsActive,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_user_id_key") {
			return apperrors.ErrStudentAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return apperrors.NewConflictError(fmt.Sprintf("student identifier %s already assigned", student.StudentID))
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByUserID retrieves the student profile linked to a user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by user: %w", err)
	}

	return student, nil
}

// List retrieves students matching the given equality filters
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`

	var conditions []string
	var args []interface{}

	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, fmt.Sprintf("department = $%d", len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		conditions = append(conditions, fmt.Sprintf("year = $%d", len(args)))
	}
	if filter.Semester != 0 {
		args = append(args, filter.Semester)
		conditions = append(conditions, fmt.Sprintf("semester = $%d", len(args)))
	}
	if filter.Section != "" {
		args = append(args, filter.Section)
		conditions = append(conditions, fmt.Sprintf("section = $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update updates the mutable fields of a student profile. The identifier,
// account reference and department never change.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET year = $1, semester = $2, section = $3, blood_group = $4,
			address_street = $5, address_city = $6, address_state = $7,
			address_country = $8, address_pincode = $9,
			contact_number = $10, parent_name = $11, parent_contact = $12,
			is_active = $13, updated_at = CURRENT_TIMESTAMP
		WHERE id = $14
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Year, student.Semester, student.Section, student.BloodGroup,
		student.Address.Street, student.Address.City, student.Address.State,
		student.Address.Country, student.Address.Pincode,
		student.ContactNumber, student.ParentName, student.ParentContact,
		student.IsActive, student.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID. Dependent enrollments must already be
// removed by the caller; the foreign key restricts otherwise.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
