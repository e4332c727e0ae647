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

const facultyColumns = `id, user_id, employee_id, department, designation, qualification,
	specialization, date_of_joining, date_of_birth, gender, blood_group,
	address_street, address_city, address_state, address_country, address_pincode,
	contact_number, is_active, created_at, updated_at`

// FacultyRepository handles database operations for faculty members
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
	}
}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	var f models.Faculty
	err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.EmployeeID,
		&f.Department,
		&f.Designation,
		&f.Qualification,
		&f.Specialization,
		&f.DateOfJoining,
		&f.DateOfBirth,
		&f.Gender,
		&f.BloodGroup,
		&f.Address.Street,
		&f.Address.City,
		&f.Address.State,
		&f.Address.Country,
		&f.Address.Pincode,
		&f.ContactNumber,
		&f.IsActive,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create creates a new faculty profile
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	query := `
		INSERT INTO faculty_members (user_id, employee_id, department, designation,
			qualification, specialization, date_of_joining, date_of_birth, gender, blood_group,
			address_street, address_city, address_state, address_country, address_pincode,
			contact_number, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		faculty.UserID, faculty.EmployeeID, faculty.Department, faculty.Designation,
		faculty.Qualification, faculty.Specialization, faculty.DateOfJoining,
		faculty.DateOfBirth, faculty.Gender, faculty.BloodGroup,
		faculty.Address.Street, faculty.Address.City, faculty.Address.State,
		faculty.Address.Country, faculty.Address.Pincode,
		faculty.ContactNumber, faculty.IsActive,
	).Scan(&faculty.ID, &faculty.CreatedAt, &faculty.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_members_user_id_key") {
			return apperrors.ErrFacultyAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "faculty_members_employee_id_key") {
			return apperrors.NewConflictError(fmt.Sprintf("employee identifier %s already assigned", faculty.EmployeeID))
		}
		return fmt.Errorf("error creating faculty member: %w", err)
	}

	return nil
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty_members WHERE id = $1`

	faculty, err := scanFaculty(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty member: %w", err)
	}

	return faculty, nil
}

// GetByUserID retrieves the faculty profile linked to a user account
func (r *FacultyRepository) GetByUserID(ctx context.Context, userID int64) (*models.Faculty, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty_members WHERE user_id = $1`

	faculty, err := scanFaculty(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty member by user: %w", err)
	}

	return faculty, nil
}

// List retrieves faculty members matching the given equality filters
func (r *FacultyRepository) List(ctx context.Context, filter models.FacultyFilter) ([]*models.Faculty, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty_members`

	var conditions []string
	var args []interface{}

	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, fmt.Sprintf("department = $%d", len(args)))
	}
	if filter.Designation != "" {
		args = append(args, filter.Designation)
		conditions = append(conditions, fmt.Sprintf("designation = $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing faculty members: %w", err)
	}
	defer rows.Close()

	var faculties []*models.Faculty
	for rows.Next() {
		faculty, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		faculties = append(faculties, faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return faculties, nil
}

// Update updates the mutable fields of a faculty profile
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	query := `
		UPDATE faculty_members
		SET designation = $1, qualification = $2, specialization = $3, blood_group = $4,
			address_street = $5, address_city = $6, address_state = $7,
			address_country = $8, address_pincode = $9,
			contact_number = $10, is_active = $11, updated_at = CURRENT_TIMESTAMP
		WHERE id = $12
	`

	cmdTag, err := r.db.Exec(ctx, query,
		faculty.Designation, faculty.Qualification, faculty.Specialization, faculty.BloodGroup,
		faculty.Address.Street, faculty.Address.City, faculty.Address.State,
		faculty.Address.Country, faculty.Address.Pincode,
		faculty.ContactNumber, faculty.IsActive, faculty.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating faculty member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// Delete deletes a faculty member by ID. Owned courses must already be
// removed by the caller; the foreign key restricts otherwise.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculty_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting faculty member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}
