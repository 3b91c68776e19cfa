package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

// PostgresEmployeesRepo 员工目录 Repository（DB 启用时的权威来源）
type PostgresEmployeesRepo struct {
	db *sql.DB
}

func NewPostgresEmployeesRepo(db *sql.DB) *PostgresEmployeesRepo {
	return &PostgresEmployeesRepo{db: db}
}

var _ EmployeesRepository = (*PostgresEmployeesRepo)(nil)

const employeeColumns = `
	id,
	name,
	department,
	grade,
	COALESCE(reporting_manager, '') as reporting_manager,
	COALESCE(reporting_id, '') as reporting_id,
	location,
	mobile,
	COALESCE(extension, '0') as extension,
	email,
	COALESCE(date_of_joining, '') as date_of_joining,
	COALESCE(profile_image, '') as profile_image,
	last_updated`

func scanEmployee(row interface{ Scan(...any) error }) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Department,
		&e.Grade,
		&e.ReportingManager,
		&e.ReportingID,
		&e.Location,
		&e.Mobile,
		&e.Extension,
		&e.Email,
		&e.DateOfJoining,
		&e.ProfileImage,
		&e.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	if e.ProfileImage == "" {
		e.ProfileImage = domain.DefaultProfileImage
	}
	return &e, nil
}

func (r *PostgresEmployeesRepo) List(ctx context.Context, filters EmployeeFilters) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	var conds []string
	var args []any
	if filters.Search != "" {
		args = append(args, "%"+strings.ToLower(filters.Search)+"%")
		n := fmt.Sprintf("$%d", len(args))
		conds = append(conds, `(LOWER(name) LIKE `+n+` OR LOWER(id) LIKE `+n+` OR LOWER(email) LIKE `+n+` OR LOWER(department) LIKE `+n+`)`)
	}
	if filters.Department != "" {
		args = append(args, filters.Department)
		conds = append(conds, fmt.Sprintf("department = $%d", len(args)))
	}
	if filters.Location != "" {
		args = append(args, filters.Location)
		conds = append(conds, fmt.Sprintf("location = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY ordinal"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var out []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *PostgresEmployeesRepo) Get(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *PostgresEmployeesRepo) UpdateImage(ctx context.Context, id string, imageRef string) (*domain.Employee, error) {
	query := `
		UPDATE employees
		SET profile_image = $2, last_updated = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns
	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, id, imageRef))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update employee image: %w", err)
	}
	return e, nil
}

// Replace swaps the whole directory inside one transaction (workbook
// refresh). The ordinal column preserves workbook row order for List.
func (r *PostgresEmployeesRepo) Replace(ctx context.Context, employees []domain.Employee) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		return 0, fmt.Errorf("failed to clear employees: %w", err)
	}
	const insert = `
		INSERT INTO employees
			(id, name, department, grade, reporting_manager, reporting_id,
			 location, mobile, extension, email, date_of_joining,
			 profile_image, last_updated, ordinal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), $13)`
	for i, e := range employees {
		if _, err := tx.ExecContext(ctx, insert,
			e.ID, e.Name, e.Department, e.Grade, e.ReportingManager, e.ReportingID,
			e.Location, e.Mobile, e.Extension, e.Email, e.DateOfJoining,
			e.ProfileImage, i,
		); err != nil {
			return 0, fmt.Errorf("failed to insert employee %s: %w", e.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit replace: %w", err)
	}
	return len(employees), nil
}

func (r *PostgresEmployeesRepo) Departments(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "department")
}

func (r *PostgresEmployeesRepo) Locations(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "location")
}

func (r *PostgresEmployeesRepo) distinct(ctx context.Context, column string) ([]string, error) {
	// column is one of two constants above, never user input
	query := fmt.Sprintf(`SELECT DISTINCT %s FROM employees WHERE %s <> '' ORDER BY %s`, column, column, column)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s values: %w", column, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
