package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresEmployeesRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewPostgresEmployeesRepo(db)
	return db, mock, repo
}

var employeeRows = []string{
	"id", "name", "department", "grade", "reporting_manager", "reporting_id",
	"location", "mobile", "extension", "email", "date_of_joining",
	"profile_image", "last_updated",
}

func TestPostgresEmployees_List(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(employeeRows).
		AddRow("1001", "Asha Verma", "Engineering", "M2", "", "", "Gurgaon", "9000000001", "101", "asha@smartworld.com", "2025-08-01", "", now).
		AddRow("1002", "Rahul Jain", "Sales", "E1", "Asha Verma", "1001", "Noida", "9000000002", "0", "rahul@smartworld.com", "2024-01-15", "/api/images/1002", now)

	mock.ExpectQuery(`SELECT(.|\n)*FROM employees(.|\n)*ORDER BY ordinal`).
		WillReturnRows(rows)

	out, err := repo.List(context.Background(), EmployeeFilters{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	// missing profile image falls back to the placeholder
	assert.Equal(t, domain.DefaultProfileImage, out[0].ProfileImage)
	assert.Equal(t, "/api/images/1002", out[1].ProfileImage)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEmployees_ListWithFilters(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows(employeeRows).
		AddRow("1001", "Asha Verma", "Engineering", "M2", "", "", "Gurgaon", "9000000001", "101", "asha@smartworld.com", "2025-08-01", "", time.Now())

	mock.ExpectQuery(`WHERE(.|\n)*LOWER\(name\) LIKE(.|\n)*department = \$2(.|\n)*location = \$3`).
		WithArgs("%asha%", "Engineering", "Gurgaon").
		WillReturnRows(rows)

	out, err := repo.List(context.Background(), EmployeeFilters{
		Search:     "Asha",
		Department: "Engineering",
		Location:   "Gurgaon",
	})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEmployees_GetNotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`FROM employees WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresEmployees_UpdateImage(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows(employeeRows).
		AddRow("1001", "Asha Verma", "Engineering", "M2", "", "", "Gurgaon", "9000000001", "101", "asha@smartworld.com", "2025-08-01", "/api/images/1001", time.Now())

	mock.ExpectQuery(`UPDATE employees(.|\n)*RETURNING`).
		WithArgs("1001", "/api/images/1001").
		WillReturnRows(rows)

	e, err := repo.UpdateImage(context.Background(), "1001", "/api/images/1001")
	require.NoError(t, err)
	assert.Equal(t, "/api/images/1001", e.ProfileImage)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEmployees_UpdateImageNotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE employees`).
		WithArgs("missing", "/api/images/missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateImage(context.Background(), "missing", "/api/images/missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresEmployees_Replace(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM employees`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO employees`).
		WithArgs("1001", "Asha Verma", "Engineering", "M2", "", "",
			"Gurgaon", "9000000001", "101", "asha@smartworld.com", "2025-08-01",
			"", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := repo.Replace(context.Background(), []domain.Employee{{
		ID: "1001", Name: "Asha Verma", Department: "Engineering", Grade: "M2",
		Location: "Gurgaon", Mobile: "9000000001", Extension: "101",
		Email: "asha@smartworld.com", DateOfJoining: "2025-08-01",
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresEmployees_Departments(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT DISTINCT department`).
		WillReturnRows(sqlmock.NewRows([]string{"department"}).AddRow("Engineering").AddRow("Sales"))

	out, err := repo.Departments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineering", "Sales"}, out)
}
