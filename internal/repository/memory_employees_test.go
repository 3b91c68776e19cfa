package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

func seedEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: "1001", Name: "Asha Verma", Department: "Engineering", Location: "Gurgaon", Email: "asha@smartworld.com", DateOfJoining: "2025-08-10"},
		{ID: "1002", Name: "Rahul Jain", Department: "Sales", Location: "Noida", Email: "rahul@smartworld.com", DateOfJoining: "2024-01-15"},
		{ID: "1003", Name: "Meera Iyer", Department: "Engineering", Location: "Noida", Email: "meera@smartworld.com", DateOfJoining: "2025-08-20"},
	}
}

func TestMemoryEmployees_ListPreservesOrder(t *testing.T) {
	repo := NewMemoryEmployeesRepo(seedEmployees())

	out, err := repo.List(context.Background(), EmployeeFilters{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "1001", out[0].ID)
	assert.Equal(t, "1002", out[1].ID)
	assert.Equal(t, "1003", out[2].ID)
}

func TestMemoryEmployees_Filters(t *testing.T) {
	repo := NewMemoryEmployeesRepo(seedEmployees())
	ctx := context.Background()

	byDept, err := repo.List(ctx, EmployeeFilters{Department: "Engineering"})
	require.NoError(t, err)
	assert.Len(t, byDept, 2)

	byLoc, err := repo.List(ctx, EmployeeFilters{Location: "Noida"})
	require.NoError(t, err)
	assert.Len(t, byLoc, 2)

	bySearch, err := repo.List(ctx, EmployeeFilters{Search: "meera"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "1003", bySearch[0].ID)

	combined, err := repo.List(ctx, EmployeeFilters{Department: "Engineering", Location: "Noida"})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "1003", combined[0].ID)
}

func TestMemoryEmployees_UpdateImage(t *testing.T) {
	repo := NewMemoryEmployeesRepo(seedEmployees())
	ctx := context.Background()

	e, err := repo.UpdateImage(ctx, "1002", "/api/images/1002")
	require.NoError(t, err)
	assert.Equal(t, "/api/images/1002", e.ProfileImage)

	_, err = repo.UpdateImage(ctx, "9999", "/api/images/9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryEmployees_Replace(t *testing.T) {
	repo := NewMemoryEmployeesRepo(seedEmployees())
	ctx := context.Background()

	n, err := repo.Replace(ctx, []domain.Employee{{ID: "2001", Name: "New Hire", Department: "HR", Location: "Gurgaon"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	out, err := repo.List(ctx, EmployeeFilters{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2001", out[0].ID)
}

func TestMemoryEmployees_Distinct(t *testing.T) {
	repo := NewMemoryEmployeesRepo(seedEmployees())
	ctx := context.Background()

	depts, err := repo.Departments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Engineering", "Sales"}, depts)

	locs, err := repo.Locations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gurgaon", "Noida"}, locs)
}
