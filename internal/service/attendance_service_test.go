package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
)

func TestAttendanceServiceExportWorkbook(t *testing.T) {
	repo := repository.NewMemoryAttendanceRepo()
	svc := NewAttendanceService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.AttendanceRecord{
		EmployeeID:   "E001",
		EmployeeName: "Aarav Sharma",
		Date:         "2026-08-28",
		PunchIn:      "09:00",
		PunchOut:     "18:00",
		Status:       "present",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.AttendanceRecord{
		EmployeeID:   "E002",
		EmployeeName: "Priya Patel",
		Date:         "2026-08-28",
		Status:       "absent",
	})
	require.NoError(t, err)

	data, err := svc.ExportWorkbook(ctx, repository.AttendanceFilters{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two records")
	assert.Equal(t, "Employee ID", rows[0][0])

	ids := []string{rows[1][0], rows[2][0]}
	assert.ElementsMatch(t, []string{"E001", "E002"}, ids)
}

func TestAttendanceServiceExportRespectsFilters(t *testing.T) {
	repo := repository.NewMemoryAttendanceRepo()
	svc := NewAttendanceService(repo, zap.NewNop())
	ctx := context.Background()

	for _, rec := range []domain.AttendanceRecord{
		{EmployeeID: "E001", Date: "2026-08-28", Status: "present"},
		{EmployeeID: "E001", Date: "2026-08-29", Status: "absent"},
		{EmployeeID: "E002", Date: "2026-08-28", Status: "present"},
	} {
		_, err := svc.Create(ctx, rec)
		require.NoError(t, err)
	}

	data, err := svc.ExportWorkbook(ctx, repository.AttendanceFilters{EmployeeID: "E001"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows[1:] {
		assert.Equal(t, "E001", row[0])
	}
}

func TestAttendanceServiceCreateValidation(t *testing.T) {
	svc := NewAttendanceService(repository.NewMemoryAttendanceRepo(), zap.NewNop())

	_, err := svc.Create(context.Background(), domain.AttendanceRecord{EmployeeID: "E001"})
	require.Error(t, err, "date is required")

	_, err = svc.Create(context.Background(), domain.AttendanceRecord{Date: "2026-08-28"})
	require.Error(t, err, "employee id is required")
}
