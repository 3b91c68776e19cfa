package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
)

// AttendanceService 考勤门面，支持导出工作簿
type AttendanceService struct {
	repo   repository.AttendanceRepository
	logger *zap.Logger
}

func NewAttendanceService(repo repository.AttendanceRepository, logger *zap.Logger) *AttendanceService {
	return &AttendanceService{repo: repo, logger: logger}
}

func (s *AttendanceService) List(ctx context.Context, filters repository.AttendanceFilters) ([]domain.AttendanceRecord, error) {
	return s.repo.List(ctx, filters)
}

func (s *AttendanceService) Create(ctx context.Context, rec domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	if rec.EmployeeID == "" || rec.Date == "" {
		return nil, fmt.Errorf("attendance employee_id and date are required: %w", domain.ErrInvalid)
	}
	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Attendance record created",
		zap.String("record_id", created.ID),
		zap.String("employee_id", created.EmployeeID),
		zap.String("date", created.Date),
	)
	return created, nil
}

func (s *AttendanceService) Update(ctx context.Context, id string, upd domain.AttendanceUpdate) (*domain.AttendanceRecord, error) {
	return s.repo.Update(ctx, id, upd)
}

var attendanceExportHeaders = []string{
	"Employee ID", "Employee Name", "Date", "Punch In", "Punch Out",
	"Punch In Location", "Punch Out Location", "Total Hours", "Status", "Remarks",
}

// ExportWorkbook renders the filtered records as an xlsx workbook and
// returns the serialized bytes, ready to stream as a download.
func (s *AttendanceService) ExportWorkbook(ctx context.Context, filters repository.AttendanceFilters) ([]byte, error) {
	records, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Attendance"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for col, header := range attendanceExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, rec := range records {
		values := []interface{}{
			rec.EmployeeID, rec.EmployeeName, rec.Date, rec.PunchIn, rec.PunchOut,
			rec.PunchInLocation, rec.PunchOutLocation, exportHours(rec.TotalHours),
			rec.Status, rec.Remarks,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	s.logger.Info("Attendance workbook exported", zap.Int("records", len(records)))
	return buf.Bytes(), nil
}

func exportHours(h *float64) interface{} {
	if h == nil {
		return ""
	}
	return *h
}
