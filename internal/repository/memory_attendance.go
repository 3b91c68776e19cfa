package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

type MemoryAttendanceRepo struct {
	mu    sync.RWMutex
	items map[string]domain.AttendanceRecord
}

func NewMemoryAttendanceRepo() *MemoryAttendanceRepo {
	return &MemoryAttendanceRepo{items: map[string]domain.AttendanceRecord{}}
}

var _ AttendanceRepository = (*MemoryAttendanceRepo)(nil)

func (r *MemoryAttendanceRepo) List(_ context.Context, filters AttendanceFilters) ([]domain.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.AttendanceRecord, 0, len(r.items))
	for _, rec := range r.items {
		if filters.EmployeeID != "" && rec.EmployeeID != filters.EmployeeID {
			continue
		}
		if filters.Date != "" && rec.Date != filters.Date {
			continue
		}
		if filters.Status != "" && rec.Status != filters.Status {
			continue
		}
		out = append(out, rec)
	}
	// latest date first, stable per employee within a date
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out, nil
}

func (r *MemoryAttendanceRepo) Create(_ context.Context, rec domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = uuid.NewString()
	if rec.Status == "" {
		rec.Status = "present"
	}
	now := time.Now().UTC().Format(time.RFC3339)
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.TotalHours = computeTotalHours(rec.PunchIn, rec.PunchOut)
	r.items[rec.ID] = rec
	return &rec, nil
}

func (r *MemoryAttendanceRepo) Update(_ context.Context, id string, upd domain.AttendanceUpdate) (*domain.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.PunchIn != nil {
		rec.PunchIn = *upd.PunchIn
	}
	if upd.PunchOut != nil {
		rec.PunchOut = *upd.PunchOut
	}
	if upd.PunchInLocation != nil {
		rec.PunchInLocation = *upd.PunchInLocation
	}
	if upd.PunchOutLocation != nil {
		rec.PunchOutLocation = *upd.PunchOutLocation
	}
	if upd.Status != nil {
		rec.Status = *upd.Status
	}
	if upd.Remarks != nil {
		rec.Remarks = *upd.Remarks
	}
	rec.TotalHours = computeTotalHours(rec.PunchIn, rec.PunchOut)
	rec.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	r.items[id] = rec
	return &rec, nil
}

// computeTotalHours derives working hours from HH:MM punches; nil when
// either punch is missing or unparseable.
func computeTotalHours(punchIn, punchOut string) *float64 {
	if punchIn == "" || punchOut == "" {
		return nil
	}
	in, err := time.Parse("15:04", punchIn)
	if err != nil {
		return nil
	}
	out, err := time.Parse("15:04", punchOut)
	if err != nil {
		return nil
	}
	if out.Before(in) {
		return nil
	}
	h := out.Sub(in).Hours()
	return &h
}
