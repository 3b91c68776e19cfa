package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/service"
)

// OpsHandler 流程/考勤/汇报关系路由
type OpsHandler struct {
	workflows  *service.WorkflowService
	attendance *service.AttendanceService
	hierarchy  *service.HierarchyService
	logger     *zap.Logger
}

func NewOpsHandler(
	workflows *service.WorkflowService,
	attendance *service.AttendanceService,
	hierarchy *service.HierarchyService,
	logger *zap.Logger,
) *OpsHandler {
	return &OpsHandler{
		workflows:  workflows,
		attendance: attendance,
		hierarchy:  hierarchy,
		logger:     logger,
	}
}

// Workflows GET/POST /api/workflows
func (h *OpsHandler) Workflows(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		flows, err := h.workflows.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(flows))
	case http.MethodPost:
		var flow domain.Workflow
		if err := readBodyJSON(r, maxBodyBytes, &flow); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := h.workflows.Create(r.Context(), flow)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, Ok(created))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// WorkflowsByID PUT /api/workflows/{id}
func (h *OpsHandler) WorkflowsByID(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var upd domain.WorkflowUpdate
	if err := readBodyJSON(r, maxBodyBytes, &upd); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	flow, err := h.workflows.Update(r.Context(), id, upd)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(flow))
}

func attendanceFiltersFromQuery(r *http.Request) repository.AttendanceFilters {
	q := r.URL.Query()
	return repository.AttendanceFilters{
		EmployeeID: q.Get("employee_id"),
		Date:       q.Get("date"),
		Status:     q.Get("status"),
	}
}

// Attendance GET/POST /api/attendance
func (h *OpsHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		records, err := h.attendance.List(r.Context(), attendanceFiltersFromQuery(r))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(records))
	case http.MethodPost:
		var rec domain.AttendanceRecord
		if err := readBodyJSON(r, maxBodyBytes, &rec); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := h.attendance.Create(r.Context(), rec)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, Ok(created))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// AttendanceByID PUT /api/attendance/{id}
func (h *OpsHandler) AttendanceByID(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var upd domain.AttendanceUpdate
	if err := readBodyJSON(r, maxBodyBytes, &upd); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	rec, err := h.attendance.Update(r.Context(), id, upd)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(rec))
}

// AttendanceExport GET /api/attendance/export — streams an xlsx download.
func (h *OpsHandler) AttendanceExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.attendance.ExportWorkbook(r.Context(), attendanceFiltersFromQuery(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	filename := fmt.Sprintf("attendance_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Hierarchy GET/POST /api/hierarchy, DELETE /api/hierarchy/clear-all
func (h *OpsHandler) Hierarchy(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		relations, err := h.hierarchy.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(relations))
	case http.MethodPost:
		var body struct {
			EmployeeID string `json:"employeeId"`
			ReportsTo  string `json:"reportsTo"`
		}
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		rel, err := h.hierarchy.Create(r.Context(), body.EmployeeID, body.ReportsTo)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, Ok(rel))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// HierarchyByEmployee DELETE /api/hierarchy/{employeeId}
func (h *OpsHandler) HierarchyByEmployee(w http.ResponseWriter, r *http.Request, employeeID string) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := h.hierarchy.Delete(r.Context(), employeeID); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]bool{"deleted": true}))
}

// HierarchyClearAll DELETE /api/hierarchy/clear-all
func (h *OpsHandler) HierarchyClearAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	n, err := h.hierarchy.ClearAll(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]int{"cleared": n}))
}
