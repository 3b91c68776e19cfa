package httpapi

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/repository"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/service"
)

// maxImageBytes caps profile image uploads (data URIs included).
const maxImageBytes = 8 << 20

// EmployeeHandler 员工目录相关路由
type EmployeeHandler struct {
	svc    *service.EmployeeService
	logger *zap.Logger
}

func NewEmployeeHandler(svc *service.EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, logger: logger}
}

// List GET /api/employees?search=&department=&location=
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := repository.EmployeeFilters{
		Search:     q.Get("search"),
		Department: q.Get("department"),
		Location:   q.Get("location"),
	}
	employees, err := h.svc.List(r.Context(), filters)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(employees))
}

// Get GET /api/employees/{id}
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(e))
}

// UpdateImage PUT /api/employees/{id}/image
// Body: {"profileImage": "<data URI or plain reference>"}
func (h *EmployeeHandler) UpdateImage(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		ProfileImage string `json:"profileImage"`
	}
	if err := readBodyJSON(r, maxImageBytes, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if body.ProfileImage == "" {
		writeJSON(w, http.StatusBadRequest, Fail("profileImage is required"))
		return
	}
	e, err := h.svc.UpdateImage(r.Context(), id, body.ProfileImage)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(e))
}

// UploadImage POST /api/employees/{id}/image
// Body: raw image bytes, Content-Type carries the mime type.
func (h *EmployeeHandler) UploadImage(w http.ResponseWriter, r *http.Request, id string) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("failed to read image body"))
		return
	}
	if len(data) == 0 {
		writeJSON(w, http.StatusBadRequest, Fail("image body is empty"))
		return
	}
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	e, err := h.svc.UploadImage(r.Context(), id, data, contentType)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(e))
}

// NewJoinees GET /api/employees/new-joinees?limit=
func (h *EmployeeHandler) NewJoinees(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 10)
	joinees, err := h.svc.NewJoinees(r.Context(), limit)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(joinees))
}

// Reconcile GET /api/employees/reconcile
func (h *EmployeeHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	drifts, err := h.svc.Reconcile(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(drifts))
}

// Refresh POST /api/employees/refresh 从工作簿重载目录
func (h *EmployeeHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Refresh(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]int{"employees": n}))
}

// Departments GET /api/departments
func (h *EmployeeHandler) Departments(w http.ResponseWriter, r *http.Request) {
	depts, err := h.svc.Departments(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(depts))
}

// Locations GET /api/locations
func (h *EmployeeHandler) Locations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.svc.Locations(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(locs))
}

// Stats GET /api/stats
func (h *EmployeeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(stats))
}
