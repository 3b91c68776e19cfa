package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/service"
)

// HelpHandler 帮助台工单路由
type HelpHandler struct {
	svc    *service.HelpService
	logger *zap.Logger
}

func NewHelpHandler(svc *service.HelpService, logger *zap.Logger) *HelpHandler {
	return &HelpHandler{svc: svc, logger: logger}
}

// Requests GET/POST /api/help
func (h *HelpHandler) Requests(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := h.svc.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(items))
	case http.MethodPost:
		var body struct {
			Title    string `json:"title"`
			Message  string `json:"message"`
			Priority string `json:"priority"`
			Author   string `json:"author"`
		}
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		req, err := h.svc.Create(r.Context(), body.Title, body.Message, body.Priority, body.Author)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, Ok(req))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// UpdateStatus PUT /api/help/{id}/status
func (h *HelpHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Status string `json:"status"`
	}
	if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	req, err := h.svc.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(req))
}

// AddReply POST /api/help/{id}/replies
func (h *HelpHandler) AddReply(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Message string `json:"message"`
		Author  string `json:"author"`
	}
	if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	req, err := h.svc.AddReply(r.Context(), id, body.Message, body.Author)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(req))
}

// Delete DELETE /api/help/{id}
func (h *HelpHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]bool{"deleted": true}))
}
