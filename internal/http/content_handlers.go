package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/service"
)

const maxBodyBytes = 1 << 20

// ContentHandler 新闻/任务/知识库/制度 CRUD 路由
type ContentHandler struct {
	news      *service.NewsService
	tasks     *service.TaskService
	knowledge *service.KnowledgeService
	policies  *service.PolicyService
	logger    *zap.Logger
}

func NewContentHandler(
	news *service.NewsService,
	tasks *service.TaskService,
	knowledge *service.KnowledgeService,
	policies *service.PolicyService,
	logger *zap.Logger,
) *ContentHandler {
	return &ContentHandler{
		news:      news,
		tasks:     tasks,
		knowledge: knowledge,
		policies:  policies,
		logger:    logger,
	}
}

// News GET/POST /api/news
func (h *ContentHandler) News(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := h.news.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(items))
	case http.MethodPost:
		var body struct {
			Title    string `json:"title"`
			Content  string `json:"content"`
			Priority string `json:"priority"`
		}
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		item, err := h.news.Create(r.Context(), body.Title, body.Content, body.Priority)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, Ok(item))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// NewsByID PUT/DELETE /api/news/{id}
func (h *ContentHandler) NewsByID(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodPut:
		var upd domain.NewsUpdate
		if err := readBodyJSON(r, maxBodyBytes, &upd); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		item, err := h.news.Update(r.Context(), id, upd)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(item))
	case http.MethodDelete:
		if err := h.news.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]bool{"deleted": true}))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Tasks GET/POST /api/tasks
func (h *ContentHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := h.tasks.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(items))
	case http.MethodPost:
		var t domain.Task
		if err := readBodyJSON(r, maxBodyBytes, &t); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := h.tasks.Create(r.Context(), t)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, Ok(created))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// TasksByID PUT/DELETE /api/tasks/{id}
func (h *ContentHandler) TasksByID(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodPut:
		var upd domain.TaskUpdate
		if err := readBodyJSON(r, maxBodyBytes, &upd); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		item, err := h.tasks.Update(r.Context(), id, upd)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(item))
	case http.MethodDelete:
		if err := h.tasks.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]bool{"deleted": true}))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Knowledge GET/POST /api/knowledge
func (h *ContentHandler) Knowledge(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := h.knowledge.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(items))
	case http.MethodPost:
		var k domain.Knowledge
		if err := readBodyJSON(r, maxBodyBytes, &k); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := h.knowledge.Create(r.Context(), k)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, Ok(created))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// KnowledgeByID PUT/DELETE /api/knowledge/{id}
func (h *ContentHandler) KnowledgeByID(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodPut:
		var upd domain.KnowledgeUpdate
		if err := readBodyJSON(r, maxBodyBytes, &upd); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		item, err := h.knowledge.Update(r.Context(), id, upd)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(item))
	case http.MethodDelete:
		if err := h.knowledge.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]bool{"deleted": true}))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Policies GET/POST /api/policies
func (h *ContentHandler) Policies(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := h.policies.List(r.Context())
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(items))
	case http.MethodPost:
		var p domain.Policy
		if err := readBodyJSON(r, maxBodyBytes, &p); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := h.policies.Create(r.Context(), p)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, Ok(created))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// PoliciesByID PUT/DELETE /api/policies/{id}
func (h *ContentHandler) PoliciesByID(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodPut:
		var upd domain.PolicyUpdate
		if err := readBodyJSON(r, maxBodyBytes, &upd); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		item, err := h.policies.Update(r.Context(), id, upd)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(item))
	case http.MethodDelete:
		if err := h.policies.Delete(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(map[string]bool{"deleted": true}))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
