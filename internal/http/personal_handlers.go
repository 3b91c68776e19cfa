package httpapi

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/service"
)

// PersonalHandler 个人待办 / 会话 / 节假日路由
type PersonalHandler struct {
	todos  *service.TodoService
	chat   *service.ChatService
	logger *zap.Logger
}

func NewPersonalHandler(todos *service.TodoService, chat *service.ChatService, logger *zap.Logger) *PersonalHandler {
	return &PersonalHandler{todos: todos, chat: chat, logger: logger}
}

// Todos GET/POST /api/users/{userId}/todos
func (h *PersonalHandler) Todos(w http.ResponseWriter, r *http.Request, userID string) {
	switch r.Method {
	case http.MethodGet:
		items, err := h.todos.List(r.Context(), userID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(items))
	case http.MethodPost:
		var body struct {
			Text string `json:"text"`
		}
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		item, err := h.todos.Add(r.Context(), userID, body.Text)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, Ok(item))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// TodoByID PUT(.../toggle)/DELETE /api/users/{userId}/todos/{id}
func (h *PersonalHandler) TodoByID(w http.ResponseWriter, r *http.Request, userID, rawID string, toggle bool) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid todo id"))
		return
	}
	switch {
	case r.Method == http.MethodPut && toggle:
		item, err := h.todos.Toggle(r.Context(), userID, id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(item))
	case r.Method == http.MethodDelete && !toggle:
		items, err := h.todos.Remove(r.Context(), userID, id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(items))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// ChatMessages GET/POST /api/chat/{sessionId}/messages
func (h *PersonalHandler) ChatMessages(w http.ResponseWriter, r *http.Request, sessionID string) {
	switch r.Method {
	case http.MethodGet:
		history, err := h.chat.History(r.Context(), sessionID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(history))
	case http.MethodPost:
		var body struct {
			Text string `json:"text"`
		}
		if err := readBodyJSON(r, maxBodyBytes, &body); err != nil || body.Text == "" {
			writeJSON(w, http.StatusBadRequest, Fail("message text is required"))
			return
		}
		reply, err := h.chat.Send(r.Context(), sessionID, body.Text)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, Ok(reply))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// ChatClear DELETE /api/chat/{sessionId}
func (h *PersonalHandler) ChatClear(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := h.chat.Clear(r.Context(), sessionID); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]bool{"cleared": true}))
}

// Holidays GET /api/holidays?year=
func (h *PersonalHandler) Holidays(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	year := parseInt(r.URL.Query().Get("year"), 2025)
	if year != 2025 {
		writeJSON(w, http.StatusOK, Ok([]domain.Holiday{}))
		return
	}
	writeJSON(w, http.StatusOK, Ok(domain.Holidays2025))
}
