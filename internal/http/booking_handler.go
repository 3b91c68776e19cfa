package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/service"
)

// BookingHandler 会议室与告警路由（数据由远端 booking 服务持久化）
type BookingHandler struct {
	client *service.BookingClient
	logger *zap.Logger
}

func NewBookingHandler(client *service.BookingClient, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{client: client, logger: logger}
}

// Rooms GET /api/meeting-rooms?location=&floor=&status=
func (h *BookingHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	filters := domain.RoomFilters{
		Location: q.Get("location"),
		Floor:    q.Get("floor"),
		Status:   q.Get("status"),
	}
	rooms, err := h.client.Rooms(r.Context(), filters)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(rooms))
}

// RoomLocations GET /api/meeting-rooms/locations
func (h *BookingHandler) RoomLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.client.RoomLocations(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(locations))
}

// RoomFloors GET /api/meeting-rooms/floors
func (h *BookingHandler) RoomFloors(w http.ResponseWriter, r *http.Request) {
	floors, err := h.client.RoomFloors(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(floors))
}

// Book POST /api/meeting-rooms/{id}/book
func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request, roomID string) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req domain.BookingRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	room, err := h.client.Book(r.Context(), roomID, req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Ok(room))
}

// CancelBooking DELETE /api/meeting-rooms/{id}/booking/{bookingId}
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request, roomID, bookingID string) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	room, err := h.client.CancelBooking(r.Context(), roomID, bookingID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(room))
}

// ClearAllBookings DELETE /api/meeting-rooms/clear-all-bookings
func (h *BookingHandler) ClearAllBookings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	status, err := h.client.ClearAllBookings(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(status))
}

// Alerts GET/POST /api/alerts
func (h *BookingHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		alerts, err := h.client.Alerts(r.Context(), r.URL.Query().Get("target_audience"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(alerts))
	case http.MethodPost:
		var alert domain.Alert
		if err := readBodyJSON(r, maxBodyBytes, &alert); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		created, err := h.client.CreateAlert(r.Context(), alert)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, Ok(created))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// AlertsByID PUT/DELETE /api/alerts/{id}
func (h *BookingHandler) AlertsByID(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodPut:
		var alert domain.Alert
		if err := readBodyJSON(r, maxBodyBytes, &alert); err != nil {
			writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
			return
		}
		updated, err := h.client.UpdateAlert(r.Context(), id, alert)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(updated))
	case http.MethodDelete:
		status, err := h.client.DeleteAlert(r.Context(), id)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, Ok(status))
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
