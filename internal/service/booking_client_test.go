package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

func bookingTestRooms() []domain.MeetingRoom {
	return []domain.MeetingRoom{
		{ID: "R1", Name: "Board Room", Location: "Gurgaon", Floor: "1", Status: "vacant"},
		{ID: "R2", Name: "Huddle A", Location: "Gurgaon", Floor: "2", Status: "occupied"},
		{ID: "R3", Name: "Huddle B", Location: "Mumbai", Floor: "1", Status: "vacant"},
	}
}

func newBookingTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *BookingClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewBookingClient(srv.URL, 2*time.Second, zap.NewNop())
}

func TestBookingClientRoomsClientSideFilters(t *testing.T) {
	_, client := newBookingTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/meeting-rooms", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(bookingTestRooms()))
	})

	rooms, err := client.Rooms(context.Background(), domain.RoomFilters{Location: "Gurgaon", Status: "vacant"})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "R1", rooms[0].ID)
}

func TestBookingClientRoomDistinctFields(t *testing.T) {
	_, client := newBookingTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(bookingTestRooms()))
	})

	locations, err := client.RoomLocations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Gurgaon", "Mumbai"}, locations)

	floors, err := client.RoomFloors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, floors)
}

func TestBookingClientBookSendsIdempotencyKey(t *testing.T) {
	var keys []string
	_, client := newBookingTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/meeting-rooms/R1/book", r.URL.Path)
		keys = append(keys, r.Header.Get("Idempotency-Key"))

		var req domain.BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "E001", req.EmployeeID)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(domain.MeetingRoom{ID: "R1", Status: "occupied"}))
	})

	req := domain.BookingRequest{
		EmployeeID:   "E001",
		EmployeeName: "Aarav Sharma",
		StartTime:    "2026-09-01T10:00:00Z",
		EndTime:      "2026-09-01T11:00:00Z",
	}
	room, err := client.Book(context.Background(), "R1", req)
	require.NoError(t, err)
	assert.Equal(t, "occupied", room.Status)

	_, err = client.Book(context.Background(), "R1", req)
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.NotEmpty(t, keys[0])
	assert.NotEqual(t, keys[0], keys[1], "each Book call is its own operation")
}

func TestBookingClientBookConflictSurfacedVerbatim(t *testing.T) {
	_, client := newBookingTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail":"Room is already booked for this time slot"}`))
	})

	_, err := client.Book(context.Background(), "R1", domain.BookingRequest{EmployeeID: "E001"})
	require.Error(t, err)

	var remote *domain.RemoteRequestError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusConflict, remote.Status)
	assert.Equal(t, "Room is already booked for this time slot", remote.Detail)
}

func TestBookingClientMalformedErrorBodyFallsBackToStatus(t *testing.T) {
	_, client := newBookingTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := client.Rooms(context.Background(), domain.RoomFilters{})
	var remote *domain.RemoteRequestError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusBadGateway, remote.Status)
	assert.NotEmpty(t, remote.Detail)
}

func TestBookingClientCancelAndClearAll(t *testing.T) {
	_, client := newBookingTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/meeting-rooms/R1/booking/B7":
			require.NoError(t, json.NewEncoder(w).Encode(domain.MeetingRoom{ID: "R1", Status: "vacant"}))
		case "/api/meeting-rooms/clear-all-bookings":
			_, _ = w.Write([]byte(`{"cleared": 4}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	room, err := client.CancelBooking(context.Background(), "R1", "B7")
	require.NoError(t, err)
	assert.Equal(t, "vacant", room.Status)

	status, err := client.ClearAllBookings(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 4, status["cleared"])
}

func TestBookingClientAlertsAudienceParam(t *testing.T) {
	var audiences []string
	_, client := newBookingTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/alerts", r.URL.Path)
		audiences = append(audiences, r.URL.Query().Get("target_audience"))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode([]domain.Alert{{ID: "A1", Title: "Maintenance"}}))
	})

	ctx := context.Background()
	alerts, err := client.Alerts(ctx, "admin")
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	_, err = client.Alerts(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"admin", "all"}, audiences)
}

func TestBookingClientAlertCRUD(t *testing.T) {
	_, client := newBookingTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/alerts":
			var in domain.Alert
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			in.ID = "A9"
			require.NoError(t, json.NewEncoder(w).Encode(in))
		case r.Method == http.MethodPut && r.URL.Path == "/api/alerts/A9":
			require.NoError(t, json.NewEncoder(w).Encode(domain.Alert{ID: "A9", Severity: "critical"}))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/alerts/A9":
			_, _ = w.Write([]byte(`{"deleted": true}`))
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	ctx := context.Background()
	created, err := client.CreateAlert(ctx, domain.Alert{Title: "Maintenance", Severity: "warning"})
	require.NoError(t, err)
	assert.Equal(t, "A9", created.ID)

	updated, err := client.UpdateAlert(ctx, "A9", domain.Alert{Severity: "critical"})
	require.NoError(t, err)
	assert.Equal(t, "critical", updated.Severity)

	status, err := client.DeleteAlert(ctx, "A9")
	require.NoError(t, err)
	assert.Equal(t, true, status["deleted"])
}
