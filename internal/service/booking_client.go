package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aviverma007/EMPLOYEE-DIR-BETA1/internal/domain"
)

// BookingClient 预订服务客户端（会议室与公告由远端服务持久化）
// Reads re-fetch the full set every time; filters are applied client-side.
// Mutations are never retried automatically: a network failure leaves the
// outcome unknown, so the decision belongs to the caller. Book carries an
// Idempotency-Key so a caller-side retry cannot double-book.
type BookingClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// errorBody is the structured error the booking service returns on non-2xx.
type errorBody struct {
	Detail string `json:"detail"`
}

func NewBookingClient(baseURL string, timeout time.Duration, logger *zap.Logger) *BookingClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &BookingClient{httpClient: client, logger: logger}
}

// remoteErr decodes the structured error body and surfaces the upstream
// status and detail verbatim.
func remoteErr(resp *resty.Response) error {
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Detail == "" {
		body.Detail = resp.Status()
	}
	return &domain.RemoteRequestError{Status: resp.StatusCode(), Detail: body.Detail}
}

// Rooms fetches all meeting rooms and applies the filters locally.
func (c *BookingClient) Rooms(ctx context.Context, filters domain.RoomFilters) ([]domain.MeetingRoom, error) {
	var rooms []domain.MeetingRoom
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&rooms).
		Get("/api/meeting-rooms")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meeting rooms: %w", err)
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}

	out := rooms[:0]
	for _, r := range rooms {
		if filters.Location != "" && r.Location != filters.Location {
			continue
		}
		if filters.Floor != "" && r.Floor != filters.Floor {
			continue
		}
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// RoomLocations returns the distinct locations across all rooms.
func (c *BookingClient) RoomLocations(ctx context.Context) ([]string, error) {
	return c.distinctRoomField(ctx, func(r domain.MeetingRoom) string { return r.Location })
}

// RoomFloors returns the distinct floors across all rooms.
func (c *BookingClient) RoomFloors(ctx context.Context) ([]string, error) {
	return c.distinctRoomField(ctx, func(r domain.MeetingRoom) string { return r.Floor })
}

func (c *BookingClient) distinctRoomField(ctx context.Context, field func(domain.MeetingRoom) string) ([]string, error) {
	rooms, err := c.Rooms(ctx, domain.RoomFilters{})
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	var out []string
	for _, r := range rooms {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

// Book places a booking and returns the updated room. Conflicts come back
// from the service as 409 and are surfaced unchanged.
func (c *BookingClient) Book(ctx context.Context, roomID string, req domain.BookingRequest) (*domain.MeetingRoom, error) {
	var room domain.MeetingRoom
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetBody(req).
		SetResult(&room).
		Post("/api/meeting-rooms/" + roomID + "/book")
	if err != nil {
		return nil, fmt.Errorf("failed to book meeting room %s: %w", roomID, err)
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}
	c.logger.Info("Meeting room booked",
		zap.String("room_id", roomID),
		zap.String("employee_id", req.EmployeeID),
	)
	return &room, nil
}

// CancelBooking removes one booking and returns the updated room.
func (c *BookingClient) CancelBooking(ctx context.Context, roomID, bookingID string) (*domain.MeetingRoom, error) {
	var room domain.MeetingRoom
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&room).
		Delete("/api/meeting-rooms/" + roomID + "/booking/" + bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}
	return &room, nil
}

// ClearAllBookings wipes every booking on every room (admin only).
func (c *BookingClient) ClearAllBookings(ctx context.Context) (map[string]any, error) {
	var status map[string]any
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&status).
		Delete("/api/meeting-rooms/clear-all-bookings")
	if err != nil {
		return nil, fmt.Errorf("failed to clear bookings: %w", err)
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}
	return status, nil
}

// Alerts fetches alerts for the given audience (all | admin | user).
func (c *BookingClient) Alerts(ctx context.Context, audience string) ([]domain.Alert, error) {
	if audience == "" {
		audience = "all"
	}
	var alerts []domain.Alert
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("target_audience", audience).
		SetResult(&alerts).
		Get("/api/alerts")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch alerts: %w", err)
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}
	return alerts, nil
}

func (c *BookingClient) CreateAlert(ctx context.Context, alert domain.Alert) (*domain.Alert, error) {
	var created domain.Alert
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(alert).
		SetResult(&created).
		Post("/api/alerts")
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}
	return &created, nil
}

func (c *BookingClient) UpdateAlert(ctx context.Context, id string, alert domain.Alert) (*domain.Alert, error) {
	var updated domain.Alert
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(alert).
		SetResult(&updated).
		Put("/api/alerts/" + id)
	if err != nil {
		return nil, fmt.Errorf("failed to update alert %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}
	return &updated, nil
}

func (c *BookingClient) DeleteAlert(ctx context.Context, id string) (map[string]any, error) {
	var status map[string]any
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&status).
		Delete("/api/alerts/" + id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete alert %s: %w", id, err)
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}
	return status, nil
}
