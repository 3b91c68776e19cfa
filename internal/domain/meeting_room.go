package domain

import "time"

// RoomBooking 会议室预定（远端 booking 服务拥有，本层不持有权威副本）
type RoomBooking struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Remarks      string    `json:"remarks,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MeetingRoom 会议室实体
type MeetingRoom struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Capacity       int           `json:"capacity"`
	Location       string        `json:"location"`
	Floor          string        `json:"floor"`
	Status         string        `json:"status"` // vacant | occupied
	CurrentBooking *RoomBooking  `json:"current_booking,omitempty"`
	Bookings       []RoomBooking `json:"bookings"`
	Equipment      []string      `json:"equipment"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// BookingRequest POST /api/meeting-rooms/{id}/book 请求体
type BookingRequest struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	StartTime    string `json:"start_time"` // RFC3339
	EndTime      string `json:"end_time"`
	Remarks      string `json:"remarks,omitempty"`
}

// RoomFilters client-side filters applied after the full fetch.
type RoomFilters struct {
	Location string
	Floor    string
	Status   string
}
