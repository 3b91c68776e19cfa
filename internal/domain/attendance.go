package domain

// AttendanceRecord 考勤记录（日期为 YYYY-MM-DD，打卡时间为 HH:MM）
type AttendanceRecord struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	EmployeeName     string   `json:"employee_name"`
	Date             string   `json:"date"`
	PunchIn          string   `json:"punch_in,omitempty"`
	PunchOut         string   `json:"punch_out,omitempty"`
	PunchInLocation  string   `json:"punch_in_location,omitempty"`
	PunchOutLocation string   `json:"punch_out_location,omitempty"`
	TotalHours       *float64 `json:"total_hours,omitempty"`
	Status           string   `json:"status"` // present | absent | half_day | late
	Remarks          string   `json:"remarks,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

type AttendanceUpdate struct {
	PunchIn          *string `json:"punch_in"`
	PunchOut         *string `json:"punch_out"`
	PunchInLocation  *string `json:"punch_in_location"`
	PunchOutLocation *string `json:"punch_out_location"`
	Status           *string `json:"status"`
	Remarks          *string `json:"remarks"`
}
