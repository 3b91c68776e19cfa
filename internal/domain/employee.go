package domain

import "time"

// DefaultProfileImage is served when neither an override nor an upstream
// image exists for an employee.
const DefaultProfileImage = "/api/placeholder/150/150"

// Employee 目录员工（系统记录来自 HR 工作簿，本层不删除）
type Employee struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Department       string    `json:"department"`
	Grade            string    `json:"grade"`
	ReportingManager string    `json:"reportingManager,omitempty"`
	ReportingID      string    `json:"reportingId,omitempty"`
	Location         string    `json:"location"`
	Mobile           string    `json:"mobile"`
	Extension        string    `json:"extension"`
	Email            string    `json:"email"`
	DateOfJoining    string    `json:"dateOfJoining,omitempty"` // YYYY-MM-DD
	ProfileImage     string    `json:"profileImage"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// JoinedAfter reports whether the employee's date of joining is on or after t.
// Employees without a recorded joining date never match.
func (e Employee) JoinedAfter(t time.Time) bool {
	if e.DateOfJoining == "" {
		return false
	}
	d, err := time.Parse("2006-01-02", e.DateOfJoining)
	if err != nil {
		return false
	}
	return !d.Before(t)
}

// DirectoryStats 目录统计（departments/locations/总数）
type DirectoryStats struct {
	Employees   int `json:"employees"`
	Departments int `json:"departments"`
	Locations   int `json:"locations"`
}
