package domain

import "time"

// Alert 系统公告/告警（远端服务拥有）
type Alert struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Severity       string    `json:"severity"`        // info | warning | critical
	TargetAudience string    `json:"target_audience"` // all | admin | user
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
