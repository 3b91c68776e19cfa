package domain

import "time"

// HelpReply 帮助工单回复
type HelpReply struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// HelpRequest 帮助台工单（含回复列表）
type HelpRequest struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	Priority  string      `json:"priority"` // normal | medium | high
	Status    string      `json:"status"`   // open | in_progress | resolved
	Author    string      `json:"author"`
	Replies   []HelpReply `json:"replies"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
