package domain

import "time"

// WorkflowStep 流程步骤（按 Order 排序）
type WorkflowStep struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Order       int        `json:"order"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	Status      string     `json:"status"` // pending | in_progress | completed
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Workflow 审批/办事流程
type Workflow struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Steps       []WorkflowStep `json:"steps"`
	Status      string         `json:"status"` // active | inactive | completed
	CreatedBy   string         `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type WorkflowUpdate struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Status      *string         `json:"status"`
	Steps       *[]WorkflowStep `json:"steps"`
}
