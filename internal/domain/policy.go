package domain

import "time"

// Policy 公司制度文档
type Policy struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Category      string     `json:"category"`
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
	Version       string     `json:"version"`
	Author        string     `json:"author"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type PolicyUpdate struct {
	Title         *string    `json:"title"`
	Content       *string    `json:"content"`
	Category      *string    `json:"category"`
	EffectiveDate *time.Time `json:"effective_date"`
	Version       *string    `json:"version"`
}
