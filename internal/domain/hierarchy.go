package domain

import "time"

// HierarchyRelation 汇报关系（employee -> manager）
type HierarchyRelation struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	ReportsTo  string    `json:"reportsTo"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
