package domain

// TodoItem 个人待办项。ID 按创建时刻毫秒生成，同一毫秒内递增。
type TodoItem struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}
