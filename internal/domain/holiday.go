package domain

// Holiday 节假日（来自年度节假日表）
type Holiday struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
	Day  string `json:"day"`
	Type string `json:"type"` // National | Religious | Weekend Holiday
}

// Holidays2025 is the published holiday calendar for 2025.
var Holidays2025 = []Holiday{
	{ID: 1, Name: "New Year Day", Date: "2025-01-01", Day: "Wednesday", Type: "National"},
	{ID: 2, Name: "Republic Day", Date: "2025-01-26", Day: "Sunday", Type: "Weekend Holiday"},
	{ID: 3, Name: "Mahashiv Ratri", Date: "2025-02-26", Day: "Wednesday", Type: "Religious"},
	{ID: 4, Name: "Holi", Date: "2025-03-14", Day: "Friday", Type: "Religious"},
	{ID: 5, Name: "Raksha Bandhan", Date: "2025-08-09", Day: "Saturday", Type: "Weekend Holiday"},
	{ID: 6, Name: "Independence Day", Date: "2025-08-15", Day: "Friday", Type: "National"},
	{ID: 7, Name: "Janmashtami", Date: "2025-08-16", Day: "Saturday", Type: "Religious"},
	{ID: 8, Name: "Maha Navmi", Date: "2025-10-01", Day: "Wednesday", Type: "Religious"},
	{ID: 9, Name: "Gandhi Jayanti/Dussehra", Date: "2025-10-02", Day: "Thursday", Type: "National"},
	{ID: 10, Name: "Diwali", Date: "2025-10-21", Day: "Tuesday", Type: "Religious"},
	{ID: 11, Name: "Govardhan Puja", Date: "2025-10-22", Day: "Wednesday", Type: "Religious"},
	{ID: 12, Name: "Bhai Dooj", Date: "2025-10-23", Day: "Thursday", Type: "Religious"},
	{ID: 13, Name: "Christmas Day", Date: "2025-12-25", Day: "Thursday", Type: "National"},
}
