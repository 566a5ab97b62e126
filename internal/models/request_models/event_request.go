package request_models

type EventPayload struct {
	Title     string   `json:"title" binding:"required,min=1,max=150"`
	Category  string   `json:"category" binding:"required"`
	StartTime string   `json:"start_time" binding:"required"` // "HH:MM"
	EndTime   string   `json:"end_time" binding:"required"`   // "HH:MM"
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
