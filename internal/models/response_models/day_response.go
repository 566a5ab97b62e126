package response_models

type DayResponse struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	OptimizedRoute bool            `json:"optimized_route"`
	Events         []EventResponse `json:"events"`
	TravelOptions  []LegResponse   `json:"travel_options,omitempty"`
}

type EventResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Address      string   `json:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	BufferBefore *int     `json:"buffer_before,omitempty"`
	BufferAfter  *int     `json:"buffer_after,omitempty"`
}

type LegResponse struct {
	Mode         string            `json:"mode"`
	DurationText string            `json:"duration_text"`
	LeaveByStart string            `json:"leave_by_start"`
	LeaveByEnd   string            `json:"leave_by_end"`
	Summary      string            `json:"summary,omitempty"`
	Steps        []TransitStepView `json:"steps,omitempty"`
}

type TransitStepView struct {
	Mode         string `json:"mode"`
	DurationText string `json:"duration_text"`
	Instruction  string `json:"instruction"`
}
