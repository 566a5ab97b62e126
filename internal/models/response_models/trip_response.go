package response_models

type TripResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" binding:"required"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	TravelMode    string   `json:"travel_mode"`
	Collaborators []string `json:"collaborators,omitempty"`
}

type TripDetailResponse struct {
	TripResponse
	Days []DayResponse `json:"days"`
}
