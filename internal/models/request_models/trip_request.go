package request_models

type CreateTripRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	// Date-only, "2006-01-02". End is inclusive and must not precede start.
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	TravelMode string `json:"travel_mode"`
}

type InviteCollaboratorRequest struct {
	// Free-text identifier: matched against display name first, then email.
	Identifier string `json:"identifier" binding:"required"`
}

type UpdateTravelModeRequest struct {
	TravelMode string `json:"travel_mode" binding:"required"`
}
