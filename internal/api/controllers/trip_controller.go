package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"gatortrips/internal/models/request_models"
	"gatortrips/internal/services"
	"gatortrips/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip and materialize one day per date in range
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 200 {object} response_models.TripDetailResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip created successfully")
}

// ListTrips godoc
// @Summary List the caller's own trips
// @Tags Trips
// @Produce json
// @Success 200 {array} response_models.TripResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	trips, err := t.tripService.GetTripsByOwner(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// ListSharedTrips godoc
// @Summary List trips shared with the caller
// @Tags Trips
// @Produce json
// @Success 200 {array} response_models.TripResponse
// @Security BearerAuth
// @Router /trips/shared [get]
func (t *TripController) ListSharedTrips(c *gin.Context) {
	trips, err := t.tripService.GetSharedTrips(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Shared trips fetched successfully")
}

// GetTrip godoc
// @Summary Get trip details
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTripDetail(c.Request.Context(), c.GetString("user_id"), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip details fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip (owner only)
// @Tags Trips
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	err := t.tripService.DeleteTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// LeaveTrip godoc
// @Summary Leave a shared trip
// @Tags Trips
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/leave [post]
func (t *TripController) LeaveTrip(c *gin.Context) {
	err := t.tripService.LeaveTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Left trip successfully")
}

// InviteCollaborator godoc
// @Summary Invite a collaborator by display name or email
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.InviteCollaboratorRequest true "Identifier"
// @Success 200 {object} response_models.AccountResponse
// @Security BearerAuth
// @Router /trips/{tripId}/collaborators [post]
func (t *TripController) InviteCollaborator(c *gin.Context) {
	var req request_models.InviteCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Identifier is required")
		return
	}

	account, err := t.tripService.InviteCollaborator(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), req.Identifier)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Collaborator added successfully")
}

// UpdateTravelMode godoc
// @Summary Set the trip's preferred travel mode
// @Tags Trips
// @Accept json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.UpdateTravelModeRequest true "DRIVING or TRANSIT"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/travel-mode [put]
func (t *TripController) UpdateTravelMode(c *gin.Context) {
	var req request_models.UpdateTravelModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Travel mode is required")
		return
	}

	err := t.tripService.UpdateTravelMode(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), req.TravelMode)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Travel mode updated successfully")
}
