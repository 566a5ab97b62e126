package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"gatortrips/internal/models/request_models"
	"gatortrips/internal/services"
	"gatortrips/pkg/utils"
)

type DayController struct {
	scheduler services.DaySchedulerServiceInterface
}

func NewDayController(scheduler services.DaySchedulerServiceInterface) *DayController {
	return &DayController{
		scheduler: scheduler,
	}
}

// AddEvent godoc
// @Summary Add an event to a day
// @Tags Days
// @Accept json
// @Produce json
// @Param dayId path string true "Day ID"
// @Param request body request_models.EventPayload true "Event payload"
// @Success 200 {object} response_models.DayResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /days/{dayId}/events [post]
func (d *DayController) AddEvent(c *gin.Context) {
	var req request_models.EventPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event payload")
		return
	}

	day, err := d.scheduler.AddEvent(c.Request.Context(), c.GetString("user_id"), c.Param("dayId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, day, "Event added successfully")
}

// EditEvent godoc
// @Summary Edit an event in place
// @Tags Days
// @Accept json
// @Produce json
// @Param dayId path string true "Day ID"
// @Param eventId path string true "Event ID"
// @Param request body request_models.EventPayload true "Event payload"
// @Success 200 {object} response_models.DayResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /days/{dayId}/events/{eventId} [put]
func (d *DayController) EditEvent(c *gin.Context) {
	var req request_models.EventPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event payload")
		return
	}

	day, err := d.scheduler.EditEvent(c.Request.Context(), c.GetString("user_id"), c.Param("dayId"), c.Param("eventId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, day, "Event updated successfully")
}

// RemoveEvent godoc
// @Summary Remove an event from a day
// @Tags Days
// @Produce json
// @Param dayId path string true "Day ID"
// @Param eventId path string true "Event ID"
// @Success 200 {object} response_models.DayResponse
// @Security BearerAuth
// @Router /days/{dayId}/events/{eventId} [delete]
func (d *DayController) RemoveEvent(c *gin.Context) {
	day, err := d.scheduler.RemoveEvent(c.Request.Context(), c.GetString("user_id"), c.Param("dayId"), c.Param("eventId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, day, "Event removed successfully")
}

// OptimizeDay godoc
// @Summary Reorder a day's events into a travel-efficient sequence
// @Tags Days
// @Produce json
// @Param dayId path string true "Day ID"
// @Success 200 {object} response_models.DayResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /days/{dayId}/optimize [post]
func (d *DayController) OptimizeDay(c *gin.Context) {
	day, err := d.scheduler.OptimizeDay(c.Request.Context(), c.GetString("user_id"), c.Param("dayId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, day, "Day optimized successfully")
}
