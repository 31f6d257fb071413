package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	restauranthttpmapper "github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/adapters/http/mapper"
	restaurantsdomain "github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/domain"
	restaurantsports "github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/ports"
	apierrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

// RestaurantAPI wires HTTP transport with the restaurants bounded context
// service.
type RestaurantAPI struct {
	service restaurantsports.Service
}

// NewRestaurantAPI creates a RestaurantAPI backed by the provided service.
func NewRestaurantAPI(service restaurantsports.Service) RestaurantAPI {
	return RestaurantAPI{service: service}
}

// Get /v1/restaurants/:restaurantId/summary
// Lifetime dashboard aggregates
func (api *RestaurantAPI) Summary(c *gin.Context) {
	summary, err := api.service.Summary(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restauranthttpmapper.FromSummary(summary))
}

// Get /v1/restaurants/:restaurantId/status/today
// Whether online ordering is switched off for today
func (api *RestaurantAPI) TodayStatus(c *gin.Context) {
	closed, err := api.service.TodayClosed(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restauranthttpmapper.TodayStatus{Closed: closed})
}

// Put /v1/restaurants/:restaurantId/status/today
// Open or close online ordering for today
func (api *RestaurantAPI) SetTodayStatus(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		apierrors.Unauthorized(c, "no session")
		return
	}
	var payload restauranthttpmapper.SetTodayStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	restaurantID := c.Param("restaurantId")
	if err := api.service.SetTodayClosed(c.Request.Context(), restaurantID, session.UserID, *payload.Closed); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restauranthttpmapper.TodayStatus{Closed: *payload.Closed})
}

// Get /v1/restaurants/:restaurantId/opening-hours
// Weekly ordering timetable
func (api *RestaurantAPI) OpeningHours(c *gin.Context) {
	days, err := api.service.OpeningHours(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restauranthttpmapper.FromTimetable(days))
}

// Get /v1/restaurants/:restaurantId/reservation-hours
// Weekly reservation timetable
func (api *RestaurantAPI) ReservationHours(c *gin.Context) {
	days, err := api.service.ReservationHours(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restauranthttpmapper.FromTimetable(days))
}

// Post /v1/restaurants/:restaurantId/shifts
// Add a shift to the weekly timetable
func (api *RestaurantAPI) AddShift(c *gin.Context) {
	var payload restauranthttpmapper.AddShiftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := restaurantsdomain.NewShiftInput{
		RestaurantID: c.Param("restaurantId"),
		Weekday:      payload.Weekday,
		ShiftNo:      payload.ShiftNo,
		OpensUnix:    payload.OpensUnix,
		ClosesUnix:   payload.ClosesUnix,
		Reservation:  payload.Reservation,
	}
	if err := api.service.AddShift(c.Request.Context(), input); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Put /v1/shifts/:shiftId
// Update a shift's open and close times
func (api *RestaurantAPI) EditShift(c *gin.Context) {
	var payload restauranthttpmapper.EditShiftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.service.EditShift(c.Request.Context(), c.Param("shiftId"), payload.OpensUnix, payload.ClosesUnix); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete /v1/shifts/:shiftId
// Remove a shift from the weekly timetable
func (api *RestaurantAPI) CloseShift(c *gin.Context) {
	if err := api.service.CloseShift(c.Request.Context(), c.Param("shiftId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /v1/restaurants/:restaurantId/policy-times
// Weekly order lead-time schedule
func (api *RestaurantAPI) PolicyTimes(c *gin.Context) {
	days, err := api.service.PolicyTimes(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restauranthttpmapper.FromPolicySchedule(days))
}

// Post /v1/restaurants/:restaurantId/policy-times
// Add a lead-time row
func (api *RestaurantAPI) AddPolicyTime(c *gin.Context) {
	var payload restauranthttpmapper.AddPolicyTimeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := restaurantsdomain.NewPolicyTimeInput{
		RestaurantID: c.Param("restaurantId"),
		DayNo:        payload.DayNo,
		ShiftNo:      payload.ShiftNo,
		PolicyID:     payload.PolicyID,
		Minutes:      *payload.Minutes,
	}
	if err := api.service.AddPolicyTime(c.Request.Context(), input); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Put /v1/policy-times/:policyTimeId
// Update minutes on a lead-time row
func (api *RestaurantAPI) EditPolicyTime(c *gin.Context) {
	var payload restauranthttpmapper.EditPolicyTimeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.service.EditPolicyTime(c.Request.Context(), c.Param("policyTimeId"), *payload.Minutes); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete /v1/policy-times/:policyTimeId
// Remove a lead-time row
func (api *RestaurantAPI) ClosePolicyTime(c *gin.Context) {
	if err := api.service.ClosePolicyTime(c.Request.Context(), c.Param("policyTimeId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /v1/faqs
// Partner FAQ entries
func (api *RestaurantAPI) FAQs(c *gin.Context) {
	faqs, err := api.service.FAQs(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, restauranthttpmapper.FromFAQs(faqs))
}
