package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reservationhttpmapper "github.com/enayetchefonline/partner-gateway/internal/domains/reservations/adapters/http/mapper"
	reservationsports "github.com/enayetchefonline/partner-gateway/internal/domains/reservations/ports"
	"github.com/enayetchefonline/partner-gateway/internal/shared/daterange"
)

// ReservationAPI wires HTTP transport with the reservations bounded context
// service.
type ReservationAPI struct {
	service reservationsports.Service
}

// NewReservationAPI creates a ReservationAPI backed by the provided service.
func NewReservationAPI(service reservationsports.Service) ReservationAPI {
	return ReservationAPI{service: service}
}

// Get /v1/restaurants/:restaurantId/reservations
// Ranged reservation listing split into confirmation tabs. Without a preset
// or explicit bounds the backend answers with its default upcoming horizon.
func (api *ReservationAPI) ListReservations(c *gin.Context) {
	var window daterange.Range
	if hasRangeFilter(c) {
		var err error
		window, err = rangeFromQuery(c, daterange.PresetToday)
		if err != nil {
			respondError(c, http.StatusBadRequest, err)
			return
		}
	}
	query := reservationsports.Query{RestaurantID: c.Param("restaurantId"), Range: window}
	list, err := api.service.ListReservations(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservationhttpmapper.FromList(list))
}

// Get /v1/restaurants/:restaurantId/reservations/settings
// Reservation acceptance settings
func (api *ReservationAPI) GetSettings(c *gin.Context) {
	settings, err := api.service.Settings(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservationhttpmapper.FromSettings(settings))
}

// Put /v1/restaurants/:restaurantId/reservations/settings/accept
// Toggle whether new reservations are accepted
func (api *ReservationAPI) SetAcceptReservations(c *gin.Context) {
	var payload reservationhttpmapper.ToggleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	restaurantID := c.Param("restaurantId")
	if err := api.service.SetAcceptReservations(c.Request.Context(), restaurantID, *payload.Enabled); err != nil {
		respondServiceError(c, err)
		return
	}
	api.GetSettings(c)
}

// Put /v1/restaurants/:restaurantId/reservations/settings/auto-confirm
// Toggle automatic confirmation of incoming reservations
func (api *ReservationAPI) SetAutoConfirm(c *gin.Context) {
	var payload reservationhttpmapper.ToggleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	restaurantID := c.Param("restaurantId")
	if err := api.service.SetAutoConfirm(c.Request.Context(), restaurantID, *payload.Enabled); err != nil {
		respondServiceError(c, err)
		return
	}
	api.GetSettings(c)
}
