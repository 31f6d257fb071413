package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/enayetchefonline/partner-gateway/internal/domains/orders/adapters/http/mapper"
	ordersports "github.com/enayetchefonline/partner-gateway/internal/domains/orders/ports"
	"github.com/enayetchefonline/partner-gateway/internal/shared/daterange"
)

// OrderAPI wires HTTP transport with the orders bounded context service.
type OrderAPI struct {
	service ordersports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Get /v1/restaurants/:restaurantId/orders
// Ranged order listing with aggregates
func (api *OrderAPI) ListOrders(c *gin.Context) {
	window, err := rangeFromQuery(c, daterange.PresetToday)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	query := ordersports.Query{RestaurantID: c.Param("restaurantId"), Range: window}
	list, err := api.service.ListOrders(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromOrderList(list))
}

// Get /v1/restaurants/:restaurantId/orders/:orderNo
// Single order detail within the requested range
func (api *OrderAPI) GetOrder(c *gin.Context) {
	window, err := rangeFromQuery(c, daterange.PresetToday)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	query := ordersports.Query{RestaurantID: c.Param("restaurantId"), Range: window}
	detail, err := api.service.GetOrder(c.Request.Context(), query, c.Param("orderNo"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromOrderDetail(detail))
}
