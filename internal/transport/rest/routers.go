// Package rest exposes the partner gateway's HTTP surface: one api_*.go file
// per bounded context plus the router wiring them behind session auth.
package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accountsports "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/ports"
)

// APIHandlers aggregates the per-context HTTP handlers.
type APIHandlers struct {
	Accounts     AccountAPI
	Orders       OrderAPI
	Reservations ReservationAPI
	Restaurants  RestaurantAPI
	Invoices     InvoiceAPI
	Reviews      ReviewAPI
	Tickets      TicketAPI
}

// NewRouter builds the gin engine with all API routes. Everything except
// login and the health probe sits behind bearer-token session auth.
func NewRouter(handlers APIHandlers, accounts accountsports.Service, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	v1.POST("/auth/login", handlers.Accounts.Login)

	authed := v1.Group("")
	authed.Use(RequireSession(accounts))

	authed.POST("/auth/logout", handlers.Accounts.Logout)
	authed.GET("/account/pin", handlers.Accounts.PinConfigured)
	authed.POST("/account/pin", handlers.Accounts.SetPin)
	authed.PUT("/account/pin", handlers.Accounts.ChangePin)
	authed.POST("/account/pin/verify", handlers.Accounts.VerifyPin)
	authed.POST("/account/pin/reset", handlers.Accounts.RequestPinReset)
	authed.PUT("/account/password", handlers.Accounts.ChangePassword)

	restaurants := authed.Group("/restaurants/:restaurantId")
	restaurants.POST("/branches", handlers.Accounts.AddBranch)
	restaurants.GET("/orders", handlers.Orders.ListOrders)
	restaurants.GET("/orders/:orderNo", handlers.Orders.GetOrder)
	restaurants.GET("/reservations", handlers.Reservations.ListReservations)
	restaurants.GET("/reservations/settings", handlers.Reservations.GetSettings)
	restaurants.PUT("/reservations/settings/accept", handlers.Reservations.SetAcceptReservations)
	restaurants.PUT("/reservations/settings/auto-confirm", handlers.Reservations.SetAutoConfirm)
	restaurants.GET("/summary", handlers.Restaurants.Summary)
	restaurants.GET("/status/today", handlers.Restaurants.TodayStatus)
	restaurants.PUT("/status/today", handlers.Restaurants.SetTodayStatus)
	restaurants.GET("/opening-hours", handlers.Restaurants.OpeningHours)
	restaurants.GET("/reservation-hours", handlers.Restaurants.ReservationHours)
	restaurants.POST("/shifts", handlers.Restaurants.AddShift)
	restaurants.GET("/policy-times", handlers.Restaurants.PolicyTimes)
	restaurants.POST("/policy-times", handlers.Restaurants.AddPolicyTime)
	restaurants.GET("/invoices", handlers.Invoices.ListInvoices)
	restaurants.GET("/reviews", handlers.Reviews.ListReviews)

	authed.PUT("/shifts/:shiftId", handlers.Restaurants.EditShift)
	authed.DELETE("/shifts/:shiftId", handlers.Restaurants.CloseShift)
	authed.PUT("/policy-times/:policyTimeId", handlers.Restaurants.EditPolicyTime)
	authed.DELETE("/policy-times/:policyTimeId", handlers.Restaurants.ClosePolicyTime)
	authed.GET("/invoices/:invoiceNo/download", handlers.Invoices.DownloadLink)
	authed.PUT("/reviews/:reviewId/status", handlers.Reviews.SetPublished)
	authed.POST("/reviews/:reviewId/reply", handlers.Reviews.Reply)
	authed.GET("/faqs", handlers.Restaurants.FAQs)
	authed.GET("/tickets", handlers.Tickets.ListTickets)
	authed.POST("/tickets", handlers.Tickets.CreateTicket)

	return router
}
