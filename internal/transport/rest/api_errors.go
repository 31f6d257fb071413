package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	accountsapp "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/application"
	accountsports "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/ports"
	invoicesapp "github.com/enayetchefonline/partner-gateway/internal/domains/invoices/application"
	ordersapp "github.com/enayetchefonline/partner-gateway/internal/domains/orders/application"
	reservationsapp "github.com/enayetchefonline/partner-gateway/internal/domains/reservations/application"
	restaurantsapp "github.com/enayetchefonline/partner-gateway/internal/domains/restaurants/application"
	reviewsapp "github.com/enayetchefonline/partner-gateway/internal/domains/reviews/application"
	ticketsapp "github.com/enayetchefonline/partner-gateway/internal/domains/tickets/application"
	apierrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

// responder translates application errors into Problem Details. Validation
// failures become 400s, missing resources 404s, credential or session
// failures 401s; upstream errors already carry their own ProblemDetail and
// pass through unchanged.
var responder = apierrors.NewResponder(
	func(err error) (apierrors.ProblemDetail, bool) {
		switch {
		case errors.Is(err, ordersapp.ErrOrderNotFound):
			return apierrors.ErrNotFound.WithDetail(err.Error()), true
		case errors.Is(err, accountsports.ErrInvalidCredentials):
			return apierrors.ErrUnauthorized.WithDetail(err.Error()), true
		case errors.Is(err, accountsapp.ErrSessionNotFound):
			return apierrors.ErrUnauthorized.WithDetail(err.Error()), true
		}
		return apierrors.ProblemDetail{}, false
	},
	func(err error) (apierrors.ProblemDetail, bool) {
		for _, invalid := range []error{
			ordersapp.ErrInvalidQuery,
			reservationsapp.ErrInvalidQuery,
			accountsapp.ErrInvalidInput,
			restaurantsapp.ErrInvalidInput,
			invoicesapp.ErrInvalidInput,
			reviewsapp.ErrInvalidInput,
			ticketsapp.ErrInvalidInput,
		} {
			if errors.Is(err, invalid) {
				return apierrors.ErrValidation.WithDetail(err.Error()), true
			}
		}
		return apierrors.ProblemDetail{}, false
	},
)

// respondError reports transport-level failures (binding, query parsing).
func respondError(c *gin.Context, status int, err error) {
	switch status {
	case http.StatusBadRequest:
		apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
	case http.StatusUnauthorized:
		apierrors.Respond(c, apierrors.ErrUnauthorized.WithDetail(err.Error()))
	case http.StatusNotFound:
		apierrors.Respond(c, apierrors.ErrNotFound.WithDetail(err.Error()))
	default:
		apierrors.Respond(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}

// respondServiceError routes use-case errors through the shared responder.
func respondServiceError(c *gin.Context, err error) {
	responder.RespondError(c, err)
}
