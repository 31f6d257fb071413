package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	accounthttpmapper "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/adapters/http/mapper"
	accountsports "github.com/enayetchefonline/partner-gateway/internal/domains/accounts/ports"
	apierrors "github.com/enayetchefonline/partner-gateway/internal/shared/errors"
)

// AccountAPI wires HTTP transport with the accounts bounded context service.
type AccountAPI struct {
	service accountsports.Service
}

// NewAccountAPI creates an AccountAPI backed by the provided service.
func NewAccountAPI(service accountsports.Service) AccountAPI {
	return AccountAPI{service: service}
}

// Post /v1/auth/login
// Exchange back-office credentials for an API session token
func (api *AccountAPI) Login(c *gin.Context) {
	var payload accounthttpmapper.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	result, err := api.service.Login(c.Request.Context(), accounthttpmapper.ToCredentials(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounthttpmapper.FromLoginResult(result))
}

// Post /v1/auth/logout
// Invalidate the current session and deregister the device
func (api *AccountAPI) Logout(c *gin.Context) {
	// the body is optional; an absent one means no device to deregister
	var payload accounthttpmapper.LogoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	token := bearerToken(c.GetHeader("Authorization"))
	if err := api.service.Logout(c.Request.Context(), token, payload.Platform, payload.PushToken); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Get /v1/account/pin
// Whether the session user has a PIN configured
func (api *AccountAPI) PinConfigured(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		apierrors.Unauthorized(c, "no session")
		return
	}
	configured, err := api.service.PinConfigured(c.Request.Context(), session.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"configured": configured})
}

// Post /v1/account/pin
// Set the session user's PIN
func (api *AccountAPI) SetPin(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		apierrors.Unauthorized(c, "no session")
		return
	}
	var payload accounthttpmapper.PinRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.service.SetPin(c.Request.Context(), session.UserID, payload.Pin); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /v1/account/pin/verify
// Check the supplied PIN against the stored one
func (api *AccountAPI) VerifyPin(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		apierrors.Unauthorized(c, "no session")
		return
	}
	var payload accounthttpmapper.PinRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.service.VerifyPin(c.Request.Context(), session.UserID, payload.Pin); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /v1/account/pin/reset
// Send a PIN reset to the registered mobile
func (api *AccountAPI) RequestPinReset(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		apierrors.Unauthorized(c, "no session")
		return
	}
	var payload accounthttpmapper.PinResetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.service.RequestPinReset(c.Request.Context(), session.UserID, payload.Mobile); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Put /v1/account/pin
// Replace the session user's PIN
func (api *AccountAPI) ChangePin(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		apierrors.Unauthorized(c, "no session")
		return
	}
	var payload accounthttpmapper.ChangePinRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if err := api.service.ChangePin(c.Request.Context(), session.UserID, payload.OldPin, payload.NewPin); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Put /v1/account/password
// Change the back-office password
func (api *AccountAPI) ChangePassword(c *gin.Context) {
	var payload accounthttpmapper.ChangePasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	err := api.service.ChangePassword(c.Request.Context(), payload.Email, payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Post /v1/restaurants/:restaurantId/branches
// Link a branch login under the parent restaurant
func (api *AccountAPI) AddBranch(c *gin.Context) {
	var payload accounthttpmapper.AddBranchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	restaurantID := c.Param("restaurantId")
	if err := api.service.AddBranch(c.Request.Context(), restaurantID, payload.Username, payload.Password); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
