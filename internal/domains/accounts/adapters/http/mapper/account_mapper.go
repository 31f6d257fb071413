package mapper

import (
	"time"

	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/domain"
	"github.com/enayetchefonline/partner-gateway/internal/domains/accounts/ports"
)

// LoginRequest is the inbound login payload.
type LoginRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Platform  string `json:"platform,omitempty"`
	PushToken string `json:"pushToken,omitempty"`
}

// Branch is the HTTP representation of an assigned restaurant.
type Branch struct {
	RestaurantID string `json:"restaurantId"`
	Name         string `json:"name"`
	Postcode     string `json:"postcode,omitempty"`
}

// Account is the HTTP representation of the authenticated profile.
type Account struct {
	UserID       string   `json:"userId"`
	Username     string   `json:"username"`
	RestaurantID string   `json:"restaurantId"`
	Email        string   `json:"email,omitempty"`
	Mobile       string   `json:"mobile,omitempty"`
	Branches     []Branch `json:"branches"`
}

// LoginResponse pairs the profile with the minted session token.
type LoginResponse struct {
	Account   Account   `json:"account"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LogoutRequest describes the device being deregistered.
type LogoutRequest struct {
	Platform  string `json:"platform,omitempty"`
	PushToken string `json:"pushToken,omitempty"`
}

// PinRequest carries a single PIN.
type PinRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// ChangePinRequest carries a PIN swap.
type ChangePinRequest struct {
	OldPin string `json:"oldPin" binding:"required"`
	NewPin string `json:"newPin" binding:"required"`
}

// PinResetRequest triggers a PIN reset via the registered mobile.
type PinResetRequest struct {
	Mobile string `json:"mobile" binding:"required"`
}

// ChangePasswordRequest updates the back-office password.
type ChangePasswordRequest struct {
	Email           string `json:"email" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// AddBranchRequest links a new branch login under the parent restaurant.
type AddBranchRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials maps the login payload into domain credentials.
func ToCredentials(req LoginRequest) domain.Credentials {
	return domain.Credentials{
		Username:  req.Username,
		Password:  req.Password,
		Platform:  req.Platform,
		PushToken: req.PushToken,
	}
}

// FromLoginResult maps the use-case result into the HTTP response.
func FromLoginResult(result *ports.LoginResult) LoginResponse {
	if result == nil {
		return LoginResponse{Account: Account{Branches: []Branch{}}}
	}
	return LoginResponse{
		Account:   fromAccount(result.Account),
		Token:     result.Session.Token,
		ExpiresAt: result.Session.ExpiresAt,
	}
}

func fromAccount(account *domain.Account) Account {
	if account == nil {
		return Account{Branches: []Branch{}}
	}
	branches := make([]Branch, 0, len(account.Branches))
	for _, b := range account.Branches {
		branches = append(branches, Branch{
			RestaurantID: b.RestaurantID,
			Name:         b.Name,
			Postcode:     b.Postcode,
		})
	}
	return Account{
		UserID:       account.UserID,
		Username:     account.Username,
		RestaurantID: account.RestaurantID,
		Email:        account.Email,
		Mobile:       account.Mobile,
		Branches:     branches,
	}
}
