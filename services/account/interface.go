package account

import (
	"context"

	accountRepo "pressroom/database/repository/account"
	"pressroom/models"
)

// RegistrationInput carries the fields needed to create an account.
type RegistrationInput struct {
	Email       string `json:"email" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// AuthResponse contains the account's ID, token, and profile basics.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	Verified    bool   `json:"verified"`
}

// AccountService defines business logic for account operations.
type AccountService interface {
	// Register validates the registration details and creates a new
	// account at the lowest role tier.
	Register(ctx context.Context, input RegistrationInput) (*AuthResponse, error)
	// Authenticate verifies credentials and issues a session token.
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	// ResolveToken maps a valid session token back to its account.
	ResolveToken(ctx context.Context, token string) (*models.Account, error)
	// RevokeToken ends the account's session (logout).
	RevokeToken(ctx context.Context, accountID string) error

	// GetByID retrieves an account by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// UpdateProfile updates the account's own editable fields.
	UpdateProfile(ctx context.Context, actor *models.Account, displayName string) (*models.Account, error)

	// Admin operations.
	GetAll(ctx context.Context, actor *models.Account) ([]models.Account, error)
	SetRole(ctx context.Context, actor *models.Account, accountID, role string) (*models.Account, error)
	Delete(ctx context.Context, actor *models.Account, accountID string) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo accountRepo.AccountRepository
}
