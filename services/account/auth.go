// File: services/account/auth.go
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pressroom/models"
	"pressroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 72 * time.Hour

// Register creates a new account at the reader tier and signs it in.
func (s *DefaultAccountService) Register(ctx context.Context, input RegistrationInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := validateRegistration(email, input.DisplayName, input.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "account fetch", Err: err}
	}
	if existing != nil {
		return nil, &utils.ConflictError{Message: "an account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := &models.Account{
		ID:                 uuid.NewString(),
		Email:              email,
		DisplayName:        strings.TrimSpace(input.DisplayName),
		PasswordHash:       string(hash),
		Role:               models.RoleReader,
		Verified:           false,
		VerificationStatus: models.VerificationNone,
	}
	if err := s.Repo.Create(ctx, acct); err != nil {
		return nil, &utils.UpstreamError{Op: "account create", Err: err}
	}

	logger.Info("account registered", zap.String("accountId", acct.ID))
	return s.issueSession(ctx, acct)
}

// Authenticate verifies credentials and issues a session token.
func (s *DefaultAccountService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	acct, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, &utils.UpstreamError{Op: "account fetch", Err: err}
	}
	if acct == nil {
		return nil, &utils.PermissionError{Action: "sign in: invalid credentials"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, &utils.PermissionError{Action: "sign in: invalid credentials"}
	}
	return s.issueSession(ctx, acct)
}

// ResolveToken maps a valid, unrevoked session token back to its account.
func (s *DefaultAccountService) ResolveToken(ctx context.Context, token string) (*models.Account, error) {
	accountID, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return nil, &utils.PermissionError{Action: "invalid session token"}
	}

	cached, err := utils.GetAuthCacheClient().Get(ctx, utils.AuthCachePrefix+accountID).Result()
	if err != nil || cached != utils.HashToken(token) {
		return nil, &utils.PermissionError{Action: "session expired or revoked"}
	}

	acct, err := s.Repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "account fetch", Err: err}
	}
	if acct == nil {
		return nil, &utils.NotFoundError{Resource: "account", ID: accountID}
	}
	return acct, nil
}

// RevokeToken ends the account's session.
func (s *DefaultAccountService) RevokeToken(ctx context.Context, accountID string) error {
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+accountID).Err(); err != nil {
		return &utils.UpstreamError{Op: "session revoke", Err: err}
	}
	return nil
}

func (s *DefaultAccountService) issueSession(ctx context.Context, acct *models.Account) (*AuthResponse, error) {
	token, err := utils.GenerateToken(acct.ID, acct.Email, sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	err = utils.GetAuthCacheClient().Set(ctx, utils.AuthCachePrefix+acct.ID, utils.HashToken(token), sessionTTL).Err()
	if err != nil {
		return nil, &utils.UpstreamError{Op: "session store", Err: err}
	}

	return &AuthResponse{
		ID:          acct.ID,
		Token:       token,
		Email:       acct.Email,
		DisplayName: acct.DisplayName,
		Role:        acct.Role,
		Verified:    acct.Verified,
	}, nil
}

func validateRegistration(email, displayName, password string) error {
	var reasons []string

	if email == "" || !strings.Contains(email, "@") {
		reasons = append(reasons, "a valid email is required")
	}
	if strings.TrimSpace(displayName) == "" {
		reasons = append(reasons, "a display name is required")
	}
	if len(password) < 8 {
		reasons = append(reasons, "password must be at least 8 characters")
	}

	if len(reasons) > 0 {
		return &utils.ValidationError{Reasons: reasons}
	}
	return nil
}
