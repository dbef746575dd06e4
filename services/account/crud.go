// File: services/account/crud.go
package account

import (
	"context"
	"strings"

	"pressroom/models"
	"pressroom/utils"
)

// GetByID retrieves an account by its unique ID.
func (s *DefaultAccountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	acct, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "account fetch", Err: err}
	}
	if acct == nil {
		return nil, &utils.NotFoundError{Resource: "account", ID: id}
	}
	return acct, nil
}

// UpdateProfile updates the account's own editable fields.
func (s *DefaultAccountService) UpdateProfile(ctx context.Context, actor *models.Account, displayName string) (*models.Account, error) {
	if actor == nil {
		return nil, &utils.PermissionError{Action: "update profile"}
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, utils.NewValidationError("a display name is required")
	}

	if err := s.Repo.UpdateSetDocument(ctx, actor.ID, map[string]any{"displayName": displayName}); err != nil {
		return nil, &utils.UpstreamError{Op: "account update", Err: err}
	}
	return s.GetByID(ctx, actor.ID)
}
