// File: services/account/admin.go
package account

import (
	"context"
	"fmt"

	"pressroom/models"
	"pressroom/services/authz"
	"pressroom/utils"

	"go.uber.org/zap"
)

// GetAll retrieves all accounts. Admin only.
func (s *DefaultAccountService) GetAll(ctx context.Context, actor *models.Account) ([]models.Account, error) {
	if err := authz.Authorize(actor, authz.ActionListAccounts); err != nil {
		return nil, err
	}
	accounts, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "account list", Err: err}
	}
	return accounts, nil
}

// SetRole changes an account's role. Only the role-manage permission may
// do this; role is never self-service.
func (s *DefaultAccountService) SetRole(ctx context.Context, actor *models.Account, accountID, role string) (*models.Account, error) {
	if err := authz.Authorize(actor, authz.ActionManageRoles); err != nil {
		return nil, err
	}
	if !models.ValidRole(role) {
		return nil, utils.NewValidationError(fmt.Sprintf("unknown role %q", role))
	}
	if role == models.RoleSuperAdmin && actor.Role != models.RoleSuperAdmin {
		return nil, &utils.PermissionError{Action: "grant super_admin"}
	}

	if _, err := s.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSetDocument(ctx, accountID, map[string]any{"role": role}); err != nil {
		return nil, &utils.UpstreamError{Op: "account role update", Err: err}
	}

	utils.GetLogger().Info("account role changed",
		zap.String("accountId", accountID),
		zap.String("role", role),
		zap.String("changedBy", actor.ID))
	return s.GetByID(ctx, accountID)
}

// Delete removes an account. Normal users cannot delete accounts, their
// own included; this is an admin-only operation.
func (s *DefaultAccountService) Delete(ctx context.Context, actor *models.Account, accountID string) error {
	if err := authz.Authorize(actor, authz.ActionDeleteAccount); err != nil {
		return err
	}
	if _, err := s.GetByID(ctx, accountID); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, accountID); err != nil {
		return &utils.UpstreamError{Op: "account delete", Err: err}
	}
	return nil
}
