// File: services/verification/verification.go
package verification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pressroom/models"
	"pressroom/services/authz"
	"pressroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitVerification validates and persists a verification attempt. A new
// submission supersedes any prior rejected one; the old record stays for
// the audit trail.
func (s *DefaultVerificationService) SubmitVerification(ctx context.Context, accountID, accountType string, documents []models.VerificationDocument) (*models.VerificationSubmission, error) {
	logger := utils.GetLogger()

	account, err := s.Accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "account fetch", Err: err}
	}
	if account == nil {
		return nil, &utils.NotFoundError{Resource: "account", ID: accountID}
	}

	if err := validateDocuments(accountType, documents); err != nil {
		return nil, err
	}

	prior, err := s.Repo.GetLatestByAccount(ctx, accountID)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "verification fetch", Err: err}
	}
	if prior != nil && prior.Status == models.VerificationPending {
		return nil, &utils.ConflictError{Message: "a verification submission is already pending review"}
	}
	if account.Verified {
		return nil, &utils.ConflictError{Message: "account is already verified"}
	}

	submission := &models.VerificationSubmission{
		ID:          uuid.NewString(),
		AccountID:   accountID,
		AccountType: accountType,
		Documents:   documents,
		Status:      models.VerificationPending,
		SubmittedAt: time.Now(),
	}

	if s.AutoApprove {
		now := time.Now()
		submission.Status = models.VerificationVerified
		submission.ResolvedAt = &now
	}

	if err := s.Repo.Create(ctx, submission); err != nil {
		return nil, &utils.UpstreamError{Op: "verification create", Err: err}
	}

	status := models.VerificationPending
	verified := false
	if s.AutoApprove {
		status = models.VerificationVerified
		verified = true
	}
	if err := s.Accounts.SetVerification(ctx, accountID, verified, status); err != nil {
		return nil, &utils.UpstreamError{Op: "account verification update", Err: err}
	}

	logger.Info("verification submitted",
		zap.String("accountId", accountID),
		zap.String("accountType", accountType),
		zap.Bool("autoApproved", s.AutoApprove))
	return submission, nil
}

// GetVerificationStatus is a pure read; "none" when no submission exists.
func (s *DefaultVerificationService) GetVerificationStatus(ctx context.Context, accountID string) (*models.VerificationStatusView, error) {
	submission, err := s.Repo.GetLatestByAccount(ctx, accountID)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "verification fetch", Err: err}
	}
	if submission == nil {
		return &models.VerificationStatusView{Status: models.VerificationNone}, nil
	}
	submittedAt := submission.SubmittedAt
	return &models.VerificationStatusView{
		Status:          submission.Status,
		SubmittedAt:     &submittedAt,
		RejectionReason: submission.RejectionReason,
	}, nil
}

// ListPending returns the review queue, oldest first.
func (s *DefaultVerificationService) ListPending(ctx context.Context, actor *models.Account) ([]models.VerificationSubmission, error) {
	if err := authz.Authorize(actor, authz.ActionReviewVerification); err != nil {
		return nil, err
	}
	submissions, err := s.Repo.ListByStatus(ctx, models.VerificationPending)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "verification list", Err: err}
	}
	return submissions, nil
}

// ReviewVerification resolves a pending submission and flips the account
// flags accordingly.
func (s *DefaultVerificationService) ReviewVerification(ctx context.Context, actor *models.Account, submissionID string, approve bool, reason string) (*models.VerificationSubmission, error) {
	if err := authz.Authorize(actor, authz.ActionReviewVerification); err != nil {
		return nil, err
	}
	if !approve && strings.TrimSpace(reason) == "" {
		return nil, utils.NewValidationError("a rejection reason is required")
	}

	submission, err := s.Repo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "verification fetch", Err: err}
	}
	if submission == nil {
		return nil, &utils.NotFoundError{Resource: "verification submission", ID: submissionID}
	}
	if submission.Status != models.VerificationPending {
		return nil, &utils.ConflictError{Message: fmt.Sprintf("submission is already %s", submission.Status)}
	}

	now := time.Now()
	status := models.VerificationRejected
	verified := false
	if approve {
		status = models.VerificationVerified
		verified = true
	}

	update := map[string]any{
		"status":     status,
		"resolvedAt": now,
		"resolvedBy": actor.ID,
	}
	if !approve {
		update["rejectionReason"] = reason
	}
	if err := s.Repo.UpdateSetDocument(ctx, submissionID, update); err != nil {
		return nil, &utils.UpstreamError{Op: "verification update", Err: err}
	}
	if err := s.Accounts.SetVerification(ctx, submission.AccountID, verified, status); err != nil {
		return nil, &utils.UpstreamError{Op: "account verification update", Err: err}
	}

	submission.Status = status
	submission.ResolvedAt = &now
	submission.ResolvedBy = actor.ID
	if !approve {
		submission.RejectionReason = reason
	}
	return submission, nil
}

// validateDocuments checks the tier minimum and the required fields of
// every document, collecting all failures at once.
func validateDocuments(accountType string, documents []models.VerificationDocument) error {
	var reasons []string

	minimum := models.MinimumDocumentsFor(accountType)
	if len(documents) < minimum {
		reasons = append(reasons, fmt.Sprintf("%s accounts must attach at least %d document(s), got %d", accountType, minimum, len(documents)))
	}
	for i, doc := range documents {
		if strings.TrimSpace(doc.Type) == "" {
			reasons = append(reasons, fmt.Sprintf("document %d is missing its type", i+1))
		}
		if strings.TrimSpace(doc.DocumentNumber) == "" {
			reasons = append(reasons, fmt.Sprintf("document %d is missing its document number", i+1))
		}
	}

	if len(reasons) > 0 {
		return &utils.ValidationError{Reasons: reasons}
	}
	return nil
}
