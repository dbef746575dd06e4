// File: services/grievance/grievance.go
package grievance

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

// allowedTransitions maps each grievance status to the statuses an admin
// may move it to. Resolved and rejected are terminal; escalated can still
// come back for investigation or be resolved.
var allowedTransitions = map[string][]string{
	models.GrievanceSubmitted:     {models.GrievanceAcknowledged},
	models.GrievanceAcknowledged:  {models.GrievanceInReview, models.GrievanceEscalated, models.GrievanceRejected},
	models.GrievanceInReview:      {models.GrievanceInvestigating, models.GrievanceResolved, models.GrievanceRejected, models.GrievanceEscalated},
	models.GrievanceInvestigating: {models.GrievanceResolved, models.GrievanceRejected, models.GrievanceEscalated},
	models.GrievanceEscalated:     {models.GrievanceInvestigating, models.GrievanceResolved, models.GrievanceRejected},
}

// Submit files a grievance and acknowledges it in the same call, so the
// reporter immediately sees that the complaint was received.
func (s *DefaultGrievanceService) Submit(ctx context.Context, reporter *models.Account, input GrievanceInput) (*models.Grievance, error) {
	if reporter == nil {
		return nil, &utils.PermissionError{Action: "submit grievance"}
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	g := &models.Grievance{
		ID:               uuid.NewString(),
		ReportedBy:       reporter.ID,
		Type:             input.Type,
		Subject:          strings.TrimSpace(input.Subject),
		Description:      input.Description,
		RelatedContentID: input.RelatedContentID,
		Evidence:         input.Evidence,
		Status:           models.GrievanceAcknowledged,
		Priority:         models.GrievancePriorityFor(input.Type),
		SubmittedAt:      now,
		AcknowledgedAt:   &now,
		AdminNotes: []models.AdminNote{{
			Note:    "Grievance received and acknowledged automatically.",
			AddedBy: "system",
			AddedAt: now,
		}},
	}

	if err := s.Repo.Create(ctx, g); err != nil {
		return nil, &utils.UpstreamError{Op: "grievance create", Err: err}
	}

	utils.GetLogger().Info("grievance submitted",
		zap.String("grievanceId", g.ID),
		zap.String("type", g.Type),
		zap.String("priority", g.Priority))
	return g, nil
}

// GetByID fetches one grievance. Reporters may read their own; anything
// else requires the grievance-manage permission.
func (s *DefaultGrievanceService) GetByID(ctx context.Context, actor *models.Account, id string) (*models.Grievance, error) {
	g, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor != nil && actor.ID == g.ReportedBy {
		return g, nil
	}
	if err := authz.Authorize(actor, authz.ActionManageGrievance); err != nil {
		return nil, err
	}
	return g, nil
}

// ListForReporter returns the grievances the actor filed, newest first.
func (s *DefaultGrievanceService) ListForReporter(ctx context.Context, reporter *models.Account) ([]models.Grievance, error) {
	if reporter == nil {
		return nil, &utils.PermissionError{Action: "list own grievances"}
	}
	grievances, err := s.Repo.ListByReporter(ctx, reporter.ID)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "grievance list", Err: err}
	}
	return grievances, nil
}

// ListByStatus returns the admin queue, newest first.
func (s *DefaultGrievanceService) ListByStatus(ctx context.Context, actor *models.Account, status string) ([]models.Grievance, error) {
	if err := authz.Authorize(actor, authz.ActionManageGrievance); err != nil {
		return nil, err
	}
	grievances, err := s.Repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "grievance list", Err: err}
	}
	return grievances, nil
}

// Transition moves a grievance along the workflow and records a note.
func (s *DefaultGrievanceService) Transition(ctx context.Context, actor *models.Account, id, nextStatus, note, resolution string) (*models.Grievance, error) {
	if err := authz.Authorize(actor, authz.ActionManageGrievance); err != nil {
		return nil, err
	}
	g, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(g.Status, nextStatus) {
		return nil, &utils.ConflictError{
			Message: fmt.Sprintf("grievance cannot move from %s to %s", g.Status, nextStatus),
		}
	}

	now := time.Now()
	update := map[string]any{"status": nextStatus}
	switch nextStatus {
	case models.GrievanceAcknowledged:
		update["acknowledgedAt"] = now
		g.AcknowledgedAt = &now
	case models.GrievanceResolved:
		if strings.TrimSpace(resolution) == "" {
			return nil, utils.NewValidationError("a resolution summary is required to resolve a grievance")
		}
		update["resolvedAt"] = now
		update["resolution"] = resolution
		g.ResolvedAt = &now
		g.Resolution = resolution
	case models.GrievanceRejected:
		update["resolvedAt"] = now
		g.ResolvedAt = &now
	}

	if err := s.Repo.UpdateSetDocument(ctx, id, update); err != nil {
		return nil, &utils.UpstreamError{Op: "grievance update", Err: err}
	}

	if strings.TrimSpace(note) == "" {
		note = fmt.Sprintf("Status changed from %s to %s.", g.Status, nextStatus)
	}
	entry := models.AdminNote{Note: note, AddedBy: actor.ID, AddedAt: now}
	if err := s.Repo.AppendNote(ctx, id, entry); err != nil {
		return nil, &utils.UpstreamError{Op: "grievance note", Err: err}
	}

	g.Status = nextStatus
	g.AdminNotes = append(g.AdminNotes, entry)
	return g, nil
}

// AddNote appends an admin note without touching the status.
func (s *DefaultGrievanceService) AddNote(ctx context.Context, actor *models.Account, id, note string) (*models.Grievance, error) {
	if err := authz.Authorize(actor, authz.ActionManageGrievance); err != nil {
		return nil, err
	}
	if strings.TrimSpace(note) == "" {
		return nil, utils.NewValidationError("note text is required")
	}
	g, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := models.AdminNote{Note: note, AddedBy: actor.ID, AddedAt: time.Now()}
	if err := s.Repo.AppendNote(ctx, id, entry); err != nil {
		return nil, &utils.UpstreamError{Op: "grievance note", Err: err}
	}
	g.AdminNotes = append(g.AdminNotes, entry)
	return g, nil
}

func (s *DefaultGrievanceService) mustGet(ctx context.Context, id string) (*models.Grievance, error) {
	g, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "grievance fetch", Err: err}
	}
	if g == nil {
		return nil, &utils.NotFoundError{Resource: "grievance", ID: id}
	}
	return g, nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func validateInput(input GrievanceInput) error {
	var reasons []string

	if !models.ValidGrievanceType(input.Type) {
		reasons = append(reasons, fmt.Sprintf("unknown grievance type %q", input.Type))
	}
	if strings.TrimSpace(input.Subject) == "" {
		reasons = append(reasons, "subject is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		reasons = append(reasons, "description is required")
	}

	if len(reasons) > 0 {
		return &utils.ValidationError{Reasons: reasons}
	}
	return nil
}
