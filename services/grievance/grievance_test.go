package grievance

import (
	"context"
	"sort"
	"testing"

	"pressroom/models"
	"pressroom/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGrievanceRepo struct {
	grievances map[string]*models.Grievance
}

func newFakeGrievanceRepo() *fakeGrievanceRepo {
	return &fakeGrievanceRepo{grievances: make(map[string]*models.Grievance)}
}

func (r *fakeGrievanceRepo) Create(ctx context.Context, g *models.Grievance) error {
	copied := *g
	r.grievances[g.ID] = &copied
	return nil
}

func (r *fakeGrievanceRepo) GetByID(ctx context.Context, id string) (*models.Grievance, error) {
	g, ok := r.grievances[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	copied.AdminNotes = append([]models.AdminNote(nil), g.AdminNotes...)
	return &copied, nil
}

func (r *fakeGrievanceRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error {
	g := r.grievances[id]
	for field, value := range updateDoc {
		switch field {
		case "status":
			g.Status = value.(string)
		case "resolution":
			g.Resolution = value.(string)
		}
	}
	return nil
}

func (r *fakeGrievanceRepo) AppendNote(ctx context.Context, id string, note models.AdminNote) error {
	g := r.grievances[id]
	g.AdminNotes = append(g.AdminNotes, note)
	return nil
}

func (r *fakeGrievanceRepo) ListByStatus(ctx context.Context, status string) ([]models.Grievance, error) {
	var out []models.Grievance
	for _, g := range r.grievances {
		if status == "" || g.Status == status {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (r *fakeGrievanceRepo) ListByReporter(ctx context.Context, accountID string) ([]models.Grievance, error) {
	var out []models.Grievance
	for _, g := range r.grievances {
		if g.ReportedBy == accountID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func reporter(id string) *models.Account {
	return &models.Account{ID: id, Role: models.RoleReader}
}

func manager(id string) *models.Account {
	return &models.Account{ID: id, Role: models.RoleAdmin}
}

func hateSpeechInput() GrievanceInput {
	return GrievanceInput{
		Type:        models.GrievanceHateSpeech,
		Subject:     "Slur-filled comment thread",
		Description: "The comments under article X contain targeted slurs.",
	}
}

func TestPriorityDerivedFromType(t *testing.T) {
	cases := map[string]string{
		models.GrievanceHateSpeech:       models.PriorityHigh,
		models.GrievanceDefamation:       models.PriorityHigh,
		models.GrievancePrivacy:          models.PriorityHigh,
		models.GrievanceFakeNews:         models.PriorityMedium,
		models.GrievanceMisinformation:   models.PriorityMedium,
		models.GrievanceCopyright:        models.PriorityMedium,
		models.GrievanceSpam:             models.PriorityLow,
		models.GrievanceOffensiveContent: models.PriorityLow,
		models.GrievanceOther:            models.PriorityLow,
	}
	for grievanceType, want := range cases {
		assert.Equal(t, want, models.GrievancePriorityFor(grievanceType), "type %s", grievanceType)
	}
}

func TestSubmitAcknowledgesSynchronously(t *testing.T) {
	svc := &DefaultGrievanceService{Repo: newFakeGrievanceRepo()}

	filed, err := svc.Submit(context.Background(), reporter("r1"), hateSpeechInput())
	require.NoError(t, err)

	assert.Equal(t, models.GrievanceAcknowledged, filed.Status)
	assert.Equal(t, models.PriorityHigh, filed.Priority)
	require.NotNil(t, filed.AcknowledgedAt)
	require.Len(t, filed.AdminNotes, 1)
	assert.Equal(t, "system", filed.AdminNotes[0].AddedBy)
}

func TestSubmitValidatesTypeAndFields(t *testing.T) {
	svc := &DefaultGrievanceService{Repo: newFakeGrievanceRepo()}

	_, err := svc.Submit(context.Background(), reporter("r1"), GrievanceInput{Type: "vibes"})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Reasons, 3, "type, subject and description guards should all be cited")
}

func TestTransitionFollowsWorkflow(t *testing.T) {
	repo := newFakeGrievanceRepo()
	svc := &DefaultGrievanceService{Repo: repo}
	adm := manager("adm")

	filed, err := svc.Submit(context.Background(), reporter("r1"), hateSpeechInput())
	require.NoError(t, err)

	g, err := svc.Transition(context.Background(), adm, filed.ID, models.GrievanceInReview, "", "")
	require.NoError(t, err)
	assert.Equal(t, models.GrievanceInReview, g.Status)

	g, err = svc.Transition(context.Background(), adm, filed.ID, models.GrievanceInvestigating, "pulling comment logs", "")
	require.NoError(t, err)
	assert.Equal(t, models.GrievanceInvestigating, g.Status)

	g, err = svc.Transition(context.Background(), adm, filed.ID, models.GrievanceResolved, "", "Comments removed, author warned.")
	require.NoError(t, err)
	assert.Equal(t, models.GrievanceResolved, g.Status)
	assert.Equal(t, "Comments removed, author warned.", g.Resolution)
	require.NotNil(t, g.ResolvedAt)
}

func TestIllegalTransitionConflicts(t *testing.T) {
	svc := &DefaultGrievanceService{Repo: newFakeGrievanceRepo()}
	adm := manager("adm")

	filed, err := svc.Submit(context.Background(), reporter("r1"), hateSpeechInput())
	require.NoError(t, err)

	// Acknowledged cannot jump straight to investigating.
	_, err = svc.Transition(context.Background(), adm, filed.ID, models.GrievanceInvestigating, "", "")
	var cerr *utils.ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestResolvedIsTerminal(t *testing.T) {
	svc := &DefaultGrievanceService{Repo: newFakeGrievanceRepo()}
	adm := manager("adm")

	filed, err := svc.Submit(context.Background(), reporter("r1"), hateSpeechInput())
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), adm, filed.ID, models.GrievanceInReview, "", "")
	require.NoError(t, err)
	_, err = svc.Transition(context.Background(), adm, filed.ID, models.GrievanceResolved, "", "done")
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), adm, filed.ID, models.GrievanceInReview, "", "")
	var cerr *utils.ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestResolutionRequiredToResolve(t *testing.T) {
	svc := &DefaultGrievanceService{Repo: newFakeGrievanceRepo()}
	adm := manager("adm")

	filed, err := svc.Submit(context.Background(), reporter("r1"), hateSpeechInput())
	require.NoError(t, err)
	_, err = svc.Transition(context.Background(), adm, filed.ID, models.GrievanceInReview, "", "")
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), adm, filed.ID, models.GrievanceResolved, "", "  ")
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestEscalatedCanComeBack(t *testing.T) {
	svc := &DefaultGrievanceService{Repo: newFakeGrievanceRepo()}
	adm := manager("adm")

	filed, err := svc.Submit(context.Background(), reporter("r1"), hateSpeechInput())
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), adm, filed.ID, models.GrievanceEscalated, "", "")
	require.NoError(t, err)

	g, err := svc.Transition(context.Background(), adm, filed.ID, models.GrievanceInvestigating, "", "")
	require.NoError(t, err)
	assert.Equal(t, models.GrievanceInvestigating, g.Status)
}

func TestTransitionNotesAreAudited(t *testing.T) {
	svc := &DefaultGrievanceService{Repo: newFakeGrievanceRepo()}
	adm := manager("adm")

	filed, err := svc.Submit(context.Background(), reporter("r1"), hateSpeechInput())
	require.NoError(t, err)

	g, err := svc.Transition(context.Background(), adm, filed.ID, models.GrievanceInReview, "", "")
	require.NoError(t, err)
	require.Len(t, g.AdminNotes, 2)
	assert.Equal(t, "adm", g.AdminNotes[1].AddedBy)
	assert.Contains(t, g.AdminNotes[1].Note, "acknowledged")

	g, err = svc.AddNote(context.Background(), adm, filed.ID, "reporter emailed extra screenshots")
	require.NoError(t, err)
	require.Len(t, g.AdminNotes, 3)
}

func TestReporterSeesOwnGrievanceOnly(t *testing.T) {
	svc := &DefaultGrievanceService{Repo: newFakeGrievanceRepo()}

	filed, err := svc.Submit(context.Background(), reporter("r1"), hateSpeechInput())
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), reporter("r1"), filed.ID)
	require.NoError(t, err)
	assert.Equal(t, filed.ID, got.ID)

	_, err = svc.GetByID(context.Background(), reporter("r2"), filed.ID)
	var perr *utils.PermissionError
	require.ErrorAs(t, err, &perr)

	_, err = svc.GetByID(context.Background(), manager("adm"), filed.ID)
	require.NoError(t, err)
}

func TestQueueRequiresManagePermission(t *testing.T) {
	svc := &DefaultGrievanceService{Repo: newFakeGrievanceRepo()}

	_, err := svc.ListByStatus(context.Background(), reporter("r1"), "")
	var perr *utils.PermissionError
	require.ErrorAs(t, err, &perr)
}
