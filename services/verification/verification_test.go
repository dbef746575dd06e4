package verification

import (
	"context"
	"sort"
	"testing"
	"time"

	"pressroom/models"
	"pressroom/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerificationRepo struct {
	submissions map[string]*models.VerificationSubmission
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{submissions: make(map[string]*models.VerificationSubmission)}
}

func (r *fakeVerificationRepo) Create(ctx context.Context, submission *models.VerificationSubmission) error {
	copied := *submission
	r.submissions[submission.ID] = &copied
	return nil
}

func (r *fakeVerificationRepo) GetByID(ctx context.Context, id string) (*models.VerificationSubmission, error) {
	s, ok := r.submissions[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeVerificationRepo) GetLatestByAccount(ctx context.Context, accountID string) (*models.VerificationSubmission, error) {
	var latest *models.VerificationSubmission
	for _, s := range r.submissions {
		if s.AccountID != accountID {
			continue
		}
		if latest == nil || s.SubmittedAt.After(latest.SubmittedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeVerificationRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error {
	s := r.submissions[id]
	for field, value := range updateDoc {
		switch field {
		case "status":
			s.Status = value.(string)
		case "rejectionReason":
			s.RejectionReason = value.(string)
		case "resolvedBy":
			s.ResolvedBy = value.(string)
		case "resolvedAt":
			t := value.(time.Time)
			s.ResolvedAt = &t
		}
	}
	return nil
}

func (r *fakeVerificationRepo) ListByStatus(ctx context.Context, status string) ([]models.VerificationSubmission, error) {
	var out []models.VerificationSubmission
	for _, s := range r.submissions {
		if s.Status == status {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}

// fakeAccountStore covers only the calls the verification flow makes.
type fakeAccountStore struct {
	accounts map[string]*models.Account
}

func newFakeAccountStore(accounts ...*models.Account) *fakeAccountStore {
	store := &fakeAccountStore{accounts: make(map[string]*models.Account)}
	for _, a := range accounts {
		store.accounts[a.ID] = a
	}
	return store
}

func (s *fakeAccountStore) GetByID(ctx context.Context, id string) (*models.Account, error) {
	a, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (s *fakeAccountStore) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return nil, nil
}

func (s *fakeAccountStore) GetByFirebaseUID(ctx context.Context, uid string) (*models.Account, error) {
	return nil, nil
}

func (s *fakeAccountStore) GetAll(ctx context.Context) ([]models.Account, error) { return nil, nil }

func (s *fakeAccountStore) Create(ctx context.Context, account *models.Account) error { return nil }

func (s *fakeAccountStore) UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error {
	return nil
}

func (s *fakeAccountStore) SetVerification(ctx context.Context, id string, verified bool, status string) error {
	a, ok := s.accounts[id]
	if !ok {
		return nil
	}
	a.Verified = verified
	a.VerificationStatus = status
	return nil
}

func (s *fakeAccountStore) Delete(ctx context.Context, id string) error { return nil }

func pressCard() models.VerificationDocument {
	return models.VerificationDocument{Type: "press_card", DocumentNumber: "PC-1042"}
}

func nationalID() models.VerificationDocument {
	return models.VerificationDocument{Type: "national_id", DocumentNumber: "ID-77"}
}

func admin(id string) *models.Account {
	return &models.Account{ID: id, Role: models.RoleAdmin}
}

func TestCreatorNeedsOneDocument(t *testing.T) {
	acct := &models.Account{ID: "c1", Role: models.RoleCreator}
	svc := &DefaultVerificationService{
		Repo:        newFakeVerificationRepo(),
		Accounts:    newFakeAccountStore(acct),
		AutoApprove: true,
	}

	_, err := svc.SubmitVerification(context.Background(), "c1", models.RoleCreator, nil)
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)

	submission, err := svc.SubmitVerification(context.Background(), "c1", models.RoleCreator,
		[]models.VerificationDocument{nationalID()})
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, submission.Status)
}

func TestJournalistNeedsTwoDocuments(t *testing.T) {
	acct := &models.Account{ID: "j1", Role: models.RoleJournalist}
	svc := &DefaultVerificationService{
		Repo:        newFakeVerificationRepo(),
		Accounts:    newFakeAccountStore(acct),
		AutoApprove: true,
	}

	_, err := svc.SubmitVerification(context.Background(), "j1", models.RoleJournalist,
		[]models.VerificationDocument{pressCard()})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reasons[0], "at least 2 document(s)")

	_, err = svc.SubmitVerification(context.Background(), "j1", models.RoleJournalist,
		[]models.VerificationDocument{pressCard(), nationalID()})
	require.NoError(t, err)
}

func TestDocumentFieldGuardsAreCollected(t *testing.T) {
	acct := &models.Account{ID: "j1", Role: models.RoleJournalist}
	svc := &DefaultVerificationService{
		Repo:     newFakeVerificationRepo(),
		Accounts: newFakeAccountStore(acct),
	}

	_, err := svc.SubmitVerification(context.Background(), "j1", models.RoleJournalist,
		[]models.VerificationDocument{{Type: "press_card"}, {DocumentNumber: "ID-7"}})
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reasons, "document 1 is missing its document number")
	assert.Contains(t, verr.Reasons, "document 2 is missing its type")
}

func TestAutoApproveVerifiesAccountImmediately(t *testing.T) {
	acct := &models.Account{ID: "c1", Role: models.RoleCreator}
	store := newFakeAccountStore(acct)
	svc := &DefaultVerificationService{
		Repo:        newFakeVerificationRepo(),
		Accounts:    store,
		AutoApprove: true,
	}

	submission, err := svc.SubmitVerification(context.Background(), "c1", models.RoleCreator,
		[]models.VerificationDocument{nationalID()})
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, submission.Status)
	require.NotNil(t, submission.ResolvedAt)

	assert.True(t, acct.Verified)
	assert.Equal(t, models.VerificationVerified, acct.VerificationStatus)
}

func TestManualPolicyQueuesForReview(t *testing.T) {
	acct := &models.Account{ID: "c1", Role: models.RoleCreator}
	store := newFakeAccountStore(acct)
	svc := &DefaultVerificationService{
		Repo:        newFakeVerificationRepo(),
		Accounts:    store,
		AutoApprove: false,
	}

	submission, err := svc.SubmitVerification(context.Background(), "c1", models.RoleCreator,
		[]models.VerificationDocument{nationalID()})
	require.NoError(t, err)
	assert.Equal(t, models.VerificationPending, submission.Status)
	assert.False(t, acct.Verified)
	assert.Equal(t, models.VerificationPending, acct.VerificationStatus)

	pending, err := svc.ListPending(context.Background(), admin("adm"))
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestSecondSubmissionWhilePendingConflicts(t *testing.T) {
	acct := &models.Account{ID: "c1", Role: models.RoleCreator}
	svc := &DefaultVerificationService{
		Repo:     newFakeVerificationRepo(),
		Accounts: newFakeAccountStore(acct),
	}

	_, err := svc.SubmitVerification(context.Background(), "c1", models.RoleCreator,
		[]models.VerificationDocument{nationalID()})
	require.NoError(t, err)

	_, err = svc.SubmitVerification(context.Background(), "c1", models.RoleCreator,
		[]models.VerificationDocument{nationalID()})
	var cerr *utils.ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestReviewApproveFlipsAccountFlags(t *testing.T) {
	acct := &models.Account{ID: "c1", Role: models.RoleCreator}
	store := newFakeAccountStore(acct)
	svc := &DefaultVerificationService{
		Repo:     newFakeVerificationRepo(),
		Accounts: store,
	}

	submission, err := svc.SubmitVerification(context.Background(), "c1", models.RoleCreator,
		[]models.VerificationDocument{nationalID()})
	require.NoError(t, err)

	reviewed, err := svc.ReviewVerification(context.Background(), admin("adm"), submission.ID, true, "")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, reviewed.Status)
	assert.Equal(t, "adm", reviewed.ResolvedBy)
	assert.True(t, acct.Verified)
}

func TestReviewRejectNeedsReason(t *testing.T) {
	acct := &models.Account{ID: "c1", Role: models.RoleCreator}
	svc := &DefaultVerificationService{
		Repo:     newFakeVerificationRepo(),
		Accounts: newFakeAccountStore(acct),
	}

	submission, err := svc.SubmitVerification(context.Background(), "c1", models.RoleCreator,
		[]models.VerificationDocument{nationalID()})
	require.NoError(t, err)

	_, err = svc.ReviewVerification(context.Background(), admin("adm"), submission.ID, false, " ")
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)

	rejected, err := svc.ReviewVerification(context.Background(), admin("adm"), submission.ID, false, "documents expired")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationRejected, rejected.Status)
	assert.Equal(t, "documents expired", rejected.RejectionReason)
}

func TestReviewTwiceConflicts(t *testing.T) {
	acct := &models.Account{ID: "c1", Role: models.RoleCreator}
	svc := &DefaultVerificationService{
		Repo:     newFakeVerificationRepo(),
		Accounts: newFakeAccountStore(acct),
	}

	submission, err := svc.SubmitVerification(context.Background(), "c1", models.RoleCreator,
		[]models.VerificationDocument{nationalID()})
	require.NoError(t, err)

	_, err = svc.ReviewVerification(context.Background(), admin("adm"), submission.ID, true, "")
	require.NoError(t, err)

	_, err = svc.ReviewVerification(context.Background(), admin("adm"), submission.ID, true, "")
	var cerr *utils.ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestReviewDeniedForEditors(t *testing.T) {
	svc := &DefaultVerificationService{
		Repo:     newFakeVerificationRepo(),
		Accounts: newFakeAccountStore(),
	}

	_, err := svc.ListPending(context.Background(), &models.Account{ID: "e1", Role: models.RoleEditor})
	var perr *utils.PermissionError
	require.ErrorAs(t, err, &perr)
}

func TestStatusIsNoneBeforeAnySubmission(t *testing.T) {
	svc := &DefaultVerificationService{
		Repo:     newFakeVerificationRepo(),
		Accounts: newFakeAccountStore(),
	}

	view, err := svc.GetVerificationStatus(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationNone, view.Status)
	assert.Nil(t, view.SubmittedAt)
}
