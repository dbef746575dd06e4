package accountRepo

import (
	"context"

	"pressroom/models"
)

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	// GetByID retrieves an account by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// GetByEmail retrieves an account by its email address.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	// GetByFirebaseUID retrieves an account linked to a managed-auth identity.
	GetByFirebaseUID(ctx context.Context, uid string) (*models.Account, error)
	// GetAll retrieves all accounts.
	GetAll(ctx context.Context) ([]models.Account, error)
	// Create inserts a new account record.
	Create(ctx context.Context, account *models.Account) error
	// UpdateSetDocument applies a partial $set update to an account.
	UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error
	// SetVerification flips the verified flag and status together so the
	// two fields can never disagree in the store.
	SetVerification(ctx context.Context, id string, verified bool, status string) error
	// Delete removes an account record by its ID.
	Delete(ctx context.Context, id string) error
}
