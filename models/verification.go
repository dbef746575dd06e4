// models/verification.go
package models

import "time"

// VerificationDocument is one identity or credential document attached to
// a verification submission. Only the resulting storage URL is recorded;
// the upload itself goes through the storage service.
type VerificationDocument struct {
	Type             string     `bson:"type" json:"type"`
	DocumentNumber   string     `bson:"documentNumber" json:"documentNumber"`
	IssuingAuthority string     `bson:"issuingAuthority,omitempty" json:"issuingAuthority,omitempty"`
	ExpiryDate       *time.Time `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	FileURL          string     `bson:"fileUrl,omitempty" json:"fileUrl,omitempty"`
}

// VerificationSubmission is one outstanding or resolved verification
// attempt for an account. A resubmission after rejection supersedes the
// old record rather than overwriting it.
type VerificationSubmission struct {
	ID              string                 `bson:"id" json:"id"`
	AccountID       string                 `bson:"accountId" json:"accountId"`
	AccountType     string                 `bson:"accountType" json:"accountType"`
	Documents       []VerificationDocument `bson:"documents" json:"documents"`
	Status          string                 `bson:"status" json:"status"`
	SubmittedAt     time.Time              `bson:"submittedAt" json:"submittedAt"`
	ResolvedAt      *time.Time             `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	ResolvedBy      string                 `bson:"resolvedBy,omitempty" json:"resolvedBy,omitempty"`
	RejectionReason string                 `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
}

// MinimumDocumentsFor returns how many documents an account tier must
// attach before a verification submission is accepted.
func MinimumDocumentsFor(accountType string) int {
	switch accountType {
	case RoleJournalist, RoleOrganization:
		return 2
	case RoleCreator:
		return 1
	default:
		return 0
	}
}

// VerificationStatusView is the read-model returned to clients asking
// where their verification stands.
type VerificationStatusView struct {
	Status          string     `json:"status"`
	SubmittedAt     *time.Time `json:"submittedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}
