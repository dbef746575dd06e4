// models/account.go
package models

import "time"

// Roles, lowest tier first. Creator, journalist and organization are the
// publishing tiers; editor and above hold moderation powers.
const (
	RoleReader       = "reader"
	RoleCreator      = "creator"
	RoleJournalist   = "journalist"
	RoleOrganization = "organization"
	RoleEditor       = "editor"
	RoleAdmin        = "admin"
	RoleSuperAdmin   = "super_admin"
)

// Verification statuses for an account.
const (
	VerificationNone     = "none"
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Account represents a registered identity.
type Account struct {
	ID           string `bson:"id" json:"id"`
	Email        string `bson:"email" json:"email"`
	DisplayName  string `bson:"displayName" json:"displayName"`
	PasswordHash string `bson:"passwordHash,omitempty" json:"-"`
	// FirebaseUID links the account to the managed-auth identity when
	// sign-in is delegated to Firebase.
	FirebaseUID string `bson:"firebaseUid,omitempty" json:"-"`
	Role        string `bson:"role" json:"role"`
	// Verified mirrors VerificationStatus == verified; both are flipped
	// together by the verification workflow, never independently.
	Verified           bool      `bson:"verified" json:"verified"`
	VerificationStatus string    `bson:"verificationStatus" json:"verificationStatus"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleReader, RoleCreator, RoleJournalist, RoleOrganization,
		RoleEditor, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
