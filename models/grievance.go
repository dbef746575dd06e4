// models/grievance.go
package models

import "time"

// Grievance types.
const (
	GrievanceFakeNews         = "fake_news"
	GrievanceDefamation       = "defamation"
	GrievanceMisinformation   = "misinformation"
	GrievanceHateSpeech       = "hate_speech"
	GrievanceCopyright        = "copyright_violation"
	GrievancePrivacy          = "privacy_violation"
	GrievanceOffensiveContent = "offensive_content"
	GrievanceSpam             = "spam"
	GrievanceOther            = "other"
)

// Grievance statuses.
const (
	GrievanceSubmitted     = "submitted"
	GrievanceAcknowledged  = "acknowledged"
	GrievanceInReview      = "in_review"
	GrievanceInvestigating = "investigating"
	GrievanceResolved      = "resolved"
	GrievanceRejected      = "rejected"
	GrievanceEscalated     = "escalated"
)

// Grievance priorities.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Evidence is a supporting item attached to a grievance.
type Evidence struct {
	Type        string `bson:"type" json:"type"`
	URL         string `bson:"url" json:"url"`
	Description string `bson:"description" json:"description"`
}

// AdminNote is an audit-trail entry on a grievance.
type AdminNote struct {
	Note    string    `bson:"note" json:"note"`
	AddedBy string    `bson:"addedBy" json:"addedBy"`
	AddedAt time.Time `bson:"addedAt" json:"addedAt"`
}

// Grievance is a user-filed complaint, optionally linked to an article.
type Grievance struct {
	ID               string     `bson:"id" json:"id"`
	ReportedBy       string     `bson:"reportedBy" json:"reportedBy"`
	Type             string     `bson:"type" json:"type"`
	Subject          string     `bson:"subject" json:"subject"`
	Description      string     `bson:"description" json:"description"`
	RelatedContentID string     `bson:"relatedContentId,omitempty" json:"relatedContentId,omitempty"`
	Evidence         []Evidence `bson:"evidence" json:"evidence"`
	Status           string     `bson:"status" json:"status"`
	// Priority is derived from Type at submission and never set directly.
	Priority       string      `bson:"priority" json:"priority"`
	SubmittedAt    time.Time   `bson:"submittedAt" json:"submittedAt"`
	AcknowledgedAt *time.Time  `bson:"acknowledgedAt,omitempty" json:"acknowledgedAt,omitempty"`
	ResolvedAt     *time.Time  `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	AdminNotes     []AdminNote `bson:"adminNotes" json:"adminNotes"`
	Resolution     string      `bson:"resolution,omitempty" json:"resolution,omitempty"`
}

// GrievancePriorityFor derives the handling priority from the grievance
// type. Pure function; grievances never carry a hand-set priority.
func GrievancePriorityFor(grievanceType string) string {
	switch grievanceType {
	case GrievanceHateSpeech, GrievanceDefamation, GrievancePrivacy:
		return PriorityHigh
	case GrievanceFakeNews, GrievanceMisinformation, GrievanceCopyright:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// ValidGrievanceType reports whether t is a known grievance type.
func ValidGrievanceType(t string) bool {
	switch t {
	case GrievanceFakeNews, GrievanceDefamation, GrievanceMisinformation,
		GrievanceHateSpeech, GrievanceCopyright, GrievancePrivacy,
		GrievanceOffensiveContent, GrievanceSpam, GrievanceOther:
		return true
	}
	return false
}
