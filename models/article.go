// models/article.go
package models

import "time"

// Article statuses.
const (
	StatusDraft         = "draft"
	StatusPendingReview = "pending_review"
	StatusPublished     = "published"
	StatusRejected      = "rejected"
	StatusFlagged       = "flagged"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

// Categories is the closed set of article categories. It mirrors the
// category vocabulary of the external headline source so user articles and
// external news merge into one feed without remapping.
var Categories = []string{
	"general", "politics", "business", "technology",
	"science", "health", "sports", "entertainment", "world",
}

// ValidCategory reports whether category is a member of the closed set.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Source is an attribution entry backing an article's claims.
type Source struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url" json:"url"`
	Type string `bson:"type" json:"type"`
}

// Article is a unit of publishable content authored by an account, or a
// normalized external headline (IsExternal set, never persisted).
type Article struct {
	ID            string   `bson:"id" json:"id"`
	AuthorID      string   `bson:"authorId" json:"authorId"`
	AuthorName    string   `bson:"authorName" json:"authorName"`
	Title         string   `bson:"title" json:"title"`
	Summary       string   `bson:"summary" json:"summary"`
	Content       string   `bson:"content" json:"content"`
	Category      string   `bson:"category" json:"category"`
	Tags          []string `bson:"tags" json:"tags"`
	FeaturedImage string   `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	Sources       []Source `bson:"sources" json:"sources"`
	Status        string   `bson:"status" json:"status"`

	// Engagement counters. Likes must equal len(LikedBy) at all times;
	// both are only ever changed through the atomic repository update.
	Views      int64    `bson:"views" json:"views"`
	Likes      int64    `bson:"likes" json:"likes"`
	LikedBy    []string `bson:"likedBy" json:"likedBy"`
	Reports    int64    `bson:"reports" json:"reports"`
	ReportedBy []string `bson:"reportedBy" json:"-"`

	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt" json:"updatedAt"`
	SubmittedAt     *time.Time `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
	PublishedAt     *time.Time `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	ReviewedAt      *time.Time `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	ReviewedBy      string     `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	RejectionReason string     `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	FlaggedAt       *time.Time `bson:"flaggedAt,omitempty" json:"flaggedAt,omitempty"`
	FlagReason      string     `bson:"flagReason,omitempty" json:"flagReason,omitempty"`

	// External marks a normalized headline from the news collaborator.
	// Such records live only in the merged feed, never in the store.
	External    bool   `bson:"-" json:"external,omitempty"`
	ExternalURL string `bson:"-" json:"externalUrl,omitempty"`
	SourceName  string `bson:"-" json:"sourceName,omitempty"`
}

// BestTimestamp returns the most meaningful timestamp for feed ordering:
// publishedAt, else createdAt, else updatedAt, else the zero epoch so
// records with no dates sort last instead of breaking the sort.
func (a *Article) BestTimestamp() time.Time {
	if a.PublishedAt != nil && !a.PublishedAt.IsZero() {
		return *a.PublishedAt
	}
	if !a.CreatedAt.IsZero() {
		return a.CreatedAt
	}
	if !a.UpdatedAt.IsZero() {
		return a.UpdatedAt
	}
	return time.Unix(0, 0).UTC()
}

// TrendingScore weights explicit likes three times over passive views.
func (a *Article) TrendingScore() int64 {
	return a.Likes*3 + a.Views
}
