// models/legal.go
package models

// Audience categories for legal sections.
const (
	AudienceReader = "reader"
	AudienceAuthor = "author"
	AudienceAll    = "all"
)

// LegalSection is a versioned legal document served to clients.
type LegalSection struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Audience string `json:"audience"`
	Version  string `json:"version"`
	Updated  string `json:"updated"`
}
