// models/news.go
package models

import (
	"crypto/sha1"
	"encoding/hex"
	"time"
)

// RawNewsItem is the wire shape of one headline from the external news
// source. Optional fields may be absent or empty; normalization must not
// assume them.
type RawNewsItem struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// Normalize converts a raw headline into the internal article shape used
// by the merged feed. The ID is synthesized from title and timestamp so
// the same headline dedups across fetches.
func (r *RawNewsItem) Normalize(category string) Article {
	publishedAt, err := time.Parse(time.RFC3339, r.PublishedAt)
	if err != nil {
		publishedAt = time.Time{}
	}

	sum := sha1.Sum([]byte(r.Title + "|" + r.PublishedAt))
	id := "news-" + hex.EncodeToString(sum[:8])

	a := Article{
		ID:            id,
		Title:         r.Title,
		Summary:       r.Description,
		Content:       r.Content,
		Category:      category,
		FeaturedImage: r.URLToImage,
		Status:        StatusPublished,
		External:      true,
		ExternalURL:   r.URL,
		SourceName:    r.Source.Name,
		AuthorName:    r.Author,
	}
	if !publishedAt.IsZero() {
		a.PublishedAt = &publishedAt
		a.CreatedAt = publishedAt
	}
	if r.Source.Name != "" {
		a.Sources = []Source{{Name: r.Source.Name, URL: r.URL, Type: "news"}}
	}
	return a
}
