// models/comment.go
package models

import "time"

// Comment is a reply attached to a published article. Comments are never
// edited in place; the only mutations are create and owner delete.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	ArticleID string    `bson:"articleId" json:"articleId"`
	UserID    string    `bson:"userId" json:"userId"`
	UserName  string    `bson:"userName" json:"userName"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
