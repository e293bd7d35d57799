package entities

import (
	"strings"
	"time"
)

type Comment struct {
	CommentID string
	PostID    string
	Author    string
	Text      string
	Created   time.Time
}

func (c Comment) OwnedBy(username string) bool {
	return c.Author != "" && c.Author == strings.TrimSpace(username)
}

// BelongsTo reports whether the comment lives under the given parent post.
func (c Comment) BelongsTo(postID string) bool {
	return c.PostID == strings.TrimSpace(postID)
}

func (c Comment) Valid() bool {
	return strings.TrimSpace(c.Text) != ""
}
