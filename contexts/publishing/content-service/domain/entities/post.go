package entities

import (
	"strings"
	"time"
)

type Post struct {
	PostID  string
	Author  string
	Text    string
	PubDate time.Time
	Image   string
	GroupID string
}

// OwnedBy is the author-only mutation policy. Reads are never gated by it.
func (p Post) OwnedBy(username string) bool {
	return p.Author != "" && p.Author == strings.TrimSpace(username)
}

func (p Post) Valid() bool {
	return strings.TrimSpace(p.Text) != ""
}
