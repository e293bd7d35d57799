package entities

import (
	"strings"
	"time"
)

// Follow is a directed edge from one user to another, keyed by usernames.
type Follow struct {
	FollowID  string
	User      string
	Following string
	CreatedAt time.Time
}

func (f Follow) SelfEdge() bool {
	return f.User != "" && f.User == f.Following
}

func (f Follow) Valid() bool {
	return strings.TrimSpace(f.User) != "" && strings.TrimSpace(f.Following) != ""
}
