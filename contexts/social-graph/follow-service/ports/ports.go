package ports

import (
	"context"
	"time"

	"github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// UserDirectory answers username existence against the external identity
// collaborator. This service never creates users.
type UserDirectory interface {
	UserExists(ctx context.Context, username string) (bool, error)
}

type FollowRepository interface {
	// CreateFollow must reject a duplicate (user, following) pair with
	// ErrAlreadyFollowing; the store's uniqueness constraint is the
	// authoritative guard under concurrent requests.
	CreateFollow(ctx context.Context, follow entities.Follow) error
	// ListByUser returns only the requester's own edges, optionally narrowed
	// by a case-insensitive substring match on the followee username.
	ListByUser(ctx context.Context, user string, search string) ([]entities.Follow, error)
	EdgeExists(ctx context.Context, user string, following string) (bool, error)
}
