package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/domain/errors"
	"github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/domain/entities"
	"github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/ports"
)

type Service struct {
	Follows ports.FollowRepository
	Users   ports.UserDirectory
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

func (s Service) List(ctx context.Context, requester string, search string) ([]entities.Follow, error) {
	return s.Follows.ListByUser(ctx, strings.TrimSpace(requester), strings.TrimSpace(search))
}

// Create resolves the followee by username and inserts the edge. The
// existence pre-check is advisory; the repository's uniqueness constraint
// settles concurrent duplicates.
func (s Service) Create(ctx context.Context, requester string, followingUsername string) (entities.Follow, error) {
	follow := entities.Follow{
		User:      strings.TrimSpace(requester),
		Following: strings.TrimSpace(followingUsername),
		CreatedAt: s.now(),
	}
	if !follow.Valid() {
		return entities.Follow{}, domainerrors.ErrInvalidFollowInput
	}
	if follow.SelfEdge() {
		return entities.Follow{}, domainerrors.ErrSelfFollow
	}

	known, err := s.Users.UserExists(ctx, follow.Following)
	if err != nil {
		return entities.Follow{}, err
	}
	if !known {
		return entities.Follow{}, domainerrors.ErrUserNotFound
	}

	exists, err := s.Follows.EdgeExists(ctx, follow.User, follow.Following)
	if err != nil {
		return entities.Follow{}, err
	}
	if exists {
		return entities.Follow{}, domainerrors.ErrAlreadyFollowing
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Follow{}, err
	}
	follow.FollowID = id

	if err := s.Follows.CreateFollow(ctx, follow); err != nil {
		return entities.Follow{}, err
	}
	resolveLogger(s.Logger).Info("follow created",
		"event", "follow_created",
		"user", follow.User,
		"following", follow.Following,
	)
	return follow, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
