package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/domain/errors"
	"github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/domain/entities"
)

// Store keeps follow edges in process memory with a seeded user directory.
// The pair map plays the role of the composite unique index.
type Store struct {
	mu sync.RWMutex

	users     map[string]struct{}
	edgesByID map[string]entities.Follow
	edgeOrder []string
	pairs     map[string]struct{}
}

func NewStore(seedUsers []string) *Store {
	users := make(map[string]struct{}, len(seedUsers))
	for _, name := range seedUsers {
		name = strings.TrimSpace(name)
		if name != "" {
			users[name] = struct{}{}
		}
	}
	return &Store{
		users:     users,
		edgesByID: make(map[string]entities.Follow),
		pairs:     make(map[string]struct{}),
	}
}

func (s *Store) UserExists(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.users[strings.TrimSpace(username)]
	return exists, nil
}

func (s *Store) CreateFollow(_ context.Context, follow entities.Follow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(follow.User, follow.Following)
	if _, exists := s.pairs[key]; exists {
		return domainerrors.ErrAlreadyFollowing
	}
	s.pairs[key] = struct{}{}
	s.edgesByID[follow.FollowID] = follow
	s.edgeOrder = append(s.edgeOrder, follow.FollowID)
	return nil
}

func (s *Store) ListByUser(_ context.Context, user string, search string) ([]entities.Follow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user = strings.TrimSpace(user)
	search = strings.ToLower(strings.TrimSpace(search))
	items := make([]entities.Follow, 0)
	for _, id := range s.edgeOrder {
		edge := s.edgesByID[id]
		if edge.User != user {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(edge.Following), search) {
			continue
		}
		items = append(items, edge)
	}
	return items, nil
}

func (s *Store) EdgeExists(_ context.Context, user string, following string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.pairs[pairKey(user, following)]
	return exists, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func pairKey(user string, following string) string {
	return strings.TrimSpace(user) + "\x00" + strings.TrimSpace(following)
}
