package application

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/domain/errors"
	"github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/domain/entities"
)

type fakeFollowRepo struct {
	edges []entities.Follow
}

func (r *fakeFollowRepo) CreateFollow(_ context.Context, follow entities.Follow) error {
	for _, edge := range r.edges {
		if edge.User == follow.User && edge.Following == follow.Following {
			return domainerrors.ErrAlreadyFollowing
		}
	}
	r.edges = append(r.edges, follow)
	return nil
}

func (r *fakeFollowRepo) ListByUser(_ context.Context, user string, search string) ([]entities.Follow, error) {
	var items []entities.Follow
	for _, edge := range r.edges {
		if edge.User == user {
			items = append(items, edge)
		}
	}
	return items, nil
}

func (r *fakeFollowRepo) EdgeExists(_ context.Context, user string, following string) (bool, error) {
	for _, edge := range r.edges {
		if edge.User == user && edge.Following == following {
			return true, nil
		}
	}
	return false, nil
}

type fakeDirectory struct {
	users map[string]struct{}
}

func (d fakeDirectory) UserExists(_ context.Context, username string) (bool, error) {
	_, ok := d.users[username]
	return ok, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type staticIDGen struct{}

func (staticIDGen) NewID(_ context.Context) (string, error) { return "edge-1", nil }

func newService(repo *fakeFollowRepo, users ...string) Service {
	directory := fakeDirectory{users: make(map[string]struct{}, len(users))}
	for _, name := range users {
		directory.users[name] = struct{}{}
	}
	return Service{
		Follows: repo,
		Users:   directory,
		Clock:   fixedClock{now: time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)},
		IDGen:   staticIDGen{},
	}
}

func TestCreateForcesFollowerToRequester(t *testing.T) {
	repo := &fakeFollowRepo{}
	service := newService(repo, "alice", "bob")

	edge, err := service.Create(context.Background(), "alice", "bob")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if edge.User != "alice" || edge.Following != "bob" {
		t.Fatalf("unexpected edge: %+v", edge)
	}
}

func TestCreateSelfFollowFails(t *testing.T) {
	service := newService(&fakeFollowRepo{}, "alice")

	_, err := service.Create(context.Background(), "alice", "alice")
	if !errors.Is(err, domainerrors.ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}
}

func TestCreateUnknownFolloweeFails(t *testing.T) {
	service := newService(&fakeFollowRepo{}, "alice")

	_, err := service.Create(context.Background(), "alice", "ghost")
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateDuplicateEdgeFails(t *testing.T) {
	repo := &fakeFollowRepo{}
	service := newService(repo, "alice", "bob")

	if _, err := service.Create(context.Background(), "alice", "bob"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := service.Create(context.Background(), "alice", "bob")
	if !errors.Is(err, domainerrors.ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got %v", err)
	}
	if len(repo.edges) != 1 {
		t.Fatalf("expected exactly one edge, got %d", len(repo.edges))
	}
}

func TestCreateEmptyFolloweeFails(t *testing.T) {
	service := newService(&fakeFollowRepo{}, "alice")

	_, err := service.Create(context.Background(), "alice", "  ")
	if !errors.Is(err, domainerrors.ErrInvalidFollowInput) {
		t.Fatalf("expected ErrInvalidFollowInput, got %v", err)
	}
}

func TestListScopedToRequester(t *testing.T) {
	repo := &fakeFollowRepo{edges: []entities.Follow{
		{FollowID: "e1", User: "alice", Following: "bob"},
		{FollowID: "e2", User: "charlie", Following: "alice"},
	}}
	service := newService(repo, "alice", "bob", "charlie")

	items, err := service.List(context.Background(), "alice", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].FollowID != "e1" {
		t.Fatalf("expected only alice's edge, got %+v", items)
	}
}
