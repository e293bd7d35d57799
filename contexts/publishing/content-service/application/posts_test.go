package application

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/errors"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/entities"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/ports"
)

type fakePostRepo struct {
	posts []entities.Post
}

func (r *fakePostRepo) CreatePost(_ context.Context, post entities.Post) error {
	r.posts = append(r.posts, post)
	return nil
}

func (r *fakePostRepo) GetPost(_ context.Context, postID string) (entities.Post, error) {
	for _, item := range r.posts {
		if item.PostID == postID {
			return item, nil
		}
	}
	return entities.Post{}, domainerrors.ErrPostNotFound
}

func (r *fakePostRepo) ListPosts(_ context.Context, offset int, limit int) ([]entities.Post, error) {
	if offset >= len(r.posts) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.posts) {
		end = len(r.posts)
	}
	return r.posts[offset:end], nil
}

func (r *fakePostRepo) CountPosts(_ context.Context) (int, error) {
	return len(r.posts), nil
}

func (r *fakePostRepo) UpdatePost(_ context.Context, post entities.Post) error {
	for i, item := range r.posts {
		if item.PostID == post.PostID {
			r.posts[i] = post
			return nil
		}
	}
	return domainerrors.ErrPostNotFound
}

func (r *fakePostRepo) DeletePost(_ context.Context, postID string) error {
	for i, item := range r.posts {
		if item.PostID == postID {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrPostNotFound
}

type fakeGroupRepo struct {
	groups map[string]entities.Group
}

func (r *fakeGroupRepo) GetGroup(_ context.Context, groupID string) (entities.Group, error) {
	item, ok := r.groups[groupID]
	if !ok {
		return entities.Group{}, domainerrors.ErrGroupNotFound
	}
	return item, nil
}

func (r *fakeGroupRepo) ListGroups(_ context.Context) ([]entities.Group, error) {
	items := make([]entities.Group, 0, len(r.groups))
	for _, item := range r.groups {
		items = append(items, item)
	}
	return items, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type seqIDGen struct {
	next int
}

func (g *seqIDGen) NewID(_ context.Context) (string, error) {
	g.next++
	return string(rune('a'+g.next-1)) + "-id", nil
}

func newPostService(repo *fakePostRepo, groups *fakeGroupRepo) PostService {
	if groups == nil {
		groups = &fakeGroupRepo{groups: map[string]entities.Group{}}
	}
	return PostService{
		Posts:  repo,
		Groups: groups,
		Clock:  fixedClock{now: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)},
		IDGen:  &seqIDGen{},
		Pages:  PageConfig{PageSize: 2, MaxPageSize: 3},
	}
}

func TestCreatePostForcesAuthorAndPubDate(t *testing.T) {
	repo := &fakePostRepo{}
	service := newPostService(repo, nil)

	post, err := service.Create(context.Background(), "alice", ports.PostInput{Text: "hi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.Author != "alice" {
		t.Fatalf("expected author alice, got %q", post.Author)
	}
	want := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	if !post.PubDate.Equal(want) {
		t.Fatalf("expected pub_date %v, got %v", want, post.PubDate)
	}
	if len(repo.posts) != 1 {
		t.Fatalf("expected 1 stored post, got %d", len(repo.posts))
	}
}

func TestCreatePostRequiresText(t *testing.T) {
	service := newPostService(&fakePostRepo{}, nil)

	_, err := service.Create(context.Background(), "alice", ports.PostInput{Text: "   "})
	if !errors.Is(err, domainerrors.ErrInvalidPostInput) {
		t.Fatalf("expected ErrInvalidPostInput, got %v", err)
	}
}

func TestCreatePostRejectsUnknownGroup(t *testing.T) {
	service := newPostService(&fakePostRepo{}, &fakeGroupRepo{groups: map[string]entities.Group{}})

	_, err := service.Create(context.Background(), "alice", ports.PostInput{Text: "hi", GroupID: "nope"})
	if !errors.Is(err, domainerrors.ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}
}

func TestUpdatePostRejectsNonAuthor(t *testing.T) {
	repo := &fakePostRepo{posts: []entities.Post{{PostID: "p1", Author: "alice", Text: "hi"}}}
	service := newPostService(repo, nil)

	text := "edited"
	_, err := service.Update(context.Background(), "bob", "p1", ports.PostPatch{Text: &text})
	if !errors.Is(err, domainerrors.ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}
	if repo.posts[0].Text != "hi" {
		t.Fatalf("post text changed despite forbidden update: %q", repo.posts[0].Text)
	}
}

func TestUpdatePostByAuthorAppliesPatch(t *testing.T) {
	repo := &fakePostRepo{posts: []entities.Post{{PostID: "p1", Author: "alice", Text: "hi", Image: "pic.png"}}}
	service := newPostService(repo, nil)

	text := "edited"
	post, err := service.Update(context.Background(), "alice", "p1", ports.PostPatch{Text: &text})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if post.Text != "edited" {
		t.Fatalf("expected updated text, got %q", post.Text)
	}
	if post.Image != "pic.png" {
		t.Fatalf("untouched field changed: %q", post.Image)
	}
	if post.Author != "alice" {
		t.Fatalf("author changed: %q", post.Author)
	}
}

func TestDeletePostRejectsNonAuthor(t *testing.T) {
	repo := &fakePostRepo{posts: []entities.Post{{PostID: "p1", Author: "alice", Text: "hi"}}}
	service := newPostService(repo, nil)

	if err := service.Delete(context.Background(), "bob", "p1"); !errors.Is(err, domainerrors.ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}
	if err := service.Delete(context.Background(), "alice", "p1"); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if len(repo.posts) != 0 {
		t.Fatalf("expected no posts left, got %d", len(repo.posts))
	}
}

func TestListPaginatesInInsertionOrder(t *testing.T) {
	repo := &fakePostRepo{posts: []entities.Post{
		{PostID: "p1", Author: "alice", Text: "one"},
		{PostID: "p2", Author: "alice", Text: "two"},
		{PostID: "p3", Author: "bob", Text: "three"},
	}}
	service := newPostService(repo, nil)

	first, err := service.List(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if first.Count != 3 || first.TotalPages != 2 || len(first.Items) != 2 {
		t.Fatalf("unexpected first window: count=%d pages=%d items=%d", first.Count, first.TotalPages, len(first.Items))
	}
	if first.Items[0].PostID != "p1" || first.Items[1].PostID != "p2" {
		t.Fatalf("first page out of order: %+v", first.Items)
	}

	second, err := service.List(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(second.Items) != 1 || second.Items[0].PostID != "p3" {
		t.Fatalf("unexpected second window: %+v", second.Items)
	}
}

func TestListPastLastPageFails(t *testing.T) {
	repo := &fakePostRepo{posts: []entities.Post{{PostID: "p1", Author: "alice", Text: "one"}}}
	service := newPostService(repo, nil)

	if _, err := service.List(context.Background(), 5, 0); !errors.Is(err, domainerrors.ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestListFirstPageOfEmptySetIsValid(t *testing.T) {
	service := newPostService(&fakePostRepo{}, nil)

	window, err := service.List(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if window.Count != 0 || len(window.Items) != 0 || window.TotalPages != 1 {
		t.Fatalf("unexpected empty window: %+v", window)
	}
}

func TestListCapsPageSizeOverride(t *testing.T) {
	repo := &fakePostRepo{}
	for i := 0; i < 5; i++ {
		repo.posts = append(repo.posts, entities.Post{PostID: string(rune('a' + i)), Author: "alice", Text: "x"})
	}
	service := newPostService(repo, nil)

	window, err := service.List(context.Background(), 1, 50)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if window.PageSize != 3 {
		t.Fatalf("expected page size capped at 3, got %d", window.PageSize)
	}
	if len(window.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(window.Items))
	}
}
