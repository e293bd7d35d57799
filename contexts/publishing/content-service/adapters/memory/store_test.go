package memory

import (
	"context"
	"errors"
	"testing"

	domainerrors "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/errors"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/entities"
)

func TestPostWindowsFollowInsertionOrder(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3"} {
		if err := store.CreatePost(ctx, entities.Post{PostID: id, Author: "alice", Text: id}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	count, err := store.CountPosts(ctx)
	if err != nil || count != 3 {
		t.Fatalf("count = %d, err = %v", count, err)
	}

	window, err := store.ListPosts(ctx, 1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(window) != 2 || window[0].PostID != "p2" || window[1].PostID != "p3" {
		t.Fatalf("unexpected window: %+v", window)
	}

	past, err := store.ListPosts(ctx, 10, 2)
	if err != nil || len(past) != 0 {
		t.Fatalf("expected empty window past end, got %+v err=%v", past, err)
	}
}

func TestDeletePostRemovesItsComments(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	if err := store.CreatePost(ctx, entities.Post{PostID: "p1", Author: "alice", Text: "hi"}); err != nil {
		t.Fatalf("create post: %v", err)
	}
	if err := store.CreatePost(ctx, entities.Post{PostID: "p2", Author: "alice", Text: "other"}); err != nil {
		t.Fatalf("create post: %v", err)
	}
	if err := store.CreateComment(ctx, entities.Comment{CommentID: "c1", PostID: "p1", Author: "bob", Text: "x"}); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if err := store.CreateComment(ctx, entities.Comment{CommentID: "c2", PostID: "p2", Author: "bob", Text: "y"}); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	if err := store.DeletePost(ctx, "p1"); err != nil {
		t.Fatalf("delete post: %v", err)
	}

	if _, err := store.GetComment(ctx, "c1"); !errors.Is(err, domainerrors.ErrCommentNotFound) {
		t.Fatalf("expected orphaned comment gone, got %v", err)
	}
	if _, err := store.GetComment(ctx, "c2"); err != nil {
		t.Fatalf("unrelated comment lost: %v", err)
	}
}

func TestCommentsScopedToPost(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()

	if err := store.CreateComment(ctx, entities.Comment{CommentID: "c1", PostID: "p1", Author: "bob", Text: "x"}); err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if err := store.CreateComment(ctx, entities.Comment{CommentID: "c2", PostID: "p2", Author: "bob", Text: "y"}); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	items, err := store.ListCommentsByPost(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].CommentID != "c1" {
		t.Fatalf("expected only c1, got %+v", items)
	}
}

func TestSeededGroupsAreReadable(t *testing.T) {
	store := NewStore([]entities.Group{
		{GroupID: "g1", Title: "Go", Slug: "go"},
		{GroupID: "g2", Title: "Databases", Slug: "db"},
	})
	ctx := context.Background()

	items, err := store.ListGroups(ctx)
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(items) != 2 || items[0].GroupID != "g1" {
		t.Fatalf("unexpected groups: %+v", items)
	}

	if _, err := store.GetGroup(ctx, "g2"); err != nil {
		t.Fatalf("get group: %v", err)
	}
	if _, err := store.GetGroup(ctx, "missing"); !errors.Is(err, domainerrors.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}
