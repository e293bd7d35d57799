package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/errors"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/entities"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/ports"
)

// PageConfig is passed in at construction; there are no process-wide
// pagination defaults.
type PageConfig struct {
	PageSize    int
	MaxPageSize int
}

func (c PageConfig) size(requested int) int {
	size := c.PageSize
	if size <= 0 {
		size = 10
	}
	if requested > 0 {
		size = requested
	}
	max := c.MaxPageSize
	if max <= 0 {
		max = 100
	}
	if size > max {
		size = max
	}
	return size
}

type PostService struct {
	Posts  ports.PostRepository
	Groups ports.GroupRepository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Pages  PageConfig
	Logger *slog.Logger
}

// List windows the unfiltered post set. Page numbers are 1-based; a page
// past the last one is a not-found condition, while the first page of an
// empty set is a valid empty window.
func (s PostService) List(ctx context.Context, page int, pageSize int) (ports.PostPage, error) {
	if page <= 0 {
		page = 1
	}
	size := s.Pages.size(pageSize)

	count, err := s.Posts.CountPosts(ctx)
	if err != nil {
		return ports.PostPage{}, err
	}
	totalPages := (count + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		return ports.PostPage{}, domainerrors.ErrPageNotFound
	}

	items, err := s.Posts.ListPosts(ctx, (page-1)*size, size)
	if err != nil {
		return ports.PostPage{}, err
	}
	return ports.PostPage{
		Items:      items,
		Count:      count,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}, nil
}

func (s PostService) Get(ctx context.Context, postID string) (entities.Post, error) {
	if strings.TrimSpace(postID) == "" {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	return s.Posts.GetPost(ctx, postID)
}

// Create forces author and pub_date; client-supplied values for either are
// never consulted.
func (s PostService) Create(ctx context.Context, requester string, input ports.PostInput) (entities.Post, error) {
	post := entities.Post{
		Author:  strings.TrimSpace(requester),
		Text:    strings.TrimSpace(input.Text),
		Image:   strings.TrimSpace(input.Image),
		GroupID: strings.TrimSpace(input.GroupID),
		PubDate: s.now(),
	}
	if !post.Valid() {
		return entities.Post{}, domainerrors.ErrInvalidPostInput
	}
	if err := s.checkGroup(ctx, post.GroupID); err != nil {
		return entities.Post{}, err
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Post{}, err
	}
	post.PostID = id

	if err := s.Posts.CreatePost(ctx, post); err != nil {
		return entities.Post{}, err
	}
	resolveLogger(s.Logger).Info("post created",
		"event", "post_created",
		"post_id", post.PostID,
		"author", post.Author,
	)
	return post, nil
}

func (s PostService) Update(ctx context.Context, requester string, postID string, patch ports.PostPatch) (entities.Post, error) {
	post, err := s.Posts.GetPost(ctx, postID)
	if err != nil {
		return entities.Post{}, err
	}
	if !post.OwnedBy(requester) {
		return entities.Post{}, domainerrors.ErrNotAuthor
	}

	if patch.Text != nil {
		post.Text = strings.TrimSpace(*patch.Text)
	}
	if patch.Image != nil {
		post.Image = strings.TrimSpace(*patch.Image)
	}
	if patch.GroupID != nil {
		post.GroupID = strings.TrimSpace(*patch.GroupID)
	}
	if !post.Valid() {
		return entities.Post{}, domainerrors.ErrInvalidPostInput
	}
	if patch.GroupID != nil {
		if err := s.checkGroup(ctx, post.GroupID); err != nil {
			return entities.Post{}, err
		}
	}

	if err := s.Posts.UpdatePost(ctx, post); err != nil {
		return entities.Post{}, err
	}
	return post, nil
}

func (s PostService) Delete(ctx context.Context, requester string, postID string) error {
	post, err := s.Posts.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if !post.OwnedBy(requester) {
		return domainerrors.ErrNotAuthor
	}
	return s.Posts.DeletePost(ctx, post.PostID)
}

func (s PostService) checkGroup(ctx context.Context, groupID string) error {
	if groupID == "" {
		return nil
	}
	if _, err := s.Groups.GetGroup(ctx, groupID); err != nil {
		return domainerrors.ErrUnknownGroup
	}
	return nil
}

func (s PostService) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
