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

type CommentService struct {
	Posts    ports.PostRepository
	Comments ports.CommentRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// List returns the full comment set for one parent post, unpaginated.
// The parent is resolved before any comment logic runs.
func (s CommentService) List(ctx context.Context, postID string) ([]entities.Comment, error) {
	if _, err := s.Posts.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	return s.Comments.ListCommentsByPost(ctx, postID)
}

func (s CommentService) Get(ctx context.Context, postID string, commentID string) (entities.Comment, error) {
	if _, err := s.Posts.GetPost(ctx, postID); err != nil {
		return entities.Comment{}, err
	}
	return s.scopedComment(ctx, postID, commentID)
}

// Create forces post to the resolved parent and author to the requester.
func (s CommentService) Create(ctx context.Context, requester string, postID string, text string) (entities.Comment, error) {
	post, err := s.Posts.GetPost(ctx, postID)
	if err != nil {
		return entities.Comment{}, err
	}

	comment := entities.Comment{
		PostID:  post.PostID,
		Author:  strings.TrimSpace(requester),
		Text:    strings.TrimSpace(text),
		Created: s.now(),
	}
	if !comment.Valid() {
		return entities.Comment{}, domainerrors.ErrInvalidCommentInput
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Comment{}, err
	}
	comment.CommentID = id

	if err := s.Comments.CreateComment(ctx, comment); err != nil {
		return entities.Comment{}, err
	}
	resolveLogger(s.Logger).Info("comment created",
		"event", "comment_created",
		"comment_id", comment.CommentID,
		"post_id", comment.PostID,
		"author", comment.Author,
	)
	return comment, nil
}

func (s CommentService) Update(ctx context.Context, requester string, postID string, commentID string, text *string) (entities.Comment, error) {
	if _, err := s.Posts.GetPost(ctx, postID); err != nil {
		return entities.Comment{}, err
	}
	comment, err := s.scopedComment(ctx, postID, commentID)
	if err != nil {
		return entities.Comment{}, err
	}
	if !comment.OwnedBy(requester) {
		return entities.Comment{}, domainerrors.ErrNotAuthor
	}

	if text != nil {
		comment.Text = strings.TrimSpace(*text)
	}
	if !comment.Valid() {
		return entities.Comment{}, domainerrors.ErrInvalidCommentInput
	}

	if err := s.Comments.UpdateComment(ctx, comment); err != nil {
		return entities.Comment{}, err
	}
	return comment, nil
}

func (s CommentService) Delete(ctx context.Context, requester string, postID string, commentID string) error {
	if _, err := s.Posts.GetPost(ctx, postID); err != nil {
		return err
	}
	comment, err := s.scopedComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if !comment.OwnedBy(requester) {
		return domainerrors.ErrNotAuthor
	}
	return s.Comments.DeleteComment(ctx, comment.CommentID)
}

// scopedComment hides comments that exist but belong to a different parent.
func (s CommentService) scopedComment(ctx context.Context, postID string, commentID string) (entities.Comment, error) {
	comment, err := s.Comments.GetComment(ctx, commentID)
	if err != nil {
		return entities.Comment{}, err
	}
	if !comment.BelongsTo(postID) {
		return entities.Comment{}, domainerrors.ErrCommentNotFound
	}
	return comment, nil
}

func (s CommentService) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
