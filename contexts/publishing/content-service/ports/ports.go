package ports

import (
	"context"
	"time"

	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type PostInput struct {
	Text    string
	Image   string
	GroupID string
}

// PostPatch carries partial updates; nil fields are left untouched.
type PostPatch struct {
	Text    *string
	Image   *string
	GroupID *string
}

type PostPage struct {
	Items      []entities.Post
	Count      int
	Page       int
	PageSize   int
	TotalPages int
}

type PostRepository interface {
	CreatePost(ctx context.Context, post entities.Post) error
	GetPost(ctx context.Context, postID string) (entities.Post, error)
	ListPosts(ctx context.Context, offset int, limit int) ([]entities.Post, error)
	CountPosts(ctx context.Context) (int, error)
	UpdatePost(ctx context.Context, post entities.Post) error
	DeletePost(ctx context.Context, postID string) error
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment entities.Comment) error
	GetComment(ctx context.Context, commentID string) (entities.Comment, error)
	ListCommentsByPost(ctx context.Context, postID string) ([]entities.Comment, error)
	UpdateComment(ctx context.Context, comment entities.Comment) error
	DeleteComment(ctx context.Context, commentID string) error
}

type GroupRepository interface {
	GetGroup(ctx context.Context, groupID string) (entities.Group, error)
	ListGroups(ctx context.Context) ([]entities.Group, error)
}
