package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/application"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/entities"
	domainerrors "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/errors"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/ports"
	httptransport "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/transport/http"
)

type Handler struct {
	Posts    application.PostService
	Comments application.CommentService
	Groups   application.GroupService
	Logger   *slog.Logger
}

// @Summary List posts
// @Description Returns the unfiltered post feed, page-windowed.
// @Tags posts
// @Produce json
// @Param page query int false "1-based page number"
// @Param page_size query int false "Page size override, capped by server config"
// @Success 200 {object} httptransport.ListPostsResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/ [get]
func (h Handler) ListPostsHandler(ctx context.Context, page int, pageSize int) (httptransport.ListPostsResponse, error) {
	window, err := h.Posts.List(ctx, page, pageSize)
	if err != nil {
		return httptransport.ListPostsResponse{}, err
	}
	results := make([]httptransport.PostDTO, 0, len(window.Items))
	for _, item := range window.Items {
		results = append(results, postDTO(item))
	}
	return httptransport.ListPostsResponse{
		Count:      window.Count,
		Page:       window.Page,
		PageSize:   window.PageSize,
		TotalPages: window.TotalPages,
		Results:    results,
	}, nil
}

// @Summary Get post
// @Tags posts
// @Produce json
// @Param post_id path string true "Post id"
// @Success 200 {object} httptransport.GetPostResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/{post_id}/ [get]
func (h Handler) GetPostHandler(ctx context.Context, postID string) (httptransport.GetPostResponse, error) {
	item, err := h.Posts.Get(ctx, postID)
	if err != nil {
		return httptransport.GetPostResponse{}, err
	}
	return httptransport.GetPostResponse{Item: postDTO(item)}, nil
}

// @Summary Create post
// @Description Author and pub_date are assigned server-side.
// @Tags posts
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Authenticated username"
// @Param request body httptransport.CreatePostRequest true "Post payload"
// @Success 201 {object} httptransport.GetPostResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /posts/ [post]
func (h Handler) CreatePostHandler(ctx context.Context, requester string, req httptransport.CreatePostRequest) (httptransport.GetPostResponse, error) {
	item, err := h.Posts.Create(ctx, requester, ports.PostInput{
		Text:    req.Text,
		Image:   req.Image,
		GroupID: req.Group,
	})
	if err != nil {
		return httptransport.GetPostResponse{}, err
	}
	return httptransport.GetPostResponse{Item: postDTO(item)}, nil
}

// @Summary Update post
// @Description PUT replaces writable fields, PATCH applies only those present.
// @Tags posts
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Authenticated username"
// @Param post_id path string true "Post id"
// @Param request body httptransport.UpdatePostRequest true "Fields to change"
// @Success 200 {object} httptransport.GetPostResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/{post_id}/ [patch]
func (h Handler) UpdatePostHandler(ctx context.Context, requester string, postID string, req httptransport.UpdatePostRequest, partial bool) (httptransport.GetPostResponse, error) {
	if !partial && req.Text == nil {
		return httptransport.GetPostResponse{}, domainerrors.ErrInvalidPostInput
	}
	patch := ports.PostPatch{Text: req.Text, Image: req.Image, GroupID: req.Group}
	if !partial {
		if patch.Image == nil {
			patch.Image = ptr("")
		}
		if patch.GroupID == nil {
			patch.GroupID = ptr("")
		}
	}
	item, err := h.Posts.Update(ctx, requester, postID, patch)
	if err != nil {
		return httptransport.GetPostResponse{}, err
	}
	return httptransport.GetPostResponse{Item: postDTO(item)}, nil
}

// @Summary Delete post
// @Tags posts
// @Param X-User-Id header string true "Authenticated username"
// @Param post_id path string true "Post id"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/{post_id}/ [delete]
func (h Handler) DeletePostHandler(ctx context.Context, requester string, postID string) error {
	return h.Posts.Delete(ctx, requester, postID)
}

// @Summary List comments for a post
// @Description Full unpaginated comment set scoped to the parent post.
// @Tags comments
// @Produce json
// @Param post_id path string true "Parent post id"
// @Success 200 {object} httptransport.ListCommentsResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/{post_id}/comments/ [get]
func (h Handler) ListCommentsHandler(ctx context.Context, postID string) (httptransport.ListCommentsResponse, error) {
	items, err := h.Comments.List(ctx, postID)
	if err != nil {
		return httptransport.ListCommentsResponse{}, err
	}
	out := httptransport.ListCommentsResponse{Items: make([]httptransport.CommentDTO, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, commentDTO(item))
	}
	return out, nil
}

// @Summary Get comment
// @Tags comments
// @Produce json
// @Param post_id path string true "Parent post id"
// @Param comment_id path string true "Comment id"
// @Success 200 {object} httptransport.GetCommentResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/{post_id}/comments/{comment_id}/ [get]
func (h Handler) GetCommentHandler(ctx context.Context, postID string, commentID string) (httptransport.GetCommentResponse, error) {
	item, err := h.Comments.Get(ctx, postID, commentID)
	if err != nil {
		return httptransport.GetCommentResponse{}, err
	}
	return httptransport.GetCommentResponse{Item: commentDTO(item)}, nil
}

// @Summary Create comment
// @Description Post and author are forced server-side from path and identity.
// @Tags comments
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Authenticated username"
// @Param post_id path string true "Parent post id"
// @Param request body httptransport.CreateCommentRequest true "Comment payload"
// @Success 201 {object} httptransport.GetCommentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/{post_id}/comments/ [post]
func (h Handler) CreateCommentHandler(ctx context.Context, requester string, postID string, req httptransport.CreateCommentRequest) (httptransport.GetCommentResponse, error) {
	item, err := h.Comments.Create(ctx, requester, postID, req.Text)
	if err != nil {
		return httptransport.GetCommentResponse{}, err
	}
	return httptransport.GetCommentResponse{Item: commentDTO(item)}, nil
}

// @Summary Update comment
// @Tags comments
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Authenticated username"
// @Param post_id path string true "Parent post id"
// @Param comment_id path string true "Comment id"
// @Param request body httptransport.UpdateCommentRequest true "Fields to change"
// @Success 200 {object} httptransport.GetCommentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/{post_id}/comments/{comment_id}/ [patch]
func (h Handler) UpdateCommentHandler(ctx context.Context, requester string, postID string, commentID string, req httptransport.UpdateCommentRequest, partial bool) (httptransport.GetCommentResponse, error) {
	if !partial && req.Text == nil {
		return httptransport.GetCommentResponse{}, domainerrors.ErrInvalidCommentInput
	}
	item, err := h.Comments.Update(ctx, requester, postID, commentID, req.Text)
	if err != nil {
		return httptransport.GetCommentResponse{}, err
	}
	return httptransport.GetCommentResponse{Item: commentDTO(item)}, nil
}

// @Summary Delete comment
// @Tags comments
// @Param X-User-Id header string true "Authenticated username"
// @Param post_id path string true "Parent post id"
// @Param comment_id path string true "Comment id"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/{post_id}/comments/{comment_id}/ [delete]
func (h Handler) DeleteCommentHandler(ctx context.Context, requester string, postID string, commentID string) error {
	return h.Comments.Delete(ctx, requester, postID, commentID)
}

// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {object} httptransport.ListGroupsResponse
// @Router /groups/ [get]
func (h Handler) ListGroupsHandler(ctx context.Context) (httptransport.ListGroupsResponse, error) {
	items, err := h.Groups.List(ctx)
	if err != nil {
		return httptransport.ListGroupsResponse{}, err
	}
	out := httptransport.ListGroupsResponse{Items: make([]httptransport.GroupDTO, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, groupDTO(item))
	}
	return out, nil
}

// @Summary Get group
// @Tags groups
// @Produce json
// @Param group_id path string true "Group id"
// @Success 200 {object} httptransport.GetGroupResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /groups/{group_id}/ [get]
func (h Handler) GetGroupHandler(ctx context.Context, groupID string) (httptransport.GetGroupResponse, error) {
	item, err := h.Groups.Get(ctx, groupID)
	if err != nil {
		return httptransport.GetGroupResponse{}, err
	}
	return httptransport.GetGroupResponse{Item: groupDTO(item)}, nil
}

func postDTO(item entities.Post) httptransport.PostDTO {
	return httptransport.PostDTO{
		ID:      item.PostID,
		Author:  item.Author,
		Text:    item.Text,
		PubDate: item.PubDate.UTC().Format(time.RFC3339),
		Image:   item.Image,
		Group:   item.GroupID,
	}
}

func commentDTO(item entities.Comment) httptransport.CommentDTO {
	return httptransport.CommentDTO{
		ID:      item.CommentID,
		Author:  item.Author,
		Post:    item.PostID,
		Text:    item.Text,
		Created: item.Created.UTC().Format(time.RFC3339),
	}
}

func groupDTO(item entities.Group) httptransport.GroupDTO {
	return httptransport.GroupDTO{
		ID:          item.GroupID,
		Title:       item.Title,
		Slug:        item.Slug,
		Description: item.Description,
	}
}

func ptr(value string) *string { return &value }
