package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	domainerrors "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/errors"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/entities"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreatePost(ctx context.Context, post entities.Post) error {
	row := postModelFromEntity(post)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	return nil
}

func (r *Repository) GetPost(ctx context.Context, postID string) (entities.Post, error) {
	var row postModel
	err := r.db.WithContext(ctx).
		Where("post_id = ?", strings.TrimSpace(postID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Post{}, domainerrors.ErrPostNotFound
		}
		return entities.Post{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListPosts(ctx context.Context, offset int, limit int) ([]entities.Post, error) {
	var rows []postModel
	if err := r.db.WithContext(ctx).
		Order("pub_date ASC, post_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Post, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CountPosts(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&postModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *Repository) UpdatePost(ctx context.Context, post entities.Post) error {
	result := r.db.WithContext(ctx).
		Model(&postModel{}).
		Where("post_id = ?", strings.TrimSpace(post.PostID)).
		Updates(map[string]any{
			"text":     strings.TrimSpace(post.Text),
			"image":    strings.TrimSpace(post.Image),
			"group_id": nullableString(post.GroupID),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPostNotFound
	}
	return nil
}

func (r *Repository) DeletePost(ctx context.Context, postID string) error {
	postID = strings.TrimSpace(postID)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&commentModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("post_id = ?", postID).Delete(&postModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrPostNotFound
		}
		return nil
	})
}

func (r *Repository) CreateComment(ctx context.Context, comment entities.Comment) error {
	row := commentModelFromEntity(comment)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	return nil
}

func (r *Repository) GetComment(ctx context.Context, commentID string) (entities.Comment, error) {
	var row commentModel
	err := r.db.WithContext(ctx).
		Where("comment_id = ?", strings.TrimSpace(commentID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Comment{}, domainerrors.ErrCommentNotFound
		}
		return entities.Comment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListCommentsByPost(ctx context.Context, postID string) ([]entities.Comment, error) {
	var rows []commentModel
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", strings.TrimSpace(postID)).
		Order("created ASC, comment_id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Comment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment entities.Comment) error {
	result := r.db.WithContext(ctx).
		Model(&commentModel{}).
		Where("comment_id = ?", strings.TrimSpace(comment.CommentID)).
		Updates(map[string]any{
			"text": strings.TrimSpace(comment.Text),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCommentNotFound
	}
	return nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID string) error {
	result := r.db.WithContext(ctx).
		Where("comment_id = ?", strings.TrimSpace(commentID)).
		Delete(&commentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCommentNotFound
	}
	return nil
}

func (r *Repository) GetGroup(ctx context.Context, groupID string) (entities.Group, error) {
	var row groupModel
	err := r.db.WithContext(ctx).
		Where("group_id = ?", strings.TrimSpace(groupID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Group{}, domainerrors.ErrGroupNotFound
		}
		return entities.Group{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListGroups(ctx context.Context) ([]entities.Group, error) {
	var rows []groupModel
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Group, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type postModel struct {
	PostID  string    `gorm:"column:post_id;primaryKey"`
	Author  string    `gorm:"column:author"`
	Text    string    `gorm:"column:text"`
	PubDate time.Time `gorm:"column:pub_date"`
	Image   string    `gorm:"column:image"`
	GroupID *string   `gorm:"column:group_id"`
}

func (postModel) TableName() string {
	return "posts"
}

func postModelFromEntity(item entities.Post) postModel {
	return postModel{
		PostID:  strings.TrimSpace(item.PostID),
		Author:  strings.TrimSpace(item.Author),
		Text:    strings.TrimSpace(item.Text),
		PubDate: item.PubDate.UTC(),
		Image:   strings.TrimSpace(item.Image),
		GroupID: nullableString(item.GroupID),
	}
}

func (m postModel) toEntity() entities.Post {
	groupID := ""
	if m.GroupID != nil {
		groupID = *m.GroupID
	}
	return entities.Post{
		PostID:  m.PostID,
		Author:  m.Author,
		Text:    m.Text,
		PubDate: m.PubDate.UTC(),
		Image:   m.Image,
		GroupID: groupID,
	}
}

type commentModel struct {
	CommentID string    `gorm:"column:comment_id;primaryKey"`
	PostID    string    `gorm:"column:post_id"`
	Author    string    `gorm:"column:author"`
	Text      string    `gorm:"column:text"`
	Created   time.Time `gorm:"column:created"`
}

func (commentModel) TableName() string {
	return "comments"
}

func commentModelFromEntity(item entities.Comment) commentModel {
	return commentModel{
		CommentID: strings.TrimSpace(item.CommentID),
		PostID:    strings.TrimSpace(item.PostID),
		Author:    strings.TrimSpace(item.Author),
		Text:      strings.TrimSpace(item.Text),
		Created:   item.Created.UTC(),
	}
}

func (m commentModel) toEntity() entities.Comment {
	return entities.Comment{
		CommentID: m.CommentID,
		PostID:    m.PostID,
		Author:    m.Author,
		Text:      m.Text,
		Created:   m.Created.UTC(),
	}
}

type groupModel struct {
	GroupID     string `gorm:"column:group_id;primaryKey"`
	Title       string `gorm:"column:title"`
	Slug        string `gorm:"column:slug;uniqueIndex"`
	Description string `gorm:"column:description"`
}

func (groupModel) TableName() string {
	return "groups"
}

func (m groupModel) toEntity() entities.Group {
	return entities.Group{
		GroupID:     m.GroupID,
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
	}
}

func nullableString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
