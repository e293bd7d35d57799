package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/domain/errors"
	"github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/domain/entities"
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

// CreateFollow relies on the (user_name, following) unique index; a
// SQLSTATE 23505 from concurrent identical requests is reported as the same
// validation failure the advisory pre-check produces.
func (r *Repository) CreateFollow(ctx context.Context, follow entities.Follow) error {
	row := followModelFromEntity(follow)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, user string, search string) ([]entities.Follow, error) {
	tx := r.db.WithContext(ctx).
		Model(&followModel{}).
		Where("user_name = ?", strings.TrimSpace(user))
	if search = strings.TrimSpace(search); search != "" {
		tx = tx.Where("following ILIKE ?", "%"+search+"%")
	}

	var rows []followModel
	if err := tx.Order("created_at ASC, follow_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Follow, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) EdgeExists(ctx context.Context, user string, following string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&followModel{}).
		Where("user_name = ? AND following = ?", strings.TrimSpace(user), strings.TrimSpace(following)).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) UserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("username = ?", strings.TrimSpace(username)).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type followModel struct {
	FollowID  string    `gorm:"column:follow_id;primaryKey"`
	UserName  string    `gorm:"column:user_name;uniqueIndex:idx_follow_pair"`
	Following string    `gorm:"column:following;uniqueIndex:idx_follow_pair"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (followModel) TableName() string {
	return "follows"
}

func followModelFromEntity(item entities.Follow) followModel {
	return followModel{
		FollowID:  strings.TrimSpace(item.FollowID),
		UserName:  strings.TrimSpace(item.User),
		Following: strings.TrimSpace(item.Following),
		CreatedAt: item.CreatedAt.UTC(),
	}
}

func (m followModel) toEntity() entities.Follow {
	return entities.Follow{
		FollowID:  m.FollowID,
		User:      m.UserName,
		Following: m.Following,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// userModel reads the users table owned by the identity collaborator.
type userModel struct {
	Username string `gorm:"column:username;primaryKey"`
}

func (userModel) TableName() string {
	return "users"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
