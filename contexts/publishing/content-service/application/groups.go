package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/errors"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/entities"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/ports"
)

type GroupService struct {
	Groups ports.GroupRepository
	Logger *slog.Logger
}

func (s GroupService) List(ctx context.Context) ([]entities.Group, error) {
	return s.Groups.ListGroups(ctx)
}

func (s GroupService) Get(ctx context.Context, groupID string) (entities.Group, error) {
	if strings.TrimSpace(groupID) == "" {
		return entities.Group{}, domainerrors.ErrGroupNotFound
	}
	return s.Groups.GetGroup(ctx, groupID)
}
