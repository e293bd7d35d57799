package httpadapter

import (
	"context"
	"log/slog"

	"github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/application"
	"github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/domain/entities"
	httptransport "github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary List follow edges
// @Description Returns only the requester's own follow edges.
// @Tags follow
// @Produce json
// @Param X-User-Id header string true "Authenticated username"
// @Param search query string false "Substring filter on followee username"
// @Success 200 {object} httptransport.ListFollowsResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /follow/ [get]
func (h Handler) ListFollowsHandler(ctx context.Context, requester string, search string) (httptransport.ListFollowsResponse, error) {
	items, err := h.Service.List(ctx, requester, search)
	if err != nil {
		return httptransport.ListFollowsResponse{}, err
	}
	out := httptransport.ListFollowsResponse{Items: make([]httptransport.FollowDTO, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, followDTO(item))
	}
	return out, nil
}

// @Summary Follow a user
// @Description The follower is forced to the requester identity.
// @Tags follow
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Authenticated username"
// @Param request body httptransport.CreateFollowRequest true "Followee username"
// @Success 201 {object} httptransport.GetFollowResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /follow/ [post]
func (h Handler) CreateFollowHandler(ctx context.Context, requester string, req httptransport.CreateFollowRequest) (httptransport.GetFollowResponse, error) {
	item, err := h.Service.Create(ctx, requester, req.Following)
	if err != nil {
		return httptransport.GetFollowResponse{}, err
	}
	return httptransport.GetFollowResponse{Item: followDTO(item)}, nil
}

func followDTO(item entities.Follow) httptransport.FollowDTO {
	return httptransport.FollowDTO{
		ID:        item.FollowID,
		User:      item.User,
		Following: item.Following,
	}
}
