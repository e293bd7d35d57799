package followservice

import (
	"log/slog"

	httpadapter "github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/adapters/http"
	"github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/adapters/memory"
	"github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/application"
	"github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Follows ports.FollowRepository
	Users   ports.UserDirectory
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Follows: deps.Follows,
		Users:   deps.Users,
		Clock:   deps.Clock,
		IDGen:   deps.IDGen,
		Logger:  deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(seedUsers []string, logger *slog.Logger) Module {
	store := memory.NewStore(seedUsers)
	module := NewModule(Dependencies{
		Follows: store,
		Users:   store,
		Clock:   store,
		IDGen:   store,
		Logger:  logger,
	})
	module.Store = store
	return module
}
