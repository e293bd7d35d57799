package contentservice

import (
	"log/slog"

	httpadapter "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/adapters/http"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/adapters/memory"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/application"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/entities"
	"github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Posts    ports.PostRepository
	Comments ports.CommentRepository
	Groups   ports.GroupRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Pages    application.PageConfig
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	posts := application.PostService{
		Posts:  deps.Posts,
		Groups: deps.Groups,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Pages:  deps.Pages,
		Logger: deps.Logger,
	}
	comments := application.CommentService{
		Posts:    deps.Posts,
		Comments: deps.Comments,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	groups := application.GroupService{
		Groups: deps.Groups,
		Logger: deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			Posts:    posts,
			Comments: comments,
			Groups:   groups,
			Logger:   deps.Logger,
		},
	}
}

func NewInMemoryModule(seedGroups []entities.Group, pages application.PageConfig, logger *slog.Logger) Module {
	store := memory.NewStore(seedGroups)
	module := NewModule(Dependencies{
		Posts:    store,
		Comments: store,
		Groups:   store,
		Clock:    store,
		IDGen:    store,
		Pages:    pages,
		Logger:   logger,
	})
	module.Store = store
	return module
}
