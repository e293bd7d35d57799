package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	contentservice "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service"
	followservice "github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/galinashashina/api-final-yatube/internal/platform/httpserver/docs"
)

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	content contentservice.Module
	follow  followservice.Module
}

func New(
	content contentservice.Module,
	follow followservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		content: content,
		follow:  follow,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/v1/posts/{$}", s.handleListPosts)
	s.mux.HandleFunc("POST /api/v1/posts/{$}", s.handleCreatePost)
	s.mux.HandleFunc("GET /api/v1/posts/{post_id}/{$}", s.handleGetPost)
	s.mux.HandleFunc("PUT /api/v1/posts/{post_id}/{$}", s.handleReplacePost)
	s.mux.HandleFunc("PATCH /api/v1/posts/{post_id}/{$}", s.handlePatchPost)
	s.mux.HandleFunc("DELETE /api/v1/posts/{post_id}/{$}", s.handleDeletePost)

	s.mux.HandleFunc("GET /api/v1/posts/{post_id}/comments/{$}", s.handleListComments)
	s.mux.HandleFunc("POST /api/v1/posts/{post_id}/comments/{$}", s.handleCreateComment)
	s.mux.HandleFunc("GET /api/v1/posts/{post_id}/comments/{comment_id}/{$}", s.handleGetComment)
	s.mux.HandleFunc("PUT /api/v1/posts/{post_id}/comments/{comment_id}/{$}", s.handleReplaceComment)
	s.mux.HandleFunc("PATCH /api/v1/posts/{post_id}/comments/{comment_id}/{$}", s.handlePatchComment)
	s.mux.HandleFunc("DELETE /api/v1/posts/{post_id}/comments/{comment_id}/{$}", s.handleDeleteComment)

	s.mux.HandleFunc("GET /api/v1/follow/{$}", s.handleListFollows)
	s.mux.HandleFunc("POST /api/v1/follow/{$}", s.handleCreateFollow)

	s.mux.HandleFunc("GET /api/v1/groups/{$}", s.handleListGroups)
	s.mux.HandleFunc("GET /api/v1/groups/{group_id}/{$}", s.handleGetGroup)
}

// requester resolves the authenticated identity the outer auth layer put on
// the request. Empty means anonymous.
func requester(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-Id"))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
