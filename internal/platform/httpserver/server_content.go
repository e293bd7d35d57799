package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	contenterrors "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/domain/errors"
	contenthttp "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/transport/http"
)

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 0
	if raw := query.Get("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			writeContentError(w, http.StatusBadRequest, "invalid_page", "page must be a positive integer")
			return
		}
		page = value
	}
	pageSize := 0
	if raw := query.Get("page_size"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			writeContentError(w, http.StatusBadRequest, "invalid_page_size", "page_size must be a positive integer")
			return
		}
		pageSize = value
	}

	resp, err := s.content.Handler.ListPostsHandler(r.Context(), page, pageSize)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.GetPostHandler(r.Context(), r.PathValue("post_id"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	user := requester(r)
	if user == "" {
		writeContentError(w, http.StatusUnauthorized, "missing_user", "authentication required")
		return
	}

	var req contenthttp.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.CreatePostHandler(r.Context(), user, req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleReplacePost(w http.ResponseWriter, r *http.Request) {
	s.updatePost(w, r, false)
}

func (s *Server) handlePatchPost(w http.ResponseWriter, r *http.Request) {
	s.updatePost(w, r, true)
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request, partial bool) {
	user := requester(r)
	if user == "" {
		writeContentError(w, http.StatusUnauthorized, "missing_user", "authentication required")
		return
	}

	var req contenthttp.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.UpdatePostHandler(r.Context(), user, r.PathValue("post_id"), req, partial)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	user := requester(r)
	if user == "" {
		writeContentError(w, http.StatusUnauthorized, "missing_user", "authentication required")
		return
	}

	if err := s.content.Handler.DeletePostHandler(r.Context(), user, r.PathValue("post_id")); err != nil {
		writeContentDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.ListCommentsHandler(r.Context(), r.PathValue("post_id"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetComment(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.GetCommentHandler(r.Context(), r.PathValue("post_id"), r.PathValue("comment_id"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	user := requester(r)
	if user == "" {
		writeContentError(w, http.StatusUnauthorized, "missing_user", "authentication required")
		return
	}

	var req contenthttp.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.CreateCommentHandler(r.Context(), user, r.PathValue("post_id"), req)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleReplaceComment(w http.ResponseWriter, r *http.Request) {
	s.updateComment(w, r, false)
}

func (s *Server) handlePatchComment(w http.ResponseWriter, r *http.Request) {
	s.updateComment(w, r, true)
}

func (s *Server) updateComment(w http.ResponseWriter, r *http.Request, partial bool) {
	user := requester(r)
	if user == "" {
		writeContentError(w, http.StatusUnauthorized, "missing_user", "authentication required")
		return
	}

	var req contenthttp.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeContentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.content.Handler.UpdateCommentHandler(
		r.Context(),
		user,
		r.PathValue("post_id"),
		r.PathValue("comment_id"),
		req,
		partial,
	)
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	user := requester(r)
	if user == "" {
		writeContentError(w, http.StatusUnauthorized, "missing_user", "authentication required")
		return
	}

	err := s.content.Handler.DeleteCommentHandler(r.Context(), user, r.PathValue("post_id"), r.PathValue("comment_id"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.ListGroupsHandler(r.Context())
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	resp, err := s.content.Handler.GetGroupHandler(r.Context(), r.PathValue("group_id"))
	if err != nil {
		writeContentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeContentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, contenterrors.ErrPostNotFound):
		writeContentError(w, http.StatusNotFound, "post_not_found", err.Error())
	case errors.Is(err, contenterrors.ErrCommentNotFound):
		writeContentError(w, http.StatusNotFound, "comment_not_found", err.Error())
	case errors.Is(err, contenterrors.ErrGroupNotFound):
		writeContentError(w, http.StatusNotFound, "group_not_found", err.Error())
	case errors.Is(err, contenterrors.ErrPageNotFound):
		writeContentError(w, http.StatusNotFound, "page_not_found", err.Error())
	case errors.Is(err, contenterrors.ErrNotAuthor):
		writeContentError(w, http.StatusForbidden, "not_author", err.Error())
	case errors.Is(err, contenterrors.ErrUnknownGroup):
		writeContentError(w, http.StatusBadRequest, "unknown_group", err.Error())
	case errors.Is(err, contenterrors.ErrInvalidPostInput):
		writeContentError(w, http.StatusBadRequest, "invalid_post", err.Error())
	case errors.Is(err, contenterrors.ErrInvalidCommentInput):
		writeContentError(w, http.StatusBadRequest, "invalid_comment", err.Error())
	default:
		writeContentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeContentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, contenthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
