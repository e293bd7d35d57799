package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	followerrors "github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/domain/errors"
	followhttp "github.com/galinashashina/api-final-yatube/contexts/social-graph/follow-service/transport/http"
)

// The follow surface is never anonymous, reads included.

func (s *Server) handleListFollows(w http.ResponseWriter, r *http.Request) {
	user := requester(r)
	if user == "" {
		writeFollowError(w, http.StatusUnauthorized, "missing_user", "authentication required")
		return
	}

	resp, err := s.follow.Handler.ListFollowsHandler(r.Context(), user, r.URL.Query().Get("search"))
	if err != nil {
		writeFollowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateFollow(w http.ResponseWriter, r *http.Request) {
	user := requester(r)
	if user == "" {
		writeFollowError(w, http.StatusUnauthorized, "missing_user", "authentication required")
		return
	}

	var req followhttp.CreateFollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFollowError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.follow.Handler.CreateFollowHandler(r.Context(), user, req)
	if err != nil {
		writeFollowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func writeFollowDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, followerrors.ErrSelfFollow):
		writeFollowError(w, http.StatusBadRequest, "self_follow", err.Error())
	case errors.Is(err, followerrors.ErrAlreadyFollowing):
		writeFollowError(w, http.StatusBadRequest, "already_following", err.Error())
	case errors.Is(err, followerrors.ErrUserNotFound):
		writeFollowError(w, http.StatusBadRequest, "user_not_found", err.Error())
	case errors.Is(err, followerrors.ErrInvalidFollowInput):
		writeFollowError(w, http.StatusBadRequest, "invalid_follow", err.Error())
	default:
		writeFollowError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeFollowError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, followhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
