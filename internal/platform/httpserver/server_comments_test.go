package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	contenthttp "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/transport/http"
)

func TestCommentsRequireExistingParent(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodGet, "/api/v1/posts/missing/comments/", "", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("list under missing post: expected 404, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodPost, "/api/v1/posts/missing/comments/", "alice", `{"text":"hi"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("create under missing post: expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateCommentForcesAuthorAndPost(t *testing.T) {
	server := newTestServer()
	post := createPost(t, server, "alice", `{"text":"parent"}`)

	path := fmt.Sprintf("/api/v1/posts/%s/comments/", post.ID)
	rr := doJSON(t, server, http.MethodPost, path, "bob", `{"text":"nice one"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var resp contenthttp.GetCommentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode comment: %v", err)
	}
	if resp.Item.Author != "bob" || resp.Item.Post != post.ID {
		t.Fatalf("unexpected comment fields: %+v", resp.Item)
	}
}

func TestAnonymousCommentRejected(t *testing.T) {
	server := newTestServer()
	post := createPost(t, server, "alice", `{"text":"parent"}`)

	path := fmt.Sprintf("/api/v1/posts/%s/comments/", post.ID)
	rr := doJSON(t, server, http.MethodPost, path, "", `{"text":"hi"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestCommentListScopedToParent(t *testing.T) {
	server := newTestServer()
	first := createPost(t, server, "alice", `{"text":"first"}`)
	second := createPost(t, server, "alice", `{"text":"second"}`)

	rr := doJSON(t, server, http.MethodPost, fmt.Sprintf("/api/v1/posts/%s/comments/", first.ID), "bob", `{"text":"on first"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	rr = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/v1/posts/%s/comments/", second.ID), "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var list contenthttp.ListCommentsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) != 0 {
		t.Fatalf("second post should have no comments, got %d", len(list.Items))
	}
}

func TestCommentHiddenUnderWrongParent(t *testing.T) {
	server := newTestServer()
	first := createPost(t, server, "alice", `{"text":"first"}`)
	second := createPost(t, server, "alice", `{"text":"second"}`)

	rr := doJSON(t, server, http.MethodPost, fmt.Sprintf("/api/v1/posts/%s/comments/", first.ID), "bob", `{"text":"on first"}`)
	var created contenthttp.GetCommentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}

	rr = doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/v1/posts/%s/comments/%s/", second.ID, created.Item.ID), "", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 under wrong parent, got %d", rr.Code)
	}
}

func TestAuthorOnlyCommentMutation(t *testing.T) {
	server := newTestServer()
	post := createPost(t, server, "alice", `{"text":"parent"}`)

	rr := doJSON(t, server, http.MethodPost, fmt.Sprintf("/api/v1/posts/%s/comments/", post.ID), "bob", `{"text":"original"}`)
	var created contenthttp.GetCommentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	path := fmt.Sprintf("/api/v1/posts/%s/comments/%s/", post.ID, created.Item.ID)

	// The post's author still may not touch someone else's comment.
	rr = doJSON(t, server, http.MethodPatch, path, "alice", `{"text":"hijacked"}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPatch, path, "bob", `{"text":"edited"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var updated contenthttp.GetCommentResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Item.Text != "edited" {
		t.Fatalf("expected edited, got %q", updated.Item.Text)
	}

	rr = doJSON(t, server, http.MethodDelete, path, "charlie", "")
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on delete, got %d", rr.Code)
	}
	rr = doJSON(t, server, http.MethodDelete, path, "bob", "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}
