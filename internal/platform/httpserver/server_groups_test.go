package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	contenthttp "github.com/galinashashina/api-final-yatube/contexts/publishing/content-service/transport/http"
)

func TestGroupsAreReadable(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodGet, "/api/v1/groups/", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rr.Code)
	}
	var list contenthttp.ListGroupsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Slug != "go" {
		t.Fatalf("unexpected groups: %+v", list.Items)
	}

	rr = doJSON(t, server, http.MethodGet, "/api/v1/groups/group-1/", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rr.Code)
	}
	var one contenthttp.GetGroupResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &one); err != nil {
		t.Fatalf("decode group: %v", err)
	}
	if one.Item.Title != "Go" {
		t.Fatalf("unexpected group: %+v", one.Item)
	}
}

func TestUnknownGroupIs404(t *testing.T) {
	server := newTestServer()
	rr := doJSON(t, server, http.MethodGet, "/api/v1/groups/missing/", "", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
