package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/tieubaoca/csbot-be/types"
)

func TestAddManualKnowledgeThenList(t *testing.T) {
	router := newTestRouter(t, &fakeAI{reply: "ok"})

	w := doJSON(t, router, http.MethodPost, "/api/v1/knowledge", types.KnowledgeRequest{
		Title:   "Opening hours",
		Content: "We are open 9-5.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created types.KnowledgeEntry
	decodeJSON(t, w, &created)
	if created.ID == 0 {
		t.Error("Expected assigned id")
	}
	if created.SourceType != types.SourceTypeManual {
		t.Errorf("Expected source type manual, got %q", created.SourceType)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/knowledge", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var entries []types.KnowledgeEntry
	decodeJSON(t, w, &entries)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "Opening hours" || entries[0].Content != "We are open 9-5." {
		t.Errorf("Listed entry does not match submission: %+v", entries[0])
	}
}

func TestListKnowledgeEmptyIsArray(t *testing.T) {
	router := newTestRouter(t, &fakeAI{reply: "ok"})

	w := doJSON(t, router, http.MethodGet, "/api/v1/knowledge", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("Expected empty JSON array, got %q", w.Body.String())
	}
}

func TestAddKnowledgeRejectsUnknownShape(t *testing.T) {
	router := newTestRouter(t, &fakeAI{reply: "ok"})

	w := doJSON(t, router, http.MethodPost, "/api/v1/knowledge", map[string]string{"title": "only a title"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	var res types.ErrorResponse
	decodeJSON(t, w, &res)
	if res.Error == "" {
		t.Error("Expected error message in body")
	}
}

func TestAddKnowledgeFetchFailure(t *testing.T) {
	router := newTestRouter(t, &fakeAI{reply: "ok"})

	// Nothing listens on this port.
	w := doJSON(t, router, http.MethodPost, "/api/v1/knowledge", types.KnowledgeRequest{
		URL: "http://127.0.0.1:1/faq",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var res types.ErrorResponse
	decodeJSON(t, w, &res)
	if !strings.Contains(res.Error, "failed to fetch URL") {
		t.Errorf("Expected fetch error message, got %q", res.Error)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/knowledge", nil)
	var entries []types.KnowledgeEntry
	decodeJSON(t, w, &entries)
	if len(entries) != 0 {
		t.Errorf("Expected no entry after failed fetch, got %d", len(entries))
	}
}

func TestDeleteKnowledgeTwice(t *testing.T) {
	router := newTestRouter(t, &fakeAI{reply: "ok"})

	w := doJSON(t, router, http.MethodPost, "/api/v1/knowledge", types.KnowledgeRequest{
		Title:   "Temp",
		Content: "to be removed",
	})
	var created types.KnowledgeEntry
	decodeJSON(t, w, &created)

	path := fmt.Sprintf("/api/v1/knowledge/%d", created.ID)

	w = doJSON(t, router, http.MethodDelete, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on first delete, got %d", w.Code)
	}
	var msg types.MessageResponse
	decodeJSON(t, w, &msg)
	if msg.Message == "" {
		t.Error("Expected confirmation message")
	}

	w = doJSON(t, router, http.MethodDelete, path, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 on second delete, got %d", w.Code)
	}
}

func TestDeleteKnowledgeBadID(t *testing.T) {
	router := newTestRouter(t, &fakeAI{reply: "ok"})

	w := doJSON(t, router, http.MethodDelete, "/api/v1/knowledge/not-a-number", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}
