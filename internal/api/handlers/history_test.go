package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hoanghai1803/newsgenie/internal/models"
)

func TestGetHistoryEmpty(t *testing.T) {
	store := newTestStore(t)

	r := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	w := httptest.NewRecorder()

	GetHistory(store).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}

	var turns []models.Turn
	if err := json.NewDecoder(w.Body).Decode(&turns); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("got %d turns, want 0", len(turns))
	}
}

func TestGetHistoryWithLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, content := range []string{"one", "two", "three"} {
		if _, err := store.Append(ctx, "user", content); err != nil {
			t.Fatalf("Append(%q): %v", content, err)
		}
	}

	r := httptest.NewRequest(http.MethodGet, "/api/history?limit=2", nil)
	w := httptest.NewRecorder()

	GetHistory(store).ServeHTTP(w, r)

	var turns []models.Turn
	if err := json.NewDecoder(w.Body).Decode(&turns); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want 2", len(turns))
	}
	if turns[0].Content != "two" || turns[1].Content != "three" {
		t.Errorf("got (%q, %q), want newest two in order", turns[0].Content, turns[1].Content)
	}
}

func TestGetHistoryInvalidLimit(t *testing.T) {
	store := newTestStore(t)

	r := httptest.NewRequest(http.MethodGet, "/api/history?limit=banana", nil)
	w := httptest.NewRecorder()

	GetHistory(store).ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetCategories(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()

	http.HandlerFunc(GetCategories).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}

	var cats []string
	if err := json.NewDecoder(w.Body).Decode(&cats); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(cats) != 5 {
		t.Errorf("got %d categories, want 5", len(cats))
	}
	if cats[0] != "Top US" {
		t.Errorf("cats[0] = %q, want Top US", cats[0])
	}
}
