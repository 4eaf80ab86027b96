package handlers

import (
	"context"
	"testing"

	"github.com/hoanghai1803/newsgenie/internal/history"
	"github.com/hoanghai1803/newsgenie/internal/pipeline"
)

// newTestStore opens an in-memory session log scoped to the test.
func newTestStore(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.Open()
	if err != nil {
		t.Fatalf("opening history store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// fakeRunner returns canned results and records what it was asked.
type fakeRunner struct {
	results []pipeline.State

	lastText       string
	lastCategories []string
	lastQuery      string
}

func (f *fakeRunner) RunTurn(_ context.Context, text string, categories []string, queryHint string) []pipeline.State {
	f.lastText = text
	f.lastCategories = categories
	f.lastQuery = queryHint
	return f.results
}
