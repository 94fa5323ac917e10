package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenlabs/knowhub/internal/api"
)

func wikiProjects(start, n int, owner string) []map[string]any {
	items := make([]map[string]any, 0, n)
	now := time.Now().UTC().Format(time.RFC3339)
	for i := 0; i < n; i++ {
		items = append(items, map[string]any{
			"id":       fmt.Sprintf("proj-%d", start+i),
			"name":     fmt.Sprintf("repo-%d", start+i),
			"repo_url": fmt.Sprintf("https://git.example.com/repo-%d", start+i),
			"owner":    owner,
			"generations": []map[string]any{
				{"id": fmt.Sprintf("gen-%d", start+i), "status": "COMPLETED", "created_at": now},
			},
		})
	}
	return items
}

func TestCodeLoadMoreAppendsPages(t *testing.T) {
	_, client := docTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		var items []map[string]any
		switch page {
		case 1, 2:
			items = wikiProjects((page-1)*25+1, 25, "alice")
		case 3:
			items = wikiProjects(51, 10, "alice")
		}
		json.NewEncoder(w).Encode(map[string]any{"data": items})
	})

	model := NewCodeModel(client, "alice")

	for page := 1; page <= 3; page++ {
		cmd := (&model).loadPageCmd()
		require.NotNil(t, cmd)
		model, _ = model.Update(cmd())
	}

	assert.Len(t, model.visibleProjects(), 60)
	assert.False(t, model.loader.HasMore())

	// m with nothing left is inert.
	_, cmd := model.Update(keyRunes("m"))
	assert.Nil(t, cmd)
}

func TestCodeHidesOtherOwnersProjects(t *testing.T) {
	model := NewCodeModel(nil, "alice")
	_, tok := model.loader.StartPage()
	model.loader.ApplyPage(tok, []api.Project{
		{ID: "p1", Name: "mine", Owner: "alice", Generations: []api.Generation{
			{ID: "g1", Status: api.GenerationCompleted},
		}},
		{ID: "p2", Name: "theirs", Owner: "bob", Generations: []api.Generation{
			{ID: "g2", Status: api.GenerationCompleted},
		}},
	})

	projects := model.visibleProjects()
	require.Len(t, projects, 1)
	assert.Equal(t, "p1", projects[0].ID)
}

func TestCodeCancelFiresOnlyAfterConfirm(t *testing.T) {
	cancelled := ""
	_, client := docTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			cancelled = r.URL.Path
			json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	model := NewCodeModel(client, "alice")
	_, tok := model.loader.StartPage()
	model.loader.ApplyPage(tok, []api.Project{
		{ID: "p1", Name: "mine", Owner: "alice", Generations: []api.Generation{
			{ID: "gen-7", Status: api.GenerationRunning},
		}},
	})

	model, _ = model.Update(keyRunes("x"))
	_, pending := model.cancel.Pending()
	require.True(t, pending)
	assert.Empty(t, cancelled, "request alone must not fire the call")

	// n dismisses.
	model, _ = model.Update(keyRunes("n"))
	_, pending = model.cancel.Pending()
	assert.False(t, pending)
	assert.Empty(t, cancelled)

	model, _ = model.Update(keyRunes("x"))
	model, cmd := model.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	model, _ = model.Update(cmd())
	assert.Equal(t, "/api/wiki/generations/gen-7/cancel", cancelled)
}

func TestCodeCancelSkipsTerminalGenerations(t *testing.T) {
	model := NewCodeModel(nil, "alice")
	_, tok := model.loader.StartPage()
	model.loader.ApplyPage(tok, []api.Project{
		{ID: "p1", Name: "done", Owner: "alice", Generations: []api.Generation{
			{ID: "g1", Status: api.GenerationCompleted},
		}},
	})

	model, _ = model.Update(keyRunes("x"))
	_, pending := model.cancel.Pending()
	assert.False(t, pending, "terminal generations cannot be cancelled")
}

func TestCodeViewShowsStatusBadge(t *testing.T) {
	model := NewCodeModel(nil, "alice")
	model.width = 120
	_, tok := model.loader.StartPage()
	model.loader.ApplyPage(tok, []api.Project{
		{ID: "p1", Name: "wiki-repo", Owner: "alice", Generations: []api.Generation{
			{ID: "g1", Status: api.GenerationRunning},
		}},
	})

	view := model.View()
	assert.Contains(t, view, "wiki-repo")
	assert.Contains(t, view, "RUNNING")
}
