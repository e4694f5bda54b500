package mandrill_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sendbox/pkg/mandrill"
)

func TestClient_AddTemplate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/templates/add.json", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "test-key", payload["key"])
		assert.Equal(t, "demo-welcome", payload["name"])
		assert.Contains(t, payload["code"], `mc:edit="main"`)
		assert.Equal(t, true, payload["publish"])

		_ = json.NewEncoder(w).Encode(mandrill.TemplateInfo{
			Slug:        "demo-welcome",
			Name:        "demo-welcome",
			PublishName: "demo-welcome",
			CreatedAt:   "2026-08-26 10:00:00",
		})
	})

	info, err := client.AddTemplate(context.Background(), &mandrill.Template{
		Name:    "demo-welcome",
		Subject: "Welcome to *|COMPANY|*",
		Code:    `<div mc:edit="main">Default content</div>`,
		Text:    "Default content",
		Labels:  []string{"demo"},
		Publish: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "demo-welcome", info.Slug)
	assert.Equal(t, "demo-welcome", info.PublishName)
}

func TestClient_GetTemplate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/templates/info.json", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "demo-welcome", payload["name"])

		_ = json.NewEncoder(w).Encode(mandrill.TemplateInfo{
			Name:    "demo-welcome",
			Subject: "Welcome",
			Code:    "<div>stored</div>",
		})
	})

	info, err := client.GetTemplate(context.Background(), "demo-welcome")
	require.NoError(t, err)
	assert.Equal(t, "Welcome", info.Subject)
}

func TestClient_ListTemplates(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/templates/list.json", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "demo", payload["label"])

		_ = json.NewEncoder(w).Encode([]mandrill.TemplateInfo{
			{Name: "demo-welcome"},
			{Name: "demo-reset"},
		})
	})

	infos, err := client.ListTemplates(context.Background(), "demo")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "demo-reset", infos[1].Name)
}

func TestClient_DeleteTemplate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/templates/delete.json", r.URL.Path)
		_ = json.NewEncoder(w).Encode(mandrill.TemplateInfo{Name: "demo-welcome"})
	})

	info, err := client.DeleteTemplate(context.Background(), "demo-welcome")
	require.NoError(t, err)
	assert.Equal(t, "demo-welcome", info.Name)
}

func TestClient_RenderTemplate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/templates/render.json", r.URL.Path)

		var payload struct {
			TemplateName    string                     `json:"template_name"`
			TemplateContent []mandrill.TemplateContent `json:"template_content"`
			MergeVars       []mandrill.Var             `json:"merge_vars"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "demo-welcome", payload.TemplateName)
		require.Len(t, payload.MergeVars, 1)

		_ = json.NewEncoder(w).Encode(map[string]string{"html": "<p>Hello Ann</p>"})
	})

	html, err := client.RenderTemplate(context.Background(), &mandrill.RenderRequest{
		TemplateName: "demo-welcome",
		MergeVars:    []mandrill.Var{{Name: "NAME", Content: "Ann"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello Ann</p>", html)
}
