package esign_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akaunku/akaunku-backend/internal/clients/esign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTemplates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/templates", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Auth-Token"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{
				{"id": "t1", "name": "Engagement Letter", "slug": "engagement-letter"},
			},
		})
	}))
	defer srv.Close()

	client := esign.NewClient(srv.URL, "test-key")
	templates, err := client.ListTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "t1", templates[0].ID)
	assert.Equal(t, "Engagement Letter", templates[0].Name)
}

func TestCreateSubmission(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/submissions", r.URL.Path)

		var req esign.SubmissionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "t1", req.TemplateID)
		require.Len(t, req.Submitters, 1)

		json.NewEncoder(w).Encode(esign.Submission{
			ID:         "sub-9",
			TemplateID: req.TemplateID,
			Status:     "pending",
			Submitters: []esign.Submitter{{Email: req.Submitters[0].Email, Slug: "abc123"}},
		})
	}))
	defer srv.Close()

	client := esign.NewClient(srv.URL, "test-key")
	submission, err := client.CreateSubmission(context.Background(), esign.SubmissionRequest{
		TemplateID: "t1",
		SendEmail:  true,
		Submitters: []esign.Submitter{{Email: "client@example.my"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "sub-9", submission.ID)
	assert.Equal(t, "abc123", submission.Submitters[0].Slug)
}

func TestProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "template not found"})
	}))
	defer srv.Close()

	client := esign.NewClient(srv.URL, "test-key")
	_, err := client.CreateSubmission(context.Background(), esign.SubmissionRequest{TemplateID: "missing"})
	require.Error(t, err)

	var provErr *esign.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusUnprocessableEntity, provErr.StatusCode)
	assert.Equal(t, "template not found", provErr.Message)
}

func TestURLConstruction(t *testing.T) {
	client := esign.NewClient("https://sign.example.com", "k")
	assert.Equal(t, "https://sign.example.com/s/abc123", client.SigningURL("abc123"))
	assert.Equal(t, "https://sign.example.com/templates/engagement-letter/edit", client.BuilderURL("engagement-letter"))
}
