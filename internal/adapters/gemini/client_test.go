package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Options{})
	require.Error(t, err)
}

func TestGenerate(t *testing.T) {
	var gotPath string
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": "A charming hand-turned bowl."}},
				},
			}},
		})
	}))
	defer srv.Close()

	client, err := NewClient(Options{APIKey: "key", BaseURL: srv.URL, Model: "gemini-1.5-flash"})
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), "write copy")
	require.NoError(t, err)

	assert.Equal(t, "A charming hand-turned bowl.", text)
	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)
	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "write copy", gotReq.Contents[0].Parts[0].Text)
}

func TestGenerate_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	client, err := NewClient(Options{APIKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt")
	require.Error(t, err)
}

func TestGenerate_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewClient(Options{APIKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt")
	require.Error(t, err)
}
