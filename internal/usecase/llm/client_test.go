package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(url string) Config {
	return Config{
		APIURL:      url,
		Model:       "llama3",
		MaxTokens:   200,
		Temperature: 0.5,
		TopP:        0.9,
		Timeout:     time.Second,
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "llama3", req.Model)
		require.Equal(t, "summarize this", req.Prompt)
		require.False(t, req.Stream)
		require.Equal(t, 200, req.Options.NumPredict)

		_ = json.NewEncoder(w).Encode(generateResponse{Response: "a summary"})
	}))
	defer server.Close()

	client := NewClient(nil, testConfig(server.URL), nil)

	text, err := client.Generate(context.Background(), "summarize this")
	require.NoError(t, err)
	require.Equal(t, "a summary", text)
}

func TestGenerateNon2xx(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(nil, testConfig(server.URL), nil)

	_, err := client.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrService)
}

func TestGenerateTimeout(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(block)

	cfg := testConfig(server.URL)
	cfg.Timeout = 50 * time.Millisecond
	client := NewClient(nil, cfg, nil)

	_, err := client.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrTimeout)
}

func TestGenerateMalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(nil, testConfig(server.URL), nil)

	_, err := client.Generate(context.Background(), "prompt")
	require.ErrorIs(t, err, ErrService)
}
