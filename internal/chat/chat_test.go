package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplySendsInstructionAndHistory(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Try the Sadhya "},{"text":"at Thrissur."}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", Model: "test-model", BaseURL: srv.URL})
	history := []Message{
		{Role: RoleUser, Text: "Hi"},
		{Role: RoleModel, Text: "Namaskaram!"},
	}

	reply, err := c.Reply(context.Background(), history, "Where should I eat?")
	require.NoError(t, err)
	assert.Equal(t, "Try the Sadhya at Thrissur.", reply)

	assert.Equal(t, SystemInstruction, got.SystemInstruction.Parts[0].Text)
	require.Len(t, got.Contents, 3)
	assert.Equal(t, "model", got.Contents[1].Role)
	assert.Equal(t, "Where should I eat?", got.Contents[2].Parts[0].Text)
}

func TestReplyTrimsHistory(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	history := make([]Message, 50)
	for i := range history {
		history[i] = Message{Role: RoleUser, Text: "x"}
	}

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.Reply(context.Background(), history, "q")
	require.NoError(t, err)
	assert.Len(t, got.Contents, maxHistory+1)
}

func TestReplyErrors(t *testing.T) {
	_, err := NewClient(Config{}).Reply(context.Background(), nil, "hi")
	assert.ErrorIs(t, err, ErrNotConfigured)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	_, err = NewClient(Config{APIKey: "bad", BaseURL: srv.URL}).Reply(context.Background(), nil, "hi")
	assert.ErrorContains(t, err, "API key not valid")

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer empty.Close()

	_, err = NewClient(Config{APIKey: "k", BaseURL: empty.URL}).Reply(context.Background(), nil, "hi")
	assert.ErrorIs(t, err, ErrEmptyReply)
}
