package notify_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistance/internal/adapters/out/notify"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_Client_Notify_PostsPayload(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notifications", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := notify.NewClient(server.URL, discardLogger())
	client.Notify(context.Background(), "driver-1", "New assignment", "You have a new assignment")

	assert.Equal(t, map[string]string{
		"recipientId": "driver-1",
		"title":       "New assignment",
		"body":        "You have a new assignment",
	}, got)
}

func Test_Client_Notify_ServerError_DoesNotPanic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := notify.NewClient(server.URL, discardLogger())

	assert.NotPanics(t, func() {
		client.Notify(context.Background(), "driver-1", "title", "body")
	})
}

func Test_Client_Notify_UnreachableService_DoesNotPanic(t *testing.T) {
	client := notify.NewClient("http://127.0.0.1:1", discardLogger())

	assert.NotPanics(t, func() {
		client.Notify(context.Background(), "driver-1", "title", "body")
	})
}
