package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishSyncFailure(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.SyncFailureEvent{
		RequestID:      "req-1",
		NotificationID: "n-1",
		Collection:     "cart",
		Operation:      "create",
		UserID:         "u-1",
		ProductID:      "P1",
		StatusCode:     500,
		Message:        "boom",
	}

	require.NoError(t, publisher.PublishSyncFailure(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "n-1", received.Message.MessageID)
	assert.Equal(t, "cart", received.Message.Attributes["collection"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.SyncFailureEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := publisher.PublishSyncFailure(context.Background(), &service.SyncFailureEvent{NotificationID: "n-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
