package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockFailureAuditUsecase) {
	t.Helper()

	auditUC := mockUsecase.NewMockFailureAuditUsecase(t)

	return &PushHandler{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		auditUC: auditUC,
	}, auditUC
}

func pushBody(t *testing.T, event *service.SyncFailureEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/sync-failures"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, headers map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func testEvent() *service.SyncFailureEvent {
	return &service.SyncFailureEvent{
		RequestID:      "req-from-event",
		NotificationID: "4b8a2c1e-7c1d-4f7e-9a0b-2f3c4d5e6f70",
		Collection:     "cart",
		Operation:      "create",
		UserID:         "user-1",
		ProductID:      "P1",
		StatusCode:     500,
		Message:        "boom",
		OccurredAt:     "2024-05-01T12:00:00Z",
	}
}

func TestPushHandler_RecordsEventWithRequestID(t *testing.T) {
	h, auditUC := createTestPushHandler(t)

	auditUC.EXPECT().
		Record(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-attr"
		}), mock.MatchedBy(func(e *service.SyncFailureEvent) bool {
			return e.NotificationID == testEvent().NotificationID && e.ProductID == "P1"
		})).
		Return(true, nil)

	rec := servePush(h, pushBody(t, testEvent(), map[string]string{"request_id": "req-attr"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ExtractRequestIDPriority(t *testing.T) {
	h, _ := createTestPushHandler(t)
	event := testEvent()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "req-attr"}
	assert.Equal(t, "req-attr", h.extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "req-from-event", h.extractRequestID(context.Background(), &msg, event))

	event.RequestID = ""
	assert.NotEmpty(t, h.extractRequestID(context.Background(), &msg, event))
}

func TestPushHandler_Responses(t *testing.T) {
	tests := []struct {
		name     string
		recorded bool
		err      error
		wantCode int
	}{
		{name: "duplicate is acknowledged", recorded: false, wantCode: http.StatusOK},
		{name: "malformed event is dropped", err: domainerrors.ErrInvalidEvent, wantCode: http.StatusOK},
		{name: "store outage asks for redelivery", err: errors.New("bucket unavailable"), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auditUC := createTestPushHandler(t)
			auditUC.EXPECT().Record(mock.Anything, mock.Anything).Return(tt.recorded, tt.err)

			rec := servePush(h, pushBody(t, testEvent(), nil), nil)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_RejectsUndecodableBodies(t *testing.T) {
	h, _ := createTestPushHandler(t)

	rec := servePush(h, `{"message":{"data":"%%%"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	rec = servePush(h, `{"message":{"data":"`+notJSON+`"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	h, auditUC := createTestPushHandler(t)
	h.verifyPushAuth = true
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good" {
			return nil, errors.New("bad signature")
		}
		assert.Equal(t, "http://example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	rec := servePush(h, pushBody(t, testEvent(), nil), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, pushBody(t, testEvent(), nil), map[string]string{"Authorization": "Bearer forged"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	auditUC.EXPECT().Record(mock.Anything, mock.Anything).Return(true, nil).Once()
	rec = servePush(h, pushBody(t, testEvent(), nil), map[string]string{"Authorization": "Bearer good"})
	assert.Equal(t, http.StatusOK, rec.Code)
}
