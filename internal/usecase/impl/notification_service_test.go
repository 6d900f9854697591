package impl

import (
	"context"
	"strconv"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T, capacity int) (*notificationService, *mockService.MockEventPublisher) {
	t.Helper()

	publisher := mockService.NewMockEventPublisher(t)
	srv := NewNotificationService(NotificationServiceParams{
		Config:    &config.Config{Sync: &config.SyncConfig{InboxSize: capacity}},
		Publisher: publisher,
		Logger:    newTestLogger(),
	}).(*notificationService)
	srv.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return srv, publisher
}

func TestNotificationService_ReportPublishesEvent(t *testing.T) {
	srv, publisher := createTestNotificationService(t, 5)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	publisher.EXPECT().
		PublishSyncFailure(mock.Anything, mock.MatchedBy(func(e *service.SyncFailureEvent) bool {
			return e.RequestID == "req-42" &&
				e.Collection == "cart" &&
				e.Operation == "create" &&
				e.ProductID == "P1" &&
				e.StatusCode == 500 &&
				e.OccurredAt == "2024-05-01T12:00:00Z"
		})).
		Return(nil).
		Once()

	srv.Report(ctx, &entity.SyncNotification{
		Collection: entity.CollectionCart,
		Operation:  entity.OperationCreate,
		UserID:     "user-1",
		ProductID:  "P1",
		StatusCode: 500,
		Message:    "boom",
	})

	list := srv.List()
	require.Len(t, list, 1)
	assert.NotEqual(t, uuid.Nil, list[0].ID)
	assert.Equal(t, srv.now(), list[0].CreatedAt)
}

func TestNotificationService_PublishErrorIsNotFatal(t *testing.T) {
	srv, publisher := createTestNotificationService(t, 5)

	publisher.EXPECT().PublishSyncFailure(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	srv.Report(context.Background(), &entity.SyncNotification{Collection: entity.CollectionWishlist, Message: "x"})
	assert.Len(t, srv.List(), 1)
}

func TestNotificationService_InboxIsBoundedNewestFirst(t *testing.T) {
	srv, publisher := createTestNotificationService(t, 3)
	publisher.EXPECT().PublishSyncFailure(mock.Anything, mock.Anything).Return(nil)

	for i := range 5 {
		srv.Report(context.Background(), &entity.SyncNotification{
			Collection: entity.CollectionCart,
			ProductID:  "P" + strconv.Itoa(i),
		})
	}

	list := srv.List()
	require.Len(t, list, 3)
	assert.Equal(t, "P4", list[0].ProductID)
	assert.Equal(t, "P3", list[1].ProductID)
	assert.Equal(t, "P2", list[2].ProductID)
}

func TestNotificationService_Dismiss(t *testing.T) {
	srv, publisher := createTestNotificationService(t, 3)
	publisher.EXPECT().PublishSyncFailure(mock.Anything, mock.Anything).Return(nil)

	srv.Report(context.Background(), &entity.SyncNotification{ProductID: "A"})
	srv.Report(context.Background(), &entity.SyncNotification{ProductID: "B"})

	list := srv.List()
	require.NoError(t, srv.Dismiss(list[0].ID))

	remaining := srv.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, "A", remaining[0].ProductID)

	err := srv.Dismiss(list[0].ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestNotificationService_ListReturnsCopies(t *testing.T) {
	srv, publisher := createTestNotificationService(t, 3)
	publisher.EXPECT().PublishSyncFailure(mock.Anything, mock.Anything).Return(nil)

	srv.Report(context.Background(), &entity.SyncNotification{Message: "original"})
	srv.List()[0].Message = "changed"

	assert.Equal(t, "original", srv.List()[0].Message)
}

func TestNotificationService_DefaultCapacity(t *testing.T) {
	srv := NewNotificationService(NotificationServiceParams{
		Publisher: mockService.NewMockEventPublisher(t),
		Logger:    newTestLogger(),
	}).(*notificationService)

	assert.Equal(t, 50, srv.capacity)
}
