package impl

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service       usecase.CartUsecase
	cartRepo      *mockRepo.MockCartRepository
	productRepo   *mockRepo.MockProductRepository
	stores        localStores
	notifications usecase.NotificationUsecase
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	t.Helper()

	return createTestCartServiceWithStores(t, newLocalStores(t), newTestConfig())
}

func createTestCartServiceWithStores(t *testing.T, stores localStores, cfg *config.Config) cartServiceFixtures {
	t.Helper()

	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	notifications := newTestNotifications(t)

	service := NewCartService(CartServiceParams{
		Config:        cfg,
		CartRepo:      cartRepo,
		ProductRepo:   productRepo,
		Snapshots:     stores.snapshots,
		Sessions:      stores.sessions,
		Notifications: notifications,
		Logger:        newTestLogger(),
	})

	return cartServiceFixtures{
		service:       service,
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		stores:        stores,
		notifications: notifications,
	}
}

func newLine(productID string, price int64, quantity, stock int) *entity.NewCartLine {
	return &entity.NewCartLine{
		ProductID:      productID,
		Title:          "Product " + productID,
		Price:          decimal.NewFromInt(price),
		Quantity:       quantity,
		AvailableStock: stock,
	}
}

func remoteFailure(method, path string) error {
	return &domainerrors.RemoteError{
		Method:     method,
		Path:       path,
		StatusCode: http.StatusInternalServerError,
		Body:       "upstream unavailable",
	}
}

func TestCartService_AddThenRemove_TotalFollowsLines(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	saveTestSession(t, f.stores)

	f.cartRepo.EXPECT().
		CreateLine(mock.Anything, mock.AnythingOfType("*entity.Session"), mock.AnythingOfType("*entity.CartLine")).
		Return(nil, nil)
	f.cartRepo.EXPECT().
		DeleteLine(mock.Anything, mock.AnythingOfType("*entity.Session"), "P1").
		Return(nil)

	line, err := f.service.AddToCart(ctx, newLine("P1", 20, 2, 5))
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStateSynced, line.SyncState)
	assert.NotEmpty(t, line.LineID)
	assert.Equal(t, "40", f.service.Total().String())
	require.Len(t, f.service.Lines(), 1)

	persisted, err := f.stores.snapshots.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, 2, persisted[0].Quantity)

	require.NoError(t, f.service.RemoveLine(ctx, "P1"))
	assert.Empty(t, f.service.Lines())
	assert.True(t, f.service.Total().IsZero())
	assert.Empty(t, f.notifications.List())
}

func TestCartService_AddToCart_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   *entity.NewCartLine
		wantErr error
	}{
		{name: "nil input", input: nil, wantErr: domainerrors.ErrInvalidCartLine},
		{name: "zero quantity", input: newLine("P1", 10, 0, 5), wantErr: domainerrors.ErrInvalidCartLine},
		{name: "missing product", input: newLine("", 10, 1, 5), wantErr: domainerrors.ErrInvalidCartLine},
		{name: "negative price", input: newLine("P1", -1, 1, 5), wantErr: domainerrors.ErrInvalidCartLine},
		{name: "over stock", input: newLine("P1", 10, 6, 5), wantErr: domainerrors.ErrStockExceeded},
		{name: "out of stock", input: newLine("P1", 10, 1, 0), wantErr: domainerrors.ErrStockExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCartService(t)
			saveTestSession(t, f.stores)

			line, err := f.service.AddToCart(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, line)
			assert.Empty(t, f.service.Lines())
		})
	}
}

func TestCartService_RequiresSession(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()

	_, err := f.service.AddToCart(ctx, newLine("P1", 10, 1, 5))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = f.service.LoadCart(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	assert.ErrorIs(t, f.service.UpdateQuantity(ctx, "P1", 2), domainerrors.ErrUnauthenticated)
	assert.ErrorIs(t, f.service.RemoveLine(ctx, "P1"), domainerrors.ErrUnauthenticated)
	assert.Empty(t, f.service.Lines())
}

func TestCartService_AddToCart_RemoteFailureKeepsLine(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	saveTestSession(t, f.stores)

	f.cartRepo.EXPECT().
		CreateLine(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, remoteFailure(http.MethodPost, "/cart/add")).
		Once()

	line, err := f.service.AddToCart(ctx, newLine("P1", 20, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStateFailed, line.SyncState)

	lines := f.service.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, entity.SyncStateFailed, lines[0].SyncState)

	notifications := f.notifications.List()
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.CollectionCart, notifications[0].Collection)
	assert.Equal(t, entity.OperationCreate, notifications[0].Operation)
	assert.Equal(t, "P1", notifications[0].ProductID)
	assert.Equal(t, http.StatusInternalServerError, notifications[0].StatusCode)
	assert.Equal(t, "user-1", notifications[0].UserID)

	f.cartRepo.EXPECT().
		CreateLine(mock.Anything, mock.Anything, mock.MatchedBy(func(l *entity.CartLine) bool {
			return l.ProductID == "P1" && l.Quantity == 1
		})).
		Return(nil, nil).
		Once()

	synced, err := f.service.RetryFailed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, synced)
	assert.Equal(t, entity.SyncStateSynced, f.service.Lines()[0].SyncState)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	saveTestSession(t, f.stores)

	f.cartRepo.EXPECT().CreateLine(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	_, err := f.service.AddToCart(ctx, newLine("P1", 5, 1, 10))
	require.NoError(t, err)

	t.Run("below one is rejected", func(t *testing.T) {
		err := f.service.UpdateQuantity(ctx, "P1", 0)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
		assert.Equal(t, 1, f.service.Lines()[0].Quantity)
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		require.NoError(t, f.service.UpdateQuantity(ctx, "missing", 3))
		assert.Equal(t, "5", f.service.Total().String())
	})

	t.Run("updates local and remote", func(t *testing.T) {
		f.cartRepo.EXPECT().UpdateQuantity(mock.Anything, mock.Anything, "P1", 3).Return(nil).Once()

		require.NoError(t, f.service.UpdateQuantity(ctx, "P1", 3))
		lines := f.service.Lines()
		assert.Equal(t, 3, lines[0].Quantity)
		assert.Equal(t, entity.SyncStateSynced, lines[0].SyncState)
		assert.Equal(t, "15", f.service.Total().String())
	})

	t.Run("remote failure marks the line and retries the update", func(t *testing.T) {
		f.cartRepo.EXPECT().
			UpdateQuantity(mock.Anything, mock.Anything, "P1", 4).
			Return(remoteFailure(http.MethodPut, "/cart/update/user-1/P1")).
			Once()

		require.NoError(t, f.service.UpdateQuantity(ctx, "P1", 4))
		assert.Equal(t, 4, f.service.Lines()[0].Quantity)
		assert.Equal(t, entity.SyncStateFailed, f.service.Lines()[0].SyncState)

		f.cartRepo.EXPECT().UpdateQuantity(mock.Anything, mock.Anything, "P1", 4).Return(nil).Once()

		synced, err := f.service.RetryFailed(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, synced)
		assert.Equal(t, entity.SyncStateSynced, f.service.Lines()[0].SyncState)
	})
}

func TestCartService_RemoveLine_AbsentProductMakesNoRemoteCall(t *testing.T) {
	f := createTestCartService(t)
	saveTestSession(t, f.stores)

	require.NoError(t, f.service.RemoveLine(context.Background(), "missing"))
}

func TestCartService_RemoveLine_RemovesEveryLineOfProduct(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	saveTestSession(t, f.stores)

	f.cartRepo.EXPECT().CreateLine(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Times(3)
	f.cartRepo.EXPECT().DeleteLine(mock.Anything, mock.Anything, "P1").Return(nil).Once()

	_, err := f.service.AddToCart(ctx, newLine("P1", 10, 1, 5))
	require.NoError(t, err)
	_, err = f.service.AddToCart(ctx, newLine("P1", 10, 2, 5))
	require.NoError(t, err)
	_, err = f.service.AddToCart(ctx, newLine("P2", 3, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, "33", f.service.Total().String())

	require.NoError(t, f.service.RemoveLine(ctx, "P1"))
	lines := f.service.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "P2", lines[0].ProductID)
	assert.Equal(t, "3", f.service.Total().String())
}

func TestCartService_LoadCart_ReplacesLocalLines(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	saveTestSession(t, f.stores)

	f.cartRepo.EXPECT().CreateLine(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	_, err := f.service.AddToCart(ctx, newLine("LOCAL", 1, 1, 5))
	require.NoError(t, err)

	f.cartRepo.EXPECT().FetchCart(mock.Anything, mock.Anything).Return([]*entity.CartLine{
		{ProductID: "A", Title: "A", Price: decimal.NewFromInt(2), Quantity: 3},
		{ProductID: "B", Title: "B", Price: decimal.NewFromInt(5), Quantity: 0},
	}, nil).Once()

	lines, err := f.service.LoadCart(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "A", lines[0].ProductID)
	assert.Equal(t, entity.SyncStateSynced, lines[0].SyncState)
	assert.NotEmpty(t, lines[0].LineID)
	assert.Equal(t, "6", f.service.Total().String())

	persisted, err := f.stores.snapshots.Load(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, "A", persisted[0].ProductID)
}

func TestCartService_LoadCart_FailureIsReturnedAndReported(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	saveTestSession(t, f.stores)

	f.cartRepo.EXPECT().FetchCart(mock.Anything, mock.Anything).Return(nil, remoteFailure(http.MethodGet, "/cart/user-1"))

	lines, err := f.service.LoadCart(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRemoteRejected)
	assert.Nil(t, lines)

	notifications := f.notifications.List()
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.OperationFetch, notifications[0].Operation)
}

func TestCartService_RestoresSnapshotOnStart(t *testing.T) {
	stores := newLocalStores(t)
	require.NoError(t, stores.snapshots.Save(context.Background(), []*entity.CartLine{
		{ProductID: "A", Title: "A", Price: decimal.NewFromInt(4), Quantity: 2},
		{LineID: "kept", ProductID: "B", Title: "B", Price: decimal.NewFromInt(1), Quantity: 1, SyncState: entity.SyncStateFailed},
	}))

	f := createTestCartServiceWithStores(t, stores, newTestConfig())
	lines := f.service.Lines()
	require.Len(t, lines, 2)
	assert.NotEmpty(t, lines[0].LineID)
	assert.Equal(t, entity.SyncStateSynced, lines[0].SyncState)
	assert.Equal(t, "kept", lines[1].LineID)
	assert.Equal(t, entity.SyncStateFailed, lines[1].SyncState)
	assert.Equal(t, "9", f.service.Total().String())
}

func TestCartService_ClearCart_DropsSnapshot(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	saveTestSession(t, f.stores)

	f.cartRepo.EXPECT().CreateLine(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	_, err := f.service.AddToCart(ctx, newLine("P1", 10, 1, 5))
	require.NoError(t, err)

	require.NoError(t, f.service.ClearCart(ctx))
	assert.Empty(t, f.service.Lines())

	persisted, err := f.stores.snapshots.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestCartService_ClearRemoteCart_ReportsFailure(t *testing.T) {
	f := createTestCartService(t)
	saveTestSession(t, f.stores)

	f.cartRepo.EXPECT().ClearCart(mock.Anything, mock.Anything).Return(remoteFailure(http.MethodDelete, "/cart/user-1"))

	require.NoError(t, f.service.ClearRemoteCart(context.Background()))
	require.Len(t, f.notifications.List(), 1)
	assert.Equal(t, entity.OperationClear, f.notifications.List()[0].Operation)
}

func TestCartService_AddProduct_UsesEffectivePrice(t *testing.T) {
	f := createTestCartService(t)
	ctx := context.Background()
	saveTestSession(t, f.stores)

	f.productRepo.EXPECT().FindByID(mock.Anything, "P7").Return(&entity.Product{
		ID:            "P7",
		Title:         "Shoes",
		Price:         decimal.NewFromInt(100),
		DiscountPrice: decimal.NewFromInt(80),
		Image:         "shoes.png",
		Stock:         2,
	}, nil).Twice()
	f.cartRepo.EXPECT().
		CreateLine(mock.Anything, mock.Anything, mock.MatchedBy(func(l *entity.CartLine) bool {
			return l.Price.Equal(decimal.NewFromInt(80)) && l.Image == "shoes.png" && l.Size == "42"
		})).
		Return(nil, nil).
		Once()

	line, err := f.service.AddProduct(ctx, &usecase.AddProductInput{ProductID: "P7", Quantity: 2, Size: "42"})
	require.NoError(t, err)
	assert.Equal(t, "Shoes", line.Title)
	assert.Equal(t, "160", f.service.Total().String())

	_, err = f.service.AddProduct(ctx, &usecase.AddProductInput{ProductID: "P7", Quantity: 3})
	assert.ErrorIs(t, err, domainerrors.ErrStockExceeded)
}

func TestCartService_AddProduct_UnknownProduct(t *testing.T) {
	f := createTestCartService(t)
	saveTestSession(t, f.stores)

	f.productRepo.EXPECT().FindByID(mock.Anything, "nope").Return(nil, domainerrors.ErrNotFound)

	_, err := f.service.AddProduct(context.Background(), &usecase.AddProductInput{ProductID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = f.service.AddProduct(context.Background(), &usecase.AddProductInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidProduct)
}

func TestCartService_SerializedPerKey(t *testing.T) {
	cfg := newTestConfig()
	cfg.Sync.SerializePerKey = true
	f := createTestCartServiceWithStores(t, newLocalStores(t), cfg)
	ctx := context.Background()
	saveTestSession(t, f.stores)

	var inFlight, maxInFlight atomic.Int32
	f.cartRepo.EXPECT().CreateLine(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *entity.Session, _ *entity.CartLine) {
			current := inFlight.Add(1)
			for {
				seen := maxInFlight.Load()
				if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
		}).
		Return(nil, nil).
		Times(4)

	done := make(chan error, 4)
	for range 4 {
		go func() {
			_, err := f.service.AddToCart(ctx, newLine("P1", 1, 1, 5))
			done <- err
		}()
	}
	for range 4 {
		require.NoError(t, <-done)
	}

	assert.Equal(t, int32(1), maxInFlight.Load(), "remote creates for one product overlapped")
	assert.Len(t, f.service.Lines(), 4)
	assert.Equal(t, "4", f.service.Total().String())
}
