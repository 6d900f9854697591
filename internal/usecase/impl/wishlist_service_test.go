package impl

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// wishlistServiceFixtures holds all test dependencies for wishlist service tests.
type wishlistServiceFixtures struct {
	service       usecase.WishlistUsecase
	wishlistRepo  *mockRepo.MockWishlistRepository
	cart          cartServiceFixtures
	notifications usecase.NotificationUsecase
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	t.Helper()

	cart := createTestCartService(t)
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)

	service := NewWishlistService(WishlistServiceParams{
		Config:        newTestConfig(),
		WishlistRepo:  wishlistRepo,
		Sessions:      cart.stores.sessions,
		Cart:          cart.service,
		Notifications: cart.notifications,
		Logger:        newTestLogger(),
	})

	return wishlistServiceFixtures{
		service:       service,
		wishlistRepo:  wishlistRepo,
		cart:          cart,
		notifications: cart.notifications,
	}
}

func testProduct(id string, price int64, stock int) *entity.Product {
	return &entity.Product{
		ID:    id,
		Title: "Product " + id,
		Price: decimal.NewFromInt(price),
		Stock: stock,
	}
}

func wishlistOf(products ...*entity.Product) *entity.Wishlist {
	wishlist := &entity.Wishlist{UserID: "user-1"}
	for _, p := range products {
		wishlist.Products = append(wishlist.Products, &entity.WishlistEntry{Product: *p})
	}

	return wishlist
}

func productIDs(entries []*entity.WishlistEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProductID())
	}

	return ids
}

func TestWishlistService_LoadWishlist_ReplacesNotMerges(t *testing.T) {
	f := createTestWishlistService(t)
	ctx := context.Background()
	saveTestSession(t, f.cart.stores)

	f.wishlistRepo.EXPECT().FetchWishlist(mock.Anything, mock.Anything).
		Return(wishlistOf(testProduct("A", 1, 1), testProduct("B", 1, 1)), nil).Once()
	_, err := f.service.LoadWishlist(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, productIDs(f.service.Entries()))

	f.wishlistRepo.EXPECT().FetchWishlist(mock.Anything, mock.Anything).
		Return(wishlistOf(testProduct("B", 1, 1), testProduct("C", 1, 1), testProduct("C", 1, 1)), nil).Once()
	entries, err := f.service.LoadWishlist(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, productIDs(entries))
	assert.False(t, f.service.Contains("A"))
	for _, e := range entries {
		assert.Equal(t, entity.SyncStateSynced, e.SyncState)
	}
}

func TestWishlistService_LoadWishlist_Failure(t *testing.T) {
	f := createTestWishlistService(t)
	saveTestSession(t, f.cart.stores)

	f.wishlistRepo.EXPECT().FetchWishlist(mock.Anything, mock.Anything).
		Return(nil, remoteFailure(http.MethodGet, "/wishlist/user-1"))

	_, err := f.service.LoadWishlist(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrRemoteRejected)
	require.Len(t, f.notifications.List(), 1)
	assert.Equal(t, entity.CollectionWishlist, f.notifications.List()[0].Collection)
}

func TestWishlistService_ToggleTwiceIsNetNoOp(t *testing.T) {
	f := createTestWishlistService(t)
	ctx := context.Background()
	saveTestSession(t, f.cart.stores)

	f.wishlistRepo.EXPECT().AddEntry(mock.Anything, mock.Anything, "P1").Return(nil).Once()
	f.wishlistRepo.EXPECT().DeleteEntry(mock.Anything, mock.Anything, "P1").Return(nil).Once()

	product := testProduct("P1", 10, 3)

	added, err := f.service.ToggleWishlist(ctx, product)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, f.service.Contains("P1"))
	assert.Equal(t, entity.SyncStateSynced, f.service.Entries()[0].SyncState)

	added, err = f.service.ToggleWishlist(ctx, product)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, f.service.Contains("P1"))
	assert.Empty(t, f.service.Entries())
}

func TestWishlistService_AddIsUnique(t *testing.T) {
	f := createTestWishlistService(t)
	ctx := context.Background()
	saveTestSession(t, f.cart.stores)

	f.wishlistRepo.EXPECT().AddEntry(mock.Anything, mock.Anything, "P1").Return(nil).Once()

	require.NoError(t, f.service.AddToWishlist(ctx, testProduct("P1", 10, 3)))
	require.NoError(t, f.service.AddToWishlist(ctx, testProduct("P1", 10, 3)))
	assert.Len(t, f.service.Entries(), 1)

	require.NoError(t, f.service.RemoveFromWishlist(ctx, "absent"))
	assert.Len(t, f.service.Entries(), 1)
}

func TestWishlistService_AddFailureMarksEntry(t *testing.T) {
	f := createTestWishlistService(t)
	saveTestSession(t, f.cart.stores)

	f.wishlistRepo.EXPECT().AddEntry(mock.Anything, mock.Anything, "P1").
		Return(remoteFailure(http.MethodPost, "/wishlist/add"))

	require.NoError(t, f.service.AddToWishlist(context.Background(), testProduct("P1", 10, 3)))
	entries := f.service.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, entity.SyncStateFailed, entries[0].SyncState)
	require.Len(t, f.notifications.List(), 1)
	assert.Equal(t, entity.OperationCreate, f.notifications.List()[0].Operation)
}

func TestWishlistService_InvalidProductAndSession(t *testing.T) {
	f := createTestWishlistService(t)
	ctx := context.Background()

	_, err := f.service.ToggleWishlist(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidProduct)
	assert.ErrorIs(t, f.service.AddToWishlist(ctx, &entity.Product{}), domainerrors.ErrInvalidProduct)

	_, err = f.service.ToggleWishlist(ctx, testProduct("P1", 1, 1))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	assert.ErrorIs(t, f.service.ClearWishlist(ctx), domainerrors.ErrUnauthenticated)
	assert.Empty(t, f.service.Entries())
}

func TestWishlistService_ClearWishlist_EmptiesEvenOnFailure(t *testing.T) {
	f := createTestWishlistService(t)
	ctx := context.Background()
	saveTestSession(t, f.cart.stores)

	f.wishlistRepo.EXPECT().AddEntry(mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
	f.wishlistRepo.EXPECT().ClearWishlist(mock.Anything, mock.Anything).
		Return(remoteFailure(http.MethodDelete, "/wishlist/delete/user-1"))

	require.NoError(t, f.service.AddToWishlist(ctx, testProduct("A", 1, 1)))
	require.NoError(t, f.service.AddToWishlist(ctx, testProduct("B", 1, 1)))

	require.NoError(t, f.service.ClearWishlist(ctx))
	assert.Empty(t, f.service.Entries())
	require.Len(t, f.notifications.List(), 1)
	assert.Equal(t, entity.OperationClear, f.notifications.List()[0].Operation)
}

func TestWishlistService_MoveToCart(t *testing.T) {
	f := createTestWishlistService(t)
	ctx := context.Background()
	saveTestSession(t, f.cart.stores)

	f.wishlistRepo.EXPECT().FetchWishlist(mock.Anything, mock.Anything).
		Return(wishlistOf(testProduct("P2", 15, 3)), nil)
	f.cart.cartRepo.EXPECT().
		CreateLine(mock.Anything, mock.Anything, mock.MatchedBy(func(l *entity.CartLine) bool {
			return l.ProductID == "P2" && l.Quantity == 1 && l.Price.Equal(decimal.NewFromInt(15))
		})).
		Return(nil, nil).
		Once()
	f.wishlistRepo.EXPECT().DeleteEntry(mock.Anything, mock.Anything, "P2").Return(nil).Once()

	_, err := f.service.LoadWishlist(ctx)
	require.NoError(t, err)

	line, err := f.service.MoveToCart(ctx, "P2")
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStateSynced, line.SyncState)

	lines := f.cart.service.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "P2", lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.False(t, f.service.Contains("P2"))
	assert.Equal(t, "15", f.cart.service.Total().String())
}

func TestWishlistService_MoveToCart_KeepsEntryWhenCartCreateFails(t *testing.T) {
	f := createTestWishlistService(t)
	ctx := context.Background()
	saveTestSession(t, f.cart.stores)

	f.wishlistRepo.EXPECT().FetchWishlist(mock.Anything, mock.Anything).
		Return(wishlistOf(testProduct("P2", 15, 3)), nil)
	f.cart.cartRepo.EXPECT().CreateLine(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, remoteFailure(http.MethodPost, "/cart/add"))

	_, err := f.service.LoadWishlist(ctx)
	require.NoError(t, err)

	line, err := f.service.MoveToCart(ctx, "P2")
	assert.ErrorIs(t, err, domainerrors.ErrMoveIncomplete)
	require.NotNil(t, line)
	assert.Equal(t, entity.SyncStateFailed, line.SyncState)
	assert.True(t, f.service.Contains("P2"))
	assert.Len(t, f.cart.service.Lines(), 1)
}

func TestWishlistService_MoveToCart_Rejections(t *testing.T) {
	f := createTestWishlistService(t)
	ctx := context.Background()
	saveTestSession(t, f.cart.stores)

	_, err := f.service.MoveToCart(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	f.wishlistRepo.EXPECT().FetchWishlist(mock.Anything, mock.Anything).
		Return(wishlistOf(testProduct("SOLD", 15, 0)), nil)
	_, err = f.service.LoadWishlist(ctx)
	require.NoError(t, err)

	_, err = f.service.MoveToCart(ctx, "SOLD")
	assert.ErrorIs(t, err, domainerrors.ErrStockExceeded)
	assert.True(t, f.service.Contains("SOLD"))
	assert.Empty(t, f.cart.service.Lines())
}
