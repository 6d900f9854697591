package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
// Membership checks and the matching mutation happen under one hold of mu.
type wishlistService struct {
	mu      sync.Mutex
	entries []*entity.WishlistEntry

	wishlistRepo  repository.WishlistRepository
	sessions      repository.SessionRepository
	cart          usecase.CartUsecase
	notifications usecase.NotificationUsecase
	keys          keyedLocker
	logger        *slog.Logger
	now           func() time.Time
}

// WishlistServiceParams holds dependencies for the wishlist service, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	Config        *config.Config
	WishlistRepo  repository.WishlistRepository
	Sessions      repository.SessionRepository
	Cart          usecase.CartUsecase
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewWishlistService creates the wishlist service with an empty wishlist.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo:  params.WishlistRepo,
		sessions:      params.Sessions,
		cart:          params.Cart,
		notifications: params.Notifications,
		keys:          newKeyedLocker(params.Config),
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *wishlistService) reportFailure(ctx context.Context, op entity.Operation, session *entity.Session, productID string, err error) {
	reportFailure(ctx, srv.notifications, failure{
		collection: entity.CollectionWishlist,
		operation:  op,
		session:    session,
		productID:  productID,
		err:        err,
	})
}

// indexLocked returns the position of productID or -1. Caller holds mu.
func (srv *wishlistService) indexLocked(productID string) int {
	return slices.IndexFunc(srv.entries, func(e *entity.WishlistEntry) bool { return e.ProductID() == productID })
}

func (srv *wishlistService) setState(productID string, state entity.SyncState) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if idx := srv.indexLocked(productID); idx >= 0 {
		srv.entries[idx].SyncState = state
	}
}

// LoadWishlist replaces the local wishlist with the remote one.
func (srv *wishlistService) LoadWishlist(ctx context.Context) ([]*entity.WishlistEntry, error) {
	session, err := requireSession(ctx, srv.sessions, srv.now())
	if err != nil {
		return nil, err
	}

	wishlist, err := srv.wishlistRepo.FetchWishlist(ctx, session)
	if err != nil {
		srv.reportFailure(ctx, entity.OperationFetch, session, "", err)

		return nil, errors.Wrap(err, "load wishlist")
	}

	entries := make([]*entity.WishlistEntry, 0, len(wishlist.Products))
	seen := make(map[string]struct{}, len(wishlist.Products))
	for _, entry := range wishlist.Products {
		if _, dup := seen[entry.ProductID()]; dup {
			continue
		}
		seen[entry.ProductID()] = struct{}{}
		entry.SyncState = entity.SyncStateSynced
		entries = append(entries, entry)
	}

	srv.mu.Lock()
	srv.entries = entries
	out := cloneEntries(srv.entries)
	srv.mu.Unlock()

	return out, nil
}

// ToggleWishlist flips membership of product.
func (srv *wishlistService) ToggleWishlist(ctx context.Context, product *entity.Product) (bool, error) {
	if product == nil || product.ID == "" {
		return false, domainerrors.ErrInvalidProduct
	}

	session, err := requireSession(ctx, srv.sessions, srv.now())
	if err != nil {
		return false, err
	}

	srv.keys.Lock(product.ID)
	defer srv.keys.Unlock(product.ID)

	srv.mu.Lock()
	idx := srv.indexLocked(product.ID)
	added := idx < 0
	if added {
		srv.entries = append(srv.entries, &entity.WishlistEntry{Product: *product, SyncState: entity.SyncStatePending})
	} else {
		srv.entries = slices.Delete(srv.entries, idx, idx+1)
	}
	srv.mu.Unlock()

	if added {
		srv.createRemote(ctx, session, product.ID)
	} else {
		srv.deleteRemote(ctx, session, product.ID)
	}

	return added, nil
}

// AddToWishlist adds product; adding a product already present is a no-op.
func (srv *wishlistService) AddToWishlist(ctx context.Context, product *entity.Product) error {
	if product == nil || product.ID == "" {
		return domainerrors.ErrInvalidProduct
	}

	session, err := requireSession(ctx, srv.sessions, srv.now())
	if err != nil {
		return err
	}

	srv.keys.Lock(product.ID)
	defer srv.keys.Unlock(product.ID)

	srv.mu.Lock()
	if srv.indexLocked(product.ID) >= 0 {
		srv.mu.Unlock()

		return nil
	}
	srv.entries = append(srv.entries, &entity.WishlistEntry{Product: *product, SyncState: entity.SyncStatePending})
	srv.mu.Unlock()

	srv.createRemote(ctx, session, product.ID)

	return nil
}

// RemoveFromWishlist removes productID; removing an absent product is a no-op.
func (srv *wishlistService) RemoveFromWishlist(ctx context.Context, productID string) error {
	session, err := requireSession(ctx, srv.sessions, srv.now())
	if err != nil {
		return err
	}

	srv.keys.Lock(productID)
	defer srv.keys.Unlock(productID)

	srv.mu.Lock()
	idx := srv.indexLocked(productID)
	if idx < 0 {
		srv.mu.Unlock()

		return nil
	}
	srv.entries = slices.Delete(srv.entries, idx, idx+1)
	srv.mu.Unlock()

	srv.deleteRemote(ctx, session, productID)

	return nil
}

func (srv *wishlistService) createRemote(ctx context.Context, session *entity.Session, productID string) {
	srv.log(ctx).Info("Adding wishlist entry",
		slog.String("user_id", session.UserID()),
		slog.String("product_id", productID),
	)

	if err := srv.wishlistRepo.AddEntry(ctx, session, productID); err != nil {
		srv.reportFailure(ctx, entity.OperationCreate, session, productID, err)
		srv.setState(productID, entity.SyncStateFailed)

		return
	}
	srv.setState(productID, entity.SyncStateSynced)
}

func (srv *wishlistService) deleteRemote(ctx context.Context, session *entity.Session, productID string) {
	srv.log(ctx).Info("Removing wishlist entry",
		slog.String("user_id", session.UserID()),
		slog.String("product_id", productID),
	)

	if err := srv.wishlistRepo.DeleteEntry(ctx, session, productID); err != nil {
		srv.reportFailure(ctx, entity.OperationDelete, session, productID, err)
	}
}

// ClearWishlist deletes the remote wishlist, then empties the local one regardless of the outcome.
func (srv *wishlistService) ClearWishlist(ctx context.Context) error {
	session, err := requireSession(ctx, srv.sessions, srv.now())
	if err != nil {
		return err
	}

	if err := srv.wishlistRepo.ClearWishlist(ctx, session); err != nil {
		srv.reportFailure(ctx, entity.OperationClear, session, "", err)
	}

	srv.Reset()

	return nil
}

// MoveToCart adds one unit to the cart and removes the wishlist entry only after
// the cart line reached the synced state. Otherwise ErrMoveIncomplete is returned
// together with the cart line and the wishlist entry is kept.
func (srv *wishlistService) MoveToCart(ctx context.Context, productID string) (*entity.CartLine, error) {
	srv.mu.Lock()
	idx := srv.indexLocked(productID)
	var entry *entity.WishlistEntry
	if idx >= 0 {
		entry = srv.entries[idx].Clone()
	}
	srv.mu.Unlock()

	if entry == nil {
		return nil, domainerrors.ErrNotFound.WithDetails("product " + productID + " is not in the wishlist")
	}

	line, err := srv.cart.AddToCart(ctx, &entity.NewCartLine{
		ProductID:      entry.ID,
		Title:          entry.Title,
		Image:          entry.Image,
		Price:          entry.EffectivePrice(),
		Quantity:       1,
		AvailableStock: entry.Stock,
	})
	if err != nil {
		return nil, err
	}
	if line.SyncState != entity.SyncStateSynced {
		srv.log(ctx).Warn("Cart line not confirmed, keeping wishlist entry", slog.String("product_id", productID))

		return line, domainerrors.ErrMoveIncomplete
	}

	if err := srv.RemoveFromWishlist(ctx, productID); err != nil {
		return line, err
	}

	return line, nil
}

func (srv *wishlistService) Entries() []*entity.WishlistEntry {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return cloneEntries(srv.entries)
}

func (srv *wishlistService) Contains(productID string) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.indexLocked(productID) >= 0
}

func (srv *wishlistService) Reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.entries = nil
}

func cloneEntries(entries []*entity.WishlistEntry) []*entity.WishlistEntry {
	out := make([]*entity.WishlistEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Clone())
	}

	return out
}
