package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
//
// mu guards lines and failedOps and is held across every durable cache write so
// snapshots are written in mutation order. It is never held during remote calls.
type cartService struct {
	mu        sync.Mutex
	lines     []*entity.CartLine
	failedOps map[string]entity.Operation // line id -> remote operation to retry

	cartRepo      repository.CartRepository
	productRepo   repository.ProductRepository
	snapshots     repository.CartSnapshotRepository
	sessions      repository.SessionRepository
	notifications usecase.NotificationUsecase
	keys          keyedLocker
	validate      *validator.Validate
	logger        *slog.Logger
	now           func() time.Time
}

// CartServiceParams holds dependencies for the cart service, injected by Fx.
type CartServiceParams struct {
	fx.In

	Config        *config.Config
	CartRepo      repository.CartRepository
	ProductRepo   repository.ProductRepository
	Snapshots     repository.CartSnapshotRepository
	Sessions      repository.SessionRepository
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewCartService restores the cart from the durable cache and returns the service.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	srv := &cartService{
		failedOps:     make(map[string]entity.Operation),
		cartRepo:      params.CartRepo,
		productRepo:   params.ProductRepo,
		snapshots:     params.Snapshots,
		sessions:      params.Sessions,
		notifications: params.Notifications,
		keys:          newKeyedLocker(params.Config),
		validate:      validator.New(),
		logger:        params.Logger,
		now:           time.Now,
	}

	lines, err := params.Snapshots.Load(context.Background())
	if err != nil {
		params.Logger.Warn("Starting with an empty cart, snapshot unavailable", slog.Any("error", err))
		lines = nil
	}
	for _, line := range lines {
		if line.LineID == "" {
			line.LineID = uuid.NewString()
		}
		if !line.SyncState.IsValid() {
			line.SyncState = entity.SyncStateSynced
		}
		if line.SyncState == entity.SyncStateFailed {
			srv.failedOps[line.LineID] = entity.OperationCreate
		}
	}
	srv.lines = lines

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// persistLocked writes the current lines to the durable cache. Caller holds mu.
func (srv *cartService) persistLocked(ctx context.Context) {
	if err := srv.snapshots.Save(ctx, srv.lines); err != nil {
		srv.log(ctx).Error("Failed to persist cart snapshot", slog.Any("error", err))
	}
}

// setState tags the line with lineID, if it still exists, and persists.
func (srv *cartService) setState(ctx context.Context, lineID string, state entity.SyncState, failedOp entity.Operation) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	idx := slices.IndexFunc(srv.lines, func(l *entity.CartLine) bool { return l.LineID == lineID })
	if idx < 0 {
		return
	}
	srv.lines[idx].SyncState = state
	if state == entity.SyncStateFailed {
		srv.failedOps[lineID] = failedOp
	} else {
		delete(srv.failedOps, lineID)
	}
	srv.persistLocked(ctx)
}

func (srv *cartService) reportFailure(ctx context.Context, op entity.Operation, session *entity.Session, productID string, err error) {
	reportFailure(ctx, srv.notifications, failure{
		collection: entity.CollectionCart,
		operation:  op,
		session:    session,
		productID:  productID,
		err:        err,
	})
}

// LoadCart replaces the local cart with the remote cart.
func (srv *cartService) LoadCart(ctx context.Context) ([]*entity.CartLine, error) {
	session, err := requireSession(ctx, srv.sessions, srv.now())
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Loading cart", slog.String("user_id", session.UserID()))

	remote, err := srv.cartRepo.FetchCart(ctx, session)
	if err != nil {
		srv.reportFailure(ctx, entity.OperationFetch, session, "", err)

		return nil, errors.Wrap(err, "load cart")
	}

	lines := make([]*entity.CartLine, 0, len(remote))
	for _, line := range remote {
		if line.Quantity < 1 {
			continue
		}
		line.LineID = uuid.NewString()
		line.SyncState = entity.SyncStateSynced
		lines = append(lines, line)
	}

	srv.mu.Lock()
	srv.lines = lines
	clear(srv.failedOps)
	srv.persistLocked(ctx)
	out := cloneLines(srv.lines)
	srv.mu.Unlock()

	return out, nil
}

// AddToCart validates the line, appends it locally, then creates it remotely.
func (srv *cartService) AddToCart(ctx context.Context, in *entity.NewCartLine) (*entity.CartLine, error) {
	if in == nil {
		return nil, domainerrors.ErrInvalidCartLine
	}
	if err := srv.validate.Struct(in); err != nil {
		return nil, domainerrors.ErrInvalidCartLine.WithDetails(err.Error())
	}
	if in.Price.IsNegative() {
		return nil, domainerrors.ErrInvalidCartLine.WithDetails("price must not be negative")
	}
	if in.Quantity > in.AvailableStock {
		return nil, domainerrors.ErrStockExceeded.WithDetails(stockDetails(in.AvailableStock))
	}

	session, err := requireSession(ctx, srv.sessions, srv.now())
	if err != nil {
		return nil, err
	}

	srv.keys.Lock(in.ProductID)
	defer srv.keys.Unlock(in.ProductID)

	line := &entity.CartLine{
		LineID:    uuid.NewString(),
		ProductID: in.ProductID,
		Title:     in.Title,
		Image:     in.Image,
		Price:     in.Price,
		Quantity:  in.Quantity,
		Color:     in.Color,
		Size:      in.Size,
		SyncState: entity.SyncStatePending,
	}

	srv.mu.Lock()
	srv.lines = append(srv.lines, line)
	srv.persistLocked(ctx)
	request := line.Clone()
	srv.mu.Unlock()

	srv.log(ctx).Info("Adding cart line",
		slog.String("user_id", session.UserID()),
		slog.String("product_id", in.ProductID),
		slog.Int("quantity", in.Quantity),
	)

	state := entity.SyncStateSynced
	if _, err := srv.cartRepo.CreateLine(ctx, session, request); err != nil {
		state = entity.SyncStateFailed
		srv.reportFailure(ctx, entity.OperationCreate, session, in.ProductID, err)
	}
	srv.setState(ctx, request.LineID, state, entity.OperationCreate)

	request.SyncState = state

	return request, nil
}

// AddProduct looks the product up and adds it at its effective price.
func (srv *cartService) AddProduct(ctx context.Context, in *usecase.AddProductInput) (*entity.CartLine, error) {
	if in == nil || in.ProductID == "" {
		return nil, domainerrors.ErrInvalidProduct
	}

	product, err := srv.productRepo.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}

	image := in.Image
	if image == "" {
		image = product.Image
	}

	return srv.AddToCart(ctx, &entity.NewCartLine{
		ProductID:      product.ID,
		Title:          product.Title,
		Image:          image,
		Price:          product.EffectivePrice(),
		Quantity:       in.Quantity,
		Color:          in.Color,
		Size:           in.Size,
		AvailableStock: product.Stock,
	})
}

// UpdateQuantity sets the quantity of the first line for productID.
func (srv *cartService) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}

	session, err := requireSession(ctx, srv.sessions, srv.now())
	if err != nil {
		return err
	}

	srv.keys.Lock(productID)
	defer srv.keys.Unlock(productID)

	srv.mu.Lock()
	idx := slices.IndexFunc(srv.lines, func(l *entity.CartLine) bool { return l.ProductID == productID })
	if idx < 0 {
		srv.mu.Unlock()
		srv.log(ctx).Debug("Quantity update for product not in cart", slog.String("product_id", productID))

		return nil
	}
	line := srv.lines[idx]
	line.Quantity = quantity
	if line.SyncState != entity.SyncStateFailed || srv.failedOps[line.LineID] != entity.OperationCreate {
		line.SyncState = entity.SyncStatePending
	}
	lineID := line.LineID
	srv.persistLocked(ctx)
	srv.mu.Unlock()

	if err := srv.cartRepo.UpdateQuantity(ctx, session, productID, quantity); err != nil {
		srv.reportFailure(ctx, entity.OperationUpdate, session, productID, err)
		srv.markFailed(ctx, lineID, entity.OperationUpdate)

		return nil
	}
	srv.markSynced(ctx, lineID)

	return nil
}

// markFailed tags a line failed, keeping a pending create as the operation to retry.
func (srv *cartService) markFailed(ctx context.Context, lineID string, op entity.Operation) {
	srv.mu.Lock()
	if srv.failedOps[lineID] == entity.OperationCreate {
		op = entity.OperationCreate
	}
	srv.mu.Unlock()
	srv.setState(ctx, lineID, entity.SyncStateFailed, op)
}

// markSynced tags a line synced unless it still waits for its create to be retried.
func (srv *cartService) markSynced(ctx context.Context, lineID string) {
	srv.mu.Lock()
	pendingCreate := srv.failedOps[lineID] == entity.OperationCreate
	srv.mu.Unlock()
	if pendingCreate {
		srv.setState(ctx, lineID, entity.SyncStateFailed, entity.OperationCreate)

		return
	}
	srv.setState(ctx, lineID, entity.SyncStateSynced, "")
}

// RemoveLine removes every line for productID.
func (srv *cartService) RemoveLine(ctx context.Context, productID string) error {
	session, err := requireSession(ctx, srv.sessions, srv.now())
	if err != nil {
		return err
	}

	srv.keys.Lock(productID)
	defer srv.keys.Unlock(productID)

	srv.mu.Lock()
	before := len(srv.lines)
	srv.lines = slices.DeleteFunc(srv.lines, func(l *entity.CartLine) bool {
		if l.ProductID != productID {
			return false
		}
		delete(srv.failedOps, l.LineID)

		return true
	})
	removed := before - len(srv.lines)
	if removed > 0 {
		srv.persistLocked(ctx)
	}
	srv.mu.Unlock()

	if removed == 0 {
		srv.log(ctx).Debug("Remove for product not in cart", slog.String("product_id", productID))

		return nil
	}

	if err := srv.cartRepo.DeleteLine(ctx, session, productID); err != nil {
		srv.reportFailure(ctx, entity.OperationDelete, session, productID, err)
	}

	return nil
}

// ClearCart empties the cart and deletes its cache entry.
func (srv *cartService) ClearCart(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.lines = nil
	clear(srv.failedOps)
	if err := srv.snapshots.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear cart snapshot")
	}

	return nil
}

// ClearRemoteCart deletes the remote cart. Failures are reported, not returned.
func (srv *cartService) ClearRemoteCart(ctx context.Context) error {
	session, err := requireSession(ctx, srv.sessions, srv.now())
	if err != nil {
		return err
	}

	if err := srv.cartRepo.ClearCart(ctx, session); err != nil {
		srv.reportFailure(ctx, entity.OperationClear, session, "", err)
	}

	return nil
}

// RetryFailed re-sends the failed create or update of every failed line.
func (srv *cartService) RetryFailed(ctx context.Context) (int, error) {
	session, err := requireSession(ctx, srv.sessions, srv.now())
	if err != nil {
		return 0, err
	}

	type retry struct {
		line *entity.CartLine
		op   entity.Operation
	}

	srv.mu.Lock()
	var retries []retry
	for _, line := range srv.lines {
		if line.SyncState != entity.SyncStateFailed {
			continue
		}
		op := srv.failedOps[line.LineID]
		if op == "" {
			op = entity.OperationCreate
		}
		retries = append(retries, retry{line: line.Clone(), op: op})
	}
	srv.mu.Unlock()

	synced := 0
	for _, r := range retries {
		srv.keys.Lock(r.line.ProductID)

		var err error
		switch r.op {
		case entity.OperationUpdate:
			err = srv.cartRepo.UpdateQuantity(ctx, session, r.line.ProductID, r.line.Quantity)
		default:
			_, err = srv.cartRepo.CreateLine(ctx, session, r.line)
		}
		if err != nil {
			srv.reportFailure(ctx, r.op, session, r.line.ProductID, err)
			srv.setState(ctx, r.line.LineID, entity.SyncStateFailed, r.op)
		} else {
			srv.setState(ctx, r.line.LineID, entity.SyncStateSynced, "")
			synced++
		}

		srv.keys.Unlock(r.line.ProductID)
	}

	if len(retries) > 0 {
		srv.log(ctx).Info("Retried failed cart lines",
			slog.Int("retried", len(retries)),
			slog.Int("synced", synced),
		)
	}

	return synced, nil
}

func (srv *cartService) Lines() []*entity.CartLine {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return cloneLines(srv.lines)
}

// Total is recomputed from the current lines on every call.
func (srv *cartService) Total() decimal.Decimal {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return entity.CartTotal(srv.lines)
}

func cloneLines(lines []*entity.CartLine) []*entity.CartLine {
	out := make([]*entity.CartLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, line.Clone())
	}

	return out
}

func stockDetails(stock int) string {
	if stock <= 0 {
		return "out of stock"
	}

	return "only " + strconv.Itoa(stock) + " items in stock"
}
