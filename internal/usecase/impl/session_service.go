package impl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authRepo      repository.AuthRepository
	sessions      repository.SessionRepository
	redirect      service.IdentityRedirect
	cart          usecase.CartUsecase
	wishlist      usecase.WishlistUsecase
	notifications usecase.NotificationUsecase
	validate      *validator.Validate
	logger        *slog.Logger
	now           func() time.Time
}

// SessionServiceParams holds dependencies for the session service, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AuthRepo      repository.AuthRepository
	Sessions      repository.SessionRepository
	Redirect      service.IdentityRedirect
	Cart          usecase.CartUsecase
	Wishlist      usecase.WishlistUsecase
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		authRepo:      params.AuthRepo,
		sessions:      params.Sessions,
		redirect:      params.Redirect,
		cart:          params.Cart,
		wishlist:      params.Wishlist,
		notifications: params.Notifications,
		validate:      validator.New(),
		logger:        params.Logger,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrInvalidCredentials.WithDetails(err.Error())
	}

	session, err := srv.authRepo.Login(ctx, repository.Credentials{Email: input.Email, Password: input.Password})
	if err != nil {
		return nil, errors.Wrap(err, "login")
	}

	if err := srv.start(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (srv *sessionService) IdentityLoginURL() string {
	return srv.redirect.LoginURL()
}

func (srv *sessionService) CompleteIdentityRedirect(ctx context.Context, query url.Values) (*entity.Session, error) {
	session, err := srv.redirect.ParseCallback(query)
	if err != nil {
		return nil, err
	}

	if err := srv.start(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// start persists session and loads both collections. Collections held for
// anyone other than the same user are dropped first. Load failures are
// already reported by the collection services and do not fail the login.
func (srv *sessionService) start(ctx context.Context, session *entity.Session) error {
	previous, err := srv.sessions.Get(ctx)
	if err != nil || previous.UserID() != session.UserID() {
		if err := srv.cart.ClearCart(ctx); err != nil {
			return errors.Wrap(err, "drop previous cart")
		}
		srv.wishlist.Reset()
	}

	if err := srv.sessions.Save(ctx, session); err != nil {
		return errors.Wrap(err, "save session")
	}

	srv.log(ctx).Info("Session started",
		slog.String("user_id", session.UserID()),
		slog.String("role", session.User.Role.String()),
	)

	if _, err := srv.cart.LoadCart(ctx); err != nil {
		srv.log(ctx).Warn("Cart not loaded after login", slog.Any("error", err))
	}
	if _, err := srv.wishlist.LoadWishlist(ctx); err != nil {
		srv.log(ctx).Warn("Wishlist not loaded after login", slog.Any("error", err))
	}

	return nil
}

// Logout always clears local state, even when the remote logout fails or no session is stored.
func (srv *sessionService) Logout(ctx context.Context) error {
	session, err := srv.sessions.Get(ctx)
	switch {
	case err == nil:
		if err := srv.authRepo.Logout(ctx, session); err != nil {
			reportFailure(ctx, srv.notifications, failure{
				collection: entity.CollectionSession,
				operation:  entity.OperationLogout,
				session:    session,
				err:        err,
			})
		}
	case errors.Is(err, domainerrors.ErrUnauthenticated):
	default:
		srv.log(ctx).Warn("Stored session unreadable during logout", slog.Any("error", err))
	}

	var firstErr error
	if err := srv.sessions.Delete(ctx); err != nil {
		firstErr = errors.Wrap(err, "delete session")
	}
	if err := srv.cart.ClearCart(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	srv.wishlist.Reset()

	if session != nil {
		srv.log(ctx).Info("Session ended", slog.String("user_id", session.UserID()))
	}

	return firstErr
}

func (srv *sessionService) Current(ctx context.Context) (*entity.Session, error) {
	return requireSession(ctx, srv.sessions, srv.now())
}

func (srv *sessionService) CompleteCheckout(ctx context.Context) error {
	if _, err := srv.Current(ctx); err != nil {
		return err
	}

	return srv.cart.ClearCart(ctx)
}
