package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// apiFixtures holds the echo instance and the use case mocks behind it.
type apiFixtures struct {
	echo          *echo.Echo
	session       *mockUsecase.MockSessionUsecase
	cart          *mockUsecase.MockCartUsecase
	wishlist      *mockUsecase.MockWishlistUsecase
	notifications *mockUsecase.MockNotificationUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowOrigins = []string{"http://ui.local"}

	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	cartUC := mockUsecase.NewMockCartUsecase(t)
	wishlistUC := mockUsecase.NewMockWishlistUsecase(t)
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)

	r := router.NewRouter(router.RouterParams{
		SessionHandler:      handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, Logger: logger}),
		CartHandler:         handler.NewCartHandler(handler.CartHandlerParams{CartUC: cartUC, Logger: logger}),
		WishlistHandler:     handler.NewWishlistHandler(handler.WishlistHandlerParams{WishlistUC: wishlistUC, Logger: logger}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: notificationUC, Logger: logger}),
		SessionMiddleware:   middleware.NewSessionMiddleware(sessionUC),
	})

	return apiFixtures{
		echo:          newEcho(cfg, logger, r),
		session:       sessionUC,
		cart:          cartUC,
		wishlist:      wishlistUC,
		notifications: notificationUC,
	}
}

func (f apiFixtures) loggedIn() {
	f.session.EXPECT().Current(mock.Anything).Return(&entity.Session{
		AccessToken: "access-token",
		User:        entity.User{ID: "user-1", Name: "Jane", Role: entity.RoleCustomer},
	}, nil)
}

func (f apiFixtures) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestAPI_HealthEchoesRequestID(t *testing.T) {
	f := createTestAPI(t)

	rec := f.do(http.MethodGet, "/health", "", deliverycontext.HeaderXRequestID, "req-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-1", decode(t, rec).Meta.RequestID)

	rec = f.do(http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_CollectionsRequireSession(t *testing.T) {
	f := createTestAPI(t)
	f.session.EXPECT().Current(mock.Anything).Return(nil, domainerrors.ErrUnauthenticated)

	for _, target := range []string{"/cart", "/wishlist"} {
		rec := f.do(http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)

		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
		assert.Equal(t, domainerrors.ErrUnauthenticated.Message(), env.Error.Message)
	}
}

func TestAPI_GetCart(t *testing.T) {
	f := createTestAPI(t)
	f.loggedIn()

	f.cart.EXPECT().Lines().Return([]*entity.CartLine{
		{LineID: "l1", ProductID: "P1", Price: decimal.NewFromInt(20), Quantity: 2, SyncState: entity.SyncStateSynced},
	})
	f.cart.EXPECT().Total().Return(decimal.NewFromInt(40))

	rec := f.do(http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cart handler.CartResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &cart))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "P1", cart.Lines[0].ProductID)
	assert.True(t, cart.Total.Equal(decimal.NewFromInt(40)))
}

func TestAPI_ForeignOriginIsRejected(t *testing.T) {
	f := createTestAPI(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/cart"},
		{http.MethodGet, "/session"},
		{http.MethodPost, "/session/logout"},
		{http.MethodDelete, "/cart/remote"},
	} {
		rec := f.do(tc.method, tc.target, "", echo.HeaderOrigin, "https://evil.example")
		assert.Equal(t, http.StatusForbidden, rec.Code, tc.target)
		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin), tc.target)
		env := decode(t, rec)
		require.NotNil(t, env.Error, tc.target)
		assert.Equal(t, "FORBIDDEN_ORIGIN", env.Error.Code, tc.target)
	}
}

func TestAPI_AllowedOrigins(t *testing.T) {
	f := createTestAPI(t)
	f.loggedIn()
	f.cart.EXPECT().Lines().Return(nil)
	f.cart.EXPECT().Total().Return(decimal.Zero)

	rec := f.do(http.MethodGet, "/cart", "", echo.HeaderOrigin, "http://ui.local")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://ui.local", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	// Pages served by the API itself.
	rec = f.do(http.MethodGet, "/cart", "", echo.HeaderOrigin, "http://example.com")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_AddLine(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		f := createTestAPI(t)
		f.loggedIn()

		rec := f.do(http.MethodPost, "/cart/lines", `{"productId":"P1","quantity":0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Error.Code)
		assert.Contains(t, decode(t, rec).Error.Message, "quantity")
	})

	t.Run("stock exceeded", func(t *testing.T) {
		f := createTestAPI(t)
		f.loggedIn()
		f.cart.EXPECT().AddProduct(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrStockExceeded.WithDetails("only 2 items in stock"))

		rec := f.do(http.MethodPost, "/cart/lines", `{"productId":"P1","quantity":3}`)
		assert.Equal(t, http.StatusConflict, rec.Code)

		env := decode(t, rec)
		assert.Equal(t, "STOCK_EXCEEDED", env.Error.Code)
		assert.Equal(t, "only 2 items in stock", env.Error.Details)
	})

	t.Run("created", func(t *testing.T) {
		f := createTestAPI(t)
		f.loggedIn()
		f.cart.EXPECT().
			AddProduct(mock.Anything, &usecase.AddProductInput{ProductID: "P1", Quantity: 2, Size: "M"}).
			Return(&entity.CartLine{LineID: "l1", ProductID: "P1", Quantity: 2, SyncState: entity.SyncStateSynced}, nil)

		rec := f.do(http.MethodPost, "/cart/lines", `{"productId":"P1","quantity":2,"size":"M"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var line entity.CartLine
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &line))
		assert.Equal(t, entity.SyncStateSynced, line.SyncState)
	})
}

func TestAPI_RefreshCart_RemoteFailureHidesDetails(t *testing.T) {
	f := createTestAPI(t)
	f.loggedIn()
	f.cart.EXPECT().LoadCart(mock.Anything).Return(nil, &domainerrors.RemoteError{
		Method:     http.MethodGet,
		Path:       "/cart/user-1",
		StatusCode: http.StatusInternalServerError,
		Body:       "db down",
	})

	rec := f.do(http.MethodPost, "/cart/refresh", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "REMOTE_REJECTED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestAPI_MoveToCartIncomplete(t *testing.T) {
	f := createTestAPI(t)
	f.loggedIn()
	f.wishlist.EXPECT().MoveToCart(mock.Anything, "P2").
		Return(&entity.CartLine{ProductID: "P2", Quantity: 1, SyncState: entity.SyncStateFailed}, domainerrors.ErrMoveIncomplete)

	rec := f.do(http.MethodPost, "/wishlist/P2/move-to-cart", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "MOVE_INCOMPLETE", decode(t, rec).Error.Code)
}

func TestAPI_ToggleWishlist(t *testing.T) {
	f := createTestAPI(t)
	f.loggedIn()
	f.wishlist.EXPECT().
		ToggleWishlist(mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
			return p.ID == "P1" && p.Price.Equal(decimal.NewFromInt(15)) && p.Stock == 3
		})).
		Return(true, nil)
	f.wishlist.EXPECT().Entries().Return([]*entity.WishlistEntry{{Product: entity.Product{ID: "P1"}}})

	rec := f.do(http.MethodPost, "/wishlist/toggle", `{"productId":"P1","title":"Hat","price":15,"stock":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var toggled handler.ToggleResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &toggled))
	assert.True(t, toggled.InWishlist)
	assert.Len(t, toggled.Entries, 1)
}

func TestAPI_Login(t *testing.T) {
	f := createTestAPI(t)
	f.session.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "jane@example.com", Password: "secret"}).
		Return(&entity.Session{
			AccessToken:  "secret-access",
			RefreshToken: "secret-refresh",
			User:         entity.User{ID: "user-1", Role: entity.RoleAdmin},
		}, nil)

	rec := f.do(http.MethodPost, "/session/login", `{"email":"jane@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-access")
	assert.NotContains(t, rec.Body.String(), "secret-refresh")

	var session handler.SessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &session))
	assert.Equal(t, "user-1", session.User.ID)
	assert.True(t, session.IsAdmin)

	rec = f.do(http.MethodPost, "/session/login", `{"email":"nope","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_GoogleRedirect(t *testing.T) {
	f := createTestAPI(t)
	f.session.EXPECT().IdentityLoginURL().Return("http://auth.local/user/auth/google")

	rec := f.do(http.MethodGet, "/session/google", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://auth.local/user/auth/google", rec.Header().Get(echo.HeaderLocation))

	query := url.Values{"accessToken": {"a"}, "refreshToken": {"r"}, "userId": {"user-1"}}
	f.session.EXPECT().CompleteIdentityRedirect(mock.Anything, query).
		Return(&entity.Session{AccessToken: "a", User: entity.User{ID: "user-1"}}, nil)

	rec = f.do(http.MethodGet, "/session/google/callback?"+query.Encode(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_Logout(t *testing.T) {
	f := createTestAPI(t)
	f.session.EXPECT().Logout(mock.Anything).Return(nil)

	rec := f.do(http.MethodPost, "/session/logout", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_Notifications(t *testing.T) {
	f := createTestAPI(t)
	id := uuid.New()

	f.notifications.EXPECT().List().Return([]*entity.SyncNotification{{ID: id, Collection: entity.CollectionCart}})
	f.notifications.EXPECT().Dismiss(id).Return(nil)

	rec := f.do(http.MethodGet, "/notifications", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())

	rec = f.do(http.MethodDelete, "/notifications/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodDelete, "/notifications/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_BodyLimit(t *testing.T) {
	f := createTestAPI(t)

	rec := f.do(http.MethodPost, "/session/login", `{"email":"`+strings.Repeat("a", 2048)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
