package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// cartLineDTO is a cart line as the remote API stores it.
type cartLineDTO struct {
	ID        string          `json:"_id,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Image     string          `json:"image,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Color     string          `json:"color,omitempty"`
	Size      string          `json:"size,omitempty"`
}

func (d *cartLineDTO) toEntity() *entity.CartLine {
	return &entity.CartLine{
		ProductID: d.ProductID,
		Title:     d.Title,
		Image:     d.Image,
		Price:     d.Price,
		Quantity:  d.Quantity,
		Color:     d.Color,
		Size:      d.Size,
		SyncState: entity.SyncStateSynced,
	}
}

// createCartLineRequest is the POST /cart/add body. Price goes out as a JSON number.
type createCartLineRequest struct {
	UserID    string      `json:"userId"`
	ProductID string      `json:"productId"`
	Title     string      `json:"title"`
	Image     string      `json:"image,omitempty"`
	Price     json.Number `json:"price"`
	Quantity  int         `json:"quantity"`
	Color     string      `json:"color,omitempty"`
	Size      string      `json:"size,omitempty"`
}

type fetchCartResponse struct {
	Success   bool           `json:"success"`
	CartItems []*cartLineDTO `json:"cartItems"`
}

type createCartLineResponse struct {
	CartItem *cartLineDTO `json:"cartItem"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartClient struct {
	client *Client
}

// NewCartRepository returns the remote cart store backed by the REST API.
func NewCartRepository(client *Client) repository.CartRepository {
	return &cartClient{client: client}
}

func (r *cartClient) FetchCart(ctx context.Context, session *entity.Session) ([]*entity.CartLine, error) {
	var resp fetchCartResponse
	err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/cart/" + url.PathEscape(session.UserID()),
		token:  session.AccessToken,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.CartItems == nil {
		return nil, errors.Wrap(domainerrors.ErrUnexpectedResponse, "fetch cart: success flag or cartItems missing")
	}

	lines := make([]*entity.CartLine, 0, len(resp.CartItems))
	for _, item := range resp.CartItems {
		if item == nil {
			continue
		}
		lines = append(lines, item.toEntity())
	}

	return lines, nil
}

func (r *cartClient) CreateLine(ctx context.Context, session *entity.Session, line *entity.CartLine) (*entity.CartLine, error) {
	var resp createCartLineResponse
	err := r.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/cart/add",
		token:  session.AccessToken,
		body: createCartLineRequest{
			UserID:    session.UserID(),
			ProductID: line.ProductID,
			Title:     line.Title,
			Image:     line.Image,
			Price:     json.Number(line.Price.String()),
			Quantity:  line.Quantity,
			Color:     line.Color,
			Size:      line.Size,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.CartItem == nil {
		return nil, errors.Wrap(domainerrors.ErrUnexpectedResponse, "add cart line: cartItem missing")
	}

	return resp.CartItem.toEntity(), nil
}

func (r *cartClient) UpdateQuantity(ctx context.Context, session *entity.Session, productID string, quantity int) error {
	return r.client.do(ctx, request{
		method: http.MethodPut,
		path:   "/cart/update/" + url.PathEscape(session.UserID()) + "/" + url.PathEscape(productID),
		token:  session.AccessToken,
		body:   updateQuantityRequest{Quantity: quantity},
	}, nil)
}

func (r *cartClient) DeleteLine(ctx context.Context, session *entity.Session, productID string) error {
	return r.client.do(ctx, request{
		method: http.MethodDelete,
		path:   "/cart/" + url.PathEscape(session.UserID()) + "/item/" + url.PathEscape(productID),
		token:  session.AccessToken,
	}, nil)
}

func (r *cartClient) ClearCart(ctx context.Context, session *entity.Session) error {
	return r.client.do(ctx, request{
		method: http.MethodDelete,
		path:   "/cart/" + url.PathEscape(session.UserID()),
		token:  session.AccessToken,
	}, nil)
}
