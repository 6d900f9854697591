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
)

type productClient struct {
	client *Client
}

// NewProductRepository returns the catalog reader backed by the REST API.
func NewProductRepository(client *Client) repository.ProductRepository {
	return &productClient{client: client}
}

// FindByID accepts both a bare product document and {"product": {...}}.
func (r *productClient) FindByID(ctx context.Context, productID string) (*entity.Product, error) {
	var raw json.RawMessage
	err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/products/product/" + url.PathEscape(productID),
	}, &raw)
	if err != nil {
		if domainerrors.StatusCodeOf(err) == http.StatusNotFound {
			return nil, errors.Wrapf(domainerrors.ErrNotFound, "product %s", productID)
		}

		return nil, err
	}

	var wrapped struct {
		Product *entity.Product `json:"product"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Product != nil {
		return wrapped.Product, nil
	}

	var product entity.Product
	if err := json.Unmarshal(raw, &product); err != nil || product.ID == "" {
		return nil, errors.Wrapf(domainerrors.ErrUnexpectedResponse, "product %s: no product document", productID)
	}

	return &product, nil
}
