package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// wishlistProductDTO accepts both shapes the API returns for a wishlist item:
// the product document itself, or a wrapper whose productId holds the populated product.
type wishlistProductDTO struct {
	entity.Product
}

func (d *wishlistProductDTO) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		ProductID json.RawMessage `json:"productId"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && len(wrapper.ProductID) > 0 {
		if wrapper.ProductID[0] == '{' {
			return json.Unmarshal(wrapper.ProductID, &d.Product)
		}

		// Unpopulated reference: the item document carries its own _id.
		var productID string
		if err := json.Unmarshal(wrapper.ProductID, &productID); err == nil {
			if err := json.Unmarshal(data, &d.Product); err != nil {
				return err
			}
			d.ID = productID

			return nil
		}
	}

	return json.Unmarshal(data, &d.Product)
}

type fetchWishlistResponse struct {
	User     json.RawMessage       `json:"user"`
	Products []*wishlistProductDTO `json:"products"`
}

// userID reads the user field, which is either an id string or a user document.
func (r *fetchWishlistResponse) userID() string {
	var id string
	if json.Unmarshal(r.User, &id) == nil {
		return id
	}
	var doc struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	}
	if json.Unmarshal(r.User, &doc) == nil {
		if doc.MongoID != "" {
			return doc.MongoID
		}

		return doc.ID
	}

	return ""
}

type addWishlistEntryRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
}

type wishlistClient struct {
	client *Client
}

// NewWishlistRepository returns the remote wishlist store backed by the REST API.
func NewWishlistRepository(client *Client) repository.WishlistRepository {
	return &wishlistClient{client: client}
}

func (r *wishlistClient) FetchWishlist(ctx context.Context, session *entity.Session) (*entity.Wishlist, error) {
	var resp fetchWishlistResponse
	err := r.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/wishlist/" + url.PathEscape(session.UserID()),
		token:  session.AccessToken,
	}, &resp)
	if err != nil {
		return nil, err
	}

	wishlist := &entity.Wishlist{
		UserID:   resp.userID(),
		Products: make([]*entity.WishlistEntry, 0, len(resp.Products)),
	}
	if wishlist.UserID == "" {
		wishlist.UserID = session.UserID()
	}
	for _, p := range resp.Products {
		if p == nil || p.ID == "" {
			continue
		}
		wishlist.Products = append(wishlist.Products, &entity.WishlistEntry{
			Product:   p.Product,
			SyncState: entity.SyncStateSynced,
		})
	}

	return wishlist, nil
}

func (r *wishlistClient) AddEntry(ctx context.Context, session *entity.Session, productID string) error {
	return r.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/wishlist/add",
		token:  session.AccessToken,
		body:   addWishlistEntryRequest{UserID: session.UserID(), ProductID: productID},
	}, nil)
}

func (r *wishlistClient) DeleteEntry(ctx context.Context, session *entity.Session, productID string) error {
	return r.client.do(ctx, request{
		method: http.MethodDelete,
		path:   "/wishlist/delete/" + url.PathEscape(session.UserID()) + "/" + url.PathEscape(productID),
		token:  session.AccessToken,
	}, nil)
}

func (r *wishlistClient) ClearWishlist(ctx context.Context, session *entity.Session) error {
	return r.client.do(ctx, request{
		method: http.MethodDelete,
		path:   "/wishlist/delete/" + url.PathEscape(session.UserID()),
		token:  session.AccessToken,
	}, nil)
}
