package restapi

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID      string      `json:"id"`
		MongoID string      `json:"_id"`
		Name    string      `json:"name"`
		Email   string      `json:"email"`
		Role    entity.Role `json:"role"`
		Avatar  string      `json:"avatar"`
	} `json:"user"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

type authClient struct {
	client    *Client
	inspector service.TokenInspector
}

// NewAuthRepository returns the remote authentication API client.
func NewAuthRepository(client *Client, inspector service.TokenInspector) repository.AuthRepository {
	return &authClient{client: client, inspector: inspector}
}

func (r *authClient) Login(ctx context.Context, creds repository.Credentials) (*entity.Session, error) {
	var resp loginResponse
	err := r.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/user/auth/login",
		auth:   true,
		body:   creds,
	}, &resp)
	if err != nil {
		if code := domainerrors.StatusCodeOf(err); code == http.StatusUnauthorized || code == http.StatusBadRequest {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, err.Error())
		}

		return nil, err
	}

	userID := resp.User.ID
	if userID == "" {
		userID = resp.User.MongoID
	}
	if resp.AccessToken == "" || userID == "" {
		return nil, errors.Wrap(domainerrors.ErrUnexpectedResponse, "login: token or user id missing")
	}

	session := &entity.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User: entity.User{
			ID:     userID,
			Name:   resp.User.Name,
			Email:  resp.User.Email,
			Role:   resp.User.Role,
			Avatar: resp.User.Avatar,
		},
	}
	if claims, err := r.inspector.Inspect(resp.AccessToken); err == nil {
		session.ExpiresAt = claims.ExpiresAt
	}

	return session, nil
}

func (r *authClient) Logout(ctx context.Context, session *entity.Session) error {
	return r.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/user/auth/logout",
		auth:   true,
		token:  session.AccessToken,
		body:   logoutRequest{RefreshToken: session.RefreshToken},
	}, nil)
}
