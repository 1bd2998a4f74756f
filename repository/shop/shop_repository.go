package shop

import (
	"context"
	"net/http"

	"github.com/ernitinjai/meenicode-pos/constant"
	"github.com/ernitinjai/meenicode-pos/model"
	"github.com/ernitinjai/meenicode-pos/repository/remote"
	"github.com/ernitinjai/meenicode-pos/utils/errors"
)

// ShopRepository is the remote store client for shop login and
// registration.
type ShopRepository interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.Shop, error)
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Shop, error)
}

type API struct {
	client *remote.Client
}

func NewShopRepository(client *remote.Client) ShopRepository {
	return &API{client: client}
}

type loginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Shop    model.Shop `json:"shop"`
}

func (a *API) Login(ctx context.Context, req *model.LoginRequest) (*model.Shop, error) {
	var resp loginResponse
	err := a.client.Do(ctx, http.MethodPost, "/shops/login", req, &resp)
	if err != nil {
		// The service answers unknown email with 404 and a wrong password
		// with a rejection; both are bad credentials to the caller.
		if errors.IsType(err, constant.ErrNotFound) || errors.IsType(err, constant.ErrServerRejected) {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidCredentials, err.Error())
		}
		return nil, err
	}
	if !resp.Success {
		if resp.Message != "" {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidCredentials, resp.Message)
		}
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}
	return &resp.Shop, nil
}

func (a *API) Register(ctx context.Context, req *model.RegisterRequest) (*model.Shop, error) {
	var created model.Shop
	if err := a.client.Do(ctx, http.MethodPost, "/shops", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
