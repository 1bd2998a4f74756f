package product

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ernitinjai/meenicode-pos/model"
	"github.com/ernitinjai/meenicode-pos/repository/remote"
)

// ProductRepository is the remote store client for product records. Calls
// are stateless round trips; any error means "collection unknown", never
// "collection empty".
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, draft *model.ProductDraft) (*model.Product, error)
	Update(ctx context.Context, id uint64, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id uint64) error
}

type API struct {
	client *remote.Client
}

func NewProductRepository(client *remote.Client) ProductRepository {
	return &API{client: client}
}

func (a *API) List(ctx context.Context) ([]model.Product, error) {
	var items []model.Product
	if err := a.client.Do(ctx, http.MethodGet, "/products", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create is NOT idempotent: a repeated call creates a duplicate record.
// Callers must not retry it automatically.
func (a *API) Create(ctx context.Context, draft *model.ProductDraft) (*model.Product, error) {
	var created model.Product
	if err := a.client.Do(ctx, http.MethodPost, "/products", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the full record server-side and returns the stored copy,
// which is authoritative even when it differs from what was submitted.
func (a *API) Update(ctx context.Context, id uint64, product *model.Product) (*model.Product, error) {
	var updated model.Product
	path := fmt.Sprintf("/products/%d", id)
	if err := a.client.Do(ctx, http.MethodPut, path, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (a *API) Delete(ctx context.Context, id uint64) error {
	path := fmt.Sprintf("/products/%d", id)
	return a.client.Do(ctx, http.MethodDelete, path, nil, nil)
}
