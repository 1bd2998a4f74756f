package product

import (
	"context"

	"github.com/ernitinjai/meenicode-pos/model"
	"github.com/stretchr/testify/mock"
)

// ProductRepository is a mock of the remote product store client.
type ProductRepository struct {
	mock.Mock
}

func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)

	var r0 []model.Product
	if v := args.Get(0); v != nil {
		r0 = v.([]model.Product)
	}
	return r0, args.Error(1)
}

func (m *ProductRepository) Create(ctx context.Context, draft *model.ProductDraft) (*model.Product, error) {
	args := m.Called(ctx, draft)

	var r0 *model.Product
	if v := args.Get(0); v != nil {
		r0 = v.(*model.Product)
	}
	return r0, args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, id uint64, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, id, product)

	var r0 *model.Product
	if v := args.Get(0); v != nil {
		r0 = v.(*model.Product)
	}
	return r0, args.Error(1)
}

func (m *ProductRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
