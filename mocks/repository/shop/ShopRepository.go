package shop

import (
	"context"

	"github.com/ernitinjai/meenicode-pos/model"
	"github.com/stretchr/testify/mock"
)

// ShopRepository is a mock of the remote shop client.
type ShopRepository struct {
	mock.Mock
}

func NewShopRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ShopRepository {
	m := &ShopRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *ShopRepository) Login(ctx context.Context, req *model.LoginRequest) (*model.Shop, error) {
	args := m.Called(ctx, req)

	var r0 *model.Shop
	if v := args.Get(0); v != nil {
		r0 = v.(*model.Shop)
	}
	return r0, args.Error(1)
}

func (m *ShopRepository) Register(ctx context.Context, req *model.RegisterRequest) (*model.Shop, error) {
	args := m.Called(ctx, req)

	var r0 *model.Shop
	if v := args.Get(0); v != nil {
		r0 = v.(*model.Shop)
	}
	return r0, args.Error(1)
}
