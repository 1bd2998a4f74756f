package auth

import (
	"context"

	"github.com/ernitinjai/meenicode-pos/constant"
	"github.com/ernitinjai/meenicode-pos/model"
	sessionrepo "github.com/ernitinjai/meenicode-pos/repository/session"
	shoprepo "github.com/ernitinjai/meenicode-pos/repository/shop"
	"github.com/ernitinjai/meenicode-pos/utils/errors"
	"github.com/ernitinjai/meenicode-pos/utils/logger"
	validatorx "github.com/ernitinjai/meenicode-pos/utils/validator"
	"go.uber.org/zap"
)

type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.Session, error)
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Session, error)
	SignOut(ctx context.Context) error
	Current(ctx context.Context) (*model.Session, error)
}

type authAppImpl struct {
	shopRepo    shoprepo.ShopRepository
	sessionRepo sessionrepo.SessionRepository
}

func NewAuthApp(shopRepo shoprepo.ShopRepository, sessionRepo sessionrepo.SessionRepository) AuthApp {
	return &authAppImpl{
		shopRepo:    shopRepo,
		sessionRepo: sessionRepo,
	}
}

// Login validates locally first; no request goes out while fields are
// missing or malformed.
func (s *authAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.Session, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation, validatorx.Describe(err))
	}

	shop, err := s.shopRepo.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	session := &model.Session{Shop: *shop, Authenticated: true}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		logger.Error("[Login] err sessionRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("shop signed in", zap.String("shop", shop.ShopName))
	return session, nil
}

// Register creates the shop remotely and signs it in right away, the way
// the registration form behaves.
func (s *authAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.Session, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorWithDetail(constant.ErrValidation, validatorx.Describe(err))
	}

	shop, err := s.shopRepo.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	session := &model.Session{Shop: *shop, Authenticated: true}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		logger.Error("[Register] err sessionRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("shop registered", zap.String("shop", shop.ShopName))
	return session, nil
}

func (s *authAppImpl) SignOut(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		logger.Error("[SignOut] err sessionRepo.Clear", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Current reads the persisted slot; nil means unauthenticated. The session
// is not validated against the server here.
func (s *authAppImpl) Current(ctx context.Context) (*model.Session, error) {
	session, err := s.sessionRepo.Load(ctx)
	if err != nil {
		logger.Error("[Current] err sessionRepo.Load", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return session, nil
}
