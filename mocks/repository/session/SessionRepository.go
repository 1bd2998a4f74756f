package session

import (
	"context"

	"github.com/ernitinjai/meenicode-pos/model"
	"github.com/stretchr/testify/mock"
)

// SessionRepository is a mock of the durable session slot.
type SessionRepository struct {
	mock.Mock
}

func NewSessionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionRepository {
	m := &SessionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *SessionRepository) Load(ctx context.Context) (*model.Session, error) {
	args := m.Called(ctx)

	var r0 *model.Session
	if v := args.Get(0); v != nil {
		r0 = v.(*model.Session)
	}
	return r0, args.Error(1)
}

func (m *SessionRepository) Save(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
