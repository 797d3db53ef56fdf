package auth

import (
	"context"
	"time"

	"storefront/internal/domain/model"

	"github.com/stretchr/testify/mock"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(model.User)
	return created, args.Error(1)
}

type tokenIssuerStub struct {
	token     string
	expiresAt time.Time
	err       error

	issuedFor  int64
	issuedRole model.Role
}

func (s *tokenIssuerStub) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	s.issuedFor = userID
	s.issuedRole = role
	return s.token, s.expiresAt, s.err
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
