package httpapi

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dmitrijs2005/chirpy/internal/server/models"
	"github.com/dmitrijs2005/chirpy/internal/server/services"
)

type mockSessions struct{ mock.Mock }

func (m *mockSessions) Login(ctx context.Context, in services.LoginInput) (*services.LoginResult, error) {
	args := m.Called(ctx, in)
	res, _ := args.Get(0).(*services.LoginResult)
	return res, args.Error(1)
}

func (m *mockSessions) Refresh(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *mockSessions) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockSessions) Authenticate(authorization string) (uuid.UUID, error) {
	args := m.Called(authorization)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Register(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUsers) Update(ctx context.Context, id uuid.UUID, email, password string) (*models.User, error) {
	args := m.Called(ctx, id, email, password)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

type mockChirps struct{ mock.Mock }

func (m *mockChirps) Create(ctx context.Context, userID uuid.UUID, body string) (*models.Chirp, error) {
	args := m.Called(ctx, userID, body)
	c, _ := args.Get(0).(*models.Chirp)
	return c, args.Error(1)
}

func (m *mockChirps) List(ctx context.Context, authorID *uuid.UUID, sort string) ([]models.Chirp, error) {
	args := m.Called(ctx, authorID, sort)
	l, _ := args.Get(0).([]models.Chirp)
	return l, args.Error(1)
}

func (m *mockChirps) Get(ctx context.Context, id uuid.UUID) (*models.Chirp, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Chirp)
	return c, args.Error(1)
}

func (m *mockChirps) Delete(ctx context.Context, userID, chirpID uuid.UUID) error {
	return m.Called(ctx, userID, chirpID).Error(0)
}

type mockWebhooks struct{ mock.Mock }

func (m *mockWebhooks) HandlePolka(ctx context.Context, authorization string, ev services.PolkaEvent) error {
	return m.Called(ctx, authorization, ev).Error(0)
}

type mockAdmin struct{ mock.Mock }

func (m *mockAdmin) Reset(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *mockAdmin) Ready(ctx context.Context) error { return m.Called(ctx).Error(0) }
