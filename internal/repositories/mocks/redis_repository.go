package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type RateLimitRepository struct {
	mock.Mock
}

func NewRateLimitRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RateLimitRepository {
	m := &RateLimitRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *RateLimitRepository) CheckLoginRateLimit(ctx context.Context, identifier string) (bool, int, int, error) {
	args := m.Called(ctx, identifier)
	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}

type IdempotencyRepository struct {
	mock.Mock
}

func NewIdempotencyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *IdempotencyRepository {
	m := &IdempotencyRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *IdempotencyRepository) Claim(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, token, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *IdempotencyRepository) Release(ctx context.Context, key, token string) error {
	args := m.Called(ctx, key, token)
	return args.Error(0)
}
