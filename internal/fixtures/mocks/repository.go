// Package mocks holds testify mocks for the store repositories.
package mocks

import (
	"context"

	"github.com/amirasaad/ebanking/pkg/dto"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of user.Repository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) LoadAll(ctx context.Context) ([]dto.UserRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.UserRecord), args.Error(1)
}

func (m *MockUserRepository) SaveAll(ctx context.Context, recs []dto.UserRecord) error {
	args := m.Called(ctx, recs)
	return args.Error(0)
}

// MockAccountRepository is a mock of account.Repository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) LoadAll(ctx context.Context) ([]dto.AccountRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AccountRecord), args.Error(1)
}

func (m *MockAccountRepository) SaveAll(ctx context.Context, recs []dto.AccountRecord) error {
	args := m.Called(ctx, recs)
	return args.Error(0)
}

// MockTransactionRepository is a mock of transaction.Repository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) LoadAll(ctx context.Context) ([]dto.TransactionRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TransactionRecord), args.Error(1)
}

func (m *MockTransactionRepository) Append(ctx context.Context, recs ...dto.TransactionRecord) error {
	args := m.Called(ctx, recs)
	return args.Error(0)
}
