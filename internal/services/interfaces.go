package services

import (
	"context"
	"time"

	"bank-account-service/internal/dto"
)

// AccountServiceInterface defines the bank account operations shared by the REST and GraphQL adapters.
// Lookups that can miss report absence through the found flag rather than an error.
type AccountServiceInterface interface {
	AddAccount(ctx context.Context, req dto.RequestAccount) (dto.ReceiveAccount, error)
	DeleteAccount(ctx context.Context, id int64) (bool, error)
	UpdateAccount(ctx context.Context, id int64, req dto.RequestAccount) (account dto.ReceiveAccount, found bool, err error)
	GetAllAccounts(ctx context.Context) ([]dto.ReceiveAccount, error)
	GetAccountByID(ctx context.Context, id int64) (account dto.ReceiveAccount, found bool, err error)
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
