package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bank-account-service/internal/dto"
	"bank-account-service/internal/mapper"
	"bank-account-service/internal/repositories"
)

var (
	ErrSaveFailed = errors.New("save failed")
)

const (
	OperationAdd     = "add"
	OperationDelete  = "delete"
	OperationUpdate  = "update"
	OperationGetAll  = "get_all"
	OperationGetByID = "get_by_id"

	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo repositories.BankAccountRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewAccountService creates the account service
func NewAccountService(
	accountRepo repositories.BankAccountRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}

	return &accountService{
		accountRepo: accountRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// AddAccount stores a new account built from the request and returns it with its generated id
func (s *accountService) AddAccount(ctx context.Context, req dto.RequestAccount) (dto.ReceiveAccount, error) {
	start := time.Now()

	saved, err := s.accountRepo.Save(ctx, mapper.ToEntity(req))
	if err != nil {
		s.observe(OperationAdd, start, OutcomeError)
		s.logger.ErrorContext(ctx, "failed to save account", "error", err)
		return dto.ReceiveAccount{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	if saved == nil || !saved.IsPersisted() {
		s.observe(OperationAdd, start, OutcomeError)
		s.logger.ErrorContext(ctx, "store returned no stored account after save")
		return dto.ReceiveAccount{}, ErrSaveFailed
	}

	s.observe(OperationAdd, start, OutcomeSuccess)
	s.logger.DebugContext(ctx, "account created", "account_id", saved.ID)

	return mapper.ToDto(saved), nil
}

// DeleteAccount removes the account and reports whether it existed
func (s *accountService) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	start := time.Now()

	exists, err := s.accountRepo.ExistsByID(ctx, id)
	if err != nil {
		s.observe(OperationDelete, start, OutcomeError)
		s.logger.ErrorContext(ctx, "failed to check account existence", "account_id", id, "error", err)
		return false, fmt.Errorf("failed to check account: %w", err)
	}
	if !exists {
		s.observe(OperationDelete, start, OutcomeNotFound)
		return false, nil
	}

	if err := s.accountRepo.DeleteByID(ctx, id); err != nil {
		s.observe(OperationDelete, start, OutcomeError)
		s.logger.ErrorContext(ctx, "failed to delete account", "account_id", id, "error", err)
		return false, fmt.Errorf("failed to delete account: %w", err)
	}

	s.observe(OperationDelete, start, OutcomeSuccess)
	s.logger.DebugContext(ctx, "account deleted", "account_id", id)

	return true, nil
}

// UpdateAccount replaces name, number and owner of an existing account. The id never changes.
func (s *accountService) UpdateAccount(ctx context.Context, id int64, req dto.RequestAccount) (dto.ReceiveAccount, bool, error) {
	start := time.Now()

	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			s.observe(OperationUpdate, start, OutcomeNotFound)
			return dto.ReceiveAccount{}, false, nil
		}
		s.observe(OperationUpdate, start, OutcomeError)
		s.logger.ErrorContext(ctx, "failed to load account for update", "account_id", id, "error", err)
		return dto.ReceiveAccount{}, false, fmt.Errorf("failed to get account: %w", err)
	}

	mapper.ApplyRequest(account, req)

	saved, err := s.accountRepo.Save(ctx, account)
	if err != nil {
		s.observe(OperationUpdate, start, OutcomeError)
		s.logger.ErrorContext(ctx, "failed to save updated account", "account_id", id, "error", err)
		return dto.ReceiveAccount{}, false, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	if saved == nil || !saved.IsPersisted() {
		s.observe(OperationUpdate, start, OutcomeError)
		return dto.ReceiveAccount{}, false, ErrSaveFailed
	}

	s.observe(OperationUpdate, start, OutcomeSuccess)
	s.logger.DebugContext(ctx, "account updated", "account_id", id)

	return mapper.ToDto(saved), true, nil
}

// GetAllAccounts returns every stored account in store order
func (s *accountService) GetAllAccounts(ctx context.Context) ([]dto.ReceiveAccount, error) {
	start := time.Now()

	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		s.observe(OperationGetAll, start, OutcomeError)
		s.logger.ErrorContext(ctx, "failed to list accounts", "error", err)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	s.observe(OperationGetAll, start, OutcomeSuccess)

	return mapper.ToDtoList(accounts), nil
}

// GetAccountByID looks up a single account
func (s *accountService) GetAccountByID(ctx context.Context, id int64) (dto.ReceiveAccount, bool, error) {
	start := time.Now()

	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			s.observe(OperationGetByID, start, OutcomeNotFound)
			return dto.ReceiveAccount{}, false, nil
		}
		s.observe(OperationGetByID, start, OutcomeError)
		s.logger.ErrorContext(ctx, "failed to get account", "account_id", id, "error", err)
		return dto.ReceiveAccount{}, false, fmt.Errorf("failed to get account: %w", err)
	}

	s.observe(OperationGetByID, start, OutcomeSuccess)

	return mapper.ToDto(account), true, nil
}

func (s *accountService) observe(operation string, start time.Time, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(MetricAccountOperation, map[string]string{
		"operation": operation,
		"outcome":   outcome,
	})
	s.metrics.RecordProcessingTime(operation, time.Since(start))
}
