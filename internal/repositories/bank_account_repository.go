package repositories

import (
	"context"
	"errors"
	"fmt"

	"bank-account-service/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNilAccount      = errors.New("account must not be nil")
)

// bankAccountRepository implements BankAccountRepositoryInterface on top of gorm
type bankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository creates a new bank account repository
func NewBankAccountRepository(db *gorm.DB) BankAccountRepositoryInterface {
	return &bankAccountRepository{
		db: db,
	}
}

// Save inserts or overwrites an account
func (r *bankAccountRepository) Save(ctx context.Context, account *models.BankAccount) (*models.BankAccount, error) {
	if account == nil {
		return nil, ErrNilAccount
	}

	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return account, nil
}

// FindByID retrieves an account by ID
func (r *bankAccountRepository) FindByID(ctx context.Context, id int64) (*models.BankAccount, error) {
	var account models.BankAccount
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// FindAll retrieves every account ordered by id
func (r *bankAccountRepository) FindAll(ctx context.Context) ([]models.BankAccount, error) {
	var accounts []models.BankAccount
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// ExistsByID checks whether an account with the given id is stored
func (r *bankAccountRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BankAccount{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}

// DeleteByID hard deletes an account
func (r *bankAccountRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.BankAccount{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
