package repositories

import (
	"context"

	"bank-account-service/internal/models"
)

// BankAccountRepositoryInterface defines the contract for bank account persistence
type BankAccountRepositoryInterface interface {
	// Save inserts the account when it has no id yet, otherwise overwrites the
	// stored row with the same id. The returned record carries the stored id.
	Save(ctx context.Context, account *models.BankAccount) (*models.BankAccount, error)
	FindByID(ctx context.Context, id int64) (*models.BankAccount, error)
	FindAll(ctx context.Context) ([]models.BankAccount, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// DeleteByID removes the row. Deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
