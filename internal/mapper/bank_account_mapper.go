// Package mapper translates between the boundary DTOs and the stored entity.
package mapper

import (
	"bank-account-service/internal/dto"
	"bank-account-service/internal/models"
)

// ToEntity builds an unsaved entity from a request. The request id is ignored.
func ToEntity(req dto.RequestAccount) *models.BankAccount {
	return &models.BankAccount{
		Name:   req.Name,
		Number: req.Number,
		Owner:  req.Owner,
	}
}

// ApplyRequest overwrites the mutable fields of account with the request values
func ApplyRequest(account *models.BankAccount, req dto.RequestAccount) {
	account.Name = req.Name
	account.Number = req.Number
	account.Owner = req.Owner
}

// ToDto copies a stored entity into its response shape
func ToDto(account *models.BankAccount) dto.ReceiveAccount {
	return dto.ReceiveAccount{
		ID:     account.ID,
		Name:   account.Name,
		Number: account.Number,
		Owner:  account.Owner,
	}
}

// ToDtoList maps entities in order. The result is never nil.
func ToDtoList(accounts []models.BankAccount) []dto.ReceiveAccount {
	result := make([]dto.ReceiveAccount, 0, len(accounts))
	for i := range accounts {
		result = append(result, ToDto(&accounts[i]))
	}
	return result
}
