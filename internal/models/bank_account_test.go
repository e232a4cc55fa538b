package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestBankAccount_TableName(t *testing.T) {
	assert.Equal(t, "bank_accounts", BankAccount{}.TableName())
}

func TestBankAccount_IsPersisted(t *testing.T) {
	tests := []struct {
		name    string
		account BankAccount
		want    bool
	}{
		{name: "new record", account: BankAccount{Name: "Savings"}, want: false},
		{name: "stored record", account: BankAccount{ID: 1, Name: "Savings"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.IsPersisted())
		})
	}
}

func TestBankAccount_Schema(t *testing.T) {
	s, err := schema.Parse(&BankAccount{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	assert.Equal(t, "bank_accounts", s.Table)
	require.NotNil(t, s.PrioritizedPrimaryField)
	assert.Equal(t, "id", s.PrioritizedPrimaryField.DBName)
	assert.True(t, s.PrioritizedPrimaryField.AutoIncrement)

	for _, column := range []string{"name", "number", "owner"} {
		field := s.LookUpField(column)
		require.NotNil(t, field, column)
		assert.False(t, field.PrimaryKey, column)
	}
}
