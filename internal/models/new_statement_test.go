package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStatement() NewBankStatement {
	return NewBankStatement{
		BankAccountID:   uuid.New(),
		StatementNumber: "ST-001",
		StatementDate:   time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC),
		ClosingBalance:  decimal.RequireFromString("100.00"),
		Transactions: []NewBankTransaction{
			{
				TransactionDate: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
				Description:     "Fee",
				Amount:          decimal.RequireFromString("5.00"),
				Type:            TypeDebit,
			},
		},
	}
}

func TestNewBankStatementValidate(t *testing.T) {
	s := validStatement()
	require.NoError(t, s.Validate())

	missing := validStatement()
	missing.StatementNumber = ""
	assert.Error(t, missing.Validate())

	badType := validStatement()
	badType.Transactions[0].Type = "transfer"
	assert.Error(t, badType.Validate())

	zeroAmount := validStatement()
	zeroAmount.Transactions[0].Amount = decimal.Zero
	assert.ErrorIs(t, zeroAmount.Validate(), ErrNonPositiveAmount)

	negativeAmount := validStatement()
	negativeAmount.Transactions[0].Amount = decimal.RequireFromString("-1.00")
	assert.ErrorIs(t, negativeAmount.Validate(), ErrNonPositiveAmount)

	// A statement with no transactions is valid; it just reconciles trivially.
	empty := validStatement()
	empty.Transactions = nil
	assert.NoError(t, empty.Validate())
}
