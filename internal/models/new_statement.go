package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewBankStatement is the import payload: a statement arrives with its
// transactions already attached.
type NewBankStatement struct {
	BankAccountID   uuid.UUID            `json:"bank_account_id" validate:"required"`
	StatementNumber string               `json:"statement_number" validate:"required"`
	StatementDate   time.Time            `json:"statement_date" validate:"required"`
	ClosingBalance  decimal.Decimal      `json:"closing_balance"`
	FilePath        string               `json:"file_path"`
	Transactions    []NewBankTransaction `json:"transactions" validate:"dive"`
}

type NewBankTransaction struct {
	TransactionDate time.Time       `json:"transaction_date" validate:"required"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Type            TransactionType `json:"type" validate:"required,oneof=credit debit"`
}

var validate = validator.New()

// Validate checks the import payload. Amount positivity is checked by hand
// since validator's gt does not understand decimal.Decimal.
func (s *NewBankStatement) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}
	for i := range s.Transactions {
		if !s.Transactions[i].Amount.IsPositive() {
			return ErrNonPositiveAmount
		}
	}
	return nil
}
