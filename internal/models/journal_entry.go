package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalEntry is the internal double-sided record a bank transaction is matched
// against. Debit and credit carry the same value for a balanced entry; that
// invariant is enforced where entries are created, not here.
type JournalEntry struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID       uuid.UUID       `gorm:"type:uuid;index" json:"account_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	Description     string          `gorm:"type:text" json:"description"`
	Debit           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"debit"`
	Credit          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"credit"`
	CreatedAt       time.Time       `json:"created_at"`
}
