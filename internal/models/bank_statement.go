package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StatementStatus string

const (
	StatementPending   StatementStatus = "pending"
	StatementProcessed StatementStatus = "processed"
)

type BankStatement struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	BankAccountID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"bank_account_id"`
	StatementNumber string          `gorm:"size:64;uniqueIndex" json:"statement_number"`
	StatementDate   time.Time       `gorm:"index" json:"statement_date"`
	ClosingBalance  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"closing_balance"`
	FilePath        string          `gorm:"size:512" json:"file_path,omitempty"`
	Status          StatementStatus `gorm:"size:16;index;default:pending" json:"status"`
	// Transactions are owned by the statement; deleting a statement deletes them.
	Transactions []BankTransaction `gorm:"foreignKey:StatementID;constraint:OnDelete:CASCADE" json:"transactions,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
