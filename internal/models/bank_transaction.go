package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

type MatchStatus string

const (
	StatusUnmatched MatchStatus = "unmatched"
	StatusMatched   MatchStatus = "matched"
	StatusRejected  MatchStatus = "rejected"
)

type BankTransaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	StatementID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"statement_id"`
	TransactionDate time.Time       `gorm:"column:transaction_date" json:"transaction_date"`
	Description     string          `gorm:"type:text" json:"description"`
	Amount          decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Type            TransactionType `gorm:"size:8;not null" json:"type"`
	Status          MatchStatus     `gorm:"size:16;index;default:unmatched" json:"status"`
	// Non-owning reference; cleared when the journal entry goes away or the
	// transaction is unmatched/rejected. Set exactly when Status is matched.
	MatchedJournalEntryID *uuid.UUID `gorm:"type:uuid" json:"matched_journal_entry_id,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}
