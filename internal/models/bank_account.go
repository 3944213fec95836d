package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BankAccount struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	AccountNumber string          `gorm:"size:64;uniqueIndex" json:"account_number"`
	BankName      string          `gorm:"size:255" json:"bank_name,omitempty"`
	Balance       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"balance"`
	Currency      string          `gorm:"size:8" json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
}
