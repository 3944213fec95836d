package repository

import (
	"context"
	"errors"

	"bank-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BankStatementRepository struct {
	db *gorm.DB
}

func NewBankStatementRepository(db *gorm.DB) *BankStatementRepository {
	return &BankStatementRepository{db: db}
}

func (r *BankStatementRepository) Create(ctx context.Context, statement *models.BankStatement) error {
	return r.db.WithContext(ctx).Create(statement).Error
}

func (r *BankStatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BankStatement, error) {
	var statement models.BankStatement
	err := r.db.WithContext(ctx).First(&statement, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &statement, nil
}

// ListByAccount orders by statement_date descending; history consumers rely
// on most-recent-first.
func (r *BankStatementRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.BankStatement, error) {
	var statements []models.BankStatement
	err := r.db.WithContext(ctx).
		Where("bank_account_id = ?", accountID).
		Order("statement_date DESC").
		Find(&statements).Error
	return statements, err
}

func (r *BankStatementRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.StatementStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.BankStatement{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}
