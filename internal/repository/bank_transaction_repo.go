package repository

import (
	"context"
	"errors"

	"bank-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BankTransactionRepository struct {
	db *gorm.DB
}

func NewBankTransactionRepository(db *gorm.DB) *BankTransactionRepository {
	return &BankTransactionRepository{db: db}
}

func (r *BankTransactionRepository) CreateBatch(ctx context.Context, transactions []models.BankTransaction) error {
	return r.db.WithContext(ctx).Create(&transactions).Error
}

func (r *BankTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BankTransaction, error) {
	var tx models.BankTransaction
	err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *BankTransactionRepository) ListByStatement(ctx context.Context, statementID uuid.UUID) ([]models.BankTransaction, error) {
	var txs []models.BankTransaction
	err := r.db.WithContext(ctx).
		Where("statement_id = ?", statementID).
		Order("id ASC").
		Find(&txs).Error
	return txs, err
}

func (r *BankTransactionRepository) ListUnmatched(ctx context.Context, cursor uuid.UUID, limit int) ([]models.BankTransaction, error) {
	var txs []models.BankTransaction

	query := r.db.WithContext(ctx).
		Where("status = ?", models.StatusUnmatched).
		Order("id ASC")

	if cursor != uuid.Nil {
		query = query.Where("id > ?", cursor)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&txs).Error
	return txs, err
}

func (r *BankTransactionRepository) Update(ctx context.Context, transaction *models.BankTransaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}
