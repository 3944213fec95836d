package repository

import (
	"context"
	"database/sql"

	"bank-reconciliation-backend/internal/services/reconciliation"

	"gorm.io/gorm"
)

// Store bundles the gorm repositories behind the engine's Store interface.
type Store struct {
	db           *gorm.DB
	accounts     *BankAccountRepository
	statements   *BankStatementRepository
	transactions *BankTransactionRepository
	journals     *JournalEntryRepository
}

var _ reconciliation.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		accounts:     NewBankAccountRepository(db),
		statements:   NewBankStatementRepository(db),
		transactions: NewBankTransactionRepository(db),
		journals:     NewJournalEntryRepository(db),
	}
}

func (s *Store) Accounts() reconciliation.AccountRepository { return s.accounts }

func (s *Store) Statements() reconciliation.StatementRepository { return s.statements }

func (s *Store) Transactions() reconciliation.TransactionRepository { return s.transactions }

func (s *Store) JournalEntries() reconciliation.JournalEntryRepository { return s.journals }

// Atomic runs fn in one serializable transaction so the matched-count check
// and the statement status write cannot interleave with concurrent matches.
func (s *Store) Atomic(ctx context.Context, fn func(reconciliation.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}
