package reconciliation

import (
	"context"

	"bank-reconciliation-backend/internal/models"

	"github.com/google/uuid"
)

// Store is the transactional backing store the engine runs against. Lookups
// return (nil, nil) when the row does not exist; only infrastructure failures
// surface as errors.
type Store interface {
	Accounts() AccountRepository
	Statements() StatementRepository
	Transactions() TransactionRepository
	JournalEntries() JournalEntryRepository

	// Atomic runs fn inside a single serializable transaction. The Store
	// passed to fn is scoped to that transaction.
	Atomic(ctx context.Context, fn func(Store) error) error
}

type AccountRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.BankAccount, error)
}

type StatementRepository interface {
	Create(ctx context.Context, statement *models.BankStatement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BankStatement, error)
	// ListByAccount returns the account's statements ordered by statement
	// date descending, most recent first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.BankStatement, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.StatementStatus) error
}

type TransactionRepository interface {
	CreateBatch(ctx context.Context, transactions []models.BankTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BankTransaction, error)
	ListByStatement(ctx context.Context, statementID uuid.UUID) ([]models.BankTransaction, error)
	// ListUnmatched returns unmatched transactions across all statements in
	// stable id order, starting after cursor when set. limit <= 0 means all.
	ListUnmatched(ctx context.Context, cursor uuid.UUID, limit int) ([]models.BankTransaction, error)
	Update(ctx context.Context, transaction *models.BankTransaction) error
}

type JournalEntryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.JournalEntry, error)
}

// ActivityLogger is the append-only audit sink. Failures are logged and
// swallowed; a dead audit trail never aborts a reconciliation operation.
type ActivityLogger interface {
	LogActivity(ctx context.Context, userID, action, resource string, resourceID uuid.UUID, details map[string]interface{}) error
}
