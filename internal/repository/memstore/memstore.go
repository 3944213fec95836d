// Package memstore is an in-memory implementation of the reconciliation
// store, built for tests and local development. It is explicitly constructed
// and injected like the gorm-backed store; nothing here is a package-level
// singleton. Atomic does not provide real isolation.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/services/reconciliation"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.Mutex
	accounts     map[uuid.UUID]models.BankAccount
	statements   map[uuid.UUID]models.BankStatement
	transactions map[uuid.UUID]models.BankTransaction
	journals     map[uuid.UUID]models.JournalEntry
}

var _ reconciliation.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		accounts:     make(map[uuid.UUID]models.BankAccount),
		statements:   make(map[uuid.UUID]models.BankStatement),
		transactions: make(map[uuid.UUID]models.BankTransaction),
		journals:     make(map[uuid.UUID]models.JournalEntry),
	}
}

func (s *Store) Accounts() reconciliation.AccountRepository         { return accountsRepo{s} }
func (s *Store) Statements() reconciliation.StatementRepository     { return statementsRepo{s} }
func (s *Store) Transactions() reconciliation.TransactionRepository { return transactionsRepo{s} }
func (s *Store) JournalEntries() reconciliation.JournalEntryRepository {
	return journalsRepo{s}
}

func (s *Store) Atomic(ctx context.Context, fn func(reconciliation.Store) error) error {
	return fn(s)
}

// Seed helpers for tests.

func (s *Store) AddAccount(account models.BankAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
}

func (s *Store) AddStatement(statement models.BankStatement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statements[statement.ID] = statement
}

func (s *Store) AddTransaction(transaction models.BankTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[transaction.ID] = transaction
}

func (s *Store) AddJournalEntry(entry models.JournalEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journals[entry.ID] = entry
}

type accountsRepo struct{ s *Store }

func (r accountsRepo) GetByID(_ context.Context, id uuid.UUID) (*models.BankAccount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if account, ok := r.s.accounts[id]; ok {
		return &account, nil
	}
	return nil, nil
}

type statementsRepo struct{ s *Store }

func (r statementsRepo) Create(_ context.Context, statement *models.BankStatement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.statements[statement.ID] = *statement
	return nil
}

func (r statementsRepo) GetByID(_ context.Context, id uuid.UUID) (*models.BankStatement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if statement, ok := r.s.statements[id]; ok {
		return &statement, nil
	}
	return nil, nil
}

func (r statementsRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]models.BankStatement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var statements []models.BankStatement
	for _, statement := range r.s.statements {
		if statement.BankAccountID == accountID {
			statements = append(statements, statement)
		}
	}
	sort.Slice(statements, func(i, j int) bool {
		return statements[i].StatementDate.After(statements[j].StatementDate)
	})
	return statements, nil
}

func (r statementsRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.StatementStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	statement, ok := r.s.statements[id]
	if !ok {
		return nil
	}
	statement.Status = status
	r.s.statements[id] = statement
	return nil
}

type transactionsRepo struct{ s *Store }

func (r transactionsRepo) CreateBatch(_ context.Context, transactions []models.BankTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, tx := range transactions {
		r.s.transactions[tx.ID] = tx
	}
	return nil
}

func (r transactionsRepo) GetByID(_ context.Context, id uuid.UUID) (*models.BankTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tx, ok := r.s.transactions[id]; ok {
		return &tx, nil
	}
	return nil, nil
}

func (r transactionsRepo) ListByStatement(_ context.Context, statementID uuid.UUID) ([]models.BankTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var txs []models.BankTransaction
	for _, tx := range r.s.transactions {
		if tx.StatementID == statementID {
			txs = append(txs, tx)
		}
	}
	sortByID(txs)
	return txs, nil
}

func (r transactionsRepo) ListUnmatched(_ context.Context, cursor uuid.UUID, limit int) ([]models.BankTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var txs []models.BankTransaction
	for _, tx := range r.s.transactions {
		if tx.Status != models.StatusUnmatched {
			continue
		}
		if cursor != uuid.Nil && strings.Compare(tx.ID.String(), cursor.String()) <= 0 {
			continue
		}
		txs = append(txs, tx)
	}
	sortByID(txs)
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}

func (r transactionsRepo) Update(_ context.Context, transaction *models.BankTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.transactions[transaction.ID] = *transaction
	return nil
}

type journalsRepo struct{ s *Store }

func (r journalsRepo) GetByID(_ context.Context, id uuid.UUID) (*models.JournalEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if entry, ok := r.s.journals[id]; ok {
		return &entry, nil
	}
	return nil, nil
}

func sortByID(txs []models.BankTransaction) {
	sort.Slice(txs, func(i, j int) bool {
		return strings.Compare(txs[i].ID.String(), txs[j].ID.String()) < 0
	})
}

// Recorder is an in-memory activity sink for tests.
type Recorder struct {
	mu      sync.Mutex
	Entries []RecordedActivity
	Err     error
}

type RecordedActivity struct {
	UserID     string
	Action     string
	Resource   string
	ResourceID uuid.UUID
	Details    map[string]interface{}
}

var _ reconciliation.ActivityLogger = (*Recorder)(nil)

func (r *Recorder) LogActivity(_ context.Context, userID, action, resource string, resourceID uuid.UUID, details map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Entries = append(r.Entries, RecordedActivity{
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    details,
	})
	return nil
}
