package reconciliation

import (
	"context"
	"fmt"

	"bank-reconciliation-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Service drives bank statement reconciliation: matching imported bank
// transactions against journal entries, tracking match state, and closing out
// statements once coverage is complete.
type Service struct {
	store  Store
	audit  ActivityLogger
	logger *logrus.Logger
}

func NewService(store Store, audit ActivityLogger, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		audit:  audit,
		logger: logger,
	}
}

// Summary is the per-statement reconciliation rollup.
type Summary struct {
	TotalDebit            decimal.Decimal `json:"total_debit"`
	TotalCredit           decimal.Decimal `json:"total_credit"`
	TotalTransactions     int             `json:"total_transactions"`
	MatchedTransactions   int             `json:"matched_transactions"`
	UnmatchedTransactions int             `json:"unmatched_transactions"`
	RejectedTransactions  int             `json:"rejected_transactions"`
}

// StatementWithSummary pairs a statement with its current summary for the
// reconciliation history view.
type StatementWithSummary struct {
	Statement models.BankStatement `json:"statement"`
	Summary   Summary              `json:"summary"`
}

// summarize is the single aggregation routine shared by GetSummary and
// ReconcileStatement so the two call sites can never drift.
func summarize(transactions []models.BankTransaction) Summary {
	summary := Summary{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, tx := range transactions {
		summary.TotalTransactions++
		if tx.Type == models.TypeDebit {
			summary.TotalDebit = summary.TotalDebit.Add(tx.Amount)
		} else {
			summary.TotalCredit = summary.TotalCredit.Add(tx.Amount)
		}

		switch tx.Status {
		case models.StatusMatched:
			summary.MatchedTransactions++
		case models.StatusRejected:
			summary.RejectedTransactions++
		default:
			summary.UnmatchedTransactions++
		}
	}

	return summary
}

// CreateStatement is the import hook: the statement arrives with its
// transactions already attached, all starting out unmatched.
func (s *Service) CreateStatement(ctx context.Context, input *models.NewBankStatement, userID string) (*models.BankStatement, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	statement := &models.BankStatement{
		ID:              uuid.New(),
		BankAccountID:   input.BankAccountID,
		StatementNumber: input.StatementNumber,
		StatementDate:   input.StatementDate,
		ClosingBalance:  input.ClosingBalance,
		FilePath:        input.FilePath,
		Status:          models.StatementPending,
	}

	transactions := make([]models.BankTransaction, 0, len(input.Transactions))
	for _, tx := range input.Transactions {
		transactions = append(transactions, models.BankTransaction{
			ID:              uuid.New(),
			StatementID:     statement.ID,
			TransactionDate: tx.TransactionDate,
			Description:     tx.Description,
			Amount:          tx.Amount,
			Type:            tx.Type,
			Status:          models.StatusUnmatched,
		})
	}

	err := s.store.Atomic(ctx, func(st Store) error {
		account, err := st.Accounts().GetByID(ctx, input.BankAccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return ErrAccountNotFound
		}
		if err := st.Statements().Create(ctx, statement); err != nil {
			return err
		}
		if len(transactions) == 0 {
			return nil
		}
		return st.Transactions().CreateBatch(ctx, transactions)
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, "import_statement", "bank_statement", statement.ID, map[string]interface{}{
		"statement_number":  statement.StatementNumber,
		"transaction_count": len(transactions),
	})

	return statement, nil
}

// MatchTransaction matches a bank transaction against a journal entry. The
// entry must carry the transaction's amount on both its debit and credit side.
func (s *Service) MatchTransaction(ctx context.Context, transactionID, journalEntryID uuid.UUID, userID string) (*models.BankTransaction, error) {
	var matched *models.BankTransaction

	err := s.store.Atomic(ctx, func(st Store) error {
		tx, err := st.Transactions().GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return ErrTransactionNotFound
		}
		if tx.Status == models.StatusMatched {
			return ErrAlreadyMatched
		}

		entry, err := st.JournalEntries().GetByID(ctx, journalEntryID)
		if err != nil {
			return err
		}
		if entry == nil {
			return ErrJournalEntryNotFound
		}
		if !tx.Amount.Equal(entry.Debit) || !tx.Amount.Equal(entry.Credit) {
			return ErrAmountMismatch
		}

		tx.Status = models.StatusMatched
		tx.MatchedJournalEntryID = &journalEntryID
		if err := st.Transactions().Update(ctx, tx); err != nil {
			return err
		}
		matched = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, "match", "bank_transaction", transactionID, map[string]interface{}{
		"journal_entry_id": journalEntryID.String(),
	})

	return matched, nil
}

// UnmatchTransaction resets a transaction to unmatched and clears its journal
// reference. It is idempotent regardless of prior status, which also makes it
// the way out of rejected.
func (s *Service) UnmatchTransaction(ctx context.Context, transactionID uuid.UUID, userID string) (*models.BankTransaction, error) {
	var unmatched *models.BankTransaction

	err := s.store.Atomic(ctx, func(st Store) error {
		tx, err := st.Transactions().GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return ErrTransactionNotFound
		}

		tx.Status = models.StatusUnmatched
		tx.MatchedJournalEntryID = nil
		if err := st.Transactions().Update(ctx, tx); err != nil {
			return err
		}
		unmatched = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, "unmatch", "bank_transaction", transactionID, nil)

	return unmatched, nil
}

// RejectTransaction marks a transaction as rejected for reconciliation
// purposes. A matched transaction must be unmatched first; silently dropping
// a confirmed match reference would lose audit information.
func (s *Service) RejectTransaction(ctx context.Context, transactionID uuid.UUID, userID string) (*models.BankTransaction, error) {
	var rejected *models.BankTransaction

	err := s.store.Atomic(ctx, func(st Store) error {
		tx, err := st.Transactions().GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return ErrTransactionNotFound
		}
		if tx.Status == models.StatusMatched {
			return ErrAlreadyMatched
		}

		tx.Status = models.StatusRejected
		tx.MatchedJournalEntryID = nil
		if err := st.Transactions().Update(ctx, tx); err != nil {
			return err
		}
		rejected = tx
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, "reject", "bank_transaction", transactionID, nil)

	return rejected, nil
}

// GetSummary computes the reconciliation rollup for one statement. A
// statement with zero transactions yields a zero-valued summary; only a
// missing statement is an error.
func (s *Service) GetSummary(ctx context.Context, statementID uuid.UUID) (Summary, error) {
	statement, err := s.store.Statements().GetByID(ctx, statementID)
	if err != nil {
		return Summary{}, err
	}
	if statement == nil {
		return Summary{}, ErrStatementNotFound
	}

	transactions, err := s.store.Transactions().ListByStatement(ctx, statementID)
	if err != nil {
		return Summary{}, err
	}

	return summarize(transactions), nil
}

// ReconcileStatement sets the statement to processed iff every transaction is
// matched, pending otherwise. The boolean means the operation completed, not
// that the statement is fully reconciled; callers re-read the status.
func (s *Service) ReconcileStatement(ctx context.Context, statementID uuid.UUID, userID string) (bool, error) {
	var status models.StatementStatus

	err := s.store.Atomic(ctx, func(st Store) error {
		statement, err := st.Statements().GetByID(ctx, statementID)
		if err != nil {
			return err
		}
		if statement == nil {
			return ErrStatementNotFound
		}

		transactions, err := st.Transactions().ListByStatement(ctx, statementID)
		if err != nil {
			return err
		}

		summary := summarize(transactions)
		status = models.StatementPending
		if summary.MatchedTransactions == summary.TotalTransactions {
			status = models.StatementProcessed
		}

		return st.Statements().UpdateStatus(ctx, statementID, status)
	})
	if err != nil {
		return false, err
	}

	s.logActivity(ctx, userID, "reconcile", "bank_statement", statementID, map[string]interface{}{
		"status": string(status),
	})

	return true, nil
}

// ListUnmatched returns unmatched transactions across all statements with
// id-cursor pagination. limit <= 0 returns everything.
func (s *Service) ListUnmatched(ctx context.Context, cursor uuid.UUID, limit int) ([]models.BankTransaction, uuid.UUID, bool, error) {
	fetch := limit
	if fetch > 0 {
		fetch++
	}

	transactions, err := s.store.Transactions().ListUnmatched(ctx, cursor, fetch)
	if err != nil {
		return nil, uuid.Nil, false, err
	}

	if limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
		return transactions, transactions[limit-1].ID, true, nil
	}
	return transactions, uuid.Nil, false, nil
}

// History returns the account's statements, most recent first, each paired
// with its current summary.
func (s *Service) History(ctx context.Context, accountID uuid.UUID) ([]StatementWithSummary, error) {
	account, err := s.store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	statements, err := s.store.Statements().ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	history := make([]StatementWithSummary, 0, len(statements))
	for _, statement := range statements {
		transactions, err := s.store.Transactions().ListByStatement(ctx, statement.ID)
		if err != nil {
			return nil, err
		}
		history = append(history, StatementWithSummary{
			Statement: statement,
			Summary:   summarize(transactions),
		})
	}

	return history, nil
}

func (s *Service) logActivity(ctx context.Context, userID, action, resource string, resourceID uuid.UUID, details map[string]interface{}) {
	if s.audit == nil {
		return
	}
	if err := s.audit.LogActivity(ctx, userID, action, resource, resourceID, details); err != nil {
		s.logger.WithFields(logrus.Fields{
			"action":      action,
			"resource":    resource,
			"resource_id": resourceID.String(),
		}).WithError(err).Warn("activity log write failed")
	}
}
