package reconciliation

import "errors"

var (
	ErrAccountNotFound      = errors.New("bank account not found")
	ErrStatementNotFound    = errors.New("bank statement not found")
	ErrTransactionNotFound  = errors.New("bank transaction not found")
	ErrJournalEntryNotFound = errors.New("journal entry not found")

	// ErrAlreadyMatched is returned when matching or rejecting a transaction
	// that already holds a confirmed match; callers must unmatch first.
	ErrAlreadyMatched = errors.New("transaction is already matched")

	// ErrAmountMismatch is returned when the transaction amount does not equal
	// both sides of the journal entry.
	ErrAmountMismatch = errors.New("transaction amount does not match journal entry")

	ErrInvalidInput = errors.New("invalid input")
)
