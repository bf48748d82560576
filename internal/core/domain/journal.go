package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is a single debit/credit line within a journal entry.
// Exactly one side is expected to carry the amount, but the model does not
// forbid both sides being zero or both being nonzero; only the aggregate
// balance check gates submission.
type JournalLine struct {
	LineID      string          `json:"lineID"`    // Assigned during draft normalization (e.g., UUID)
	AccountID   string          `json:"accountID"` // FK -> Account.accountID
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`  // >= 0
	Credit      decimal.Decimal `json:"credit"` // >= 0
}

// JournalEntry represents a single dated financial event composed of
// multiple lines. Created in draft state; posting is owned by the external
// journal system and converts the entry into immutable ledger entries.
type JournalEntry struct {
	Reference   string        `json:"reference"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
	Lines       []JournalLine `json:"lines"`
	IsPosted    bool          `json:"isPosted"`
}

// BalanceCheck is the result of validating a journal entry's balance.
type BalanceCheck struct {
	TotalDebits  decimal.Decimal `json:"totalDebits"`
	TotalCredits decimal.Decimal `json:"totalCredits"`
	Difference   decimal.Decimal `json:"difference"` // |debits - credits|
	IsBalanced   bool            `json:"isBalanced"`
}
