package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the posted, per-account projection of a journal line.
// Immutable once created; ordering for running-balance purposes is by
// (date, then stable insertion order) ascending.
type LedgerEntry struct {
	LedgerEntryID string          `json:"ledgerEntryID"`
	Date          time.Time       `json:"date"`
	AccountID     string          `json:"accountID"`
	Reference     string          `json:"reference"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// SignedAmount returns the entry's effect on a running balance for an
// account with the given normal balance: debit-normal accounts grow on
// debits, credit-normal accounts grow on credits.
func (e LedgerEntry) SignedAmount(normal NormalBalance) decimal.Decimal {
	if normal == NormalCredit {
		return e.Credit.Sub(e.Debit)
	}
	return e.Debit.Sub(e.Credit)
}
