package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is one account's aggregated debit/credit balance as of a
// date. In a correctly-posted ledger the two sides are mutually exclusive,
// but both are carried for display.
type AccountBalance struct {
	AccountID     string          `json:"accountID"`
	DebitBalance  decimal.Decimal `json:"debitBalance"`
	CreditBalance decimal.Decimal `json:"creditBalance"`
	AsOf          time.Time       `json:"asOf"`
}

// TrialBalanceRow represents a single account row in a trial balance report.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	// IsBalanced labels this row's own debit/credit pair; it is a
	// per-row sanity signal independent of the grand-total verdict.
	IsBalanced bool `json:"isBalanced"`
}

// TrialBalanceGroup aggregates accounts of one type for presentation.
type TrialBalanceGroup struct {
	AccountType  AccountType       `json:"accountType"`
	Rows         []TrialBalanceRow `json:"rows"`
	AccountCount int               `json:"accountCount"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	Net          decimal.Decimal   `json:"net"` // debits - credits
}

// TrialBalanceSummary is the final grouped trial balance. Groups are sorted
// by descending account count so the largest categories render first.
type TrialBalanceSummary struct {
	AsOf         time.Time           `json:"asOf"`
	Groups       []TrialBalanceGroup `json:"groups"`
	TotalDebits  decimal.Decimal     `json:"totalDebits"`
	TotalCredits decimal.Decimal     `json:"totalCredits"`
	IsBalanced   bool                `json:"isBalanced"`
}
