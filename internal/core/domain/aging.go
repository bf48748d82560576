package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenInvoice is an outstanding receivable fed into aging classification.
type OpenInvoice struct {
	CustomerID   string          `json:"customerID"`
	CustomerName string          `json:"customerName"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"dueDate"`
}

// AgingBuckets partitions a customer's outstanding amount by days past due.
type AgingBuckets struct {
	Current decimal.Decimal `json:"current"` // not yet due
	Days30  decimal.Decimal `json:"days30"`  // 1-30 days past due
	Days60  decimal.Decimal `json:"days60"`  // 31-60
	Days90  decimal.Decimal `json:"days90"`  // 61-90
	Over90  decimal.Decimal `json:"over90"`  // > 90
}

// Total sums all buckets. By construction it equals the customer's total
// outstanding: every invoice amount lands in exactly one bucket.
func (b AgingBuckets) Total() decimal.Decimal {
	return b.Current.Add(b.Days30).Add(b.Days60).Add(b.Days90).Add(b.Over90)
}

// AgingRow is one customer's receivable aging. Derived, read-only; it is
// recomputed fully on every as-of date change, never incrementally patched.
type AgingRow struct {
	CustomerID       string          `json:"customerID"`
	CustomerName     string          `json:"customerName"`
	Buckets          AgingBuckets    `json:"buckets"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	InvoiceCount     int             `json:"invoiceCount"`
}

// RiskSummary aggregates bucket totals into collections risk tiers. These
// are informational only; they do not feed back into bucket computation.
type RiskSummary struct {
	Low    decimal.Decimal `json:"low"`    // current + days30
	Medium decimal.Decimal `json:"medium"` // days60 + days90
	High   decimal.Decimal `json:"high"`   // over90
}
