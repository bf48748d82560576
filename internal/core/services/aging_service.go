package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/finbooks/ledger_core/internal/core/domain"
)

// AgingService buckets outstanding receivables by days past due and
// classifies aggregate collections risk.
type AgingService struct {
	BaseService
}

// NewAgingService creates a new AgingService.
func NewAgingService() *AgingService {
	return &AgingService{}
}

// Classify buckets every invoice amount by how many days past its due date
// it is on asOf, aggregated per customer: <= 0 days is current, 1-30 days30,
// 31-60 days60, 61-90 days90, over 90 over90. Each amount lands in exactly
// one bucket, so per customer the bucket sum equals the total outstanding.
//
// Rows are recomputed fully for the given snapshot and sorted by customer
// name, then customer id. The risk summary aggregates buckets across all
// customers: low = current + days30, medium = days60 + days90, high = over90.
func (s *AgingService) Classify(ctx context.Context, invoices []domain.OpenInvoice, asOf time.Time) ([]domain.AgingRow, domain.RiskSummary) {
	rowsByCustomer := make(map[string]*domain.AgingRow)

	for _, inv := range invoices {
		row, ok := rowsByCustomer[inv.CustomerID]
		if !ok {
			row = &domain.AgingRow{
				CustomerID:   inv.CustomerID,
				CustomerName: inv.CustomerName,
			}
			rowsByCustomer[inv.CustomerID] = row
		}
		if row.CustomerName == "" {
			row.CustomerName = inv.CustomerName
		}

		switch days := daysPastDue(inv.DueDate, asOf); {
		case days <= 0:
			row.Buckets.Current = row.Buckets.Current.Add(inv.Amount)
		case days <= 30:
			row.Buckets.Days30 = row.Buckets.Days30.Add(inv.Amount)
		case days <= 60:
			row.Buckets.Days60 = row.Buckets.Days60.Add(inv.Amount)
		case days <= 90:
			row.Buckets.Days90 = row.Buckets.Days90.Add(inv.Amount)
		default:
			row.Buckets.Over90 = row.Buckets.Over90.Add(inv.Amount)
		}
		row.TotalOutstanding = row.TotalOutstanding.Add(inv.Amount)
		row.InvoiceCount++
	}

	rows := make([]domain.AgingRow, 0, len(rowsByCustomer))
	var risk domain.RiskSummary
	for _, row := range rowsByCustomer {
		rows = append(rows, *row)
		risk.Low = risk.Low.Add(row.Buckets.Current).Add(row.Buckets.Days30)
		risk.Medium = risk.Medium.Add(row.Buckets.Days60).Add(row.Buckets.Days90)
		risk.High = risk.High.Add(row.Buckets.Over90)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CustomerName != rows[j].CustomerName {
			return rows[i].CustomerName < rows[j].CustomerName
		}
		return rows[i].CustomerID < rows[j].CustomerID
	})

	s.LogDebug(ctx, "Classified receivable aging",
		slog.Int("invoice_count", len(invoices)),
		slog.Int("customer_count", len(rows)),
		slog.String("as_of", asOf.Format(time.DateOnly)))
	return rows, risk
}

// daysPastDue counts whole days between dueDate and asOf on UTC-truncated
// dates, so an invoice due later the same day is never past due. Future due
// dates yield a negative count.
func daysPastDue(dueDate, asOf time.Time) int {
	due := dueDate.UTC().Truncate(24 * time.Hour)
	at := asOf.UTC().Truncate(24 * time.Hour)
	return int(at.Sub(due).Hours() / 24)
}
