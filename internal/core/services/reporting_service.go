package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/ledger_core/internal/core/domain"
)

// ReportingService aggregates per-account balances into trial balance
// summaries.
type ReportingService struct {
	BaseService
	tolerance decimal.Decimal
}

// NewReportingService creates a reporting service with the given absolute
// balance tolerance. A negative tolerance falls back to the historical
// 0.01 default.
func NewReportingService(tolerance decimal.Decimal) *ReportingService {
	if tolerance.IsNegative() {
		tolerance = decimal.RequireFromString("0.01")
	}
	return &ReportingService{tolerance: tolerance}
}

// TrialBalance groups the given per-account balances by account type and
// computes per-type and grand totals plus a balanced/unbalanced verdict.
// Balances referencing accounts absent from the index group under the
// "Unknown" category and still count toward every total.
//
// Display ordering: groups sorted by descending account count (largest
// categories first), rows within a group by account name.
func (s *ReportingService) TrialBalance(ctx context.Context, balances []domain.AccountBalance, accounts *AccountIndex) domain.TrialBalanceSummary {
	groupsByType := make(map[domain.AccountType]*domain.TrialBalanceGroup)
	var asOf time.Time

	for _, bal := range balances {
		if asOf.IsZero() && !bal.AsOf.IsZero() {
			asOf = bal.AsOf
		}

		accountType := accounts.AccountType(bal.AccountID)
		group, ok := groupsByType[accountType]
		if !ok {
			group = &domain.TrialBalanceGroup{AccountType: accountType}
			groupsByType[accountType] = group
		}

		row := domain.TrialBalanceRow{
			AccountID:   bal.AccountID,
			AccountName: accounts.DisplayName(bal.AccountID),
			AccountType: accountType,
			Debit:       bal.DebitBalance,
			Credit:      bal.CreditBalance,
			IsBalanced:  balancedWithin(bal.DebitBalance.Sub(bal.CreditBalance).Abs(), s.tolerance),
		}
		group.Rows = append(group.Rows, row)
		group.AccountCount++
		group.TotalDebits = group.TotalDebits.Add(row.Debit)
		group.TotalCredits = group.TotalCredits.Add(row.Credit)
	}

	summary := domain.TrialBalanceSummary{
		AsOf:         asOf,
		Groups:       make([]domain.TrialBalanceGroup, 0, len(groupsByType)),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	for _, group := range groupsByType {
		group.Net = group.TotalDebits.Sub(group.TotalCredits)
		sort.Slice(group.Rows, func(i, j int) bool {
			return group.Rows[i].AccountName < group.Rows[j].AccountName
		})
		summary.Groups = append(summary.Groups, *group)
		summary.TotalDebits = summary.TotalDebits.Add(group.TotalDebits)
		summary.TotalCredits = summary.TotalCredits.Add(group.TotalCredits)
	}

	// Largest categories first; ties broken by type name for stable output.
	sort.Slice(summary.Groups, func(i, j int) bool {
		if summary.Groups[i].AccountCount != summary.Groups[j].AccountCount {
			return summary.Groups[i].AccountCount > summary.Groups[j].AccountCount
		}
		return summary.Groups[i].AccountType < summary.Groups[j].AccountType
	})

	summary.IsBalanced = balancedWithin(summary.TotalDebits.Sub(summary.TotalCredits).Abs(), s.tolerance)

	s.LogInfo(ctx, "Trial balance aggregated",
		slog.Int("account_count", len(balances)),
		slog.Int("group_count", len(summary.Groups)),
		slog.Bool("is_balanced", summary.IsBalanced))
	return summary
}
