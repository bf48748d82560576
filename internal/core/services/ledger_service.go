package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finbooks/ledger_core/internal/core/domain"
	"github.com/finbooks/ledger_core/internal/dto"
)

// LedgerService computes cumulative account balances over ordered ledger
// entry sequences.
type LedgerService struct {
	BaseService
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

// SortEntries returns a copy of entries ordered by (date ascending, then
// stable insertion order). This ordering must be established once, over the
// entire filtered result set, before any windowing.
func (s *LedgerService) SortEntries(entries []domain.LedgerEntry) []domain.LedgerEntry {
	sorted := make([]domain.LedgerEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// RunningBalances walks the full, correctly ordered entry sequence once and
// returns the cumulative balance for the target account after each entry,
// aligned index-for-index with the input. Entries for other accounts leave
// the balance unchanged but still occupy an output slot, so row indexes stay
// aligned for mixed-account tables.
//
// The balance at index k equals the signed sum of the target account's
// amounts over [0..k] of the whole dataset, not just a displayed page;
// recomputing within a page would be wrong at every page boundary.
func (s *LedgerService) RunningBalances(ctx context.Context, entries []domain.LedgerEntry, accountID string, accounts *AccountIndex) []decimal.Decimal {
	normal := accounts.NormalBalance(accountID)

	balances := make([]decimal.Decimal, len(entries))
	balance := decimal.Zero
	for i, entry := range entries {
		if entry.AccountID == accountID {
			balance = balance.Add(entry.SignedAmount(normal))
		}
		balances[i] = balance
	}

	s.LogDebug(ctx, "Computed running balances",
		slog.String("account_id", accountID),
		slog.Int("entry_count", len(entries)))
	return balances
}

// LedgerView assembles the display rows for one account's ledger table:
// entries sorted over the whole dataset, running balances computed before
// windowing, account display names resolved through the index, and the
// requested page sliced out last.
func (s *LedgerService) LedgerView(ctx context.Context, entries []domain.LedgerEntry, accountID string, accounts *AccountIndex, page, pageSize int) dto.LedgerView {
	sorted := s.SortEntries(entries)
	balances := s.RunningBalances(ctx, sorted, accountID, accounts)

	pagination := domain.NewPaginationInfo(page, pageSize, len(sorted))
	start := pagination.Offset()
	if start > len(sorted) {
		start = len(sorted)
	}
	end := start + pagination.PageSize
	if pagination.PageSize < 1 || end > len(sorted) {
		end = len(sorted)
	}

	rows := make([]dto.LedgerRow, 0, end-start)
	for i := start; i < end; i++ {
		entry := sorted[i]
		rows = append(rows, dto.LedgerRow{
			LedgerEntryID: entry.LedgerEntryID,
			Date:          entry.Date,
			AccountID:     entry.AccountID,
			AccountName:   accounts.DisplayName(entry.AccountID),
			Reference:     entry.Reference,
			Description:   entry.Description,
			Debit:         entry.Debit,
			Credit:        entry.Credit,
			Balance:       balances[i],
		})
	}

	return dto.LedgerView{
		AccountID:   accountID,
		AccountName: accounts.DisplayName(accountID),
		Rows:        rows,
		Pagination:  pagination,
	}
}
