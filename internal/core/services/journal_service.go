package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finbooks/ledger_core/internal/apperrors"
	"github.com/finbooks/ledger_core/internal/core/domain"
	"github.com/finbooks/ledger_core/internal/utils"
)

// JournalService validates draft journal entries before the external
// submission flow posts them.
type JournalService struct {
	BaseService
	tolerance decimal.Decimal
}

// NewJournalService creates a journal service using the given absolute
// balance tolerance. A negative tolerance falls back to the historical
// 0.01 default.
func NewJournalService(tolerance decimal.Decimal) *JournalService {
	if tolerance.IsNegative() {
		tolerance = decimal.RequireFromString("0.01")
	}
	return &JournalService{tolerance: tolerance}
}

// ValidateBalance checks whether the entry's total debits equal its total
// credits within tolerance. Pure and side-effect free: it never rejects the
// entry itself; the submission flow must refuse to submit when the result
// is unbalanced and surface the difference to the user.
//
// Negative debit/credit inputs are clamped to zero, never subtracted.
// Lines with both sides zero, or both sides nonzero, are accepted; only the
// aggregate balance gates submission.
func (s *JournalService) ValidateBalance(ctx context.Context, entry domain.JournalEntry) domain.BalanceCheck {
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, line := range entry.Lines {
		totalDebits = totalDebits.Add(utils.ClampNonNegative(line.Debit))
		totalCredits = totalCredits.Add(utils.ClampNonNegative(line.Credit))
	}

	difference := totalDebits.Sub(totalCredits).Abs()
	check := domain.BalanceCheck{
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Difference:   difference,
		IsBalanced:   balancedWithin(difference, s.tolerance),
	}

	if !check.IsBalanced {
		s.LogDebug(ctx, "Draft journal entry does not balance",
			slog.String("reference", entry.Reference),
			slog.String("difference", difference.String()))
	}
	return check
}

// RequireBalanced runs ValidateBalance and additionally returns
// apperrors.ErrUnbalancedEntry when the entry does not balance, so the
// submission flow can gate posting with errors.Is. The check result is
// returned either way for display.
func (s *JournalService) RequireBalanced(ctx context.Context, entry domain.JournalEntry) (domain.BalanceCheck, error) {
	check := s.ValidateBalance(ctx, entry)
	if !check.IsBalanced {
		return check, fmt.Errorf("%w: entry %q differs by %s",
			apperrors.ErrUnbalancedEntry, entry.Reference, check.Difference.String())
	}
	return check, nil
}

// Tolerance exposes the configured balance tolerance so callers can render
// it alongside validation results.
func (s *JournalService) Tolerance() decimal.Decimal {
	return s.tolerance
}

// balancedWithin reports whether an absolute difference falls inside the
// tolerance. A zero tolerance accepts exact equality only.
func balancedWithin(difference, tolerance decimal.Decimal) bool {
	return difference.LessThan(tolerance) || difference.IsZero()
}
