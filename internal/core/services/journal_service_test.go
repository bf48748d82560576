package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/finbooks/ledger_core/internal/apperrors"
	"github.com/finbooks/ledger_core/internal/core/domain"
	"github.com/finbooks/ledger_core/internal/core/services"
)

type JournalServiceTestSuite struct {
	suite.Suite
	svc *services.JournalService
	ctx context.Context
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.svc = services.NewJournalService(decimal.RequireFromString("0.01"))
	s.ctx = context.Background()
}

func (s *JournalServiceTestSuite) newEntry(lines ...domain.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{
		Reference:   "JE-" + uuid.NewString()[:8],
		Description: "test entry",
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Lines:       lines,
	}
}

func line(debit, credit string) domain.JournalLine {
	return domain.JournalLine{
		LineID:    uuid.NewString(),
		AccountID: uuid.NewString(),
		Debit:     decimal.RequireFromString(debit),
		Credit:    decimal.RequireFromString(credit),
	}
}

func (s *JournalServiceTestSuite) TestBalancedEntry() {
	entry := s.newEntry(line("100", "0"), line("0", "100"))

	check := s.svc.ValidateBalance(s.ctx, entry)

	assert.True(s.T(), check.IsBalanced)
	assert.True(s.T(), check.Difference.IsZero())
	assert.True(s.T(), check.TotalDebits.Equal(decimal.NewFromInt(100)))
	assert.True(s.T(), check.TotalCredits.Equal(decimal.NewFromInt(100)))
}

func (s *JournalServiceTestSuite) TestUnbalancedEntryReportsDifference() {
	entry := s.newEntry(line("150", "0"), line("0", "100"))

	check := s.svc.ValidateBalance(s.ctx, entry)

	assert.False(s.T(), check.IsBalanced)
	assert.True(s.T(), check.Difference.Equal(decimal.NewFromInt(50)))
}

func (s *JournalServiceTestSuite) TestNegativeAmountsAreClampedNotSubtracted() {
	entry := s.newEntry(line("100", "0"), line("-40", "100"))

	check := s.svc.ValidateBalance(s.ctx, entry)

	// -40 contributes nothing; totals are 100/100.
	assert.True(s.T(), check.IsBalanced)
	assert.True(s.T(), check.TotalDebits.Equal(decimal.NewFromInt(100)))
}

func (s *JournalServiceTestSuite) TestToleranceBoundary() {
	// Difference of exactly 0.01 is NOT within a strict < 0.01 tolerance.
	atBoundary := s.newEntry(line("100.01", "0"), line("0", "100"))
	check := s.svc.ValidateBalance(s.ctx, atBoundary)
	assert.False(s.T(), check.IsBalanced)

	justInside := s.newEntry(line("100.009", "0"), line("0", "100"))
	check = s.svc.ValidateBalance(s.ctx, justInside)
	assert.True(s.T(), check.IsBalanced)
}

func (s *JournalServiceTestSuite) TestMixedAndZeroLinesAreAccepted() {
	// A line with both sides set and a line with neither side set only
	// contribute to the aggregate totals; neither is rejected.
	entry := s.newEntry(line("50", "30"), line("0", "0"), line("0", "20"))

	check := s.svc.ValidateBalance(s.ctx, entry)

	assert.True(s.T(), check.IsBalanced)
	assert.True(s.T(), check.TotalDebits.Equal(decimal.NewFromInt(50)))
	assert.True(s.T(), check.TotalCredits.Equal(decimal.NewFromInt(50)))
}

func (s *JournalServiceTestSuite) TestEmptyEntry() {
	entry := s.newEntry()

	check := s.svc.ValidateBalance(s.ctx, entry)

	assert.True(s.T(), check.IsBalanced)
	assert.True(s.T(), check.TotalDebits.IsZero())
	assert.True(s.T(), check.TotalCredits.IsZero())
}

func (s *JournalServiceTestSuite) TestValidatorDoesNotMutateEntry() {
	entry := s.newEntry(line("-40", "100"))
	before := entry.Lines[0].Debit

	s.svc.ValidateBalance(s.ctx, entry)

	assert.True(s.T(), entry.Lines[0].Debit.Equal(before))
}

func (s *JournalServiceTestSuite) TestZeroToleranceAcceptsExactEquality() {
	svc := services.NewJournalService(decimal.Zero)

	exact := s.newEntry(line("100", "0"), line("0", "100"))
	check := svc.ValidateBalance(s.ctx, exact)
	assert.True(s.T(), check.IsBalanced)
	assert.True(s.T(), check.Difference.IsZero())

	// Any nonzero difference fails under zero tolerance.
	offByCent := s.newEntry(line("100.01", "0"), line("0", "100"))
	check = svc.ValidateBalance(s.ctx, offByCent)
	assert.False(s.T(), check.IsBalanced)
}

func (s *JournalServiceTestSuite) TestRequireBalanced() {
	balanced := s.newEntry(line("100", "0"), line("0", "100"))
	_, err := s.svc.RequireBalanced(s.ctx, balanced)
	require.NoError(s.T(), err)

	unbalanced := s.newEntry(line("150", "0"), line("0", "100"))
	check, err := s.svc.RequireBalanced(s.ctx, unbalanced)
	require.Error(s.T(), err)
	assert.True(s.T(), errors.Is(err, apperrors.ErrUnbalancedEntry))
	assert.True(s.T(), check.Difference.Equal(decimal.NewFromInt(50)))
}

func (s *JournalServiceTestSuite) TestNegativeToleranceFallsBackToDefault() {
	svc := services.NewJournalService(decimal.NewFromInt(-1))
	assert.True(s.T(), svc.Tolerance().Equal(decimal.RequireFromString("0.01")))
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
