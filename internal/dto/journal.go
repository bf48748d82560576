package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/finbooks/ledger_core/internal/apperrors"
	"github.com/finbooks/ledger_core/internal/core/domain"
	"github.com/finbooks/ledger_core/internal/utils"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DraftJournalLine is one line of a draft entry as the entry form submits
// it. Debit and credit are loosely typed because the form and the backend
// both produce missing, null, or stringly-numeric values; coercion to
// decimal happens in ToJournalEntry, never inside a calculator.
type DraftJournalLine struct {
	LineID      string `json:"lineID"`
	AccountID   string `json:"accountID" validate:"required"`
	Description string `json:"description"`
	Debit       any    `json:"debit"`
	Credit      any    `json:"credit"`
}

// DraftJournalEntry is the entry-form payload validated before submission.
type DraftJournalEntry struct {
	Reference   string             `json:"reference" validate:"required"`
	Description string             `json:"description"`
	Date        time.Time          `json:"date" validate:"required"`
	Lines       []DraftJournalLine `json:"lines" validate:"required,min=1,dive"`
}

// Validate checks structural requirements (present reference, date, lines
// with account ids). Balance checking is separate; a structurally valid
// entry may still be unbalanced.
func (r DraftJournalEntry) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

// ToJournalEntry normalizes the draft into a domain entry: missing line ids
// are minted, whitespace trimmed, and dirty amounts coerced to non-negative
// decimals (missing/null/non-numeric values become zero).
func (r DraftJournalEntry) ToJournalEntry() domain.JournalEntry {
	lines := make([]domain.JournalLine, len(r.Lines))
	for i, line := range r.Lines {
		lineID := line.LineID
		if lineID == "" {
			lineID = uuid.NewString()
		}
		lines[i] = domain.JournalLine{
			LineID:      lineID,
			AccountID:   line.AccountID,
			Description: strings.TrimSpace(line.Description),
			Debit:       utils.ClampNonNegative(utils.CoerceAmount(line.Debit)),
			Credit:      utils.ClampNonNegative(utils.CoerceAmount(line.Credit)),
		}
	}
	return domain.JournalEntry{
		Reference:   strings.TrimSpace(r.Reference),
		Description: strings.TrimSpace(r.Description),
		Date:        r.Date,
		Lines:       lines,
	}
}

// BalanceCheckResponse is the validation verdict rendered next to the entry
// form, with amounts formatted at display precision.
type BalanceCheckResponse struct {
	TotalDebits  string `json:"totalDebits"`
	TotalCredits string `json:"totalCredits"`
	Difference   string `json:"difference"`
	IsBalanced   bool   `json:"isBalanced"`
}

// ToBalanceCheckResponse converts a domain.BalanceCheck to its response DTO.
func ToBalanceCheckResponse(check domain.BalanceCheck) BalanceCheckResponse {
	return BalanceCheckResponse{
		TotalDebits:  utils.FormatAmount(check.TotalDebits, 2),
		TotalCredits: utils.FormatAmount(check.TotalCredits, 2),
		Difference:   utils.FormatAmount(check.Difference, 2),
		IsBalanced:   check.IsBalanced,
	}
}
