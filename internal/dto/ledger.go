package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/ledger_core/internal/core/domain"
	"github.com/finbooks/ledger_core/internal/utils"
)

// LedgerRow is one display row of an account ledger table: the entry plus
// the cumulative balance after it, computed over the whole dataset.
type LedgerRow struct {
	LedgerEntryID string          `json:"ledgerEntryID"`
	Date          time.Time       `json:"date"`
	AccountID     string          `json:"accountID"`
	AccountName   string          `json:"accountName"`
	Reference     string          `json:"reference"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
}

// LedgerView is the assembled ledger table for one account, windowed to the
// requested page after balances were computed over the full sequence.
type LedgerView struct {
	AccountID   string                `json:"accountID"`
	AccountName string                `json:"accountName"`
	Rows        []LedgerRow           `json:"rows"`
	Pagination  domain.PaginationInfo `json:"pagination"`
}

// LedgerCSVHeaders is the column order for ledger exports.
var LedgerCSVHeaders = []string{"Date", "Account", "Reference", "Description", "Debit", "Credit", "Balance"}

// CSVRows renders the view's rows for export, in row order, with the same
// display formatting the table uses so exported figures match on-screen
// figures.
func (v LedgerView) CSVRows(dateFormat string) [][]string {
	rows := make([][]string, len(v.Rows))
	for i, row := range v.Rows {
		rows[i] = []string{
			row.Date.Format(dateFormat),
			row.AccountName,
			row.Reference,
			row.Description,
			utils.FormatAmount(row.Debit, 2),
			utils.FormatAmount(row.Credit, 2),
			utils.FormatAmount(row.Balance, 2),
		}
	}
	return rows
}
