package dto

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbooks/ledger_core/internal/core/domain"
	"github.com/finbooks/ledger_core/internal/utils"
)

// TrialBalanceRowResponse represents a row in the trial balance report response.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Status      string          `json:"status"` // "balanced" or "unbalanced"
}

// TrialBalanceGroupResponse represents one account-type group.
type TrialBalanceGroupResponse struct {
	AccountType  string                    `json:"accountType"`
	AccountCount int                       `json:"accountCount"`
	Rows         []TrialBalanceRowResponse `json:"rows"`
	TotalDebits  decimal.Decimal           `json:"totalDebits"`
	TotalCredits decimal.Decimal           `json:"totalCredits"`
	Net          decimal.Decimal           `json:"net"`
}

// TrialBalanceResponse represents the trial balance report response.
type TrialBalanceResponse struct {
	AsOf   string                      `json:"asOf"`
	Groups []TrialBalanceGroupResponse `json:"groups"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	IsBalanced bool `json:"isBalanced"`
}

func rowStatus(balanced bool) string {
	if balanced {
		return "balanced"
	}
	return "unbalanced"
}

// ToTrialBalanceResponse converts a domain trial balance summary to a DTO response.
func ToTrialBalanceResponse(summary domain.TrialBalanceSummary, dateFormat string) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Groups:     make([]TrialBalanceGroupResponse, len(summary.Groups)),
		IsBalanced: summary.IsBalanced,
	}
	if !summary.AsOf.IsZero() {
		response.AsOf = summary.AsOf.Format(dateFormat)
	}
	for i, group := range summary.Groups {
		groupResp := TrialBalanceGroupResponse{
			AccountType:  string(group.AccountType),
			AccountCount: group.AccountCount,
			Rows:         make([]TrialBalanceRowResponse, len(group.Rows)),
			TotalDebits:  group.TotalDebits,
			TotalCredits: group.TotalCredits,
			Net:          group.Net,
		}
		for j, row := range group.Rows {
			groupResp.Rows[j] = TrialBalanceRowResponse{
				AccountID:   row.AccountID,
				AccountName: row.AccountName,
				AccountType: string(row.AccountType),
				Debit:       row.Debit,
				Credit:      row.Credit,
				Status:      rowStatus(row.IsBalanced),
			}
		}
		response.Groups[i] = groupResp
	}
	response.Totals.Debit = summary.TotalDebits
	response.Totals.Credit = summary.TotalCredits
	return response
}

// TrialBalanceCSVHeaders is the column order for trial balance exports.
var TrialBalanceCSVHeaders = []string{"Account Type", "Account", "Debit", "Credit", "Status"}

// TrialBalanceCSVRows flattens the grouped summary for export, preserving
// the on-screen group and row order.
func TrialBalanceCSVRows(summary domain.TrialBalanceSummary) [][]string {
	var rows [][]string
	for _, group := range summary.Groups {
		for _, row := range group.Rows {
			rows = append(rows, []string{
				string(row.AccountType),
				row.AccountName,
				utils.FormatAmount(row.Debit, 2),
				utils.FormatAmount(row.Credit, 2),
				rowStatus(row.IsBalanced),
			})
		}
	}
	return rows
}

// AgingRowResponse represents one customer's aging in the report response.
type AgingRowResponse struct {
	CustomerID       string          `json:"customerID"`
	CustomerName     string          `json:"customerName"`
	Current          decimal.Decimal `json:"current"`
	Days30           decimal.Decimal `json:"days30"`
	Days60           decimal.Decimal `json:"days60"`
	Days90           decimal.Decimal `json:"days90"`
	Over90           decimal.Decimal `json:"over90"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	InvoiceCount     int             `json:"invoiceCount"`
}

// AgingReportResponse represents the receivables aging report response.
type AgingReportResponse struct {
	AsOf string             `json:"asOf"`
	Rows []AgingRowResponse `json:"rows"`
	Risk struct {
		Low    decimal.Decimal `json:"low"`
		Medium decimal.Decimal `json:"medium"`
		High   decimal.Decimal `json:"high"`
	} `json:"risk"`
}

// ToAgingReportResponse converts aging rows and the risk summary to a DTO response.
func ToAgingReportResponse(rows []domain.AgingRow, risk domain.RiskSummary, asOf time.Time, dateFormat string) AgingReportResponse {
	response := AgingReportResponse{
		AsOf: asOf.Format(dateFormat),
		Rows: make([]AgingRowResponse, len(rows)),
	}
	for i, row := range rows {
		response.Rows[i] = AgingRowResponse{
			CustomerID:       row.CustomerID,
			CustomerName:     row.CustomerName,
			Current:          row.Buckets.Current,
			Days30:           row.Buckets.Days30,
			Days60:           row.Buckets.Days60,
			Days90:           row.Buckets.Days90,
			Over90:           row.Buckets.Over90,
			TotalOutstanding: row.TotalOutstanding,
			InvoiceCount:     row.InvoiceCount,
		}
	}
	response.Risk.Low = risk.Low
	response.Risk.Medium = risk.Medium
	response.Risk.High = risk.High
	return response
}

// AgingCSVHeaders is the column order for aging exports.
var AgingCSVHeaders = []string{"Customer", "Current", "1-30 Days", "31-60 Days", "61-90 Days", "Over 90 Days", "Total Outstanding", "Invoices"}

// AgingCSVRows renders aging rows for export in row order.
func AgingCSVRows(rows []domain.AgingRow) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = []string{
			row.CustomerName,
			utils.FormatAmount(row.Buckets.Current, 2),
			utils.FormatAmount(row.Buckets.Days30, 2),
			utils.FormatAmount(row.Buckets.Days60, 2),
			utils.FormatAmount(row.Buckets.Days90, 2),
			utils.FormatAmount(row.Buckets.Over90, 2),
			utils.FormatAmount(row.TotalOutstanding, 2),
			strconv.Itoa(row.InvoiceCount),
		}
	}
	return out
}
