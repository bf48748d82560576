package domain

// AccountType defines the fundamental accounting category of an account.
// The chart-of-accounts backend sends these as free-form strings, so the
// type keeps the known categories as constants without forbidding others.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"

	// UnknownAccountType is the grouping category for account types the
	// report layer does not recognise.
	UnknownAccountType AccountType = "Unknown"
)

// NormalBalance indicates which side increases an account.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "DEBIT"
	NormalCredit NormalBalance = "CREDIT"
)

// Account represents chart-of-accounts reference data. It is owned by the
// external chart-of-accounts system; the core only reads it.
type Account struct {
	AccountID     string        `json:"accountID"`     // Primary Key (e.g., UUID)
	Code          string        `json:"code"`          // Display code, e.g. "1000"
	Name          string        `json:"name"`          // User-defined name
	AccountType   AccountType   `json:"accountType"`   // ASSET, LIABILITY, etc.
	NormalBalance NormalBalance `json:"normalBalance"` // DEBIT or CREDIT
}

// DefaultNormalBalance derives the conventional normal balance for an
// account type: ASSET/EXPENSE increase on debit, LIABILITY/EQUITY/REVENUE
// increase on credit.
func (t AccountType) DefaultNormalBalance() NormalBalance {
	switch t {
	case Asset, Expense:
		return NormalDebit
	case Liability, Equity, Revenue:
		return NormalCredit
	default:
		return NormalDebit
	}
}

// NormalSide returns the account's normal balance, falling back to the
// account-type convention when the backend omitted the field.
func (a Account) NormalSide() NormalBalance {
	if a.NormalBalance == NormalDebit || a.NormalBalance == NormalCredit {
		return a.NormalBalance
	}
	return a.AccountType.DefaultNormalBalance()
}
