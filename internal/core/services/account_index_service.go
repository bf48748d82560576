package services

import (
	"fmt"

	"github.com/finbooks/ledger_core/internal/core/domain"
)

// UnknownAccountName is the display fallback for account ids absent from
// the index. Callers must not treat it as an error: the external backend
// may legitimately return stale or foreign-key-orphaned references, and the
// amounts on those rows still count toward totals.
const UnknownAccountName = "Unknown Account"

// AccountIndex provides O(1) lookup of account metadata by account id.
// It is read-only after construction and safe to share by reference across
// all derived computations.
type AccountIndex struct {
	byID map[string]domain.Account
}

// NewAccountIndex builds an index over the given accounts. Construction is
// O(n). Duplicate ids keep the last occurrence, matching the backend's
// "latest wins" semantics for re-sent reference data.
func NewAccountIndex(accounts []domain.Account) *AccountIndex {
	byID := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.AccountID] = acc
	}
	return &AccountIndex{byID: byID}
}

// Lookup returns the account for the given id and whether it was found.
func (idx *AccountIndex) Lookup(accountID string) (domain.Account, bool) {
	acc, ok := idx.byID[accountID]
	return acc, ok
}

// DisplayName returns "{code} - {name}" for known accounts and the
// UnknownAccountName sentinel otherwise.
func (idx *AccountIndex) DisplayName(accountID string) string {
	acc, ok := idx.byID[accountID]
	if !ok {
		return UnknownAccountName
	}
	return fmt.Sprintf("%s - %s", acc.Code, acc.Name)
}

// AccountType returns the account's type, or UnknownAccountType for ids
// absent from the index.
func (idx *AccountIndex) AccountType(accountID string) domain.AccountType {
	acc, ok := idx.byID[accountID]
	if !ok {
		return domain.UnknownAccountType
	}
	if acc.AccountType == "" {
		return domain.UnknownAccountType
	}
	return acc.AccountType
}

// NormalBalance returns the account's normal balance side. Unknown ids
// default to debit-normal so a running balance remains computable.
func (idx *AccountIndex) NormalBalance(accountID string) domain.NormalBalance {
	acc, ok := idx.byID[accountID]
	if !ok {
		return domain.NormalDebit
	}
	return acc.NormalSide()
}

// Len returns the number of indexed accounts.
func (idx *AccountIndex) Len() int {
	return len(idx.byID)
}
