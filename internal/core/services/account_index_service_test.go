package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/ledger_core/internal/core/domain"
	"github.com/finbooks/ledger_core/internal/core/services"
)

func TestAccountIndexLookupAndDisplayName(t *testing.T) {
	idx := services.NewAccountIndex([]domain.Account{
		{AccountID: "a1", Code: "1000", Name: "Cash", AccountType: domain.Asset, NormalBalance: domain.NormalDebit},
		{AccountID: "l1", Code: "2000", Name: "Payables", AccountType: domain.Liability, NormalBalance: domain.NormalCredit},
	})

	require.Equal(t, 2, idx.Len())

	acc, ok := idx.Lookup("a1")
	require.True(t, ok)
	assert.Equal(t, "Cash", acc.Name)
	assert.Equal(t, "1000 - Cash", idx.DisplayName("a1"))

	_, ok = idx.Lookup("missing")
	assert.False(t, ok)
}

func TestAccountIndexUnknownAccountFallbacks(t *testing.T) {
	idx := services.NewAccountIndex(nil)

	// The sentinel is a deliberate fallback for orphaned references, not an
	// error condition.
	assert.Equal(t, services.UnknownAccountName, idx.DisplayName("ghost"))
	assert.Equal(t, domain.UnknownAccountType, idx.AccountType("ghost"))
	assert.Equal(t, domain.NormalDebit, idx.NormalBalance("ghost"))
}

func TestAccountIndexDuplicateIDsKeepLast(t *testing.T) {
	idx := services.NewAccountIndex([]domain.Account{
		{AccountID: "a1", Code: "1000", Name: "Old"},
		{AccountID: "a1", Code: "1000", Name: "New"},
	})

	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, "1000 - New", idx.DisplayName("a1"))
}

func TestAccountIndexNormalBalanceDerivedFromType(t *testing.T) {
	idx := services.NewAccountIndex([]domain.Account{
		{AccountID: "e1", AccountType: domain.Expense}, // normal balance omitted
		{AccountID: "r1", AccountType: domain.Revenue},
	})

	assert.Equal(t, domain.NormalDebit, idx.NormalBalance("e1"))
	assert.Equal(t, domain.NormalCredit, idx.NormalBalance("r1"))
}

func TestAccountIndexEmptyTypeGroupsAsUnknown(t *testing.T) {
	idx := services.NewAccountIndex([]domain.Account{
		{AccountID: "x1", Code: "9000", Name: "Suspense"},
	})

	assert.Equal(t, domain.UnknownAccountType, idx.AccountType("x1"))
}
