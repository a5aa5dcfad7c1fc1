package services

import (
	"testing"

	"github.com/propledger/go-fp-rollup/internal/config"
	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestKeywordClassifier_Accounts(t *testing.T) {
	c := DefaultClassifier()

	tests := []struct {
		name            string
		account         models.GLAccount
		bank            bool
		receivable      bool
		securityDeposit bool
		prepayment      bool
	}{
		{name: "flagged bank", account: glBank, bank: true},
		{name: "cash subtype asset", account: models.GLAccount{Type: models.GLAccountTypeAsset, SubType: "Cash", Name: "Petty"}, bank: true},
		{name: "trust account by name", account: models.GLAccount{Type: models.GLAccountTypeAsset, Name: "Trust Account"}, bank: true},
		{name: "bank-like liability is not a bank", account: models.GLAccount{Type: models.GLAccountTypeLiability, Name: "Bank Loan"}},
		{name: "excluded bank flag", account: models.GLAccount{Type: models.GLAccountTypeAsset, IsBankAccount: true, ExcludeFromCashBalances: true}},
		{name: "receivable by subtype", account: glReceivable, receivable: true},
		{name: "receivable named operating", account: models.GLAccount{Type: models.GLAccountTypeAsset, Name: "Operating Receivable"}, receivable: true},
		{name: "flagged deposit", account: glDeposits, securityDeposit: true},
		{name: "deposit by category", account: models.GLAccount{Type: models.GLAccountTypeLiability, Category: "Deposit", Name: "Tenant Funds"}, securityDeposit: true},
		{name: "undeposited funds", account: glUndeposited},
		{name: "prepaid rent", account: glPrepaid, prepayment: true},
		{name: "advance by category", account: models.GLAccount{Type: models.GLAccountTypeLiability, Category: "Advance Payments", Name: "Tenant Credits"}, prepayment: true},
		{name: "prepaid expense asset is not a prepayment", account: models.GLAccount{Type: models.GLAccountTypeAsset, Name: "Prepaid Insurance"}},
		{name: "advance deposit stays a deposit", account: models.GLAccount{Type: models.GLAccountTypeLiability, Name: "Advance Deposits"}, securityDeposit: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.bank, c.IsBank(tt.account))
			assert.Equal(t, tt.receivable, c.IsReceivable(tt.account))
			assert.Equal(t, tt.securityDeposit, c.IsSecurityDeposit(tt.account))
			assert.Equal(t, tt.prepayment, c.IsPrepayment(tt.account))
		})
	}
}

func TestKeywordClassifier_Names(t *testing.T) {
	c := DefaultClassifier()

	assert.True(t, c.IsEscrow("Property Tax Escrow"))
	assert.True(t, c.IsEscrow("tax escrow refund"), "substring matches are kept as is")
	assert.False(t, c.IsEscrow("Escrow"))

	assert.True(t, c.IsOwnerDraw(" Owner Draw "))
	assert.False(t, c.IsOwnerDraw("Owner Draws"))

	assert.True(t, c.IsManagementFee("Management Fees"))
	assert.True(t, c.IsPropertyTax("County Property Tax"))
}

func TestNewKeywordClassifier_Overrides(t *testing.T) {
	c := NewKeywordClassifier(config.ClassifierConfig{
		EscrowKeywords:     []string{" Reserve Escrow ", ""},
		OwnerDrawNames:     []string{"Distribution"},
		PrepaymentKeywords: []string{"Unearned"},
	})

	assert.True(t, c.IsEscrow("hoa reserve escrow"))
	assert.False(t, c.IsEscrow("Property Tax Escrow"))
	assert.True(t, c.IsOwnerDraw("distribution"))
	assert.True(t, c.IsManagementFee("Management Fee"), "unset lists keep their defaults")
	assert.True(t, c.IsPrepayment(models.GLAccount{Type: models.GLAccountTypeLiability, Name: "Unearned Rent"}))
	assert.False(t, c.IsPrepayment(glPrepaid))
}

func TestFirstNonBankAssetOnPayment(t *testing.T) {
	b := &lineBuilder{}
	c := DefaultClassifier()

	lines := []models.LedgerLine{
		b.line("t", models.TransactionTypePayment, "2024-03-01", glReceivable, models.PostingTypeCredit, "10"),
		b.line("t", models.TransactionTypePayment, "2024-03-01", glClearing, models.PostingTypeDebit, "5"),
		b.line("t", models.TransactionTypePayment, "2024-03-01", glUndeposited, models.PostingTypeDebit, "5"),
	}

	idx, ok := FirstNonBankAssetOnPayment(models.TransactionTypePayment, lines, c)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = FirstNonBankAssetOnPayment(models.TransactionTypeCharge, lines, c)
	assert.False(t, ok)

	_, ok = NoCashProxy(models.TransactionTypePayment, lines, c)
	assert.False(t, ok)
}
