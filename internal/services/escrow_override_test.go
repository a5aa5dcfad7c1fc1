package services

import (
	"testing"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEscrowOverride(t *testing.T) {
	type want struct {
		escrow, ownerDraw, netToOwner, balance string
	}
	tests := []struct {
		name         string
		transactions []models.PeriodTransaction
		baseline     models.FinancialSummary
		want         want
	}{
		{
			name: "escrow with owner draw fallback",
			transactions: []models.PeriodTransaction{
				{TransactionID: "t-1", TransactionType: models.TransactionTypeGeneralJournalEntry, SignedAmount: dec("-30"), AccountName: "Property Tax Escrow"},
				{TransactionID: "t-2", TransactionType: models.TransactionTypePayment, SignedAmount: dec("5"), AccountName: "Other Income"},
			},
			baseline: models.FinancialSummary{
				TotalPayments:   dec("5"),
				PreviousBalance: dec("100"),
				EscrowAmount:    dec("999"),
			},
			// ownerDraw = 5 - 0 - (-30), netToOwner = 100 + 5 - 0 - 0 - 35 + (-30)
			want: want{escrow: "-30", ownerDraw: "35", netToOwner: "40", balance: "-5"},
		},
		{
			name: "explicit owner draw overrides the fallback",
			transactions: []models.PeriodTransaction{
				{TransactionID: "t-1", SignedAmount: dec("-200"), AccountName: "  owner DRAW "},
				{TransactionID: "t-2", SignedAmount: dec("-50"), AccountName: "Owner Draw Reserve"},
			},
			baseline: models.FinancialSummary{
				TotalPayments:  dec("1000"),
				TotalBills:     dec("300"),
				ManagementFees: dec("80"),
				Balance:        common.DecimalPtr(dec("12.34")),
			},
			want: want{escrow: "0", ownerDraw: "200", netToOwner: "420", balance: "12.34"},
		},
		{
			name: "escrow matching is a substring check",
			transactions: []models.PeriodTransaction{
				{TransactionID: "t-1", SignedAmount: dec("15"), AccountName: "TAX ESCROW refund"},
			},
			baseline: models.FinancialSummary{TotalCharges: dec("20"), TotalCredits: dec("5")},
			want:     want{escrow: "15", ownerDraw: "-15", netToOwner: "30", balance: "15"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.baseline

			got := ResolveEscrowOverride(tt.transactions, tt.baseline, nil)

			assert.True(t, dec(tt.want.escrow).Equal(got.EscrowAmount), "escrow %s", got.EscrowAmount)
			assert.True(t, dec(tt.want.ownerDraw).Equal(got.OwnerDraw), "owner draw %s", got.OwnerDraw)
			assert.True(t, dec(tt.want.netToOwner).Equal(got.NetToOwner), "net to owner %s", got.NetToOwner)
			require.NotNil(t, got.Balance)
			assert.True(t, dec(tt.want.balance).Equal(*got.Balance), "balance %s", got.Balance)

			assert.True(t, before.EscrowAmount.Equal(tt.baseline.EscrowAmount))
			assert.Equal(t, before.Balance == nil, tt.baseline.Balance == nil)
		})
	}
}

func TestAnnotatePeriodTransactions(t *testing.T) {
	b := &lineBuilder{}
	first := b.line("t-1", models.TransactionTypePayment, "2024-03-01", glBank, models.PostingTypeDebit, "100")
	second := b.line("t-1", models.TransactionTypePayment, "2024-03-01", glRentIncome, models.PostingTypeCredit, "100")
	second.UnitID = "u-1"

	t.Run("unit line wins", func(t *testing.T) {
		got := AnnotatePeriodTransactions([]models.LedgerLine{first, second}, "u-1")
		require.Len(t, got, 1)
		assert.Equal(t, glRentIncome.Name, got[0].AccountName)
		assert.True(t, dec("-100").Equal(got[0].SignedAmount))
	})

	t.Run("earliest created otherwise", func(t *testing.T) {
		got := AnnotatePeriodTransactions([]models.LedgerLine{second, first}, "u-other")
		require.Len(t, got, 1)
		assert.Equal(t, glBank.Name, got[0].AccountName)
		assert.True(t, dec("100").Equal(got[0].SignedAmount))
	})
}
