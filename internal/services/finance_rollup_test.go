package services

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func rentPayment(b *lineBuilder, trxID, date, amount string) []models.LedgerLine {
	return []models.LedgerLine{
		b.line(trxID, models.TransactionTypePayment, date, glUndeposited, models.PostingTypeDebit, amount),
		b.line(trxID, models.TransactionTypePayment, date, glRentIncome, models.PostingTypeCredit, amount),
	}
}

func TestComputeFinanceRollup(t *testing.T) {
	b := &lineBuilder{}

	depositCharge := []models.LedgerLine{
		b.line("t-charge", models.TransactionTypeCharge, "2024-03-01", glReceivable, models.PostingTypeDebit, "2500"),
		b.line("t-charge", models.TransactionTypeCharge, "2024-03-01", glDeposits, models.PostingTypeCredit, "2500"),
	}
	depositPayment := []models.LedgerLine{
		b.line("t-pay", models.TransactionTypePayment, "2024-03-02", glUndeposited, models.PostingTypeDebit, "2500"),
		b.line("t-pay", models.TransactionTypePayment, "2024-03-02", glDeposits, models.PostingTypeCredit, "2500"),
	}
	bankReceipt := []models.LedgerLine{
		b.line("t-bank", models.TransactionTypeDeposit, "2024-03-03", glBank, models.PostingTypeDebit, "100"),
		b.line("t-bank", models.TransactionTypeDeposit, "2024-03-03", glReceivable, models.PostingTypeCredit, "100"),
	}

	type want struct {
		cash, deposits, available string
		diag                      models.RollupDiagnostics
	}
	tests := []struct {
		name  string
		lines []models.LedgerLine
		opts  RollupOptions
		want  want
	}{
		{
			name:  "rent payment through undeposited funds counts as cash",
			lines: rentPayment(b, "t-rent", "2024-03-05", "2500"),
			opts:  RollupOptions{AsOf: day("2024-03-31")},
			want: want{cash: "2500", deposits: "0", available: "2500",
				diag: models.RollupDiagnostics{CashProxyLineCount: 1}},
		},
		{
			name:  "unpaid deposit charge contributes nothing",
			lines: depositCharge,
			opts:  RollupOptions{AsOf: day("2024-03-31")},
			want: want{cash: "0", deposits: "0", available: "0",
				diag: models.RollupDiagnostics{ExcludedDepositChargeLines: 1}},
		},
		{
			name:  "deposit paid after its charge is held negative",
			lines: append(append([]models.LedgerLine{}, depositCharge...), depositPayment...),
			opts:  RollupOptions{AsOf: day("2024-03-31")},
			want: want{cash: "2500", deposits: "-2500", available: "0",
				diag: models.RollupDiagnostics{ExcludedDepositChargeLines: 1, CashProxyLineCount: 1}},
		},
		{
			name:  "available balance subtracts reserve",
			lines: append(append([]models.LedgerLine{}, depositPayment...), bankReceipt...),
			opts:  RollupOptions{AsOf: day("2024-03-31"), Reserve: decimal.NewFromInt(500)},
			want: want{cash: "2600", deposits: "-2500", available: "-400",
				diag: models.RollupDiagnostics{BankLineCount: 1, CashProxyLineCount: 1}},
		},
		{
			name:  "lines after as-of are ignored",
			lines: append(append([]models.LedgerLine{}, bankReceipt...), rentPayment(b, "t-late", "2024-04-01", "2500")...),
			opts:  RollupOptions{AsOf: day("2024-03-31")},
			want: want{cash: "100", deposits: "0", available: "100",
				diag: models.RollupDiagnostics{BankLineCount: 1, ExcludedAfterAsOf: 2}},
		},
		{
			name:  "no cash proxy counts bank lines only",
			lines: append(append([]models.LedgerLine{}, bankReceipt...), rentPayment(b, "t-rent2", "2024-03-05", "2500")...),
			opts:  RollupOptions{AsOf: day("2024-03-31"), CashProxy: NoCashProxy},
			want: want{cash: "100", deposits: "0", available: "100",
				diag: models.RollupDiagnostics{BankLineCount: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, diag := ComputeFinanceRollup(tt.lines, tt.opts)

			assert.True(t, dec(tt.want.cash).Equal(values.CashBalance), "cash %s", values.CashBalance)
			assert.True(t, dec(tt.want.deposits).Equal(values.SecurityDeposits), "deposits %s", values.SecurityDeposits)
			assert.True(t, dec(tt.want.available).Equal(values.AvailableBalance), "available %s", values.AvailableBalance)
			assert.True(t, values.AvailableBalance.Equal(values.CashBalance.Add(values.SecurityDeposits).Sub(values.Reserve)))
			assert.Equal(t, tt.want.diag, diag)
		})
	}
}

func TestComputeFinanceRollup_UndepositedFundsSweptToBank(t *testing.T) {
	b := &lineBuilder{}
	lines := append(rentPayment(b, "t-rent", "2024-03-05", "2500"),
		b.line("t-sweep", models.TransactionTypeDeposit, "2024-03-06", glBank, models.PostingTypeDebit, "2500"),
		b.line("t-sweep", models.TransactionTypeDeposit, "2024-03-06", glUndeposited, models.PostingTypeCredit, "2500"),
	)

	tests := []struct {
		name  string
		asOf  string
		proxy CashProxySelector
		cash  string
		diag  models.RollupDiagnostics
	}{
		{
			name: "before the sweep the undeposited funds stand in for cash",
			asOf: "2024-03-05",
			cash: "2500",
			diag: models.RollupDiagnostics{CashProxyLineCount: 1, ExcludedAfterAsOf: 2},
		},
		{
			name: "after the sweep the payment is counted once",
			asOf: "2024-03-31",
			cash: "2500",
			diag: models.RollupDiagnostics{BankLineCount: 1, CashProxyLineCount: 2},
		},
		{
			name:  "bank lines only",
			asOf:  "2024-03-31",
			proxy: NoCashProxy,
			cash:  "2500",
			diag:  models.RollupDiagnostics{BankLineCount: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, diag := ComputeFinanceRollup(lines, RollupOptions{AsOf: day(tt.asOf), CashProxy: tt.proxy})

			assert.True(t, dec(tt.cash).Equal(values.CashBalance), "cash %s", values.CashBalance)
			assert.Equal(t, tt.diag, diag)
		})
	}

	values, _ := ComputeFinanceRollup(lines, RollupOptions{AsOf: day("2024-03-31")})
	assert.True(t, ComputeBookBalance(lines, glBank.ID, day("2024-03-31")).Equal(values.CashBalance))
}

func TestComputeFinanceRollup_Prepayments(t *testing.T) {
	b := &lineBuilder{}
	lines := []models.LedgerLine{
		b.line("t-advance", models.TransactionTypeCharge, "2024-03-01", glReceivable, models.PostingTypeDebit, "500"),
		b.line("t-advance", models.TransactionTypeCharge, "2024-03-01", glPrepaid, models.PostingTypeCredit, "500"),
		b.line("t-prepay", models.TransactionTypePayment, "2024-03-02", glUndeposited, models.PostingTypeDebit, "1000"),
		b.line("t-prepay", models.TransactionTypePayment, "2024-03-02", glPrepaid, models.PostingTypeCredit, "1000"),
	}

	values, diag := ComputeFinanceRollup(lines, RollupOptions{AsOf: day("2024-03-31"), Reserve: dec("100")})

	assert.True(t, dec("1000").Equal(values.CashBalance), "cash %s", values.CashBalance)
	assert.True(t, dec("-1000").Equal(values.Prepayments), "prepayments %s", values.Prepayments)
	assert.True(t, decimal.Zero.Equal(values.SecurityDeposits))
	assert.True(t, dec("900").Equal(values.AvailableBalance), "available %s", values.AvailableBalance)
	assert.Equal(t, models.RollupDiagnostics{CashProxyLineCount: 1}, diag)
}

func TestComputeFinanceRollup_RandomBalancedBatches(t *testing.T) {
	accounts := []models.GLAccount{
		glBank, glUndeposited, glReceivable, glRentIncome, glDeposits, glPrepaid, glRepairs, glManagementFee, glClearing,
	}
	trxTypes := []models.TransactionType{
		models.TransactionTypeCharge,
		models.TransactionTypePayment,
		models.TransactionTypeCredit,
		models.TransactionTypeBill,
		models.TransactionTypeDeposit,
		models.TransactionTypeGeneralJournalEntry,
		models.TransactionTypeTransfer,
	}
	asOf := day("2024-03-15")

	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := &lineBuilder{}
		var lines []models.LedgerLine
		undepositedIsProxy := false

		trxCount := 1 + rng.Intn(30)
		for i := 0; i < trxCount; i++ {
			trxID := fmt.Sprintf("t-%d-%d", seed, i)
			trxType := trxTypes[rng.Intn(len(trxTypes))]
			date := day("2024-01-01").AddDate(0, 0, rng.Intn(120))

			// one credit leg balances one or two debit legs on distinct accounts
			picked := rng.Perm(len(accounts))[:2+rng.Intn(2)]
			total := decimal.Zero
			hasBank, hasUndeposited := false, false
			for j, idx := range picked {
				acc := accounts[idx]
				hasBank = hasBank || acc.ID == glBank.ID
				hasUndeposited = hasUndeposited || acc.ID == glUndeposited.ID
				if j == 0 {
					continue
				}
				amount := decimal.New(rng.Int63n(500000)+1, -2)
				total = total.Add(amount)
				lines = append(lines, b.line(trxID, trxType, date.Format("2006-01-02"), acc, models.PostingTypeDebit, amount.String()))
			}
			lines = append(lines, b.line(trxID, trxType, date.Format("2006-01-02"), accounts[picked[0]], models.PostingTypeCredit, total.String()))

			if trxType == models.TransactionTypePayment && hasUndeposited && !hasBank && !date.After(asOf) {
				undepositedIsProxy = true
			}
		}
		reserve := decimal.New(rng.Int63n(100000), -2)

		values, _ := ComputeFinanceRollup(lines, RollupOptions{AsOf: asOf, Reserve: reserve})

		law := values.CashBalance.Add(values.SecurityDeposits).Sub(reserve)
		assert.True(t, law.Sub(values.AvailableBalance).IsZero(), "seed %d: available %s, law %s", seed, values.AvailableBalance, law)

		expectedCash := ComputeBookBalance(lines, glBank.ID, asOf)
		if undepositedIsProxy {
			expectedCash = expectedCash.Add(ComputeBookBalance(lines, glUndeposited.ID, asOf))
		}
		assert.True(t, expectedCash.Equal(values.CashBalance), "seed %d: cash %s, want %s", seed, values.CashBalance, expectedCash)

		groups := GroupLedger(lines, GroupOptions{Basis: models.BasisAccrual})
		assert.True(t, SumDebitNet(groups).IsZero(), "seed %d: debit net %s", seed, SumDebitNet(groups))
	}
}

func TestComputeFinanceRollup_Deterministic(t *testing.T) {
	b := &lineBuilder{}
	lines := append(rentPayment(b, "t-1", "2024-03-01", "1200.10"), rentPayment(b, "t-2", "2024-03-02", "799.95")...)
	opts := RollupOptions{AsOf: day("2024-03-31"), Reserve: dec("250.05")}

	first, _ := ComputeFinanceRollup(lines, opts)
	second, _ := ComputeFinanceRollup(lines, opts)

	assert.Equal(t, first.CashBalance.String(), second.CashBalance.String())
	assert.Equal(t, first.SecurityDeposits.String(), second.SecurityDeposits.String())
	assert.Equal(t, first.AvailableBalance.String(), second.AvailableBalance.String())
	assert.Empty(t, cmp.Diff(first, second, decimalComparer()))
}

func TestCashBalanceMatchesUndepositedFundsGroup(t *testing.T) {
	b := &lineBuilder{}
	lines := rentPayment(b, "t-rent", "2024-03-05", "2500")

	values, _ := ComputeFinanceRollup(lines, RollupOptions{AsOf: day("2024-03-31")})
	groups := GroupLedger(lines, GroupOptions{Basis: models.BasisCash})

	var undeposited *models.LedgerGroup
	for i := range groups {
		if groups[i].GLAccountID == glUndeposited.ID {
			undeposited = &groups[i]
		}
	}
	if assert.NotNil(t, undeposited) {
		assert.True(t, dec("2500").Equal(undeposited.Net))
		assert.True(t, undeposited.Net.Equal(values.CashBalance))
	}
}

func TestComputeBookBalance(t *testing.T) {
	b := &lineBuilder{}
	lines := []models.LedgerLine{
		b.line("t-1", models.TransactionTypeDeposit, "2024-02-01", glBank, models.PostingTypeDebit, "1000"),
		b.line("t-2", models.TransactionTypeBill, "2024-02-10", glBank, models.PostingTypeCredit, "250.50"),
		b.line("t-2", models.TransactionTypeBill, "2024-02-10", glRepairs, models.PostingTypeDebit, "250.50"),
		b.line("t-3", models.TransactionTypeDeposit, "2024-03-01", glBank, models.PostingTypeDebit, "99"),
	}

	assert.True(t, dec("749.50").Equal(ComputeBookBalance(lines, glBank.ID, day("2024-02-29"))))
	assert.True(t, dec("848.50").Equal(ComputeBookBalance(lines, glBank.ID, day("2024-03-01"))))
	assert.True(t, decimal.Zero.Equal(ComputeBookBalance(lines, "unknown", day("2024-03-01"))))
}
