package services

import (
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/shopspring/decimal"
)

type RollupOptions struct {
	AsOf       time.Time
	Reserve    decimal.Decimal
	Classifier GLClassifier
	CashProxy  CashProxySelector
}

func (o RollupOptions) withDefaults() RollupOptions {
	if o.Classifier == nil {
		o.Classifier = DefaultClassifier()
	}
	if o.CashProxy == nil {
		o.CashProxy = FirstNonBankAssetOnPayment
	}
	return o
}

// cashMovement describes the lines of one transaction that move cash.
type cashMovement struct {
	bank  []models.LedgerLine
	proxy []models.LedgerLine
}

func (m cashMovement) moves() bool {
	return len(m.bank) > 0 || len(m.proxy) > 0
}

func (m cashMovement) signed() decimal.Decimal {
	total := decimal.Zero
	for _, l := range m.bank {
		total = total.Add(l.SignedAmount())
	}
	for _, l := range m.proxy {
		total = total.Add(l.SignedAmount())
	}
	return total
}

// collectProxyAccounts returns the gl accounts the selector picks as cash
// stand-ins on any transaction without a bank line. Every later line on those
// accounts is counted as cash, so moving proxy funds into the bank nets out.
func collectProxyAccounts(order []string, byTrx map[string][]models.LedgerLine, classifier GLClassifier, proxy CashProxySelector) map[string]struct{} {
	accounts := make(map[string]struct{})
	for _, trxID := range order {
		lines := byTrx[trxID]
		if hasBankLine(lines, classifier) {
			continue
		}
		if idx, ok := proxy(lines[0].TransactionType, lines, classifier); ok && idx >= 0 && idx < len(lines) {
			accounts[lines[idx].GLAccountID] = struct{}{}
		}
	}
	return accounts
}

func hasBankLine(lines []models.LedgerLine, classifier GLClassifier) bool {
	for _, l := range lines {
		if classifier.IsBank(l.Account()) {
			return true
		}
	}
	return false
}

func findCashMovement(lines []models.LedgerLine, classifier GLClassifier, proxyAccounts map[string]struct{}) cashMovement {
	var m cashMovement
	for _, l := range lines {
		if classifier.IsBank(l.Account()) {
			m.bank = append(m.bank, l)
			continue
		}
		if _, ok := proxyAccounts[l.GLAccountID]; ok {
			m.proxy = append(m.proxy, l)
		}
	}
	return m
}

// ComputeFinanceRollup derives cash, security deposits and available balance
// from canonical lines. Prepayments are collected the same way as deposits but
// stay outside the available balance. Lines dated after the as-of day are ignored.
func ComputeFinanceRollup(lines []models.LedgerLine, opts RollupOptions) (models.RollupValues, models.RollupDiagnostics) {
	opts = opts.withDefaults()

	var diag models.RollupDiagnostics
	cutoff := common.EndOfDay(opts.AsOf)
	scoped := make([]models.LedgerLine, 0, len(lines))
	for _, l := range lines {
		if !opts.AsOf.IsZero() && l.Date.After(cutoff) {
			diag.ExcludedAfterAsOf++
			continue
		}
		scoped = append(scoped, l)
	}

	cash := decimal.Zero
	securityDeposits := decimal.Zero
	prepayments := decimal.Zero

	order, byTrx := groupByTransaction(scoped)
	proxyAccounts := collectProxyAccounts(order, byTrx, opts.Classifier, opts.CashProxy)
	for _, trxID := range order {
		trxLines := byTrx[trxID]
		trxType := trxLines[0].TransactionType

		movement := findCashMovement(trxLines, opts.Classifier, proxyAccounts)
		cash = cash.Add(movement.signed())
		diag.BankLineCount += len(movement.bank)
		diag.CashProxyLineCount += len(movement.proxy)

		var depositLines, prepayLines []models.LedgerLine
		for _, l := range trxLines {
			switch acc := l.Account(); {
			case opts.Classifier.IsSecurityDeposit(acc):
				depositLines = append(depositLines, l)
			case opts.Classifier.IsPrepayment(acc):
				prepayLines = append(prepayLines, l)
			}
		}

		if trxType.IsCharge() && !movement.moves() {
			diag.ExcludedDepositChargeLines += len(depositLines)
			continue
		}
		if !trxType.IsPayment() {
			continue
		}
		for _, l := range depositLines {
			securityDeposits = securityDeposits.Sub(l.NormalSignedAmount())
		}
		for _, l := range prepayLines {
			prepayments = prepayments.Sub(l.NormalSignedAmount())
		}
	}

	values := models.NewRollupValues(cash, securityDeposits, opts.Reserve)
	values.Prepayments = prepayments
	return values, diag
}

// ComputeBookBalance is the signed sum of one bank account's lines up to and
// including the as-of day.
func ComputeBookBalance(lines []models.LedgerLine, bankGLAccountID string, asOf time.Time) decimal.Decimal {
	cutoff := common.EndOfDay(asOf)
	total := decimal.Zero
	for _, l := range lines {
		if l.GLAccountID != bankGLAccountID || l.Date.After(cutoff) {
			continue
		}
		total = total.Add(l.SignedAmount())
	}
	return total
}
