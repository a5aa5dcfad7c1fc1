package services

import (
	"sort"

	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/shopspring/decimal"
)

type GroupOptions struct {
	Basis      models.Basis
	Classifier GLClassifier
	CashProxy  CashProxySelector
	// PriorLines are lines dated before the period, they only feed opening balances.
	PriorLines []models.LedgerLine
}

// GroupLedger groups lines by gl account. The cash basis drops lines excluded
// from cash and the liability side of charges that moved no cash; the accrual
// basis keeps every line.
func GroupLedger(lines []models.LedgerLine, opts GroupOptions) []models.LedgerGroup {
	if opts.Classifier == nil {
		opts.Classifier = DefaultClassifier()
	}
	if opts.CashProxy == nil {
		opts.CashProxy = FirstNonBankAssetOnPayment
	}

	groups := make(map[string]*models.LedgerGroup)
	get := func(l models.LedgerLine) *models.LedgerGroup {
		g, ok := groups[l.GLAccountID]
		if !ok {
			g = &models.LedgerGroup{
				GLAccountID:   l.GLAccountID,
				GLAccountName: l.GLAccountName,
				GLAccountType: l.GLAccountType,
			}
			groups[l.GLAccountID] = g
		}
		return g
	}

	for _, l := range filterBasis(opts.PriorLines, opts) {
		g := get(l)
		g.OpeningBalance = g.OpeningBalance.Add(l.NormalSignedAmount())
	}

	for _, l := range filterBasis(lines, opts) {
		g := get(l)
		g.Lines = append(g.Lines, l)
		g.Net = g.Net.Add(l.NormalSignedAmount())
		g.DebitNet = g.DebitNet.Add(l.SignedAmount())
	}

	out := make([]models.LedgerGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GLAccountName != out[j].GLAccountName {
			return out[i].GLAccountName < out[j].GLAccountName
		}
		return out[i].GLAccountID < out[j].GLAccountID
	})

	return out
}

func filterBasis(lines []models.LedgerLine, opts GroupOptions) []models.LedgerLine {
	if opts.Basis != models.BasisCash {
		return lines
	}

	order, byTrx := groupByTransaction(lines)
	proxyAccounts := collectProxyAccounts(order, byTrx, opts.Classifier, opts.CashProxy)
	kept := make([]models.LedgerLine, 0, len(lines))
	for _, trxID := range order {
		trxLines := byTrx[trxID]
		trxType := trxLines[0].TransactionType
		unpaidCharge := trxType.IsCharge() &&
			!findCashMovement(trxLines, opts.Classifier, proxyAccounts).moves()

		for _, l := range trxLines {
			if l.GLExcludeFromCash {
				continue
			}
			if unpaidCharge && l.GLAccountType == models.GLAccountTypeLiability {
				continue
			}
			kept = append(kept, l)
		}
	}

	SortLedgerLines(kept)
	return kept
}

// SumDebitNet adds the raw debit-minus-credit figure of every group.
func SumDebitNet(groups []models.LedgerGroup) decimal.Decimal {
	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.DebitNet)
	}
	return total
}
