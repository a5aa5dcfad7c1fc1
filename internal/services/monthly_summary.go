package services

import (
	"sort"
	"strings"

	"github.com/propledger/go-fp-rollup/internal/models"
)

// BuildMonthlySummary totals a monthly log's transactions from their display
// line, then applies the escrow override. Bills carrying a management fee or
// property tax line stay out of totalBills.
func BuildMonthlySummary(lines []models.LedgerLine, log models.MonthlyLog, unitID string, classifier GLClassifier) (models.FinancialSummary, []models.PeriodTransaction) {
	if classifier == nil {
		classifier = DefaultClassifier()
	}

	baseline := models.FinancialSummary{PreviousBalance: log.PreviousBalance}
	order, byTrx := groupByTransaction(lines)
	for _, trxID := range order {
		trxLines := byTrx[trxID]
		display := pickDisplayLine(trxLines, unitID, classifier)
		amount := display.Amount.Abs()

		for _, l := range trxLines {
			if classifier.IsManagementFee(l.GLAccountName) {
				baseline.ManagementFees = baseline.ManagementFees.Add(l.Amount.Abs())
			}
		}

		switch display.TransactionType {
		case models.TransactionTypeCharge:
			baseline.TotalCharges = baseline.TotalCharges.Add(amount)
		case models.TransactionTypeCredit:
			baseline.TotalCredits = baseline.TotalCredits.Add(amount)
		case models.TransactionTypePayment:
			baseline.TotalPayments = baseline.TotalPayments.Add(amount)
		case models.TransactionTypeBill:
			if !hasExcludedBillLine(trxLines, classifier) {
				baseline.TotalBills = baseline.TotalBills.Add(amount)
			}
		}
	}

	period := AnnotatePeriodTransactions(lines, unitID)
	return ResolveEscrowOverride(period, baseline, classifier), period
}

func hasExcludedBillLine(lines []models.LedgerLine, classifier GLClassifier) bool {
	for _, l := range lines {
		if classifier.IsManagementFee(l.GLAccountName) || classifier.IsPropertyTax(l.GLAccountName) {
			return true
		}
	}
	return false
}

func isDepositOrEscrow(l models.LedgerLine, classifier GLClassifier) bool {
	return strings.EqualFold(strings.TrimSpace(l.GLCategory), "deposit") || classifier.IsEscrow(l.GLAccountName)
}

// pickDisplayLine prefers an owner draw line, then the scope unit, debits over
// credits, deposit or escrow accounts, and finally the earliest created line.
func pickDisplayLine(lines []models.LedgerLine, unitID string, classifier GLClassifier) models.LedgerLine {
	for _, l := range lines {
		if classifier.IsOwnerDraw(l.GLAccountName) {
			return l
		}
	}

	rank := func(l models.LedgerLine) [3]int {
		var r [3]int
		if unitID == "" || l.UnitID != unitID {
			r[0] = 1
		}
		if !l.PostingType.IsDebit() {
			r[1] = 1
		}
		if !isDepositOrEscrow(l, classifier) {
			r[2] = 1
		}
		return r
	}

	sorted := make([]models.LedgerLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := rank(sorted[i]), rank(sorted[j])
		for k := range ri {
			if ri[k] != rj[k] {
				return ri[k] < rj[k]
			}
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted[0]
}
