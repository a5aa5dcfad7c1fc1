package services

import (
	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/shopspring/decimal"
)

// AnnotatePeriodTransactions reduces every transaction to one representative
// line: the first line on the scope unit, otherwise the earliest created one.
// The amount is signed debit positive.
func AnnotatePeriodTransactions(lines []models.LedgerLine, unitID string) []models.PeriodTransaction {
	order, byTrx := groupByTransaction(lines)
	out := make([]models.PeriodTransaction, 0, len(order))
	for _, trxID := range order {
		trxLines := byTrx[trxID]
		picked := trxLines[0]
		found := false
		if unitID != "" {
			for _, l := range trxLines {
				if l.UnitID == unitID {
					picked, found = l, true
					break
				}
			}
		}
		if !found {
			for _, l := range trxLines[1:] {
				if l.CreatedAt.Before(picked.CreatedAt) {
					picked = l
				}
			}
		}

		out = append(out, models.PeriodTransaction{
			TransactionID:   trxID,
			TransactionType: picked.TransactionType,
			SignedAmount:    picked.SignedAmount(),
			AccountName:     picked.GLAccountName,
		})
	}
	return out
}

// ResolveEscrowOverride recomputes escrow, owner draw and net to owner from the
// period's transactions. The baseline is not modified.
func ResolveEscrowOverride(transactions []models.PeriodTransaction, baseline models.FinancialSummary, classifier GLClassifier) models.FinancialSummary {
	if classifier == nil {
		classifier = DefaultClassifier()
	}

	escrow := decimal.Zero
	ownerDraw := decimal.Zero
	hasOwnerDraw := false
	for _, t := range transactions {
		if classifier.IsEscrow(t.AccountName) {
			escrow = escrow.Add(t.SignedAmount)
		}
		if classifier.IsOwnerDraw(t.AccountName) {
			hasOwnerDraw = true
			ownerDraw = ownerDraw.Add(t.SignedAmount.Abs())
		}
	}

	out := baseline
	out.EscrowAmount = escrow
	if !hasOwnerDraw {
		ownerDraw = out.TotalPayments.Sub(out.TotalBills).Sub(escrow)
	}
	out.OwnerDraw = ownerDraw
	out.NetToOwner = NetToOwner(out)

	if baseline.Balance == nil {
		balance := out.TotalCharges.Sub(out.TotalCredits).Sub(out.TotalPayments)
		out.Balance = &balance
	} else {
		balance := *baseline.Balance
		out.Balance = &balance
	}

	return out
}

// NetToOwner = previousBalance + payments - bills - managementFees - ownerDraw + escrow.
func NetToOwner(s models.FinancialSummary) decimal.Decimal {
	return s.PreviousBalance.
		Add(s.TotalPayments).
		Sub(s.TotalBills).
		Sub(s.ManagementFees).
		Sub(s.OwnerDraw).
		Add(s.EscrowAmount)
}
