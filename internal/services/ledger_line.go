package services

import (
	"sort"

	"github.com/propledger/go-fp-rollup/internal/models"

	"github.com/shopspring/decimal"
)

// AdaptLedgerRows turns raw storage rows into canonical lines. Rows without a
// resolvable gl account are counted as missing linkage and dropped. Unbalanced
// transactions are reported as warnings and kept.
func AdaptLedgerRows(rows []models.LedgerRow, lookup models.GLLookup) models.AdaptResult {
	res := models.AdaptResult{Lines: make([]models.LedgerLine, 0, len(rows))}

	for _, row := range rows {
		acc, ok := resolveGLAccount(row, lookup)
		if !ok {
			res.MissingLinkage++
			continue
		}

		res.Lines = append(res.Lines, models.LedgerLine{
			ID:              row.LineID,
			Date:            row.Date,
			CreatedAt:       row.CreatedAt,
			Amount:          row.Amount.Abs(),
			PostingType:     models.ParsePostingType(row.PostingType),
			TransactionID:   row.TransactionID,
			TransactionType: models.ParseTransactionType(row.TransactionType),
			PropertyID:      row.PropertyID,
			UnitID:          row.UnitID,
			Memo:            row.Memo,

			GLAccountID:                  acc.ID,
			GLAccountName:                acc.Name,
			GLAccountType:                acc.Type,
			GLSubType:                    acc.SubType,
			GLCategory:                   acc.Category,
			GLIsBankAccount:              acc.IsBankAccount,
			GLIsSecurityDepositLiability: acc.IsSecurityDepositLiability,
			GLExcludeFromCash:            acc.ExcludeFromCashBalances,
		})
	}

	SortLedgerLines(res.Lines)
	res.Warnings = checkTransactionBalance(res.Lines)

	return res
}

func resolveGLAccount(row models.LedgerRow, lookup models.GLLookup) (models.GLAccount, bool) {
	if row.GLAccount != nil && row.GLAccount.ID != "" {
		return *row.GLAccount, true
	}
	if row.GLAccountID == "" {
		return models.GLAccount{}, false
	}
	return lookup.Get(row.GLAccountID)
}

// SortLedgerLines orders by date, then creation time, then id.
func SortLedgerLines(lines []models.LedgerLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

func checkTransactionBalance(lines []models.LedgerLine) []models.DataQualityWarning {
	type totals struct {
		debits, credits decimal.Decimal
	}
	var order []string
	byTrx := make(map[string]*totals)
	for _, l := range lines {
		t, ok := byTrx[l.TransactionID]
		if !ok {
			t = &totals{}
			byTrx[l.TransactionID] = t
			order = append(order, l.TransactionID)
		}
		if l.PostingType.IsDebit() {
			t.debits = t.debits.Add(l.Amount)
		} else {
			t.credits = t.credits.Add(l.Amount)
		}
	}

	var warnings []models.DataQualityWarning
	for _, id := range order {
		t := byTrx[id]
		if t.debits.Equal(t.credits) {
			continue
		}
		warnings = append(warnings, models.DataQualityWarning{
			Kind:          models.WarningInconsistentTransaction,
			TransactionID: id,
			Debits:        models.NewMoney(t.debits),
			Credits:       models.NewMoney(t.credits),
		})
	}
	return warnings
}

// groupByTransaction keeps the first-seen order of transactions and of lines within each.
func groupByTransaction(lines []models.LedgerLine) ([]string, map[string][]models.LedgerLine) {
	var order []string
	byTrx := make(map[string][]models.LedgerLine)
	for _, l := range lines {
		if _, ok := byTrx[l.TransactionID]; !ok {
			order = append(order, l.TransactionID)
		}
		byTrx[l.TransactionID] = append(byTrx[l.TransactionID], l)
	}
	return order, byTrx
}
