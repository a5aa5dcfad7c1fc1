package repositories

import (
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/models"

	sq "github.com/Masterminds/squirrel"
)

// ledgerRowColumns must stay in the scan order of scanLedgerRow.
var ledgerRowColumns = []string{
	`tl."id"`,
	`t."id"`,
	`COALESCE(t."transaction_type", '')`,
	`t."date"`,
	`tl."created_at"`,
	`tl."amount"`,
	`COALESCE(tl."posting_type", '')`,
	`COALESCE(tl."property_id"::text, t."property_id"::text, '')`,
	`COALESCE(tl."unit_id"::text, '')`,
	`COALESCE(tl."memo", '')`,
	`COALESCE(tl."gl_account_id"::text, '')`,
	`ga."id"::text`,
	`COALESCE(ga."type", '')`,
	`COALESCE(ga."sub_type", '')`,
	`COALESCE(ga."name", '')`,
	`COALESCE(ga."default_account_name", '')`,
	`COALESCE(ga."account_number", '')`,
	`COALESCE(gc."name", '')`,
	`COALESCE(ga."is_bank_account", false)`,
	`COALESCE(ga."is_security_deposit_liability", false)`,
	`COALESCE(ga."exclude_from_cash_balances", false)`,
}

func buildLedgerRowsQuery(q models.LedgerQuery) sq.SelectBuilder {
	query := psql.
		Select(ledgerRowColumns...).
		From(`"transaction_lines" tl`).
		Join(`"transactions" t ON t."id" = tl."transaction_id"`).
		LeftJoin(`"gl_accounts" ga ON ga."id" = tl."gl_account_id"`).
		LeftJoin(`"gl_account_category" gc ON gc."id" = ga."category_id"`)

	if q.PropertyID != "" {
		query = query.Where(sq.Expr(`COALESCE(tl."property_id", t."property_id")::text = ?`, q.PropertyID))
	}
	if q.UnitID != "" {
		query = query.Where(sq.Eq{`tl."unit_id"::text`: q.UnitID})
	}
	if q.MonthlyLogID != "" {
		query = query.Where(sq.Eq{`t."monthly_log_id"::text`: q.MonthlyLogID})
	}
	if len(q.GLAccountIDs) > 0 {
		query = query.Where(anyOf(`tl."gl_account_id"::text`, q.GLAccountIDs))
	}
	if q.From != nil {
		query = query.Where(sq.GtOrEq{`t."date"`: common.StartOfDay(*q.From)})
	}
	if q.To != nil {
		query = query.Where(sq.Lt{`t."date"`: common.StartOfDay(*q.To).Add(24 * time.Hour)})
	}

	return query.OrderBy(`t."date" ASC`, `tl."created_at" ASC`, `tl."id" ASC`)
}
