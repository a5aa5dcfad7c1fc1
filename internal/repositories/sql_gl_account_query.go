package repositories

import (
	sq "github.com/Masterminds/squirrel"
)

var glAccountColumns = []string{
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

func buildGLAccountsQuery(ids []string) sq.SelectBuilder {
	query := psql.
		Select(glAccountColumns...).
		From(`"gl_accounts" ga`).
		LeftJoin(`"gl_account_category" gc ON gc."id" = ga."category_id"`)

	if len(ids) > 0 {
		query = query.Where(anyOf(`ga."id"::text`, ids))
	}

	return query.OrderBy(`ga."id" ASC`)
}
