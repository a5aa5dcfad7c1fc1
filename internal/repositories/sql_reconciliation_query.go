package repositories

import (
	sq "github.com/Masterminds/squirrel"
)

func buildReconciliationQuery(bankGLAccountIDs []string) sq.SelectBuilder {
	query := psql.
		Select(
			`rl."id"::text`,
			`COALESCE(rl."bank_gl_account_id"::text, '')`,
			`rl."statement_ending_date"`,
			`rl."ending_balance"`,
			`COALESCE(rl."is_finished", false)`,
			`rl."total_checks_withdrawals"`,
			`rl."total_deposits_additions"`,
		).
		From(`"reconciliation_log" rl`)

	if len(bankGLAccountIDs) > 0 {
		query = query.Where(anyOf(`rl."bank_gl_account_id"::text`, bankGLAccountIDs))
	}

	return query.OrderBy(`rl."statement_ending_date" DESC NULLS LAST`, `rl."id" ASC`)
}
