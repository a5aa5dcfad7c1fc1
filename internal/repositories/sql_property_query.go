package repositories

var (
	queryPropertyGetReserve = `SELECT COALESCE("reserve", 0) FROM "properties" WHERE "id"::text = $1;`

	queryPropertyGetFinancials = `SELECT
		"cash_balance", "security_deposits", "reserve", "available_balance"
	FROM get_property_financials($1, $2);`
)
