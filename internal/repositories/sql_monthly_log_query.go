package repositories

var queryMonthlyLogGetByID = `SELECT
	"id"::text, COALESCE("property_id"::text, ''), COALESCE("unit_id"::text, ''),
	"period_start", "period_end", COALESCE("previous_balance", 0)
FROM "monthly_logs"
WHERE "id"::text = $1;`
