package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/common/flag"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/services"
)

var errMissingProperty = errors.New("at least one property id is required, pass -p")

type reportHandler struct {
	financeSrv services.FinanceService
	reconSrv   services.ReconService
	currency   string
	out        io.Writer
}

func Routes(fs services.FinanceService, rs services.ReconService, currency string) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := reportHandler{
		financeSrv: fs,
		reconSrv:   rs,
		currency:   currency,
		out:        os.Stdout,
	}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"CheckReconciliationDrift": handler.CheckReconciliationDrift,
		"PrintPropertyFinance":     handler.PrintPropertyFinance,
		// add more job here
	}
}

// CheckReconciliationDrift is a no-op when another run still holds the lock.
func (rh *reportHandler) CheckReconciliationDrift(ctx context.Context, date time.Time, flag flag.Job) error {
	report, err := rh.reconSrv.RunScheduledCheck(ctx)
	if errors.Is(err, common.ErrJobLocked) {
		xlog.Info(ctx, "CheckReconciliationDrift", xlog.String("status", "skipped"), xlog.Err(err))
		return nil
	}
	if err != nil {
		return err
	}

	xlog.Info(ctx, "CheckReconciliationDrift",
		xlog.Int("checked", report.Checked),
		xlog.Int("flagged", report.Flagged),
		xlog.Int("errored", report.Errored),
		xlog.Int("skipped", report.Skipped))

	return nil
}

func (rh *reportHandler) PrintPropertyFinance(ctx context.Context, date time.Time, flag flag.Job) error {
	if len(flag.PropertyIDs) == 0 {
		return errMissingProperty
	}
	if date.IsZero() {
		date = common.Today()
	}

	scopes := make([]models.RollupScope, 0, len(flag.PropertyIDs))
	for _, id := range flag.PropertyIDs {
		scopes = append(scopes, models.RollupScope{PropertyID: id})
	}

	results, err := rh.financeSrv.GetRollups(ctx, scopes, date, 0)
	if len(results) > 0 {
		if werr := rh.writeFinanceTable(results); werr != nil {
			return werr
		}
	}

	return err
}

func (rh *reportHandler) writeFinanceTable(results []models.RollupResult) error {
	w := tabwriter.NewWriter(rh.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "PROPERTY\tAS OF\tSOURCE\tCASH\tSECURITY DEPOSITS\tRESERVE\tAVAILABLE\t")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Scope.PropertyID,
			r.AsOf.Format(common.DateFormatYYYYMMDD),
			r.Source,
			common.FormatCurrency(r.Values.CashBalance, rh.currency),
			common.FormatCurrency(r.Values.SecurityDeposits, rh.currency),
			common.FormatCurrency(r.Values.Reserve, rh.currency),
			common.FormatCurrency(r.Values.AvailableBalance, rh.currency))
	}
	return w.Flush()
}
