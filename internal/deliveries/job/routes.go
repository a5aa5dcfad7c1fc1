package job

import (
	"context"
	"errors"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common"
	"github.com/propledger/go-fp-rollup/internal/common/flag"
	"github.com/propledger/go-fp-rollup/internal/common/log"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/config"
	v1report "github.com/propledger/go-fp-rollup/internal/deliveries/job/v1/report"
	"github.com/propledger/go-fp-rollup/internal/services"

	"github.com/google/uuid"
)

var ErrUnknownJob = errors.New("invalid version or job name")

type JobRoutes map[string]map[string]func(ctx context.Context, date time.Time, flag flag.Job) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, finance services.FinanceService, recon services.ReconService) *Job {
	v1group := "v1"

	jobRoutes := JobRoutes{
		v1group: v1report.Routes(finance, recon, cfg.Rollup.Currency),
		// add other version routes
	}

	return &Job{jobRoutes}
}

// Start runs one job and returns its error, the outcome is also logged.
func (j *Job) Start(ctx context.Context, flag flag.Job) (err error) {
	start := time.Now()
	ctx = xlog.WithCorrelationID(ctx, uuid.New().String())
	defer func() {
		log.LogJob(ctx, flag.JobName, flag.Version, flag.Date, time.Since(start), err)
	}()

	fn, ok := j.Routes[flag.Version][flag.JobName]
	if !ok {
		return ErrUnknownJob
	}

	var runningDate time.Time
	if flag.Date != "" {
		runningDate, err = common.ParseStringToDatetime(common.DateFormatYYYYMMDD, flag.Date)
		if err != nil {
			return err
		}
	}

	return fn(ctx, runningDate, flag)
}
