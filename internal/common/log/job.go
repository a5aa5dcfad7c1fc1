package log

import (
	"context"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common/xlog"
)

// LogJob writes the single outcome line every job run ends with.
func LogJob(ctx context.Context, jobName, version, date string, elapsed time.Duration, err error) {
	fields := []xlog.Field{
		xlog.String("job-name", jobName),
		xlog.String("version", version),
		xlog.String("execution-date", date),
		xlog.Duration("elapsed", elapsed),
	}
	if err != nil {
		fields = append(fields, xlog.String("status", "fail"), xlog.Err(err))
		xlog.Warn(ctx, "[JOB]", fields...)
		return
	}

	fields = append(fields, xlog.String("status", "success"))
	xlog.Info(ctx, "[JOB]", fields...)
}
