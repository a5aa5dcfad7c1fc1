package graceful

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common/xlog"

	"golang.org/x/exp/slices"
)

type ProcessStarter func() error

type ProcessStopper func(ctx context.Context) error

type ProcessStartStopper interface {
	Start() ProcessStarter
	Stop() ProcessStopper
}

func StartProcessAtBackground(ps ...ProcessStarter) {
	for _, p := range ps {
		if p == nil {
			continue
		}
		go func() {
			if err := p(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				xlog.Error(context.Background(), "[GRACEFUL] process stopped with error", xlog.Err(err))
			}
		}()
	}
}

// StopProcessAtBackground blocks until SIGINT, SIGTERM or SIGUSR1 and then stops ps.
func StopProcessAtBackground(duration time.Duration, ps ...ProcessStopper) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1)
	defer signal.Stop(sig)

	received := <-sig
	xlog.Info(context.Background(), "[GRACEFUL] shutdown signal received", xlog.String("signal", received.String()))
	StopProcess(duration, ps...)
}

// StopProcess runs the stoppers in reverse registration order, each with its own timeout.
func StopProcess(duration time.Duration, ps ...ProcessStopper) {
	stoppers := slices.Clone(ps)
	slices.Reverse(stoppers)

	for _, p := range stoppers {
		if p == nil {
			continue
		}
		func() {
			ctx, stop := context.WithTimeout(context.Background(), duration)
			defer stop()
			_ = p(ctx)
		}()
	}
}
