package main

import (
	"context"
	"sync"
	"time"

	"github.com/propledger/go-fp-rollup/cmd/setup"
	"github.com/propledger/go-fp-rollup/internal/common/graceful"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/deliveries/http"
)

// @title go-fp-rollup API
// @version 1.0
// @BasePath /api/v1
func main() {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	s, stopperContract, err := setup.Init("api")
	if err != nil {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}

		graceful.StopProcess(timeout, stopperContract...)

		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}

	httpServer := http.NewHTTPServer(ctx, s.Config, s.NewRelic,
		s.Service.Finance,
		s.Service.Ledger,
		s.Service.Summary,
		s.Service.Recon,
		s.Metrics,
		s.Checks,
	)

	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	xlog.Info(ctx, "http server stopped!")
}
