package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common/graceful"
	commonhttp "github.com/propledger/go-fp-rollup/internal/common/http"
	"github.com/propledger/go-fp-rollup/internal/common/http/middleware"
	"github.com/propledger/go-fp-rollup/internal/common/metrics"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/config"
	"github.com/propledger/go-fp-rollup/internal/deliveries/http/health"
	"github.com/propledger/go-fp-rollup/internal/services"

	v1finance "github.com/propledger/go-fp-rollup/internal/deliveries/http/v1/finance"
	v1generalLedger "github.com/propledger/go-fp-rollup/internal/deliveries/http/v1/general_ledger"
	v1monthlyLog "github.com/propledger/go-fp-rollup/internal/deliveries/http/v1/monthly_log"
	v1reconciliation "github.com/propledger/go-fp-rollup/internal/deliveries/http/v1/reconciliation"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	echoSwagger "github.com/swaggo/echo-swagger"

	// for swagger docs
	_ "github.com/propledger/go-fp-rollup/docs"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			xlog.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			xlog.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// @title GO FP ROLLUP API DOCUMENTATION
// @version 1.0
// @description Property finance rollups, general ledger, monthly summaries and reconciliation drift.

// @host localhost:9567
// @BasePath /api
// @schemes http
func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	financeService services.FinanceService,
	ledgerService services.LedgerService,
	summaryService services.SummaryService,
	reconService services.ReconService,
	metrics metrics.Metrics,
	checks map[string]health.Check,
) *svc {
	app := echo.New()
	app.HideBanner = true

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())
	if conf.App.HTTPTimeout > 0 {
		app.Use(echomiddleware.ContextTimeout(conf.App.HTTPTimeout))
	}

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-correlation-id", xlog.CorrelationID(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(metrics.EchoMiddleware(conf.App.Name, "api"))
	app.GET("/metrics", echoprometheus.NewHandler())

	// swagger
	app.GET("/swagger/*", echoSwagger.WrapHandler)

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup, checks)

	// v1Group register api
	v1Group := apiGroup.Group("/v1")
	v1finance.New(v1Group, financeService)
	v1generalLedger.New(v1Group, ledgerService)
	v1monthlyLog.New(v1Group, summaryService)
	v1reconciliation.New(v1Group, reconService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	xlog.Info(ctx, "[HTTP] routes registered", xlog.Int("routes", len(app.Routes())), xlog.String("addr", svc.addr))

	return svc
}
