package health

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common/http"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"
)

const readinessTimeout = 2 * time.Second

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type healthHandler struct {
	checks map[string]Check
}

// New health handler will initialize the health/ resources endpoint
func New(app *echo.Group, checks map[string]Check) {
	hh := healthHandler{checks: checks}
	health := app.Group("/health")
	health.GET("", hh.healthCheck)
	health.GET("/readiness", hh.readiness)
}

type (
	DoHealthCheckLivenessResponse struct {
		Kind   string `json:"kind" example:"health"`
		Status string `json:"status" example:"server is up and running"`
	}

	DoHealthCheckReadinessResponse struct {
		Kind         string            `json:"kind" example:"readiness"`
		Ready        bool              `json:"ready" example:"true"`
		Dependencies map[string]string `json:"dependencies"`
	}
)

// healthCheck godoc
// @Summary 	Get the status of server
// @Description	Get the status of server
// @Tags		Health
// @Produce		json
// @Success 200 {object} DoHealthCheckLivenessResponse
// @Router /health [get]
func (hh healthHandler) healthCheck(c echo.Context) error {
	return http.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
		Kind:   "health",
		Status: "server is up and running",
	})
}

// readiness godoc
// @Summary 	Check the database and cache connections
// @Tags		Health
// @Produce		json
// @Success 200 {object} DoHealthCheckReadinessResponse
// @Failure 503 {object} DoHealthCheckReadinessResponse
// @Router /health/readiness [get]
func (hh healthHandler) readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	res := DoHealthCheckReadinessResponse{
		Kind:         "readiness",
		Ready:        true,
		Dependencies: make(map[string]string, len(hh.checks)),
	}

	names := make([]string, 0, len(hh.checks))
	for name := range hh.checks {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := hh.checks[name](ctx); err != nil {
			xlog.Warn(ctx, "[HEALTH]", xlog.String("dependency", name), xlog.Err(err))
			res.Ready = false
			res.Dependencies[name] = err.Error()
			continue
		}
		res.Dependencies[name] = "ok"
	}

	code := nethttp.StatusOK
	if !res.Ready {
		code = nethttp.StatusServiceUnavailable
	}
	return http.RestSuccessResponse(c, code, res)
}
