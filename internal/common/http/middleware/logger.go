package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/config"

	"golang.org/x/exp/slices"

	"github.com/labstack/echo/v4"
)

var skipAccessLog = []string{
	"/api/health",
	"/api/health/readiness",
	"/metrics",
	"/swagger/*",
}

var redactedHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"x-api-key":     {},
}

// only error bodies are kept, a general ledger payload can be megabytes
const maxErrorBody = 2048

// errorBodyRecorder tees the response into buf until the status is known to be
// an error, successful bodies are never buffered.
type errorBodyRecorder struct {
	http.ResponseWriter
	buf    *bytes.Buffer
	status int
}

func (r *errorBodyRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *errorBodyRecorder) Write(b []byte) (int, error) {
	if r.status >= http.StatusBadRequest && r.buf.Len() < maxErrorBody {
		r.buf.Write(b[:min(len(b), maxErrorBody-r.buf.Len())])
	}
	return r.ResponseWriter.Write(b)
}

func (r *errorBodyRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func redactHeaders(h http.Header) string {
	out := make(map[string][]string, len(h))
	for k, vals := range h {
		if _, ok := redactedHeaders[strings.ToLower(k)]; ok {
			out[k] = []string{"*****"}
			continue
		}
		out[k] = vals
	}
	b, _ := json.Marshal(out)
	return string(b)
}

func readBody(req *http.Request) string {
	if req.Body == nil || req.ContentLength == 0 {
		return ""
	}
	body, _ := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))
	return string(body)
}

// Logger writes one access log line per request. Request headers are only
// logged outside production.
func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	verbose := config.StringToEnvironment(m.conf.App.Env) != config.PROD_ENV

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(skipAccessLog, c.Path()) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			reqBody := readBody(req)

			rec := &errorBodyRecorder{ResponseWriter: c.Response().Writer, buf: new(bytes.Buffer)}
			c.Response().Writer = rec

			if err := next(c); err != nil {
				c.Error(err)
			}

			res := c.Response()
			latency := time.Since(start)
			fields := []xlog.Field{
				xlog.String("method", req.Method),
				xlog.String("route", c.Path()),
				xlog.String("query", req.URL.RawQuery),
				xlog.Int("status", res.Status),
				xlog.Int64("bytes_out", res.Size),
				xlog.Duration("latency", latency),
			}
			if reqBody != "" {
				fields = append(fields, xlog.String("request_body", reqBody))
			}
			if verbose {
				fields = append(fields, xlog.String("request_header", redactHeaders(req.Header)))
			}
			if rec.buf.Len() > 0 {
				fields = append(fields, xlog.String("error_body", rec.buf.String()))
			}

			msg := fmt.Sprintf("%d %s %s %v", res.Status, req.Method, req.URL.Path, latency)
			switch {
			case res.Status >= http.StatusInternalServerError:
				xlog.Error(req.Context(), msg, fields...)
			case res.Status >= http.StatusBadRequest:
				xlog.Warn(req.Context(), msg, fields...)
			default:
				xlog.Info(req.Context(), msg, fields...)
			}

			return nil
		}
	}
}
