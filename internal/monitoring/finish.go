package monitoring

import (
	"time"

	"github.com/propledger/go-fp-rollup/internal/common/xlog"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err        error
	xlogFields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishXlogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.xlogFields = fields
	}
}

func (m *Monitor) Finish(opts ...FinishOption) {
	fOpts := &finishOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	fOpts.xlogFields = append(fOpts.xlogFields,
		xlog.String("segment", m.segmentName),
		xlog.Duration("processDuration", time.Since(m.start)))

	if fOpts.err != nil {
		fOpts.xlogFields = append(
			fOpts.xlogFields,
			xlog.String("status", "error"),
			xlog.Err(fOpts.err))

		xlog.Warn(m.ctx, m.message(), fOpts.xlogFields...)
		if m.segment != nil {
			m.segment.AddAttribute("error", fOpts.err.Error())
		}
	} else if m.layer == LayerDelivery || m.layer == LayerService {
		// repository successes are implied by the service log
		fOpts.xlogFields = append(fOpts.xlogFields, xlog.String("status", "success"))
		xlog.Info(m.ctx, m.message(), fOpts.xlogFields...)
	}

	if m.segment != nil {
		m.segment.End()
	}
}

func (m *Monitor) message() string {
	prefix, ok := messagePrefix[m.layer]
	if !ok {
		prefix = messagePrefix[LayerUnknown]
	}
	return prefix + " " + m.segmentName
}
