package monitoring

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerUnknown    = "unknown"
)

// layers in lookup order, a file path is matched against each directory name
var layers = []string{LayerRepository, LayerService, LayerDelivery}

type Monitor struct {
	ctx         context.Context
	segmentName string

	// layer is where the monitored call lives: repository, service or delivery
	layer string

	start time.Time

	segment *newrelic.Segment
}

type initOptions struct {
	layer       string
	segmentName string
	attributes  map[string]any
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

// WithAttribute adds a custom attribute to the New Relic segment.
func WithAttribute(key string, value any) InitOption {
	return func(o *initOptions) {
		if o.attributes == nil {
			o.attributes = make(map[string]any)
		}
		o.attributes[key] = value
	}
}

func New(ctx context.Context, opts ...InitOption) *Monitor {
	fOpts := &initOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	if fOpts.segmentName == "" {
		// caller frame 1 is the function that called New, keep this lookup here
		pc, file, _, ok := runtime.Caller(1)
		fOpts.segmentName = "unknown"
		if ok {
			if fn := runtime.FuncForPC(pc); fn != nil {
				fOpts.segmentName = getSegmentName(fn.Name())
			}
		}
		if fOpts.layer == "" {
			fOpts.layer = layerFromFile(file)
		}
	}
	if fOpts.layer == "" {
		fOpts.layer = LayerUnknown
	}

	segment := newrelic.FromContext(ctx).StartSegment(fOpts.segmentName)
	if segment != nil {
		segment.AddAttribute("layer", fOpts.layer)
		for k, v := range fOpts.attributes {
			segment.AddAttribute(k, v)
		}
	}

	return &Monitor{
		ctx:         ctx,
		layer:       fOpts.layer,
		start:       time.Now(),
		segmentName: fOpts.segmentName,
		segment:     segment,
	}
}

func layerFromFile(file string) string {
	for _, layer := range layers {
		if strings.Contains(file, "/"+layer+"/") {
			return layer
		}
	}
	return LayerUnknown
}
