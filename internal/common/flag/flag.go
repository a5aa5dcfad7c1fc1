package flag

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/propledger/go-fp-rollup/internal/config"

	"github.com/Unleash/unleash-client-go/v3"
	"github.com/Unleash/unleash-client-go/v3/api"
)

var ErrVariantNotFound = fmt.Errorf("variant not found")

// Job describes one worker run.
type Job struct {
	JobName     string
	Version     string
	Date        string
	PropertyIDs []string
}

type Client interface {
	IsEnabled(feature string, options ...unleash.FeatureOption) bool
	GetVariant(feature string, options ...unleash.VariantOption) *api.Variant
	Close() error
}

type Variant[T any] struct {
	Enabled bool
	Value   T
}

// New connects to the unleash server. Without a configured url every flag
// falls back to its default, see NewStatic.
func New(cfg *config.Config) (Client, error) {
	if cfg.FeatureFlagSDKConfig.URL == "" {
		return NewStatic(nil), nil
	}

	c, err := unleash.NewClient(
		unleash.WithAppName(cfg.App.Name),
		unleash.WithUrl(cfg.FeatureFlagSDKConfig.URL),
		unleash.WithEnvironment(cfg.FeatureFlagSDKConfig.Env),
		unleash.WithRefreshInterval(cfg.FeatureFlagSDKConfig.RefreshInterval),
		unleash.WithCustomHeaders(http.Header{"Authorization": {cfg.FeatureFlagSDKConfig.Token}}),
		unleash.WithHttpClient(http.DefaultClient),
		unleash.WithListener(&unleash.DebugListener{}),
	)
	if err != nil {
		return nil, err
	}
	c.WaitForReady()

	return c, nil
}

// GetVariant returns the variant for the given key decoded from its json payload.
func GetVariant[T any](c Client, key string) (*Variant[T], error) {
	variant := c.GetVariant(key)
	if variant == nil {
		return nil, fmt.Errorf("%w: variant for key %s not found", ErrVariantNotFound, key)
	}

	var res T
	if !variant.Enabled {
		return &Variant[T]{Enabled: false, Value: res}, nil
	}

	if err := json.Unmarshal([]byte(variant.Payload.Value), &res); err != nil {
		return nil, fmt.Errorf("unmarshal variant for key %s failed: %w", key, err)
	}

	return &Variant[T]{Enabled: true, Value: res}, nil
}

type static struct {
	flags map[string]bool
}

// NewStatic answers from a fixed table, unknown features are enabled.
func NewStatic(flags map[string]bool) Client {
	if flags == nil {
		flags = map[string]bool{}
	}
	return &static{flags: flags}
}

func (s *static) IsEnabled(feature string, _ ...unleash.FeatureOption) bool {
	enabled, ok := s.flags[feature]
	return !ok || enabled
}

func (s *static) GetVariant(string, ...unleash.VariantOption) *api.Variant {
	return api.GetDefaultVariant()
}

func (s *static) Close() error {
	return nil
}
