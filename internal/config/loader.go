package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "GO_FP_ROLLUP"
	configFileName = "config"
)

var defaultSearchPaths = []string{"/config", ".", "./config"}

// Load reads config.{yaml,json} from the search paths and lets GO_FP_ROLLUP_*
// environment variables override any key, e.g. GO_FP_ROLLUP_APP_HTTP_PORT.
func Load(paths ...string) (Config, error) {
	v := newViper(paths...)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

func newViper(paths ...string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configFileName)
	if len(paths) == 0 {
		paths = defaultSearchPaths
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "local")
	v.SetDefault("app.name", "go-fp-rollup")
	v.SetDefault("app.http_port", 8080)
	v.SetDefault("app.http_timeout", 30*time.Second)
	v.SetDefault("app.graceful_timeout", 10*time.Second)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("rollup.default_basis", "accrual")
	v.SetDefault("rollup.authoritative_cache_ttl", 5*time.Minute)
	v.SetDefault("rollup.gl_chart_cache_ttl", time.Minute)
	v.SetDefault("rollup.concurrency", 4)
	v.SetDefault("rollup.use_cash_proxy", true)
	v.SetDefault("rollup.compare_tolerance", 0.01)
	v.SetDefault("rollup.currency", "USD")
	v.SetDefault("recon.drift_tolerance", 0.01)
	v.SetDefault("recon.concurrency", 4)
	v.SetDefault("recon.alert_topic", "recon_drift_alert")
	v.SetDefault("exponential_backoff.max_retries", 3)
	v.SetDefault("exponential_backoff.max_backoff_time", 2*time.Second)
	v.SetDefault("exponential_backoff.backoff_multiplier", 1.5)
	v.SetDefault("message_broker.metric_flush_interval", 10*time.Second)
	// secrets usually arrive through env only, viper needs the key registered to pick them up
	for _, key := range []string{
		"postgres.read.db_pass", "redis.password",
		"new_relic_license_key", "feature_flag_sdk.token",
	} {
		v.SetDefault(key, "")
	}
	v.SetDefault("feature_flag_key_lookup.authoritative_rollup", "fp_rollup_authoritative_balance")
	v.SetDefault("feature_flag_key_lookup.publish_drift_alert", "fp_rollup_publish_drift_alert")
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
