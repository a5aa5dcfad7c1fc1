package config

import (
	"time"
)

type (
	Config struct {
		App                App      `json:"app"`
		Postgres           Postgres `json:"postgres"`
		Redis              Redis    `json:"redis"`
		NewRelicLicenseKey string   `json:"new_relic_license_key"`

		MessageBroker        MessageBroker            `json:"message_broker"`
		ExponentialBackoff   ExponentialBackOffConfig `json:"exponential_backoff"`
		Rollup               RollupConfig             `json:"rollup"`
		Recon                ReconConfig              `json:"recon"`
		Classifier           ClassifierConfig         `json:"classifier"`
		FeatureFlagSDKConfig FeatureFlagSDKConfig     `json:"feature_flag_sdk"`
		FeatureFlagKeyLookup FeatureFlagKeyLookup     `json:"feature_flag_key_lookup"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogLevel        string        `json:"log_level"`
	}

	// Postgres only carries the read replica, the ledger is never written here.
	Postgres struct {
		Read Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	MessageBroker struct {
		Brokers             []string      `json:"brokers"`
		ClientID            string        `json:"client_id"`
		MetricFlushInterval time.Duration `json:"metric_flush_interval"`
		IsVerbose           bool          `json:"is_verbose"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
	}

	RollupConfig struct {
		// DefaultBasis is used by the general ledger when the request has none.
		DefaultBasis          string        `json:"default_basis"`
		AuthoritativeCacheTTL time.Duration `json:"authoritative_cache_ttl"`
		GLChartCacheTTL       time.Duration `json:"gl_chart_cache_ttl"`
		Concurrency           int           `json:"concurrency"`
		UseCashProxy          bool          `json:"use_cash_proxy"`
		// CompareTolerance is the largest divergence still reported as agreeing.
		CompareTolerance float64 `json:"compare_tolerance"`
		// Currency is the ISO 4217 code used when figures are printed for humans.
		Currency string `json:"currency"`
	}

	ReconConfig struct {
		// DriftTolerance left unset keeps the one cent default, 0 demands exact matches.
		DriftTolerance *float64 `json:"drift_tolerance"`
		Concurrency    int      `json:"concurrency"`
		AlertTopic     string   `json:"alert_topic"`
	}

	// ClassifierConfig overrides the gl account keyword lists, empty lists keep the defaults.
	ClassifierConfig struct {
		BankKeywords            []string `json:"bank_keywords"`
		ReceivableKeywords      []string `json:"receivable_keywords"`
		SecurityDepositKeywords []string `json:"security_deposit_keywords"`
		PrepaymentKeywords      []string `json:"prepayment_keywords"`
		EscrowKeywords          []string `json:"escrow_keywords"`
		OwnerDrawNames          []string `json:"owner_draw_names"`
		ManagementFeeKeywords   []string `json:"management_fee_keywords"`
		PropertyTaxKeywords     []string `json:"property_tax_keywords"`
	}

	FeatureFlagSDKConfig struct {
		URL             string        `json:"url"`
		Token           string        `json:"token"`
		Env             string        `json:"env"`
		RefreshInterval time.Duration `json:"refresh_interval"`
	}

	FeatureFlagKeyLookup struct {
		AuthoritativeRollup string `json:"authoritative_rollup"`
		PublishDriftAlert   string `json:"publish_drift_alert"`
	}
)
