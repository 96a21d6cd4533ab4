package config

import "time"

// Default values for configuration fields.
const (
	// Parser defaults
	DefaultParserMaxDepth = 512

	// Catalog defaults
	DefaultCatalogBackend      = "sqlite"
	DefaultCatalogPath         = "data/catalog.db"
	DefaultCatalogMaxOpenConns = 10
	DefaultCatalogMaxIdleConns = 5
	DefaultCatalogWALMode      = true
	DefaultCatalogBusyTimeout  = 5 * time.Second

	// Watch defaults
	DefaultWatchDebounceInterval = 100 * time.Millisecond
	DefaultWatchSkipHidden       = true

	// Sweep defaults
	DefaultSweepPruneMissing    = true
	DefaultSweepVerifyRoundTrip = true

	// Telemetry defaults
	DefaultLoggingLevel         = "info"
	DefaultLoggingFormat        = "text"
	DefaultMetricsNamespace     = "gdl"
	DefaultMetricsSubsystem     = "toolkit"
	DefaultMetricsListenAddress = "127.0.0.1:9095"
)

// DefaultWatchExtensions is the default set of file extensions treated as
// game descriptions.
var DefaultWatchExtensions = []string{".kif", ".gdl", ".lisp"}

// DefaultConfig returns a configuration populated with default values.
// LoadConfig unmarshals YAML over a default configuration, so fields absent
// from the file keep their defaults, including booleans that default to true.
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			MaxDepth: DefaultParserMaxDepth,
		},
		Catalog: CatalogConfig{
			Backend:      DefaultCatalogBackend,
			Path:         DefaultCatalogPath,
			MaxOpenConns: DefaultCatalogMaxOpenConns,
			MaxIdleConns: DefaultCatalogMaxIdleConns,
			WALMode:      DefaultCatalogWALMode,
			BusyTimeout:  DefaultCatalogBusyTimeout,
		},
		Watch: WatchConfig{
			Extensions:       append([]string(nil), DefaultWatchExtensions...),
			DebounceInterval: DefaultWatchDebounceInterval,
			SkipHidden:       DefaultWatchSkipHidden,
		},
		Sweep: SweepConfig{
			PruneMissing:    DefaultSweepPruneMissing,
			VerifyRoundTrip: DefaultSweepVerifyRoundTrip,
		},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{
				Level:  DefaultLoggingLevel,
				Format: DefaultLoggingFormat,
			},
			Metrics: MetricsConfig{
				Namespace:     DefaultMetricsNamespace,
				Subsystem:     DefaultMetricsSubsystem,
				ListenAddress: DefaultMetricsListenAddress,
			},
		},
	}
}

// ApplyDefaults fills in default values for any zero-valued scalar fields of
// a programmatically constructed configuration. Boolean fields are left
// untouched because false is a meaningful setting; use DefaultConfig as the
// starting point to pick up boolean defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Parser.MaxDepth == 0 {
		cfg.Parser.MaxDepth = DefaultParserMaxDepth
	}

	if cfg.Catalog.Backend == "" {
		cfg.Catalog.Backend = DefaultCatalogBackend
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = DefaultCatalogPath
	}
	if cfg.Catalog.MaxOpenConns == 0 {
		cfg.Catalog.MaxOpenConns = DefaultCatalogMaxOpenConns
	}
	if cfg.Catalog.MaxIdleConns == 0 {
		cfg.Catalog.MaxIdleConns = DefaultCatalogMaxIdleConns
	}
	if cfg.Catalog.BusyTimeout == 0 {
		cfg.Catalog.BusyTimeout = DefaultCatalogBusyTimeout
	}

	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultWatchExtensions...)
	}
	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultWatchDebounceInterval
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if cfg.Telemetry.Metrics.ListenAddress == "" {
		cfg.Telemetry.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
}
