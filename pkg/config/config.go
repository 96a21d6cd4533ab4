package config

import "time"

// Config is the root configuration structure for the GDL toolkit. It contains
// configuration sections for the parser, the description catalog, the file
// watcher, the scheduled catalog sweep, and telemetry.
type Config struct {
	// Parser contains configuration for the GDL parser.
	Parser ParserConfig `yaml:"parser"`

	// Catalog contains configuration for the game description catalog,
	// including backend selection and SQLite settings.
	Catalog CatalogConfig `yaml:"catalog"`

	// Watch contains configuration for watch mode: which directories to
	// watch, which file extensions to consider, and debounce behavior.
	Watch WatchConfig `yaml:"watch"`

	// Sweep contains configuration for the scheduled catalog sweep.
	Sweep SweepConfig `yaml:"sweep"`

	// Telemetry contains configuration for logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ParserConfig contains configuration for the GDL parser.
type ParserConfig struct {
	// MaxDepth is the maximum parenthesis nesting depth accepted by the
	// parser. Zero or negative disables the limit.
	// Default: 512
	MaxDepth int `yaml:"max_depth"`
}

// CatalogConfig contains configuration for the game description catalog.
type CatalogConfig struct {
	// Backend selects the storage backend: "sqlite" or "memory".
	// Default: "sqlite"
	Backend string `yaml:"backend"`

	// Path is the SQLite database file path.
	// Default: "data/catalog.db"
	Path string `yaml:"path"`

	// MaxOpenConns is the maximum number of open connections to the database.
	// Default: 10
	MaxOpenConns int `yaml:"max_open_conns"`

	// MaxIdleConns is the maximum number of idle connections.
	// Default: 5
	MaxIdleConns int `yaml:"max_idle_conns"`

	// WALMode enables Write-Ahead Logging mode for better concurrency.
	// Default: true
	WALMode bool `yaml:"wal_mode"`

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// WatchConfig contains configuration for watch mode.
type WatchConfig struct {
	// Paths is the list of files or directories to watch for game
	// description changes.
	Paths []string `yaml:"paths"`

	// Extensions is the list of file extensions treated as game
	// descriptions (e.g., ".kif", ".gdl").
	// Default: [".kif", ".gdl", ".lisp"]
	Extensions []string `yaml:"extensions"`

	// DebounceInterval is the time to wait after a file change before
	// re-parsing, to collapse editor save storms.
	// Default: 100ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// SkipHidden controls whether hidden files and directories are ignored.
	// Default: true
	SkipHidden bool `yaml:"skip_hidden"`
}

// SweepConfig contains configuration for the scheduled catalog sweep.
type SweepConfig struct {
	// Schedule is a cron expression controlling when sweeps run
	// (e.g., "0 3 * * *" for daily at 3 AM). Empty disables sweeping.
	Schedule string `yaml:"schedule"`

	// PruneMissing removes catalog entries whose source files no longer
	// exist on disk.
	// Default: true
	PruneMissing bool `yaml:"prune_missing"`

	// VerifyRoundTrip re-parses each entry's canonical text during the
	// sweep and reports entries that fail to round-trip.
	// Default: true
	VerifyRoundTrip bool `yaml:"verify_round_trip"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json", "text", or "console".
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled enables metrics collection and the /metrics endpoint in
	// watch mode.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Namespace is the Prometheus metric namespace.
	// Default: "gdl"
	Namespace string `yaml:"namespace"`

	// Subsystem is the Prometheus metric subsystem.
	// Default: "toolkit"
	Subsystem string `yaml:"subsystem"`

	// ListenAddress is the address for the /metrics HTTP endpoint.
	// Default: "127.0.0.1:9095"
	ListenAddress string `yaml:"listen_address"`
}
