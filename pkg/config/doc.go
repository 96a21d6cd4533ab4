// Package config provides configuration management for the GDL toolkit.
//
// This package handles loading and validating configuration from YAML files
// with environment variable overrides.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("config.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// The file is unmarshaled over DefaultConfig, so any field absent from the
// file keeps its default value.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention GDL_SECTION_FIELD.
// For example:
//
//   - GDL_CATALOG_PATH overrides catalog.path
//   - GDL_WATCH_PATHS overrides watch.paths (comma-separated)
//   - GDL_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// Environment variables always take precedence over file-based configuration.
//
// # Example
//
//	parser:
//	  max_depth: 512
//
//	catalog:
//	  backend: sqlite
//	  path: data/catalog.db
//
//	watch:
//	  paths: [games/]
//	  extensions: [.kif, .gdl]
//	  debounce_interval: 100ms
//
//	sweep:
//	  schedule: "0 3 * * *"
//	  prune_missing: true
//
//	telemetry:
//	  logging:
//	    level: info
//	    format: text
//	  metrics:
//	    enabled: true
//	    listen_address: 127.0.0.1:9095
package config
