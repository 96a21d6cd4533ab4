// Package telemetry provides observability for the GDL toolkit.
//
// # Components
//
//   - logging: structured logging built on log/slog
//   - metrics: Prometheus metrics collection and the /metrics endpoint
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "text"})
//	if err != nil {
//	    return err
//	}
//	logger.Info("catalog opened", "backend", "sqlite", "path", path)
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	collector.RecordParse("success", duration, clauseCount)
package telemetry
