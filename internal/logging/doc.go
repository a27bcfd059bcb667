// Package logging provides structured logging for the slidecraft tools.
//
// This package wraps a global zap logger with convenience functions used by
// both the configuration builder and the backend server. CLI commands are
// silent by default; set SLIDECRAFT_LOG_LEVEL to enable output.
//
// # Log Levels
//
//   - Debug: detailed debugging info (request payloads, parse traces)
//   - Info: normal operations (requests served, generation started)
//   - Warn: non-fatal issues (skipped directory entries, slow responses)
//   - Error: failures (generation errors, unreadable paths)
//
// # Usage
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
//	logging.Info("generation started",
//	    zap.String("config", configPath),
//	    zap.String("output_dir", outputDir),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
