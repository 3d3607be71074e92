// Package logging provides structured logging for textterm.
//
// This package wraps zap logger with package-level convenience functions and
// a few domain helpers for the terminal's read/parse/design events.
//
// # Log Levels
//
//   - Debug: Read session lifecycle, parse outcomes, key latching
//   - Info: Design changes, settings saved
//   - Warn: Recoverable issues (clipboard unavailable, settings rewritten)
//   - Error: Programmer errors such as concurrent reads
//
// # Configuration
//
// Logging is silent by default. Set TEXTTERM_LOG_LEVEL (or pass --log-level)
// to enable it. Because the terminal UI owns stdout, entries are written to a
// file: TEXTTERM_LOG_FILE, --log-file, or textterm.log in the config
// directory.
//
//	if err := logging.Initialize("debug", "/tmp/textterm.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.Info("Settings saved",
//	    zap.String("path", path),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once initialized.
// Initialize and SetLogger must be called before goroutines start logging.
package logging
