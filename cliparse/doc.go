// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - Host: Listen address (default: 127.0.0.1, the kiosk is local only)
  - DatabaseURL: Results archive connection string (optional)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - ExportDir: Directory for exported result files (default: ".")
  - OperatorKey: Secret for setup/close/export routes (generated when empty)
  - PhotoSize, SymbolSize: Image sizes in pixels (default: 180, 60)
  - LogFormat: auto, text or json (default: auto)
  - LogLevel: debug, info, warn, error (default: info)

# CLI Flags

	-env            Dotenv file (default .env)
	-p              Server port
	-host           Listen address
	-d              Database URL
	-t              Database type
	-export-dir     Export directory
	-operator-key   Operator key
	-photo-size     Photo size
	-symbol-size    Symbol size
	-log-format     Log format
	-log-level      Log level

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	HOST          → -host
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	EXPORT_DIR    → -export-dir
	OPERATOR_KEY  → -operator-key
	LOG_FORMAT    → -log-format
	LOG_LEVEL     → -log-level

CLI flags take precedence over environment variables. Variables from the
dotenv file only fill in what is not already set in the environment.
*/
package cliparse
