package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	Host         string
	DatabaseURL  string
	DatabaseType string
	ExportDir    string
	OperatorKey  string
	PhotoSize    int
	SymbolSize   int
	LogFormat    string
	LogLevel     string
}

// Addr returns host:port for the HTTP server
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("ballot-kiosk", flag.ContinueOnError)

	fs.StringVar(&envFile, "env", ".env", "Dotenv file to load (missing file is ignored)")

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Host, "host", "", "Listen address (default 127.0.0.1)")

	// Results archive (optional)
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Results archive database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	fs.StringVar(&cfg.ExportDir, "export-dir", "", "Directory for exported result files")
	fs.StringVar(&cfg.OperatorKey, "operator-key", "", "Operator key (prefer env)")
	fs.IntVar(&cfg.PhotoSize, "photo-size", 0, "Candidate photo size in pixels")
	fs.IntVar(&cfg.SymbolSize, "symbol-size", 0, "Candidate symbol size in pixels")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (auto, text or json)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// godotenv never overrides variables that are already set
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	cfg.Host = fallback(cfg.Host, "HOST", "127.0.0.1")
	cfg.DatabaseURL = fallback(cfg.DatabaseURL, "DATABASE_URL", "")
	cfg.DatabaseType = fallback(cfg.DatabaseType, "DATABASE_TYPE", "sqlite")
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q", cfg.DatabaseType)
	}

	cfg.ExportDir = fallback(cfg.ExportDir, "EXPORT_DIR", ".")
	cfg.OperatorKey = fallback(cfg.OperatorKey, "OPERATOR_KEY", "")
	cfg.LogFormat = fallback(cfg.LogFormat, "LOG_FORMAT", "auto")
	cfg.LogLevel = fallback(cfg.LogLevel, "LOG_LEVEL", "info")

	return cfg, nil
}

func fallback(value, envKey, def string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(envKey); env != "" {
		return env
	}
	return def
}
