package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Engine settings
	Prefix    string // Naming-convention prefix for eligible test names
	SkipToken string // Literal substring marking a test as skipped
	Workers   int

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Workers    int
	Prefix     string
	SkipToken  string
	NameFilter string
	FailFast   bool
	OpenFails  bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		Prefix:         DefaultPrefix,
		SkipToken:      DefaultSkipToken,
		Workers:        DefaultWorkers,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
}

// Load creates a config, applies .env overrides, then flag overrides.
// Flags win over the environment; the environment wins over defaults.
func Load(flags Flags) *Config {
	cfg := New()

	// .env file might not exist, that's okay - use environment variables
	envPath := filepath.Join(cfg.ProjectPath, ".env")
	_ = godotenv.Load(envPath)

	if v := os.Getenv("GTP_PREFIX"); v != "" {
		cfg.Prefix = v
	}
	if v := os.Getenv("GTP_SKIP_TOKEN"); v != "" {
		cfg.SkipToken = v
	}
	if v := os.Getenv("GTP_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	cfg.Flags = flags
	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}
	if flags.Prefix != "" {
		cfg.Prefix = flags.Prefix
	}
	if flags.SkipToken != "" {
		cfg.SkipToken = flags.SkipToken
	}

	return cfg
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and fails always read/write the same
// file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// HistoryDSN returns the MySQL DSN for the optional run-history sink.
// GTP_DB_DSN wins; otherwise the DSN is assembled from DB_* parts when a
// database name is configured. Empty means history is disabled.
func (c *Config) HistoryDSN() string {
	if dsn := os.Getenv("GTP_DB_DSN"); dsn != "" {
		return dsn
	}

	dbName := os.Getenv("DB_DATABASE")
	if dbName == "" {
		return ""
	}
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "127.0.0.1"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "3306"
	}
	dbUser := os.Getenv("DB_USERNAME")
	if dbUser == "" {
		dbUser = "root"
	}
	dbPassword := os.Getenv("DB_PASSWORD")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbUser, dbPassword, dbHost, dbPort, dbName)
}
