package config

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Prefix != DefaultPrefix {
		t.Errorf("expected Prefix %s, got %s", DefaultPrefix, cfg.Prefix)
	}
	if cfg.SkipToken != DefaultSkipToken {
		t.Errorf("expected SkipToken %s, got %s", DefaultSkipToken, cfg.SkipToken)
	}
	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected Workers %d, got %d", DefaultWorkers, cfg.Workers)
	}
}

func TestLoad(t *testing.T) {
	t.Run("flags override defaults", func(t *testing.T) {
		cfg := Load(Flags{Workers: 4, Prefix: "check_"})
		if cfg.Workers != 4 {
			t.Errorf("expected 4 workers, got %d", cfg.Workers)
		}
		if cfg.Prefix != "check_" {
			t.Errorf("expected check_ prefix, got %s", cfg.Prefix)
		}
		// Untouched settings keep their defaults
		if cfg.SkipToken != DefaultSkipToken {
			t.Errorf("expected default skip token, got %s", cfg.SkipToken)
		}
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("GTP_PREFIX", "spec_")
		t.Setenv("GTP_WORKERS", "8")

		cfg := Load(Flags{})
		if cfg.Prefix != "spec_" {
			t.Errorf("expected spec_ prefix from env, got %s", cfg.Prefix)
		}
		if cfg.Workers != 8 {
			t.Errorf("expected 8 workers from env, got %d", cfg.Workers)
		}
	})

	t.Run("flags win over environment", func(t *testing.T) {
		t.Setenv("GTP_WORKERS", "8")

		cfg := Load(Flags{Workers: 2})
		if cfg.Workers != 2 {
			t.Errorf("expected flag value 2, got %d", cfg.Workers)
		}
	})

	t.Run("invalid worker env is ignored", func(t *testing.T) {
		t.Setenv("GTP_WORKERS", "lots")

		cfg := Load(Flags{})
		if cfg.Workers != DefaultWorkers {
			t.Errorf("expected default workers, got %d", cfg.Workers)
		}
	})
}

func TestConfig_HistoryDSN(t *testing.T) {
	t.Run("explicit DSN wins", func(t *testing.T) {
		t.Setenv("GTP_DB_DSN", "user:pw@tcp(db:3306)/history")
		t.Setenv("DB_DATABASE", "other")

		cfg := New()
		if dsn := cfg.HistoryDSN(); dsn != "user:pw@tcp(db:3306)/history" {
			t.Errorf("unexpected DSN: %s", dsn)
		}
	})

	t.Run("assembled from DB parts", func(t *testing.T) {
		t.Setenv("GTP_DB_DSN", "")
		t.Setenv("DB_DATABASE", "gtp_history")
		t.Setenv("DB_USERNAME", "runner")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_HOST", "10.0.0.5")
		t.Setenv("DB_PORT", "3307")

		dsn := New().HistoryDSN()
		if !strings.HasPrefix(dsn, "runner:secret@tcp(10.0.0.5:3307)/gtp_history") {
			t.Errorf("unexpected DSN: %s", dsn)
		}
	})

	t.Run("disabled without database name", func(t *testing.T) {
		t.Setenv("GTP_DB_DSN", "")
		t.Setenv("DB_DATABASE", "")

		if dsn := New().HistoryDSN(); dsn != "" {
			t.Errorf("expected empty DSN, got %s", dsn)
		}
	})
}
