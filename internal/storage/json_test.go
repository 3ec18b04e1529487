package storage

import (
	"path/filepath"
	"testing"

	"gtp/internal/config"
	"gtp/internal/domain"
)

func tempConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return cfg
}

func exampleOutput() *domain.RunOutput {
	return &domain.RunOutput{
		Meta: domain.RunMeta{
			TotalTests:  3,
			PassedTests: 2,
			FailedTests: 1,
			Duration:    "12ms",
			Workers:     1,
			Timestamp:   "2026-01-02T15:04:05Z",
		},
		Results: []domain.RecordedOutcome{
			{Name: "test_addition", Status: "passed"},
			{Name: "test_multiplication", Status: "passed"},
			{Name: "test_remainder", Status: "failed", Cause: "assertion", Detail: "15 % 4 == 0"},
		},
		Unknown: []string{"test_div"},
	}
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := tempConfig(t)
	st := NewJSONStorage(cfg)

	if err := st.Save(exampleOutput()); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Meta.TotalTests != 3 || loaded.Meta.FailedTests != 1 {
		t.Errorf("unexpected meta after roundtrip: %+v", loaded.Meta)
	}
	if len(loaded.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(loaded.Results))
	}
	if loaded.Results[2].Detail != "15 % 4 == 0" {
		t.Errorf("unexpected failure detail: %q", loaded.Results[2].Detail)
	}
	if len(loaded.Unknown) != 1 || loaded.Unknown[0] != "test_div" {
		t.Errorf("unexpected unknown names: %v", loaded.Unknown)
	}

	// Output lands under <project>/storage/run-report.json
	wantPath := filepath.Join(cfg.ProjectPath, config.DefaultOutputJSONDir, config.DefaultOutputJSONFile)
	if got := cfg.GetOutputPath(); got != wantPath {
		t.Errorf("unexpected output path: %s", got)
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	st := NewJSONStorage(tempConfig(t))
	if _, err := st.Load(); err == nil {
		t.Error("expected error loading before any run was saved")
	}
}

func TestNewHistorySink(t *testing.T) {
	if sink := NewHistorySink(""); sink != nil {
		t.Error("empty DSN must disable the history sink")
	}
	if sink := NewHistorySink("root:@tcp(127.0.0.1:3306)/gtp"); sink == nil {
		t.Error("expected a sink for a non-empty DSN")
	}
}
