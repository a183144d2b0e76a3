package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()

	if cfg.SpeedMS != 80 {
		t.Errorf("SpeedMS = %d, want 80", cfg.SpeedMS)
	}
	if !cfg.History {
		t.Error("History = false, want true")
	}
	if cfg.Density != 0.25 {
		t.Errorf("Density = %v, want 0.25", cfg.Density)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
	if !strings.HasSuffix(cfg.HistoryPath, "history.db") && !strings.HasSuffix(cfg.HistoryPath, ".starpath-history.db") {
		t.Errorf("HistoryPath = %q, want a history.db location", cfg.HistoryPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("speed_ms", 25)
	viper.Set("history", false)
	viper.Set("density", 0.4)
	viper.Set("history_path", "/tmp/runs.db")

	cfg := Load()

	if cfg.SpeedMS != 25 {
		t.Errorf("SpeedMS = %d, want 25", cfg.SpeedMS)
	}
	if cfg.History {
		t.Error("History = true, want false")
	}
	if cfg.Density != 0.4 {
		t.Errorf("Density = %v, want 0.4", cfg.Density)
	}
	if cfg.HistoryPath != "/tmp/runs.db" {
		t.Errorf("HistoryPath = %q, want /tmp/runs.db", cfg.HistoryPath)
	}
}
