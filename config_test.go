package main

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/venuedeck/venuedeck/pkg/grid"
)

func TestLoadConfigDefaults(t *testing.T) {
	app := test.NewApp()

	cfg := loadConfig(app).GridConfig()
	if cfg.DayBoundaryHour != grid.DefaultDayBoundaryHour {
		t.Errorf("boundary = %d, want default %d", cfg.DayBoundaryHour, grid.DefaultDayBoundaryHour)
	}
	if cfg.SnapMinutes != grid.DefaultSnapMinutes {
		t.Errorf("snap = %d, want default %d", cfg.SnapMinutes, grid.DefaultSnapMinutes)
	}
	if cfg.MinEventMinutes != grid.DefaultMinEventMinutes {
		t.Errorf("min duration = %d, want default %d", cfg.MinEventMinutes, grid.DefaultMinEventMinutes)
	}
}

func TestGridConfigHonorsZeroBoundaryHour(t *testing.T) {
	app := test.NewApp()

	config := loadConfig(app)
	config.DayBoundaryHour = 0
	saveConfig(app, config)

	reloaded := loadConfig(app)
	if reloaded.DayBoundaryHour != 0 {
		t.Fatalf("boundary after reload = %d, want 0", reloaded.DayBoundaryHour)
	}
	if got := reloaded.GridConfig().DayBoundaryHour; got != 0 {
		t.Errorf("grid boundary = %d, want the stored 0, not the default", got)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	app := test.NewApp()

	config := loadConfig(app)
	config.APIBaseURL = "https://example.test/api"
	config.SnapMinutes = 10
	config.DefaultDays = 14
	saveConfig(app, config)

	reloaded := loadConfig(app)
	if reloaded.APIBaseURL != "https://example.test/api" {
		t.Errorf("api url = %q", reloaded.APIBaseURL)
	}
	if reloaded.SnapMinutes != 10 || reloaded.DefaultDays != 14 {
		t.Errorf("snap %d, days %d, want 10, 14", reloaded.SnapMinutes, reloaded.DefaultDays)
	}
}
