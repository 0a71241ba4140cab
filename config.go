package main

import (
	"fyne.io/fyne/v2"

	"github.com/venuedeck/venuedeck/pkg/grid"
)

type Config struct {
	AutoStart       bool   `json:"auto_start"`
	APIBaseURL      string `json:"api_base_url"`
	APIToken        string `json:"api_token"`
	PaletteFile     string `json:"palette_file"`
	SnapMinutes     int    `json:"snap_minutes"`
	MinEventMinutes int    `json:"min_event_minutes"`
	DayBoundaryHour int    `json:"day_boundary_hour"`
	DefaultDays     int    `json:"default_days"` // itinerary length for a new draft
}

func loadConfig(app fyne.App) *Config {
	prefs := app.Preferences()

	return &Config{
		AutoStart:       prefs.BoolWithFallback("auto_start", false),
		APIBaseURL:      prefs.StringWithFallback("api_base_url", "https://schedules.venuedeck.app/api"),
		APIToken:        prefs.String("api_token"),
		PaletteFile:     prefs.String("palette_file"),
		SnapMinutes:     prefs.IntWithFallback("snap_minutes", grid.DefaultSnapMinutes),
		MinEventMinutes: prefs.IntWithFallback("min_event_minutes", grid.DefaultMinEventMinutes),
		DayBoundaryHour: prefs.IntWithFallback("day_boundary_hour", grid.DefaultDayBoundaryHour),
		DefaultDays:     prefs.IntWithFallback("default_days", 7),
	}
}

func saveConfig(app fyne.App, config *Config) {
	prefs := app.Preferences()

	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetString("api_base_url", config.APIBaseURL)
	prefs.SetString("api_token", config.APIToken)
	prefs.SetString("palette_file", config.PaletteFile)
	prefs.SetInt("snap_minutes", config.SnapMinutes)
	prefs.SetInt("min_event_minutes", config.MinEventMinutes)
	prefs.SetInt("day_boundary_hour", config.DayBoundaryHour)
	prefs.SetInt("default_days", config.DefaultDays)
}

// GridConfig folds the adjustable policy values into the grid defaults.
func (c *Config) GridConfig() grid.Config {
	cfg := grid.DefaultConfig()
	if c.SnapMinutes > 0 {
		cfg.SnapMinutes = c.SnapMinutes
	}
	if c.MinEventMinutes > 0 {
		cfg.MinEventMinutes = c.MinEventMinutes
	}
	// 0 is a legal boundary (no late-night attribution); loadConfig
	// already substitutes the default when the preference is absent.
	if c.DayBoundaryHour >= 0 {
		cfg.DayBoundaryHour = c.DayBoundaryHour
	}
	return cfg
}
