package config

import (
	"landmark-flight/internal/game/simulation"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultsMatchSimulation(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 760, cfg.Window.Height)
	assert.Equal(t, "Landmark Flight", cfg.Window.Title)
	assert.Equal(t, int64(0), cfg.World.Seed)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, simulation.DefaultParams(), cfg.Params())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 120*time.Millisecond, cfg.Params().HUDInterval)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"window": { "width": 800, "height": 600 },
		"flight": { "maxSpeed": 140, "volume": { "min": [-100, 0, -100], "max": [100, 80, 100] } },
		"camera": { "trail": 50 },
		"hud": { "intervalMs": 250 },
		"world": { "seed": 42 },
		"telemetry": { "enabled": true }
	}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, int64(42), cfg.World.Seed)
	assert.True(t, cfg.Telemetry.Enabled)

	p := cfg.Params()
	assert.Equal(t, 140.0, p.MaxSpeed)
	assert.Equal(t, 28.0, p.MinSpeed)
	assert.Equal(t, mgl64.Vec3{-100, 0, -100}, p.Volume.Min)
	assert.Equal(t, mgl64.Vec3{100, 80, 100}, p.Volume.Max)
	assert.Equal(t, 50.0, p.Camera.Trail)
	assert.Equal(t, 11.0, p.Camera.Height)
	assert.Equal(t, 250*time.Millisecond, p.HUDInterval)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("FLIGHT_LOGLEVEL", "warn")

	cfg, err := Load(writeConfig(t, `{"logLevel": "debug"}`))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	_, err := Load(writeConfig(t, `{"logLevel": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"inverted speeds", `{"flight": {"minSpeed": 90, "maxSpeed": 40}}`},
		{"zero frame cap", `{"flight": {"maxFrameSeconds": 0}}`},
		{"short volume", `{"flight": {"volume": {"min": [0, 0]}}}`},
		{"inverted volume", `{"flight": {"volume": {"min": [0, 200, 0], "max": [10, 100, 10]}}}`},
		{"negative hud interval", `{"hud": {"intervalMs": -5}}`},
		{"negative acceleration", `{"flight": {"acceleration": -30}}`},
		{"roll damping above one", `{"flight": {"rollDamping": 1.05}}`},
		{"roll damping of one", `{"flight": {"rollDamping": 1}}`},
		{"zero roll damping", `{"flight": {"rollDamping": 0}}`},
		{"pitch damping above one", `{"flight": {"pitchDamping": 1.02}}`},
		{"negative pitch damping", `{"flight": {"pitchDamping": -0.5}}`},
		{"smoothing above one", `{"camera": {"smoothing": 3}}`},
		{"zero smoothing", `{"camera": {"smoothing": 0}}`},
		{"empty window", `{"window": {"width": 0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(viper.Reset)
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_AcceptsBoundaryTuning(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(writeConfig(t, `{
		"flight": {"acceleration": 0, "rollDamping": 0.9, "pitchDamping": 0.999},
		"camera": {"smoothing": 1}
	}`))
	require.NoError(t, err)

	p := cfg.Params()
	assert.Equal(t, 0.0, p.Acceleration)
	assert.Equal(t, 0.9, p.RollDamping)
	assert.Equal(t, 1.0, p.Camera.Smoothing)
}
