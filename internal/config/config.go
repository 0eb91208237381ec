package config

import (
	"errors"
	"fmt"
	"landmark-flight/internal/game/simulation"
	"landmark-flight/pkg/types"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/viper"
)

const FileName = "flight.cfg.json"

type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

type VolumeConfig struct {
	Min []float64 `json:"min" mapstructure:"min"`
	Max []float64 `json:"max" mapstructure:"max"`
}

type FlightConfig struct {
	MinSpeed        float64      `json:"minSpeed" mapstructure:"minSpeed"`
	MaxSpeed        float64      `json:"maxSpeed" mapstructure:"maxSpeed"`
	Acceleration    float64      `json:"acceleration" mapstructure:"acceleration"`
	MaxFrameSeconds float64      `json:"maxFrameSeconds" mapstructure:"maxFrameSeconds"`
	RollDamping     float64      `json:"rollDamping" mapstructure:"rollDamping"`
	PitchDamping    float64      `json:"pitchDamping" mapstructure:"pitchDamping"`
	Volume          VolumeConfig `json:"volume" mapstructure:"volume"`
}

type CameraConfig struct {
	Height    float64 `json:"height" mapstructure:"height"`
	Trail     float64 `json:"trail" mapstructure:"trail"`
	LookAhead float64 `json:"lookAhead" mapstructure:"lookAhead"`
	Smoothing float64 `json:"smoothing" mapstructure:"smoothing"`
	Fov       float64 `json:"fov" mapstructure:"fov"`
	Near      float64 `json:"near" mapstructure:"near"`
	Far       float64 `json:"far" mapstructure:"far"`
}

type HUDConfig struct {
	IntervalMs int `json:"intervalMs" mapstructure:"intervalMs"`
}

type WorldConfig struct {
	Seed int64 `json:"seed" mapstructure:"seed"`
}

type TelemetryConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

type Config struct {
	LogLevel  string          `json:"logLevel" mapstructure:"logLevel"`
	Window    WindowConfig    `json:"window" mapstructure:"window"`
	Flight    FlightConfig    `json:"flight" mapstructure:"flight"`
	Camera    CameraConfig    `json:"camera" mapstructure:"camera"`
	HUD       HUDConfig       `json:"hud" mapstructure:"hud"`
	World     WorldConfig     `json:"world" mapstructure:"world"`
	Telemetry TelemetryConfig `json:"telemetry" mapstructure:"telemetry"`
}

func setDefaults() {
	def := simulation.DefaultParams()

	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 760)
	viper.SetDefault("window.title", "Landmark Flight")

	viper.SetDefault("flight.minSpeed", def.MinSpeed)
	viper.SetDefault("flight.maxSpeed", def.MaxSpeed)
	viper.SetDefault("flight.acceleration", def.Acceleration)
	viper.SetDefault("flight.maxFrameSeconds", def.MaxFrameSeconds)
	viper.SetDefault("flight.rollDamping", def.RollDamping)
	viper.SetDefault("flight.pitchDamping", def.PitchDamping)
	viper.SetDefault("flight.volume.min", vec(def.Volume.Min))
	viper.SetDefault("flight.volume.max", vec(def.Volume.Max))

	viper.SetDefault("camera.height", def.Camera.Height)
	viper.SetDefault("camera.trail", def.Camera.Trail)
	viper.SetDefault("camera.lookAhead", def.Camera.LookAhead)
	viper.SetDefault("camera.smoothing", def.Camera.Smoothing)
	viper.SetDefault("camera.fov", def.Camera.Fov)
	viper.SetDefault("camera.near", def.Camera.Near)
	viper.SetDefault("camera.far", def.Camera.Far)

	viper.SetDefault("hud.intervalMs", int(def.HUDInterval/time.Millisecond))
	viper.SetDefault("world.seed", 0)
	viper.SetDefault("telemetry.enabled", false)
}

// Load registers defaults, reads flight.cfg.json from configDir if present
// and applies FLIGHT_ environment overrides. A missing file is fine; a
// malformed one is an error.
func Load(configDir string) (*Config, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix("FLIGHT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	f := c.Flight
	switch {
	case f.MinSpeed <= 0 || f.MaxSpeed < f.MinSpeed:
		return fmt.Errorf("flight speeds: need 0 < minSpeed <= maxSpeed, got %v..%v", f.MinSpeed, f.MaxSpeed)
	case f.MaxFrameSeconds <= 0:
		return fmt.Errorf("flight.maxFrameSeconds must be positive, got %v", f.MaxFrameSeconds)
	case f.Acceleration < 0:
		return fmt.Errorf("flight.acceleration must not be negative, got %v", f.Acceleration)
	case !(f.RollDamping > 0 && f.RollDamping < 1):
		return fmt.Errorf("flight.rollDamping must be in (0, 1), got %v", f.RollDamping)
	case !(f.PitchDamping > 0 && f.PitchDamping < 1):
		return fmt.Errorf("flight.pitchDamping must be in (0, 1), got %v", f.PitchDamping)
	case !(c.Camera.Smoothing > 0 && c.Camera.Smoothing <= 1):
		return fmt.Errorf("camera.smoothing must be in (0, 1], got %v", c.Camera.Smoothing)
	case len(f.Volume.Min) != 3 || len(f.Volume.Max) != 3:
		return fmt.Errorf("flight.volume: min and max need 3 components")
	case c.HUD.IntervalMs < 0:
		return fmt.Errorf("hud.intervalMs must not be negative, got %d", c.HUD.IntervalMs)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	for i := range 3 {
		if f.Volume.Min[i] > f.Volume.Max[i] {
			return fmt.Errorf("flight.volume: min[%d]=%v above max[%d]=%v", i, f.Volume.Min[i], i, f.Volume.Max[i])
		}
	}
	return nil
}

// Params converts the loaded values into simulation tuning.
func (c *Config) Params() simulation.Params {
	f := c.Flight
	return simulation.Params{
		MinSpeed:        f.MinSpeed,
		MaxSpeed:        f.MaxSpeed,
		Acceleration:    f.Acceleration,
		MaxFrameSeconds: f.MaxFrameSeconds,
		RollDamping:     f.RollDamping,
		PitchDamping:    f.PitchDamping,
		Volume: types.Box{
			Min: mgl64.Vec3{f.Volume.Min[0], f.Volume.Min[1], f.Volume.Min[2]},
			Max: mgl64.Vec3{f.Volume.Max[0], f.Volume.Max[1], f.Volume.Max[2]},
		},
		Camera: simulation.CameraParams{
			Height:    c.Camera.Height,
			Trail:     c.Camera.Trail,
			LookAhead: c.Camera.LookAhead,
			Smoothing: c.Camera.Smoothing,
			Fov:       c.Camera.Fov,
			Near:      c.Camera.Near,
			Far:       c.Camera.Far,
		},
		HUDInterval: time.Duration(c.HUD.IntervalMs) * time.Millisecond,
	}
}

func vec(v mgl64.Vec3) []float64 {
	return []float64{v.X(), v.Y(), v.Z()}
}
