package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage string     `mapstructure:"stage"`
	Game  GameConfig `mapstructure:"game"`
	Log   LogConfig  `mapstructure:"log"`
}

type GameConfig struct {
	BoardSize     int    `mapstructure:"board_size"`
	FleetCapacity int    `mapstructure:"fleet_capacity"`
	ShotsPerSalvo int    `mapstructure:"shots_per_salvo"`
	LayoutFile    string `mapstructure:"layout_file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads defaults, then the optional file at configPath, then
// BATTLESHIP_* environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("stage", StageDev)
	v.SetDefault("game.board_size", 10)
	v.SetDefault("game.fleet_capacity", 10)
	v.SetDefault("game.shots_per_salvo", 3)
	v.SetDefault("game.layout_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("BATTLESHIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Stage != StageProd && c.Stage != StageDev {
		return fmt.Errorf("invalid type of development stage: %s", c.Stage)
	}
	if c.Game.BoardSize <= 0 {
		return fmt.Errorf("game.board_size must be positive, got: %d", c.Game.BoardSize)
	}
	if c.Game.FleetCapacity <= 0 {
		return fmt.Errorf("game.fleet_capacity must be positive, got: %d", c.Game.FleetCapacity)
	}
	if c.Game.ShotsPerSalvo <= 0 {
		return fmt.Errorf("game.shots_per_salvo must be positive, got: %d", c.Game.ShotsPerSalvo)
	}
	return nil
}

// SetupLogger writes diagnostics to stderr so they never mix with the
// boards printed on stdout.
func SetupLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
