// Package config provides Viper-based configuration loading for the
// game server.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings. Only consulted
// when the storage backend is "postgres".
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// StorageConfig selects and parameterizes the save-file backend.
type StorageConfig struct {
	// Backend is "json" or "postgres".
	Backend string `mapstructure:"backend"`
	// Path is the save file location for the json backend.
	Path string `mapstructure:"path"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameConfig holds gameplay tuning knobs.
type GameConfig struct {
	// Hardcore deletes a character on defeat instead of applying the
	// gold penalty.
	Hardcore bool `mapstructure:"hardcore"`
	// BossEncounterRate is the chance an exploration becomes a boss
	// fight, in [0,1].
	BossEncounterRate float64 `mapstructure:"boss_encounter_rate"`
	// RunSuccessMob and RunSuccessBoss are the base flee chances.
	RunSuccessMob  float64 `mapstructure:"run_success_mob"`
	RunSuccessBoss float64 `mapstructure:"run_success_boss"`
	// RogueRunBonus is added to the flee chance for rogues.
	RogueRunBonus float64 `mapstructure:"rogue_run_bonus"`
	// ContentDir points at the YAML catalog directory. Empty uses the
	// built-in content set.
	ContentDir string `mapstructure:"content_dir"`
	// ScriptDir points at the Lua effect script directory. Empty
	// disables scripted effects.
	ScriptDir string `mapstructure:"script_dir"`
	// Seed fixes the random source for reproducible runs; 0 uses the
	// crypto-backed source.
	Seed int64 `mapstructure:"seed"`
}

// BroadcastConfig filters which game events reach chat broadcast.
type BroadcastConfig struct {
	// MinRarity is the lowest drop rarity announced channel-wide.
	MinRarity string `mapstructure:"min_rarity"`
	LevelUps  bool   `mapstructure:"level_ups"`
	Deaths    bool   `mapstructure:"deaths"`
	Bosses    bool   `mapstructure:"bosses"`
}

// Config is the top-level application configuration.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Game      GameConfig      `mapstructure:"game"`
	Broadcast BroadcastConfig `mapstructure:"broadcast"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateStorage(c.Storage); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Storage.Backend == "postgres" {
		if err := validateDatabase(c.Database); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateBroadcast(c.Broadcast); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateStorage(s StorageConfig) error {
	var errs []string
	switch s.Backend {
	case "json":
		if s.Path == "" {
			errs = append(errs, "storage.path must not be empty for the json backend")
		}
	case "postgres":
	default:
		errs = append(errs, fmt.Sprintf("storage.backend must be one of [json, postgres], got %q", s.Backend))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	chances := map[string]float64{
		"game.boss_encounter_rate": g.BossEncounterRate,
		"game.run_success_mob":     g.RunSuccessMob,
		"game.run_success_boss":    g.RunSuccessBoss,
		"game.rogue_run_bonus":     g.RogueRunBonus,
	}
	for name, v := range chances {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Sprintf("%s must be in [0,1], got %v", name, v))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateBroadcast(b BroadcastConfig) error {
	validRarities := map[string]bool{
		"common": true, "uncommon": true, "rare": true,
		"epic": true, "legendary": true, "mythic": true,
	}
	if !validRarities[b.MinRarity] {
		return fmt.Errorf("broadcast.min_rarity must be a known rarity, got %q", b.MinRarity)
	}
	return nil
}

// Load reads configuration from the given file path, applies
// environment variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration
// file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with EMBERVALE_ prefix
	v.SetEnvPrefix("EMBERVALE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper
// instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", "json")
	v.SetDefault("storage.path", "data/players.json")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", time.Hour)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("game.hardcore", false)
	v.SetDefault("game.boss_encounter_rate", 0.10)
	v.SetDefault("game.run_success_mob", 0.6)
	v.SetDefault("game.run_success_boss", 0.45)
	v.SetDefault("game.rogue_run_bonus", 0.15)

	v.SetDefault("broadcast.min_rarity", "rare")
	v.SetDefault("broadcast.level_ups", true)
	v.SetDefault("broadcast.deaths", true)
	v.SetDefault("broadcast.bosses", true)
}
