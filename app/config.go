package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables that override config values,
// e.g. PAWDEX_CHECK_INVARIANTS.
const EnvPrefix = "PAWDEX"

// DefaultNodeHome is the default home directory for the application.
var DefaultNodeHome string

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultNodeHome = filepath.Join(userHomeDir, ".pawdex")
}

// Config holds the host settings read from config/app.toml.
type Config struct {
	Home            string
	ChainID         string
	DBBackend       string
	CheckInvariants bool
	LogLevel        string
}

// DefaultConfig returns the settings used when app.toml is absent.
func DefaultConfig() Config {
	return Config{
		Home:            DefaultNodeHome,
		ChainID:         DefaultChainID,
		DBBackend:       string(dbm.GoLevelDBBackend),
		CheckInvariants: true,
		LogLevel:        "info",
	}
}

// ReadConfig loads <home>/config/app.toml, if present, and applies
// PAWDEX_* environment overrides on top of the defaults.
func ReadConfig(home string) (Config, error) {
	cfg := DefaultConfig()
	cfg.Home = home

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(filepath.Join(home, "config", "app.toml"))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("chain-id", cfg.ChainID)
	v.SetDefault("db-backend", cfg.DBBackend)
	v.SetDefault("check-invariants", cfg.CheckInvariants)
	v.SetDefault("log-level", cfg.LogLevel)

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("failed to read app config: %w", err)
	}

	cfg.ChainID = cast.ToString(v.Get("chain-id"))
	cfg.DBBackend = cast.ToString(v.Get("db-backend"))
	cfg.LogLevel = cast.ToString(v.Get("log-level"))
	checkInvariants, err := cast.ToBoolE(v.Get("check-invariants"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid check-invariants: %w", err)
	}
	cfg.CheckInvariants = checkInvariants

	return cfg, cfg.Validate()
}

// Validate checks that the config can open a database.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("home directory must be set")
	}
	if c.ChainID == "" {
		return errors.New("chain-id must be set")
	}
	switch dbm.BackendType(c.DBBackend) {
	case dbm.GoLevelDBBackend, dbm.MemDBBackend:
	default:
		return fmt.Errorf("unsupported db-backend %q", c.DBBackend)
	}
	return nil
}

// WriteDefaultConfig writes an app.toml with the given settings if none
// exists yet.
func WriteDefaultConfig(cfg Config) error {
	dir := filepath.Join(cfg.Home, "config")
	path := filepath.Join(dir, "app.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("chain-id", cfg.ChainID)
	v.Set("db-backend", cfg.DBBackend)
	v.Set("check-invariants", cfg.CheckInvariants)
	v.Set("log-level", cfg.LogLevel)
	return v.WriteConfigAs(path)
}

// OpenDB opens the application database under <home>/data.
func OpenDB(cfg Config) (dbm.DB, error) {
	return dbm.NewDB("application", dbm.BackendType(cfg.DBBackend), filepath.Join(cfg.Home, "data"))
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
