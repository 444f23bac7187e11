package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config path given on the command line.
const EnvPath = "SOLO_CONFIG"

// Preference store drivers.
const (
	DriverNone     = "none"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration of the single-player server.
type Config struct {
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text or json

	World       World       `yaml:"world"`
	Journal     Journal     `yaml:"journal"`
	Preferences Preferences `yaml:"preferences"`
}

// World holds simulation timing and content settings.
type World struct {
	TickRate          time.Duration `yaml:"tick_rate"`
	RegenInterval     time.Duration `yaml:"regen_interval"`
	MobAggroRange     int32         `yaml:"mob_aggro_range"`
	MobLeashRange     int32         `yaml:"mob_leash_range"`
	MobAttackDelay    time.Duration `yaml:"mob_attack_delay"`
	ChestRespawnDelay time.Duration `yaml:"chest_respawn_delay"`
	Spawn             Point         `yaml:"spawn"`

	// MapFile is a JSON collision grid. Empty means no walls.
	MapFile string `yaml:"map_file"`
	// TemplatesFile is a YAML world population. Empty means the starter area.
	TemplatesFile string `yaml:"templates_file"`
}

// Point is a tile position.
type Point struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
}

// Journal controls the compressed event log.
type Journal struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Preferences selects where the single-player flag is stored.
type Preferences struct {
	Driver     string         `yaml:"driver"` // none, sqlite, postgres
	SQLitePath string         `yaml:"sqlite_path"`
	Database   DatabaseConfig `yaml:"database"`
	// DSN replaces Database when set.
	DSN string `yaml:"dsn"`

	// Override is a query-string style flag, e.g. "singleplayer=1".
	Override string `yaml:"override"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// PostgresDSN returns DSN if set, otherwise the one built from Database.
func (p Preferences) PostgresDSN() string {
	if p.DSN != "" {
		return p.DSN
	}
	return p.Database.DSN()
}

// DefaultWorld returns the stock world settings.
func DefaultWorld() World {
	return World{
		TickRate:          200 * time.Millisecond,
		RegenInterval:     2 * time.Second,
		MobAggroRange:     6,
		MobLeashRange:     12,
		MobAttackDelay:    900 * time.Millisecond,
		ChestRespawnDelay: 45 * time.Second,
		Spawn:             Point{X: 65, Y: 66},
	}
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		World:     DefaultWorld(),
		Journal: Journal{
			Enabled: false,
			Dir:     "journal",
		},
		Preferences: Preferences{
			Driver:     DriverSQLite,
			SQLitePath: "solo.db",
			Database: DatabaseConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				User:     "bqsolo",
				Password: "bqsolo",
				DBName:   "bqsolo",
				SSLMode:  "disable",
			},
		},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath returns the SOLO_CONFIG value if set, otherwise path.
func ResolvePath(path string) string {
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return path
}

// Validate checks values that would stall or break the simulation.
func (c Config) Validate() error {
	if c.World.TickRate <= 0 {
		return fmt.Errorf("world.tick_rate must be positive, got %v", c.World.TickRate)
	}
	if c.World.RegenInterval <= 0 {
		return fmt.Errorf("world.regen_interval must be positive, got %v", c.World.RegenInterval)
	}
	switch c.Preferences.Driver {
	case DriverNone, DriverSQLite, DriverPostgres, "":
	default:
		return fmt.Errorf("unknown preferences.driver %q", c.Preferences.Driver)
	}
	return nil
}

// SlogLevel converts LogLevel to a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
