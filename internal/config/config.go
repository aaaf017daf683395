package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "duelist"
	AppDirName            = "duelist"
	EnvConfigPath         = "DUELIST_CONFIG"

	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

var ErrUnknownBackend = errors.New("unknown backend")

type Keymap struct {
	Quit      string `toml:"quit"`
	Add       string `toml:"add"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Edit      string `toml:"edit"`
	Delete    string `toml:"delete"`
	DeleteAll string `toml:"delete_all"`
	Filter    string `toml:"filter"`
	Confirm   string `toml:"confirm"`
	Cancel    string `toml:"cancel"`
	NextField string `toml:"next_field"`
	PrevField string `toml:"prev_field"`
}

type Config struct {
	Backend       string `toml:"backend"`
	DBName        string `toml:"db_name"`
	FilterExpired bool   `toml:"filter_expired"`
	ConfirmClear  bool   `toml:"confirm_clear"`
	LogFile       string `toml:"log_file"`
	LogLevel      string `toml:"log_level"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath returns $DUELIST_CONFIG when set, else the file under the
// user config directory, else config.toml in the working directory.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppDirName, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// the file does not exist.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownBackend, c.Backend)
	}
}

func (c *Config) fillDefaults() {
	def := Default()
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = def.Backend
	}
	if c.DBName == "" {
		c.DBName = def.DBName
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	k, d := &c.Keys, def.Keys
	setDefault(&k.Quit, d.Quit)
	setDefault(&k.Add, d.Add)
	setDefault(&k.Up, d.Up)
	setDefault(&k.Down, d.Down)
	setDefault(&k.Edit, d.Edit)
	setDefault(&k.Delete, d.Delete)
	setDefault(&k.DeleteAll, d.DeleteAll)
	setDefault(&k.Filter, d.Filter)
	setDefault(&k.Confirm, d.Confirm)
	setDefault(&k.Cancel, d.Cancel)
	setDefault(&k.NextField, d.NextField)
	setDefault(&k.PrevField, d.PrevField)
}

func setDefault(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func Default() Config {
	return Config{
		Backend:  BackendMemory,
		DBName:   DefaultDBName,
		LogLevel: "info",
		Keys: Keymap{
			Quit:      "q",
			Add:       "a",
			Up:        "k",
			Down:      "j",
			Edit:      "e",
			Delete:    "d",
			DeleteAll: "D",
			Filter:    "f",
			Confirm:   "enter",
			Cancel:    "esc",
			NextField: "tab",
			PrevField: "shift+tab",
		},
	}
}
