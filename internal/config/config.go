package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Alexander-D-Karpov/omnis/internal/platform"
)

const (
	BackendPreferences = "preferences"
	BackendSQLite      = "sqlite"
)

type Config struct {
	Debug bool `mapstructure:"debug"`

	Storage struct {
		Backend      string `mapstructure:"backend"`
		DatabasePath string `mapstructure:"database_path"`
		EnableWAL    bool   `mapstructure:"enable_wal"`
	} `mapstructure:"storage"`

	UI struct {
		Title        string `mapstructure:"title"`
		Theme        string `mapstructure:"theme"`
		AssetsDir    string `mapstructure:"assets_dir"`
		WindowWidth  int    `mapstructure:"window_width"`
		WindowHeight int    `mapstructure:"window_height"`
	} `mapstructure:"ui"`

	Search struct {
		Enabled    bool `mapstructure:"enabled"`
		MaxResults int  `mapstructure:"max_results"`
	} `mapstructure:"search"`

	Log struct {
		Level string `mapstructure:"level"`
		JSON  bool   `mapstructure:"json"`
	} `mapstructure:"log"`

	v *viper.Viper
}

func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		configDir, err := platform.GetConfigDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("OMNIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultMobileConfig is used on phones, where no config file is read and
// the log list lives in the Fyne preference store.
func DefaultMobileConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	cfg.Storage.Backend = BackendPreferences
	cfg.UI.WindowWidth = 400
	cfg.UI.WindowHeight = 800

	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{v: v}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)

	dataDir, _ := platform.GetDataDir()

	v.SetDefault("storage.backend", defaultBackend())
	v.SetDefault("storage.database_path", filepath.Join(dataDir, "omnis.db"))
	v.SetDefault("storage.enable_wal", true)

	v.SetDefault("ui.title", "My Omnis")
	v.SetDefault("ui.theme", "system")
	v.SetDefault("ui.assets_dir", ".")
	v.SetDefault("ui.window_width", 420)
	v.SetDefault("ui.window_height", 760)

	v.SetDefault("search.enabled", true)
	v.SetDefault("search.max_results", 200)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
}

func defaultBackend() string {
	if platform.IsMobile() {
		return BackendPreferences
	}
	return BackendSQLite
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendPreferences, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	switch c.UI.Theme {
	case "system", "light", "dark":
	default:
		return fmt.Errorf("unknown theme %q", c.UI.Theme)
	}

	if c.Storage.Backend == BackendSQLite && c.Storage.DatabasePath == "" {
		return fmt.Errorf("storage.database_path is required for the sqlite backend")
	}

	return nil
}

func ensureDirectories(cfg *Config) error {
	if cfg.Storage.Backend != BackendSQLite {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.DatabasePath), 0755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	return nil
}

func (c *Config) Save() error {
	configDir, err := platform.GetConfigDir()
	if err != nil {
		return err
	}

	return c.SaveTo(filepath.Join(configDir, "config.yaml"))
}

func (c *Config) SaveTo(path string) error {
	if c.v == nil {
		c.v = viper.New()
	}

	c.v.Set("debug", c.Debug)
	c.v.Set("storage.backend", c.Storage.Backend)
	c.v.Set("storage.database_path", c.Storage.DatabasePath)
	c.v.Set("storage.enable_wal", c.Storage.EnableWAL)
	c.v.Set("ui.title", c.UI.Title)
	c.v.Set("ui.theme", c.UI.Theme)
	c.v.Set("ui.assets_dir", c.UI.AssetsDir)
	c.v.Set("ui.window_width", c.UI.WindowWidth)
	c.v.Set("ui.window_height", c.UI.WindowHeight)
	c.v.Set("search.enabled", c.Search.Enabled)
	c.v.Set("search.max_results", c.Search.MaxResults)
	c.v.Set("log.level", c.Log.Level)
	c.v.Set("log.json", c.Log.JSON)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	return c.v.WriteConfigAs(path)
}
