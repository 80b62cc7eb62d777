package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TICKLIST_STORAGE_BACKEND.
const EnvPrefix = "TICKLIST"

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"backend":   "storage.backend",
	"data":      "storage.path",
	"slot":      "storage.slot",
	"ids":       "ids.strategy",
	"log-level": "log.level",
}

// LoadOptions tells Load where to look. Zero values fall back to the
// process environment (home and working directory).
type LoadOptions struct {
	// ConfigFile, when set, is the only file read; it must exist.
	ConfigFile string
	Flags      *pflag.FlagSet
	Home       string
	Cwd        string
}

// Load merges configuration in increasing priority: defaults, the global
// file (~/.ticklist/config.yaml), the project file (./.ticklist.yaml),
// TICKLIST_* environment variables, then changed flags.
func Load(opts LoadOptions) (*Config, error) {
	home := opts.Home
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		home = h
	}
	cwd := opts.Cwd
	if cwd == "" {
		if wd, err := os.Getwd(); err == nil {
			cwd = wd
		}
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", opts.ConfigFile, err)
		}
	} else {
		for _, path := range []string{GlobalConfigPath(home), ProjectConfigPath(cwd)} {
			if err := mergeFile(v, path); err != nil {
				return nil, err
			}
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(home); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.slot", d.Storage.Slot)
	v.SetDefault("ids.strategy", d.IDs.Strategy)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.use_cases", d.Log.UseCases)
}

// mergeFile merges a YAML file into v. A missing file is not an error.
func mergeFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()
	if err := v.MergeConfig(f); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath(home string) string {
	return filepath.Join(HomeDir(home), "config.yaml")
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath(cwd string) string {
	if cwd == "" {
		return ""
	}
	return filepath.Join(cwd, ".ticklist.yaml")
}
