package config

import "github.com/spf13/pflag"

// ConfigFlag names the flag that points Load at an explicit config file.
const ConfigFlag = "config"

// RegisterFlags adds the configuration flags to fs. Load picks up the ones
// the user changed; unchanged flags never override files or environment.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFlag, "", "config file (default ~/.ticklist/config.yaml, then ./.ticklist.yaml)")
	fs.String("backend", "", "storage backend: sqlite or file")
	fs.String("data", "", "database file (sqlite) or slot directory (file)")
	fs.String("slot", "", "storage slot the list is kept under")
	fs.String("ids", "", "id strategy for new items: uuid or sequence")
	fs.String("log-level", "", "log level: debug, info, warn or error")
}

// LoadFromFlags is Load with the config file taken from fs.
func LoadFromFlags(fs *pflag.FlagSet) (*Config, error) {
	configFile, _ := fs.GetString(ConfigFlag)
	return Load(LoadOptions{ConfigFile: configFile, Flags: fs})
}
