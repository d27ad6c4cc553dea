package manager

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	once sync.Once
	v    *viper.Viper
)

type ConfigManager struct{}

var Config = &ConfigManager{}

// Load returns the blight configuration, reading
// $XDG_CONFIG_HOME/blight/blight.yaml on first use. The file is optional;
// without it every key keeps its default.
func (c *ConfigManager) Load() *viper.Viper {
	once.Do(func() {
		v = viper.New()

		v.SetDefault("device", "")
		v.SetDefault("categories", []string{"backlight", "leds"})
		v.SetDefault("watch.interval-ms", 200)

		configDir, err := os.UserConfigDir()
		if err != nil {
			return
		}

		v.SetConfigFile(filepath.Join(configDir, "blight", "blight.yaml"))
		v.SetConfigType("yaml")
		v.ReadInConfig()
	})

	return v
}

func (c *ConfigManager) Watch(onChange func(fsnotify.Event)) {
	v.WatchConfig()
	v.OnConfigChange(onChange)
}
