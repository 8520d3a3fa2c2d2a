package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from a .daykeep config file or the
// DAYKEEP_PATH environment variable, defaulting to ~/.daykeep.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.daykeep.db")
	viper.SetConfigName(".daykeep") // .yaml is implicit
	viper.SetEnvPrefix("DAYKEEP")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYKEEP_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand store path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
