package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
}

type ServerConfig struct {
	MetricsAddress string `mapstructure:"metrics_address"`
}

type StorageConfig struct {
	// Driver selects the persistence backend: "file", "gorm" or "postgres".
	Driver   string         `mapstructure:"driver"`
	File     FileConfig     `mapstructure:"file"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type FileConfig struct {
	Path string `mapstructure:"path"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// Default returns the configuration used when no config file is present:
// flat-file storage next to the binary, metrics disabled.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: "file",
			File:   FileConfig{Path: "leaderboard.txt"},
		},
	}
}

func LoadConfig(path string) (config *Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.file.path", "leaderboard.txt")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return Default(), nil
		}
		return
	}

	err = viper.Unmarshal(&config)
	return
}
