package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Values are read from
// a config file and can be overridden by environment variables.
type Config struct {
	Environment   string `mapstructure:"ENVIRONMENT"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	LookupBackend string `mapstructure:"LOOKUP_BACKEND"`
	LookupTable   string `mapstructure:"LOOKUP_TABLE"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	RedisAddress  string `mapstructure:"REDIS_ADDRESS"`
	CSVPath       string `mapstructure:"CSV_PATH"`
	SpecialCases  string `mapstructure:"SPECIAL_CASES"`
}

// LoadConfig reads configuration from app.env in the given path, with
// environment variables taking precedence.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("LOOKUP_BACKEND", "postgres")
	viper.SetDefault("LOOKUP_TABLE", "postcodes")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// SpecialCaseList splits the comma-separated SPECIAL_CASES value into
// individual postcodes. Blank entries are dropped.
func (c Config) SpecialCaseList() []string {
	var cases []string
	for _, entry := range strings.Split(c.SpecialCases, ",") {
		if trimmed := strings.TrimSpace(entry); trimmed != "" {
			cases = append(cases, trimmed)
		}
	}
	return cases
}
