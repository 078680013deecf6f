package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// API holds API server configuration.
type API struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// SetDefaults registers default values for the shared sections. Keys with a
// default are also resolvable from the environment when no file is present.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "gaus-thesis")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
}

// Load loads configuration from a file into the given config struct.
// Values from a local .env file and the environment override the file.
func Load(v *viper.Viper, path string, config interface{}) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Failed to read config file, reading from environment variables")
	}

	return v.Unmarshal(config)
}
