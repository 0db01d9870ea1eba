package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"backpack-manager/core/catalog"
	"backpack-manager/core/database"
	"backpack-manager/core/logger"
	"backpack-manager/core/server"
	"backpack-manager/core/steamapi"
	"backpack-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidBackend is returned when the catalog backend is not one of file, storage or database.
var ErrInvalidBackend = errors.New("invalid catalog backend")

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage used by the storage catalog backend.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database catalog backend.
	Database database.Config `mapstructure:"database"`
	// Steam holds the Web API credentials and endpoint.
	Steam steamapi.Config `mapstructure:"steam"`
	// Catalog selects where the item schema is cached.
	Catalog catalog.Config `mapstructure:"catalog"`
}

// LoadConfig loads configuration from path/config.yaml, path/.env and the environment.
// Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is fine; the environment alone may configure everything.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// STEAM_API_KEY -> steam.api_key
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if !config.Catalog.IsValidBackend() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBackend, config.Catalog.Backend)
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Empty defaults still register the key so AutomaticEnv can see it.
		v.SetDefault(key, defaultValue)
	}
}
