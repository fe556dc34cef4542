package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ConnectionMongo  = "mongodb"
	ConnectionMemory = "memory"
)

type Config struct {
	Port                  string
	Connection            string
	MongoURI              string
	DBName                string
	MinisteriosCollection string
	MongoTimeout          time.Duration
	ReadTimeout           time.Duration
	WriteTimeout          time.Duration
	LogLevel              string
}

// LoadConfig reads an optional .env file and then the process environment.
// Values already present in the environment win over the .env file. A missing
// file is skipped; an unreadable or malformed one is an error.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_CONNECTION", ConnectionMongo)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "iglesia")
	v.SetDefault("COLLECTION_MINISTERIOS", "ministerios")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Port:                  v.GetString("PORT"),
		Connection:            strings.ToLower(strings.TrimSpace(v.GetString("DB_CONNECTION"))),
		MongoURI:              v.GetString("MONGODB_URI"),
		DBName:                v.GetString("MONGODB_DATABASE"),
		MinisteriosCollection: v.GetString("COLLECTION_MINISTERIOS"),
		MongoTimeout:          getDuration(v, "MONGODB_TIMEOUT", 10*time.Second),
		ReadTimeout:           getDuration(v, "SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:          getDuration(v, "SERVER_WRITE_TIMEOUT", 10*time.Second),
		LogLevel:              strings.ToLower(v.GetString("LOG_LEVEL")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Connection {
	case ConnectionMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required for connection %q", ConnectionMongo)
		}
		if c.DBName == "" {
			return fmt.Errorf("MONGODB_DATABASE is required for connection %q", ConnectionMongo)
		}
	case ConnectionMemory:
	default:
		return fmt.Errorf("unknown DB_CONNECTION %q", c.Connection)
	}
	if c.MinisteriosCollection == "" {
		return fmt.Errorf("COLLECTION_MINISTERIOS must not be empty")
	}
	return nil
}

// getDuration accepts either a bare number of seconds or a Go duration string ("1m30s").
func getDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	valStr := strings.TrimSpace(v.GetString(key))
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
