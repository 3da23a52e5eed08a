package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr string
	GinMode    string

	// Database
	DBDriver   string // "postgres" or "sqlite3"
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	DBPath     string // sqlite3 only

	JWTSecret string

	CORSOrigins []string
}

var cfg *Config

// Load reads .env (if present), then resolves configuration through viper:
// defaults, environment variables, optional config.yaml.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found")
	}

	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("GIN_MODE", "debug")

	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_USER", "blog")
	viper.SetDefault("DB_NAME", "blog")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_PATH", "blog.db")

	viper.SetDefault("CORS_ORIGINS", []string{"http://localhost:3000"})

	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // ignore error if no file

	cfg = &Config{
		ServerAddr:  viper.GetString("SERVER_ADDR"),
		GinMode:     viper.GetString("GIN_MODE"),
		DBDriver:    viper.GetString("DB_DRIVER"),
		DBHost:      viper.GetString("DB_HOST"),
		DBUser:      viper.GetString("DB_USER"),
		DBPassword:  viper.GetString("DB_PASSWORD"),
		DBName:      viper.GetString("DB_NAME"),
		DBPort:      viper.GetString("DB_PORT"),
		DBSSLMode:   viper.GetString("DB_SSLMODE"),
		DBPath:      viper.GetString("DB_PATH"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
		CORSOrigins: viper.GetStringSlice("CORS_ORIGINS"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	return cfg
}

// Get returns the loaded config instance.
func Get() *Config {
	return cfg
}
