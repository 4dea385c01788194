package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	Auth       Auth
}

type HTTPServer struct {
	Address        string
	Port           int
	RequestTimeout time.Duration
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	MigrationsPath string
}

type Auth struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("http_server.address", "0.0.0.0")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.request_timeout", "10s")

	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "admin")
	viper.SetDefault("database.host", "review-db")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.db_name", "prreview")
	viper.SetDefault("database.migrations_path", "migrations")

	viper.SetDefault("auth.jwt_secret", "fallback-secret-key")
	viper.SetDefault("auth.token_ttl", "168h")
	viper.SetDefault("auth.bcrypt_cost", 10)

	viper.SetEnvPrefix("PRREVIEW")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}

	config := &Config{
		Env: viper.GetString("env"),
		HTTPServer: HTTPServer{
			Address:        viper.GetString("http_server.address"),
			Port:           viper.GetInt("http_server.port"),
			RequestTimeout: viper.GetDuration("http_server.request_timeout"),
		},
		Database: Database{
			Username:       viper.GetString("database.username"),
			Password:       viper.GetString("database.password"),
			Host:           viper.GetString("database.host"),
			Port:           viper.GetString("database.port"),
			DbName:         viper.GetString("database.db_name"),
			MigrationsPath: viper.GetString("database.migrations_path"),
		},
		Auth: Auth{
			JWTSecret:  viper.GetString("auth.jwt_secret"),
			TokenTTL:   viper.GetDuration("auth.token_ttl"),
			BcryptCost: viper.GetInt("auth.bcrypt_cost"),
		},
	}

	return config
}
