package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env             string
	ServerAddress   string
	ShutdownTimeout time.Duration
	DatabasePath    string

	Content ContentConfig
	CORS    CORSConfig
}

// ContentConfig points at the question bank. Exactly one of Dir or
// Archive should be set; Archive wins when both are.
type ContentConfig struct {
	Dir           string
	Archive       string
	CDNBaseURL    string
	WarmupWorkers int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads config.yaml from the working directory (or ./config),
// overlaid with environment variables (RUANKAO_SERVER_ADDRESS and so
// on). A .env file is loaded first if present.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("RUANKAO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("server_address", ":8080")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("database_path", "ruankao.db")
	v.SetDefault("content.dir", "content")
	v.SetDefault("content.archive", "")
	v.SetDefault("content.cdn_base_url", "")
	v.SetDefault("content.warmup_workers", 4)
	v.SetDefault("cors.allowed_origins", []string{"*"})

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("config: reading config file: %v", err)
		}
	}

	return &Config{
		Env:             v.GetString("env"),
		ServerAddress:   v.GetString("server_address"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		DatabasePath:    v.GetString("database_path"),
		Content: ContentConfig{
			Dir:           v.GetString("content.dir"),
			Archive:       v.GetString("content.archive"),
			CDNBaseURL:    v.GetString("content.cdn_base_url"),
			WarmupWorkers: v.GetInt("content.warmup_workers"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
		},
	}
}
