package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	Database DatabaseConfig
	Writer   WriterConfig
	Blob     BlobConfig
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"DB_PATH"`
	Seed bool   `mapstructure:"SEED_ON_CREATE"`
}

type WriterConfig struct {
	QueueSize int `mapstructure:"WRITER_QUEUE_SIZE"`
}

type BlobConfig struct {
	Dir string `mapstructure:"BLOB_DIR"`
}

func Load() (*Config, error) {
	// .env dosyası kütüphane tüketicisinde bulunmayabilir
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("DB_PATH", "eventhive.db")
	viper.SetDefault("SEED_ON_CREATE", true)
	viper.SetDefault("WRITER_QUEUE_SIZE", 64)
	viper.SetDefault("BLOB_DIR", "images")
	viper.SetDefault("LOG_LEVEL", "info")

	var cfg Config

	cfg.AppEnv = viper.GetString("APP_ENV")
	cfg.Database.Path = viper.GetString("DB_PATH")
	cfg.Database.Seed = viper.GetBool("SEED_ON_CREATE")
	cfg.Writer.QueueSize = viper.GetInt("WRITER_QUEUE_SIZE")
	cfg.Blob.Dir = viper.GetString("BLOB_DIR")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	return &cfg, nil
}
