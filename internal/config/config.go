package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Media struct {
		UploadDir string `yaml:"upload_dir"`
	} `yaml:"media"`
	S3 struct {
		Enabled   bool   `yaml:"enabled"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
	} `yaml:"s3"`
	Pagination struct {
		PageSize    int `yaml:"page_size"`
		MaxPageSize int `yaml:"max_page_size"`
	} `yaml:"pagination"`
	Auth struct {
		SigningKey string `yaml:"signing_key"`
	} `yaml:"auth"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	applyDefaults(&cfg)
	return cfg
}

// applyDefaults fills the pagination and media settings the rest of the app
// assumes are always present.
func applyDefaults(cfg *Config) {
	if cfg.Pagination.PageSize <= 0 {
		cfg.Pagination.PageSize = 6
	}
	if cfg.Pagination.MaxPageSize <= 0 {
		cfg.Pagination.MaxPageSize = 100
	}
	if cfg.Media.UploadDir == "" {
		cfg.Media.UploadDir = "./uploads"
	}
	if cfg.Auth.SigningKey == "" {
		cfg.Auth.SigningKey = os.Getenv("JWT_SIGNING_KEY")
	}
}
