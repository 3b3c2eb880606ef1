package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Store modes supported by the app wiring.
const (
	StoreModeMongo  = "mongo"
	StoreModeMemory = "memory"
	StoreModeTable  = "table"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URI    string `yaml:"uri"`
		DBName string `yaml:"dbname"`
	} `yaml:"database"`
	Redis struct {
		Host        string `yaml:"host"`
		Port        int    `yaml:"port"`
		Password    string `yaml:"password"`
		DB          int    `yaml:"db"`
		TLSEnabled  bool   `yaml:"tls_enabled"`
		TLSCertFile string `yaml:"tls_cert_file"`
	} `yaml:"redis"`
	Store struct {
		Mode     string `yaml:"mode"`
		SeedFile string `yaml:"seed_file"`
	} `yaml:"store"`
	TableAPI struct {
		BaseURL   string `yaml:"base_url"`
		ProjectID string `yaml:"project_id"`
		PublicKey string `yaml:"public_key"`
	} `yaml:"table_api"`
	Mortgage struct {
		PacingMS int `yaml:"pacing_ms"`
	} `yaml:"mortgage"`
	Suggestions struct {
		DebounceMS int `yaml:"debounce_ms"`
	} `yaml:"suggestions"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	// Override with environment variables if set
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Database.URI = uri
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.Database.DBName = dbname
	}
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.Redis.Host = host
	}
	if port := os.Getenv("REDIS_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_PORT value: %v", err)
		}
		cfg.Redis.Port = portNum
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		dbNum, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value: %v", err)
		}
		cfg.Redis.DB = dbNum
	}
	if mode := os.Getenv("STORE_MODE"); mode != "" {
		cfg.Store.Mode = mode
	}
	if seed := os.Getenv("SEED_FILE"); seed != "" {
		cfg.Store.SeedFile = seed
	}
	if baseURL := os.Getenv("TABLE_API_BASE_URL"); baseURL != "" {
		cfg.TableAPI.BaseURL = baseURL
	}
	if projectID := os.Getenv("TABLE_API_PROJECT_ID"); projectID != "" {
		cfg.TableAPI.ProjectID = projectID
	}
	if publicKey := os.Getenv("TABLE_API_PUBLIC_KEY"); publicKey != "" {
		cfg.TableAPI.PublicKey = publicKey
	}

	// Set default values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Store.Mode == "" {
		cfg.Store.Mode = StoreModeMemory
	}
	if cfg.Store.SeedFile == "" {
		cfg.Store.SeedFile = "data/properties.json"
	}
	if cfg.Mortgage.PacingMS < 0 {
		cfg.Mortgage.PacingMS = 0
	}
	if cfg.Suggestions.DebounceMS < 0 {
		cfg.Suggestions.DebounceMS = 0
	}

	// Validation
	switch cfg.Store.Mode {
	case StoreModeMongo, StoreModeMemory, StoreModeTable:
	default:
		return nil, fmt.Errorf("invalid store mode %q: must be mongo, memory or table", cfg.Store.Mode)
	}
	if cfg.Store.Mode == StoreModeMongo && cfg.Database.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is required in mongo store mode")
	}
	if cfg.Store.Mode == StoreModeTable && cfg.TableAPI.BaseURL == "" {
		return nil, fmt.Errorf("TABLE_API_BASE_URL is required in table store mode")
	}
	if cfg.Redis.Port <= 0 || cfg.Redis.Port > 65535 {
		return nil, fmt.Errorf("REDIS_PORT must be between 1 and 65535")
	}
	if cfg.Redis.DB < 0 {
		return nil, fmt.Errorf("REDIS_DB must be non-negative")
	}
	if cfg.Redis.TLSEnabled && cfg.Redis.TLSCertFile != "" {
		if _, err := os.Stat(cfg.Redis.TLSCertFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("TLS certificate file does not exist: %s", cfg.Redis.TLSCertFile)
		}
	}

	return &cfg, nil
}
