package config

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultEndpoint = "https://rail-api.rail.co.il/rjpa/api/v1/timetable/searchTrain"
	// Public subscription key shipped with the railway's own web client.
	defaultKey     = "5e64d66cf03f4547bcac5de2de06b566"
	defaultTimeout = 10
)

type APIConfig struct {
	Endpoint       string `yaml:"endpoint" validate:"omitempty,url"`
	Key            string `yaml:"key"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" validate:"gte=0"`
}

type Config struct {
	API APIConfig `yaml:"api"`
}

// Load reads the first config file found (railil.yml in the working
// directory, then ~/.railil.yml), applies the RAIL_API_KEY environment
// override, validates, and fills in defaults. No file at all is fine:
// the built-in defaults talk to the production API.
func Load() (*Config, error) {
	var cfg Config
	for _, p := range configPaths() {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		break
	}

	if key := os.Getenv("RAIL_API_KEY"); key != "" {
		cfg.API.Key = key
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	if cfg.API.Endpoint == "" {
		cfg.API.Endpoint = defaultEndpoint
	}
	if cfg.API.Key == "" {
		cfg.API.Key = defaultKey
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = defaultTimeout
	}
	return &cfg, nil
}

func configPaths() []string {
	paths := []string{"railil.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".railil.yml"))
	}
	return paths
}
