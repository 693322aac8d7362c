package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"chainvault/db"
	"chainvault/logx"
)

// Config is the node configuration loaded from the YAML config file.
type Config struct {
	Storage db.BackendConfig `yaml:"storage"`
	Genesis GenesisConfig    `yaml:"genesis"`
}

// GenesisConfig controls first-run bootstrap.
type GenesisConfig struct {
	// Payload seeds the genesis block. Empty means the built-in default.
	Payload string `yaml:"payload"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Storage: db.BackendConfig{
			Type:      db.LevelDBBackend,
			Directory: "./data",
		},
	}
}

// LoadConfig reads and parses the YAML config file. A missing file is not
// an error; defaults apply.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logx.Info("CONFIG", "No config file at ", path, ", using defaults")
			return Default(), nil
		}
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Storage.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	logx.Info("CONFIG", "Loaded config: backend=", cfg.Storage.Type, " dir=", cfg.Storage.Directory)
	return cfg, nil
}

// ValidationConfig holds validation tuning read from the .ini tuning file.
type ValidationConfig struct {
	// MaxDepth caps backward traversal; 0 means the built-in default.
	MaxDepth int `ini:"max_depth"`
}

// LoadValidationConfig reads validation tuning from an .ini file. A
// missing file yields zero values, meaning built-in defaults.
func LoadValidationConfig(path string) (*ValidationConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &ValidationConfig{}, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load tuning %s: %w", path, err)
	}

	validationCfg := &ValidationConfig{}
	if err := cfg.Section("validation").MapTo(validationCfg); err != nil {
		return nil, fmt.Errorf("map tuning %s: %w", path, err)
	}
	if validationCfg.MaxDepth < 0 {
		return nil, fmt.Errorf("tuning %s: max_depth cannot be negative", path)
	}
	return validationCfg, nil
}
