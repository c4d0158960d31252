package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmccarthy619/file-name-generator/internal/logging"
)

const (
	PathEnvVar     = "DATEINAME_CONFIG"
	LogLevelEnvVar = "DATEINAME_LOG_LEVEL"
	AddrEnvVar     = "DATEINAME_ADDR"
)

type Config struct {
	// TaxonomyPath points to an alternate taxonomy file. Empty means the
	// lookup in taxonomy.ResolvePath, then the compiled-in data.
	TaxonomyPath  string         `yaml:"taxonomy_path"`
	DefaultPerson string         `yaml:"default_person"`
	ExportDir     string         `yaml:"export_dir"`
	Log           logging.Config `yaml:"log"`
	Server        Server         `yaml:"server"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

func LoadOrDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return applyEnv(Default()), err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(Default()), nil
		}
		return applyEnv(Default()), err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return applyEnv(Default()), err
	}
	return applyEnv(cfg), nil
}

func InitDefault() (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return Save(Default())
}

func Save(cfg Config) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func Default() Config {
	return Config{
		ExportDir: ".",
		Log:       logging.DefaultConfig(),
		Server:    Server{Addr: "127.0.0.1:8080"},
	}
}

// Path is the config file location, overridable through PathEnvVar.
func Path() (string, error) {
	if configured := strings.TrimSpace(os.Getenv(PathEnvVar)); configured != "" {
		return configured, nil
	}
	baseDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, "dateiname", "config.yaml"), nil
}

func applyEnv(cfg Config) Config {
	if level := strings.TrimSpace(os.Getenv(LogLevelEnvVar)); level != "" {
		cfg.Log.Level = level
	}
	if addr := strings.TrimSpace(os.Getenv(AddrEnvVar)); addr != "" {
		cfg.Server.Addr = addr
	}
	return cfg
}
