package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SiteConfig points at the document the engine extracts facts from.
type SiteConfig struct {
	HTMLPath  string `yaml:"html_path"`
	StaticDir string `yaml:"static_dir"`
}

// EngineConfig tunes retrieval.
type EngineConfig struct {
	TopK int `yaml:"top_k"`
}

// ContactConfig holds the messaging identifiers used in responses.
type ContactConfig struct {
	WhatsAppNumber string `yaml:"whatsapp_number"`
}

// CVConfig configures where CV downloads are served from.
type CVConfig struct {
	BaseURL string `yaml:"base_url"`
}

// ServerConfig configures the HTTP front-end.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggerConfig configures logging.
type LoggerConfig struct {
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Site    SiteConfig    `yaml:"site"`
	Engine  EngineConfig  `yaml:"engine"`
	Contact ContactConfig `yaml:"contact"`
	CV      CVConfig      `yaml:"cv"`
	Server  ServerConfig  `yaml:"server"`
	Logger  LoggerConfig  `yaml:"logger"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/chatbot/config.yaml.
// If neither exists, it writes defaults to ~/.config/chatbot/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "chatbot", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Site.HTMLPath == "" {
		cfg.Site.HTMLPath = "public/index.html"
	}
	if cfg.Site.StaticDir == "" {
		cfg.Site.StaticDir = "public"
	}
	if cfg.Engine.TopK == 0 {
		cfg.Engine.TopK = 3
	}
	if cfg.Contact.WhatsAppNumber == "" {
		cfg.Contact.WhatsAppNumber = "5491162502232"
	}
	if cfg.CV.BaseURL == "" {
		cfg.CV.BaseURL = "/assets/cv"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
}
