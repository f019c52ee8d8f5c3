package cups

import (
	"fmt"
	"os"
	"os/user"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-loadable connection configuration for a Client:
// where the server is, how to reach it, and which user/credentials to
// present.
type Config struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	TLS         bool   `yaml:"tls"`
	DefaultUser string `yaml:"default_user"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
}

// DefaultConfig returns the configuration CUPS itself defaults to: the
// local server on its standard unencrypted port.
func DefaultConfig() Config {
	return Config{Host: "localhost", Port: 631}
}

// URL builds the base server URL from Host/Port/TLS, e.g.
// "http://localhost:631/".
func (c Config) URL() string {
	scheme := "http"
	if c.TLS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d/", scheme, c.Host, c.Port)
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// currentUser returns the OS user name, falling back to the USER
// environment variable and finally an empty string.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
