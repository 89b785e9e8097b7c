// Package config provides configuration loading for guidecal.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Calendar      CalendarConfig     `yaml:"calendar"`
	Schedule      string             `yaml:"schedule"` // Empty = embedded schedule
	Output        OutputConfig       `yaml:"output"`
	Open          OpenConfig         `yaml:"open"`
	Notifications NotificationConfig `yaml:"notifications"`
	Exports       []ExportConfig     `yaml:"exports"`
}

// CalendarConfig configures the generated calendar document.
type CalendarConfig struct {
	Name      string `yaml:"name"`
	ProductID string `yaml:"product_id"`
	UIDDomain string `yaml:"uid_domain"`
	BaseURL   string `yaml:"base_url"` // Origin relative event links resolve against
}

// OutputConfig configures where saved files go. CalDAV takes precedence over
// WebDAV, which takes precedence over Dir.
type OutputConfig struct {
	Dir    string       `yaml:"dir"`
	WebDAV WebDAVConfig `yaml:"webdav"`
	CalDAV WebDAVConfig `yaml:"caldav"` // Dir is the calendar path, discovered when empty
}

// WebDAVConfig configures uploading saved files to a WebDAV or CalDAV
// server. Uploading is enabled when URL is set.
type WebDAVConfig struct {
	URL         string        `yaml:"url"`
	Dir         string        `yaml:"dir"`
	Username    string        `yaml:"username,omitempty"`
	Password    string        `yaml:"password,omitempty"`
	PasswordCmd string        `yaml:"password_cmd,omitempty"`
	Timeout     time.Duration `yaml:"timeout"`
}

// OpenConfig configures how links are opened.
type OpenConfig struct {
	Method string `yaml:"method"` // "browser", "portal", "xdg-open", "print"
}

// NotificationConfig configures desktop notifications.
type NotificationConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ExportConfig names a subset of the schedule, as exported from one guide page.
type ExportConfig struct {
	Name         string       `yaml:"name"`
	CalendarName string       `yaml:"calendar_name"`
	Filters      FilterConfig `yaml:"filters"`
}

// FilterConfig configures event filtering.
type FilterConfig struct {
	Mode  string       `yaml:"mode"` // "or" or "and"
	Rules []FilterRule `yaml:"rules"`
}

// FilterRule defines a single filter rule.
// Use exactly one of: Contains, Exact, Prefix, Suffix, or Regex.
type FilterRule struct {
	Field           string `yaml:"field"`              // "title", "description", "location", "url"
	Contains        string `yaml:"contains,omitempty"` // Substring match
	Exact           string `yaml:"exact,omitempty"`    // Exact string match
	Prefix          string `yaml:"prefix,omitempty"`   // Starts with
	Suffix          string `yaml:"suffix,omitempty"`   // Ends with
	Regex           string `yaml:"regex,omitempty"`    // Regular expression
	CaseInsensitive bool   `yaml:"case_insensitive"`
}

// Open methods.
const (
	OpenBrowser = "browser"
	OpenPortal  = "portal"
	OpenXDG     = "xdg-open"
	OpenPrint   = "print"
)

// DefaultPath returns the default config location
// (~/.config/wildhacks-guide/config.yaml).
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(configDir, "wildhacks-guide", "config.yaml"), nil
}

// Load reads configuration from the default location. A missing file yields
// the defaults.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFrom(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFrom reads configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	path = expandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyDefaults()

	cfg.Schedule = expandPath(cfg.Schedule)
	cfg.Output.Dir = expandPath(cfg.Output.Dir)

	return &cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	cfg.Output.Dir = expandPath(cfg.Output.Dir)
	return &cfg
}

// applyDefaults sets default values for unspecified config options.
func (c *Config) applyDefaults() {
	if c.Calendar.Name == "" {
		c.Calendar.Name = "WildHacks 2026"
	}
	if c.Calendar.ProductID == "" {
		c.Calendar.ProductID = "-//WildHacks//Guide 2026//EN"
	}
	if c.Calendar.UIDDomain == "" {
		c.Calendar.UIDDomain = "wildhacks.net"
	}
	if c.Calendar.BaseURL == "" {
		c.Calendar.BaseURL = "https://guide.wildhacks.net"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "~/Downloads"
	}
	if c.Output.WebDAV.Timeout == 0 {
		c.Output.WebDAV.Timeout = 30 * time.Second
	}
	if c.Output.CalDAV.Timeout == 0 {
		c.Output.CalDAV.Timeout = 60 * time.Second
	}
	if c.Open.Method == "" {
		c.Open.Method = OpenBrowser
	}
	for i := range c.Exports {
		if c.Exports[i].Filters.Mode == "" {
			c.Exports[i].Filters.Mode = "or"
		}
	}
}

// Export returns the export with the given name.
func (c *Config) Export(name string) (ExportConfig, bool) {
	for _, e := range c.Exports {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return ExportConfig{}, false
}

// GetPassword returns the server password, executing password_cmd if needed.
func (w *WebDAVConfig) GetPassword() (string, error) {
	if w.Password != "" {
		return w.Password, nil
	}
	if w.PasswordCmd == "" {
		return "", nil
	}

	cmd := exec.Command("sh", "-c", w.PasswordCmd)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("execute password_cmd: %w", err)
	}

	return strings.TrimSpace(string(out)), nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// UnmarshalYAML implements custom unmarshaling for the timeout field.
func (w *WebDAVConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		URL         string `yaml:"url"`
		Dir         string `yaml:"dir"`
		Username    string `yaml:"username"`
		Password    string `yaml:"password"`
		PasswordCmd string `yaml:"password_cmd"`
		Timeout     string `yaml:"timeout"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	d, err := parseDuration(raw.Timeout)
	if err != nil {
		return fmt.Errorf("parse timeout: %w", err)
	}

	w.URL = raw.URL
	w.Dir = raw.Dir
	w.Username = raw.Username
	w.Password = raw.Password
	w.PasswordCmd = raw.PasswordCmd
	w.Timeout = d
	return nil
}

// parseDuration parses a Go duration, also accepting whole days ("14d") and
// weeks ("2w"). Empty input is zero.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	unit := time.Duration(0)
	switch {
	case strings.HasSuffix(s, "d"):
		unit = 24 * time.Hour
	case strings.HasSuffix(s, "w"):
		unit = 7 * 24 * time.Hour
	default:
		return time.ParseDuration(s)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative duration %q", s)
	}
	return time.Duration(n) * unit, nil
}
