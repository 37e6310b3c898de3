package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/san-kum/folio/internal/logo"
	"github.com/san-kum/folio/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	DefaultUsername    = "ardijancuri"
	DefaultTheme       = "dark"
	DefaultRefreshRate = 60
	DefaultPerPage     = 10
	DefaultThreshold   = 0.3
)

// ErrInvalid indicates a config value outside its valid range.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Username    string        `yaml:"username"`
	Token       string        `yaml:"-"`
	Theme       string        `yaml:"theme"`
	RefreshRate int           `yaml:"refresh_rate"`
	PerPage     int           `yaml:"per_page"`
	Profile     ProfileConfig `yaml:"profile"`
	Scenes      []SceneConfig `yaml:"scenes"`
	Logo        LogoConfig    `yaml:"logo"`
}

type ProfileConfig struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Bio   string `yaml:"bio"`
	Links []Link `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type SceneConfig struct {
	Name       string `yaml:"name"`
	Duration   int    `yaml:"duration"`
	IntervalMs int    `yaml:"interval_ms"`
}

func (s SceneConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMs) * time.Millisecond
}

type LogoConfig struct {
	RevealIntervalMs    int     `yaml:"reveal_interval_ms"`
	RevealBatch         int     `yaml:"reveal_batch"`
	RotateIntervalMs    int     `yaml:"rotate_interval_ms"`
	VisibilityThreshold float64 `yaml:"visibility_threshold"`
}

func DefaultScenes() []SceneConfig {
	return []SceneConfig{
		{Name: "typing", Duration: 80, IntervalMs: 60},
		{Name: "rain", Duration: 60, IntervalMs: 100},
		{Name: "morph", Duration: 150, IntervalMs: 80},
	}
}

func DefaultConfig() *Config {
	return &Config{
		Username:    DefaultUsername,
		Theme:       DefaultTheme,
		RefreshRate: DefaultRefreshRate,
		PerPage:     DefaultPerPage,
		Profile: ProfileConfig{
			Name:  "Ardijan Curi",
			Title: "Software Developer",
			Bio:   "Building modern web applications with clean code and thoughtful design.",
			Links: []Link{
				{Label: "GitHub", URL: "https://github.com/" + DefaultUsername},
				{Label: "Contact", URL: "mailto:your.email@example.com"},
			},
		},
		Scenes: DefaultScenes(),
		Logo: LogoConfig{
			RevealIntervalMs:    25,
			RevealBatch:         24,
			RotateIntervalMs:    70,
			VisibilityThreshold: DefaultThreshold,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.RefreshRate <= 0 {
		return fmt.Errorf("%w: refresh_rate %d", ErrInvalid, c.RefreshRate)
	}
	if c.PerPage <= 0 {
		return fmt.Errorf("%w: per_page %d", ErrInvalid, c.PerPage)
	}
	if len(c.Scenes) == 0 {
		return fmt.Errorf("%w: no scenes", ErrInvalid)
	}
	for _, s := range c.Scenes {
		if s.Duration <= 0 || s.IntervalMs <= 0 {
			return fmt.Errorf("%w: scene %q needs positive duration and interval", ErrInvalid, s.Name)
		}
	}
	if t := c.Logo.VisibilityThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("%w: visibility_threshold %.2f", ErrInvalid, t)
	}
	return nil
}

// LoadEnv loads the first existing env file, by default .env.local then .env.
// Variables already set in the process environment win. A missing file is not an error.
func LoadEnv(files ...string) (string, error) {
	if len(files) == 0 {
		files = []string{".env.local", ".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return "", fmt.Errorf("config: load %s: %w", f, err)
		}
		return f, nil
	}
	return "", nil
}

// ApplyEnv overrides fields from FOLIO_USERNAME, FOLIO_THEME and GITHUB_TOKEN.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("FOLIO_USERNAME"); v != "" {
		c.Username = v
	}
	if v := os.Getenv("FOLIO_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		c.Token = v
	}
}

func (c *Config) SceneSpecs() []scene.Spec {
	specs := make([]scene.Spec, len(c.Scenes))
	for i, s := range c.Scenes {
		specs[i] = scene.Spec{Name: s.Name, Duration: s.Duration, Interval: s.Interval()}
	}
	return specs
}

func (c *Config) LogoTiming() logo.Timing {
	return logo.Timing{
		RevealInterval: time.Duration(c.Logo.RevealIntervalMs) * time.Millisecond,
		RevealBatch:    c.Logo.RevealBatch,
		RotateInterval: time.Duration(c.Logo.RotateIntervalMs) * time.Millisecond,
	}
}
