package config

import "sort"

// Presets scale animation pacing. Durations are unchanged, only intervals move.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"calm": withPacing(DefaultConfig(), []int{90, 150, 120}, LogoConfig{
		RevealIntervalMs: 40, RevealBatch: 16, RotateIntervalMs: 110, VisibilityThreshold: DefaultThreshold,
	}),
	"brisk": withPacing(DefaultConfig(), []int{40, 70, 50}, LogoConfig{
		RevealIntervalMs: 15, RevealBatch: 32, RotateIntervalMs: 45, VisibilityThreshold: DefaultThreshold,
	}),
}

func withPacing(cfg *Config, intervals []int, logo LogoConfig) *Config {
	for i := range cfg.Scenes {
		cfg.Scenes[i].IntervalMs = intervals[i]
	}
	cfg.Logo = logo
	return cfg
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

// ApplyPreset copies a preset's pacing onto c.
func (c *Config) ApplyPreset(name string) bool {
	p := GetPreset(name)
	if p == nil {
		return false
	}
	c.Scenes = append([]SceneConfig(nil), p.Scenes...)
	c.Logo = p.Logo
	return true
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
