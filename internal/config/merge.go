package config

import (
	"github.com/gobwas/glob"
)

// Merge layers a loaded config over the defaults. Scalars win when the
// loaded config sets them, thresholds merge per measure, and the ignore
// and override lists always come from the loaded config.
func Merge(defaults, loaded *Config) *Config {
	merged := &Config{
		Language:   defaults.Language,
		WordList:   defaults.WordList,
		Measures:   defaults.Measures,
		Thresholds: cloneThresholds(defaults.Thresholds),
	}
	if loaded == nil {
		return merged
	}

	if loaded.Language != "" {
		merged.Language = loaded.Language
	}
	if loaded.WordList != "" {
		merged.WordList = loaded.WordList
	}
	if loaded.Measures != nil {
		merged.Measures = loaded.Measures
	}
	for name, th := range loaded.Thresholds {
		merged.Thresholds[name] = th
	}
	merged.Ignore = loaded.Ignore
	merged.Overrides = loaded.Overrides
	return merged
}

func cloneThresholds(src map[string]Threshold) map[string]Threshold {
	dst := make(map[string]Threshold, len(src))
	for name, th := range src {
		dst[name] = th
	}
	return dst
}

// Effective computes the thresholds that apply to one file: the top-level
// thresholds, then each matching override in order, later overrides
// winning. Thresholds disabled by that point are dropped entirely.
func Effective(cfg *Config, filePath string) map[string]Threshold {
	result := cloneThresholds(cfg.Thresholds)

	for _, o := range cfg.Overrides {
		if !o.appliesTo(filePath) {
			continue
		}
		for name, th := range o.Thresholds {
			result[name] = th
		}
	}

	for name, th := range result {
		if th.Disabled {
			delete(result, name)
		}
	}
	return result
}

// appliesTo reports whether any of the override's file globs match the
// path. Patterns that do not compile are skipped.
func (o Override) appliesTo(filePath string) bool {
	for _, pattern := range o.Files {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(filePath) {
			return true
		}
	}
	return false
}
