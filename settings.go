package menunav

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// IgnoreID marks an element as excluded from keyboard navigation.
	IgnoreID = "ignKeyNav"

	DefaultMaxGroups      = 10
	DefaultRowTolerance   = 1e-5
	DefaultSliderStep     = 0.1
	DefaultRepeatDelay    = 24 // ticks before a held direction starts repeating
	DefaultRepeatInterval = 6  // ticks between repeats
)

// Settings configures a Navigator and its helpers. The zero value is not
// useful; start from DefaultSettings.
type Settings struct {
	// Loop makes edge-of-grid moves wrap to the opposite edge when no
	// neighbouring group exists.
	Loop bool `toml:"loop"`
	// IgnoreID is the element ID that excludes an element from navigation.
	IgnoreID string `toml:"ignore_id"`
	// EvidenceBorder grows the evidence indicator on every side.
	EvidenceBorder float64 `toml:"evidence_border"`
	// RowTolerance is the Y difference below which two elements share a
	// row. It is absolute (|y1-y2| < RowTolerance), not relative to the
	// magnitude of y.
	RowTolerance float64 `toml:"row_tolerance"`
	// MaxGroups caps the number of simultaneously active groups.
	MaxGroups int `toml:"max_groups"`
	// SliderStep is the fraction applied by Left/Right on a focused slider.
	SliderStep float64 `toml:"slider_step"`
	// RolloverEffects enables Highlight/Unhighlight on focus changes.
	RolloverEffects bool `toml:"rollover_effects"`
	// TweenEvidence enables the evidence alpha pulse.
	TweenEvidence bool `toml:"tween_evidence"`
	// RepeatDelay and RepeatInterval drive KeyInput hold-to-repeat, in ticks.
	RepeatDelay    int `toml:"repeat_delay"`
	RepeatInterval int `toml:"repeat_interval"`
}

// DefaultSettings returns the settings used when none are supplied.
func DefaultSettings() Settings {
	return Settings{
		IgnoreID:        IgnoreID,
		RowTolerance:    DefaultRowTolerance,
		MaxGroups:       DefaultMaxGroups,
		SliderStep:      DefaultSliderStep,
		RolloverEffects: true,
		TweenEvidence:   true,
		RepeatDelay:     DefaultRepeatDelay,
		RepeatInterval:  DefaultRepeatInterval,
	}
}

// normalized replaces out-of-range values with their defaults.
func (s Settings) normalized() Settings {
	if s.IgnoreID == "" {
		s.IgnoreID = IgnoreID
	}
	if s.RowTolerance <= 0 {
		s.RowTolerance = DefaultRowTolerance
	}
	if s.MaxGroups <= 0 {
		s.MaxGroups = DefaultMaxGroups
	}
	if s.SliderStep <= 0 {
		s.SliderStep = DefaultSliderStep
	}
	if s.RepeatDelay <= 0 {
		s.RepeatDelay = DefaultRepeatDelay
	}
	if s.RepeatInterval <= 0 {
		s.RepeatInterval = DefaultRepeatInterval
	}
	return s
}

// LoadSettings reads settings from a TOML file. Keys missing from the file
// keep their default values. A missing file yields DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("menunav: open settings: %w", err)
	}
	defer f.Close()
	return LoadSettingsFromReader(f)
}

// LoadSettingsFromReader decodes TOML settings from r on top of the
// defaults. Unknown keys are rejected.
func LoadSettingsFromReader(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Settings{}, fmt.Errorf("menunav: decode settings: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("menunav: unknown settings key %q", undecoded[0].String())
	}
	return s.normalized(), nil
}
