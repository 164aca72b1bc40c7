package menunav

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Loop {
		t.Error("Loop should default to false")
	}
	if s.IgnoreID != IgnoreID || s.MaxGroups != DefaultMaxGroups || s.SliderStep != DefaultSliderStep {
		t.Errorf("unexpected defaults %+v", s)
	}
	if !s.RolloverEffects || !s.TweenEvidence {
		t.Error("effects should default to on")
	}
	if s.normalized() != s {
		t.Error("defaults should already be normalized")
	}
}

func TestSettingsNormalized(t *testing.T) {
	s := Settings{Loop: true, EvidenceBorder: 2}.normalized()
	if !s.Loop || s.EvidenceBorder != 2 {
		t.Error("normalized dropped valid values")
	}
	if s.IgnoreID != IgnoreID || s.RowTolerance != DefaultRowTolerance || s.MaxGroups != DefaultMaxGroups ||
		s.SliderStep != DefaultSliderStep || s.RepeatDelay != DefaultRepeatDelay || s.RepeatInterval != DefaultRepeatInterval {
		t.Errorf("zero values not replaced: %+v", s)
	}
}

func TestLoadSettingsFromReader(t *testing.T) {
	src := `
loop = true
evidence_border = 4.5
max_groups = 3
slider_step = 0.05
ignore_id = "skip"
`
	s, err := LoadSettingsFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadSettingsFromReader: %v", err)
	}
	if !s.Loop || s.EvidenceBorder != 4.5 || s.MaxGroups != 3 || s.SliderStep != 0.05 || s.IgnoreID != "skip" {
		t.Errorf("decoded %+v", s)
	}
	if s.RepeatDelay != DefaultRepeatDelay || !s.RolloverEffects {
		t.Error("missing keys should keep defaults")
	}
}

func TestLoadSettingsInvalidValuesNormalized(t *testing.T) {
	s, err := LoadSettingsFromReader(strings.NewReader("max_groups = -2\nrow_tolerance = 0\n"))
	if err != nil {
		t.Fatalf("LoadSettingsFromReader: %v", err)
	}
	if s.MaxGroups != DefaultMaxGroups || s.RowTolerance != DefaultRowTolerance {
		t.Errorf("invalid values not normalized: %+v", s)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"unknown key", "looop = true\n", "unknown settings key"},
		{"bad type", "max_groups = \"ten\"\n", "decode settings"},
		{"syntax", "loop = \n", "decode settings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettingsFromReader(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadSettingsFile(t *testing.T) {
	dir := t.TempDir()

	s, err := LoadSettings(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if s != DefaultSettings() {
		t.Error("missing file should give defaults")
	}

	path := filepath.Join(dir, "nav.toml")
	if err := os.WriteFile(path, []byte("loop = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if !s.Loop {
		t.Error("loop not read from file")
	}
}
