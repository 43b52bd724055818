package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"videothingy/zoom-editor/internal/zoom"
)

// EditorConfig is the layout of the editor defaults file:
//
//	zoom:
//	  default_scale: 1.5
//	  default_duration: 5
//	  shift_increment: 5
//	  add_policy: strict
type EditorConfig struct {
	Zoom zoom.Settings `yaml:"zoom"`
}

// LoadEditorConfig reads the YAML defaults file. Keys missing from the file
// keep their stock values.
func LoadEditorConfig(path string) (*EditorConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open editor config: %w", err)
	}
	defer file.Close()

	cfg := EditorConfig{Zoom: zoom.DefaultSettings()}
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode editor config %s: %w", path, err)
	}
	log.Printf("[config] Loaded editor defaults from %s: %+v", path, cfg.Zoom)
	return &cfg, nil
}

func validateZoomSettings(s zoom.Settings) error {
	switch s.AddPolicy {
	case zoom.AddPolicyStrict, zoom.AddPolicyLenient:
	default:
		return fmt.Errorf("unknown add_policy %q (want %q or %q)", s.AddPolicy, zoom.AddPolicyStrict, zoom.AddPolicyLenient)
	}
	if s.DefaultScale <= 0 {
		return fmt.Errorf("default_scale must be positive, got %g", s.DefaultScale)
	}
	if s.DefaultDuration <= 0 {
		return fmt.Errorf("default_duration must be positive, got %g", s.DefaultDuration)
	}
	if s.ShiftIncrement <= 0 {
		return fmt.Errorf("shift_increment must be positive, got %g", s.ShiftIncrement)
	}
	return nil
}
