// Package config loads the optional spring.yaml that configures the demo.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/spring/pkg/animation"
)

// FileName is the config file looked up in the project root.
const FileName = "spring.yaml"

// Config represents the optional spring.yaml configuration.
type Config struct {
	Presets map[string]animation.Config `yaml:"presets,omitempty"`
	Demo    DemoConfig                  `yaml:"demo"`
	Stream  StreamConfig                `yaml:"stream"`
}

// DemoConfig describes the property set the demo animates.
type DemoConfig struct {
	From   map[string]float64 `yaml:"from,omitempty"`
	To     map[string]float64 `yaml:"to,omitempty"`
	Preset string             `yaml:"preset,omitempty"`
	Native bool               `yaml:"native,omitempty"`
	Colors ColorConfig        `yaml:"colors"`
}

// ColorConfig sets the bar colour ramp.
type ColorConfig struct {
	Stops []string `yaml:"stops,omitempty"`
	Space string   `yaml:"space,omitempty"`
}

// StreamConfig contains MQTT publishing settings.
type StreamConfig struct {
	Broker   string        `yaml:"broker,omitempty"`
	Topic    string        `yaml:"topic,omitempty"`
	ClientID string        `yaml:"clientID,omitempty"`
	Username string        `yaml:"username,omitempty"`
	Password string        `yaml:"password,omitempty"`
	Interval time.Duration `yaml:"interval,omitempty"`
	QoS      byte          `yaml:"qos,omitempty"`
}

// Resolved contains the configuration with defaults applied.
type Resolved struct {
	Root       string
	Path       string
	ModulePath string
	Name       string
	Presets    map[string]animation.Config
	Demo       DemoConfig
	Stream     StreamConfig
}

// LoadOptional reads spring.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads spring.yaml (if present) from dir and fills defaults. The
// project name and stream identity default to values derived from go.mod
// when dir holds one.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modPath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	name := defaultName(modPath, dir)

	for presetName, preset := range cfg.Presets {
		if err := validatePreset(presetName, preset); err != nil {
			return nil, err
		}
	}

	demo := cfg.Demo
	if len(demo.From) == 0 && len(demo.To) == 0 {
		demo.From = map[string]float64{"x": 0, "opacity": 0, "scale": 0.2}
		demo.To = map[string]float64{"x": 1, "opacity": 1, "scale": 1}
	}
	if demo.Preset == "" {
		demo.Preset = "default"
	}
	if len(demo.Colors.Stops) == 0 {
		demo.Colors.Stops = []string{"#1d3557", "#e63946"}
	}
	if len(demo.Colors.Stops) == 1 {
		return nil, fmt.Errorf("demo.colors.stops needs at least two colours (got %q)", demo.Colors.Stops)
	}

	stream := cfg.Stream
	stream.Broker = strings.TrimSpace(stream.Broker)
	if stream.Broker == "" {
		stream.Broker = "tcp://localhost:1883"
	}
	if strings.TrimSpace(stream.Topic) == "" {
		stream.Topic = name + "/frames"
	}
	if strings.TrimSpace(stream.ClientID) == "" {
		stream.ClientID = name + "-springdemo"
	}
	if stream.Interval <= 0 {
		stream.Interval = 33 * time.Millisecond
	}
	if stream.QoS > 2 {
		return nil, fmt.Errorf("stream.qos must be 0, 1 or 2 (got %d)", stream.QoS)
	}

	return &Resolved{
		Root:       dir,
		Path:       filepath.Join(dir, FileName),
		ModulePath: modPath,
		Name:       name,
		Presets:    cfg.Presets,
		Demo:       demo,
		Stream:     stream,
	}, nil
}

// RegisterPresets adds the configured presets to the animation registry.
func (r *Resolved) RegisterPresets() {
	for name, preset := range r.Presets {
		animation.RegisterPreset(name, preset)
	}
}

// FindProjectRoot walks up from the current directory to find go.mod. When
// there is none, it returns the current directory.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

func validatePreset(name string, c animation.Config) error {
	if c.Tension < 0 || c.Friction < 0 {
		return fmt.Errorf("preset %q: tension and friction must not be negative", name)
	}
	if c.Tension == 0 && c.Duration == 0 {
		return fmt.Errorf("preset %q: set tension or duration", name)
	}
	if c.Easing != "" {
		if _, ok := animation.Easing(c.Easing); !ok {
			return fmt.Errorf("preset %q: unknown easing %q", name, c.Easing)
		}
	}
	return nil
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	base = sanitize(base)
	if base == "" {
		return "spring"
	}
	return base
}

// sanitize keeps characters that are safe in MQTT topics and client IDs.
func sanitize(s string) string {
	var out []rune
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	return string(out)
}
