package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// PluginFixture describes one plugin file a scenario should create on
// disk before a Load/Save is exercised against it.
type PluginFixture struct {
	Name       string `yaml:"name"`
	Signature  string `yaml:"signature"`
	IsMaster   bool   `yaml:"is_master,omitempty"`
	MtimeOffsetMinutes int `yaml:"mtime_offset_minutes,omitempty"`
}

// Scenario is the YAML representation of a plugin-folder layout used to
// drive table-driven persistence tests.
type Scenario struct {
	Name          string          `yaml:"name"`
	Plugins       []PluginFixture `yaml:"plugins"`
	ActiveLines   []string        `yaml:"active_lines,omitempty"`
	LoadOrderFile []string        `yaml:"load_order,omitempty"`
}

// ParseScenarios unmarshals a YAML document containing a list of named
// scenarios, as used by the table-driven persistence tests.
func ParseScenarios(data []byte) ([]Scenario, error) {
	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("parsing scenarios: %w", err)
	}
	return scenarios, nil
}

// WritePluginFiles materialises a scenario's plugin fixtures under dir,
// setting each file's mtime to now plus its MtimeOffsetMinutes when that
// offset is non-zero.
func WritePluginFiles(dir string, plugins []PluginFixture, header func(signature string, isMaster bool) []byte) error {
	for _, p := range plugins {
		path := filepath.Join(dir, p.Name)
		if err := os.WriteFile(path, header(p.Signature, p.IsMaster), 0644); err != nil {
			return fmt.Errorf("writing fixture %s: %w", p.Name, err)
		}
		if p.MtimeOffsetMinutes != 0 {
			t := time.Now().Add(time.Duration(p.MtimeOffsetMinutes) * time.Minute)
			if err := os.Chtimes(path, t, t); err != nil {
				return fmt.Errorf("setting mtime for %s: %w", p.Name, err)
			}
		}
	}
	return nil
}

// WriteActiveLines writes a scenario's active_lines verbatim to path, one
// per line, for tests that want a pre-existing active-plugins file rather
// than relying on a fresh install's empty-file defaults.
func WriteActiveLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
}
