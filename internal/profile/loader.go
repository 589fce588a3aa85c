package profile

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML profile from the given path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile

	err := yaml.Unmarshal(data, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&p)

	return &p, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Profile) {
	if p.Version == "" {
		p.Version = SupportedVersion
	}
}

// Marshal serializes a Profile to YAML.
func Marshal(p *Profile) ([]byte, error) {
	return yaml.Marshal(p)
}

// WriteFile writes a Profile to the given path.
func WriteFile(p *Profile, path string) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}

	return nil
}

// Normalize expands the 121 shorthand into direct rules placed ahead of the
// explicit ones, ordered by destination. The shorthand is cleared.
func Normalize(p *Profile) {
	if len(p.OneToOne) == 0 {
		return
	}

	expanded := make([]RuleSpec, 0, len(p.OneToOne)+len(p.Rules))
	for _, dst := range slices.Sorted(maps.Keys(p.OneToOne)) {
		expanded = append(expanded, RuleSpec{For: dst, From: p.OneToOne[dst]})
	}

	p.Rules = append(expanded, p.Rules...)
	p.OneToOne = nil
}

// AllRules returns the shorthand and explicit rules in application order
// without modifying p.
func (p *Profile) AllRules() []RuleSpec {
	cp := *p
	cp.Rules = slices.Clone(p.Rules)
	Normalize(&cp)

	return cp.Rules
}
