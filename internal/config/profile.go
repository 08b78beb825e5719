package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zcohort/internal/identity"
	"github.com/zarlcorp/zcohort/internal/sample"
	"gopkg.in/yaml.v3"
)

// ProfileFile is the YAML form of an identity.Profile. Omitted sections keep
// the defaults.
type ProfileFile struct {
	Domain      string             `yaml:"domain"`
	Genders     map[string]float64 `yaml:"genders"`
	Courses     map[string]float64 `yaml:"courses"`
	CountryBias map[string]float64 `yaml:"country_bias"`
	Tutors      int                `yaml:"tutors"`
}

// ParseProfile decodes a YAML profile on top of identity.DefaultProfile.
// Unknown keys, genders and courses are rejected.
func ParseProfile(data []byte) (identity.Profile, error) {
	var f ProfileFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return identity.Profile{}, fmt.Errorf("parse profile: %w", err)
	}

	p := identity.DefaultProfile()
	if f.Domain != "" {
		p.Domain = f.Domain
	}
	if f.Genders != nil {
		if err := knownLabels("gender", f.Genders, identity.Genders); err != nil {
			return identity.Profile{}, err
		}
		p.Genders = sample.Distribution(f.Genders)
	}
	if f.Courses != nil {
		if err := knownLabels("course", f.Courses, identity.Courses); err != nil {
			return identity.Profile{}, err
		}
		p.Courses = sample.Distribution(f.Courses)
	}
	if f.CountryBias != nil {
		p.CountryBias = f.CountryBias
	}
	p.TutorCount = f.Tutors

	if err := p.Validate(); err != nil {
		return identity.Profile{}, fmt.Errorf("parse profile: %w: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// LoadProfile reads and parses the named profile from fsys.
func LoadProfile(fsys zfilesystem.ReadWriteFileFS, name string) (identity.Profile, error) {
	data, err := fsys.ReadFile(name)
	if err != nil {
		return identity.Profile{}, fmt.Errorf("read profile %s: %w", name, err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return identity.Profile{}, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// ResolveProfile returns the profile cfg selects, loaded through fsys, with
// cfg.Domain applied on top.
func ResolveProfile(cfg Config, fsys zfilesystem.ReadWriteFileFS) (identity.Profile, error) {
	p := identity.DefaultProfile()
	if cfg.Profile != "" {
		var err error
		if p, err = LoadProfile(fsys, cfg.Profile); err != nil {
			return identity.Profile{}, err
		}
	}
	if cfg.Domain != "" {
		p.Domain = cfg.Domain
	}
	return p, nil
}

func knownLabels(kind string, d map[string]float64, known []string) error {
	for label := range d {
		if !slices.Contains(known, label) {
			return fmt.Errorf("parse profile: unknown %s %q: %w", kind, label, ErrInvalidConfig)
		}
	}
	return nil
}
