package config

import (
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zcohort/internal/identity"
	"github.com/zarlcorp/zcohort/internal/sample"
)

func TestLoadFrom(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"ZCOHORT_SEED":      "42",
		"ZCOHORT_PROFILE":   "intake.yaml",
		"ZCOHORT_DOMAIN":    "uni.example.org",
		"ZCOHORT_LOG_LEVEL": "debug",
	})
	if err != nil {
		t.Fatal(err)
	}

	want := Config{Seed: 42, Profile: "intake.yaml", Domain: "uni.example.org", LogLevel: slog.LevelDebug}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 0 || cfg.LogLevel != slog.LevelInfo {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"seed", map[string]string{"ZCOHORT_SEED": "abc"}},
		{"level", map[string]string{"ZCOHORT_LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(tt.env); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     Config
		wantRest []string
	}{
		{"none", []string{"identity", "--json"}, Config{}, []string{"identity", "--json"}},
		{"seed before command", []string{"--seed", "7", "cid"}, Config{Seed: 7}, []string{"cid"}},
		{"inline", []string{"email", "--domain=x.org"}, Config{Domain: "x.org"}, []string{"email"}},
		{"profile", []string{"cohort", "--profile", "p.yaml", "--n", "3"}, Config{Profile: "p.yaml"}, []string{"cohort", "--n", "3"}},
		{"case insensitive", []string{"--SEED=3"}, Config{Seed: 3}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rest, err := ParseArgs(Config{}, tt.args)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("config = %+v, want %+v", got, tt.want)
			}
			if !slices.Equal(rest, tt.wantRest) {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
		})
	}
}

func TestParseArgsOverridesEnv(t *testing.T) {
	got, _, err := ParseArgs(Config{Seed: 1, Domain: "env.org"}, []string{"--seed", "2"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Seed != 2 || got.Domain != "env.org" {
		t.Errorf("got %+v", got)
	}
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{{"--seed"}, {"--seed", "x"}, {"cid", "--profile"}} {
		if _, _, err := ParseArgs(Config{}, args); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseArgs(%q) err = %v, want ErrInvalidConfig", args, err)
		}
	}
}

const testProfile = `
domain: imperial.example.ac.uk
genders:
  male: 0.5
  female: 0.5
courses:
  acse: 1
  edsml: 0
  gems: 0
country_bias:
  China: 10
tutors: 4
`

func TestLoadProfile(t *testing.T) {
	fs := zfilesystem.NewMemFS()
	if err := fs.WriteFile("intake.yaml", []byte(testProfile), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(fs, "intake.yaml")
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}

	if p.Domain != "imperial.example.ac.uk" {
		t.Errorf("domain = %q", p.Domain)
	}
	if p.Genders["male"] != 0.5 || len(p.Genders) != 2 {
		t.Errorf("genders = %v", p.Genders)
	}
	if p.Courses["acse"] != 1 {
		t.Errorf("courses = %v", p.Courses)
	}
	if p.CountryBias["China"] != 10 || len(p.CountryBias) != 1 {
		t.Errorf("country bias = %v", p.CountryBias)
	}
	if p.TutorCount != 4 {
		t.Errorf("tutor count = %d", p.TutorCount)
	}
}

func TestParseProfileEmptyKeepsDefaults(t *testing.T) {
	p, err := ParseProfile(nil)
	if err != nil {
		t.Fatal(err)
	}
	def := identity.DefaultProfile()
	if p.Domain != def.Domain || len(p.Genders) != len(def.Genders) {
		t.Errorf("got %+v, want defaults", p)
	}
}

func TestParseProfileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"unknown key", "colour: blue\n", nil},
		{"unknown course", "courses:\n  ppe: 1\n", ErrInvalidConfig},
		{"unknown gender", "genders:\n  robot: 1\n", ErrInvalidConfig},
		{"zero courses", "courses:\n  acse: 0\n", sample.ErrInvalidDistribution},
		{"negative bias", "country_bias:\n  China: -1\n", sample.ErrInvalidDistribution},
		{"negative tutors", "tutors: -2\n", identity.ErrInvalidArgument},
		{"not yaml", "genders: [\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadProfileMissing(t *testing.T) {
	if _, err := LoadProfile(zfilesystem.NewMemFS(), "nope.yaml"); err == nil {
		t.Error("expected error for missing profile")
	}
}

func TestResolveProfile(t *testing.T) {
	fs := zfilesystem.NewMemFS()
	if err := fs.WriteFile("intake.yaml", []byte(testProfile), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := ResolveProfile(Config{Domain: "override.org"}, fs)
	if err != nil {
		t.Fatal(err)
	}
	if p.Domain != "override.org" {
		t.Errorf("domain = %q, want override.org", p.Domain)
	}

	p, err = ResolveProfile(Config{Profile: "intake.yaml"}, fs)
	if err != nil {
		t.Fatal(err)
	}
	if p.TutorCount != 4 {
		t.Errorf("tutor count = %d, want 4", p.TutorCount)
	}
}
