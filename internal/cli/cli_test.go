package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zcohort/internal/cohort"
	"github.com/zarlcorp/zcohort/internal/corpus"
	"github.com/zarlcorp/zcohort/internal/identity"
	"github.com/zarlcorp/zcohort/internal/validate"
)

var (
	dataOnce sync.Once
	testData *corpus.Data
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer, *zfilesystem.MemFS) {
	t.Helper()
	dataOnce.Do(func() { testData = corpus.Load() })

	var out bytes.Buffer
	fs := zfilesystem.NewMemFS()
	r := &Runner{
		Out:     &out,
		Err:     &bytes.Buffer{},
		Gen:     identity.New(testData, identity.WithSeed(1)),
		Profile: identity.DefaultProfile(),
		FS:      fs,
	}
	return r, &out, fs
}

func TestHasFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want bool
	}{
		{"present", []string{"--json", "--period"}, "--json", true},
		{"absent", []string{"--period"}, "--json", false},
		{"empty", nil, "--json", false},
		{"case insensitive", []string{"--JSON"}, "--json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasFlag(tt.args, tt.flag)
			if got != tt.want {
				t.Errorf("hasFlag(%v, %s) = %v, want %v", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantOK  bool
		wantErr bool
	}{
		{"separate", []string{"--gender", "male"}, "male", true, false},
		{"inline", []string{"--gender=female"}, "female", true, false},
		{"last wins", []string{"--gender", "male", "--gender=female"}, "female", true, false},
		{"absent", []string{"--period"}, "", false, false},
		{"missing value", []string{"--gender"}, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := flagValue(tt.args, "--gender")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("flagValue = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFlagValues(t *testing.T) {
	got, err := flagValues([]string{"--bias", "China=10", "--bias=Japan=2", "--x"}, "--bias")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"China=10", "Japan=2"}; !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSimpleCommands(t *testing.T) {
	tests := []struct {
		cmd   string
		args  []string
		check func(string) bool
	}{
		{"cid", nil, validate.CID},
		{"gender", nil, validate.Gender},
		{"course", nil, validate.Course},
		{"title", []string{"--gender", "male"}, func(s string) bool { return s == "Mr" }},
		{"title", []string{"--gender", "nonbinary", "--period"}, func(s string) bool { return s == "Mx." }},
		{"country", []string{"--bias", "China=1000000"}, func(s string) bool { return s == "China" }},
		{"name", []string{"--gender", "female", "--country", "Germany"}, validate.Name},
		{"username", []string{"John", "Smith"}, validate.Username},
		{"email", nil, validate.Email},
	}

	for _, tt := range tests {
		t.Run(tt.cmd+" "+strings.Join(tt.args, " "), func(t *testing.T) {
			r, out, _ := newTestRunner(t)
			if err := r.Run(tt.cmd, tt.args); err != nil {
				t.Fatalf("run: %v", err)
			}
			got := strings.TrimSpace(out.String())
			if !tt.check(got) {
				t.Errorf("%s printed %q", tt.cmd, got)
			}
		})
	}
}

func TestEmailDomain(t *testing.T) {
	r, out, _ := newTestRunner(t)
	r.Domain = "uni.example.org"
	if err := r.Run("email", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out.String()), "@uni.example.org") {
		t.Errorf("got %q", out.String())
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     string
		args    []string
		wantErr error
	}{
		{"unknown", "burn", nil, ErrUnknownCommand},
		{"bad title gender", "title", []string{"--gender", "robot"}, identity.ErrInvalidArgument},
		{"bias without weight", "country", []string{"--bias", "China"}, ErrUsage},
		{"bias bad weight", "country", []string{"--bias", "China=lots"}, ErrUsage},
		{"username no args", "username", nil, ErrUsage},
		{"username no letters", "username", []string{"123"}, identity.ErrInvalidArgument},
		{"cohort bad n", "cohort", []string{"--n", "ten"}, ErrUsage},
		{"cohort negative n", "cohort", []string{"--n", "-1"}, identity.ErrInvalidArgument},
		{"assignment bad mean", "assignment", []string{"--mean", "x"}, ErrUsage},
		{"validate missing value", "validate", []string{"cid"}, ErrUsage},
		{"validate unknown kind", "validate", []string{"shoe", "9"}, ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRunner(t)
			err := r.Run(tt.cmd, tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCmdIdentity(t *testing.T) {
	r, out, _ := newTestRunner(t)
	if err := r.Run("identity", nil); err != nil {
		t.Fatal(err)
	}
	for _, label := range []string{"cid:", "name:", "username:", "email:", "github:", "tutor:"} {
		if !strings.Contains(out.String(), label) {
			t.Errorf("output missing %q:\n%s", label, out.String())
		}
	}
}

func TestCmdIdentityJSON(t *testing.T) {
	r, out, _ := newTestRunner(t)
	if err := r.Run("identity", []string{"--json"}); err != nil {
		t.Fatal(err)
	}

	var id identity.Identity
	if err := json.Unmarshal(out.Bytes(), &id); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !validate.CID(id.CID) || !validate.Username(id.Username) {
		t.Errorf("unexpected identity %+v", id)
	}
}

func TestCmdCohort(t *testing.T) {
	r, out, _ := newTestRunner(t)
	if err := r.Run("cohort", []string{"--n", "4"}); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), "\n"); n != 4 {
		t.Errorf("got %d lines, want 4:\n%s", n, out.String())
	}
}

func TestCmdCohortJSON(t *testing.T) {
	r, out, _ := newTestRunner(t)
	if err := r.Run("cohort", []string{"--n=3", "--json"}); err != nil {
		t.Fatal(err)
	}

	var c cohort.Cohort
	if err := json.Unmarshal(out.Bytes(), &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(c.Students) != 3 {
		t.Errorf("got %d students, want 3", len(c.Students))
	}
}

func TestCmdCohortOut(t *testing.T) {
	r, out, fs := newTestRunner(t)
	if err := r.Run("cohort", []string{"--n", "2", "--out", "exports"}); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected stdout: %q", out.String())
	}

	data, err := fs.ReadFile("exports/cohort.csv")
	if err != nil {
		t.Fatalf("cohort.csv not written: %v", err)
	}
	if n := strings.Count(string(data), "\n"); n != 3 {
		t.Errorf("got %d csv lines, want 3", n)
	}
}

func TestCmdCohortOutNamed(t *testing.T) {
	r, _, fs := newTestRunner(t)
	args := []string{"--n", "2", "--out", "exports", "--name", "ACSE 2024/25 Intake"}
	if err := r.Run("cohort", args); err != nil {
		t.Fatal(err)
	}

	if _, err := fs.ReadFile("exports/acse-2024-25-intake.csv"); err != nil {
		t.Fatalf("named export not written: %v", err)
	}
	if _, err := fs.ReadFile("exports/cohort.csv"); err == nil {
		t.Error("named export should not also write cohort.csv")
	}
}

func TestCmdAssignment(t *testing.T) {
	r, out, _ := newTestRunner(t)
	args := []string{"--n", "5", "--mean", "50", "--stdev", "1", "--fail", "0", "--no-feedback", "--json"}
	if err := r.Run("assignment", args); err != nil {
		t.Fatal(err)
	}

	var a cohort.Assignment
	if err := json.Unmarshal(out.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(a.Rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(a.Rows))
	}
	for _, row := range a.Rows {
		if row.Mark < 40 || row.Mark > 60 {
			t.Errorf("mark %v far from mean 50", row.Mark)
		}
		if row.Feedback != "" {
			t.Errorf("unexpected feedback for %s", row.Username)
		}
	}
}

func TestCmdAssignmentCSV(t *testing.T) {
	r, out, _ := newTestRunner(t)
	if err := r.Run("assignment", []string{"--n", "2", "--no-feedback"}); err != nil {
		t.Fatal(err)
	}
	re := regexp.MustCompile(`^username,mark,feedback\n([a-z]{1,3}[1-9][0-9]+,[0-9]+\.[0-9]{2},\n){2}$`)
	if !re.MatchString(out.String()) {
		t.Errorf("unexpected csv:\n%s", out.String())
	}
}

func TestCmdValidate(t *testing.T) {
	tests := []struct {
		kind  string
		value []string
		valid bool
	}{
		{"email", []string{"a@b.co"}, true},
		{"email", []string{"nope"}, false},
		{"username", []string{"js123"}, true},
		{"cid", []string{"01234567"}, true},
		{"name", []string{"Anne-Marie", "Smith"}, true},
		{"title", []string{"Dr"}, true},
		{"course", []string{"ppe"}, false},
		{"gender", []string{"female"}, true},
		{"fee_status", []string{"home", "-", "elq"}, true},
		{"country", []string{"United", "Kingdom"}, true},
		{"country", []string{"Atlantis"}, false},
		{"mark", []string{"65.5"}, true},
		{"mark", []string{"101"}, false},
		{"mark", []string{"abc"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind+" "+strings.Join(tt.value, " "), func(t *testing.T) {
			r, out, _ := newTestRunner(t)
			err := r.Run("validate", append([]string{tt.kind}, tt.value...))
			if tt.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if strings.TrimSpace(out.String()) != "valid" {
					t.Errorf("printed %q", out.String())
				}
				return
			}
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("err = %v, want ErrInvalidValue", err)
			}
		})
	}
}
