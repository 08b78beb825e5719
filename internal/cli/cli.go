// Package cli implements zcohort's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zcohort/internal/cohort"
	"github.com/zarlcorp/zcohort/internal/identity"
	"github.com/zarlcorp/zcohort/internal/validate"
)

var (
	// ErrUnknownCommand is returned by Run for an unrecognised command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command's arguments are malformed.
	ErrUsage = errors.New("usage")
	// ErrInvalidValue is returned by the validate command for a rejected value.
	ErrInvalidValue = errors.New("invalid")
)

const defaultCohortSize = 10

// Runner runs subcommands against one generator.
type Runner struct {
	Out     io.Writer
	Err     io.Writer
	Gen     *identity.Generator
	Profile identity.Profile
	// Domain overrides the email command's random domain.
	Domain string
	// FS is where cohort --out writes.
	FS zfilesystem.ReadWriteFileFS
}

// Run dispatches cmd with its arguments.
func (r *Runner) Run(cmd string, args []string) error {
	switch cmd {
	case "cid":
		return r.CmdCID()
	case "gender":
		return r.CmdGender()
	case "title":
		return r.CmdTitle(args)
	case "course":
		return r.CmdCourse()
	case "country":
		return r.CmdCountry(args)
	case "name":
		return r.CmdName(args)
	case "username":
		return r.CmdUsername(args)
	case "email":
		return r.CmdEmail()
	case "identity":
		return r.CmdIdentity(args)
	case "cohort":
		return r.CmdCohort(args)
	case "assignment":
		return r.CmdAssignment(args)
	case "validate":
		return r.CmdValidate(args)
	}
	return fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
}

// CmdCID prints a candidate identifier.
func (r *Runner) CmdCID() error {
	fmt.Fprintln(r.Out, r.Gen.CID())
	return nil
}

// CmdGender prints a gender drawn from the default distribution.
func (r *Runner) CmdGender() error {
	g, err := r.Gen.Gender(nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, g)
	return nil
}

// CmdTitle prints a title, optionally for --gender and with --period.
func (r *Runner) CmdTitle(args []string) error {
	gender, _, err := flagValue(args, "--gender")
	if err != nil {
		return err
	}
	t, err := r.Gen.Title(gender, hasFlag(args, "--period"))
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, t)
	return nil
}

// CmdCourse prints a course.
func (r *Runner) CmdCourse() error {
	c, err := r.Gen.Course(nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, c)
	return nil
}

// CmdCountry prints a country. Each --bias Name=weight overrides one
// country's weight.
func (r *Runner) CmdCountry(args []string) error {
	pairs, err := flagValues(args, "--bias")
	if err != nil {
		return err
	}

	var bias map[string]float64
	for _, p := range pairs {
		name, w, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("--bias %q: want Name=weight: %w", p, ErrUsage)
		}
		weight, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return fmt.Errorf("--bias %q: %w", p, ErrUsage)
		}
		if bias == nil {
			bias = make(map[string]float64)
		}
		bias[strings.TrimSpace(name)] = weight
	}

	c, err := r.Gen.Country(bias)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, c)
	return nil
}

// CmdName prints "First Last" for the optional --gender and --country.
func (r *Runner) CmdName(args []string) error {
	gender, _, err := flagValue(args, "--gender")
	if err != nil {
		return err
	}
	country, _, err := flagValue(args, "--country")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, r.Gen.Name(gender, country))
	return nil
}

// CmdUsername prints a username for the full name given as arguments.
func (r *Runner) CmdUsername(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("username <full name>: %w", ErrUsage)
	}
	u, err := r.Gen.Username(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, u)
	return nil
}

// CmdEmail prints a random email address.
func (r *Runner) CmdEmail() error {
	fmt.Fprintln(r.Out, r.Gen.Email(r.Domain))
	return nil
}

// CmdIdentity generates and prints a complete identity.
func (r *Runner) CmdIdentity(args []string) error {
	id, err := r.Gen.Generate(r.Profile)
	if err != nil {
		return err
	}
	if hasFlag(args, "--json") {
		return printJSON(r.Out, id)
	}
	printIdentity(r.Out, id)
	return nil
}

// CmdCohort generates --n students. --out writes a CSV into a directory,
// named after --name when given; otherwise the cohort is printed as a
// table or --json.
func (r *Runner) CmdCohort(args []string) error {
	n, err := intFlag(args, "--n", defaultCohortSize)
	if err != nil {
		return err
	}

	c, err := cohort.New(r.Gen, n, r.Profile)
	if err != nil {
		return err
	}

	if dir, ok, err := flagValue(args, "--out"); err != nil {
		return err
	} else if ok {
		name, _, err := flagValue(args, "--name")
		if err != nil {
			return err
		}
		p, err := cohort.Export(r.FS, dir, name, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.Err, "wrote %s\n", p)
		return nil
	}

	if hasFlag(args, "--json") {
		return printJSON(r.Out, c)
	}
	for _, s := range c.Students {
		fmt.Fprintf(r.Out, "  %-8s %-28s %-10s %-6s %s\n",
			s.CID, s.FullName(), s.Username, s.Course, s.Nationality)
	}
	return nil
}

// CmdAssignment generates marks and feedback for a fresh cohort of --n
// students.
func (r *Runner) CmdAssignment(args []string) error {
	n, err := intFlag(args, "--n", defaultCohortSize)
	if err != nil {
		return err
	}

	opts := cohort.DefaultAssignmentOptions()
	if opts.Mean, err = floatFlag(args, "--mean", opts.Mean); err != nil {
		return err
	}
	if opts.Stdev, err = floatFlag(args, "--stdev", opts.Stdev); err != nil {
		return err
	}
	if opts.FailProbability, err = floatFlag(args, "--fail", opts.FailProbability); err != nil {
		return err
	}
	opts.Feedback = !hasFlag(args, "--no-feedback")

	c, err := cohort.New(r.Gen, n, r.Profile)
	if err != nil {
		return err
	}
	a := cohort.NewAssignment(r.Gen, c.Usernames(), opts)

	if hasFlag(args, "--json") {
		return printJSON(r.Out, a)
	}
	return cohort.WriteAssignmentCSV(r.Out, a)
}

// CmdValidate checks value against the validator for kind and prints
// "valid", or returns ErrInvalidValue.
func (r *Runner) CmdValidate(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("validate <kind> <value>: %w", ErrUsage)
	}
	kind, value := args[0], strings.Join(args[1:], " ")

	var ok bool
	switch kind {
	case "email":
		ok = validate.Email(value)
	case "username":
		ok = validate.Username(value)
	case "cid":
		ok = validate.CID(value)
	case "name":
		ok = validate.Name(value)
	case "title":
		ok = validate.Title(value)
	case "course":
		ok = validate.Course(value)
	case "gender":
		ok = validate.Gender(value)
	case "fee_status":
		ok = validate.FeeStatus(value)
	case "country":
		ok = validate.Country(r.Gen.Data(), value)
	case "mark":
		m, err := strconv.ParseFloat(value, 64)
		ok = err == nil && validate.Mark(m)
	default:
		return fmt.Errorf("validate: unknown kind %q: %w", kind, ErrUsage)
	}

	if !ok {
		return fmt.Errorf("%s %q: %w", kind, value, ErrInvalidValue)
	}
	fmt.Fprintln(r.Out, "valid")
	return nil
}

func printIdentity(w io.Writer, id identity.Identity) {
	fmt.Fprintf(w, "  cid:         %s\n", id.CID)
	fmt.Fprintf(w, "  name:        %s %s\n", id.Title, id.FullName())
	fmt.Fprintf(w, "  gender:      %s\n", id.Gender)
	fmt.Fprintf(w, "  nationality: %s\n", id.Nationality)
	fmt.Fprintf(w, "  course:      %s\n", id.Course)
	fmt.Fprintf(w, "  username:    %s\n", id.Username)
	fmt.Fprintf(w, "  email:       %s\n", id.Email)
	fmt.Fprintf(w, "  personal:    %s\n", id.PersonalEmail)
	fmt.Fprintf(w, "  github:      %s\n", id.GitHub)
	fmt.Fprintf(w, "  fee status:  %s\n", id.FeeStatus)
	fmt.Fprintf(w, "  tutor:       %s\n", id.Tutor)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
