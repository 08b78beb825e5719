// Package cohort generates and checks whole student cohorts and the
// assignment mark sheets that go with them.
package cohort

import (
	"errors"
	"fmt"

	"github.com/zarlcorp/zcohort/internal/corpus"
	"github.com/zarlcorp/zcohort/internal/identity"
	"github.com/zarlcorp/zcohort/internal/validate"
)

// ErrInvalidRecord is wrapped by every problem Validate and
// ValidateAssignment report.
var ErrInvalidRecord = errors.New("invalid record")

// maxCollisions bounds consecutive duplicate usernames before New gives up.
var maxCollisions = 1000

// Cohort is a group of students sharing one tutor pool.
type Cohort struct {
	Tutors   []string            `json:"tutors"`
	Students []identity.Identity `json:"students"`
}

// Usernames returns the students' usernames in order.
func (c Cohort) Usernames() []string {
	out := make([]string, len(c.Students))
	for i, s := range c.Students {
		out[i] = s.Username
	}
	return out
}

// New generates n students from p. When p has no tutors a pool of
// p.TutorCount names is drawn once for the whole cohort.
func New(g *identity.Generator, n int, p identity.Profile) (Cohort, error) {
	if n < 0 {
		return Cohort{}, fmt.Errorf("cohort size %d: %w", n, identity.ErrInvalidArgument)
	}
	if err := p.Validate(); err != nil {
		return Cohort{}, fmt.Errorf("cohort: %w", err)
	}

	if len(p.Tutors) == 0 {
		size := p.TutorCount
		if size == 0 {
			size = identity.DefaultTutors
		}
		p.Tutors = g.Tutors(size)
	}

	c := Cohort{
		Tutors:   p.Tutors,
		Students: make([]identity.Identity, 0, n),
	}

	// usernames only have a few thousand values per initials pair
	seen := make(map[string]bool, n)
	collisions := 0
	for len(c.Students) < n {
		id, err := g.Generate(p)
		if err != nil {
			return Cohort{}, fmt.Errorf("cohort: student %d: %w", len(c.Students), err)
		}
		if seen[id.Username] {
			collisions++
			if collisions > maxCollisions {
				return Cohort{}, fmt.Errorf("cohort: no unique usernames left after %d students: %w",
					len(c.Students), identity.ErrInvalidArgument)
			}
			continue
		}
		collisions = 0
		seen[id.Username] = true
		c.Students = append(c.Students, id)
	}

	return c, nil
}

// Validate checks every field of every student and that usernames are
// unique. All problems are joined into the returned error.
func Validate(c Cohort, d *corpus.Data) error {
	var errs []error
	bad := func(i int, field, value string) {
		errs = append(errs, fmt.Errorf("student %d: %s %q: %w", i, field, value, ErrInvalidRecord))
	}

	seen := make(map[string]int, len(c.Students))
	for i, s := range c.Students {
		if !validate.CID(s.CID) {
			bad(i, "cid", s.CID)
		}
		if !validate.Gender(s.Gender) {
			bad(i, "gender", s.Gender)
		}
		if !validate.Country(d, s.Nationality) {
			bad(i, "nationality", s.Nationality)
		}
		if !validate.Name(s.FullName()) {
			bad(i, "name", s.FullName())
		}
		if !validate.Title(s.Title) {
			bad(i, "title", s.Title)
		}
		if !validate.Course(s.Course) {
			bad(i, "course", s.Course)
		}
		if !validate.Username(s.Username) {
			bad(i, "username", s.Username)
		}
		if !validate.Email(s.Email) {
			bad(i, "email", s.Email)
		}
		if !validate.Email(s.PersonalEmail) {
			bad(i, "personal email", s.PersonalEmail)
		}
		if !validate.FeeStatus(s.FeeStatus) {
			bad(i, "fee status", s.FeeStatus)
		}

		if j, dup := seen[s.Username]; dup {
			errs = append(errs, fmt.Errorf("student %d: username %q already used by student %d: %w",
				i, s.Username, j, ErrInvalidRecord))
			continue
		}
		seen[s.Username] = i
	}

	return errors.Join(errs...)
}
