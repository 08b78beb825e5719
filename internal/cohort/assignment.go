package cohort

import (
	"errors"
	"fmt"

	"github.com/zarlcorp/zcohort/internal/identity"
	"github.com/zarlcorp/zcohort/internal/validate"
)

// Row is one student's result on an assignment.
type Row struct {
	Username string  `json:"username"`
	Mark     float64 `json:"mark"`
	Feedback string  `json:"feedback,omitempty"`
}

// Assignment is a mark sheet.
type Assignment struct {
	Rows []Row `json:"rows"`
}

// AssignmentOptions controls how marks and feedback are drawn.
type AssignmentOptions struct {
	Mean            float64
	Stdev           float64
	FailProbability float64
	Feedback        bool
	MinParagraphs   int
	MaxParagraphs   int
}

// DefaultAssignmentOptions returns a mean of 65, standard deviation 6, a 2%
// chance of a zero mark and 1-3 paragraphs of feedback.
func DefaultAssignmentOptions() AssignmentOptions {
	return AssignmentOptions{
		Mean:            65,
		Stdev:           6,
		FailProbability: 0.02,
		Feedback:        true,
		MinParagraphs:   1,
		MaxParagraphs:   3,
	}
}

// NewAssignment draws a mark, and feedback when enabled, for each username.
func NewAssignment(g *identity.Generator, usernames []string, opts AssignmentOptions) Assignment {
	a := Assignment{Rows: make([]Row, len(usernames))}
	for i, u := range usernames {
		a.Rows[i] = Row{
			Username: u,
			Mark:     g.Mark(opts.Mean, opts.Stdev, opts.FailProbability),
		}
		if opts.Feedback {
			a.Rows[i].Feedback = g.Feedback(opts.MinParagraphs, opts.MaxParagraphs)
		}
	}
	return a
}

// ValidateAssignment checks that usernames are valid and unique, that marks
// are in [0, 100] and, when validUsernames is non-empty, that every row
// belongs to it. A malformed entry in validUsernames is an
// identity.ErrInvalidArgument rather than a record problem.
func ValidateAssignment(a Assignment, validUsernames []string) error {
	var members map[string]bool
	if len(validUsernames) > 0 {
		members = make(map[string]bool, len(validUsernames))
		for _, u := range validUsernames {
			if !validate.Username(u) {
				return fmt.Errorf("valid usernames: %q: %w", u, identity.ErrInvalidArgument)
			}
			members[u] = true
		}
	}

	var errs []error
	seen := make(map[string]bool, len(a.Rows))
	for i, r := range a.Rows {
		if !validate.Username(r.Username) {
			errs = append(errs, fmt.Errorf("row %d: username %q: %w", i, r.Username, ErrInvalidRecord))
		}
		if seen[r.Username] {
			errs = append(errs, fmt.Errorf("row %d: duplicate username %q: %w", i, r.Username, ErrInvalidRecord))
		}
		seen[r.Username] = true

		if members != nil && !members[r.Username] {
			errs = append(errs, fmt.Errorf("row %d: unknown username %q: %w", i, r.Username, ErrInvalidRecord))
		}
		if !validate.Mark(r.Mark) {
			errs = append(errs, fmt.Errorf("row %d: mark %v: %w", i, r.Mark, ErrInvalidRecord))
		}
	}

	return errors.Join(errs...)
}
