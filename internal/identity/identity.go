// Package identity generates synthetic student identities.
// Every value is drawn from the generator's own seeded source, so a fixed
// seed reproduces the same output.
package identity

import (
	"fmt"
	"maps"

	"github.com/zarlcorp/zcohort/internal/sample"
)

// Identity holds a complete generated student.
type Identity struct {
	CID              string `json:"cid"`
	Gender           string `json:"gender"`
	Nationality      string `json:"nationality"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Title            string `json:"title"`
	Course           string `json:"course"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	PersonalEmail    string `json:"personal_email"`
	GitHub           string `json:"github"`
	FeeStatus        string `json:"fee_status"`
	EnrollmentStatus string `json:"enrollment_status"`
	Tutor            string `json:"tutor"`
}

// FullName returns "First Last".
func (id Identity) FullName() string {
	return id.FirstName + " " + id.LastName
}

// Profile holds the distributions a generated identity is drawn from.
type Profile struct {
	// Domain is the institution email domain.
	Domain      string
	Genders     sample.Distribution
	Courses     sample.Distribution
	CountryBias map[string]float64
	// Tutors is the pool tutors are picked from. When empty, every identity
	// gets a freshly generated tutor.
	Tutors []string
	// TutorCount sizes the pool a cohort draws when Tutors is empty.
	// Zero means DefaultTutors.
	TutorCount int
}

// DefaultProfile returns the distributions of a typical intake.
func DefaultProfile() Profile {
	return Profile{
		Domain:      defaultInstitution,
		Genders:     studentGenders.Clone(),
		Courses:     defaultCourses.Clone(),
		CountryBias: maps.Clone(studentCountryBias),
	}
}

// Validate checks the profile's distributions. Nil distributions are valid
// and mean the defaults, as in Generate.
func (p Profile) Validate() error {
	if p.Genders != nil {
		if _, err := sample.NewChooser(p.Genders); err != nil {
			return fmt.Errorf("genders: %w", err)
		}
	}
	if p.Courses != nil {
		if _, err := sample.NewChooser(p.Courses); err != nil {
			return fmt.Errorf("courses: %w", err)
		}
	}
	if p.TutorCount < 0 {
		return fmt.Errorf("tutor count %d: %w", p.TutorCount, ErrInvalidArgument)
	}
	for country, w := range p.CountryBias {
		if w < 0 {
			return fmt.Errorf("country bias %q: %w", country, sample.ErrInvalidDistribution)
		}
	}
	return nil
}
