// Package validate checks the structure of generated identity fields.
package validate

import (
	"math"
	"regexp"

	"github.com/zarlcorp/zcohort/internal/corpus"
)

var (
	emailRe     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRe  = regexp.MustCompile(`^[a-z]{1,3}[1-9][0-9]{1,4}$`)
	cidRe       = regexp.MustCompile(`^0[12][0-9]{6}$`)
	nameRe      = regexp.MustCompile(`^([A-Z][a-z]*)([-\s](([A-Z][a-z]*)|\([A-Z][a-z]*\)))*$`)
	titleRe     = regexp.MustCompile(`^(Mr|Ms|Mrs|Mx|Miss|Dr)$`)
	courseRe    = regexp.MustCompile(`^(acse|edsml|gems)$`)
	genderRe    = regexp.MustCompile(`^(male|female|nonbinary)$`)
	feeStatusRe = regexp.MustCompile(`^(home|overseas|home - elq)$`)
)

// extra country spellings accepted on top of the corpus
var countryExtras = map[string]bool{
	"Taiwan":   true,
	"Syria":    true,
	"Columbia": true,
	"Turkey":   true,
}

// Email reports whether s looks like local@domain.tld.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Username reports whether s is 1-3 lowercase letters followed by a 2-5
// digit number not starting with 0.
func Username(s string) bool {
	return usernameRe.MatchString(s)
}

// CID reports whether s is an 8-digit candidate identifier.
func CID(s string) bool {
	return cidRe.MatchString(s)
}

// Name reports whether s is a capitalised name, e.g. "Anne-Marie Smith".
func Name(s string) bool {
	return nameRe.MatchString(s)
}

// Title reports whether s is a known title, without a trailing period.
func Title(s string) bool {
	return titleRe.MatchString(s)
}

// Course reports whether s is one of the offered course codes.
func Course(s string) bool {
	return courseRe.MatchString(s)
}

// Gender reports whether s is a known gender label.
func Gender(s string) bool {
	return genderRe.MatchString(s)
}

// FeeStatus reports whether s is a recognised fee status.
func FeeStatus(s string) bool {
	return feeStatusRe.MatchString(s)
}

// Country reports whether s names a country known to d.
func Country(d *corpus.Data, s string) bool {
	if countryExtras[s] {
		return true
	}
	_, ok := d.Canonical(s)
	return ok
}

// Mark reports whether m is a finite mark in [0, 100].
func Mark(m float64) bool {
	return !math.IsNaN(m) && m >= 0 && m <= 100
}
