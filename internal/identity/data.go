package identity

import "github.com/zarlcorp/zcohort/internal/sample"

// DefaultDomain is the fallback email domain.
const DefaultDomain = "example.ac.uk"

// Genders are the labels the title generator understands.
var Genders = []string{"male", "female", "nonbinary"}

// Titles are all titles Title can return, without periods.
var Titles = []string{"Mr", "Ms", "Mrs", "Miss", "Mx"}

// Courses is the label order Course applies positional weights to.
var Courses = []string{"acse", "edsml", "gems"}

var defaultGenders = sample.Distribution{"male": 0.49, "female": 0.50, "nonbinary": 0.01}

var defaultCourses = sample.Distribution{"acse": 0.4, "edsml": 0.4, "gems": 0.2}

// titles by gender; "" is the unspecified gender
var titlesByGender = map[string]sample.Distribution{
	"":          sample.Uniform(Titles...),
	"male":      {"Mr": 1},
	"female":    sample.Uniform("Ms", "Mrs", "Miss"),
	"nonbinary": {"Mx": 1},
}

// student defaults
var (
	studentGenders = sample.Distribution{"male": 0.65, "female": 0.34, "nonbinary": 0.01}

	studentCountryBias = map[string]float64{
		"China":          1800,
		"United Kingdom": 350,
		"India":          150,
		"United States":  100,
		"Germany":        100,
		"France":         100,
		"Hong Kong":      100,
		"Spain":          100,
		"Italy":          100,
		"Netherlands":    80,
		"Canada":         80,
	}
)

// DefaultTutors is the size of a cohort's tutor pool.
const DefaultTutors = 25

const (
	homeCountry        = "United Kingdom"
	feeHome            = "home"
	feeOverseas        = "overseas"
	enrolled           = "enrolled"
	maxNameAttempts    = 10
	defaultInstitution = "university.ac.uk"
)

// DefaultGenders returns the distribution Gender draws from by default.
func DefaultGenders() sample.Distribution {
	return defaultGenders.Clone()
}

// DefaultCourses returns the distribution Course draws from by default.
func DefaultCourses() sample.Distribution {
	return defaultCourses.Clone()
}
