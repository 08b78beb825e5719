package identity

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"slices"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jaswdr/faker"
	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/zcohort/internal/corpus"
	"github.com/zarlcorp/zcohort/internal/sample"
	"github.com/zarlcorp/zcohort/internal/validate"
)

// ErrInvalidArgument is returned when a caller passes a value a generator
// does not understand.
var ErrInvalidArgument = errors.New("invalid argument")

// Generator produces identity fields from a single seeded source.
// It is not safe for concurrent use.
type Generator struct {
	data  *corpus.Data
	rng   *rand.Rand
	names faker.Faker
	fake  *gofakeit.Faker
}

// Option configures a Generator.
type Option func(*options)

type options struct {
	seed   int64
	seeded bool
}

// WithSeed makes the generator's output reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// New creates a generator over the given reference data.
func New(data *corpus.Data, opts ...Option) *Generator {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if !o.seeded {
		o.seed = randomSeed()
	}

	g := &Generator{data: data}
	g.Reseed(o.seed)
	return g
}

// Reseed resets every random source the generator uses.
func (g *Generator) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.names = faker.NewWithSeed(rand.NewSource(g.rng.Int63()))
	// gofakeit treats 0 as "seed from the clock"
	g.fake = gofakeit.New(g.rng.Uint64() | 1)
}

// Data returns the reference data the generator draws from.
func (g *Generator) Data() *corpus.Data {
	return g.data
}

// CID generates an 8-digit candidate identifier: 0, then 1 or 2, then six
// random digits.
func (g *Generator) CID() string {
	var b [8]byte
	b[0] = '0'
	b[1] = byte('1' + g.rng.Intn(2))
	for i := 2; i < len(b); i++ {
		b[i] = byte('0' + g.rng.Intn(10))
	}
	return string(b[:])
}

// Gender draws a gender label. A nil distribution uses DefaultGenders.
func (g *Generator) Gender(d sample.Distribution) (string, error) {
	if d == nil {
		d = defaultGenders
	}
	return g.draw("gender", d)
}

// Title draws a title matching gender. An empty gender draws from all
// titles.
func (g *Generator) Title(gender string, usePeriod bool) (string, error) {
	d, ok := titlesByGender[gender]
	if !ok {
		return "", fmt.Errorf("title for gender %q: %w", gender, ErrInvalidArgument)
	}

	t, err := g.draw("title", d)
	if err != nil {
		return "", err
	}
	if usePeriod {
		t += "."
	}
	return t, nil
}

// Course draws a course. probabilities are applied positionally to Courses;
// nil uses DefaultCourses.
func (g *Generator) Course(probabilities []float64) (string, error) {
	if probabilities == nil {
		return g.draw("course", defaultCourses)
	}

	if len(probabilities) != len(Courses) {
		return "", fmt.Errorf("course: %d probabilities for %d courses: %w",
			len(probabilities), len(Courses), ErrInvalidArgument)
	}

	d := make(sample.Distribution, len(Courses))
	for i, c := range Courses {
		d[c] = probabilities[i]
	}
	return g.draw("course", d)
}

// Country draws a country. Every known country has weight 1 unless bias
// overrides it. Bias keys may use aliases such as "Hong Kong".
func (g *Generator) Country(bias map[string]float64) (string, error) {
	names := g.data.Countries()
	d := make(sample.Distribution, len(names)+len(bias))
	for _, n := range names {
		d[n] = 1
	}
	// exact names first so an alias always wins over its canonical spelling
	var aliases []string
	for n, w := range bias {
		if canon, ok := g.data.Canonical(n); ok && canon != n {
			aliases = append(aliases, n)
			continue
		}
		d[n] = w
	}
	slices.Sort(aliases)
	for _, n := range aliases {
		canon, _ := g.data.Canonical(n)
		d[canon] = bias[n]
	}
	return g.draw("country", d)
}

// Locale returns the locale names for country are drawn from.
func (g *Generator) Locale(country string) (string, bool) {
	l, err := g.data.Locale(country)
	if err != nil {
		return "", false
	}
	return l.String(), true
}

// Name generates "First Last" for the gender and country. Unknown or empty
// values fall back to the default locale.
func (g *Generator) Name(gender, country string) string {
	first, last := g.nameParts(gender, country)
	return first + " " + last
}

func (g *Generator) nameParts(gender, country string) (first, last string) {
	loc := g.locale(country)
	for range maxNameAttempts {
		first, last = g.drawName(loc, gender)
		first, last = corpus.Romanize(first), corpus.Romanize(last)
		if validate.Name(first + " " + last) {
			return first, last
		}
		// the default corpus has names like O'Hara; retry
		loc = g.data.Default()
	}

	first, last, _ = g.data.Fallback().Name(g.rng, gender)
	return first, last
}

func (g *Generator) locale(country string) corpus.Locale {
	if country == "" {
		return g.data.Default()
	}

	l, err := g.data.Locale(country)
	if err != nil {
		slog.Debug("using default locale", "country", country, "err", err)
		return g.data.Default()
	}
	return l
}

func (g *Generator) drawName(loc corpus.Locale, gender string) (first, last string) {
	if first, last, ok := loc.Name(g.rng, gender); ok {
		return first, last
	}

	p := g.names.Person()
	switch gender {
	case "male":
		return p.FirstNameMale(), p.LastName()
	case "female":
		return p.FirstNameFemale(), p.LastName()
	}
	if g.rng.Intn(2) == 0 {
		return p.FirstNameMale(), p.LastName()
	}
	return p.FirstNameFemale(), p.LastName()
}

// Username derives a username from a full name: the first letter of the
// first name, the first letter of the surname, sometimes one more surname
// letter, then a 2-4 digit number that never starts with 0.
func (g *Generator) Username(fullName string) (string, error) {
	tokens := strings.Fields(strings.ToLower(corpus.Romanize(fullName)))
	if len(tokens) == 0 {
		return "", fmt.Errorf("username: empty name: %w", ErrInvalidArgument)
	}

	first := letters(tokens[0])
	last := letters(tokens[len(tokens)-1])
	if len(first) == 0 || len(last) == 0 {
		return "", fmt.Errorf("username: no letters in %q: %w", fullName, ErrInvalidArgument)
	}

	var b strings.Builder
	b.WriteByte(first[0])
	b.WriteByte(last[0])
	if len(last) > 1 && g.rng.Intn(2) == 1 {
		b.WriteByte(last[1+g.rng.Intn(len(last)-1)])
	}

	digits := 2 + g.rng.Intn(3)
	b.WriteByte(byte('1' + g.rng.Intn(9)))
	for i := 1; i < digits; i++ {
		b.WriteByte(byte('0' + g.rng.Intn(10)))
	}

	return b.String(), nil
}

// Email generates username@domain for a random name. An empty domain draws
// a random one.
func (g *Generator) Email(domain string) string {
	return g.emailFor(g.Name("", ""), domain)
}

func (g *Generator) emailFor(name, domain string) string {
	user, err := g.Username(name)
	if err != nil {
		// generated names always pass validate.Name
		panic("identity: " + err.Error())
	}
	if domain == "" {
		domain = g.randomDomain()
	}
	return user + "@" + domain
}

func (g *Generator) randomDomain() string {
	d := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		}
		return -1
	}, strings.ToLower(g.fake.DomainName()))

	if !validate.Email("x@" + d) {
		return DefaultDomain
	}
	return d
}

// Mark draws a mark in [0, 100] from a normal distribution, rounded to two
// decimals. With probability failProbability the mark is 0.
func (g *Generator) Mark(mean, stdev, failProbability float64) float64 {
	if g.rng.Float64() < failProbability {
		return 0
	}
	m := g.rng.NormFloat64()*stdev + mean
	m = math.Min(math.Max(m, 0), 100)
	return math.Round(m*100) / 100
}

// Feedback generates between minParagraphs and maxParagraphs paragraphs of
// placeholder text separated by blank lines.
func (g *Generator) Feedback(minParagraphs, maxParagraphs int) string {
	if minParagraphs < 1 {
		minParagraphs = 1
	}
	if maxParagraphs < minParagraphs {
		maxParagraphs = minParagraphs
	}

	n := minParagraphs + g.rng.Intn(maxParagraphs-minParagraphs+1)
	lorem := g.names.Lorem()
	paragraphs := make([]string, n)
	for i := range paragraphs {
		paragraphs[i] = lorem.Paragraph(3 + g.rng.Intn(4))
	}
	return strings.Join(paragraphs, "\n\n")
}

// Generate produces a complete identity from the profile. Gender, course
// and nationality are drawn first; the name follows gender and nationality,
// the title follows gender and the username follows the name.
func (g *Generator) Generate(p Profile) (Identity, error) {
	gender, err := g.Gender(p.Genders)
	if err != nil {
		return Identity{}, fmt.Errorf("generate: %w", err)
	}

	courses := p.Courses
	if courses == nil {
		courses = defaultCourses
	}
	course, err := g.draw("course", courses)
	if err != nil {
		return Identity{}, fmt.Errorf("generate: %w", err)
	}

	nationality, err := g.Country(p.CountryBias)
	if err != nil {
		return Identity{}, fmt.Errorf("generate: %w", err)
	}

	title, err := g.Title(gender, false)
	if err != nil {
		return Identity{}, fmt.Errorf("generate: %w", err)
	}

	first, last := g.nameParts(gender, nationality)
	username, err := g.Username(first + " " + last)
	if err != nil {
		return Identity{}, fmt.Errorf("generate: %w", err)
	}

	domain := p.Domain
	if domain == "" {
		domain = DefaultDomain
	}

	fee := feeOverseas
	if nationality == homeCountry {
		fee = feeHome
	}

	return Identity{
		CID:              g.CID(),
		Gender:           gender,
		Nationality:      nationality,
		FirstName:        first,
		LastName:         last,
		Title:            title,
		Course:           course,
		Username:         username,
		Email:            username + "@" + domain,
		PersonalEmail:    g.Email(""),
		GitHub:           course + "-" + username,
		FeeStatus:        fee,
		EnrollmentStatus: enrolled,
		Tutor:            g.tutor(p.Tutors),
	}, nil
}

// Tutors generates n tutor names.
func (g *Generator) Tutors(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = g.Name("", "")
	}
	return out
}

func (g *Generator) tutor(pool []string) string {
	if len(pool) == 0 {
		return g.Name("", "")
	}
	return pool[g.rng.Intn(len(pool))]
}

func (g *Generator) draw(field string, d sample.Distribution) (string, error) {
	v, err := sample.Draw(g.rng, d)
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

// letters keeps the ASCII lowercase letters of s.
func letters(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			out = append(out, c)
		}
	}
	return out
}

// randomSeed reads a seed from the OS entropy source.
func randomSeed() int64 {
	b, err := zcrypto.RandBytes(8)
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b))
}
