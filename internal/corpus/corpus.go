// Package corpus holds the read-only reference data identities are drawn
// from: the ISO country list, the locale table and per-locale name pools.
// Load it once and share the result; nothing in it changes after Load.
package corpus

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned when a country or locale cannot be resolved.
var ErrNotFound = errors.New("not found")

// DefaultLocale is used when a country has no locale of its own.
var DefaultLocale = language.AmericanEnglish

// Country is an ISO 3166-1 country with its English display name.
type Country struct {
	Name string
	Code string
}

// pool is a gendered set of first names plus surnames.
type pool struct {
	male   []string
	female []string
	last   []string
}

// Locale is a language-region tag, optionally with its own name pool.
type Locale struct {
	Tag  language.Tag
	pool *pool
}

// String returns the BCP 47 form of the tag, e.g. "en-GB".
func (l Locale) String() string {
	return l.Tag.String()
}

// Region returns the two-letter region code of the locale.
func (l Locale) Region() string {
	r, _ := l.Tag.Region()
	return r.String()
}

// HasNames reports whether the locale carries its own name pool. Locales
// without one are served by the default English name generator.
func (l Locale) HasNames() bool {
	return l.pool != nil
}

// Name draws a first and last name. Genders other than "male" and "female"
// draw the first name from either list. ok is false when the locale has no
// name pool.
func (l Locale) Name(r *rand.Rand, gender string) (first, last string, ok bool) {
	if l.pool == nil {
		return "", "", false
	}

	firsts := l.pool.male
	switch gender {
	case "female":
		firsts = l.pool.female
	case "male":
	default:
		if r.Intn(2) == 1 {
			firsts = l.pool.female
		}
	}

	return firsts[r.Intn(len(firsts))], l.pool.last[r.Intn(len(l.pool.last))], true
}

// localeTable is scanned in order; the first locale whose region matches a
// country wins.
var localeTable = []struct {
	tag  string
	pool *pool
}{
	{"en-US", nil},
	{"en-GB", &englishPool},
	{"en-CA", nil},
	{"en-AU", &englishPool},
	{"en-NZ", &englishPool},
	{"en-IE", &englishPool},
	{"en-IN", &indianPool},
	{"hi-IN", &indianPool},
	{"en-SG", &chinesePool},
	{"de-DE", &germanPool},
	{"de-AT", &germanPool},
	{"de-CH", &germanPool},
	{"fr-FR", &frenchPool},
	{"fr-BE", &frenchPool},
	{"fr-CA", &frenchPool},
	{"es-ES", &spanishPool},
	{"es-MX", &spanishPool},
	{"es-AR", &spanishPool},
	{"es-CO", &spanishPool},
	{"es-CL", &spanishPool},
	{"it-IT", &italianPool},
	{"nl-NL", &dutchPool},
	{"nl-BE", &dutchPool},
	{"pt-PT", &portuguesePool},
	{"pt-BR", &portuguesePool},
	{"zh-CN", &chinesePool},
	{"zh-TW", &chinesePool},
	{"zh-HK", &cantonesePool},
	{"ja-JP", &japanesePool},
	{"ko-KR", &koreanPool},
	{"pl-PL", &polishPool},
	{"sv-SE", &swedishPool},
	{"ru-RU", &russianPool},
	{"tr-TR", &turkishPool},
	{"el-GR", &greekPool},
}

// Data is the loaded reference data.
type Data struct {
	countries []Country
	byName    map[string]Country
	locales   []Locale
	fallback  Locale
}

// Load builds the country list and locale table.
func Load() *Data {
	d := &Data{byName: make(map[string]Country, len(isoCodes)+len(countryAliases))}

	byCode := make(map[string]Country, len(isoCodes))
	regions := display.English.Regions()
	for _, code := range isoCodes {
		c := Country{Name: code, Code: code}
		if r, err := language.ParseRegion(code); err == nil {
			if name := regions.Name(r); name != "" {
				c.Name = name
			}
		}
		d.countries = append(d.countries, c)
		d.byName[c.Name] = c
		byCode[code] = c
	}
	sort.Slice(d.countries, func(i, j int) bool {
		return d.countries[i].Name < d.countries[j].Name
	})

	for alias, code := range countryAliases {
		if _, ok := d.byName[alias]; ok {
			continue
		}
		if c, ok := byCode[code]; ok {
			d.byName[alias] = c
		}
	}

	pools := map[*pool]*pool{}
	for _, e := range localeTable {
		l := Locale{Tag: language.MustParse(e.tag)}
		if e.pool != nil {
			p, ok := pools[e.pool]
			if !ok {
				p = e.pool.romanized()
				pools[e.pool] = p
			}
			l.pool = p
		}
		d.locales = append(d.locales, l)
	}

	d.fallback = Locale{Tag: language.BritishEnglish, pool: pools[&englishPool]}
	return d
}

// Countries returns all country names in sorted order.
func (d *Data) Countries() []string {
	names := make([]string, len(d.countries))
	for i, c := range d.countries {
		names[i] = c.Name
	}
	return names
}

// Canonical resolves a country name or alias to its display name.
func (d *Data) Canonical(name string) (string, bool) {
	c, ok := d.byName[name]
	return c.Name, ok
}

// Code returns the ISO alpha-2 code for a country name or alias.
func (d *Data) Code(name string) (string, error) {
	c, ok := d.byName[name]
	if !ok {
		return "", fmt.Errorf("country %q: %w", name, ErrNotFound)
	}
	return c.Code, nil
}

// Locales returns the locale table in lookup order.
func (d *Data) Locales() []Locale {
	out := make([]Locale, len(d.locales))
	copy(out, d.locales)
	return out
}

// Locale returns the first locale for the country's region.
func (d *Data) Locale(country string) (Locale, error) {
	code, err := d.Code(country)
	if err != nil {
		return Locale{}, err
	}

	for _, l := range d.locales {
		if l.Region() == code {
			return l, nil
		}
	}

	return Locale{}, fmt.Errorf("locale for %s (%s): %w", country, code, ErrNotFound)
}

// Default returns the locale used when a country cannot be resolved.
func (d *Data) Default() Locale {
	for _, l := range d.locales {
		if l.Tag.String() == DefaultLocale.String() {
			return l
		}
	}
	return Locale{Tag: DefaultLocale}
}

// Fallback returns a locale that always has a name pool.
func (d *Data) Fallback() Locale {
	return d.fallback
}

func (p *pool) romanized() *pool {
	return &pool{
		male:   romanizeAll(p.male),
		female: romanizeAll(p.female),
		last:   romanizeAll(p.last),
	}
}

func romanizeAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = Romanize(s)
	}
	return out
}

// letters that do not decompose into a base letter plus a combining mark
var undecomposable = strings.NewReplacer(
	"ł", "l", "Ł", "L",
	"ı", "i",
	"ß", "ss",
	"ø", "o", "Ø", "O",
	"æ", "ae", "Æ", "Ae",
	"đ", "d", "Đ", "D",
)

// Romanize strips diacritics so names only contain ASCII letters.
func Romanize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, undecomposable.Replace(s))
	if err != nil {
		return s
	}
	return out
}
