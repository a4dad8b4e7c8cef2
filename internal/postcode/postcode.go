// Package postcode validates and decomposes UK postcodes against the BS 7666
// structural rules.
//
// A postcode splits into four fragments: area ("EC"), district ("1Y"), sector
// ("8") and unit ("PQ"). Decomposition is deliberately permissive: the
// trailing sector and unit are matched before the leading area and district,
// so a malformed half does not stop the other half from being read. The
// character-class rules are applied afterwards, by Valid and ValidFragment.
package postcode

import (
	"regexp"
	"strings"
)

// DefaultSpecialCases lists postcodes that are treated as valid even though
// they break the structural rules. "G1R 0AA" was the Girobank's postcode.
func DefaultSpecialCases() []string {
	return []string{"G1R 0AA"}
}

var (
	// Trailing sector and unit, e.g. " 8PQ". The space is optional: a
	// full postcode is unambiguous even without it.
	trailingRe = regexp.MustCompile(`\s*([0-9])([A-Z]{2})$`)

	// Trailing sector and half-typed unit, e.g. " 8P". Here the space is
	// required, or the letter could be the tail of a district.
	partUnitRe = regexp.MustCompile(`\s+([0-9])([A-Z])$`)

	// Trailing lone sector, e.g. " 8". Same spacing rule as partUnitRe.
	sectorRe = regexp.MustCompile(`\s+([0-9])$`)

	// Leading area and optional district, e.g. "EC1Y". Anchored, so
	// unconsumed leftovers void the whole leading match.
	leadingRe = regexp.MustCompile(`^([A-Z]{1,2})([0-9][A-Z0-9]?)?\s*$`)
)

// Postcode is an immutable postcode value: the verbatim input plus the
// fragments decomposed from its uppercased form. Construct with New; the
// zero value is not useful. Because nothing is mutated after construction,
// a Postcode may be shared freely between goroutines.
type Postcode struct {
	raw  string
	norm string

	area     string
	district string
	sector   string
	unit     string

	// special holds the canonical form of the matched special case, if any.
	special string
}

// Option configures a Postcode at construction.
type Option func(*settings)

type settings struct {
	specialCases []string
}

// WithSpecialCases replaces the special-case list for this postcode. Entries
// are compared uppercased against the whole trimmed input. To extend rather
// than override, include the defaults explicitly:
//
//	postcode.New(raw, postcode.WithSpecialCases(append(postcode.DefaultSpecialCases(), "XX1 1XX")...))
func WithSpecialCases(codes ...string) Option {
	return func(s *settings) {
		s.specialCases = codes
	}
}

// New decomposes raw into a Postcode. Fragments are computed once, here;
// every later query reads the cached values.
func New(raw string, opts ...Option) *Postcode {
	s := settings{specialCases: DefaultSpecialCases()}
	for _, opt := range opts {
		opt(&s)
	}

	p := &Postcode{
		raw:  raw,
		norm: strings.ToUpper(strings.TrimSpace(raw)),
	}
	for _, sc := range s.specialCases {
		if canon := strings.ToUpper(strings.TrimSpace(sc)); canon == p.norm {
			p.special = canon
			break
		}
	}
	p.decompose()
	return p
}

// decompose strips the trailing sector/unit first, then matches area and
// district against whatever is left. The order matters: the two halves are
// read independently, so either can survive the other being malformed.
func (p *Postcode) decompose() {
	rest := p.norm
	if m := trailingRe.FindStringSubmatchIndex(rest); m != nil {
		p.sector = rest[m[2]:m[3]]
		p.unit = rest[m[4]:m[5]]
		rest = rest[:m[0]]
	} else if m := partUnitRe.FindStringSubmatchIndex(rest); m != nil {
		p.sector = rest[m[2]:m[3]]
		p.unit = rest[m[4]:m[5]]
		rest = rest[:m[0]]
	} else if m := sectorRe.FindStringSubmatchIndex(rest); m != nil {
		p.sector = rest[m[2]:m[3]]
		rest = rest[:m[0]]
	}

	if m := leadingRe.FindStringSubmatch(rest); m != nil {
		p.area = m[1]
		p.district = m[2]
	}
}

// Raw returns the string the postcode was constructed from, verbatim.
func (p *Postcode) Raw() string {
	return p.raw
}

// Fragments is the decomposed 4-tuple. An empty field means the fragment
// was absent.
type Fragments struct {
	Area     string
	District string
	Sector   string
	Unit     string
}

// Fragments returns the raw decomposition. Trailing parts are matched
// independently of leading ones, so sector and unit can be present without
// area; the validation and formatting methods enforce the prefix dependency
// between fragments.
func (p *Postcode) Fragments() Fragments {
	return Fragments{
		Area:     p.area,
		District: p.district,
		Sector:   p.sector,
		Unit:     p.unit,
	}
}
