package postcode

import "strings"

// The accessors below return cumulative forms, not bare fragments: District
// is area+district ("EC1Y"), Sector adds " 8", Unit is the full postcode.
// Each reports false when the fragments it needs are missing, so a trailing
// match with no leading half ("??? 8PQ") yields no forms at all.

// Area returns the area form ("EC").
func (p *Postcode) Area() (string, bool) {
	if p.area == "" {
		return "", false
	}
	return p.area, true
}

// District returns the district form ("EC1Y").
func (p *Postcode) District() (string, bool) {
	if p.area == "" || p.district == "" {
		return "", false
	}
	return p.area + p.district, true
}

// Sector returns the sector form ("EC1Y 8").
func (p *Postcode) Sector() (string, bool) {
	if p.area == "" || p.district == "" || p.sector == "" {
		return "", false
	}
	return p.area + p.district + " " + p.sector, true
}

// Unit returns the full unit form ("EC1Y 8PQ").
func (p *Postcode) Unit() (string, bool) {
	if p.area == "" || p.district == "" || p.sector == "" || p.unit == "" {
		return "", false
	}
	return p.area + p.district + " " + p.sector + p.unit, true
}

// Analyse returns every form the postcode decomposes into, most specific
// first: unit, sector, district, area. Forms whose fragments are missing are
// skipped, so a complete postcode yields four entries, a bare area one, and
// undecomposable input none.
func (p *Postcode) Analyse() []string {
	var forms []string
	if f, ok := p.Unit(); ok {
		forms = append(forms, f)
	}
	if f, ok := p.Sector(); ok {
		forms = append(forms, f)
	}
	if f, ok := p.District(); ok {
		forms = append(forms, f)
	}
	if f, ok := p.Area(); ok {
		forms = append(forms, f)
	}
	return forms
}

// Analyse decomposes raw and returns its forms, most specific first.
func Analyse(raw string, opts ...Option) []string {
	return New(raw, opts...).Analyse()
}

// String renders the fragments that are present, in standard layout. Unlike
// the form accessors it does not enforce the prefix chain: "??? 8PQ" renders
// as "8PQ". A fully absent decomposition renders as "".
func (p *Postcode) String() string {
	var b strings.Builder
	b.WriteString(p.area)
	b.WriteString(p.district)
	if p.sector != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.sector)
		b.WriteString(p.unit)
	}
	return b.String()
}

// Equal reports whether two postcodes decompose identically, so spacing and
// case differences do not matter. Special-case matches only equal other
// special-case matches of the same postcode. Either side may be nil; two
// nils are equal.
func (p *Postcode) Equal(o *Postcode) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.area == o.area &&
		p.district == o.district &&
		p.sector == o.sector &&
		p.unit == o.unit &&
		p.special == o.special
}
