package postcode

import "strings"

// Character rules from BS 7666. The district rules depend on the area length;
// the unit rule is an exclusion list.
const (
	// Letters never used in the unit.
	unitExcluded = "CIKMOV"

	// Letters allowed as the second district character after a
	// single-letter area.
	districtFinalSingle = "ABCDEFGHJKSTUW"

	// Letters allowed as the second district character after a
	// two-letter area.
	districtFinalDouble = "ABEHMNPRVWXY"
)

// Valid reports whether the postcode is a complete, well-formed postcode,
// and returns its canonical "AA9A 9AA" rendering when it is. Special-case
// postcodes are valid by fiat and canonicalise to their listed form.
func (p *Postcode) Valid() (string, bool) {
	if p.special != "" {
		return p.special, true
	}
	if !p.validArea() || !p.validDistrict() || p.sector == "" || !p.validUnit(false) {
		return "", false
	}
	return p.area + p.district + " " + p.sector + p.unit, true
}

// Valid reports whether raw is a complete, well-formed postcode and returns
// its canonical form.
func Valid(raw string, opts ...Option) (string, bool) {
	return New(raw, opts...).Valid()
}

// ValidFragment reports whether the postcode is a well-formed left-anchored
// prefix of a postcode: a bare area, area+district, area+district+sector, or
// any of those with a partial trailing fragment still being typed. Every
// fragment present must satisfy its character rules, and no fragment may
// appear without the ones before it.
func (p *Postcode) ValidFragment() bool {
	if p.special != "" {
		return true
	}
	if !p.validArea() {
		return false
	}
	if p.district == "" {
		return p.sector == "" && p.unit == ""
	}
	if !p.validPartialDistrict() {
		return false
	}
	if p.sector == "" {
		return p.unit == ""
	}
	if p.unit == "" {
		return true
	}
	return p.validUnit(true)
}

// ValidFragment reports whether raw is a well-formed postcode prefix.
func ValidFragment(raw string, opts ...Option) bool {
	return New(raw, opts...).ValidFragment()
}

// validArea accepts one or two letters. The first letter is never Q, V or
// X; a second letter is never I, J or Z.
func (p *Postcode) validArea() bool {
	switch len(p.area) {
	case 1:
		return !strings.ContainsRune("QVX", rune(p.area[0]))
	case 2:
		return !strings.ContainsRune("QVX", rune(p.area[0])) &&
			!strings.ContainsRune("IJZ", rune(p.area[1]))
	default:
		return false
	}
}

// validDistrict accepts a digit, optionally followed by a digit or a letter
// drawn from the set permitted for the area's length.
func (p *Postcode) validDistrict() bool {
	if !p.validPartialDistrict() {
		return false
	}
	return p.district != ""
}

// validPartialDistrict is validDistrict but also accepts an absent district,
// for fragment validation.
func (p *Postcode) validPartialDistrict() bool {
	switch len(p.district) {
	case 0:
		return true
	case 1:
		return isDigit(p.district[0])
	case 2:
		if !isDigit(p.district[0]) {
			return false
		}
		if isDigit(p.district[1]) {
			return true
		}
		if len(p.area) == 1 {
			return strings.ContainsRune(districtFinalSingle, rune(p.district[1]))
		}
		return strings.ContainsRune(districtFinalDouble, rune(p.district[1]))
	default:
		return false
	}
}

// validUnit checks both letters against the exclusion list. With partial set
// a single letter passes, for fragment validation; otherwise exactly two
// letters are required.
func (p *Postcode) validUnit(partial bool) bool {
	switch len(p.unit) {
	case 1:
		if !partial {
			return false
		}
	case 2:
	default:
		return false
	}
	for _, r := range p.unit {
		if strings.ContainsRune(unitExcluded, r) {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
