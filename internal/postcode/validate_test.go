package postcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantCanonical string
		wantValid     bool
	}{
		{
			name:          "well formed postcode",
			raw:           "EC1Y 8PQ",
			wantCanonical: "EC1Y 8PQ",
			wantValid:     true,
		},
		{
			name:          "canonicalises spacing and case",
			raw:           "  ec1y8pq ",
			wantCanonical: "EC1Y 8PQ",
			wantValid:     true,
		},
		{
			name:          "single letter area",
			raw:           "N1 9GU",
			wantCanonical: "N1 9GU",
			wantValid:     true,
		},
		{
			name:          "two digit district",
			raw:           "M60 1NW",
			wantCanonical: "M60 1NW",
			wantValid:     true,
		},
		{
			name:      "area Q never used",
			raw:       "Q1 2AB",
			wantValid: false,
		},
		{
			name:      "area V never used",
			raw:       "V1 2AB",
			wantValid: false,
		},
		{
			name:      "area X never used",
			raw:       "X1 2AB",
			wantValid: false,
		},
		{
			name:      "first area letter rule applies to two letter areas",
			raw:       "QA1 2AB",
			wantValid: false,
		},
		{
			name:      "second area letter I rejected",
			raw:       "AI1 2AB",
			wantValid: false,
		},
		{
			name:      "second area letter J rejected",
			raw:       "AJ1 2AB",
			wantValid: false,
		},
		{
			name:      "second area letter Z rejected",
			raw:       "AZ1 2AB",
			wantValid: false,
		},
		{
			name:      "district final letter outside single area set",
			raw:       "B2Z 4QW",
			wantValid: false,
		},
		{
			name:          "district final letter inside single area set",
			raw:           "B2W 4QT",
			wantCanonical: "B2W 4QT",
			wantValid:     true,
		},
		{
			name:          "district final letter inside double area set",
			raw:           "AB2M 4QT",
			wantCanonical: "AB2M 4QT",
			wantValid:     true,
		},
		{
			name:      "district final letter outside double area set",
			raw:       "AB2C 4QT",
			wantValid: false,
		},
		{
			name:      "unit letter O excluded",
			raw:       "EC1Y 8PO",
			wantValid: false,
		},
		{
			name:      "unit letter C excluded",
			raw:       "EC1Y 8CA",
			wantValid: false,
		},
		{
			name:          "unit letters P and L allowed",
			raw:           "EC1Y 8PL",
			wantCanonical: "EC1Y 8PL",
			wantValid:     true,
		},
		{
			name:      "partial unit is not a full postcode",
			raw:       "EC1Y 8P",
			wantValid: false,
		},
		{
			name:      "missing unit",
			raw:       "EC1Y 8",
			wantValid: false,
		},
		{
			name:      "missing sector and unit",
			raw:       "EC1Y",
			wantValid: false,
		},
		{
			name:      "empty input",
			raw:       "",
			wantValid: false,
		},
		{
			name:          "special case exact",
			raw:           "G1R 0AA",
			wantCanonical: "G1R 0AA",
			wantValid:     true,
		},
		{
			name:          "special case lowercased",
			raw:           "g1r 0aa",
			wantCanonical: "G1R 0AA",
			wantValid:     true,
		},
		{
			name:      "special case without its space fails the district rule",
			raw:       "G1R0AA",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical, valid := Valid(tt.raw)

			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.wantCanonical, canonical)
		})
	}
}

func TestValid_CanonicalIsIdempotent(t *testing.T) {
	canonical, valid := Valid("ec1y8pq")
	assert.True(t, valid)

	again, valid := Valid(canonical)
	assert.True(t, valid)
	assert.Equal(t, canonical, again)
}

func TestValid_CustomSpecialCases(t *testing.T) {
	// Replacing the list drops the default entry.
	_, valid := Valid("G1R 0AA", WithSpecialCases("SAN TA1"))
	assert.False(t, valid)

	canonical, valid := Valid("san ta1", WithSpecialCases("SAN TA1"))
	assert.True(t, valid)
	assert.Equal(t, "SAN TA1", canonical)

	// Extending keeps it.
	extended := append(DefaultSpecialCases(), "SAN TA1")
	canonical, valid = Valid("g1r 0aa", WithSpecialCases(extended...))
	assert.True(t, valid)
	assert.Equal(t, "G1R 0AA", canonical)
}

func TestValidFragment(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "bare area", raw: "EC", want: true},
		{name: "single letter area", raw: "N", want: true},
		{name: "excluded area letter", raw: "Q1", want: false},
		{name: "area and district", raw: "EC1Y", want: true},
		{name: "partial district", raw: "EC1", want: true},
		{name: "district final letter outside set", raw: "B2Z", want: false},
		{name: "sector without unit", raw: "EC1Y 8", want: true},
		{name: "partial unit", raw: "EC1Y 8P", want: true},
		{name: "full postcode", raw: "EC1Y 8PQ", want: true},
		{name: "excluded unit letter", raw: "EC1Y 8PO", want: false},
		{name: "overlong unit", raw: "EC1Y 8PQX", want: false},
		{name: "unspaced sector", raw: "EC1Y8", want: false},
		{name: "trailing half without leading half", raw: "??? 8PQ", want: false},
		{name: "empty input", raw: "", want: false},
		{name: "special case", raw: "g1r 0aa", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidFragment(tt.raw))
		})
	}
}

func TestValidFragment_FullValidityImpliesFragmentValidity(t *testing.T) {
	for _, raw := range []string{"EC1Y 8PQ", "N1 9GU", "M60 1NW", "AB2M 4QT", "G1R 0AA"} {
		_, valid := Valid(raw)
		assert.True(t, valid, raw)
		assert.True(t, ValidFragment(raw), raw)
	}
}
