package postcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Fragments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Fragments
	}{
		{
			name: "full postcode",
			raw:  "EC1Y 8PQ",
			want: Fragments{Area: "EC", District: "1Y", Sector: "8", Unit: "PQ"},
		},
		{
			name: "lowercase input",
			raw:  "ec1y 8pq",
			want: Fragments{Area: "EC", District: "1Y", Sector: "8", Unit: "PQ"},
		},
		{
			name: "surrounding whitespace",
			raw:  "  EC1Y 8PQ\t",
			want: Fragments{Area: "EC", District: "1Y", Sector: "8", Unit: "PQ"},
		},
		{
			name: "missing space",
			raw:  "EC1Y8PQ",
			want: Fragments{Area: "EC", District: "1Y", Sector: "8", Unit: "PQ"},
		},
		{
			name: "single letter area",
			raw:  "N1 9GU",
			want: Fragments{Area: "N", District: "1", Sector: "9", Unit: "GU"},
		},
		{
			name: "two digit district",
			raw:  "M60 1NW",
			want: Fragments{Area: "M", District: "60", Sector: "1", Unit: "NW"},
		},
		{
			name: "area only",
			raw:  "EC",
			want: Fragments{Area: "EC"},
		},
		{
			name: "area and district",
			raw:  "EC1Y",
			want: Fragments{Area: "EC", District: "1Y"},
		},
		{
			name: "spaced sector without unit",
			raw:  "EC1Y 8",
			want: Fragments{Area: "EC", District: "1Y", Sector: "8"},
		},
		{
			name: "unspaced sector is not a sector",
			raw:  "EC1Y8",
			want: Fragments{},
		},
		{
			name: "partial unit",
			raw:  "EC1Y 8P",
			want: Fragments{Area: "EC", District: "1Y", Sector: "8", Unit: "P"},
		},
		{
			name: "overlong unit voids the trailing match",
			raw:  "EC1Y 8PQX",
			want: Fragments{},
		},
		{
			name: "broken leading half keeps the trailing half",
			raw:  "??? 8PQ",
			want: Fragments{Sector: "8", Unit: "PQ"},
		},
		{
			name: "broken district voids area too",
			raw:  "ABC1 2DE",
			want: Fragments{Sector: "2", Unit: "DE"},
		},
		{
			name: "empty input",
			raw:  "",
			want: Fragments{},
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: Fragments{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.raw)
			assert.Equal(t, tt.want, p.Fragments())
		})
	}
}

func TestPostcode_Raw(t *testing.T) {
	raw := "  ec1y 8pq "
	p := New(raw)

	assert.Equal(t, raw, p.Raw())
}

func TestNew_FragmentsAreStable(t *testing.T) {
	p := New("ec1y 8pq")

	first := p.Fragments()
	second := p.Fragments()

	assert.Equal(t, first, second)
	assert.Equal(t, New("ec1y 8pq").Fragments(), first)
}
