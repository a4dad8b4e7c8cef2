package service

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"postcode-api/internal/models"
	"postcode-api/internal/postcode"
)

var validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "postcode_validations_total",
	Help: "Postcode validation outcomes.",
}, []string{"valid"})

// PostcodeService validates and decomposes postcodes. It holds no state
// beyond the configured special-case list, so all its methods are pure.
type PostcodeService struct {
	specialCases []string
}

// NewPostcodeService creates a postcode service. Extra special cases are
// accepted on top of the default list.
func NewPostcodeService(extraSpecialCases ...string) *PostcodeService {
	return &PostcodeService{
		specialCases: append(postcode.DefaultSpecialCases(), extraSpecialCases...),
	}
}

// Validate checks raw against the full postcode rules.
func (s *PostcodeService) Validate(raw string) models.Validation {
	canonical, valid := postcode.Valid(raw, postcode.WithSpecialCases(s.specialCases...))
	validationsTotal.WithLabelValues(strconv.FormatBool(valid)).Inc()

	return models.Validation{
		Postcode:  raw,
		Valid:     valid,
		Canonical: canonical,
	}
}

// Analyse decomposes raw and reports every form it contains, along with
// whether it is a well-formed fragment.
func (s *PostcodeService) Analyse(raw string) models.Analysis {
	p := postcode.New(raw, postcode.WithSpecialCases(s.specialCases...))
	fragments := p.Fragments()

	return models.Analysis{
		Postcode: raw,
		Fragments: models.Fragments{
			Area:     fragments.Area,
			District: fragments.District,
			Sector:   fragments.Sector,
			Unit:     fragments.Unit,
		},
		Forms:         p.Analyse(),
		ValidFragment: p.ValidFragment(),
	}
}
