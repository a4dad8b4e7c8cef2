package models

// Fragments are the four structural parts of a decomposed postcode. An empty
// field means the fragment was absent from the input.
type Fragments struct {
	Area     string `json:"area,omitempty"`
	District string `json:"district,omitempty"`
	Sector   string `json:"sector,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// Validation is the outcome of a full structural validation. Canonical is
// only set when the postcode is valid.
type Validation struct {
	Postcode  string `json:"postcode"`
	Valid     bool   `json:"valid"`
	Canonical string `json:"canonical,omitempty"`
}

// Analysis decomposes a postcode into its fragments and the canonical search
// forms derived from them, most to least specific.
type Analysis struct {
	Postcode      string    `json:"postcode"`
	Fragments     Fragments `json:"fragments"`
	Forms         []string  `json:"forms"`
	ValidFragment bool      `json:"valid_fragment"`
}

// Distance is the great-circle distance between two resolved postcodes.
type Distance struct {
	From     Location `json:"from"`
	To       Location `json:"to"`
	Unit     string   `json:"unit"`
	Distance float64  `json:"distance"`
}

// Bearing is the initial bearing from one resolved postcode to another,
// in degrees clockwise from north, with its 16-point compass label.
type Bearing struct {
	From    Location `json:"from"`
	To      Location `json:"to"`
	Degrees float64  `json:"degrees"`
	Compass string   `json:"compass"`
}
