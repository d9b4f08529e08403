package domain

// Dimension keys the six impact dimensions everywhere: LCA magnitudes,
// brackets, weights and score breakdowns.
type Dimension string

const (
	DimGHG          Dimension = "ghg"
	DimWater        Dimension = "water"
	DimLand         Dimension = "land"
	DimBiodiversity Dimension = "biodiversity"
	DimPM           Dimension = "pm"
	DimEutro        Dimension = "eutro"
)

// Dimensions lists the keys in breakdown order.
var Dimensions = []Dimension{DimGHG, DimWater, DimLand, DimBiodiversity, DimPM, DimEutro}

// Bounds is the min/max window of one dimension within one bracket set.
// Invariant: Min <= Max. Min == Max means the bracket cannot discriminate.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BracketSet holds per-dimension bounds for one category ("default" is the
// fallback set used when a category has no bracket of its own).
type BracketSet map[Dimension]Bounds
