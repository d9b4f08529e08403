package domain

// TransportLeg is one leg of a product's supply route. A product maps to
// zero or more legs; legs are summed, order does not matter.
type TransportLeg struct {
	GTIN           string  `json:"gtin"`
	Mode           string  `json:"mode"`
	Km             float64 `json:"km"`
	EmissionFactor float64 `json:"emission_factor"` // kgCO2e per km
}
