package scoring

import (
	"math"

	"github.com/ismaelallamtaoui/eco-score/domain"
)

// biodiversityProxyRatio derives a biodiversity magnitude from land use when
// the LCA row carries none.
const biodiversityProxyRatio = 0.2

// RawImpacts holds the six adjusted per-unit magnitudes for one product,
// plus the seasonality factor that was applied (carried for reporting).
type RawImpacts struct {
	Magnitudes   map[domain.Dimension]float64
	SeasonFactor float64
}

// Aggregate combines a product's base LCA impacts with its transport-leg
// emissions and the seasonality penalty. Transport and seasonality adjust
// the ghg magnitude only. The second return value is false when no LCA
// profile exists for the product's reference id.
func Aggregate(p domain.Product, ctx *ReferenceContext) (RawImpacts, bool) {
	lca, ok := ctx.LCAByRef[p.LCARefID]
	if !ok {
		return RawImpacts{}, false
	}

	ghg := finiteOrZero(lca.GHG)
	water := finiteOrZero(lca.Water)
	land := finiteOrZero(lca.Land)
	pm := finiteOrZero(lca.PM)
	eutro := finiteOrZero(lca.Eutro)
	biodiversity := lca.Biodiversity
	if math.IsNaN(biodiversity) || math.IsInf(biodiversity, 0) {
		biodiversity = land * biodiversityProxyRatio
	}

	ghg += transportAddition(ctx.TransportByGTIN[p.GTIN])

	// Factor is <= 1, so being out of season only ever raises the burden.
	sf := SeasonFactor(p.Category, ctx.Month, ctx.SeasonRules)
	ghg /= sf

	return RawImpacts{
		Magnitudes: map[domain.Dimension]float64{
			domain.DimGHG:          ghg,
			domain.DimWater:        water,
			domain.DimLand:         land,
			domain.DimBiodiversity: biodiversity,
			domain.DimPM:           pm,
			domain.DimEutro:        eutro,
		},
		SeasonFactor: sf,
	}, true
}

// transportAddition sums km * emissionFactor over well-formed legs.
func transportAddition(legs []domain.TransportLeg) float64 {
	total := 0.0
	for _, leg := range legs {
		if leg.Km < 0 || leg.EmissionFactor < 0 {
			continue
		}
		total += finiteOrZero(leg.Km) * finiteOrZero(leg.EmissionFactor)
	}
	return total
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
