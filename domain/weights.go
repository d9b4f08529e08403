package domain

import "time"

// WeightVector maps dimension keys to non-negative weights. Assumed (not
// enforced) to sum to 1; a missing key counts as weight 0.
type WeightVector map[Dimension]float64

// CREATE TABLE public.weight_profiles (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name       TEXT UNIQUE,
//     ghg        NUMERIC,
//     water      NUMERIC,
//     land       NUMERIC,
//     biodiversity NUMERIC,
//     pm         NUMERIC,
//     eutro      NUMERIC,
//     updated_at TIMESTAMPTZ DEFAULT NOW()
// );

type WeightProfile struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;uniqueIndex"`
	GHG          float64   `gorm:"column:ghg;type:numeric"`
	Water        float64   `gorm:"column:water;type:numeric"`
	Land         float64   `gorm:"column:land;type:numeric"`
	Biodiversity float64   `gorm:"column:biodiversity;type:numeric"`
	PM           float64   `gorm:"column:pm;type:numeric"`
	Eutro        float64   `gorm:"column:eutro;type:numeric"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (WeightProfile) TableName() string {
	return "weight_profiles"
}

// Vector flattens the stored row into the map the scoring engine reads.
func (p WeightProfile) Vector() WeightVector {
	return WeightVector{
		DimGHG:          p.GHG,
		DimWater:        p.Water,
		DimLand:         p.Land,
		DimBiodiversity: p.Biodiversity,
		DimPM:           p.PM,
		DimEutro:        p.Eutro,
	}
}
