package domain

import "time"

// CREATE TABLE public.baskets (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     token      TEXT UNIQUE,
//     created_at TIMESTAMPTZ DEFAULT NOW()
// );
//
// CREATE TABLE public.basket_items (
//     id        BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     basket_id BIGINT,
//     gtin      TEXT,
//     quantity  NUMERIC
// );

// Basket is an anonymous shopping basket identified by an opaque token.
type Basket struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Token     string    `gorm:"column:token;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Basket) TableName() string {
	return "baskets"
}

type BasketItem struct {
	ID       uint64  `gorm:"primaryKey;autoIncrement"`
	BasketID uint64  `gorm:"column:basket_id;index"`
	GTIN     string  `gorm:"column:gtin"`
	Quantity float64 `gorm:"column:quantity;type:numeric"`
}

func (BasketItem) TableName() string {
	return "basket_items"
}

// BasketLine is one rendered basket row: raw footprint scaled by quantity
// plus the product's score.
type BasketLine struct {
	GTIN     string  `json:"gtin"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	KgCO2e   float64 `json:"kg_co2e"`
	WaterL   float64 `json:"water_l"`
	Score    int     `json:"score"`
	Letter   string  `json:"letter"`
}

// BasketSummary aggregates a whole basket.
type BasketSummary struct {
	Token        string       `json:"token"`
	Lines        []BasketLine `json:"lines"`
	TotalKgCO2e  float64      `json:"total_kg_co2e"`
	TotalWaterL  float64      `json:"total_water_l"`
	AverageScore int          `json:"average_score"`
	Suggestion   string       `json:"suggestion,omitempty"`
}
