package domain

// SeasonalityRule couples a category and a month to a penalty factor.
// Rules keep their input-file order: when several rules cover the same
// (category, month) the first one wins.
type SeasonalityRule struct {
	Category string  `json:"category"`
	Month    int     `json:"month"` // 1-12
	Factor   float64 `json:"factor"`
}
