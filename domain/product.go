package domain

// Product is one row of the product catalog (products.csv).
// Catalog rows are loaded once at startup and never mutated.
type Product struct {
	GTIN          string `json:"gtin"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Unit          string `json:"unit"`
	OriginCountry string `json:"origin_country"`
	SupplierID    string `json:"supplier_id"`
	LCARefID      string `json:"lca_ref_id"`
}
