package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ismaelallamtaoui/eco-score/business/scoring"
	"github.com/ismaelallamtaoui/eco-score/domain"
	"github.com/ismaelallamtaoui/eco-score/pkg/logger"
)

// Column sets each table must carry, mirroring the upstream QA checks.
var (
	productColumns   = []string{"gtin", "name", "category", "unit", "originCountry", "supplierId", "lcaRefId"}
	lcaColumns       = []string{"ref", "ghg", "water", "land", "pm", "eutro"}
	seasonColumns    = []string{"category", "month", "factor"}
	transportColumns = []string{"gtin", "mode", "km", "emissionFactor"}
	supplierColumns  = []string{"id", "certs", "practices"}
)

// Dataset is the fully-typed, immutable result of loading the five
// reference tables plus the bracket file. Built once at startup; scoring
// sessions borrow its tables read-only.
type Dataset struct {
	Products       []domain.Product
	ProductsByGTIN map[string]domain.Product

	lcaByRef        map[string]domain.LCAProfile
	seasonRules     []domain.SeasonalityRule
	transportByGTIN map[string][]domain.TransportLeg
	suppliersByID   map[string]domain.Supplier
	brackets        map[string]domain.BracketSet
}

// Product looks up one catalog row by gtin.
func (d *Dataset) Product(gtin string) (domain.Product, bool) {
	p, ok := d.ProductsByGTIN[gtin]
	return p, ok
}

// AllProducts returns the catalog in file order.
func (d *Dataset) AllProducts() []domain.Product {
	return d.Products
}

// Context assembles a scoring ReferenceContext for one reference month. The
// maps are shared, not copied: nothing downstream mutates them.
func (d *Dataset) Context(month int) *scoring.ReferenceContext {
	return &scoring.ReferenceContext{
		LCAByRef:        d.lcaByRef,
		SeasonRules:     d.seasonRules,
		TransportByGTIN: d.transportByGTIN,
		SuppliersByID:   d.suppliersByID,
		Brackets:        d.brackets,
		Month:           month,
	}
}

// Load reads products.csv, lca.csv, seasonality.csv, transport.csv,
// suppliers.csv and brackets.json from dir. Structural problems (missing
// columns, duplicate keys, negative impact magnitudes) are the only fatal
// errors in the application; per-field numeric junk degrades to the engine's
// substitution rules instead.
func Load(dir string) (*Dataset, error) {
	d := &Dataset{
		ProductsByGTIN:  make(map[string]domain.Product),
		lcaByRef:        make(map[string]domain.LCAProfile),
		transportByGTIN: make(map[string][]domain.TransportLeg),
		suppliersByID:   make(map[string]domain.Supplier),
	}

	if err := d.loadProducts(filepath.Join(dir, "products.csv")); err != nil {
		return nil, err
	}
	if err := d.loadLCA(filepath.Join(dir, "lca.csv")); err != nil {
		return nil, err
	}
	if err := d.loadSeasonality(filepath.Join(dir, "seasonality.csv")); err != nil {
		return nil, err
	}
	if err := d.loadTransport(filepath.Join(dir, "transport.csv")); err != nil {
		return nil, err
	}
	if err := d.loadSuppliers(filepath.Join(dir, "suppliers.csv")); err != nil {
		return nil, err
	}

	brackets, err := loadBrackets(filepath.Join(dir, "brackets.json"))
	if err != nil {
		return nil, err
	}
	d.brackets = brackets

	logger.Info("reference dataset loaded",
		"products", len(d.Products),
		"lca_profiles", len(d.lcaByRef),
		"season_rules", len(d.seasonRules),
		"suppliers", len(d.suppliersByID),
		"bracket_sets", len(d.brackets),
	)

	return d, nil
}

// ParseProducts decodes a product CSV stream into typed rows. Shared with
// the partner upload preview, which accepts the same format as the catalog.
func ParseProducts(r io.Reader) ([]domain.Product, error) {
	headers, records, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if err := requireColumns("products", headers, productColumns); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		if rec["gtin"] == "" {
			continue
		}
		products = append(products, domain.Product{
			GTIN:          rec["gtin"],
			Name:          rec["name"],
			Category:      rec["category"],
			Unit:          rec["unit"],
			OriginCountry: rec["originCountry"],
			SupplierID:    rec["supplierId"],
			LCARefID:      rec["lcaRefId"],
		})
	}
	return products, nil
}

func (d *Dataset) loadProducts(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	products, err := ParseProducts(f)
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	for _, p := range products {
		if _, dup := d.ProductsByGTIN[p.GTIN]; dup {
			return fmt.Errorf("products: duplicate gtin %s", p.GTIN)
		}
		d.Products = append(d.Products, p)
		d.ProductsByGTIN[p.GTIN] = p
	}
	return nil
}

func (d *Dataset) loadLCA(path string) error {
	headers, records, err := readFile(path)
	if err != nil {
		return err
	}
	if err := requireColumns("lca", headers, lcaColumns); err != nil {
		return err
	}

	for _, rec := range records {
		ref := rec["ref"]
		if ref == "" {
			continue
		}
		if _, dup := d.lcaByRef[ref]; dup {
			return fmt.Errorf("lca: duplicate ref %s", ref)
		}
		profile := domain.LCAProfile{
			Ref:          ref,
			GHG:          parseNumber(rec["ghg"]),
			Water:        parseNumber(rec["water"]),
			Land:         parseNumber(rec["land"]),
			PM:           parseNumber(rec["pm"]),
			Eutro:        parseNumber(rec["eutro"]),
			Biodiversity: parseOptionalNumber(rec["biodiversity"]),
		}
		if profile.GHG < 0 || profile.Water < 0 || profile.Land < 0 || profile.PM < 0 || profile.Eutro < 0 {
			return fmt.Errorf("lca: negative impact magnitude on ref %s", ref)
		}
		d.lcaByRef[ref] = profile
	}
	return nil
}

func (d *Dataset) loadSeasonality(path string) error {
	headers, records, err := readFile(path)
	if err != nil {
		return err
	}
	if err := requireColumns("seasonality", headers, seasonColumns); err != nil {
		return err
	}

	for _, rec := range records {
		month := parseMonth(rec["month"])
		if month == 0 {
			logger.Warn("seasonality: skipping row with invalid month", "category", rec["category"], "month", rec["month"])
			continue
		}
		d.seasonRules = append(d.seasonRules, domain.SeasonalityRule{
			Category: rec["category"],
			Month:    month,
			Factor:   parseNumber(rec["factor"]),
		})
	}
	return nil
}

func (d *Dataset) loadTransport(path string) error {
	headers, records, err := readFile(path)
	if err != nil {
		return err
	}
	if err := requireColumns("transport", headers, transportColumns); err != nil {
		return err
	}

	for _, rec := range records {
		gtin := rec["gtin"]
		if gtin == "" {
			continue
		}
		// Negative legs are kept as-is; the aggregator excludes them from
		// the sum, matching the engine's substitution-over-failure rule.
		d.transportByGTIN[gtin] = append(d.transportByGTIN[gtin], domain.TransportLeg{
			GTIN:           gtin,
			Mode:           rec["mode"],
			Km:             parseNumber(rec["km"]),
			EmissionFactor: parseNumber(rec["emissionFactor"]),
		})
	}
	return nil
}

func (d *Dataset) loadSuppliers(path string) error {
	headers, records, err := readFile(path)
	if err != nil {
		return err
	}
	if err := requireColumns("suppliers", headers, supplierColumns); err != nil {
		return err
	}

	for _, rec := range records {
		id := rec["id"]
		if id == "" {
			continue
		}
		if _, dup := d.suppliersByID[id]; dup {
			return fmt.Errorf("suppliers: duplicate id %s", id)
		}
		d.suppliersByID[id] = domain.Supplier{
			ID:        id,
			Certs:     rec["certs"],
			Practices: rec["practices"],
		}
	}
	return nil
}

func readFile(path string) ([]string, []record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	headers, records, err := readTable(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return headers, records, nil
}
