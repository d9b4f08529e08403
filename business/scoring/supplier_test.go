package scoring

import (
	"testing"

	"github.com/ismaelallamtaoui/eco-score/domain"
)

func TestSupplierAdjustment(t *testing.T) {
	cases := []struct {
		name string
		sup  domain.Supplier
		want int
	}{
		{"no signals", domain.Supplier{Certs: "ISO9001", Practices: "bulk freight"}, 0},
		{"organic AB", domain.Supplier{Certs: "AB"}, 3},
		{"organic bio lowercase", domain.Supplier{Certs: "bio"}, 3},
		{"fair trade", domain.Supplier{Certs: "FAIRTRADE"}, 2},
		{"eq marker", domain.Supplier{Certs: "commerce eq"}, 2},
		{"agroecology practice", domain.Supplier{Practices: "Agroecology and cover crops"}, 2},
		{"organic plus fair", domain.Supplier{Certs: "AB, FAIR"}, 5},
		{"all three stack", domain.Supplier{Certs: "BIO EQ", Practices: "agroecology"}, 7},
		{"empty supplier", domain.Supplier{}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SupplierAdjustment(tc.sup)
			if got != tc.want {
				t.Errorf("SupplierAdjustment(%+v) = %d, want %d", tc.sup, got, tc.want)
			}
		})
	}
}
