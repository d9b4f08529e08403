package scoring

import (
	"strings"

	"github.com/ismaelallamtaoui/eco-score/domain"
)

// SupplierAdjustment computes the additive socio-ethics bonus from a
// supplier's certification tags and practice description. The rules are not
// mutually exclusive; every matching rule stacks.
func SupplierAdjustment(sup domain.Supplier) int {
	adj := 0
	certs := strings.ToUpper(sup.Certs)
	if strings.Contains(certs, "AB") || strings.Contains(certs, "BIO") {
		adj += 3
	}
	if strings.Contains(certs, "FAIR") || strings.Contains(certs, "EQ") {
		adj += 2
	}
	if strings.Contains(strings.ToLower(sup.Practices), "agroecology") {
		adj += 2
	}
	return adj
}
