package calculation

import "github.com/rpgo/pension-advisor/internal/domain"

// productCatalog lists representative instruments per asset class, best first.
var productCatalog = map[domain.AssetClass][]string{
	domain.Equity: {
		"CSI 300 Index Fund",
		"CSI 500 Index Fund",
		"Technology Sector Fund",
		"Consumer Sector Fund",
	},
	domain.Bond: {
		"Government Bonds",
		"Local Government Bond Fund",
		"High-Grade Corporate Bond Fund",
		"Convertible Bond Fund",
	},
	domain.Cash: {
		"Money Market Fund",
		"Bank Wealth Management Product",
		"Short-Term Time Deposit",
	},
	domain.Alternative: {
		"Gold ETF",
		"REITs Fund",
		"Commodity Fund",
	},
}

// percentPerProduct is how many allocation points earn one more product.
const percentPerProduct = 20

// Catalog returns a copy of the ordered catalog for a class.
func Catalog(class domain.AssetClass) []string {
	return append([]string(nil), productCatalog[class]...)
}

// RecommendProducts picks the top entries of each class's catalog, one per
// 20 points of allocation with at least one for any funded class. Classes
// with no allocation are left out.
func RecommendProducts(a domain.Allocation) domain.Recommendations {
	recs := make(domain.Recommendations, len(domain.AssetClasses))
	for _, class := range domain.AssetClasses {
		pct := a.Percent(class)
		if pct <= 0 {
			continue
		}
		catalog := productCatalog[class]
		n := min(len(catalog), max(1, pct/percentPerProduct))
		recs[class] = domain.ProductRecommendation{
			Class:      class,
			Percentage: pct,
			Products:   append([]string(nil), catalog[:n]...),
		}
	}
	return recs
}
