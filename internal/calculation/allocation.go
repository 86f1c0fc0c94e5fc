package calculation

import "github.com/rpgo/pension-advisor/internal/domain"

// AgeBand selects a row of the allocation table.
type AgeBand int

const (
	BandUnder35 AgeBand = iota // age < 35
	Band35To49                 // 35 <= age < 50
	Band50Plus                 // age >= 50
)

func (b AgeBand) String() string {
	switch b {
	case BandUnder35:
		return "<35"
	case Band35To49:
		return "35-49"
	case Band50Plus:
		return ">=50"
	}
	return "unknown"
}

// AgeBandFor places an age in its band.
func AgeBandFor(age int) AgeBand {
	switch {
	case age < 35:
		return BandUnder35
	case age < 50:
		return Band35To49
	default:
		return Band50Plus
	}
}

// allocationTable holds the hand-tuned base splits (Equity/Bond/Cash/Alternative).
// Read-only after init; lookups return copies.
var allocationTable = map[domain.RiskCategory][3]domain.Allocation{
	domain.Conservative: {
		BandUnder35: {Equity: 20, Bond: 50, Cash: 25, Alternative: 5},
		Band35To49:  {Equity: 15, Bond: 55, Cash: 25, Alternative: 5},
		Band50Plus:  {Equity: 10, Bond: 60, Cash: 25, Alternative: 5},
	},
	domain.Balanced: {
		BandUnder35: {Equity: 50, Bond: 35, Cash: 10, Alternative: 5},
		Band35To49:  {Equity: 40, Bond: 40, Cash: 15, Alternative: 5},
		Band50Plus:  {Equity: 30, Bond: 45, Cash: 20, Alternative: 5},
	},
	domain.Aggressive: {
		BandUnder35: {Equity: 70, Bond: 20, Cash: 5, Alternative: 5},
		Band35To49:  {Equity: 60, Bond: 25, Cash: 10, Alternative: 5},
		Band50Plus:  {Equity: 50, Bond: 30, Cash: 15, Alternative: 5},
	},
}

// Large-portfolio diversification tilt. The shifts sum to zero.
const (
	LargeAssetThreshold = 500_000
	altBoost            = 5
	equityTrim          = 3
	bondTrim            = 2
)

// BaseAllocation returns the table row for a category and age before any
// asset-size adjustment. Unknown categories use the Aggressive row, the same
// fall-through the scorer's thresholds produce.
func BaseAllocation(category domain.RiskCategory, age int) domain.Allocation {
	rows, ok := allocationTable[category]
	if !ok {
		rows = allocationTable[domain.Aggressive]
	}
	return rows[AgeBandFor(age)]
}

// SelectAllocation looks up the base split and, for portfolios above
// LargeAssetThreshold, shifts weight from equity and bonds into alternatives.
// The result is clamped so no class goes negative.
func SelectAllocation(category domain.RiskCategory, age int, currentAssets int64) domain.Allocation {
	a := BaseAllocation(category, age)
	if currentAssets > LargeAssetThreshold {
		a.Alternative += altBoost
		a.Equity -= equityTrim
		a.Bond -= bondTrim
	}
	return a.ClampNonNegative()
}
