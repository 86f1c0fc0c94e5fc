package calculation

import (
	"fmt"

	"github.com/rpgo/pension-advisor/internal/domain"
	"github.com/rpgo/pension-advisor/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// Funding policy shared by every call site.
const (
	// InflationPercent is the annual rate used to project expenses to retirement.
	InflationPercent = 3
	// PayoutYears is the assumed length of retirement the savings must cover.
	PayoutYears = 25

	monthsPerYear = 12

	// maxCompoundYears is the longest horizon for which 1.03^n stays below
	// MaxInt64. Longer horizons use the flat estimate without compounding.
	maxCompoundYears = 1477
)

var inflationRate = stddec.New(InflationPercent, -2)

// EstimateRetirementNeed projects today's expenses to the retirement date and
// derives the lump sum and monthly savings required to fund PayoutYears of
// retirement. A non-positive horizon is rejected with ErrDegenerateHorizon.
//
// When the inflation projection cannot be represented (out-of-range result,
// a horizon past maxCompoundYears, or negative expenses) the flat estimate
// monthly*12*25 is used instead and the result is marked Simplified.
func EstimateRetirementNeed(age, retirementAge int, monthlyExpenses int64) (domain.RetirementNeed, error) {
	years := retirementAge - age
	if years <= 0 {
		return domain.RetirementNeed{}, fmt.Errorf("estimate retirement need (age %d, retirement age %d): %w",
			age, retirementAge, domain.ErrDegenerateHorizon)
	}

	annual := decimal.NewMoneyFromInt(monthlyExpenses).Annual()
	annualInt, ok := annual.Int64()
	if !ok {
		return domain.RetirementNeed{}, fmt.Errorf("annual expenses: %w", domain.ErrArithmeticOverflow)
	}

	need, err := inflationAdjustedNeed(annual, years)
	if err != nil {
		need, err = simplifiedNeed(annual, years)
		if err != nil {
			return domain.RetirementNeed{}, err
		}
	}
	need.CurrentAnnualExpenses = annualInt
	return need, nil
}

func inflationAdjustedNeed(annual decimal.Money, years int) (domain.RetirementNeed, error) {
	if annual.IsNegative() {
		return domain.RetirementNeed{}, fmt.Errorf("negative expenses cannot be projected")
	}
	if years > maxCompoundYears {
		return domain.RetirementNeed{}, fmt.Errorf("%d years exceeds the inflation projection range", years)
	}
	total := annual.Compound(inflationRate, years).MulInt(PayoutYears)
	return needFromTotal(total, years, false)
}

func simplifiedNeed(annual decimal.Money, years int) (domain.RetirementNeed, error) {
	return needFromTotal(annual.MulInt(PayoutYears), years, true)
}

func needFromTotal(total decimal.Money, years int, simplified bool) (domain.RetirementNeed, error) {
	totalInt, ok := total.Int64()
	if !ok {
		return domain.RetirementNeed{}, fmt.Errorf("projected total need: %w", domain.ErrArithmeticOverflow)
	}
	// Monthly savings are floored from the whole-unit total.
	monthly, ok := decimal.NewMoneyFromInt(totalInt).Div(stddec.NewFromInt(int64(years * monthsPerYear))).Int64()
	if !ok {
		return domain.RetirementNeed{}, fmt.Errorf("monthly savings: %w", domain.ErrArithmeticOverflow)
	}
	return domain.RetirementNeed{
		YearsToRetire:        years,
		ProjectedTotalNeed:   totalInt,
		MonthlySavingsNeeded: monthly,
		Simplified:           simplified,
	}, nil
}
