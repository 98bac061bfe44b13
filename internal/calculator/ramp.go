package calculator

import "roicalc/internal/domain"

// AverageMultiplier is the mean of the ramp schedule
func AverageMultiplier(r domain.RampAssumptions) float64 {
	var sum float64
	for _, m := range r.Schedule {
		sum += m
	}
	return sum / domain.MonthsPerYear
}

// AnnualRevenue applies the first-year ramp to a steady-state monthly deal count.
//
// In scalar mode the revenue is deals × value × 12 × Factor. In schedule mode
// each month contributes deals × value × multiplier. With the default schedule
// the two agree to floating-point tolerance.
func AnnualRevenue(monthlyDeals int, customerValue float64, r domain.RampAssumptions, mode domain.RampMode) float64 {
	if monthlyDeals <= 0 || customerValue <= 0 {
		return 0
	}
	monthly := float64(monthlyDeals) * customerValue

	if mode == domain.RampSchedule {
		var total float64
		for _, m := range r.Schedule {
			total += monthly * m
		}
		return total
	}
	return monthly * domain.MonthsPerYear * r.Factor
}

// Projection spreads a monthly deal count over the ramp schedule month by month
func Projection(monthlyDeals int, customerValue float64, r domain.RampAssumptions) []domain.RampMonth {
	months := make([]domain.RampMonth, domain.MonthsPerYear)
	for i, m := range r.Schedule {
		deals := float64(monthlyDeals) * m
		months[i] = domain.RampMonth{
			Month:      i + 1,
			Multiplier: m,
			Deals:      deals,
			Revenue:    deals * customerValue,
		}
	}
	return months
}
