package calculator

import "roicalc/internal/domain"

// EmailUnitPrice returns the per-email managed price for a monthly volume.
// Bands are walked in order; the first band whose UpTo covers the volume wins
// and the open-ended band (UpTo == 0) is the floor rate.
func EmailUnitPrice(volume int, bands []domain.PriceBand) float64 {
	if volume <= 0 || len(bands) == 0 {
		return 0
	}
	for _, band := range bands {
		if band.UpTo == 0 || volume <= band.UpTo {
			return band.Rate
		}
	}
	return bands[len(bands)-1].Rate
}

// EmailMonthlyCost is volume × unit price
func EmailMonthlyCost(volume int, bands []domain.PriceBand) float64 {
	if volume <= 0 {
		return 0
	}
	return float64(volume) * EmailUnitPrice(volume, bands)
}

// LinkedInSeatPrice prices the first seat and each additional seat separately
func LinkedInSeatPrice(seats int, p domain.PricingAssumptions) float64 {
	return tiered(seats, p.LinkedInFirstSeat, p.LinkedInAdditionalSeat)
}

// ColdCallingPackagePrice is the base package, which covers one caller, plus an add-on per extra caller
func ColdCallingPackagePrice(callers int, p domain.PricingAssumptions) float64 {
	return tiered(callers, p.ColdCallingBasePackage, p.ColdCallingAdditional)
}

// ColdCallingFlatPrice bills every caller at the full-time or part-time rate
func ColdCallingFlatPrice(callers int, fullTime bool, p domain.PricingAssumptions) float64 {
	if callers <= 0 {
		return 0
	}
	rate := p.ColdCallingFlatPartTime
	if fullTime {
		rate = p.ColdCallingFlatFullTime
	}
	return float64(callers) * rate
}

// ColdCallingMonthlyCost prices callers according to the pricing policy
func ColdCallingMonthlyCost(callers int, fullTime bool, a domain.Assumptions) float64 {
	if a.Policies.ColdCallingPricing == domain.PricingFlatRate {
		return ColdCallingFlatPrice(callers, fullTime, a.Pricing)
	}
	return ColdCallingPackagePrice(callers, a.Pricing)
}

// DiscountRate returns the multi-channel discount for the number of active channels
func DiscountRate(activeChannels int, p domain.PricingAssumptions) float64 {
	switch {
	case activeChannels >= 3:
		return p.ThreeChannelDiscount
	case activeChannels == 2:
		return p.TwoChannelDiscount
	}
	return 0
}

func tiered(n int, first, additional float64) float64 {
	if n <= 0 {
		return 0
	}
	return first + float64(n-1)*additional
}
