package calculator

import "roicalc/internal/domain"

// Email runs the cold email funnel: sends → prospects → replies → leads → deals.
// Every prospect receives SendsPerProspect emails.
func Email(in domain.EmailInput, g domain.GlobalInput, a domain.Assumptions) domain.EmailOutput {
	if !in.Include {
		return domain.EmailOutput{}
	}

	var prospects int
	if a.Email.SendsPerProspect > 0 {
		prospects = round(float64(in.Capacity) / float64(a.Email.SendsPerProspect))
	}
	replies := round(percentOf(float64(prospects), in.ReplyRate))
	leads := round(float64(replies) * a.Email.QualificationFraction)
	deals := round(float64(leads) * in.ConvertRate * g.CloseRate / 10000)
	revenue := AnnualRevenue(deals, g.CustomerValue, a.Ramp, a.Policies.RampMode)

	unitPrice := EmailUnitPrice(in.Capacity, a.Pricing.EmailBands)
	monthlyCost := EmailMonthlyCost(in.Capacity, a.Pricing.EmailBands)
	annualCost := monthlyCost * domain.MonthsPerYear

	return domain.EmailOutput{
		ChannelOutput: domain.ChannelOutput{
			Leads:         leads,
			Deals:         deals,
			AnnualRevenue: revenue,
			MonthlyCost:   monthlyCost,
			AnnualCost:    annualCost,
			ROI:           ROI(revenue, annualCost),
			RequiredSDRs:  ceilDiv(in.Capacity, a.Email.SDRDailyCapacity*a.WorkingDaysPerMonth),
			StaffRevenue:  revenue * a.Email.StaffEfficiency,
		},
		Prospects: prospects,
		Replies:   replies,
		UnitPrice: unitPrice,
	}
}
