package calculator

import "roicalc/internal/domain"

// ColdCalling runs the dialer funnel. Daily figures are per caller; monthly
// figures cover every caller over WeeksPerMonth weeks.
func ColdCalling(in domain.ColdCallingInput, g domain.GlobalInput, a domain.Assumptions) domain.ColdCallingOutput {
	if !in.Include {
		return domain.ColdCallingOutput{}
	}

	c := a.ColdCalling
	daysPerWeek := c.PartTimeDaysPerWeek
	if in.FullTime {
		daysPerWeek = c.FullTimeDaysPerWeek
	}
	callerDays := daysPerWeek * c.WeeksPerMonth * in.Callers

	monthlyDials := c.DailyDials * callerDays
	monthlyConnections := round(percentOf(float64(monthlyDials), in.ConnectRate))
	dailyConnections := round(percentOf(float64(c.DailyDials), in.ConnectRate))
	dailyLeads := round(percentOf(float64(dailyConnections), c.LeadRate))

	// BookingDeterministic is the only booking policy
	dailyBooked := round(percentOf(float64(dailyConnections), c.BookingRate))
	leads := dailyBooked * callerDays
	deals := round(percentOf(float64(leads), g.CloseRate))
	revenue := AnnualRevenue(deals, g.CustomerValue, a.Ramp, a.Policies.RampMode)

	monthlyCost := ColdCallingMonthlyCost(in.Callers, in.FullTime, a)
	annualCost := monthlyCost * domain.MonthsPerYear

	sdrs := in.Callers
	if a.Policies.ColdCallingStaffing == domain.StaffingDoublePerCaller {
		sdrs = in.Callers * 2
	}

	return domain.ColdCallingOutput{
		ChannelOutput: domain.ChannelOutput{
			Leads:         leads,
			Deals:         deals,
			AnnualRevenue: revenue,
			MonthlyCost:   monthlyCost,
			AnnualCost:    annualCost,
			ROI:           ROI(revenue, annualCost),
			RequiredSDRs:  sdrs,
			StaffRevenue:  revenue * c.StaffEfficiency,
		},
		MonthlyDials:       monthlyDials,
		MonthlyConnections: monthlyConnections,
		DailyConnections:   dailyConnections,
		DailyLeads:         dailyLeads,
		DailyBookedLeads:   dailyBooked,
	}
}
