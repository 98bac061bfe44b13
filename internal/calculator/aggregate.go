package calculator

import "roicalc/internal/domain"

// Aggregate reduces the per-channel outputs into the staffing vs managed-service comparison.
// Disabled channels carry zero outputs and so contribute nothing.
func Aggregate(email domain.EmailOutput, linkedIn domain.LinkedInOutput, calls domain.ColdCallingOutput, in domain.Input, a domain.Assumptions) domain.AggregateOutput {
	channels := []domain.ChannelOutput{email.ChannelOutput, linkedIn.ChannelOutput, calls.ChannelOutput}

	var out domain.AggregateOutput
	out.ActiveChannels = len(in.ActiveChannels())

	var staffRevenue float64
	for _, ch := range channels {
		out.TotalLeads += ch.Leads
		out.TotalDeals += ch.Deals
		out.TotalRevenue += ch.AnnualRevenue
		out.ManagedMonthlyCost += ch.MonthlyCost
		staffRevenue += ch.StaffRevenue
	}

	out.RevenueShare = make(map[domain.Channel]float64, len(domain.Channels))
	for i, ch := range domain.Channels {
		var share float64
		if out.TotalRevenue > 0 {
			share = channels[i].AnnualRevenue / out.TotalRevenue * 100
		}
		out.RevenueShare[ch] = share
	}

	// In-house SDR model
	out.TotalStaff = combineStaff(a.Policies.StaffAggregation,
		email.RequiredSDRs, linkedIn.RequiredSDRs, calls.RequiredSDRs)
	out.AnnualStaffCost = float64(out.TotalStaff) * a.SDRAnnualSalary
	out.StaffAdjustedRevenue = staffRevenue
	out.StaffModelROI = ROI(out.StaffAdjustedRevenue, out.AnnualStaffCost)

	// Managed service model
	out.DiscountRate = DiscountRate(out.ActiveChannels, a.Pricing)
	out.DiscountedMonthlyCost = out.ManagedMonthlyCost * (1 - out.DiscountRate)
	out.AnnualManagedCost = out.DiscountedMonthlyCost * domain.MonthsPerYear
	out.ManagedServiceROI = ROI(out.TotalRevenue, out.AnnualManagedCost)

	// Managed email, in-house reps for LinkedIn and cold calling
	hybridStaff := combineStaff(a.Policies.StaffAggregation, linkedIn.RequiredSDRs, calls.RequiredSDRs)
	out.CombinedAnnualCost = email.AnnualCost + float64(hybridStaff)*a.SDRAnnualSalary
	hybridRevenue := email.AnnualRevenue + linkedIn.StaffRevenue + calls.StaffRevenue
	out.CombinedROI = ROI(hybridRevenue, out.CombinedAnnualCost)

	return out
}

func combineStaff(policy domain.StaffAggregationPolicy, counts ...int) int {
	var total int
	for _, n := range counts {
		if policy == domain.AggregateMax {
			total = max(total, n)
			continue
		}
		total += n
	}
	return total
}
