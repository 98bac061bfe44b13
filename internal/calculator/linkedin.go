package calculator

import "roicalc/internal/domain"

// LinkedInRequests returns the monthly connection-request volume, derived
// from the profile count when the input asks for it
func LinkedInRequests(in domain.LinkedInInput, a domain.LinkedInAssumptions) int {
	if in.DeriveRequests {
		return in.Profiles * a.RequestsPerProfilePerDay * a.RequestDaysPerMonth
	}
	return in.Requests
}

// LinkedIn runs the connection-request funnel.
//
// Accepted connections either reply to the follow-up message directly or
// respond after the connection step. The two are added; under the capped
// response policy the total is held at the number of connections. Under the meeting-qualified funnel only the share
// that books a meeting becomes a lead.
func LinkedIn(in domain.LinkedInInput, g domain.GlobalInput, a domain.Assumptions) domain.LinkedInOutput {
	if !in.Include {
		return domain.LinkedInOutput{}
	}

	requests := LinkedInRequests(in, a.LinkedIn)
	connections := round(percentOf(float64(requests), in.ConnectRate))
	directReplies := round(percentOf(float64(connections), in.MessageReplyRate))
	responses := round(percentOf(float64(connections), in.ResponseRate))
	totalResponses := directReplies + responses
	if a.Policies.LinkedInResponses != domain.ResponsesSummed {
		totalResponses = min(totalResponses, connections)
	}

	leads := totalResponses
	if a.Policies.LinkedInFunnel != domain.FunnelSimplified {
		leads = round(percentOf(float64(totalResponses), in.ReplyToMeetingRate))
	}
	deals := round(percentOf(float64(leads), g.CloseRate))
	revenue := AnnualRevenue(deals, g.CustomerValue, a.Ramp, a.Policies.RampMode)

	monthlyCost := LinkedInSeatPrice(in.Profiles, a.Pricing)
	annualCost := monthlyCost * domain.MonthsPerYear

	var sdrs int
	switch a.Policies.LinkedInStaffing {
	case domain.StaffingBySeats:
		sdrs = in.Profiles
	default:
		sdrs = ceilDiv(requests, a.LinkedIn.SDRDailyCapacity*a.WorkingDaysPerMonth)
	}

	return domain.LinkedInOutput{
		ChannelOutput: domain.ChannelOutput{
			Leads:         leads,
			Deals:         deals,
			AnnualRevenue: revenue,
			MonthlyCost:   monthlyCost,
			AnnualCost:    annualCost,
			ROI:           ROI(revenue, annualCost),
			RequiredSDRs:  sdrs,
			StaffRevenue:  revenue * a.LinkedIn.StaffEfficiency,
		},
		Requests:            requests,
		Connections:         connections,
		DirectReplies:       directReplies,
		ConnectionResponses: responses,
		TotalResponses:      totalResponses,
	}
}
