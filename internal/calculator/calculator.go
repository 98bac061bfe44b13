// Package calculator turns a snapshot of outbound sales assumptions into
// projected leads, deals, revenue, cost and ROI for an in-house SDR team and
// for a managed service.
//
// Every function is pure: no state is kept between calls and the same input
// always produces the same output, so callers may share one Assumptions value
// across goroutines. Inputs are expected to be range-checked already; the
// functions never return errors and report 0 wherever a denominator is zero.
package calculator

import "roicalc/internal/domain"

// Calculate runs every channel and the aggregator
func Calculate(in domain.Input, a domain.Assumptions) domain.Result {
	email := Email(in.Email, in.Global, a)
	linkedIn := LinkedIn(in.LinkedIn, in.Global, a)
	calls := ColdCalling(in.ColdCalling, in.Global, a)
	agg := Aggregate(email, linkedIn, calls, in, a)

	return domain.Result{
		Email:       email,
		LinkedIn:    linkedIn,
		ColdCalling: calls,
		Aggregate:   agg,
		Projection:  Projection(agg.TotalDeals, in.Global.CustomerValue, a.Ramp),
		Placement:   Placement(in, a.Placement),
	}
}

// Placement quotes the one-time fee for placing in-house SDRs to work the email leads.
// One rep covers up to EmailsPerRep emails a month.
func Placement(in domain.Input, p domain.PlacementAssumptions) domain.Placement {
	if !in.Email.Include {
		return domain.Placement{}
	}

	reps := 1
	if in.Email.Capacity >= p.EmailsPerRep {
		reps = ceilDiv(in.Email.Capacity, p.EmailsPerRep)
	}
	return domain.Placement{
		RecommendedReps: reps,
		FeePerRep:       p.FeePerRep,
		TotalFee:        float64(reps) * p.FeePerRep,
	}
}

// Quote prices a channel mix under the managed service.
// A channel counts as active when it has a non-zero volume, seat or caller count.
func Quote(req domain.QuoteRequest, a domain.Assumptions) domain.Quote {
	q := domain.Quote{
		EmailUnitPrice:         EmailUnitPrice(req.EmailVolume, a.Pricing.EmailBands),
		EmailMonthlyCost:       EmailMonthlyCost(req.EmailVolume, a.Pricing.EmailBands),
		LinkedInMonthlyCost:    LinkedInSeatPrice(req.LinkedInSeats, a.Pricing),
		ColdCallingMonthlyCost: ColdCallingMonthlyCost(req.Callers, req.FullTime, a),
	}

	for _, n := range []int{req.EmailVolume, req.LinkedInSeats, req.Callers} {
		if n > 0 {
			q.ActiveChannels++
		}
	}

	q.MonthlyCost = q.EmailMonthlyCost + q.LinkedInMonthlyCost + q.ColdCallingMonthlyCost
	q.DiscountRate = DiscountRate(q.ActiveChannels, a.Pricing)
	q.DiscountedMonthlyCost = q.MonthlyCost * (1 - q.DiscountRate)
	q.AnnualCost = q.DiscountedMonthlyCost * domain.MonthsPerYear
	return q
}
