package calculator

import (
	"testing"

	"roicalc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func linkedInInput() domain.Input {
	in := domain.DefaultInput()
	in.LinkedIn.Include = true
	return in
}

func TestLinkedInFunnel(t *testing.T) {
	in := linkedInInput()

	out := LinkedIn(in.LinkedIn, in.Global, domain.DefaultAssumptions())

	assert.Equal(t, 473, out.Requests)
	assert.Equal(t, 189, out.Connections)
	assert.Equal(t, 57, out.DirectReplies)
	assert.Equal(t, 57, out.ConnectionResponses)
	assert.Equal(t, 114, out.TotalResponses)
	assert.Equal(t, 57, out.Leads)
	assert.Equal(t, 14, out.Deals)
	assert.InDelta(t, 448560, out.AnnualRevenue, 1e-6)

	assert.Equal(t, 1500.0, out.MonthlyCost)
	assert.Equal(t, 18000.0, out.AnnualCost)
	assert.InDelta(t, 2392, out.ROI, 1e-9)

	// 11 messages a day over 15 days per rep
	assert.Equal(t, 3, out.RequiredSDRs)
	assert.InDelta(t, 224280, out.StaffRevenue, 1e-6)
}

func TestLinkedInPolicies(t *testing.T) {
	in := linkedInInput()

	t.Run("simplified funnel", func(t *testing.T) {
		a := domain.DefaultAssumptions()
		a.Policies.LinkedInFunnel = domain.FunnelSimplified

		out := LinkedIn(in.LinkedIn, in.Global, a)
		assert.Equal(t, 114, out.Leads)
		assert.Equal(t, 29, out.Deals)
	})

	t.Run("staffing by seats", func(t *testing.T) {
		a := domain.DefaultAssumptions()
		a.Policies.LinkedInStaffing = domain.StaffingBySeats

		in := in
		in.LinkedIn.Profiles = 4
		out := LinkedIn(in.LinkedIn, in.Global, a)
		assert.Equal(t, 4, out.RequiredSDRs)
		assert.Equal(t, 4500.0, out.MonthlyCost)
	})
}

func TestLinkedInDerivedRequests(t *testing.T) {
	in := linkedInInput()
	in.LinkedIn.DeriveRequests = true
	in.LinkedIn.Profiles = 2

	out := LinkedIn(in.LinkedIn, in.Global, domain.DefaultAssumptions())
	assert.Equal(t, 968, out.Requests)
}

func TestLinkedInResponsesCappedAtConnections(t *testing.T) {
	in := linkedInInput()
	in.LinkedIn.MessageReplyRate = 80
	in.LinkedIn.ResponseRate = 80
	in.LinkedIn.ReplyToMeetingRate = 100

	out := LinkedIn(in.LinkedIn, in.Global, domain.DefaultAssumptions())
	assert.Equal(t, out.Connections, out.TotalResponses)
	assert.LessOrEqual(t, out.Leads, out.Connections)
}

func TestLinkedInSummedResponsesCanExceedConnections(t *testing.T) {
	in := linkedInInput()
	in.LinkedIn.MessageReplyRate = 80
	in.LinkedIn.ResponseRate = 80
	in.LinkedIn.ReplyToMeetingRate = 100

	a := domain.DefaultAssumptions()
	a.Policies.LinkedInResponses = domain.ResponsesSummed

	out := LinkedIn(in.LinkedIn, in.Global, a)
	assert.Equal(t, out.DirectReplies+out.ConnectionResponses, out.TotalResponses)
	assert.Greater(t, out.TotalResponses, out.Connections)
	assert.Equal(t, out.TotalResponses, out.Leads)
}

func TestLinkedInZeroSeatsHasZeroROI(t *testing.T) {
	in := linkedInInput()
	in.LinkedIn.Profiles = 0

	out := LinkedIn(in.LinkedIn, in.Global, domain.DefaultAssumptions())
	assert.Greater(t, out.AnnualRevenue, 0.0)
	assert.Equal(t, 0.0, out.AnnualCost)
	assert.Equal(t, 0.0, out.ROI)
}

func TestLinkedInMonotonicInRates(t *testing.T) {
	a := domain.DefaultAssumptions()
	base := linkedInInput()
	base.LinkedIn.Requests = 5000

	setters := map[string]func(*domain.Input, float64){
		"connect":          func(in *domain.Input, v float64) { in.LinkedIn.ConnectRate = v },
		"message reply":    func(in *domain.Input, v float64) { in.LinkedIn.MessageReplyRate = v },
		"response":         func(in *domain.Input, v float64) { in.LinkedIn.ResponseRate = v },
		"reply to meeting": func(in *domain.Input, v float64) { in.LinkedIn.ReplyToMeetingRate = v },
		"close":            func(in *domain.Input, v float64) { in.Global.CloseRate = v },
	}

	for name, set := range setters {
		var prev domain.LinkedInOutput
		for rate := 0.0; rate <= 100; rate++ {
			in := base
			set(&in, rate)
			out := LinkedIn(in.LinkedIn, in.Global, a)
			assert.GreaterOrEqual(t, out.Leads, prev.Leads, "%s rate %v", name, rate)
			assert.GreaterOrEqual(t, out.Deals, prev.Deals, "%s rate %v", name, rate)
			assert.GreaterOrEqual(t, out.AnnualRevenue, prev.AnnualRevenue, "%s rate %v", name, rate)
			assert.LessOrEqual(t, out.Deals, out.Leads)
			prev = out
		}
	}
}
