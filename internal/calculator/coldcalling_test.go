package calculator

import (
	"testing"

	"roicalc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func coldCallingInput() domain.Input {
	in := domain.DefaultInput()
	in.ColdCalling.Include = true
	return in
}

func TestColdCallingPartTime(t *testing.T) {
	in := coldCallingInput()

	out := ColdCalling(in.ColdCalling, in.Global, domain.DefaultAssumptions())

	assert.Equal(t, 12000, out.MonthlyDials)
	assert.Equal(t, 600, out.MonthlyConnections)
	assert.Equal(t, 50, out.DailyConnections)
	assert.Equal(t, 3, out.DailyLeads)
	assert.Equal(t, 1, out.DailyBookedLeads)
	assert.Equal(t, 12, out.Leads)
	assert.Equal(t, 3, out.Deals)
	assert.InDelta(t, 96120, out.AnnualRevenue, 1e-6)

	assert.Equal(t, 10000.0, out.MonthlyCost)
	assert.Equal(t, 120000.0, out.AnnualCost)
	assert.InDelta(t, -19.9, out.ROI, 1e-9)

	assert.Equal(t, 2, out.RequiredSDRs)
	assert.InDelta(t, 48060, out.StaffRevenue, 1e-6)
}

func TestColdCallingFullTimeTeam(t *testing.T) {
	in := coldCallingInput()
	in.ColdCalling.FullTime = true
	in.ColdCalling.Callers = 2
	in.ColdCalling.ConnectRate = 8

	out := ColdCalling(in.ColdCalling, in.Global, domain.DefaultAssumptions())

	assert.Equal(t, 40000, out.MonthlyDials)
	assert.Equal(t, 3200, out.MonthlyConnections)
	assert.Equal(t, 80, out.DailyConnections)
	assert.Equal(t, 1, out.DailyBookedLeads)
	assert.Equal(t, 40, out.Leads)
	assert.Equal(t, 10, out.Deals)
	assert.Equal(t, 15000.0, out.MonthlyCost)
	assert.Equal(t, 4, out.RequiredSDRs)
}

func TestColdCallingPolicies(t *testing.T) {
	in := coldCallingInput()
	in.ColdCalling.Callers = 3

	a := domain.DefaultAssumptions()
	a.Policies.ColdCallingStaffing = domain.StaffingPerCaller
	a.Policies.ColdCallingPricing = domain.PricingFlatRate

	out := ColdCalling(in.ColdCalling, in.Global, a)
	assert.Equal(t, 3, out.RequiredSDRs)
	assert.InDelta(t, 12600, out.MonthlyCost, 1e-9)
}

func TestColdCallingIsDeterministic(t *testing.T) {
	in := coldCallingInput()
	in.ColdCalling.Callers = 7
	a := domain.DefaultAssumptions()

	first := ColdCalling(in.ColdCalling, in.Global, a)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ColdCalling(in.ColdCalling, in.Global, a))
	}
}

func TestColdCallingDisabled(t *testing.T) {
	in := domain.DefaultInput()

	out := ColdCalling(in.ColdCalling, in.Global, domain.DefaultAssumptions())
	assert.Equal(t, domain.ColdCallingOutput{}, out)
}

func TestColdCallingMonotonicInRates(t *testing.T) {
	a := domain.DefaultAssumptions()
	base := coldCallingInput()
	base.ColdCalling.Callers = 5
	base.ColdCalling.FullTime = true

	var prev domain.ColdCallingOutput
	for rate := 1.0; rate <= 12; rate += 0.5 {
		in := base
		in.ColdCalling.ConnectRate = rate
		out := ColdCalling(in.ColdCalling, in.Global, a)
		assert.GreaterOrEqual(t, out.Leads, prev.Leads, "connect rate %v", rate)
		assert.GreaterOrEqual(t, out.Deals, prev.Deals, "connect rate %v", rate)
		assert.GreaterOrEqual(t, out.AnnualRevenue, prev.AnnualRevenue, "connect rate %v", rate)
		prev = out
	}

	prev = domain.ColdCallingOutput{}
	for rate := 0.0; rate <= 100; rate++ {
		in := base
		in.Global.CloseRate = rate
		out := ColdCalling(in.ColdCalling, in.Global, a)
		assert.GreaterOrEqual(t, out.Deals, prev.Deals, "close rate %v", rate)
		assert.LessOrEqual(t, out.Deals, out.Leads)
		prev = out
	}
}
