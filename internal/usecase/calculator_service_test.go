package usecase

import (
	"bytes"
	"context"
	"testing"

	"roicalc/internal/domain"
	"roicalc/pkg/logger"
	"roicalc/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, a domain.Assumptions) (*CalculatorService, *metrics.Metrics, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	m := metrics.New(prometheus.NewRegistry())
	return NewCalculatorService(a, logger.NewWithWriter("debug", &buf), m), m, &buf
}

func TestCalculateDefaults(t *testing.T) {
	svc, m, logs := newTestService(t, domain.DefaultAssumptions())

	res, err := svc.Calculate(context.Background(), svc.Defaults())
	require.NoError(t, err)

	assert.Equal(t, 24, res.Aggregate.TotalLeads)
	assert.Equal(t, 2, res.Aggregate.TotalDeals)
	assert.InDelta(t, 64080, res.Aggregate.TotalRevenue, 1e-6)
	assert.Equal(t, 1, res.Aggregate.ActiveChannels)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChannelActivations.WithLabelValues("email")))
	assert.Contains(t, logs.String(), "ROI calculated")
}

func TestCalculateRejectsOutOfRangeInput(t *testing.T) {
	tests := map[string]func(*domain.Input){
		"close rate above 100":  func(in *domain.Input) { in.Global.CloseRate = 101 },
		"negative value":        func(in *domain.Input) { in.Global.CustomerValue = -1 },
		"negative capacity":     func(in *domain.Input) { in.Email.Capacity = -10 },
		"reply rate above 100":  func(in *domain.Input) { in.Email.ReplyRate = 150 },
		"too many profiles":     func(in *domain.Input) { in.LinkedIn.Profiles = 51 },
		"connect rate above 12": func(in *domain.Input) { in.ColdCalling.ConnectRate = 13 },
		"connect rate below 1": func(in *domain.Input) {
			in.ColdCalling.Include = true
			in.ColdCalling.ConnectRate = 0.5
		},
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			svc, m, _ := newTestService(t, domain.DefaultAssumptions())
			in := domain.DefaultInput()
			mutate(&in)

			res, err := svc.Calculate(context.Background(), in)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectedInputs.WithLabelValues("range")))
		})
	}
}

func TestColdCallingPackageNeedsAnotherChannel(t *testing.T) {
	svc, m, _ := newTestService(t, domain.DefaultAssumptions())

	in := domain.DefaultInput()
	in.Email.Include = false
	in.ColdCalling.Include = true

	_, err := svc.Calculate(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrColdCallingPrerequisite)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectedInputs.WithLabelValues("prerequisite")))

	in.LinkedIn.Include = true
	_, err = svc.Calculate(context.Background(), in)
	assert.NoError(t, err)
}

func TestColdCallingFlatRateStandsAlone(t *testing.T) {
	a := domain.DefaultAssumptions()
	a.Policies.ColdCallingPricing = domain.PricingFlatRate
	svc, _, _ := newTestService(t, a)

	in := domain.DefaultInput()
	in.Email.Include = false
	in.ColdCalling.Include = true

	res, err := svc.Calculate(context.Background(), in)
	require.NoError(t, err)
	assert.InDelta(t, 4200, res.ColdCalling.MonthlyCost, 1e-9)
}

func TestQuote(t *testing.T) {
	svc, m, _ := newTestService(t, domain.DefaultAssumptions())

	q, err := svc.Quote(context.Background(), domain.QuoteRequest{EmailVolume: 8000, LinkedInSeats: 1, Callers: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, q.ActiveChannels)
	assert.InDelta(t, (3200+1500+10000)*0.75, q.DiscountedMonthlyCost, 1e-9)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuotesTotal))

	_, err = svc.Quote(context.Background(), domain.QuoteRequest{Callers: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
