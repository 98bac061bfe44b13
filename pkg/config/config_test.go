package config

import (
	"testing"
	"time"

	"roicalc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 20.0, cfg.RateLimit.PerSecond)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
	assert.Equal(t, domain.DefaultAssumptions(), cfg.Assumptions)
}

func TestLoadPolicyOverrides(t *testing.T) {
	t.Setenv("COLD_CALLING_STAFFING_POLICY", "per_caller")
	t.Setenv("COLD_CALLING_PRICING_POLICY", "flat_rate")
	t.Setenv("LINKEDIN_STAFFING_POLICY", "seats")
	t.Setenv("LINKEDIN_FUNNEL_POLICY", "simplified")
	t.Setenv("LINKEDIN_RESPONSE_POLICY", "summed")
	t.Setenv("STAFF_AGGREGATION_POLICY", "max")
	t.Setenv("RAMP_MODE", "schedule")
	t.Setenv("SDR_ANNUAL_SALARY", "90000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	p := cfg.Assumptions.Policies
	assert.Equal(t, domain.StaffingPerCaller, p.ColdCallingStaffing)
	assert.Equal(t, domain.PricingFlatRate, p.ColdCallingPricing)
	assert.Equal(t, domain.StaffingBySeats, p.LinkedInStaffing)
	assert.Equal(t, domain.FunnelSimplified, p.LinkedInFunnel)
	assert.Equal(t, domain.ResponsesSummed, p.LinkedInResponses)
	assert.Equal(t, domain.AggregateMax, p.StaffAggregation)
	assert.Equal(t, domain.RampSchedule, p.RampMode)
	assert.Equal(t, 90000.0, cfg.Assumptions.SDRAnnualSalary)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	tests := map[string]string{
		"COLD_CALLING_BOOKING_POLICY":  "random",
		"COLD_CALLING_STAFFING_POLICY": "triple",
		"STAFF_AGGREGATION_POLICY":     "avg",
		"RAMP_MODE":                    "instant",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnknownPolicy)
		})
	}
}
