package calculator

import (
	"testing"

	"roicalc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScheduleAveragesToFactor(t *testing.T) {
	r := domain.DefaultAssumptions().Ramp
	assert.InDelta(t, r.Factor, AverageMultiplier(r), 1e-12)
}

func TestScalarAndScheduleAgree(t *testing.T) {
	r := domain.DefaultAssumptions().Ramp

	for deals := 0; deals <= 200; deals++ {
		scalar := AnnualRevenue(deals, 3000, r, domain.RampScalar)
		schedule := AnnualRevenue(deals, 3000, r, domain.RampSchedule)
		assert.InDelta(t, scalar, schedule, 0.01, "deals %d", deals)
	}
}

func TestAnnualRevenue(t *testing.T) {
	r := domain.DefaultAssumptions().Ramp

	assert.InDelta(t, 64080, AnnualRevenue(2, 3000, r, domain.RampScalar), 1e-6)
	assert.Equal(t, 0.0, AnnualRevenue(0, 3000, r, domain.RampScalar))
	assert.Equal(t, 0.0, AnnualRevenue(5, 0, r, domain.RampSchedule))
}

func TestProjection(t *testing.T) {
	r := domain.DefaultAssumptions().Ramp

	months := Projection(10, 1000, r)
	require.Len(t, months, domain.MonthsPerYear)

	assert.Equal(t, 1, months[0].Month)
	assert.InDelta(t, 3000, months[0].Revenue, 1e-9)
	assert.InDelta(t, 9300, months[3].Revenue, 1e-9)
	assert.Equal(t, 12, months[11].Month)
	assert.InDelta(t, 10000, months[11].Revenue, 1e-9)

	var total float64
	for _, m := range months {
		total += m.Revenue
	}
	assert.InDelta(t, AnnualRevenue(10, 1000, r, domain.RampScalar), total, 0.01)
}
