package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{64080.2, "$64,080"},
		{1234567.5, "$1,234,568"},
		{-23880, "-$23,880"},
		{-0.3, "$0"},
		{math.NaN(), "$0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Currency(tt.in), "input %v", tt.in)
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "12,000", Number(12000))
	assert.Equal(t, "93", Number(93))
	assert.Equal(t, "0", Number(0))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0%"},
		{25, "25%"},
		{66.875, "66.9%"},
		{-19.9, "-19.9%"},
		{2392, "2,392%"},
		{12.96, "13%"},
		{-0.01, "0%"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.in), "input %v", tt.in)
	}
}
