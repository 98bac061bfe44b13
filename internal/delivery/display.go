package delivery

import (
	"roicalc/internal/domain"
	"roicalc/pkg/format"

	"github.com/gin-gonic/gin"
)

// displayResult renders the headline figures the way the result cards show them
func displayResult(r *domain.Result) gin.H {
	channels := gin.H{}
	for _, ch := range domain.Channels {
		out := r.Channel(ch)
		channels[string(ch)] = gin.H{
			"leads":          format.Number(float64(out.Leads)),
			"deals":          format.Number(float64(out.Deals)),
			"annual_revenue": format.Currency(out.AnnualRevenue),
			"monthly_cost":   format.Currency(out.MonthlyCost),
			"roi":            format.Percent(out.ROI),
			"revenue_share":  format.Percent(r.Aggregate.RevenueShare[ch]),
		}
	}

	agg := r.Aggregate
	return gin.H{
		"channels": channels,
		"totals": gin.H{
			"leads":   format.Number(float64(agg.TotalLeads)),
			"deals":   format.Number(float64(agg.TotalDeals)),
			"revenue": format.Currency(agg.TotalRevenue),
		},
		"staff_model": gin.H{
			"sdrs":        format.Number(float64(agg.TotalStaff)),
			"annual_cost": format.Currency(agg.AnnualStaffCost),
			"revenue":     format.Currency(agg.StaffAdjustedRevenue),
			"roi":         format.Percent(agg.StaffModelROI),
		},
		"managed_service": gin.H{
			"monthly_cost":            format.Currency(agg.ManagedMonthlyCost),
			"discount":                format.Percent(agg.DiscountRate * 100),
			"discounted_monthly_cost": format.Currency(agg.DiscountedMonthlyCost),
			"annual_cost":             format.Currency(agg.AnnualManagedCost),
			"roi":                     format.Percent(agg.ManagedServiceROI),
		},
		"combined": gin.H{
			"annual_cost": format.Currency(agg.CombinedAnnualCost),
			"roi":         format.Percent(agg.CombinedROI),
		},
		"placement": gin.H{
			"recommended_reps": format.Number(float64(r.Placement.RecommendedReps)),
			"total_fee":        format.Currency(r.Placement.TotalFee),
		},
	}
}
