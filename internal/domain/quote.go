package domain

// QuoteRequest asks for the managed-service price of a channel mix
type QuoteRequest struct {
	EmailVolume   int  `form:"email_volume" json:"email_volume" binding:"gte=0,lte=1000000"`
	LinkedInSeats int  `form:"linkedin_seats" json:"linkedin_seats" binding:"gte=0,lte=50"`
	Callers       int  `form:"callers" json:"callers" binding:"gte=0,lte=50"`
	FullTime      bool `form:"full_time" json:"full_time"`
}

// Quote is the managed-service price breakdown for a QuoteRequest
type Quote struct {
	EmailUnitPrice         float64 `json:"email_unit_price"`
	EmailMonthlyCost       float64 `json:"email_monthly_cost"`
	LinkedInMonthlyCost    float64 `json:"linkedin_monthly_cost"`
	ColdCallingMonthlyCost float64 `json:"cold_calling_monthly_cost"`
	ActiveChannels         int     `json:"active_channels"`
	MonthlyCost            float64 `json:"monthly_cost"`
	DiscountRate           float64 `json:"discount_rate"`
	DiscountedMonthlyCost  float64 `json:"discounted_monthly_cost"`
	AnnualCost             float64 `json:"annual_cost"`
}
