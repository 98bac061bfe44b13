package domain

// ChannelOutput carries the figures every channel reports
type ChannelOutput struct {
	// Qualified opportunities per month
	Leads int `json:"leads"`
	// Closed deals per month, before ramp
	Deals         int     `json:"deals"`
	AnnualRevenue float64 `json:"annual_revenue"`
	// Managed-service cost of running the channel
	MonthlyCost float64 `json:"monthly_cost"`
	AnnualCost  float64 `json:"annual_cost"`
	ROI         float64 `json:"roi"`

	// In-house staffing view
	RequiredSDRs int     `json:"required_sdrs"`
	StaffRevenue float64 `json:"staff_revenue"`
}

type EmailOutput struct {
	ChannelOutput
	Prospects int     `json:"prospects"`
	Replies   int     `json:"replies"`
	UnitPrice float64 `json:"unit_price"`
}

type LinkedInOutput struct {
	ChannelOutput
	Requests            int `json:"requests"`
	Connections         int `json:"connections"`
	DirectReplies       int `json:"direct_replies"`
	ConnectionResponses int `json:"connection_responses"`
	TotalResponses      int `json:"total_responses"`
}

type ColdCallingOutput struct {
	ChannelOutput
	MonthlyDials       int `json:"monthly_dials"`
	MonthlyConnections int `json:"monthly_connections"`
	// Per-caller daily figures
	DailyConnections int `json:"daily_connections"`
	DailyLeads       int `json:"daily_leads"`
	DailyBookedLeads int `json:"daily_booked_leads"`
}

// AggregateOutput compares the in-house staffing model with the managed service
type AggregateOutput struct {
	ActiveChannels int     `json:"active_channels"`
	TotalLeads     int     `json:"total_leads"`
	TotalDeals     int     `json:"total_deals"`
	TotalRevenue   float64 `json:"total_revenue"`

	// Percent of total revenue per channel
	RevenueShare map[Channel]float64 `json:"revenue_share"`

	// In-house SDR model
	TotalStaff           int     `json:"total_staff"`
	AnnualStaffCost      float64 `json:"annual_staff_cost"`
	StaffAdjustedRevenue float64 `json:"staff_adjusted_revenue"`
	StaffModelROI        float64 `json:"staff_model_roi"`

	// Managed service model
	ManagedMonthlyCost    float64 `json:"managed_monthly_cost"`
	DiscountRate          float64 `json:"discount_rate"`
	DiscountedMonthlyCost float64 `json:"discounted_monthly_cost"`
	AnnualManagedCost     float64 `json:"annual_managed_cost"`
	ManagedServiceROI     float64 `json:"managed_service_roi"`

	// Managed email plus in-house staff for the other channels
	CombinedAnnualCost float64 `json:"combined_annual_cost"`
	CombinedROI        float64 `json:"combined_roi"`
}

// RampMonth is one month of the first-year revenue projection
type RampMonth struct {
	Month      int     `json:"month"`
	Multiplier float64 `json:"multiplier"`
	Deals      float64 `json:"deals"`
	Revenue    float64 `json:"revenue"`
}

// Placement is the one-time SDR placement quote
type Placement struct {
	RecommendedReps int     `json:"recommended_reps"`
	FeePerRep       float64 `json:"fee_per_rep"`
	TotalFee        float64 `json:"total_fee"`
}

// Result is the full output snapshot of one calculation
type Result struct {
	Email       EmailOutput       `json:"email"`
	LinkedIn    LinkedInOutput    `json:"linkedin"`
	ColdCalling ColdCallingOutput `json:"cold_calling"`
	Aggregate   AggregateOutput   `json:"aggregate"`
	Projection  []RampMonth       `json:"projection"`
	Placement   Placement         `json:"placement"`
}

// Channel returns the shared figures of one channel
func (r Result) Channel(ch Channel) ChannelOutput {
	switch ch {
	case ChannelEmail:
		return r.Email.ChannelOutput
	case ChannelLinkedIn:
		return r.LinkedIn.ChannelOutput
	case ChannelColdCalling:
		return r.ColdCalling.ChannelOutput
	}
	return ChannelOutput{}
}
