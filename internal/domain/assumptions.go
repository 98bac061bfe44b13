package domain

// MonthsPerYear is the length of the ramp schedule and of every annual figure
const MonthsPerYear = 12

// PriceBand is one step of the email volume price table.
// UpTo is inclusive; a zero UpTo marks the open-ended top band.
type PriceBand struct {
	UpTo int     `json:"up_to"`
	Rate float64 `json:"rate"`
}

type PricingAssumptions struct {
	EmailBands []PriceBand `json:"email_bands"`

	LinkedInFirstSeat      float64 `json:"linkedin_first_seat"`
	LinkedInAdditionalSeat float64 `json:"linkedin_additional_seat"`

	ColdCallingBasePackage  float64 `json:"cold_calling_base_package"`
	ColdCallingAdditional   float64 `json:"cold_calling_additional"`
	ColdCallingFlatFullTime float64 `json:"cold_calling_flat_full_time"`
	ColdCallingFlatPartTime float64 `json:"cold_calling_flat_part_time"`

	TwoChannelDiscount   float64 `json:"two_channel_discount"`
	ThreeChannelDiscount float64 `json:"three_channel_discount"`
}

type EmailAssumptions struct {
	SendsPerProspect      int     `json:"sends_per_prospect"`
	QualificationFraction float64 `json:"qualification_fraction"`
	SDRDailyCapacity      int     `json:"sdr_daily_capacity"`
	StaffEfficiency       float64 `json:"staff_efficiency"`
}

type LinkedInAssumptions struct {
	SDRDailyCapacity         int     `json:"sdr_daily_capacity"`
	RequestsPerProfilePerDay int     `json:"requests_per_profile_per_day"`
	RequestDaysPerMonth      int     `json:"request_days_per_month"`
	StaffEfficiency          float64 `json:"staff_efficiency"`
}

type ColdCallingAssumptions struct {
	DailyDials          int `json:"daily_dials"`
	FullTimeDaysPerWeek int `json:"full_time_days_per_week"`
	PartTimeDaysPerWeek int `json:"part_time_days_per_week"`
	WeeksPerMonth       int `json:"weeks_per_month"`
	// Percent of connections that book a meeting
	BookingRate float64 `json:"booking_rate"`
	// Percent of connections that show interest, display only
	LeadRate        float64 `json:"lead_rate"`
	StaffEfficiency float64 `json:"staff_efficiency"`
}

// RampAssumptions models reduced first-year productivity.
// Factor is the average of Schedule; both modes must agree.
type RampAssumptions struct {
	Factor   float64                `json:"factor"`
	Schedule [MonthsPerYear]float64 `json:"schedule"`
}

type PlacementAssumptions struct {
	EmailsPerRep int     `json:"emails_per_rep"`
	FeePerRep    float64 `json:"fee_per_rep"`
}

// Assumptions is the fixed model the calculator runs against
type Assumptions struct {
	Policies    Policies               `json:"policies"`
	Pricing     PricingAssumptions     `json:"pricing"`
	Email       EmailAssumptions       `json:"email"`
	LinkedIn    LinkedInAssumptions    `json:"linkedin"`
	ColdCalling ColdCallingAssumptions `json:"cold_calling"`
	Ramp        RampAssumptions        `json:"ramp"`
	Placement   PlacementAssumptions   `json:"placement"`

	WorkingDaysPerMonth int     `json:"working_days_per_month"`
	SDRAnnualSalary     float64 `json:"sdr_annual_salary"`
}

func DefaultAssumptions() Assumptions {
	return Assumptions{
		Policies: DefaultPolicies(),
		Pricing: PricingAssumptions{
			EmailBands: []PriceBand{
				{UpTo: 8000, Rate: 0.40},
				{UpTo: 20000, Rate: 0.20},
				{UpTo: 50000, Rate: 0.12},
				{UpTo: 250000, Rate: 0.09},
				{UpTo: 0, Rate: 0.085},
			},
			LinkedInFirstSeat:       1500,
			LinkedInAdditionalSeat:  1000,
			ColdCallingBasePackage:  10000,
			ColdCallingAdditional:   5000,
			ColdCallingFlatFullTime: 7000,
			ColdCallingFlatPartTime: 4200,
			TwoChannelDiscount:      0.15,
			ThreeChannelDiscount:    0.25,
		},
		Email: EmailAssumptions{
			SendsPerProspect:      2,
			QualificationFraction: 0.2,
			SDRDailyCapacity:      125,
			StaffEfficiency:       1,
		},
		LinkedIn: LinkedInAssumptions{
			SDRDailyCapacity:         11,
			RequestsPerProfilePerDay: 22,
			RequestDaysPerMonth:      22,
			StaffEfficiency:          0.5,
		},
		ColdCalling: ColdCallingAssumptions{
			DailyDials:          1000,
			FullTimeDaysPerWeek: 5,
			PartTimeDaysPerWeek: 3,
			WeeksPerMonth:       4,
			BookingRate:         1.85,
			LeadRate:            5,
			StaffEfficiency:     0.5,
		},
		Ramp: RampAssumptions{
			Factor:   0.89,
			Schedule: [MonthsPerYear]float64{0.30, 0.60, 0.85, 0.93, 1, 1, 1, 1, 1, 1, 1, 1},
		},
		Placement: PlacementAssumptions{
			EmailsPerRep: 100000,
			FeePerRep:    4000,
		},
		WorkingDaysPerMonth: 15,
		SDRAnnualSalary:     82470,
	}
}
