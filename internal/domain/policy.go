package domain

import "fmt"

// ColdCallingBookingPolicy selects how booked meetings are derived from connections
type ColdCallingBookingPolicy string

// BookingDeterministic books a fixed fraction of each caller's daily connections.
// Identical inputs always book the same number of meetings.
const BookingDeterministic ColdCallingBookingPolicy = "deterministic"

// ColdCallingStaffingPolicy selects how many in-house reps replace one caller
type ColdCallingStaffingPolicy string

const (
	StaffingPerCaller       ColdCallingStaffingPolicy = "per_caller"
	StaffingDoublePerCaller ColdCallingStaffingPolicy = "double_per_caller"
)

// ColdCallingPricingPolicy selects how the managed cold-calling channel is billed
type ColdCallingPricingPolicy string

const (
	// Base package for the first caller plus a fixed add-on per extra caller.
	// Requires email or LinkedIn to be active.
	PricingPackage ColdCallingPricingPolicy = "package"
	// Flat monthly rate per caller, different for full-time and part-time
	PricingFlatRate ColdCallingPricingPolicy = "flat_rate"
)

// LinkedInStaffingPolicy selects what drives LinkedIn headcount
type LinkedInStaffingPolicy string

const (
	StaffingByMessageVolume LinkedInStaffingPolicy = "message_volume"
	StaffingBySeats         LinkedInStaffingPolicy = "seats"
)

// LinkedInFunnelPolicy selects how LinkedIn responses become leads
type LinkedInFunnelPolicy string

const (
	// Responses go through a reply-to-meeting conversion
	FunnelMeetingQualified LinkedInFunnelPolicy = "meeting_qualified"
	// Every response counts as a lead
	FunnelSimplified LinkedInFunnelPolicy = "simplified"
)

// LinkedInResponsePolicy selects how direct replies and connection responses combine
type LinkedInResponsePolicy string

const (
	// The sum never exceeds the accepted connections
	ResponsesCapped LinkedInResponsePolicy = "capped"
	// Plain sum; may exceed connections when both rates are high
	ResponsesSummed LinkedInResponsePolicy = "summed"
)

// StaffAggregationPolicy selects how per-channel headcount is combined
type StaffAggregationPolicy string

const (
	AggregateSum StaffAggregationPolicy = "sum"
	// Omnichannel reps: the busiest channel sets the headcount
	AggregateMax StaffAggregationPolicy = "max"
)

// RampMode selects how the first-year productivity ramp is applied
type RampMode string

const (
	RampScalar   RampMode = "scalar"
	RampSchedule RampMode = "schedule"
)

// Policies groups every configurable calculation policy
type Policies struct {
	ColdCallingBooking  ColdCallingBookingPolicy  `json:"cold_calling_booking"`
	ColdCallingStaffing ColdCallingStaffingPolicy `json:"cold_calling_staffing"`
	ColdCallingPricing  ColdCallingPricingPolicy  `json:"cold_calling_pricing"`
	LinkedInStaffing    LinkedInStaffingPolicy    `json:"linkedin_staffing"`
	LinkedInFunnel      LinkedInFunnelPolicy      `json:"linkedin_funnel"`
	LinkedInResponses   LinkedInResponsePolicy    `json:"linkedin_responses"`
	StaffAggregation    StaffAggregationPolicy    `json:"staff_aggregation"`
	RampMode            RampMode                  `json:"ramp_mode"`
}

func DefaultPolicies() Policies {
	return Policies{
		ColdCallingBooking:  BookingDeterministic,
		ColdCallingStaffing: StaffingDoublePerCaller,
		ColdCallingPricing:  PricingPackage,
		LinkedInStaffing:    StaffingByMessageVolume,
		LinkedInFunnel:      FunnelMeetingQualified,
		LinkedInResponses:   ResponsesCapped,
		StaffAggregation:    AggregateSum,
		RampMode:            RampScalar,
	}
}

func ParseColdCallingBookingPolicy(s string) (ColdCallingBookingPolicy, error) {
	switch ColdCallingBookingPolicy(s) {
	case BookingDeterministic:
		return BookingDeterministic, nil
	}
	return "", fmt.Errorf("%w: cold calling booking %q", ErrUnknownPolicy, s)
}

func ParseColdCallingStaffingPolicy(s string) (ColdCallingStaffingPolicy, error) {
	switch p := ColdCallingStaffingPolicy(s); p {
	case StaffingPerCaller, StaffingDoublePerCaller:
		return p, nil
	}
	return "", fmt.Errorf("%w: cold calling staffing %q", ErrUnknownPolicy, s)
}

func ParseColdCallingPricingPolicy(s string) (ColdCallingPricingPolicy, error) {
	switch p := ColdCallingPricingPolicy(s); p {
	case PricingPackage, PricingFlatRate:
		return p, nil
	}
	return "", fmt.Errorf("%w: cold calling pricing %q", ErrUnknownPolicy, s)
}

func ParseLinkedInStaffingPolicy(s string) (LinkedInStaffingPolicy, error) {
	switch p := LinkedInStaffingPolicy(s); p {
	case StaffingByMessageVolume, StaffingBySeats:
		return p, nil
	}
	return "", fmt.Errorf("%w: linkedin staffing %q", ErrUnknownPolicy, s)
}

func ParseLinkedInFunnelPolicy(s string) (LinkedInFunnelPolicy, error) {
	switch p := LinkedInFunnelPolicy(s); p {
	case FunnelMeetingQualified, FunnelSimplified:
		return p, nil
	}
	return "", fmt.Errorf("%w: linkedin funnel %q", ErrUnknownPolicy, s)
}

func ParseLinkedInResponsePolicy(s string) (LinkedInResponsePolicy, error) {
	switch p := LinkedInResponsePolicy(s); p {
	case ResponsesCapped, ResponsesSummed:
		return p, nil
	}
	return "", fmt.Errorf("%w: linkedin responses %q", ErrUnknownPolicy, s)
}

func ParseStaffAggregationPolicy(s string) (StaffAggregationPolicy, error) {
	switch p := StaffAggregationPolicy(s); p {
	case AggregateSum, AggregateMax:
		return p, nil
	}
	return "", fmt.Errorf("%w: staff aggregation %q", ErrUnknownPolicy, s)
}

func ParseRampMode(s string) (RampMode, error) {
	switch m := RampMode(s); m {
	case RampScalar, RampSchedule:
		return m, nil
	}
	return "", fmt.Errorf("%w: ramp mode %q", ErrUnknownPolicy, s)
}
