package domain

// Channel identifies an outbound sales channel
type Channel string

const (
	ChannelEmail       Channel = "email"
	ChannelLinkedIn    Channel = "linkedin"
	ChannelColdCalling Channel = "cold_calling"
)

// Channels lists every channel in display order
var Channels = []Channel{ChannelEmail, ChannelLinkedIn, ChannelColdCalling}

// GlobalInput holds the assumptions shared by every channel
type GlobalInput struct {
	// Percent of qualified opportunities that close
	CloseRate float64 `json:"close_rate" binding:"gte=0,lte=100"`
	// Value of one closed deal per month
	CustomerValue float64 `json:"customer_value" binding:"gte=0"`
}

type EmailInput struct {
	Include     bool    `json:"include"`
	Capacity    int     `json:"capacity" binding:"gte=0,lte=1000000"`
	ReplyRate   float64 `json:"reply_rate" binding:"gte=0,lte=100"`
	ConvertRate float64 `json:"convert_rate" binding:"gte=0,lte=100"`
}

// LinkedInInput describes a connection-request campaign.
//
// When DeriveRequests is set, Requests is ignored and the monthly request
// volume is computed from Profiles.
type LinkedInInput struct {
	Include            bool    `json:"include"`
	Requests           int     `json:"requests" binding:"gte=0,lte=100000"`
	DeriveRequests     bool    `json:"derive_requests"`
	ConnectRate        float64 `json:"connect_rate" binding:"gte=0,lte=100"`
	MessageReplyRate   float64 `json:"message_reply_rate" binding:"gte=0,lte=100"`
	ResponseRate       float64 `json:"response_rate" binding:"gte=0,lte=100"`
	ReplyToMeetingRate float64 `json:"reply_to_meeting_rate" binding:"gte=0,lte=100"`
	Profiles           int     `json:"profiles" binding:"gte=0,lte=50"`
}

type ColdCallingInput struct {
	Include  bool `json:"include"`
	FullTime bool `json:"full_time"`
	Callers  int  `json:"callers" binding:"gte=0,lte=50"`
	// Percent of dials that reach a person; 1-12 when the channel is included
	ConnectRate float64 `json:"connect_rate" binding:"gte=0,lte=12"`
}

// Input is a complete, self-contained snapshot of calculator assumptions
type Input struct {
	Global      GlobalInput      `json:"global"`
	Email       EmailInput       `json:"email"`
	LinkedIn    LinkedInInput    `json:"linkedin"`
	ColdCalling ColdCallingInput `json:"cold_calling"`
}

// Included reports whether the given channel is switched on
func (i Input) Included(ch Channel) bool {
	switch ch {
	case ChannelEmail:
		return i.Email.Include
	case ChannelLinkedIn:
		return i.LinkedIn.Include
	case ChannelColdCalling:
		return i.ColdCalling.Include
	}
	return false
}

// ActiveChannels returns the included channels in display order
func (i Input) ActiveChannels() []Channel {
	var active []Channel
	for _, ch := range Channels {
		if i.Included(ch) {
			active = append(active, ch)
		}
	}
	return active
}

// DefaultInput returns the calculator's initial state
func DefaultInput() Input {
	return Input{
		Global: GlobalInput{
			CloseRate:     25,
			CustomerValue: 3000,
		},
		Email: EmailInput{
			Include:     true,
			Capacity:    8000,
			ReplyRate:   3,
			ConvertRate: 40,
		},
		LinkedIn: LinkedInInput{
			Include:            false,
			Requests:           473,
			ConnectRate:        40,
			MessageReplyRate:   30,
			ResponseRate:       30,
			ReplyToMeetingRate: 50,
			Profiles:           1,
		},
		ColdCalling: ColdCallingInput{
			Include:     false,
			FullTime:    false,
			Callers:     1,
			ConnectRate: 5,
		},
	}
}
