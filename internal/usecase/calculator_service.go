package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roicalc/internal/calculator"
	"roicalc/internal/domain"
	"roicalc/pkg/logger"
	"roicalc/pkg/metrics"

	"github.com/gin-gonic/gin/binding"
)

// CalculatorService is the input layer in front of the pure calculator:
// it range-checks a snapshot, enforces channel prerequisites, runs the
// calculation and records what happened.
type CalculatorService struct {
	assumptions domain.Assumptions
	logger      *logger.Logger
	metrics     *metrics.Metrics
}

// NewCalculatorService creates a new calculator service
func NewCalculatorService(
	assumptions domain.Assumptions,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *CalculatorService {
	return &CalculatorService{
		assumptions: assumptions,
		logger:      logger,
		metrics:     metrics,
	}
}

// Assumptions returns the model the service calculates against
func (s *CalculatorService) Assumptions() domain.Assumptions {
	return s.assumptions
}

// Defaults returns the initial input snapshot
func (s *CalculatorService) Defaults() domain.Input {
	return domain.DefaultInput()
}

// Calculate validates the snapshot and returns the full result
func (s *CalculatorService) Calculate(ctx context.Context, in domain.Input) (*domain.Result, error) {
	start := time.Now()
	log := s.logger.WithContext(ctx)

	channels := make([]string, 0, len(domain.Channels))
	for _, ch := range in.ActiveChannels() {
		channels = append(channels, string(ch))
	}

	if err := s.Validate(in); err != nil {
		s.metrics.RecordRejectedInput(rejectReason(err))
		s.metrics.RecordCalculation("rejected", time.Since(start), nil)
		log.WithError(err).WithField("channels", channels).Warn("Rejected calculator input")
		return nil, fmt.Errorf("failed to calculate: %w", err)
	}

	result := calculator.Calculate(in, s.assumptions)

	log.WithFields(map[string]interface{}{
		"email_leads":        result.Email.Leads,
		"linkedin_leads":     result.LinkedIn.Leads,
		"cold_calling_leads": result.ColdCalling.Leads,
	}).Debug("Channel funnels calculated")

	s.metrics.RecordCalculation("success", time.Since(start), channels)

	agg := result.Aggregate
	log.WithFields(map[string]interface{}{
		"channels":            channels,
		"total_leads":         agg.TotalLeads,
		"total_deals":         agg.TotalDeals,
		"total_revenue":       agg.TotalRevenue,
		"total_staff":         agg.TotalStaff,
		"staff_model_roi":     agg.StaffModelROI,
		"managed_service_roi": agg.ManagedServiceROI,
	}).Info("ROI calculated")

	return &result, nil
}

// Quote prices a channel mix under the managed service
func (s *CalculatorService) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	if err := binding.Validator.ValidateStruct(req); err != nil {
		s.metrics.RecordRejectedInput("range")
		return nil, fmt.Errorf("failed to quote: %w: %v", domain.ErrInvalidInput, err)
	}

	quote := calculator.Quote(req, s.assumptions)
	s.metrics.RecordQuote()

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"email_volume":   req.EmailVolume,
		"linkedin_seats": req.LinkedInSeats,
		"callers":        req.Callers,
		"monthly_cost":   quote.DiscountedMonthlyCost,
	}).Info("Managed service quote generated")

	return &quote, nil
}

// Validate checks field ranges and cross-channel prerequisites
func (s *CalculatorService) Validate(in domain.Input) error {
	if err := binding.Validator.ValidateStruct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if in.ColdCalling.Include {
		if in.ColdCalling.ConnectRate < 1 {
			return fmt.Errorf("%w: cold calling connect rate must be between 1 and 12", domain.ErrInvalidInput)
		}
		if s.assumptions.Policies.ColdCallingPricing == domain.PricingPackage &&
			!in.Email.Include && !in.LinkedIn.Include {
			return domain.ErrColdCallingPrerequisite
		}
	}

	return nil
}

func rejectReason(err error) string {
	if errors.Is(err, domain.ErrColdCallingPrerequisite) {
		return "prerequisite"
	}
	return "range"
}
