package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"roicalc/internal/domain"

	"github.com/joho/godotenv"
)

// Application settings
type Config struct {
	Server      ServerConfig
	Logging     LoggingConfig
	RateLimit   RateLimitConfig
	CORS        CORSConfig
	Assumptions domain.Assumptions
}

// Server settings
type ServerConfig struct {
	Port            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Per-client request budget
type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

type CORSConfig struct {
	// Empty means every origin is allowed
	AllowedOrigins []string
}

// Logging settings
type LoggingConfig struct {
	Level string
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	assumptions, err := loadAssumptions()
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			RequestTimeout:  getDurationEnv("REQUEST_TIMEOUT", "10s"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", "15s"),
		},
		RateLimit: RateLimitConfig{
			PerSecond: getFloatEnv("RATE_LIMIT_PER_SECOND", 20),
			Burst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		CORS: CORSConfig{
			AllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Assumptions: assumptions,
	}

	return config, nil
}

// loadAssumptions starts from the default model and applies policy overrides
func loadAssumptions() (domain.Assumptions, error) {
	a := domain.DefaultAssumptions()
	p := &a.Policies
	var err error

	if p.ColdCallingBooking, err = domain.ParseColdCallingBookingPolicy(getEnv("COLD_CALLING_BOOKING_POLICY", string(p.ColdCallingBooking))); err != nil {
		return a, fmt.Errorf("invalid configuration: %w", err)
	}
	if p.ColdCallingStaffing, err = domain.ParseColdCallingStaffingPolicy(getEnv("COLD_CALLING_STAFFING_POLICY", string(p.ColdCallingStaffing))); err != nil {
		return a, fmt.Errorf("invalid configuration: %w", err)
	}
	if p.ColdCallingPricing, err = domain.ParseColdCallingPricingPolicy(getEnv("COLD_CALLING_PRICING_POLICY", string(p.ColdCallingPricing))); err != nil {
		return a, fmt.Errorf("invalid configuration: %w", err)
	}
	if p.LinkedInStaffing, err = domain.ParseLinkedInStaffingPolicy(getEnv("LINKEDIN_STAFFING_POLICY", string(p.LinkedInStaffing))); err != nil {
		return a, fmt.Errorf("invalid configuration: %w", err)
	}
	if p.LinkedInFunnel, err = domain.ParseLinkedInFunnelPolicy(getEnv("LINKEDIN_FUNNEL_POLICY", string(p.LinkedInFunnel))); err != nil {
		return a, fmt.Errorf("invalid configuration: %w", err)
	}
	if p.LinkedInResponses, err = domain.ParseLinkedInResponsePolicy(getEnv("LINKEDIN_RESPONSE_POLICY", string(p.LinkedInResponses))); err != nil {
		return a, fmt.Errorf("invalid configuration: %w", err)
	}
	if p.StaffAggregation, err = domain.ParseStaffAggregationPolicy(getEnv("STAFF_AGGREGATION_POLICY", string(p.StaffAggregation))); err != nil {
		return a, fmt.Errorf("invalid configuration: %w", err)
	}
	if p.RampMode, err = domain.ParseRampMode(getEnv("RAMP_MODE", string(p.RampMode))); err != nil {
		return a, fmt.Errorf("invalid configuration: %w", err)
	}

	a.SDRAnnualSalary = getFloatEnv("SDR_ANNUAL_SALARY", a.SDRAnnualSalary)
	a.WorkingDaysPerMonth = getIntEnv("WORKING_DAYS_PER_MONTH", a.WorkingDaysPerMonth)

	return a, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getDurationEnv(key, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getListEnv(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
