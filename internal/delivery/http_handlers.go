package delivery

import (
	"errors"
	"net/http"
	"time"

	"roicalc/internal/domain"
	"roicalc/internal/usecase"
	"roicalc/pkg/format"
	"roicalc/pkg/logger"
	"roicalc/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// HTTPHandlers serves the calculator and pricing endpoints
type HTTPHandlers struct {
	calculatorService *usecase.CalculatorService
	logger            *logger.Logger
	metrics           *metrics.Metrics
}

func NewHTTPHandlers(
	calculatorService *usecase.CalculatorService,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *HTTPHandlers {
	return &HTTPHandlers{
		calculatorService: calculatorService,
		logger:            logger,
		metrics:           metrics,
	}
}

// Calculate runs the ROI calculation. Fields missing from the body keep their default values.
func (h *HTTPHandlers) Calculate(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	requestID := c.GetString("request_id")
	ctx := c.Request.Context()

	input := h.calculatorService.Defaults()
	if err := c.ShouldBindJSON(&input); err != nil {
		h.metrics.RecordRejectedInput("bind")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid request body",
			"message":    err.Error(),
			"request_id": requestID,
		})
		return
	}

	result, err := h.calculatorService.Calculate(ctx, input)
	if err != nil {
		h.writeError(c, err, "Calculation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"input":      input,
		"result":     result,
		"display":    displayResult(result),
		"request_id": requestID,
	})
}

// GetDefaults returns the initial input snapshot and the active assumptions
func (h *HTTPHandlers) GetDefaults(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	c.JSON(http.StatusOK, gin.H{
		"input":       h.calculatorService.Defaults(),
		"assumptions": h.calculatorService.Assumptions(),
		"request_id":  c.GetString("request_id"),
	})
}

// GetQuote prices a channel mix under the managed service
func (h *HTTPHandlers) GetQuote(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	requestID := c.GetString("request_id")

	var req domain.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.metrics.RecordRejectedInput("bind")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid parameters",
			"message":    err.Error(),
			"request_id": requestID,
		})
		return
	}

	quote, err := h.calculatorService.Quote(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Quote failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quote": quote,
		"display": gin.H{
			"email_unit_price":        format.Currency(quote.EmailUnitPrice*1000) + " per 1,000 emails",
			"monthly_cost":            format.Currency(quote.MonthlyCost),
			"discount":                format.Percent(quote.DiscountRate * 100),
			"discounted_monthly_cost": format.Currency(quote.DiscountedMonthlyCost),
			"annual_cost":             format.Currency(quote.AnnualCost),
		},
		"request_id": requestID,
	})
}

// GetAPIInfo returns API v1 information and available endpoints
func (h *HTTPHandlers) GetAPIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"api_version": "v1",
		"service":     "ROI Calculator",
		"version":     "1.0.0",
		"description": "Compares an in-house SDR team with a managed outbound service across email, LinkedIn and cold calling",
		"endpoints": gin.H{
			"defaults": gin.H{
				"path":        "/api/v1/roi/defaults",
				"method":      "GET",
				"description": "Default input snapshot and active assumptions",
			},
			"calculate": gin.H{
				"path":        "/api/v1/roi/calculate",
				"method":      "POST",
				"description": "Run the ROI calculation; omitted fields keep their defaults",
			},
			"quote": gin.H{
				"path":        "/api/v1/pricing/quote",
				"method":      "GET",
				"description": "Managed-service price for a channel mix",
				"parameters": gin.H{
					"email_volume":   "Optional: emails per month",
					"linkedin_seats": "Optional: LinkedIn profiles",
					"callers":        "Optional: cold callers",
					"full_time":      "Optional: full-time callers (true/false)",
				},
				"example": "/api/v1/pricing/quote?email_volume=20000&linkedin_seats=2",
			},
		},
		"request_id": c.GetString("request_id"),
	})
}

// HealthCheck returns the health status of the service
func (h *HTTPHandlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"service":    "roicalc",
		"version":    "1.0.0",
		"request_id": c.GetString("request_id"),
	})
}

func (h *HTTPHandlers) writeError(c *gin.Context, err error, message string) {
	requestID := c.GetString("request_id")

	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrColdCallingPrerequisite) {
		status = http.StatusBadRequest
	} else {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error(message)
	}

	c.JSON(status, gin.H{
		"error":      message,
		"message":    err.Error(),
		"request_id": requestID,
	})
}
