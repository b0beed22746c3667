// Package calculator is the HTTP client of the external budget price
// calculator.
package calculator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/logger"
	"ongeo_api/internal/usecase/interfaces"
)

const (
	calculatePath   = "/api/calculate-budget"
	defaultMessage  = "Erro ao calcular orçamento"
	unreachableMsg  = "Serviço de cálculo indisponível"
	maxResponseSize = 1 << 20
)

// HTTPCalculator posts budget requests to the calculator API.
type HTTPCalculator struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IPriceCalculator = (*HTTPCalculator)(nil)

type calculateResponse struct {
	Success       *bool                    `json:"success"`
	TotalPrice    *entities.Amount         `json:"total_price"`
	TotalCost     *entities.Amount         `json:"total_cost"`
	Breakdown     []entities.BreakdownLine `json:"breakdown"`
	EstimatedDays int                      `json:"estimated_days"`
	Message       string                   `json:"message"`
	Error         string                   `json:"error"`
}

func NewHTTPCalculator(baseURL string, timeout time.Duration) *HTTPCalculator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPCalculator{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Calculate prices a budget request. Failures reported by the calculator come
// back as *interfaces.CalculatorError carrying its message.
func (c *HTTPCalculator) Calculate(ctx context.Context, in entities.BudgetRequest) (entities.BudgetResult, error) {
	log := logger.Component("calculator.client")

	body, err := json.Marshal(in)
	if err != nil {
		return entities.BudgetResult{}, fmt.Errorf("failed to encode calculator request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+calculatePath, bytes.NewReader(body))
	if err != nil {
		return entities.BudgetResult{}, fmt.Errorf("failed to create calculator request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("calculator request failed")
		return entities.BudgetResult{}, &interfaces.CalculatorError{Message: unreachableMsg, StatusCode: http.StatusBadGateway}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return entities.BudgetResult{}, fmt.Errorf("failed to read calculator response: %w", err)
	}
	log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("calculator responded")

	var payload calculateResponse
	decodeErr := json.Unmarshal(raw, &payload)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return entities.BudgetResult{}, &interfaces.CalculatorError{
			Message:    payload.message(),
			StatusCode: resp.StatusCode,
		}
	}
	if decodeErr != nil {
		return entities.BudgetResult{}, &interfaces.CalculatorError{Message: defaultMessage, StatusCode: http.StatusBadGateway}
	}
	if payload.Success != nil && !*payload.Success {
		return entities.BudgetResult{}, &interfaces.CalculatorError{
			Message:    payload.message(),
			StatusCode: http.StatusUnprocessableEntity,
		}
	}

	return entities.BudgetResult{
		TotalPrice:    payload.TotalPrice,
		TotalCost:     payload.TotalCost,
		Breakdown:     payload.Breakdown,
		EstimatedDays: payload.EstimatedDays,
	}, nil
}

func (r calculateResponse) message() string {
	if m := strings.TrimSpace(r.Message); m != "" {
		return m
	}
	if m := strings.TrimSpace(r.Error); m != "" {
		return m
	}
	return defaultMessage
}
