package interfaces

import (
	"context"

	"ongeo_api/internal/domain/entities"
)

// CalculatorError carries the message returned by the price calculator so it
// can be shown to the user verbatim.
type CalculatorError struct {
	Message    string
	StatusCode int
}

func (e *CalculatorError) Error() string { return e.Message }

// IPriceCalculator is the external budget price calculator.
type IPriceCalculator interface {
	Calculate(ctx context.Context, req entities.BudgetRequest) (entities.BudgetResult, error)
}
