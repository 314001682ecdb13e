// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/check2check/backend/internal/domain/valueobject"
)

// PayoffExplanationInput carries the ranked plan to be explained.
type PayoffExplanationInput struct {
	Strategy    string
	RankedDebts []valueobject.RankedDebt
	Surplus     string // formatted monthly surplus, empty when unknown
}

// AdvisorService generates a plain-language explanation of a payoff plan.
// Implementations may call an external model; callers must treat the
// explanation as optional decoration and tolerate failures.
type AdvisorService interface {
	// ExplainPayoffPlan returns a short explanation of why the plan orders
	// the debts the way it does.
	ExplainPayoffPlan(ctx context.Context, input PayoffExplanationInput) (string, error)
}
