// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/check2check/backend/internal/application/adapter"
)

// GeminiService implements the AdvisorService using Google Gemini. It
// turns a ranked payoff plan into a short plain-language explanation.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini advisor instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// ExplainPayoffPlan asks the model why the plan orders the debts the way
// it does. Callers treat the explanation as optional decoration.
func (s *GeminiService) ExplainPayoffPlan(ctx context.Context, input adapter.PayoffExplanationInput) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(input)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	explanation, err := s.parseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return explanation, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(input adapter.PayoffExplanationInput) string {
	var sb strings.Builder

	sb.WriteString(`You are a friendly personal finance coach. A user has asked why
their debts are ordered the way they are in a payoff plan.

RULES:
- Explain in plain language, no jargon beyond "interest rate" and "balance"
- Keep it under 120 words
- Do not recommend new financial products
- Do not invent numbers; use only the figures provided below
- Respond with plain text only, no markdown

`)

	sb.WriteString(fmt.Sprintf("STRATEGY: %s\n", input.Strategy))
	if input.Surplus != "" {
		sb.WriteString(fmt.Sprintf("MONTHLY SURPLUS: %s\n", input.Surplus))
	}

	sb.WriteString("\nDEBTS IN PAYOFF ORDER:\n")
	for _, debt := range input.RankedDebts {
		line := fmt.Sprintf("%d. %s - balance %s, interest rate %s%%",
			debt.Rank, debt.Label, debt.Balance.String(), debt.InterestRate.String())
		if debt.Recommended {
			line += " (recommended focus)"
		}
		if debt.GoalActive {
			line += " (already has an active payoff goal)"
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\nExplain why this order makes sense for the chosen strategy.\n")

	return sb.String()
}

// parseResponse extracts the text content from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return strings.TrimSpace(textContent), nil
}
