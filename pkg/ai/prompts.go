package ai

import (
	"encoding/json"
	"fmt"

	"athena.merchant/go-api/pkg/models"
)

const SystemPrompt = `You are an AI assistant for Shopify merchants. Provide helpful, actionable insights based on store data. Always respond in a structured format with insight, explanation, and action.`

// BuildPrompt renders the user message: store data, the merchant's question
// and the three-line answer format the parser expects.
func BuildPrompt(question string, snapshot *models.StoreSnapshot) string {
	jsonData, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		jsonData = []byte("{}")
	}

	return fmt.Sprintf(`You are an AI assistant for Shopify merchants.

Store data:
%s

Merchant question: "%s"

Respond with:
1. A short insight (one sentence)
2. A clear explanation (2-3 sentences)
3. One concrete action the merchant should take (one actionable step)

Format your response as:
INSIGHT: [your insight]
EXPLANATION: [your explanation]
ACTION: [your recommended action]`, string(jsonData), question)
}
