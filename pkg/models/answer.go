package models

type AnswerSource string

const (
	SourceModel    AnswerSource = "model"
	SourceFallback AnswerSource = "fallback"
)

// StructuredAnswer is the three-part reply shown to the merchant.
type StructuredAnswer struct {
	Insight     string `json:"insight"`
	Explanation string `json:"explanation"`
	Action      string `json:"action"`
	RawResponse string `json:"rawResponse,omitempty"`

	Source AnswerSource `json:"-"`
	Rule   string       `json:"-"`
}

type AskRequest struct {
	Question string `json:"question"`
}

type AnswerBody struct {
	Insight     string `json:"insight"`
	Explanation string `json:"explanation"`
	Action      string `json:"action"`
}

type AskResponse struct {
	Success  bool       `json:"success"`
	Question string     `json:"question"`
	Response AnswerBody `json:"response"`
}

func NewAskResponse(question string, answer *StructuredAnswer) AskResponse {
	return AskResponse{
		Success:  true,
		Question: question,
		Response: AnswerBody{
			Insight:     answer.Insight,
			Explanation: answer.Explanation,
			Action:      answer.Action,
		},
	}
}
