package ai

import (
	"regexp"
	"strings"

	"athena.merchant/go-api/pkg/models"
)

const (
	defaultInsight     = "Analyzing your store data..."
	defaultExplanation = "Processing your question..."
	defaultAction      = "Review your store data regularly to maintain optimal performance."
)

var (
	// Markers only consume horizontal space so an empty field never captures
	// the following line.
	insightPattern     = regexp.MustCompile(`(?i)INSIGHT:[ \t]*(.*?)(?:\n|$)`)
	explanationPattern = regexp.MustCompile(`(?is)EXPLANATION:[ \t]*(.*?)(?:\nACTION:|$)`)
	actionPattern      = regexp.MustCompile(`(?i)ACTION:[ \t]*(.*?)(?:\n|$)`)
)

// ParseResponse pulls the labelled fields out of free-form model output.
// Every field degrades independently: a missing marker falls back to the
// first line, the whole text, or a fixed string, so the result is always
// complete. question is accepted for parity with FallbackResponse and is not
// used for matching.
func ParseResponse(raw, question string) models.StructuredAnswer {
	return models.StructuredAnswer{
		Insight:     firstNonEmpty(submatch(insightPattern, raw), firstLine(raw), defaultInsight),
		Explanation: firstNonEmpty(submatch(explanationPattern, raw), raw, defaultExplanation),
		Action:      firstNonEmpty(submatch(actionPattern, raw), defaultAction),
		RawResponse: raw,
		Source:      models.SourceModel,
	}
}

func submatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}
