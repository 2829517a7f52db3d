package ai

import (
	"fmt"
	"strings"

	"athena.merchant/go-api/pkg/models"
)

// Fallback rule names, also used as metric labels.
const (
	RuleSales     = "sales"
	RuleInventory = "inventory"
	RuleCarts     = "abandoned_carts"
	RuleDefault   = "default"
)

type fallbackRule struct {
	name    string
	matches func(question string, s *models.StoreSnapshot) bool
	respond func(s *models.StoreSnapshot) models.StructuredAnswer
}

// fallbackRules are evaluated in order against the lower-cased question;
// the first match answers.
var fallbackRules = []fallbackRule{
	{
		name: RuleSales,
		matches: func(q string, _ *models.StoreSnapshot) bool {
			return containsAny(q, "sales", "revenue")
		},
		respond: salesAnswer,
	},
	{
		name: RuleInventory,
		matches: func(q string, s *models.StoreSnapshot) bool {
			return containsAny(q, "inventory", "stock", "low") && len(s.LowStockProducts) > 0
		},
		respond: inventoryAnswer,
	},
	{
		name: RuleCarts,
		matches: func(q string, _ *models.StoreSnapshot) bool {
			return containsAny(q, "abandon", "cart")
		},
		respond: abandonedCartAnswer,
	},
	{
		name:    RuleDefault,
		matches: func(string, *models.StoreSnapshot) bool { return true },
		respond: defaultAnswer,
	},
}

// FallbackResponse answers from local keyword rules without calling a model.
// It is a pure function of its inputs.
func FallbackResponse(question string, snapshot *models.StoreSnapshot) models.StructuredAnswer {
	rule := matchRule(question, snapshot)
	answer := rule.respond(snapshot)
	answer.Source = models.SourceFallback
	answer.Rule = rule.name
	return answer
}

func matchRule(question string, snapshot *models.StoreSnapshot) fallbackRule {
	q := strings.ToLower(question)
	for _, rule := range fallbackRules {
		if rule.matches(q, snapshot) {
			return rule
		}
	}
	return fallbackRules[len(fallbackRules)-1]
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func salesAnswer(s *models.StoreSnapshot) models.StructuredAnswer {
	return models.StructuredAnswer{
		Insight:     fmt.Sprintf("Your store has generated $%.2f today from %d orders.", s.RevenueToday, s.OrdersToday),
		Explanation: fmt.Sprintf("This represents an average order value of $%.2f. Your current performance suggests steady customer engagement.", s.AverageOrderValueFor()),
		Action:      `Consider running a promotion to increase your average order value, such as "Buy 2 Get 10% Off" to encourage larger purchases.`,
	}
}

func inventoryAnswer(s *models.StoreSnapshot) models.StructuredAnswer {
	first := s.LowStockProducts[0].Title
	return models.StructuredAnswer{
		Insight:     fmt.Sprintf("You have %d products running low on stock, including %s.", len(s.LowStockProducts), first),
		Explanation: "Maintaining adequate inventory is crucial for customer satisfaction. Running out of popular items can lead to lost sales and disappointed customers.",
		Action:      fmt.Sprintf("Reorder %s immediately to avoid stockouts, and set up inventory alerts for products with less than %d units remaining.", first, models.LowStockThreshold),
	}
}

func abandonedCartAnswer(s *models.StoreSnapshot) models.StructuredAnswer {
	return models.StructuredAnswer{
		Insight:     fmt.Sprintf("You have %d abandoned carts in your system.", s.AbandonedCarts),
		Explanation: "Abandoned carts often indicate customers are interested but need a nudge to complete their purchase. Common reasons include shipping costs, checkout complexity, or indecision.",
		Action:      "Send abandoned cart recovery emails with a 10% discount code to incentivize completion of these purchases.",
	}
}

func defaultAnswer(s *models.StoreSnapshot) models.StructuredAnswer {
	return models.StructuredAnswer{
		Insight:     fmt.Sprintf("Your store shows %d orders today with $%.2f in revenue.", s.OrdersToday, s.RevenueToday),
		Explanation: fmt.Sprintf("Based on your current store data, you have a healthy mix of products with varying inventory levels. Your top-selling product is %s.", s.TopSellingProduct),
		Action:      fmt.Sprintf("Review your product performance dashboard weekly and focus marketing efforts on your best-performing items like %s.", s.TopSellingProduct),
	}
}
