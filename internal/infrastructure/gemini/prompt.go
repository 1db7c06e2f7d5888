package gemini

import (
	"fmt"
	"strings"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

// promptRecordLimit caps how many records are included in the prompt context
const promptRecordLimit = 5

// BuildPrompt renders a query result into the instruction prompt sent to the
// model.
func BuildPrompt(result *domain.QueryResult) string {
	var phonesContext strings.Builder
	phones := result.Phones
	if len(phones) > promptRecordLimit {
		phones = phones[:promptRecordLimit]
	}
	for _, p := range phones {
		fmt.Fprintf(&phonesContext, `
Phone: %s
- Release: %s
- Display: %s
- Battery: %s
- Camera: %s
- RAM: %s
- Storage: %s
- Chipset: %s
- Price: %s
`, p.ModelName, p.ReleaseDate, p.Display, p.Battery, p.Camera, p.RAM, p.Storage, p.Chipset, p.Price)
	}

	return fmt.Sprintf(`You are a Samsung phone expert assistant. Based on the following phone data, answer the user's question.

User Question: %s
Query Type: %s
Criteria: %s

Available Phone Data:
%s

Provide a helpful, concise response that:
1. Directly answers the user's question
2. Includes relevant specifications
3. Gives clear recommendations if asked
4. Highlights key differences in comparisons
Keep the response under 200 words and focus on the most relevant information.`,
		result.Question, result.Intent, formatCriteria(result.Criteria), phonesContext.String())
}

func formatCriteria(c domain.Criteria) string {
	var parts []string
	if c.HasPriceMax {
		parts = append(parts, fmt.Sprintf("price under $%d", int(c.PriceMax)))
	}
	if c.Focus != "" {
		parts = append(parts, fmt.Sprintf("focus on %s", c.Focus))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
