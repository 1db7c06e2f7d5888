package usecase

import (
	"fmt"
	"strings"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

// Fixed messages for empty result sets
const (
	noPhonesMessage = "I couldn't find any Samsung phones matching your query. " +
		"Please try rephrasing your question or ask about specific models like Galaxy S24 Ultra, S23, A54, etc."
	askSpecificMessage = "Please ask about specific Samsung phone models or describe what you're looking for."
	needTwoMessage     = "Please specify two phones to compare."
	noCriteriaMessage  = "I couldn't find phones matching your criteria."
)

// Renderer produces deterministic per-intent answers. It is the terminal
// strategy of the generation chain: it always returns a non-empty string.
type Renderer struct{}

// Render formats a query result as prose according to its intent.
func (Renderer) Render(result *domain.QueryResult) string {
	if len(result.Phones) == 0 {
		return noPhonesMessage
	}

	switch result.Intent {
	case domain.IntentComparison:
		return renderComparison(result)
	case domain.IntentRecommendation:
		return renderRecommendation(result)
	case domain.IntentSpecs:
		return renderSpecs(result.Phones[0])
	default:
		return renderGeneral(result)
	}
}

// renderSpecs formats one record as a bullet list of its attributes.
func renderSpecs(p domain.PhoneRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s specifications:\n\n", p.ModelName)
	fmt.Fprintf(&b, "- Display: %s\n", p.Display)
	fmt.Fprintf(&b, "- Battery: %s\n", p.Battery)
	fmt.Fprintf(&b, "- Camera: %s\n", p.Camera)
	fmt.Fprintf(&b, "- RAM: %s\n", p.RAM)
	fmt.Fprintf(&b, "- Storage: %s\n", p.Storage)
	fmt.Fprintf(&b, "- Chipset: %s\n", p.Chipset)
	fmt.Fprintf(&b, "- OS: %s\n", p.OS)
	fmt.Fprintf(&b, "- Price: %s\n", p.Price)
	fmt.Fprintf(&b, "- Released: %s", p.ReleaseDate)
	return b.String()
}

// renderComparison formats side-by-side attribute blocks for two records and
// closes with a one-line recommendation keyed off the focus.
func renderComparison(result *domain.QueryResult) string {
	if len(result.Phones) < 2 {
		if len(result.Phones) == 1 {
			return renderSpecs(result.Phones[0])
		}
		return needTwoMessage
	}

	a, b := result.Phones[0], result.Phones[1]

	var sb strings.Builder
	fmt.Fprintf(&sb, "Comparing %s vs %s:\n\n", a.ModelName, b.ModelName)

	writeBlock := func(label, valueA, valueB string) {
		fmt.Fprintf(&sb, "%s:\n", label)
		fmt.Fprintf(&sb, "  - %s: %s\n", a.ModelName, valueA)
		fmt.Fprintf(&sb, "  - %s: %s\n\n", b.ModelName, valueB)
	}
	writeBlock("Display", a.Display, b.Display)
	writeBlock("Battery", a.Battery, b.Battery)
	writeBlock("Camera", a.Camera, b.Camera)
	writeBlock("Price", a.Price, b.Price)

	sb.WriteString("Recommendation:\n")
	sb.WriteString(comparisonVerdict(result, a, b))
	return sb.String()
}

// comparisonVerdict picks the one-line recommendation: camera MP comparison
// under camera focus, battery mAh comparison under battery focus, otherwise
// the first-listed (newer) model.
func comparisonVerdict(result *domain.QueryResult, a, b domain.PhoneRecord) string {
	focus := result.Criteria.Focus
	mentionsPhoto := strings.Contains(strings.ToLower(result.Question), "photo")

	if focus == domain.FocusCamera || mentionsPhoto {
		mpA, okA := domain.ParseCameraMP(a.Camera)
		mpB, okB := domain.ParseCameraMP(b.Camera)
		if okA && okB {
			switch {
			case mpA > mpB:
				return fmt.Sprintf("%s has a better camera (%dMP vs %dMP) and is recommended for photography.", a.ModelName, mpA, mpB)
			case mpB > mpA:
				return fmt.Sprintf("%s has a better camera (%dMP vs %dMP) and is recommended for photography.", b.ModelName, mpB, mpA)
			default:
				return "Both phones have similar camera capabilities. Consider other factors like price and features."
			}
		}
	} else if focus == domain.FocusBattery {
		mahA, okA := domain.ParseBatteryMAH(a.Battery)
		mahB, okB := domain.ParseBatteryMAH(b.Battery)
		if okA && okB {
			switch {
			case mahA > mahB:
				return fmt.Sprintf("%s has better battery life (%dmAh vs %dmAh).", a.ModelName, mahA, mahB)
			case mahB > mahA:
				return fmt.Sprintf("%s has better battery life (%dmAh vs %dmAh).", b.ModelName, mahB, mahA)
			default:
				return "Both phones have similar battery capacity."
			}
		}
	}

	return fmt.Sprintf("%s is the newer model with improved overall performance and features.", a.ModelName)
}

// renderRecommendation formats a numbered top list with a focus/budget
// specific title and a closing top-pick line.
func renderRecommendation(result *domain.QueryResult) string {
	picks := result.TopPicks
	if len(picks) == 0 {
		picks = result.Phones
		if len(picks) > topPicksLimit {
			picks = picks[:topPicksLimit]
		}
	}
	if len(picks) == 0 {
		return noCriteriaMessage
	}

	title := "Based on your requirements, here are my recommendations:"
	if result.Criteria.HasPriceMax {
		title = fmt.Sprintf("Best Samsung phones under $%d:", int(result.Criteria.PriceMax))
	}
	switch result.Criteria.Focus {
	case domain.FocusBattery:
		title = "Best Samsung phones for battery life:"
	case domain.FocusCamera:
		title = "Best Samsung phones for photography:"
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")

	for i, p := range picks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.ModelName)
		fmt.Fprintf(&b, "   - Price: %s\n", p.Price)
		fmt.Fprintf(&b, "   - Battery: %s\n", p.Battery)
		fmt.Fprintf(&b, "   - Camera: %s\n", p.Camera)
		fmt.Fprintf(&b, "   - Display: %s\n\n", p.Display)
	}

	fmt.Fprintf(&b, "Top recommendation: %s offers the best value for your needs.", picks[0].ModelName)
	return b.String()
}

// renderGeneral dispatches on result size: one record reads as specs, several
// as a recommendation list.
func renderGeneral(result *domain.QueryResult) string {
	switch {
	case len(result.Phones) == 1:
		return renderSpecs(result.Phones[0])
	case len(result.Phones) >= 2:
		return renderRecommendation(result)
	default:
		return askSpecificMessage
	}
}
