package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

// Intent keyword groups, checked in precedence order. The first group with a
// hit wins; there is no scoring across groups.
var (
	comparisonKeywords     = []string{"compare", "versus", "vs", "difference", "better"}
	recommendationKeywords = []string{"best", "recommend", "which", "should i", "top"}
	specsKeywords          = []string{"spec", "feature", "detail", "what is", "what are", "tell me about"}
)

// Compiled regex patterns for price ceiling extraction
var (
	underPriceRegex = regexp.MustCompile(`under\s*\$?(\d+)`)
	belowPriceRegex = regexp.MustCompile(`below\s*\$?(\d+)`)
)

// Focus keyword groups. Evaluation order is battery, camera, display; a later
// group overwrites an earlier hit, so display wins over camera wins over
// battery when several appear. Callers depend on that order.
var (
	batteryFocusKeywords = []string{"battery", "long lasting"}
	cameraFocusKeywords  = []string{"camera", "photo"}
	displayFocusKeywords = []string{"display", "screen"}
)

// CriteriaExtractor parses free text into an intent label and soft criteria.
// It is a pure function over the question text; no state, no side effects.
type CriteriaExtractor struct {
	enableDebugLogging bool
}

// NewCriteriaExtractor creates a new criteria extractor
func NewCriteriaExtractor(enableDebugLogging bool) *CriteriaExtractor {
	return &CriteriaExtractor{enableDebugLogging: enableDebugLogging}
}

// Classify derives the intent and criteria from a raw question. Absent
// signals leave criteria fields unset rather than defaulted.
func (e *CriteriaExtractor) Classify(text string) (domain.Intent, domain.Criteria) {
	lower := strings.ToLower(text)

	intent := classifyIntent(lower)

	var criteria domain.Criteria

	// "under $N" is checked before "below $N"; when both appear the later
	// pattern overwrites.
	if m := underPriceRegex.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			criteria.PriceMax = v
			criteria.HasPriceMax = true
		}
	}
	if m := belowPriceRegex.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			criteria.PriceMax = v
			criteria.HasPriceMax = true
		}
	}

	if containsAny(lower, batteryFocusKeywords) {
		criteria.Focus = domain.FocusBattery
	}
	if containsAny(lower, cameraFocusKeywords) {
		criteria.Focus = domain.FocusCamera
	}
	if containsAny(lower, displayFocusKeywords) {
		criteria.Focus = domain.FocusDisplay
	}

	if e.enableDebugLogging {
		log.Printf("[CLASSIFY] %q -> intent=%s focus=%s priceMax=%v(set=%v)",
			text, intent, criteria.Focus, criteria.PriceMax, criteria.HasPriceMax)
	}

	return intent, criteria
}

// classifyIntent picks the intent by keyword group precedence
func classifyIntent(lower string) domain.Intent {
	switch {
	case containsAny(lower, comparisonKeywords):
		return domain.IntentComparison
	case containsAny(lower, recommendationKeywords):
		return domain.IntentRecommendation
	case containsAny(lower, specsKeywords):
		return domain.IntentSpecs
	default:
		return domain.IntentGeneral
	}
}

// containsAny reports whether any keyword appears as a substring of s
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
