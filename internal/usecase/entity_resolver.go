package usecase

import (
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

// Confidence levels assigned by the matching rules
const (
	confidenceFullName   = 100 // whole model name appears in the query
	confidenceCoreName   = 95  // name without "galaxy" prefix appears
	confidenceSeriesHit  = 90  // series number and suffix both line up
	confidenceFoldHit    = 90  // fold/flip generation and variant line up
	confidenceFoldLoose  = 40  // fold/flip generation matches, variant ambiguous
	confidenceWeakSeries = 30  // query omits a suffix the candidate carries

	strongConfidenceThreshold = 80
	weakConfidenceThreshold   = 30
)

// Pattern rules for candidate name shapes
var (
	// S/A/Z/N series names like "s24", "s24 ultra", "a54", "s23+"
	seriesNameRegex = regexp.MustCompile(`^([sazn]\d+)\s*(ultra|plus|\+|fe)?$`)

	// Foldable names like "z fold 6", "z flip 5", "z fold special"
	foldNameRegex = regexp.MustCompile(`^z\s*(fold|flip)\s*(\d+)?\s*(fe|special)?$`)

	// Query-side mentions of the foldable families
	zFoldQueryRegex = regexp.MustCompile(`\bz\s*fold\s*(\d+)?\s*(fe|special)?\b`)
	zFlipQueryRegex = regexp.MustCompile(`\bz\s*flip\s*(\d+)?\s*(fe|special)?\b`)
)

// EntityResolver matches free text against known model names, producing
// scored candidates. It holds no state between calls.
type EntityResolver struct {
	enableDebugLogging bool
}

// NewEntityResolver creates a new entity resolver
func NewEntityResolver(enableDebugLogging bool) *EntityResolver {
	return &EntityResolver{enableDebugLogging: enableDebugLogging}
}

// ResolveNames extracts the model names mentioned in a question, ordered by
// descending confidence and deduplicated. Only candidates at confidence >= 80
// are returned; when none clear that bar, candidates >= 30 are used instead.
// An empty result means "no entities recognized", not an error.
func (r *EntityResolver) ResolveNames(text string, knownNames []string) []string {
	query := normalizeQuery(text)

	var candidates []domain.MatchCandidate
	for _, name := range knownNames {
		if c, ok := r.matchName(name, query); ok {
			candidates = append(candidates, c)
		}
	}

	// Stable sort keeps catalog order among equal confidences
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	if r.enableDebugLogging {
		log.Printf("[RESOLVE] query=%q candidates=%v", query, candidates)
	}

	return selectByConfidence(candidates)
}

// matchName evaluates one candidate name against the normalized query,
// applying the rules in order: full name, core name, series+suffix, fold/flip.
func (r *EntityResolver) matchName(name, query string) (domain.MatchCandidate, bool) {
	normalized := normalizeQuery(name)

	if wholeNameMatch(query, normalized) {
		return domain.MatchCandidate{ModelName: name, Confidence: confidenceFullName}, true
	}

	core := strings.TrimSpace(strings.ReplaceAll(normalized, "galaxy ", ""))
	if wholeNameMatch(query, core) {
		return domain.MatchCandidate{ModelName: name, Confidence: confidenceCoreName}, true
	}

	// Catalog names may carry a trailing connectivity tag ("a54 5g") that
	// queries usually omit; it is not part of the series shape.
	seriesCore := strings.TrimSpace(strings.TrimSuffix(core, "5g"))

	if num, suffix, ok := parseSeriesName(seriesCore); ok {
		if conf, found := matchSeriesMention(query, num, suffix); found {
			return domain.MatchCandidate{ModelName: name, Confidence: conf}, true
		}
		return domain.MatchCandidate{}, false
	}

	if series, gen, variant, ok := parseFoldName(core); ok {
		if conf, found := matchFoldMention(query, series, gen, variant); found {
			return domain.MatchCandidate{ModelName: name, Confidence: conf}, true
		}
	}

	return domain.MatchCandidate{}, false
}

// normalizeQuery lowercases and drops the "samsung " token; the matching
// rules all work on this normalized form, for queries and names alike.
func normalizeQuery(text string) string {
	return strings.ReplaceAll(strings.ToLower(text), "samsung ", "")
}

// wholeNameMatch reports whether name occurs in query as a whole token
// sequence that is not immediately followed by a variant suffix. The suffix
// guard is what keeps a base model ("galaxy s24") from matching a query that
// actually names the variant ("galaxy s24 ultra").
func wholeNameMatch(query, name string) bool {
	if name == "" {
		return false
	}

	for start := 0; start <= len(query)-len(name); {
		idx := strings.Index(query[start:], name)
		if idx < 0 {
			return false
		}
		pos := start + idx
		end := pos + len(name)
		start = pos + 1

		if pos > 0 && isWordChar(query[pos-1]) {
			continue
		}
		if end < len(query) && isWordChar(query[end]) {
			continue
		}
		if !followedBySuffix(query[end:]) {
			return true
		}
	}
	return false
}

// followedBySuffix reports whether the text begins (after optional spaces)
// with one of the variant suffix tokens.
func followedBySuffix(rest string) bool {
	trimmed := strings.TrimLeft(rest, " ")
	if strings.HasPrefix(trimmed, "+") {
		return true
	}
	switch leadingWord(trimmed) {
	case "ultra", "plus", "fe":
		return true
	}
	return false
}

// parseSeriesName splits a core name of the shape "<letter><number>[suffix]"
// into its model number and normalized suffix ("+" becomes "plus").
func parseSeriesName(core string) (num, suffix string, ok bool) {
	m := seriesNameRegex.FindStringSubmatch(core)
	if m == nil {
		return "", "", false
	}
	return m[1], normalizeSuffix(m[2]), true
}

// matchSeriesMention scans the query for mentions of the model number and
// decides per occurrence:
//   - same suffix on both sides (including both absent): strong hit
//   - query names a suffix the candidate lacks: no match
//   - query omits a suffix the candidate carries: weak hit, only usable when
//     nothing stronger exists
func matchSeriesMention(query, num, suffix string) (int, bool) {
	for _, querySuffix := range scanSeriesMentions(query, num) {
		if querySuffix == suffix {
			return confidenceSeriesHit, true
		}
		if querySuffix == "" && suffix != "" {
			return confidenceWeakSeries, true
		}
	}
	return 0, false
}

// scanSeriesMentions finds every whole-token occurrence of the model number
// in the query and returns the normalized suffix following each (empty when
// the mention has none).
func scanSeriesMentions(query, num string) []string {
	var suffixes []string
	for start := 0; start <= len(query)-len(num); {
		idx := strings.Index(query[start:], num)
		if idx < 0 {
			break
		}
		pos := start + idx
		end := pos + len(num)
		start = pos + 1

		if pos > 0 && isWordChar(query[pos-1]) {
			continue
		}

		suffix := leadingSuffixToken(query[end:])
		if suffix == "" && end < len(query) && isWordChar(query[end]) {
			// "s24" inside "s245" or "s24x" is not a mention
			continue
		}
		suffixes = append(suffixes, suffix)
	}
	return suffixes
}

// leadingSuffixToken returns the normalized variant suffix at the start of
// the text (after optional spaces), or "" when there is none.
func leadingSuffixToken(rest string) string {
	trimmed := strings.TrimLeft(rest, " ")
	if strings.HasPrefix(trimmed, "+") {
		return "plus"
	}
	switch leadingWord(trimmed) {
	case "ultra":
		return "ultra"
	case "plus":
		return "plus"
	case "fe":
		return "fe"
	}
	return ""
}

// parseFoldName splits a core name of the Z Fold/Flip families into series
// type, numeric generation, and variant tag.
func parseFoldName(core string) (series, gen, variant string, ok bool) {
	m := foldNameRegex.FindStringSubmatch(core)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}

// matchFoldMention looks for the first query mention of the fold/flip family
// and compares generation and variant. Generation must match exactly; a
// matching generation with the variant left ambiguous scores low.
func matchFoldMention(query, series, gen, variant string) (int, bool) {
	re := zFoldQueryRegex
	if series == "flip" {
		re = zFlipQueryRegex
	}

	m := re.FindStringSubmatch(query)
	if m == nil {
		return 0, false
	}
	queryGen, queryVariant := m[1], m[2]

	if gen != queryGen {
		return 0, false
	}
	if variant == queryVariant {
		return confidenceFoldHit, true
	}
	if queryVariant == "" {
		return confidenceFoldLoose, true
	}
	return 0, false
}

// selectByConfidence keeps high-confidence candidates, deduplicated by name
// in their sorted order, falling back to the weak tier when the strong tier
// is empty.
func selectByConfidence(candidates []domain.MatchCandidate) []string {
	pick := func(threshold int) []string {
		var names []string
		seen := make(map[string]bool)
		for _, c := range candidates {
			if c.Confidence >= threshold && !seen[c.ModelName] {
				names = append(names, c.ModelName)
				seen[c.ModelName] = true
			}
		}
		return names
	}

	if names := pick(strongConfidenceThreshold); len(names) > 0 {
		return names
	}
	return pick(weakConfidenceThreshold)
}

func normalizeSuffix(s string) string {
	if s == "+" {
		return "plus"
	}
	return s
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}

// leadingWord returns the run of word characters at the start of s
func leadingWord(s string) string {
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return s[:i]
		}
	}
	return s
}
