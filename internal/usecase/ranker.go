package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

// Normalization divisors for the additive scoring signals
const (
	batteryDivisor      = 1000.0 // mAh per point
	cameraDivisor       = 50.0   // MP per point
	ramDivisor          = 4.0    // GB per point
	batteryFocusDivisor = 500.0  // mAh per bonus point under battery focus
	cameraFocusDivisor  = 25.0   // MP per bonus point under camera focus
)

// Focus and budget bonuses
const (
	displayRefreshBonus = 2.0 // display text mentions a 120Hz-class panel
	displayPanelBonus   = 1.0 // display text mentions AMOLED
	underBudgetBonus    = 3.0
	overBudgetPenalty   = 5.0
)

// topPicksLimit caps how many records a ranking returns
const topPicksLimit = 3

// Ranker scores and orders records for recommendations. Scoring is a pure
// function of the record and criteria; a signal whose source field cannot be
// parsed contributes zero.
type Ranker struct {
	enableDebugLogging bool
}

// NewRanker creates a new ranker
func NewRanker(enableDebugLogging bool) *Ranker {
	return &Ranker{enableDebugLogging: enableDebugLogging}
}

// Score computes the additive recommendation score for one record.
func (r *Ranker) Score(record domain.PhoneRecord, criteria domain.Criteria) float64 {
	var score float64

	batteryMAH, batteryOK := domain.ParseBatteryMAH(record.Battery)
	if batteryOK {
		score += float64(batteryMAH) / batteryDivisor
	}

	cameraMP, cameraOK := domain.ParseCameraMP(record.Camera)
	if cameraOK {
		score += float64(cameraMP) / cameraDivisor
	}

	if ramGB, ok := domain.ParseRAMGB(record.RAM); ok {
		score += float64(ramGB) / ramDivisor
	}

	switch criteria.Focus {
	case domain.FocusBattery:
		if batteryOK {
			score += float64(batteryMAH) / batteryFocusDivisor
		}
	case domain.FocusCamera:
		if cameraOK {
			score += float64(cameraMP) / cameraFocusDivisor
		}
	case domain.FocusDisplay:
		display := strings.ToLower(record.Display)
		if strings.Contains(display, "120hz") {
			score += displayRefreshBonus
		}
		if strings.Contains(display, "amoled") {
			score += displayPanelBonus
		}
	}

	if criteria.HasPriceMax {
		if price, ok := domain.ParsePrice(record.Price); ok {
			if price <= criteria.PriceMax {
				score += underBudgetBonus
			} else {
				score -= overBudgetPenalty
			}
		}
	}

	return score
}

// Rank orders records by descending score and returns at most the top 3.
// Equal scores keep their input order (stable sort), so callers can rely on
// catalog/resolver order as the tie-break.
func (r *Ranker) Rank(records []domain.PhoneRecord, criteria domain.Criteria) []domain.PhoneRecord {
	scored := make([]domain.ScoredCandidate, 0, len(records))
	for _, record := range records {
		scored = append(scored, domain.ScoredCandidate{
			Record: record,
			Score:  r.Score(record, criteria),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	limit := topPicksLimit
	if len(scored) < limit {
		limit = len(scored)
	}

	picks := make([]domain.PhoneRecord, 0, limit)
	for _, sc := range scored[:limit] {
		if r.enableDebugLogging {
			log.Printf("[RANK] %q score=%.2f", sc.Record.ModelName, sc.Score)
		}
		picks = append(picks, sc.Record)
	}
	return picks
}
