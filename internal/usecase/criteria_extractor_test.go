package usecase

import (
	"testing"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     domain.Intent
	}{
		{"compare keyword", "compare Galaxy S24 and S23", domain.IntentComparison},
		{"vs keyword", "S24 Ultra vs S23 Ultra", domain.IntentComparison},
		{"difference keyword", "what is the difference between S24 and S23", domain.IntentComparison},
		{"better keyword", "is the S24 better than the S23", domain.IntentComparison},
		{"best keyword", "best Samsung phone for gaming", domain.IntentRecommendation},
		{"recommend keyword", "recommend a phone under $800", domain.IntentRecommendation},
		{"which keyword", "which phone has the biggest battery", domain.IntentRecommendation},
		{"spec keyword", "specs of the Galaxy S24 Ultra", domain.IntentSpecs},
		{"tell me about", "tell me about the Galaxy A54", domain.IntentSpecs},
		{"no keywords", "Galaxy S24 Ultra battery", domain.IntentGeneral},
		// "what is the difference" hits both comparison and specs groups;
		// comparison has precedence.
		{"comparison beats specs", "what is the difference in specs", domain.IntentComparison},
		// "which ... better" hits both; comparison checked first.
		{"comparison beats recommendation", "which is better, S24 or S23", domain.IntentComparison},
	}

	extractor := NewCriteriaExtractor(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := extractor.Classify(tt.question)
			if got != tt.want {
				t.Errorf("Classify(%q) intent = %s, want %s", tt.question, got, tt.want)
			}
		})
	}
}

func TestClassifyCriteria(t *testing.T) {
	extractor := NewCriteriaExtractor(false)

	t.Run("extracts price ceiling and focus together", func(t *testing.T) {
		intent, criteria := extractor.Classify("which Samsung phone has the best battery under $1000")

		if intent != domain.IntentRecommendation {
			t.Errorf("intent = %s, want %s", intent, domain.IntentRecommendation)
		}
		if !criteria.HasPriceMax || criteria.PriceMax != 1000 {
			t.Errorf("PriceMax = %v (set=%v), want 1000 (set=true)", criteria.PriceMax, criteria.HasPriceMax)
		}
		if criteria.Focus != domain.FocusBattery {
			t.Errorf("Focus = %s, want %s", criteria.Focus, domain.FocusBattery)
		}
	})

	t.Run("under without dollar sign", func(t *testing.T) {
		_, criteria := extractor.Classify("phones under 800")
		if !criteria.HasPriceMax || criteria.PriceMax != 800 {
			t.Errorf("PriceMax = %v (set=%v), want 800 (set=true)", criteria.PriceMax, criteria.HasPriceMax)
		}
	})

	t.Run("below pattern", func(t *testing.T) {
		_, criteria := extractor.Classify("anything below $500")
		if !criteria.HasPriceMax || criteria.PriceMax != 500 {
			t.Errorf("PriceMax = %v (set=%v), want 500 (set=true)", criteria.PriceMax, criteria.HasPriceMax)
		}
	})

	t.Run("no price leaves ceiling unset", func(t *testing.T) {
		_, criteria := extractor.Classify("best camera phone")
		if criteria.HasPriceMax {
			t.Errorf("HasPriceMax = true, want false")
		}
	})

	t.Run("camera focus from photo keyword", func(t *testing.T) {
		_, criteria := extractor.Classify("best phone for photos")
		if criteria.Focus != domain.FocusCamera {
			t.Errorf("Focus = %s, want %s", criteria.Focus, domain.FocusCamera)
		}
	})

	t.Run("display focus overrides earlier groups", func(t *testing.T) {
		_, criteria := extractor.Classify("good battery and camera but mainly a great screen")
		if criteria.Focus != domain.FocusDisplay {
			t.Errorf("Focus = %s, want %s", criteria.Focus, domain.FocusDisplay)
		}
	})

	t.Run("no focus keywords leaves focus empty", func(t *testing.T) {
		_, criteria := extractor.Classify("cheapest Samsung phone")
		if criteria.Focus != "" {
			t.Errorf("Focus = %s, want empty", criteria.Focus)
		}
	})
}
