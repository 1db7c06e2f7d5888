package usecase

import (
	"testing"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

func TestScore(t *testing.T) {
	ranker := NewRanker(false)

	base := domain.PhoneRecord{
		ModelName: "Samsung Galaxy Test",
		Battery:   "5000 mAh",
		Camera:    "200 MP main | 12 MP ultrawide",
		RAM:       "12 GB",
		Display:   "6.8 inches, Dynamic AMOLED 2X, 120Hz",
		Price:     "$999",
	}

	t.Run("base signals", func(t *testing.T) {
		got := ranker.Score(base, domain.Criteria{})
		// 5000/1000 + 200/50 + 12/4
		want := 5.0 + 4.0 + 3.0
		if got != want {
			t.Errorf("Score = %v, want %v", got, want)
		}
	})

	t.Run("unparseable fields contribute zero", func(t *testing.T) {
		record := domain.PhoneRecord{Battery: "N/A", Camera: "great", RAM: "plenty"}
		if got := ranker.Score(record, domain.Criteria{}); got != 0 {
			t.Errorf("Score = %v, want 0", got)
		}
	})

	t.Run("battery focus bonus", func(t *testing.T) {
		got := ranker.Score(base, domain.Criteria{Focus: domain.FocusBattery})
		want := 12.0 + 5000.0/500.0
		if got != want {
			t.Errorf("Score = %v, want %v", got, want)
		}
	})

	t.Run("camera focus bonus", func(t *testing.T) {
		got := ranker.Score(base, domain.Criteria{Focus: domain.FocusCamera})
		want := 12.0 + 200.0/25.0
		if got != want {
			t.Errorf("Score = %v, want %v", got, want)
		}
	})

	t.Run("display focus bonuses", func(t *testing.T) {
		got := ranker.Score(base, domain.Criteria{Focus: domain.FocusDisplay})
		want := 12.0 + 2.0 + 1.0 // 120Hz + AMOLED
		if got != want {
			t.Errorf("Score = %v, want %v", got, want)
		}
	})

	t.Run("under budget bonus", func(t *testing.T) {
		got := ranker.Score(base, domain.Criteria{PriceMax: 1000, HasPriceMax: true})
		want := 12.0 + 3.0
		if got != want {
			t.Errorf("Score = %v, want %v", got, want)
		}
	})

	t.Run("over budget penalty", func(t *testing.T) {
		got := ranker.Score(base, domain.Criteria{PriceMax: 500, HasPriceMax: true})
		want := 12.0 - 5.0
		if got != want {
			t.Errorf("Score = %v, want %v", got, want)
		}
	})

	t.Run("budget ignored when price unparseable", func(t *testing.T) {
		record := base
		record.Price = "N/A"
		got := ranker.Score(record, domain.Criteria{PriceMax: 500, HasPriceMax: true})
		if got != 12.0 {
			t.Errorf("Score = %v, want 12", got)
		}
	})
}

func TestRank(t *testing.T) {
	ranker := NewRanker(false)

	small := domain.PhoneRecord{ModelName: "Small", Battery: "3700 mAh", Camera: "50 MP", RAM: "8 GB"}
	medium := domain.PhoneRecord{ModelName: "Medium", Battery: "4500 mAh", Camera: "50 MP", RAM: "8 GB"}
	large := domain.PhoneRecord{ModelName: "Large", Battery: "5000 mAh", Camera: "200 MP", RAM: "12 GB"}
	extra := domain.PhoneRecord{ModelName: "Extra", Battery: "4000 mAh", Camera: "50 MP", RAM: "8 GB"}

	t.Run("orders by descending score and caps at three", func(t *testing.T) {
		got := ranker.Rank([]domain.PhoneRecord{small, extra, medium, large}, domain.Criteria{})
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		if got[0].ModelName != "Large" || got[1].ModelName != "Medium" || got[2].ModelName != "Extra" {
			t.Errorf("order = %s, %s, %s; want Large, Medium, Extra",
				got[0].ModelName, got[1].ModelName, got[2].ModelName)
		}
	})

	t.Run("equal scores keep input order", func(t *testing.T) {
		twinA := domain.PhoneRecord{ModelName: "Twin A", Battery: "4000 mAh"}
		twinB := domain.PhoneRecord{ModelName: "Twin B", Battery: "4000 mAh"}

		got := ranker.Rank([]domain.PhoneRecord{twinA, twinB}, domain.Criteria{})
		if got[0].ModelName != "Twin A" || got[1].ModelName != "Twin B" {
			t.Errorf("tie order = %s, %s; want Twin A, Twin B", got[0].ModelName, got[1].ModelName)
		}
	})

	t.Run("fewer records than limit", func(t *testing.T) {
		got := ranker.Rank([]domain.PhoneRecord{small}, domain.Criteria{})
		if len(got) != 1 || got[0].ModelName != "Small" {
			t.Errorf("Rank = %v, want just Small", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := ranker.Rank(nil, domain.Criteria{}); len(got) != 0 {
			t.Errorf("Rank(nil) = %v, want empty", got)
		}
	})

	t.Run("budget flips the order", func(t *testing.T) {
		cheap := domain.PhoneRecord{ModelName: "Cheap", Battery: "5000 mAh", Price: "$449"}
		pricey := domain.PhoneRecord{ModelName: "Pricey", Battery: "5000 mAh", Camera: "200 MP", Price: "$1299"}

		criteria := domain.Criteria{PriceMax: 500, HasPriceMax: true}
		got := ranker.Rank([]domain.PhoneRecord{pricey, cheap}, criteria)
		if got[0].ModelName != "Cheap" {
			t.Errorf("top = %s, want Cheap", got[0].ModelName)
		}
	})
}
