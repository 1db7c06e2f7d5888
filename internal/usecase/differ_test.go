package usecase

import (
	"testing"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

func TestDiff(t *testing.T) {
	a := domain.PhoneRecord{
		ModelName: "Samsung Galaxy S24 Ultra",
		Display:   "6.8 inches",
		Battery:   "5000 mAh",
		Camera:    "200 MP",
		RAM:       "12 GB",
		Storage:   "256GB/512GB/1TB",
		Chipset:   "Snapdragon 8 Gen 3",
		Price:     "$1299",
	}
	b := domain.PhoneRecord{
		ModelName: "Samsung Galaxy S23 Ultra",
		Display:   "6.8 inches",
		Battery:   "5000 mAh",
		Camera:    "200 MP",
		RAM:       "8/12 GB",
		Storage:   "256GB/512GB/1TB",
		Chipset:   "Snapdragon 8 Gen 2",
		Price:     "$1199",
	}

	t.Run("reports only differing attributes in canonical order", func(t *testing.T) {
		result := Diff(a, b)

		if result.RecordA.ModelName != a.ModelName || result.RecordB.ModelName != b.ModelName {
			t.Errorf("records not carried through: %s vs %s", result.RecordA.ModelName, result.RecordB.ModelName)
		}

		wantAttrs := []string{"ram", "chipset", "price"}
		if len(result.Differences) != len(wantAttrs) {
			t.Fatalf("got %d differences, want %d: %v", len(result.Differences), len(wantAttrs), result.Differences)
		}
		for i, want := range wantAttrs {
			if result.Differences[i].Attribute != want {
				t.Errorf("Differences[%d].Attribute = %s, want %s", i, result.Differences[i].Attribute, want)
			}
		}

		if result.Differences[2].ValueA != "$1299" || result.Differences[2].ValueB != "$1199" {
			t.Errorf("price diff = %q vs %q, want $1299 vs $1199",
				result.Differences[2].ValueA, result.Differences[2].ValueB)
		}
	})

	t.Run("identical records diff to nothing", func(t *testing.T) {
		result := Diff(a, a)
		if len(result.Differences) != 0 {
			t.Errorf("got %d differences, want 0", len(result.Differences))
		}
	})

	t.Run("swapping arguments mirrors the values", func(t *testing.T) {
		forward := Diff(a, b)
		backward := Diff(b, a)

		if len(forward.Differences) != len(backward.Differences) {
			t.Fatalf("asymmetric diff: %d vs %d", len(forward.Differences), len(backward.Differences))
		}
		for i := range forward.Differences {
			f, r := forward.Differences[i], backward.Differences[i]
			if f.Attribute != r.Attribute || f.ValueA != r.ValueB || f.ValueB != r.ValueA {
				t.Errorf("diff %d not mirrored: %+v vs %+v", i, f, r)
			}
		}
	})
}
