package usecase

import "github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"

// canonicalAttributes is the fixed sequence comparisons are reported in.
var canonicalAttributes = []string{"display", "battery", "camera", "ram", "storage", "chipset", "price"}

// Diff computes the differing attributes between exactly two records.
// Attributes are compared by exact string inequality, no normalization, and
// reported in canonical order. Equal values are omitted.
func Diff(a, b domain.PhoneRecord) domain.ComparisonResult {
	result := domain.ComparisonResult{RecordA: a, RecordB: b}

	for _, attr := range canonicalAttributes {
		valueA := attributeValue(a, attr)
		valueB := attributeValue(b, attr)
		if valueA != valueB {
			result.Differences = append(result.Differences, domain.SpecDiff{
				Attribute: attr,
				ValueA:    valueA,
				ValueB:    valueB,
			})
		}
	}

	return result
}

func attributeValue(p domain.PhoneRecord, attr string) string {
	switch attr {
	case "display":
		return p.Display
	case "battery":
		return p.Battery
	case "camera":
		return p.Camera
	case "ram":
		return p.RAM
	case "storage":
		return p.Storage
	case "chipset":
		return p.Chipset
	case "price":
		return p.Price
	}
	return ""
}
