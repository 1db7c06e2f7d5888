package domain

// Intent is the coarse classification of what a question is asking for.
type Intent string

const (
	IntentComparison     Intent = "comparison"
	IntentRecommendation Intent = "recommendation"
	IntentSpecs          Intent = "specs"
	IntentGeneral        Intent = "general"
)

// Focus is the single spec dimension a recommendation or comparison should
// weight most heavily.
type Focus string

const (
	FocusBattery Focus = "battery"
	FocusCamera  Focus = "camera"
	FocusDisplay Focus = "display"
	FocusOverall Focus = "overall"
)

// PhoneRecord holds one catalog entry. ModelName is the identity key; every
// other field is free-form spec text as scraped/seeded (e.g. "5000 mAh, 45W
// wired charging").
type PhoneRecord struct {
	ModelName   string `json:"modelName"`
	ReleaseDate string `json:"releaseDate"`
	Display     string `json:"display"`
	Battery     string `json:"battery"`
	Camera      string `json:"camera"`
	RAM         string `json:"ram"`
	Storage     string `json:"storage"`
	Price       string `json:"price"`
	Chipset     string `json:"chipset"`
	OS          string `json:"os"`
	Body        string `json:"body,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Criteria are the soft constraints extracted from a question. A zero Focus
// and HasPriceMax=false mean "no signal", not defaults.
type Criteria struct {
	PriceMax    float64 `json:"priceMax,omitempty"`
	HasPriceMax bool    `json:"-"`
	Focus       Focus   `json:"focus,omitempty"`
}

// MatchCandidate is a model name with its resolution confidence (0-100).
// Produced transiently during entity resolution, never persisted.
type MatchCandidate struct {
	ModelName  string
	Confidence int
}

// ScoredCandidate pairs a record with its recommendation score.
type ScoredCandidate struct {
	Record PhoneRecord
	Score  float64
}

// SpecDiff is one differing attribute in a comparison.
type SpecDiff struct {
	Attribute string `json:"attribute"`
	ValueA    string `json:"valueA"`
	ValueB    string `json:"valueB"`
}

// ComparisonResult holds the structured diff of exactly two records.
// Differences follow the canonical attribute order: display, battery, camera,
// ram, storage, chipset, price.
type ComparisonResult struct {
	RecordA     PhoneRecord `json:"recordA"`
	RecordB     PhoneRecord `json:"recordB"`
	Differences []SpecDiff  `json:"differences"`
}

// QueryResult is the orchestrator's structured output, handed to the answer
// renderer (generative or deterministic).
type QueryResult struct {
	Question   string            `json:"question"`
	Intent     Intent            `json:"intent"`
	Criteria   Criteria          `json:"criteria"`
	Phones     []PhoneRecord     `json:"phones"`
	Comparison *ComparisonResult `json:"comparison,omitempty"`
	TopPicks   []PhoneRecord     `json:"topPicks,omitempty"`
}
