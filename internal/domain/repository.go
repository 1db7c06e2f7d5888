package domain

import "context"

// PhoneRepository defines the read API the advisor core needs from the
// catalog. Name lookups are case-insensitive; GetByName tries exact match,
// then substring, then a pass with "samsung"/"galaxy" tokens stripped.
type PhoneRepository interface {
	ListModelNames(ctx context.Context) ([]string, error)
	GetByName(ctx context.Context, name string) (*PhoneRecord, error)
	ListUnderPrice(ctx context.Context, maxPrice float64, limit int) ([]PhoneRecord, error)
	ListAll(ctx context.Context) ([]PhoneRecord, error)
	Count(ctx context.Context) (int, error)
}

// Generator produces a prose answer from a structured query result. It may be
// slow or failing; callers bound it with a timeout and fall back to
// deterministic rendering.
type Generator interface {
	Name() string
	Generate(ctx context.Context, result *QueryResult) (string, error)
}
