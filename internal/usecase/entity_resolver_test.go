package usecase

import (
	"reflect"
	"testing"
)

var testCatalogNames = []string{
	"Samsung Galaxy S25 Ultra",
	"Samsung Galaxy S25+",
	"Samsung Galaxy S25",
	"Samsung Galaxy S24 Ultra",
	"Samsung Galaxy S24",
	"Samsung Galaxy S23 Ultra",
	"Samsung Galaxy S23",
	"Samsung Galaxy S22 Ultra",
	"Samsung Galaxy S22",
	"Samsung Galaxy Z Fold 6",
	"Samsung Galaxy Z Flip 6",
	"Samsung Galaxy A54 5G",
	"Samsung Galaxy A55 5G",
}

func TestResolveNames(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     []string
	}{
		{
			name:     "full model name",
			question: "tell me about the Samsung Galaxy S24 Ultra",
			want:     []string{"Samsung Galaxy S24 Ultra"},
		},
		{
			name:     "core name without galaxy",
			question: "how good is the s23 ultra camera",
			want:     []string{"Samsung Galaxy S23 Ultra"},
		},
		{
			name:     "two models for comparison",
			question: "compare Galaxy S23 Ultra and S22 Ultra for photography",
			want:     []string{"Samsung Galaxy S23 Ultra", "Samsung Galaxy S22 Ultra"},
		},
		{
			name:     "base model does not leak into variant query",
			question: "specs of the s24 ultra",
			want:     []string{"Samsung Galaxy S24 Ultra"},
		},
		{
			name:     "variant does not leak into base query",
			question: "specs of the s24",
			want:     []string{"Samsung Galaxy S24"},
		},
		{
			name:     "plus sign suffix",
			question: "is the s25+ worth it",
			want:     []string{"Samsung Galaxy S25+"},
		},
		{
			name:     "fold with generation",
			question: "what about the z fold 6",
			want:     []string{"Samsung Galaxy Z Fold 6"},
		},
		{
			name:     "flip with generation",
			question: "z flip 6 battery life",
			want:     []string{"Samsung Galaxy Z Flip 6"},
		},
		{
			name:     "wrong fold generation matches nothing",
			question: "z fold 4 review",
			want:     nil,
		},
		{
			name:     "a series",
			question: "a54 vs a55",
			want:     []string{"Samsung Galaxy A54 5G", "Samsung Galaxy A55 5G"},
		},
		{
			name:     "number embedded in larger token is not a mention",
			question: "error code s245 on my phone",
			want:     nil,
		},
		{
			name:     "no entities",
			question: "best phone for gaming",
			want:     nil,
		},
	}

	resolver := NewEntityResolver(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.ResolveNames(tt.question, testCatalogNames)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveNames(%q) = %v, want %v", tt.question, got, tt.want)
			}
		})
	}
}

// Every catalog name mentioned verbatim must resolve back to itself at the
// strong tier, whatever sentence it is embedded in.
func TestResolveNames_RoundTrip(t *testing.T) {
	resolver := NewEntityResolver(false)

	for _, name := range testCatalogNames {
		got := resolver.ResolveNames("please show me the "+name+" spec sheet", testCatalogNames)
		if len(got) == 0 || got[0] != name {
			t.Errorf("round trip for %q = %v, want it first", name, got)
		}
	}
}

func TestResolveNames_WeakTier(t *testing.T) {
	resolver := NewEntityResolver(false)

	// "s23" names the base model at 90 and the Ultra only weakly at 30; the
	// strong tier exists, so the weak candidate is dropped.
	got := resolver.ResolveNames("thinking about the s23", testCatalogNames)
	want := []string{"Samsung Galaxy S23"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveNames = %v, want %v", got, want)
	}

	// With only the Ultra in the catalog there is no strong candidate and the
	// weak tier is used.
	got = resolver.ResolveNames("thinking about the s23", []string{"Samsung Galaxy S23 Ultra"})
	want = []string{"Samsung Galaxy S23 Ultra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("weak tier ResolveNames = %v, want %v", got, want)
	}
}

func TestWholeNameMatch(t *testing.T) {
	tests := []struct {
		query string
		name  string
		want  bool
	}{
		{"the galaxy s24 is nice", "galaxy s24", true},
		{"the galaxy s24 ultra is nice", "galaxy s24", false}, // suffix follows
		{"galaxys24", "galaxy s24", false},
		{"galaxy s24x", "galaxy s24", false},
		{"galaxy s24, right?", "galaxy s24", true},
		{"anything", "", false},
	}

	for _, tt := range tests {
		if got := wholeNameMatch(tt.query, tt.name); got != tt.want {
			t.Errorf("wholeNameMatch(%q, %q) = %v, want %v", tt.query, tt.name, got, tt.want)
		}
	}
}
