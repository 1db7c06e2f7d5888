package domain

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"plain USD", "$1299", 1299, true},
		{"USD with space and comma", "$ 1,049.99", 1049.99, true},
		{"dual currency prefers USD", "$1299 / €1449", 1299, true},
		{"EUR only", "€899", 899, true},
		{"not available", "N/A", 0, false},
		{"empty", "", 0, false},
		{"no number", "contact retailer", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParsePrice(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBatteryMAH(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"5000 mAh, 45W wired charging, 15W wireless", 5000, true},
		{"4000mAh", 4000, true},
		{"3700 MAH", 3700, true},
		{"N/A", 0, false},
		{"45W charging", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseBatteryMAH(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseBatteryMAH(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseCameraMP(t *testing.T) {
	got, ok := ParseCameraMP("200 MP main | 50 MP periscope telephoto | 12 MP ultrawide")
	if !ok || got != 200 {
		t.Errorf("ParseCameraMP = (%d, %v), want (200, true)", got, ok)
	}

	if _, ok := ParseCameraMP("triple camera system"); ok {
		t.Error("expected no match for text without MP figure")
	}
}

func TestParseRAMGB(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"12 GB", 12, true},
		{"8GB", 8, true},
		{"12/16 GB", 16, true},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseRAMGB(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseRAMGB(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
