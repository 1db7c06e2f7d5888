package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	usdPriceRegex = regexp.MustCompile(`\$\s*([\d,]+\.?\d*)`)
	eurPriceRegex = regexp.MustCompile(`€\s*([\d,]+\.?\d*)`)
	batteryRegex  = regexp.MustCompile(`(?i)(\d+)\s*mAh`)
	cameraRegex   = regexp.MustCompile(`(?i)(\d+)\s*MP\b`)
	ramRegex      = regexp.MustCompile(`(?i)(\d+)\s*GB`)
)

// ParsePrice extracts a numeric price from free-form price text like
// "$1299 / €1449" or "$ 1,049.99". USD takes precedence over EUR.
// Returns false when no price is recognizable ("N/A", empty, prose).
func ParsePrice(s string) (float64, bool) {
	if s == "" || s == "N/A" {
		return 0, false
	}

	if m := usdPriceRegex.FindStringSubmatch(s); m != nil {
		return parseAmount(m[1])
	}
	if m := eurPriceRegex.FindStringSubmatch(s); m != nil {
		return parseAmount(m[1])
	}
	return 0, false
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseBatteryMAH extracts the battery capacity in mAh from text like
// "5000 mAh, 45W wired charging".
func ParseBatteryMAH(s string) (int, bool) {
	return parseLeadingInt(batteryRegex, s)
}

// ParseCameraMP extracts the main camera resolution in megapixels. The first
// MP figure in the text is taken as the main sensor, matching how catalog
// camera strings are written ("200 MP main | 12 MP ultrawide").
func ParseCameraMP(s string) (int, bool) {
	return parseLeadingInt(cameraRegex, s)
}

// ParseRAMGB extracts the RAM size in GB from text like "12 GB". For
// multi-option strings ("12/16 GB") the figure directly before the unit wins.
func ParseRAMGB(s string) (int, bool) {
	return parseLeadingInt(ramRegex, s)
}

func parseLeadingInt(re *regexp.Regexp, s string) (int, bool) {
	if s == "" || s == "N/A" {
		return 0, false
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}
