package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	pinCodePattern = regexp.MustCompile(`^\d{6}$`)
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	gstPattern     = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z]{1}[A-Z\d]{1}[Z]{1}[A-Z\d]{1}$`)
)

// IsValidPinCode reports whether s is a six digit Indian PIN code.
func IsValidPinCode(s string) bool {
	return pinCodePattern.MatchString(s)
}

func IsValidIFSC(s string) bool {
	return ifscPattern.MatchString(strings.ToUpper(s))
}

func IsValidGSTNumber(s string) bool {
	return gstPattern.MatchString(strings.ToUpper(s))
}

// ParseCoordinates parses latitude/longitude strings and range-checks them.
func ParseCoordinates(latitude, longitude string) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latitude), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(longitude), 64)
	if err != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

// ParseClockTime validates "HH:MM" shift boundaries.
func ParseClockTime(s string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return "", false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", false
	}
	return strings.TrimSpace(s), true
}
