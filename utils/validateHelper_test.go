package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPinCode(t *testing.T) {
	assert.True(t, IsValidPinCode("411001"))
	assert.True(t, IsValidPinCode("000000"))

	assert.False(t, IsValidPinCode("41100"))
	assert.False(t, IsValidPinCode("4110011"))
	assert.False(t, IsValidPinCode("41100a"))
	assert.False(t, IsValidPinCode(""))
	assert.False(t, IsValidPinCode(" 411001"))
}

func TestIsValidIFSC(t *testing.T) {
	assert.True(t, IsValidIFSC("HDFC0001234"))
	assert.True(t, IsValidIFSC("SBIN0ABC123"))
	// case-insensitive input
	assert.True(t, IsValidIFSC("hdfc0001234"))

	assert.False(t, IsValidIFSC("HDFC1001234"), "fifth character must be zero")
	assert.False(t, IsValidIFSC("HDF00001234"))
	assert.False(t, IsValidIFSC("HDFC000123"))
	assert.False(t, IsValidIFSC(""))
}

func TestIsValidGSTNumber(t *testing.T) {
	assert.True(t, IsValidGSTNumber("27AAPFU0939F1ZV"))
	assert.True(t, IsValidGSTNumber("27aapfu0939f1zv"))

	assert.False(t, IsValidGSTNumber("27AAPFU0939F1XV"), "fourteenth character must be Z")
	assert.False(t, IsValidGSTNumber("27AAPFU0939F1Z"))
	assert.False(t, IsValidGSTNumber("AAAPFU0939F1ZVX"))
	assert.False(t, IsValidGSTNumber(""))
}

func TestParseCoordinates(t *testing.T) {
	lat, lon, ok := ParseCoordinates("18.5204", "73.8567")
	assert.True(t, ok)
	assert.InDelta(t, 18.5204, lat, 0.0001)
	assert.InDelta(t, 73.8567, lon, 0.0001)

	// whitespace tolerated
	_, _, ok = ParseCoordinates(" -90 ", " 180 ")
	assert.True(t, ok)

	_, _, ok = ParseCoordinates("91", "0")
	assert.False(t, ok)
	_, _, ok = ParseCoordinates("0", "-181")
	assert.False(t, ok)
	_, _, ok = ParseCoordinates("abc", "0")
	assert.False(t, ok)
	_, _, ok = ParseCoordinates("0", "")
	assert.False(t, ok)
}

func TestParseClockTime(t *testing.T) {
	v, ok := ParseClockTime("09:00")
	assert.True(t, ok)
	assert.Equal(t, "09:00", v)

	v, ok = ParseClockTime(" 23:59 ")
	assert.True(t, ok)
	assert.Equal(t, "23:59", v)

	_, ok = ParseClockTime("24:00")
	assert.False(t, ok)
	_, ok = ParseClockTime("12:60")
	assert.False(t, ok)
	_, ok = ParseClockTime("1200")
	assert.False(t, ok)
	_, ok = ParseClockTime("12:00:00")
	assert.False(t, ok)
	_, ok = ParseClockTime("")
	assert.False(t, ok)
}
