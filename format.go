package paramnav

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GainToDb converts a linear gain factor to decibels.
func GainToDb(gain float64) float64 {
	return 20 * math.Log10(gain)
}

// DbToGain converts decibels to a linear gain factor.
func DbToGain(db float64) float64 {
	return math.Pow(10, db/20)
}

// VolumeText formats a linear gain factor as decibels. Muted (zero) and
// vanishingly small gains read as "-inf dB".
func VolumeText(gain float64) string {
	if gain <= 0 {
		return "-inf dB"
	}
	db := GainToDb(gain)
	if db < -150 {
		return "-inf dB"
	}
	return fmt.Sprintf("%.1f dB", db)
}

// ParseVolume parses an edited volume string back to a linear gain factor.
// The literal "-inf" maps to the gain that mutes.
func ParseVolume(text string) float64 {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "-inf") {
		return 0
	}
	db, _ := parseLeadingFloat(text)
	return DbToGain(db)
}

// PanText formats a pan position in [-1, 1] as a percentage left or right of
// center.
func PanText(pan float64) string {
	percent := int(math.Round(pan * 100))
	switch {
	case percent == 0:
		return "center"
	case percent < 0:
		return fmt.Sprintf("%d%%L", -percent)
	default:
		return fmt.Sprintf("%d%%R", percent)
	}
}

// ParsePan parses a pan string. Accepted forms are "center", a percentage
// with an L or R suffix, or a plain number in [-100, 100] which is taken as a
// percentage (negative meaning left).
func ParsePan(text string) float64 {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" || strings.HasPrefix(text, "c") {
		return 0
	}
	magnitude, _ := parseLeadingFloat(text)
	if strings.HasSuffix(text, "l") {
		if magnitude < 0 {
			magnitude = -magnitude
		}
		return -magnitude / 100
	}
	return magnitude / 100
}

// parseLeadingFloat parses the longest numeric prefix of text, so that
// trailing units like "dB" do not matter. Like atof, failure yields 0.
func parseLeadingFloat(text string) (value float64, ok bool) {
	text = strings.TrimSpace(text)
	end := 0
	seenDigit, seenDot := false, false
	for end < len(text) {
		c := text[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case (c == '-' || c == '+') && end == 0:
		case c == '.' && !seenDot:
			seenDot = true
		default:
			goto done
		}
		end++
	}
done:
	if !seenDigit {
		return 0, false
	}
	value, err := strconv.ParseFloat(text[:end], 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
