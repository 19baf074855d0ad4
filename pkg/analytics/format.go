package analytics

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var byteUnits = [...]string{"Bytes", "KB", "MB", "GB"}

// FormatBytes renders a byte count in 1024-based units rounded to two
// decimals, e.g. 1536 → "1.5 KB".
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	v, i := float64(n), 0
	for v >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + byteUnits[i]
}

var printer = message.NewPrinter(language.English)

// FormatNumber renders n with thousands separators, e.g. 1234567 → "1,234,567".
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatNumberIn renders n with the grouping rules of tag.
func FormatNumberIn(tag language.Tag, n int) string {
	return message.NewPrinter(tag).Sprintf("%d", n)
}

// FormatURL prefixes a bare host such as a profile blog field with
// https://. Empty input stays empty.
func FormatURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
