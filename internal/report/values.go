package report

import (
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order when normalizing created_at. The
// producer writes datetime.isoformat() (seconds or microseconds, no zone),
// but records in the wild have shown zone offsets, space separators,
// minute-only precision and bare dates. Layouts with seconds come before
// their minute-precision counterparts so the longest match wins.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// formatTimestamp normalizes an ISO-8601 timestamp to "YYYY-MM-DD HH:MM:SS".
// Anything unparseable renders unchanged; a malformed created_at value must
// never break the report.
func formatTimestamp(raw string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return raw
}

// formatNumber renders a float the way the producer's reports spell them:
// plain decimal, keeping a ".0" tail on whole values ("1.0", "0.8", "3.5"),
// never exponent notation.
func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
