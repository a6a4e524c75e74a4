package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"healthdash/domain/records"
	"healthdash/internal/errors"
)

// dateFormats are tried in order when parsing Date of Admission
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
}

// parseBilling coerces a raw billing cell to an Amount. Export-style noise
// (currency symbols, thousands separators, parentheses negatives) is
// stripped before parsing; anything that still fails becomes the missing
// marker rather than an error.
func parseBilling(raw string) records.Amount {
	cleanVal := strings.TrimSpace(raw)
	if cleanVal == "" {
		return records.MissingAmount()
	}

	// Parentheses mark negatives in accounting exports: (123.45) -> -123.45
	isNegative := false
	if strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimSuffix(strings.TrimPrefix(cleanVal, "("), ")")
		isNegative = true
	}

	for _, symbol := range []string{"$", "€", "£", "USD"} {
		cleanVal = strings.ReplaceAll(cleanVal, symbol, "")
	}
	cleanVal = strings.ReplaceAll(cleanVal, ",", "")
	cleanVal = strings.ReplaceAll(cleanVal, " ", "")

	if isNegative {
		cleanVal = "-" + cleanVal
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return records.MissingAmount()
	}
	return records.NewAmount(val)
}

// parseAdmission parses a Date of Admission cell. Unlike billing, an
// unparsable date fails the load: the table is trusted downstream, so
// there is no partial-row recovery.
func parseAdmission(raw string) (time.Time, error) {
	cleanVal := strings.TrimSpace(raw)
	for _, format := range dateFormats {
		if t, err := time.Parse(format, cleanVal); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.SchemaError("unparsable admission date: " + raw)
}

// parseAge parses an Age cell; fractional source values are truncated
func parseAge(raw string) (int, error) {
	cleanVal := strings.TrimSpace(raw)
	if age, err := strconv.Atoi(cleanVal); err == nil {
		return age, nil
	}
	if f, err := strconv.ParseFloat(cleanVal, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f), nil
	}
	return 0, errors.SchemaError("unparsable age: " + raw)
}
