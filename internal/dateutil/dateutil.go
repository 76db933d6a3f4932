// Package dateutil resolves the "auto" date values accepted by the report
// footer into formatted dates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is given without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// tokenReplacer maps user-facing tokens to Go layout components.
// Longer tokens come first so "MMMM" wins over "MM".
var tokenReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"MMMM", "January",
	"MMM", "Jan",
	"YY", "06",
	"MM", "01",
	"DD", "02",
	"M", "1",
	"D", "2",
)

// Presets are named shortcuts for common formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// Layout converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD, D) into
// a Go time layout. Text inside [brackets] is kept literally.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		open := strings.IndexByte(rest, '[')
		if open == -1 {
			b.WriteString(tokenReplacer.Replace(rest))
			break
		}
		b.WriteString(tokenReplacer.Replace(rest[:open]))

		closing := strings.IndexByte(rest[open+1:], ']')
		if closing == -1 {
			return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, format)
		}
		b.WriteString(rest[open+1 : open+1+closing])
		rest = rest[open+closing+2:]
	}
	return b.String(), nil
}

// Resolve expands "auto", "auto:FORMAT" and "auto:PRESET" using now.
// Any other value is returned unchanged.
func Resolve(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)

	var format string
	switch {
	case lower == "auto":
		format = DefaultDateFormat
	case strings.HasPrefix(lower, "auto:"):
		format = value[len("auto:"):]
		if preset, ok := Presets[strings.ToLower(format)]; ok {
			format = preset
		}
	default:
		return value, nil
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
