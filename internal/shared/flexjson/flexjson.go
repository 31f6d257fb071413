// Package flexjson decodes the loosely typed scalars the legacy back-office
// API emits: numbers that arrive as strings, empty strings standing in for
// zero, and status flags that are sometimes strings, sometimes integers.
// Decoding never fails; unusable input collapses to the zero value.
package flexjson

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal is a decimal amount that tolerates number, quoted-number, empty
// string, and null encodings. Valid reports whether a numeric value was
// actually parsed, as opposed to defaulting.
type Decimal struct {
	decimal.Decimal
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	d.Decimal = decimal.Zero
	d.Valid = false
	raw, ok := scalarText(data)
	if !ok || raw == "" {
		return nil
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	d.Decimal = parsed
	d.Valid = true
	return nil
}

// MarshalJSON re-encodes the held amount the way shopspring/decimal does.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return d.Decimal.MarshalJSON()
}

// Int is an integer that tolerates number, quoted-number, empty string, and
// null encodings. Fractional input is truncated toward zero.
type Int struct {
	Int64 int64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (i *Int) UnmarshalJSON(data []byte) error {
	i.Int64 = 0
	i.Valid = false
	raw, ok := scalarText(data)
	if !ok || raw == "" {
		return nil
	}
	if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
		i.Int64 = parsed
		i.Valid = true
		return nil
	}
	if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
		i.Int64 = int64(parsed)
		i.Valid = true
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(i.Int64, 10)), nil
}

// Int returns the held value as an int.
func (i Int) Int() int { return int(i.Int64) }

// String is a string that tolerates numeric and null encodings: numbers keep
// their literal text, null becomes the empty string.
type String string

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (s *String) UnmarshalJSON(data []byte) error {
	raw, ok := scalarText(data)
	if !ok {
		*s = ""
		return nil
	}
	*s = String(raw)
	return nil
}

// Str returns the plain string value.
func (s String) Str() string { return string(s) }

// Flag is a boolean-ish status field. The backend variously sends '1'/'0',
// 'Success'/'Failed'/'Failure', integers 1/-1, and real booleans.
type Flag struct {
	ok  bool
	set bool
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (f *Flag) UnmarshalJSON(data []byte) error {
	f.ok = false
	f.set = false
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}
	f.set = true
	switch string(trimmed) {
	case "true":
		f.ok = true
		return nil
	case "false":
		return nil
	}
	raw, ok := scalarText(data)
	if !ok {
		f.set = false
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "success", "ok", "true", "yes":
		f.ok = true
	default:
		f.ok = false
	}
	return nil
}

// OK reports whether the flag decoded to a success value.
func (f Flag) OK() bool { return f.ok }

// Present reports whether the field appeared with a usable value at all.
func (f Flag) Present() bool { return f.set }

// scalarText extracts the textual content of a JSON scalar. Objects and
// arrays yield ok=false; null yields an empty string.
func scalarText(data []byte) (string, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return "", true
	}
	switch trimmed[0] {
	case '{', '[':
		return "", false
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false
		}
		return strings.TrimSpace(s), true
	default:
		return string(trimmed), true
	}
}
