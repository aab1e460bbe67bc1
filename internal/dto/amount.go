package dto

import (
	"encoding/json"
	"strconv"
)

// FlexibleAmount is a raw amount field that accepts either a JSON string
// ("12.34") or a JSON number (12.34). String content is kept verbatim for
// the sanitizer to clean; number literals are decoded as float64 so that
// exponent notation (1e4) cannot leak a stray 'e' into the digit filter.
// Malformed content degrades to text the sanitizer zeroes out, never an
// unmarshal error.
type FlexibleAmount struct {
	text    string
	value   float64
	numeric bool
}

// NewFlexibleAmount wraps raw amount text, same as a JSON string input.
func NewFlexibleAmount(text string) FlexibleAmount {
	return FlexibleAmount{text: text}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *FlexibleAmount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = FlexibleAmount{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = FlexibleAmount{text: s}
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		// Non-number literal (true, false). Kept as text for the
		// sanitizer.
		*a = FlexibleAmount{text: string(data)}
		return nil
	}
	*a = FlexibleAmount{
		text:    strconv.FormatFloat(f, 'f', -1, 64),
		value:   f,
		numeric: true,
	}
	return nil
}

// MarshalJSON implements json.Marshaler, always emitting a string.
func (a FlexibleAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.text)
}

// Float returns the decoded value and true when the amount arrived as a
// JSON number literal.
func (a FlexibleAmount) Float() (float64, bool) {
	return a.value, a.numeric
}

// String returns the textual amount: verbatim for string inputs, plain
// positional notation for number inputs.
func (a FlexibleAmount) String() string {
	return a.text
}
