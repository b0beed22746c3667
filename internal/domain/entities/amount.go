package entities

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a numeric field that tolerates the loose payloads produced by
// the dashboard forms: JSON numbers, numeric strings (with "." or "," as the
// decimal separator) and null all decode. Anything non-numeric decodes to 0.
type Amount float64

// ParseAmount converts free-form user input to an Amount, falling back to 0.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") {
		// pt-BR input: "1.234,56" -> "1234.56"
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return Amount(d.InexactFloat64())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*a = 0
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// Float64 returns the plain float value.
func (a Amount) Float64() float64 { return float64(a) }

// Decimal returns the value as a decimal for exact arithmetic.
func (a Amount) Decimal() decimal.Decimal { return decimal.NewFromFloat(float64(a)) }

// AmountPtr is a helper for optional amount fields.
func AmountPtr(v float64) *Amount {
	a := Amount(v)
	return &a
}
