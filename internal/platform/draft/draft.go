// Package draft holds the form-field rules shared by the record editors.
package draft

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "ledgerdesk/internal/platform/errors"
)

const DateLayout = "2006-01-02"

const (
	MsgMissingRequired = "Please fill in all required fields"
	MsgInvalidAmount   = "Amount must be a number"
	MsgInvalidDate     = "Date must be YYYY-MM-DD"
)

// Filled reports whether every value is non-blank.
func Filled(values ...string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return false
		}
	}
	return true
}

func ParseAmount(raw string) (Decimal, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, apperrors.Validation(MsgInvalidAmount)
	}
	return Decimal(value), nil
}

func ParseDate(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if _, err := time.Parse(DateLayout, value); err != nil {
		return "", apperrors.Validation(MsgInvalidDate)
	}
	return value, nil
}

// DateOnly cuts an ISO timestamp down to its date part.
func DateOnly(raw string) string {
	date, _, _ := strings.Cut(raw, "T")
	return date
}

// Decimal is a money amount. The API may send it as a JSON number or as a
// numeric string; it always goes back as a number.
type Decimal float64

func (d Decimal) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}

func (d Decimal) Fixed() string {
	return strconv.FormatFloat(float64(d), 'f', 2, 64)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decimal) UnmarshalJSON(raw []byte) error {
	text := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if text == "" || text == "null" {
		*d = 0
		return nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("decode amount %s: %w", raw, err)
	}
	*d = Decimal(value)
	return nil
}
