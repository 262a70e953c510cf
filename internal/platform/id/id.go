package id

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

// ID is a server-assigned identifier that keeps its JSON form. The API hands
// out both numeric and string ids; a numeric id must go back as a number.
type ID struct {
	value   string
	numeric bool
}

func FromString(value string) ID {
	return ID{value: value}
}

func FromInt(value int64) ID {
	return ID{value: strconv.FormatInt(value, 10), numeric: true}
}

// Parse reads an id typed by a user. Plain integers become numeric ids.
func Parse(value string) ID {
	if _, err := strconv.ParseInt(value, 10, 64); err == nil && value != "" && value[0] != '0' {
		return ID{value: value, numeric: true}
	}
	return ID{value: value}
}

func (i ID) String() string { return i.value }

func (i ID) IsZero() bool { return i.value == "" }

func (i ID) MarshalJSON() ([]byte, error) {
	if i.value == "" {
		return []byte("null"), nil
	}
	if i.numeric {
		return []byte(i.value), nil
	}
	return json.Marshal(i.value)
}

func (i *ID) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	switch {
	case bytes.Equal(raw, []byte("null")):
		*i = ID{}
		return nil
	case len(raw) > 0 && raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*i = ID{value: s}
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}
		*i = ID{value: n.String(), numeric: true}
		return nil
	}
}
