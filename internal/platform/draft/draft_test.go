package draft_test

import (
	"encoding/json"
	"errors"
	"testing"

	"ledgerdesk/internal/platform/draft"
	apperrors "ledgerdesk/internal/platform/errors"
)

func TestFilled(t *testing.T) {
	t.Parallel()
	if !draft.Filled("a", "b") {
		t.Fatalf("expected filled")
	}
	if draft.Filled("a", "  ") {
		t.Fatalf("blank value must not count as filled")
	}
}

func TestAmountAndDate(t *testing.T) {
	t.Parallel()
	if got, err := draft.ParseAmount(" 1200.50 "); err != nil || got != 1200.5 {
		t.Fatalf("amount: got %v err=%v", got, err)
	}
	for _, raw := range []string{"12a", "NaN", "nan", "Inf", "+Inf", "-Infinity", "1e400"} {
		if _, err := draft.ParseAmount(raw); !errors.Is(err, apperrors.ErrInvalidInput) || err.Error() != draft.MsgInvalidAmount {
			t.Fatalf("amount %q: expected validation error, got %v", raw, err)
		}
	}
	if got, err := draft.ParseDate("2024-01-01"); err != nil || got != "2024-01-01" {
		t.Fatalf("date: got %q err=%v", got, err)
	}
	if _, err := draft.ParseDate("01/02/2024"); err == nil || err.Error() != draft.MsgInvalidDate {
		t.Fatalf("expected date validation error, got %v", err)
	}
}

func TestDateOnly(t *testing.T) {
	t.Parallel()
	if got := draft.DateOnly("2024-01-01T00:00:00.000Z"); got != "2024-01-01" {
		t.Fatalf("expected trimmed date, got %q", got)
	}
	if got := draft.DateOnly("2024-01-01"); got != "2024-01-01" {
		t.Fatalf("plain date changed: %q", got)
	}
}

func TestDecimalJSON(t *testing.T) {
	t.Parallel()
	var got struct {
		A draft.Decimal `json:"a"`
		B draft.Decimal `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a":1200.5,"b":"99.90"}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.A != 1200.5 || got.B != 99.9 {
		t.Fatalf("unexpected decimals: %+v", got)
	}
	encoded, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `{"a":1200.5,"b":99.9}` {
		t.Fatalf("unexpected encoding %s", encoded)
	}
	if got.B.Fixed() != "99.90" {
		t.Fatalf("unexpected fixed form %q", got.B.Fixed())
	}
	if err := json.Unmarshal([]byte(`{"a":"abc"}`), &got); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
}
