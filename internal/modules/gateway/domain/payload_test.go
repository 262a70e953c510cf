package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"ledgerdesk/internal/modules/gateway/domain"
	apperrors "ledgerdesk/internal/platform/errors"
)

type row struct {
	Name string `json:"name"`
}

func TestDecodeListAcceptsBothShapes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		raw   string
		shape domain.ListShape
		want  int
	}{
		{name: "array", raw: `[{"name":"a"},{"name":"b"}]`, shape: domain.ListShapeArray, want: 2},
		{name: "envelope", raw: `{"data":[{"name":"a"}],"total":1}`, shape: domain.ListShapeEnvelope, want: 1},
		{name: "null", raw: `null`, shape: domain.ListShapeEmpty, want: 0},
		{name: "empty body", raw: ``, shape: domain.ListShapeEmpty, want: 0},
		{name: "object without data", raw: `{"message":"ok"}`, shape: domain.ListShapeEmpty, want: 0},
		{name: "data not array", raw: `{"data":{"name":"a"}}`, shape: domain.ListShapeEmpty, want: 0},
	}
	for _, tc := range cases {
		payload, err := domain.ParseList(json.RawMessage(tc.raw))
		if err != nil {
			t.Fatalf("%s: parse: %v", tc.name, err)
		}
		if payload.Shape != tc.shape {
			t.Fatalf("%s: expected shape %s, got %s", tc.name, tc.shape, payload.Shape)
		}
		rows, err := domain.DecodeList[row](json.RawMessage(tc.raw))
		if err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if rows == nil || len(rows) != tc.want {
			t.Fatalf("%s: expected %d rows, got %v", tc.name, tc.want, rows)
		}
	}
}

func TestDecodeListRejectsScalarsAndBadItems(t *testing.T) {
	t.Parallel()
	var transportErr *domain.TransportError
	if _, err := domain.DecodeList[row](json.RawMessage(`"nope"`)); !errors.As(err, &transportErr) {
		t.Fatalf("expected transport error for scalar body, got %v", err)
	}
	if !errors.Is(transportErr, apperrors.ErrInvalidResponse) {
		t.Fatalf("expected invalid response cause, got %v", transportErr)
	}
	if _, err := domain.DecodeList[row](json.RawMessage(`[{"name":5}]`)); !errors.As(err, &transportErr) {
		t.Fatalf("expected transport error for bad item, got %v", err)
	}
}

func TestDecodeObject(t *testing.T) {
	t.Parallel()
	got, err := domain.Decode[row](json.RawMessage(`{"name":"x"}`))
	if err != nil || got.Name != "x" {
		t.Fatalf("decode object: %+v %v", got, err)
	}
	var transportErr *domain.TransportError
	if _, err := domain.Decode[row](nil); !errors.As(err, &transportErr) {
		t.Fatalf("expected transport error for empty body, got %v", err)
	}
}

func TestNewGatewayError(t *testing.T) {
	t.Parallel()
	if got := domain.NewGatewayError(401, []byte(`{"message":"Invalid credentials"}`)); got.Error() != "Invalid credentials" || got.StatusCode != 401 {
		t.Fatalf("expected server message, got %+v", got)
	}
	for _, body := range []string{``, `<html>oops</html>`, `{"error":"x"}`, `{"message":""}`} {
		if got := domain.NewGatewayError(502, []byte(body)); got.Error() != "API Error: 502" {
			t.Fatalf("body %q: expected generic message, got %q", body, got.Error())
		}
	}
}

func TestMethodValidate(t *testing.T) {
	t.Parallel()
	if err := domain.MethodPut.Validate(); err != nil {
		t.Fatalf("PUT should be valid: %v", err)
	}
	if err := domain.Method("PATCH").Validate(); !errors.Is(err, apperrors.ErrUnsupportedMethod) {
		t.Fatalf("PATCH should be unsupported, got %v", err)
	}
}

func TestDecodeRecordUnwrapsEnvelope(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{`{"name":"a"}`, `{"data":{"name":"a"}}`} {
		got, ok, err := domain.DecodeRecord[row](json.RawMessage(raw))
		if err != nil || !ok || got.Name != "a" {
			t.Fatalf("decode %s: got %+v ok=%v err=%v", raw, got, ok, err)
		}
	}
	if _, ok, err := domain.DecodeRecord[row](nil); ok || err != nil {
		t.Fatalf("empty body must be absent without error, got ok=%v err=%v", ok, err)
	}
	if _, _, err := domain.DecodeRecord[row](json.RawMessage(`[1]`)); !errors.Is(err, apperrors.ErrInvalidResponse) {
		t.Fatalf("expected invalid response, got %v", err)
	}
}

func TestGatewayErrorNotFound(t *testing.T) {
	t.Parallel()
	if !errors.Is(domain.NewGatewayError(404, nil), apperrors.ErrNotFound) {
		t.Fatalf("404 must match ErrNotFound")
	}
	if errors.Is(domain.NewGatewayError(500, nil), apperrors.ErrNotFound) {
		t.Fatalf("500 must not match ErrNotFound")
	}
}
