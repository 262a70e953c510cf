package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	apperrors "ledgerdesk/internal/platform/errors"
)

// ListShape tells which of the two list encodings the API used.
type ListShape int

const (
	ListShapeEmpty ListShape = iota
	ListShapeArray
	ListShapeEnvelope
)

func (s ListShape) String() string {
	switch s {
	case ListShapeArray:
		return "array"
	case ListShapeEnvelope:
		return "envelope"
	default:
		return "empty"
	}
}

// ListPayload is a list response with its encoding made explicit. Items is
// always a JSON array, or nil for ListShapeEmpty.
type ListPayload struct {
	Shape ListShape
	Items json.RawMessage
}

// ParseList accepts a bare array or an object carrying the array under
// "data". null, an empty body, or an object without a data array are empty.
func ParseList(raw json.RawMessage) (ListPayload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ListPayload{Shape: ListShapeEmpty}, nil
	}
	switch trimmed[0] {
	case '[':
		return ListPayload{Shape: ListShapeArray, Items: json.RawMessage(trimmed)}, nil
	case '{':
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return ListPayload{}, &TransportError{Op: "decode list", Err: err}
		}
		data := bytes.TrimSpace(envelope.Data)
		if len(data) == 0 || data[0] != '[' {
			return ListPayload{Shape: ListShapeEmpty}, nil
		}
		return ListPayload{Shape: ListShapeEnvelope, Items: json.RawMessage(data)}, nil
	default:
		return ListPayload{}, &TransportError{Op: "decode list", Err: fmt.Errorf("%w: expected array or object", apperrors.ErrInvalidResponse)}
	}
}

func DecodeList[T any](raw json.RawMessage) ([]T, error) {
	payload, err := ParseList(raw)
	if err != nil {
		return nil, err
	}
	if payload.Shape == ListShapeEmpty {
		return []T{}, nil
	}
	items := []T{}
	if err := json.Unmarshal(payload.Items, &items); err != nil {
		return nil, &TransportError{Op: "decode list items", Err: err}
	}
	return items, nil
}

// Decode parses a single-object response. An empty body is an error since
// callers asked for a record.
func Decode[T any](raw json.RawMessage) (T, error) {
	var out T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, &TransportError{Op: "decode object", Err: fmt.Errorf("%w: empty body", apperrors.ErrInvalidResponse)}
	}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return out, &TransportError{Op: "decode object", Err: err}
	}
	return out, nil
}

// DecodeRecord parses a record returned by a mutation or lookup. The record
// may be bare or wrapped in {"data": {...}}. ok is false for an empty body.
func DecodeRecord[T any](raw json.RawMessage) (T, bool, error) {
	var out T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, false, nil
	}
	if trimmed[0] != '{' {
		return out, false, &TransportError{Op: "decode record", Err: fmt.Errorf("%w: expected object", apperrors.ErrInvalidResponse)}
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return out, false, &TransportError{Op: "decode record", Err: err}
	}
	if data := bytes.TrimSpace(envelope.Data); len(data) > 0 && data[0] == '{' {
		trimmed = data
	}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return out, false, &TransportError{Op: "decode record", Err: err}
	}
	return out, true, nil
}
