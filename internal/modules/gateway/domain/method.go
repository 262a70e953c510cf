package domain

import (
	"fmt"

	apperrors "ledgerdesk/internal/platform/errors"
)

type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

func (m Method) Validate() error {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedMethod, string(m))
	}
}
