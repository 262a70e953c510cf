package in

import (
	"context"
	"encoding/json"

	"ledgerdesk/internal/modules/gateway/domain"
)

// Requester issues one authenticated request and returns the raw JSON body.
type Requester interface {
	Do(ctx context.Context, method domain.Method, endpoint string, body any) (json.RawMessage, error)
}
