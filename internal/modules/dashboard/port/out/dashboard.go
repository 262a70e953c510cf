package out

import (
	"context"

	"ledgerdesk/internal/modules/dashboard/domain"
)

type RecordSource interface {
	ListRecords(ctx context.Context) ([]domain.Record, error)
}
