package in

import (
	"context"

	"ledgerdesk/internal/modules/dashboard/dto"
)

type Usecase interface {
	Overview(ctx context.Context) (dto.OverviewOutput, error)
}
