package usecase

import (
	"context"

	"ledgerdesk/internal/modules/dashboard/domain"
	"ledgerdesk/internal/modules/dashboard/dto"
	dashboardin "ledgerdesk/internal/modules/dashboard/port/in"
	"ledgerdesk/internal/modules/dashboard/service"
)

type Interactor struct {
	svc *service.DashboardService
}

func NewInteractor(svc *service.DashboardService) dashboardin.Usecase {
	return &Interactor{svc: svc}
}

// Overview returns an error only when neither list could be loaded; the
// output is filled either way.
func (i *Interactor) Overview(ctx context.Context) (dto.OverviewOutput, error) {
	overview := i.svc.Overview(ctx)
	out := dto.OverviewOutput{
		Invoices:  toSection(overview.Invoices),
		Purchases: toSection(overview.Purchases),
	}
	return out, overview.Err()
}

func toSection(section domain.Section) dto.SectionOutput {
	out := dto.SectionOutput{
		Records: make([]dto.RecordOutput, 0, len(section.Records)),
		Total:   section.Total,
	}
	if section.Err != nil {
		out.Error = section.Err.Error()
	}
	for _, record := range section.Records {
		out.Records = append(out.Records, dto.RecordOutput(record))
	}
	for _, count := range section.Counts {
		out.Counts = append(out.Counts, dto.StatusCountOutput(count))
	}
	return out
}
