package domain

import (
	"strings"

	"ledgerdesk/internal/platform/draft"
	apperrors "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/id"
)

type Status string

const (
	StatusInTransit Status = "In Transit"
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
)

const MsgInvalidStatus = "Status must be one of In Transit, Completed, Pending"

func Statuses() []Status {
	return []Status{StatusInTransit, StatusCompleted, StatusPending}
}

func (s Status) Validate() error {
	switch s {
	case StatusInTransit, StatusCompleted, StatusPending:
		return nil
	default:
		return apperrors.Validation(MsgInvalidStatus)
	}
}

type Purchase struct {
	ID      id.ID         `json:"id,omitzero"`
	Name    string        `json:"name"`
	Vendor  string        `json:"vendor"`
	Amount  draft.Decimal `json:"amount"`
	Date    string        `json:"date"`
	Status  Status        `json:"status"`
	OwnerID id.ID         `json:"ownerId,omitzero"`
}

type Draft struct {
	Name   string
	Vendor string
	Amount string
	Date   string
	Status string
}

func (d Draft) Build() (Purchase, error) {
	if !draft.Filled(d.Name, d.Vendor, d.Amount, d.Date) {
		return Purchase{}, apperrors.Validation(draft.MsgMissingRequired)
	}
	amount, err := draft.ParseAmount(d.Amount)
	if err != nil {
		return Purchase{}, err
	}
	date, err := draft.ParseDate(d.Date)
	if err != nil {
		return Purchase{}, err
	}
	status := Status(strings.TrimSpace(d.Status))
	if status == "" {
		status = StatusInTransit
	}
	if err := status.Validate(); err != nil {
		return Purchase{}, err
	}
	return Purchase{
		Name:   strings.TrimSpace(d.Name),
		Vendor: strings.TrimSpace(d.Vendor),
		Amount: amount,
		Date:   date,
		Status: status,
	}, nil
}

func (p Purchase) Draft() Draft {
	out := Draft{
		Name:   p.Name,
		Vendor: p.Vendor,
		Date:   draft.DateOnly(p.Date),
		Status: string(p.Status),
	}
	if p.Amount != 0 {
		out.Amount = p.Amount.String()
	}
	if out.Status == "" {
		out.Status = string(StatusInTransit)
	}
	return out
}
