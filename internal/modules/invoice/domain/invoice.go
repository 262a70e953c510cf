package domain

import (
	"strings"

	"ledgerdesk/internal/platform/draft"
	apperrors "ledgerdesk/internal/platform/errors"
	"ledgerdesk/internal/platform/id"
)

type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
	StatusOverdue Status = "Overdue"
)

const MsgInvalidStatus = "Status must be one of Pending, Paid, Overdue"

func Statuses() []Status {
	return []Status{StatusPending, StatusPaid, StatusOverdue}
}

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return nil
	default:
		return apperrors.Validation(MsgInvalidStatus)
	}
}

type Invoice struct {
	ID          id.ID         `json:"id,omitzero"`
	Title       string        `json:"title"`
	Amount      draft.Decimal `json:"amount"`
	Date        string        `json:"date"`
	Status      Status        `json:"status"`
	Description string        `json:"description"`
	OwnerID     id.ID         `json:"ownerId,omitzero"`
}

// Draft is an invoice as typed into a form, before validation.
type Draft struct {
	Title       string
	Amount      string
	Date        string
	Status      string
	Description string
}

// Build validates the draft and returns the invoice it describes, without an
// id or owner.
func (d Draft) Build() (Invoice, error) {
	if !draft.Filled(d.Title, d.Amount, d.Date) {
		return Invoice{}, apperrors.Validation(draft.MsgMissingRequired)
	}
	amount, err := draft.ParseAmount(d.Amount)
	if err != nil {
		return Invoice{}, err
	}
	date, err := draft.ParseDate(d.Date)
	if err != nil {
		return Invoice{}, err
	}
	status := Status(strings.TrimSpace(d.Status))
	if status == "" {
		status = StatusPending
	}
	if err := status.Validate(); err != nil {
		return Invoice{}, err
	}
	return Invoice{
		Title:       strings.TrimSpace(d.Title),
		Amount:      amount,
		Date:        date,
		Status:      status,
		Description: strings.TrimSpace(d.Description),
	}, nil
}

// Draft prefills an edit form from a stored invoice.
func (i Invoice) Draft() Draft {
	out := Draft{
		Title:       i.Title,
		Date:        draft.DateOnly(i.Date),
		Status:      string(i.Status),
		Description: i.Description,
	}
	if i.Amount != 0 {
		out.Amount = i.Amount.String()
	}
	if out.Status == "" {
		out.Status = string(StatusPending)
	}
	return out
}
