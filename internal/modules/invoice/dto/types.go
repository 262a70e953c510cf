package dto

type DraftInput struct {
	Title       string
	Amount      string
	Date        string
	Status      string
	Description string
}

type InvoiceOutput struct {
	ID          string
	Title       string
	Amount      float64
	Date        string
	Status      string
	Description string
	OwnerID     string
	// Draft prefills an edit form for this invoice.
	Draft DraftInput
}
