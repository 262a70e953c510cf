package dto

type DraftInput struct {
	Name   string
	Vendor string
	Amount string
	Date   string
	Status string
}

type PurchaseOutput struct {
	ID      string
	Name    string
	Vendor  string
	Amount  float64
	Date    string
	Status  string
	OwnerID string
	Draft   DraftInput
}
