package dto

type RecordOutput struct {
	ID     string
	Label  string
	Detail string
	Amount float64
	Date   string
	Status string
}

type StatusCountOutput struct {
	Status string
	Count  int
}

type SectionOutput struct {
	Records []RecordOutput
	Counts  []StatusCountOutput
	Total   float64
	// Error is the fetch failure message, empty on success.
	Error string
}

type OverviewOutput struct {
	Invoices  SectionOutput
	Purchases SectionOutput
}
