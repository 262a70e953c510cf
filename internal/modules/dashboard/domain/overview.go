package domain

import (
	"errors"
	"sort"
)

type Kind string

const (
	KindInvoice  Kind = "invoice"
	KindPurchase Kind = "purchase"
)

// Record is the part of an invoice or purchase the overview shows.
type Record struct {
	ID     string
	Label  string
	Detail string
	Amount float64
	Date   string
	Status string
}

type StatusCount struct {
	Status string
	Count  int
}

type Section struct {
	Kind    Kind
	Records []Record
	Err     error
	Counts  []StatusCount
	Total   float64
}

// Summarize builds a section. A failed fetch yields an empty section that
// keeps its error.
func Summarize(kind Kind, records []Record, err error) Section {
	section := Section{Kind: kind, Err: err, Records: []Record{}}
	if err != nil {
		return section
	}
	counts := map[string]int{}
	for _, record := range records {
		counts[record.Status]++
		section.Total += record.Amount
	}
	section.Records = records
	for status, count := range counts {
		section.Counts = append(section.Counts, StatusCount{Status: status, Count: count})
	}
	sort.Slice(section.Counts, func(i, j int) bool { return section.Counts[i].Status < section.Counts[j].Status })
	return section
}

type Overview struct {
	Invoices  Section
	Purchases Section
}

// Err is non-nil only when neither section could be loaded.
func (o Overview) Err() error {
	if o.Invoices.Err != nil && o.Purchases.Err != nil {
		return errors.Join(o.Invoices.Err, o.Purchases.Err)
	}
	return nil
}
