package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"ledgerdesk/internal/modules/dashboard/domain"
	"ledgerdesk/internal/modules/dashboard/service"
	"ledgerdesk/internal/modules/dashboard/usecase"
)

// barrierSource blocks until every source sharing the barrier has started,
// so a sequential caller would time out.
type barrierSource struct {
	barrier *sync.WaitGroup
	records []domain.Record
	err     error
}

func (s barrierSource) ListRecords(context.Context) ([]domain.Record, error) {
	s.barrier.Done()
	done := make(chan struct{})
	go func() {
		s.barrier.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		return nil, errors.New("fetches did not overlap")
	}
	return s.records, s.err
}

func newBarrier() *sync.WaitGroup {
	wg := &sync.WaitGroup{}
	wg.Add(2)
	return wg
}

func TestOverviewFetchesConcurrently(t *testing.T) {
	t.Parallel()
	barrier := newBarrier()
	invoices := barrierSource{barrier: barrier, records: []domain.Record{{ID: "1", Amount: 100, Status: "Paid"}}}
	purchases := barrierSource{barrier: barrier, records: []domain.Record{
		{ID: "p1", Amount: 20, Status: "In Transit"},
		{ID: "p2", Amount: 5, Status: "In Transit"},
	}}
	uc := usecase.NewInteractor(service.NewDashboardService(invoices, purchases, zerolog.Nop()))

	out, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(out.Invoices.Records) != 1 || out.Invoices.Total != 100 {
		t.Fatalf("unexpected invoices: %+v", out.Invoices)
	}
	if len(out.Purchases.Records) != 2 || out.Purchases.Total != 25 {
		t.Fatalf("unexpected purchases: %+v", out.Purchases)
	}
	if len(out.Purchases.Counts) != 1 || out.Purchases.Counts[0].Count != 2 {
		t.Fatalf("unexpected purchase counts: %+v", out.Purchases.Counts)
	}
}

func TestOverviewKeepsHalfThatSucceeded(t *testing.T) {
	t.Parallel()
	barrier := newBarrier()
	invoices := barrierSource{barrier: barrier, err: errors.New("API Error: 500")}
	purchases := barrierSource{barrier: barrier, records: []domain.Record{{ID: "p1", Amount: 20, Status: "Completed"}}}
	uc := usecase.NewInteractor(service.NewDashboardService(invoices, purchases, zerolog.Nop()))

	out, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("one failed half must not fail the overview: %v", err)
	}
	if out.Invoices.Error != "API Error: 500" || len(out.Invoices.Records) != 0 {
		t.Fatalf("unexpected invoice section: %+v", out.Invoices)
	}
	if len(out.Purchases.Records) != 1 || out.Purchases.Error != "" {
		t.Fatalf("unexpected purchase section: %+v", out.Purchases)
	}
}

func TestOverviewFailsWhenBothFail(t *testing.T) {
	t.Parallel()
	barrier := newBarrier()
	invoices := barrierSource{barrier: barrier, err: errors.New("down")}
	purchases := barrierSource{barrier: barrier, err: errors.New("down")}
	uc := usecase.NewInteractor(service.NewDashboardService(invoices, purchases, zerolog.Nop()))
	if _, err := uc.Overview(context.Background()); err == nil {
		t.Fatalf("expected error when both halves fail")
	}
}
