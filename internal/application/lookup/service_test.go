package lookup

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/infrastructure/history"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/pkg/logger"
)

type mapClient struct {
	results map[string]domain.LookupResult
	calls   atomic.Int32
	active  atomic.Int32
	peak    atomic.Int32
	delay   time.Duration
}

func (m *mapClient) Lookup(ctx context.Context, number string) (domain.LookupResult, error) {
	m.calls.Add(1)
	cur := m.active.Add(1)
	defer m.active.Add(-1)
	for {
		peak := m.peak.Load()
		if cur <= peak || m.peak.CompareAndSwap(peak, cur) {
			break
		}
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	res, ok := m.results[number]
	if !ok {
		return domain.LookupResult{}, domain.Transport("request failed", errors.New("connection refused"))
	}
	return res, nil
}

func TestRunKeepsInputOrderAndRecordsValid(t *testing.T) {
	client := &mapClient{results: map[string]domain.LookupResult{
		"+14155550100": {Valid: true, Carrier: "Verizon"},
		"+14155550101": {Valid: false},
	}}
	store := history.NewMemoryStore()
	svc := &Service{Client: client, History: store, Logger: logger.Discard(), Concurrency: 2}

	inputs := []string{"+1 415 555 0100", "123", "+1 415 555 0101", "+1 415 555 0199"}
	reports, err := svc.Run(context.Background(), inputs)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(reports) != len(inputs) {
		t.Fatalf("reports = %d", len(reports))
	}
	for i, rep := range reports {
		if rep.Input != inputs[i] {
			t.Fatalf("report %d input = %q, want %q", i, rep.Input, inputs[i])
		}
	}
	wantKinds := []domain.OutcomeKind{domain.OutcomeSuccess, domain.OutcomeInvalidInput, domain.OutcomeSuccess, domain.OutcomeTransportError}
	for i, kind := range wantKinds {
		if reports[i].Outcome.Kind != kind {
			t.Fatalf("report %d kind = %s, want %s", i, reports[i].Outcome.Kind, kind)
		}
	}
	if client.calls.Load() != 3 {
		t.Fatalf("client calls = %d, want 3 (short input skipped)", client.calls.Load())
	}

	recs, _ := store.List(context.Background(), domain.HistoryFilter{})
	if len(recs) != 1 || recs[0].Phone != "+14155550100" {
		t.Fatalf("history = %+v", recs)
	}
}

func TestRunBoundsConcurrency(t *testing.T) {
	results := map[string]domain.LookupResult{}
	var inputs []string
	for i := 0; i < 12; i++ {
		n := "+1415555010" + string(rune('0'+i%10)) + string(rune('0'+i/10))
		results[n] = domain.LookupResult{Valid: true}
		inputs = append(inputs, n)
	}
	client := &mapClient{results: results, delay: 10 * time.Millisecond}
	svc := &Service{Client: client, Logger: logger.Discard(), Concurrency: 3}

	if _, err := svc.Run(context.Background(), inputs); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if peak := client.peak.Load(); peak > 3 {
		t.Fatalf("peak concurrency = %d, want <= 3", peak)
	}
}

type failingStore struct {
	*history.MemoryStore
	mu    sync.Mutex
	tries int
}

func (f *failingStore) Append(context.Context, domain.HistoryRecord) error {
	f.mu.Lock()
	f.tries++
	f.mu.Unlock()
	return errors.New("disk full")
}

func TestRunIgnoresHistoryFailures(t *testing.T) {
	client := &mapClient{results: map[string]domain.LookupResult{"+14155550100": {Valid: true}}}
	store := &failingStore{MemoryStore: history.NewMemoryStore()}
	svc := &Service{Client: client, History: store, Logger: logger.Discard()}

	reports, err := svc.Run(context.Background(), []string{"+14155550100"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if reports[0].Outcome.Kind != domain.OutcomeSuccess {
		t.Fatalf("kind = %s", reports[0].Outcome.Kind)
	}
	if store.tries != 1 {
		t.Fatalf("append tries = %d", store.tries)
	}
}

func TestRunRequiresDependencies(t *testing.T) {
	if _, err := (&Service{}).Run(context.Background(), nil); err == nil {
		t.Fatal("expected dependency error")
	}
}
