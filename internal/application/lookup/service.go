// Package lookup runs one-shot lookups for a list of numbers.
package lookup

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// Report is the outcome for one input.
type Report struct {
	Input   string
	Number  string
	Outcome domain.Outcome
}

// Service looks up numbers concurrently and records valid results.
type Service struct {
	Client      ports.LookupClient
	History     ports.HistoryRepository
	Logger      ports.Logger
	Concurrency int
	Clock       func() time.Time
}

// Run returns one report per input, in input order.
func (s *Service) Run(ctx context.Context, inputs []string) ([]Report, error) {
	if s.Client == nil || s.Logger == nil {
		return nil, errors.New("lookup.Service dependencies not satisfied")
	}
	limit := s.Concurrency
	if limit <= 0 {
		limit = domain.DefaultLookupConcurrency
	}
	now := s.Clock
	if now == nil {
		now = time.Now
	}

	reports := make([]Report, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, raw := range inputs {
		i, raw := i, raw
		g.Go(func() error {
			reports[i] = s.one(gctx, raw, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *Service) one(ctx context.Context, raw string, now func() time.Time) Report {
	number := domain.Normalize(raw)
	rep := Report{Input: raw, Number: number}
	if !domain.Submittable(number) {
		rep.Outcome = domain.InvalidInput(domain.Validation(domain.MsgInvalidNumber))
		return rep
	}

	result, err := s.Client.Lookup(ctx, number)
	rep.Outcome = domain.OutcomeOf(result, err)
	if err != nil {
		s.Logger.Debug("lookup failed", map[string]interface{}{"number": number, "error": err.Error()})
		return rep
	}
	if rep.Outcome.Recordable() && s.History != nil {
		rec := domain.NewHistoryRecord(number, result, now())
		if err := s.History.Append(context.WithoutCancel(ctx), rec); err != nil {
			s.Logger.Warn("history append failed", map[string]interface{}{"phone": number, "error": err.Error()})
		}
	}
	return rep
}
