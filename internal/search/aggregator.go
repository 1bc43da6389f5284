package search

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/hataden-app/hataden-price-checker/internal/models"
	"github.com/hataden-app/hataden-price-checker/internal/obs"
	"github.com/hataden-app/hataden-price-checker/internal/pricing"
)

type AggregatorService interface {
	Search(ctx context.Context, req *models.SearchRequest) (Result, error)
}

// Aggregator queries the selected providers in parallel and merges their
// items into one ranked list.
type Aggregator struct {
	providers []Provider
	hits      int
	timeout   time.Duration
	metrics   *obs.Metrics
	logger    *slog.Logger
}

func NewAggregator(providers []Provider, hits int, timeout time.Duration, m *obs.Metrics, logger *slog.Logger) *Aggregator {
	return &Aggregator{providers: providers, hits: hits, timeout: timeout, metrics: m, logger: logger}
}

// selectProviders keeps only the providers the request asks for, in the
// fixed order they were registered. Unknown tags match nothing.
func (a *Aggregator) selectProviders(req *models.SearchRequest) []Provider {
	out := make([]Provider, 0, len(a.providers))
	for _, p := range a.providers {
		if req.WantsSource(p.Name()) {
			out = append(out, p)
		}
	}
	return out
}

func (a *Aggregator) Search(ctx context.Context, req *models.SearchRequest) (Result, error) {
	start := time.Now()
	selected := a.selectProviders(req)

	// Indexed slots keep the concatenation order fixed (registration
	// order) no matter which provider finishes first.
	type outcome struct {
		items []Item
		err   error
	}
	outcomes := make([]outcome, len(selected))

	var wg sync.WaitGroup
	for i, p := range selected {
		wg.Add(1)
		go func(i int, pr Provider) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					a.logger.Error("provider panic recovered", "provider", pr.Name(), "panic", r)
					a.metrics.IncProviderFailure(pr.Name())
					outcomes[i] = outcome{err: context.Canceled}
				}
			}()

			cctx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			ps := time.Now()
			items, err := pr.Search(cctx, req.Keyword, a.hits)
			a.metrics.ObserveProviderLatency(pr.Name(), time.Since(ps).Seconds())
			if err != nil {
				// Degrade: a failed source contributes nothing, the
				// other source's items still go out.
				a.logger.Warn("provider search failed", "provider", pr.Name(), "keyword", req.Keyword, "error", err)
				a.metrics.IncProviderFailure(pr.Name())
				outcomes[i] = outcome{err: err}
				return
			}
			outcomes[i] = outcome{items: items}
		}(i, p)
	}
	wg.Wait()

	all := make([]Item, 0, a.hits*len(selected))
	succeeded, failed := 0, 0
	for _, o := range outcomes {
		if o.err != nil {
			failed++
			continue
		}
		succeeded++
		all = append(all, o.items...)
	}

	minPrice := pricing.Sentinel
	hasMin := false
	for _, it := range all {
		if n := pricing.Normalize(it.Price); !hasMin || n < minPrice {
			minPrice = n
			hasMin = true
		}
	}
	for i := range all {
		all[i].IsCheapest = hasMin && pricing.Normalize(all[i].Price) == minPrice
	}

	sort.SliceStable(all, func(i, j int) bool {
		return pricing.Normalize(all[i].Price) < pricing.Normalize(all[j].Price)
	})

	out := Result{
		Keyword: req.Keyword,
		Sources: distinctSources(all),
		Count:   len(all),
		Items:   all,
	}
	out.Stats.ProvidersTotal = len(selected)
	out.Stats.ProvidersSucceeded = succeeded
	out.Stats.ProvidersFailed = failed
	out.Stats.DurationMs = time.Since(start).Milliseconds()
	return out, nil
}

func distinctSources(items []Item) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, it := range items {
		if it.Source == "" {
			continue
		}
		if _, ok := seen[it.Source]; ok {
			continue
		}
		seen[it.Source] = struct{}{}
		out = append(out, it.Source)
	}
	sort.Strings(out)
	return out
}
