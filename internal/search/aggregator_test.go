package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hataden-app/hataden-price-checker/internal/models"
	"github.com/hataden-app/hataden-price-checker/internal/obs"
	"github.com/prometheus/client_golang/prometheus"
)

// deterministic provider fixture
type staticProvider struct {
	name  string
	items []Item
	err   error
}

func (s *staticProvider) Search(ctx context.Context, keyword string, limit int) ([]Item, error) {
	return s.items, s.err
}
func (s *staticProvider) Name() string { return s.name }

func newTestAggregator(providers ...Provider) *Aggregator {
	m := obs.NewMetrics(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAggregator(providers, 10, time.Second, m, logger)
}

func mustRequest(t *testing.T, keyword, sources string) *models.SearchRequest {
	t.Helper()
	req, err := models.NewSearchRequest(keyword, sources)
	if err != nil {
		t.Fatalf("bad request: %v", err)
	}
	return req
}

func TestAggregator_MergeFlagAndSort(t *testing.T) {
	rakuten := &staticProvider{name: SourceRakuten, items: []Item{
		{Source: SourceRakuten, Name: "A", Price: 3000},
		{Source: SourceRakuten, Name: "B", Price: "1,500円"},
	}}
	yahoo := &staticProvider{name: SourceYahoo, items: []Item{
		{Source: SourceYahoo, Name: "C", Price: 2000},
	}}

	agg := newTestAggregator(rakuten, yahoo)
	res, err := agg.Search(context.Background(), mustRequest(t, "mouse", ""))
	if err != nil {
		t.Fatal(err)
	}

	if res.Count != 3 || len(res.Items) != 3 {
		t.Fatalf("expected 3 items, got count=%d len=%d", res.Count, len(res.Items))
	}
	gotNames := []string{res.Items[0].Name, res.Items[1].Name, res.Items[2].Name}
	wantNames := []string{"B", "C", "A"}
	for i := range wantNames {
		if gotNames[i] != wantNames[i] {
			t.Fatalf("sort order %v, want %v", gotNames, wantNames)
		}
	}
	for _, it := range res.Items {
		if it.IsCheapest != (it.Name == "B") {
			t.Errorf("wrong cheapest flag on %s: %v", it.Name, it.IsCheapest)
		}
	}
	if len(res.Sources) != 2 || res.Sources[0] != SourceRakuten || res.Sources[1] != SourceYahoo {
		t.Fatalf("unexpected sources %v", res.Sources)
	}
	// raw prices untouched by normalization
	if res.Items[0].Price != "1,500円" {
		t.Fatalf("raw price was rewritten: %v", res.Items[0].Price)
	}
}

func TestAggregator_CheapestTiesAllFlagged(t *testing.T) {
	rakuten := &staticProvider{name: SourceRakuten, items: []Item{
		{Source: SourceRakuten, Name: "A", Price: 980},
		{Source: SourceRakuten, Name: "B", Price: 1500},
	}}
	yahoo := &staticProvider{name: SourceYahoo, items: []Item{
		{Source: SourceYahoo, Name: "C", Price: "980円"},
	}}

	agg := newTestAggregator(rakuten, yahoo)
	res, err := agg.Search(context.Background(), mustRequest(t, "mouse", ""))
	if err != nil {
		t.Fatal(err)
	}

	flagged := 0
	for _, it := range res.Items {
		if it.IsCheapest {
			flagged++
		}
	}
	if flagged != 2 {
		t.Fatalf("expected both 980 items flagged, got %d", flagged)
	}
	// stable sort: ties keep concatenation order, rakuten first
	if res.Items[0].Name != "A" || res.Items[1].Name != "C" {
		t.Fatalf("tie order broken: %s, %s", res.Items[0].Name, res.Items[1].Name)
	}
}

func TestAggregator_SourceFilter(t *testing.T) {
	rakuten := &staticProvider{name: SourceRakuten, items: []Item{
		{Source: SourceRakuten, Name: "A", Price: 1000},
	}}
	yahoo := &staticProvider{name: SourceYahoo, items: []Item{
		{Source: SourceYahoo, Name: "C", Price: 500},
	}}

	agg := newTestAggregator(rakuten, yahoo)
	res, err := agg.Search(context.Background(), mustRequest(t, "mouse", "rakuten"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 1 {
		t.Fatalf("expected 1 item, got %d", res.Count)
	}
	for _, it := range res.Items {
		if it.Source != SourceRakuten {
			t.Fatalf("unexpected source %s in filtered result", it.Source)
		}
	}
	if len(res.Sources) != 1 || res.Sources[0] != SourceRakuten {
		t.Fatalf("unexpected sources %v", res.Sources)
	}
	// the filtered-out provider's cheaper item must not influence flags
	if !res.Items[0].IsCheapest {
		t.Fatal("sole remaining item must be cheapest")
	}
}

func TestAggregator_UnknownSourceMatchesNothing(t *testing.T) {
	rakuten := &staticProvider{name: SourceRakuten, items: []Item{
		{Source: SourceRakuten, Name: "A", Price: 1000},
	}}
	agg := newTestAggregator(rakuten)
	res, err := agg.Search(context.Background(), mustRequest(t, "mouse", "amazon"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 0 || len(res.Items) != 0 || len(res.Sources) != 0 {
		t.Fatalf("unknown tag must select nothing, got %+v", res)
	}
}

func TestAggregator_BothEmpty(t *testing.T) {
	agg := newTestAggregator(
		&staticProvider{name: SourceRakuten},
		&staticProvider{name: SourceYahoo},
	)
	res, err := agg.Search(context.Background(), mustRequest(t, "mouse", ""))
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 0 {
		t.Fatalf("expected count 0, got %d", res.Count)
	}
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty item list, got %v", res.Items)
	}
	if res.Sources == nil || len(res.Sources) != 0 {
		t.Fatalf("expected empty source list, got %v", res.Sources)
	}
	if res.Keyword != "mouse" {
		t.Fatalf("keyword not echoed: %q", res.Keyword)
	}
}

func TestAggregator_ProviderFailureDegrades(t *testing.T) {
	rakuten := &staticProvider{name: SourceRakuten, err: errors.New("upstream 500")}
	yahoo := &staticProvider{name: SourceYahoo, items: []Item{
		{Source: SourceYahoo, Name: "C", Price: 2000},
	}}

	agg := newTestAggregator(rakuten, yahoo)
	res, err := agg.Search(context.Background(), mustRequest(t, "mouse", ""))
	if err != nil {
		t.Fatalf("provider failure must not fail the request: %v", err)
	}
	if res.Count != 1 || res.Items[0].Source != SourceYahoo {
		t.Fatalf("expected yahoo-only partial result, got %+v", res)
	}
	if res.Stats.ProvidersFailed != 1 || res.Stats.ProvidersSucceeded != 1 {
		t.Fatalf("stats wrong: %+v", res.Stats)
	}
}

func TestAggregator_UnpricedItemsSortLastAndNeverWin(t *testing.T) {
	rakuten := &staticProvider{name: SourceRakuten, items: []Item{
		{Source: SourceRakuten, Name: "NoPrice", Price: nil},
		{Source: SourceRakuten, Name: "Cheap", Price: 100},
	}}
	agg := newTestAggregator(rakuten)
	res, err := agg.Search(context.Background(), mustRequest(t, "mouse", ""))
	if err != nil {
		t.Fatal(err)
	}
	if res.Items[len(res.Items)-1].Name != "NoPrice" {
		t.Fatal("unpriced item must sort last")
	}
	for _, it := range res.Items {
		if it.Name == "NoPrice" && it.IsCheapest {
			t.Fatal("unpriced item must not be cheapest")
		}
	}
}
