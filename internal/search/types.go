package search

import "context"

// Known source tags. They double as the values of Item.Source and as the
// names callers may pass in the sources query parameter.
const (
	SourceRakuten = "rakuten"
	SourceYahoo   = "yahoo"
)

// Item is the common schema every provider adapter maps into.
// Price is kept exactly as the provider sent it (number, string or
// absent); the pipeline compares by its normalized form but never writes
// that back over the raw value.
type Item struct {
	Source     string `json:"source"`
	Name       string `json:"name,omitempty"`
	Price      any    `json:"price"`
	URL        string `json:"url,omitempty"`
	Shop       string `json:"shop"`
	Image      string `json:"image,omitempty"`
	IsCheapest bool   `json:"is_cheapest"`
}

type Result struct {
	Keyword string   `json:"keyword"`
	Sources []string `json:"sources"`
	Count   int      `json:"count"`
	Items   []Item   `json:"items"`
	Stats   struct {
		ProvidersTotal     int   `json:"providers_total"`
		ProvidersSucceeded int   `json:"providers_succeeded"`
		ProvidersFailed    int   `json:"providers_failed"`
		DurationMs         int64 `json:"duration_ms"`
	} `json:"stats"`
}

type Provider interface {
	Search(ctx context.Context, keyword string, limit int) ([]Item, error)
	Name() string
}
