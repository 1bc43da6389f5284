package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hataden-app/hataden-price-checker/internal/affiliate"
	"github.com/hataden-app/hataden-price-checker/internal/search"
)

const (
	yahooEndpoint = "https://shopping.yahooapis.jp/ShoppingWebService/V3/itemSearch"

	// shown when the API returns a hit without a seller name
	yahooDefaultShop = "Yahoo!ショッピング"
)

// YahooProvider searches the Yahoo! Shopping item search API (V3).
type YahooProvider struct {
	client   *http.Client
	endpoint string
	appID    string
	links    affiliate.ValueCommerceLinker
}

func NewYahooProvider(client *http.Client, appID, vcSID, vcPID string) *YahooProvider {
	return &YahooProvider{
		client:   client,
		endpoint: yahooEndpoint,
		appID:    appID,
		links:    affiliate.ValueCommerceLinker{SID: vcSID, PID: vcPID},
	}
}

func (p *YahooProvider) Name() string { return search.SourceYahoo }

type yahooResponse struct {
	Hits []struct {
		Name  string `json:"name"`
		Price any    `json:"price"`
		URL   string `json:"url"`
		Image struct {
			Medium string `json:"medium"`
			Small  string `json:"small"`
		} `json:"image"`
		Seller struct {
			Name string `json:"name"`
		} `json:"seller"`
	} `json:"hits"`
}

func (p *YahooProvider) Search(ctx context.Context, keyword string, limit int) ([]search.Item, error) {
	q := url.Values{}
	q.Set("appid", p.appID)
	q.Set("query", keyword)
	q.Set("results", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("yahoo: build request: %w", err)
	}
	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo: fetch: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: unexpected status %d", res.StatusCode)
	}

	var body yahooResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("yahoo: decode response: %w", err)
	}

	items := make([]search.Item, 0, len(body.Hits))
	for _, hit := range body.Hits {
		// hits without a price cannot be compared; skip them
		if hit.Price == nil {
			continue
		}
		image := hit.Image.Medium
		if image == "" {
			image = hit.Image.Small
		}
		shop := hit.Seller.Name
		if shop == "" {
			shop = yahooDefaultShop
		}
		items = append(items, search.Item{
			Source: search.SourceYahoo,
			Name:   hit.Name,
			Price:  hit.Price,
			URL:    p.links.Rewrite(hit.URL),
			Shop:   shop,
			Image:  image,
		})
	}
	return items, nil
}
