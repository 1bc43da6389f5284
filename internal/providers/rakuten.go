// Package providers holds the HTTP adapters for the upstream e-commerce
// search APIs. Each adapter maps its provider's response shape into the
// common item schema and applies that provider's affiliate-link rewrite;
// filtering and ranking belong to the aggregation pipeline.
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

const rakutenEndpoint = "https://app.rakuten.co.jp/services/api/IchibaItem/Search/20220601"

// RakutenProvider searches the Rakuten Ichiba item search API.
type RakutenProvider struct {
	client   *http.Client
	endpoint string
	appID    string
	links    affiliate.RakutenLinker
}

func NewRakutenProvider(client *http.Client, appID, affiliateID string) *RakutenProvider {
	return &RakutenProvider{
		client:   client,
		endpoint: rakutenEndpoint,
		appID:    appID,
		links:    affiliate.RakutenLinker{AffiliateID: affiliateID},
	}
}

func (p *RakutenProvider) Name() string { return search.SourceRakuten }

// rakutenResponse mirrors the slice of the Ichiba response we consume.
// itemPrice stays untyped: the API documents it as numeric but the raw
// value is passed through and normalized only for comparison.
type rakutenResponse struct {
	Items []struct {
		Item struct {
			ItemName        string `json:"itemName"`
			ItemPrice       any    `json:"itemPrice"`
			ItemURL         string `json:"itemUrl"`
			ShopName        string `json:"shopName"`
			AffiliateURL    string `json:"affiliateUrl"`
			MediumImageURLs []struct {
				ImageURL string `json:"imageUrl"`
			} `json:"mediumImageUrls"`
		} `json:"Item"`
	} `json:"Items"`
}

func (p *RakutenProvider) Search(ctx context.Context, keyword string, limit int) ([]search.Item, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("applicationId", p.appID)
	q.Set("keyword", keyword)
	q.Set("hits", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("rakuten: build request: %w", err)
	}
	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rakuten: fetch: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rakuten: unexpected status %d", res.StatusCode)
	}

	var body rakutenResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("rakuten: decode response: %w", err)
	}

	items := make([]search.Item, 0, len(body.Items))
	for _, w := range body.Items {
		rec := w.Item
		image := ""
		if len(rec.MediumImageURLs) > 0 {
			image = rec.MediumImageURLs[0].ImageURL
		}
		items = append(items, search.Item{
			Source: search.SourceRakuten,
			Name:   rec.ItemName,
			Price:  rec.ItemPrice,
			URL:    p.links.Rewrite(rec.ItemURL, rec.AffiliateURL),
			Shop:   rec.ShopName,
			Image:  image,
		})
	}
	return items, nil
}
