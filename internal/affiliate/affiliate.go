// Package affiliate rewrites raw product URLs into tracked affiliate links
// for the two programs the service participates in.
package affiliate

import (
	"net/url"
	"strings"
)

const valueCommerceReferral = "https://ck.jp.ap.valuecommerce.com/servlet/referral"

// RakutenLinker builds affiliate links for Rakuten Ichiba products.
// A zero AffiliateID disables rewriting.
type RakutenLinker struct {
	AffiliateID string
}

// Rewrite returns the affiliate form of a product link. A URL the API
// already affiliated wins outright. Otherwise the raw URL is templated
// with the configured affiliate ID; any existing query string is stripped
// first, so rewriting an already-templated URL keeps a single scid
// parameter instead of stacking them.
func (l RakutenLinker) Rewrite(rawURL, apiAffiliateURL string) string {
	if apiAffiliateURL != "" {
		return apiAffiliateURL
	}
	if l.AffiliateID == "" || rawURL == "" {
		return rawURL
	}
	base := rawURL
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	return base + "?scid=" + url.QueryEscape(l.AffiliateID)
}

// ValueCommerceLinker wraps Yahoo! Shopping product links into
// ValueCommerce referral redirects. Both SID and PID must be set for
// rewriting to happen.
type ValueCommerceLinker struct {
	SID string
	PID string
}

// Rewrite wraps rawURL into a referral redirect carrying the site ID,
// the partner ID and the percent-encoded original URL. Without full
// credentials the raw URL is returned unchanged.
func (l ValueCommerceLinker) Rewrite(rawURL string) string {
	if l.SID == "" || l.PID == "" || rawURL == "" {
		return rawURL
	}
	q := url.Values{}
	q.Set("sid", l.SID)
	q.Set("pid", l.PID)
	q.Set("vc_url", rawURL)
	return valueCommerceReferral + "?" + q.Encode()
}
