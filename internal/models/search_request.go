package models

import (
	"github.com/hataden-app/hataden-price-checker/internal/validator"
)

type SearchRequest struct {
	Keyword string
	Sources []string
}

func NewSearchRequest(keyword, sources string) (*SearchRequest, error) {
	k, err := validator.ValidateKeyword(keyword)
	if err != nil {
		return nil, err
	}
	return &SearchRequest{
		Keyword: k,
		Sources: validator.ParseSources(sources),
	}, nil
}

// WantsSource reports whether the request selects the named source.
// An empty source list selects everything.
func (r *SearchRequest) WantsSource(name string) bool {
	if len(r.Sources) == 0 {
		return true
	}
	for _, s := range r.Sources {
		if s == name {
			return true
		}
	}
	return false
}
