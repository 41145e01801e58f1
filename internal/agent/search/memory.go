package search

import (
	"context"
	"sort"
	"strings"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/lexicon"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	logx "github.com/IbalArrasyid/E-Commerce-Agent/pkg/logger"
)

// MemorySearch is a catalog-backed SearchService doing scored keyword
// matching over product fields. It stands in for the vector/text retrieval
// backend in local runs and in tests.
type MemorySearch struct {
	catalog []model.Product
	norm    *lexicon.Normalizer
}

func NewMemorySearch(catalog []model.Product) *MemorySearch {
	if catalog == nil {
		catalog = DefaultCatalog
	}
	return &MemorySearch{
		catalog: catalog,
		norm:    lexicon.NewNormalizer(),
	}
}

var fillerSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(lexicon.FillerWords))
	for _, w := range lexicon.FillerWords {
		s[w] = struct{}{}
	}
	return s
}()

// Search scores the catalog against the query tokens after applying the
// active filters. Results come back best-match first; ties break on price so
// the ordering is deterministic.
func (m *MemorySearch) Search(ctx context.Context, query string, filters model.Filters, n int, mode string) (*model.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = 10
	}

	tokens := m.queryTokens(query)

	type scored struct {
		product model.Product
		score   int
	}
	var matches []scored
	for _, p := range m.catalog {
		if !matchFilters(p, filters) {
			continue
		}
		s := m.score(p, tokens)
		if s == 0 && len(tokens) > 0 {
			continue
		}
		matches = append(matches, scored{product: p, score: s})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].product.Price < matches[j].product.Price
	})
	if len(matches) > n {
		matches = matches[:n]
	}

	products := make([]model.Product, 0, len(matches))
	for _, sc := range matches {
		products = append(products, sc.product)
	}

	searchType := model.SearchTypeText
	if len(products) == 0 {
		searchType = model.SearchTypeNone
	}
	logx.Debug().
		Str("query", query).
		Int("count", len(products)).
		Str("search_type", searchType).
		Msg("catalog search")

	return &model.SearchResult{
		Products:   products,
		Count:      len(products),
		SearchType: searchType,
	}, nil
}

// queryTokens normalizes the query and canonicalizes attribute words so "white
// table" matches a catalog stored in Indonesian.
func (m *MemorySearch) queryTokens(query string) []string {
	var tokens []string
	for _, w := range strings.Fields(lexicon.Normalize(query)) {
		if _, filler := fillerSet[w]; filler {
			continue
		}
		tokens = append(tokens, m.norm.Color(m.norm.Material(w)))
	}
	return tokens
}

func (m *MemorySearch) score(p model.Product, tokens []string) int {
	name := lexicon.Normalize(p.Name)
	desc := lexicon.Normalize(p.Description)
	score := 0
	for _, t := range tokens {
		switch {
		case t == p.Category:
			score += 4
		case t == p.Color || t == p.Material:
			score += 3
		case lexicon.ContainsTerm(name, t):
			score += 2
		case lexicon.ContainsTerm(desc, t):
			score++
		}
	}
	return score
}

func matchFilters(p model.Product, f model.Filters) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Color != "" && p.Color != f.Color {
		return false
	}
	if f.Material != "" && p.Material != f.Material {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}
	return true
}

var _ model.SearchService = (*MemorySearch)(nil)
