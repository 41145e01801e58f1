// Package query decides what a message means for the current search episode:
// whether it starts a new search and how it reformulates into a search query.
package query

import (
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/lexicon"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	logx "github.com/IbalArrasyid/E-Commerce-Agent/pkg/logger"
)

// detectRule is one step of the new-search cascade. match reports whether the
// rule applies; newSearch is its verdict when it does.
type detectRule struct {
	name      string
	newSearch bool
	match     func(message, baseQuery string, intent *model.Intent) bool
}

// detectRules is evaluated top to bottom, first match wins. Order is part of
// the contract: category mentions outrank explicit triggers, and attribute
// mentions bias the outcome toward continuation so accumulated state is
// never discarded on ambiguity.
var detectRules = []detectRule{
	{
		name:      "category_not_in_base",
		newSearch: true,
		match: func(message, baseQuery string, _ *model.Intent) bool {
			cat := lexicon.FindCategory(message)
			return cat != "" && !lexicon.ContainsTerm(baseQuery, cat)
		},
	},
	{
		name:      "intent_category_differs",
		newSearch: true,
		match: func(_, baseQuery string, intent *model.Intent) bool {
			if intent == nil || intent.Filters == nil || intent.Filters.Category == "" {
				return false
			}
			return !lexicon.ContainsTerm(baseQuery, lexicon.Normalize(intent.Filters.Category))
		},
	},
	{
		name:      "explicit_trigger",
		newSearch: true,
		match: func(message, _ string, _ *model.Intent) bool {
			return lexicon.HasNewSearchTrigger(message)
		},
	},
	{
		name:      "attribute_mention",
		newSearch: false,
		match: func(message, _ string, _ *model.Intent) bool {
			return lexicon.FindColor(message) != "" ||
				lexicon.FindMaterial(message) != "" ||
				lexicon.FindPriceDescriptor(message) != ""
		},
	},
}

// DetectNewSearch decides whether the message starts a new search episode.
// The default, when no rule matches, is continuation.
func DetectNewSearch(message, baseQuery string, intent *model.Intent) bool {
	for _, r := range detectRules {
		if r.match(message, baseQuery, intent) {
			logx.Debug().
				Str("rule", r.name).
				Bool("new_search", r.newSearch).
				Str("base_query", baseQuery).
				Msg("new-search detection")
			return r.newSearch
		}
	}
	return false
}
