// Package state implements the per-thread conversation state store. State is
// mutated exclusively through tagged commands applied by a pure reducer, so
// every write path is enumerable and testable.
package state

import (
	"github.com/cloudwego/eino/schema"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
)

// Filter keys accepted by SetFilter.
const (
	FilterCategory = "category"
	FilterColor    = "color"
	FilterMaterial = "material"
	FilterBrand    = "brand"
	FilterPriceMin = "priceMin"
	FilterPriceMax = "priceMax"
)

// Command is one named state mutation. Implementations are pure: they only
// write to the state they are given.
type Command interface {
	apply(s *model.ConversationState)
}

// SetLanguage records the detected conversation language.
type SetLanguage struct {
	Language string
}

func (c SetLanguage) apply(s *model.ConversationState) {
	s.Language = c.Language
}

// SetFilter sets one filter key. Text carries string-valued filters, Number
// the price bounds; unknown keys are ignored.
type SetFilter struct {
	Key    string
	Text   string
	Number float64
}

func (c SetFilter) apply(s *model.ConversationState) {
	switch c.Key {
	case FilterCategory:
		s.Filters.Category = c.Text
	case FilterColor:
		s.Filters.Color = c.Text
	case FilterMaterial:
		s.Filters.Material = c.Text
	case FilterBrand:
		s.Filters.Brand = c.Text
	case FilterPriceMin:
		v := c.Number
		s.Filters.PriceMin = &v
	case FilterPriceMax:
		v := c.Number
		s.Filters.PriceMax = &v
	}
}

// ClearFilters resets the whole filter map to empty.
type ClearFilters struct{}

func (ClearFilters) apply(s *model.ConversationState) {
	s.Filters = model.Filters{}
}

// SetSearch records the outcome of one search dispatch. BaseQuery is only
// overwritten when non-empty, keeping the base stable across continuation
// turns. ResultCount always tracks len(Results).
type SetSearch struct {
	Query      string
	BaseQuery  string
	Results    []model.Product
	SearchType string
}

func (c SetSearch) apply(s *model.ConversationState) {
	s.Search.Query = c.Query
	if c.BaseQuery != "" {
		s.Search.BaseQuery = c.BaseQuery
	}
	results := c.Results
	if results == nil {
		results = []model.Product{}
	}
	s.Search.Results = results
	s.Search.ResultCount = len(results)
	s.Search.SearchType = c.SearchType
}

// SetBaseQuery resets the search-episode anchor, e.g. on a new-search decision.
type SetBaseQuery struct {
	Value string
}

func (c SetBaseQuery) apply(s *model.ConversationState) {
	s.Search.BaseQuery = c.Value
}

// SetLastIntent records the resolved intent (and FAQ sub-topic when
// applicable) for follow-up resolution on the next turn.
type SetLastIntent struct {
	Intent   model.IntentName
	FaqTopic string
}

func (c SetLastIntent) apply(s *model.ConversationState) {
	s.LastIntent = string(c.Intent)
	s.LastFaqTopic = c.FaqTopic
}

// AddMessage appends one entry to the audit log.
type AddMessage struct {
	Role    schema.RoleType
	Content string
}

func (c AddMessage) apply(s *model.ConversationState) {
	s.Messages = append(s.Messages, model.Message{Role: c.Role, Content: c.Content})
}

// Apply runs the commands over the state in order. It is the single reducer
// through which all mutations flow.
func Apply(s *model.ConversationState, cmds ...Command) {
	for _, c := range cmds {
		c.apply(s)
	}
}
