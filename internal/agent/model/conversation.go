package model

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// Supported conversation languages.
const (
	LanguageID = "id"
	LanguageEN = "en"
)

// SupportedLanguage reports whether the agent can answer in the given language.
func SupportedLanguage(lang string) bool {
	return lang == LanguageID || lang == LanguageEN
}

// Message is one entry of the append-only audit log of a conversation.
// It is never read back by the reformulation logic.
type Message struct {
	Role    schema.RoleType `json:"role"`
	Content string          `json:"content"`
}

// Filters holds the accumulated structured search constraints for a thread.
// A zero-valued field means "no constraint"; numeric bounds use pointers so
// that absence is distinguishable from zero.
type Filters struct {
	Category string   `json:"category,omitempty"`
	Color    string   `json:"color,omitempty"`
	Material string   `json:"material,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	PriceMin *float64 `json:"priceMin,omitempty"`
	PriceMax *float64 `json:"priceMax,omitempty"`
}

// IsZero reports whether no constraint is set.
func (f Filters) IsZero() bool {
	return f.Category == "" && f.Color == "" && f.Material == "" &&
		f.Brand == "" && f.PriceMin == nil && f.PriceMax == nil
}

// SearchState tracks the current search episode of a thread.
type SearchState struct {
	Query       string    `json:"query"`
	BaseQuery   string    `json:"baseQuery"`
	Results     []Product `json:"results"`
	ResultCount int       `json:"resultCount"`
	SearchType  string    `json:"searchType"`
}

// ConversationState is the per-thread dialogue state, keyed by thread ID.
type ConversationState struct {
	ThreadID     string      `json:"threadId"`
	Language     string      `json:"language"`
	Filters      Filters     `json:"filters"`
	Search       SearchState `json:"search"`
	LastIntent   string      `json:"lastIntent"`
	LastFaqTopic string      `json:"lastFaqTopic,omitempty"`
	Messages     []Message   `json:"messages"`
}

// NewConversationState returns the default state created lazily on first contact.
func NewConversationState(threadID string) *ConversationState {
	return &ConversationState{
		ThreadID: threadID,
		Language: LanguageID,
		Search:   SearchState{Results: []Product{}},
		Messages: []Message{},
	}
}

// Clone returns a deep copy so repositories can hand out snapshots without
// sharing mutable slices with callers.
func (s *ConversationState) Clone() *ConversationState {
	if s == nil {
		return nil
	}
	out := *s
	out.Search.Results = make([]Product, len(s.Search.Results))
	copy(out.Search.Results, s.Search.Results)
	out.Messages = make([]Message, len(s.Messages))
	copy(out.Messages, s.Messages)
	if s.Filters.PriceMin != nil {
		v := *s.Filters.PriceMin
		out.Filters.PriceMin = &v
	}
	if s.Filters.PriceMax != nil {
		v := *s.Filters.PriceMax
		out.Filters.PriceMax = &v
	}
	return &out
}

// StateRepository persists conversation state per thread.
type StateRepository interface {
	// Load returns the stored state, or (nil, nil) when the thread is unknown.
	Load(ctx context.Context, threadID string) (*ConversationState, error)

	// Save stores the full state document for the thread.
	Save(ctx context.Context, state *ConversationState) error

	// Delete removes the state for the thread.
	Delete(ctx context.Context, threadID string) error
}
