package model

import "context"

// ClassifyContext is the prior-turn context handed to the intent classifier.
type ClassifyContext struct {
	CurrentCategory string
	ActiveFilters   Filters
	LastQuery       string
	LastIntent      string
	LastFaqTopic    string
}

// Classifier extracts a structured Intent from a raw utterance.
// Implementations may fail or time out; callers must degrade gracefully.
type Classifier interface {
	Extract(ctx context.Context, message string, cc ClassifyContext) (*Intent, error)
}

// ReformulateContext is the search-episode context for tier-2 reformulation.
type ReformulateContext struct {
	BaseQuery       string
	LastSearchQuery string
	ActiveFilters   Filters
	Language        string
}

// Reformulator rewrites an utterance into a clean search query when the
// deterministic rules are inconclusive.
type Reformulator interface {
	Reformulate(ctx context.Context, message string, rc ReformulateContext) (*ReformulatedQuery, error)
}

// SearchService is the product retrieval backend.
type SearchService interface {
	Search(ctx context.Context, query string, filters Filters, n int, mode string) (*SearchResult, error)
}

// GenerateContext carries everything the narrative generator needs.
type GenerateContext struct {
	Language      string
	HasProducts   bool
	ProductCount  int
	Products      []Product
	SearchQuery   string
	ActiveFilters Filters
	Intent        IntentName
	FaqTopic      string
}

// GeneratedResponse is the narrative half of a reply.
type GeneratedResponse struct {
	Intro    string `json:"intro"`
	FollowUp string `json:"follow_up"`
}

// ResponseGenerator produces the intro and follow-up text around results.
type ResponseGenerator interface {
	Generate(ctx context.Context, gc GenerateContext) (*GeneratedResponse, error)
}

// ReplyMeta summarizes how a reply was produced.
type ReplyMeta struct {
	HasProducts      bool   `json:"hasProducts"`
	SearchType       string `json:"searchType"`
	ProductCount     int    `json:"productCount"`
	Intent           string `json:"intent"`
	DetectedLanguage string `json:"detectedLanguage"`
}

// Reply is the assembled answer for one processed message.
type Reply struct {
	Intro    string    `json:"intro"`
	Products []Product `json:"products"`
	FollowUp string    `json:"followUp"`
	Meta     ReplyMeta `json:"meta"`
}
