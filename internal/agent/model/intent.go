package model

// IntentName labels what the user is trying to do this turn.
type IntentName string

const (
	IntentGreeting    IntentName = "greeting"
	IntentHelp        IntentName = "help"
	IntentSearch      IntentName = "search"
	IntentFaqInfo     IntentName = "faq_info"
	IntentProductInfo IntentName = "product_info"
	IntentFilterClear IntentName = "filter_clear"
	IntentReset       IntentName = "reset"
	IntentUnknown     IntentName = "unknown"
)

// Valid reports whether the name is one of the recognized intents.
func (n IntentName) Valid() bool {
	switch n {
	case IntentGreeting, IntentHelp, IntentSearch, IntentFaqInfo,
		IntentProductInfo, IntentFilterClear, IntentReset, IntentUnknown:
		return true
	}
	return false
}

// FAQ sub-topics used for follow-up resolution.
const (
	FaqTopicLocation = "location"
	FaqTopicHours    = "hours"
	FaqTopicDelivery = "delivery"
	FaqTopicPayment  = "payment"
)

// FilterPatch carries the filter fields extracted from a single utterance.
// Absent fields leave the corresponding state filter untouched.
type FilterPatch struct {
	Category string   `json:"category,omitempty"`
	Color    string   `json:"color,omitempty"`
	Material string   `json:"material,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	PriceMin *float64 `json:"price_min,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`
}

// Intent is the per-message classification result, either from the external
// classifier or from the deterministic fallback rules.
type Intent struct {
	Intent      IntentName   `json:"intent"`
	SearchQuery string       `json:"search_query,omitempty"`
	Filters     *FilterPatch `json:"filters,omitempty"`
	Language    string       `json:"language"`
	FaqTopic    string       `json:"faq_topic,omitempty"`
}

// Attributes are the lexicon hits detected in a single turn.
type Attributes struct {
	Category string `json:"category,omitempty"`
	Color    string `json:"color,omitempty"`
	Material string `json:"material,omitempty"`
	Price    string `json:"price,omitempty"`
}

// ReformulatedQuery is the outcome of query reformulation for one turn.
type ReformulatedQuery struct {
	Query              string     `json:"query"`
	IsContinuation     bool       `json:"is_continuation"`
	IsNewSearch        bool       `json:"is_new_search"`
	DetectedAttributes Attributes `json:"detected_attributes"`
}
