package nlu

import (
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/lexicon"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	logx "github.com/IbalArrasyid/E-Commerce-Agent/pkg/logger"
)

// followUpRule maps prior-turn context to the intent a bare "yes" resolves to.
type followUpRule struct {
	name    string
	matches func(s *model.ConversationState) bool
	resolve func(out *model.Intent)
}

// followUpRules is evaluated in order; first match wins.
var followUpRules = []followUpRule{
	{
		name: "faq_location_to_hours",
		matches: func(s *model.ConversationState) bool {
			return s.LastIntent == string(model.IntentFaqInfo) && s.LastFaqTopic == model.FaqTopicLocation
		},
		resolve: func(out *model.Intent) {
			out.Intent = model.IntentFaqInfo
			out.FaqTopic = model.FaqTopicHours
		},
	},
	{
		name: "search_to_product_info",
		matches: func(s *model.ConversationState) bool {
			return s.LastIntent == string(model.IntentSearch) && s.Search.ResultCount > 0
		},
		resolve: func(out *model.Intent) {
			out.Intent = model.IntentProductInfo
		},
	},
	{
		name:    "default_help",
		matches: func(*model.ConversationState) bool { return true },
		resolve: func(out *model.Intent) {
			out.Intent = model.IntentHelp
		},
	},
}

// ResolveFollowUp turns a short affirmative reply into a concrete intent
// using the prior turn's recorded context. It only fires when the fresh
// classification came back unknown; anything else passes through untouched.
func ResolveFollowUp(message string, in *model.Intent, s *model.ConversationState) *model.Intent {
	if in == nil || s == nil || in.Intent != model.IntentUnknown || !lexicon.IsAffirmative(message) {
		return in
	}

	out := *in
	for _, r := range followUpRules {
		if r.matches(s) {
			r.resolve(&out)
			logx.Debug().
				Str("rule", r.name).
				Str("last_intent", s.LastIntent).
				Str("resolved_intent", string(out.Intent)).
				Msg("affirmative follow-up resolved")
			break
		}
	}
	return &out
}
