// Package nlu resolves intents: a deterministic rule classifier used when the
// external classifier is unavailable, a follow-up resolver for short
// affirmative replies, and a defensive parser for classifier output.
package nlu

import (
	"context"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/lexicon"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
)

// faqTopics maps detection phrases to FAQ sub-topics, checked in order.
var faqTopics = []struct {
	topic   string
	phrases []string
}{
	{model.FaqTopicLocation, []string{"dimana toko", "di mana toko", "alamat toko", "lokasi toko", "where is the store", "store location", "alamat"}},
	{model.FaqTopicHours, []string{"jam buka", "jam operasional", "buka jam", "opening hours", "what time do you open"}},
	{model.FaqTopicDelivery, []string{"pengiriman", "ongkir", "kirim ke", "delivery", "shipping"}},
	{model.FaqTopicPayment, []string{"pembayaran", "cara bayar", "bisa bayar", "payment", "how do i pay"}},
}

// RuleClassifier is the deterministic intent fallback. It never fails and
// never calls out; identical input always yields identical output.
type RuleClassifier struct {
	norm *lexicon.Normalizer
}

func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{norm: lexicon.NewNormalizer()}
}

// Extract classifies the message with pure rules. The context is only used to
// re-join short attribute-only messages with the last query.
func (c *RuleClassifier) Extract(_ context.Context, message string, cc model.ClassifyContext) (*model.Intent, error) {
	lang := model.LanguageEN
	if lexicon.IsIndonesian(message) {
		lang = model.LanguageID
	}

	out := &model.Intent{Intent: model.IntentSearch, Language: lang}

	switch {
	case lexicon.IsAffirmative(message):
		// Bare "yes"-style replies carry no intent of their own; the
		// follow-up resolver decides from prior turn context.
		out.Intent = model.IntentUnknown
		return out, nil
	case lexicon.HasPrefix(message, lexicon.GreetingPrefixes):
		out.Intent = model.IntentGreeting
		return out, nil
	case lexicon.HasPrefix(message, lexicon.HelpPrefixes):
		out.Intent = model.IntentHelp
		return out, nil
	case lexicon.ContainsPhrase(message, lexicon.ClearFilterKeywords):
		out.Intent = model.IntentFilterClear
		return out, nil
	case lexicon.ContainsPhrase(message, lexicon.ResetKeywords):
		out.Intent = model.IntentReset
		return out, nil
	}

	if topic := findFaqTopic(message); topic != "" {
		out.Intent = model.IntentFaqInfo
		out.FaqTopic = topic
		return out, nil
	}

	q := lexicon.StripLeadIn(message)

	patch := &model.FilterPatch{}
	if color := lexicon.FindColor(q); color != "" {
		patch.Color = c.norm.Color(color)
	}
	if material := lexicon.FindMaterial(q); material != "" {
		patch.Material = c.norm.Material(material)
	}
	if cat := lexicon.FindCategory(q); cat != "" {
		patch.Category = cat
	}
	if *patch != (model.FilterPatch{}) {
		out.Filters = patch
	}

	// A short attribute-only message refines the previous query rather than
	// standing alone.
	if cc.LastQuery != "" && patch.Category == "" &&
		(patch.Color != "" || patch.Material != "" || lexicon.FindPriceDescriptor(q) != "") &&
		lexicon.MeaningfulWordCount(q) <= 2 {
		q = lexicon.Normalize(cc.LastQuery) + " " + q
	}

	out.SearchQuery = q
	return out, nil
}

func findFaqTopic(message string) string {
	for _, ft := range faqTopics {
		if lexicon.ContainsPhrase(message, ft.phrases) {
			return ft.topic
		}
	}
	return ""
}

var _ model.Classifier = (*RuleClassifier)(nil)
