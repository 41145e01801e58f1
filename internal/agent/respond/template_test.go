package respond

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
)

func generate(t *testing.T, gc model.GenerateContext) *model.GeneratedResponse {
	t.Helper()
	gen := NewTemplateGenerator(model.PromptConfig{StoreName: "Griya Kayu", StoreType: "furniture store"})
	out, err := gen.Generate(context.Background(), gc)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.Intro)
	assert.NotEmpty(t, out.FollowUp)
	return out
}

func TestTemplateGreeting(t *testing.T) {
	out := generate(t, model.GenerateContext{Language: model.LanguageID, Intent: model.IntentGreeting})
	assert.Contains(t, out.Intro, "Griya Kayu")

	out = generate(t, model.GenerateContext{Language: model.LanguageEN, Intent: model.IntentGreeting})
	assert.Contains(t, out.Intro, "Welcome")
}

func TestTemplateFaqTopics(t *testing.T) {
	topics := []string{
		model.FaqTopicLocation,
		model.FaqTopicHours,
		model.FaqTopicDelivery,
		model.FaqTopicPayment,
	}
	seen := map[string]bool{}
	for _, topic := range topics {
		out := generate(t, model.GenerateContext{
			Language: model.LanguageID,
			Intent:   model.IntentFaqInfo,
			FaqTopic: topic,
		})
		assert.False(t, seen[out.Intro], "duplicate answer for topic %s", topic)
		seen[out.Intro] = true
	}
}

func TestTemplateSearchResults(t *testing.T) {
	out := generate(t, model.GenerateContext{
		Language:     model.LanguageID,
		Intent:       model.IntentSearch,
		HasProducts:  true,
		ProductCount: 3,
		SearchQuery:  "sofa putih",
	})
	assert.Contains(t, out.Intro, "3")
	assert.Contains(t, out.Intro, "sofa putih")
}

func TestTemplateNoResults(t *testing.T) {
	out := generate(t, model.GenerateContext{
		Language:    model.LanguageEN,
		Intent:      model.IntentSearch,
		SearchQuery: "piano",
	})
	assert.Contains(t, out.Intro, "Sorry")
	assert.Contains(t, out.Intro, "piano")
}

func TestTemplateProductInfo(t *testing.T) {
	out := generate(t, model.GenerateContext{
		Language:     model.LanguageID,
		Intent:       model.IntentProductInfo,
		HasProducts:  true,
		ProductCount: 2,
	})
	assert.Contains(t, out.Intro, "2")
}

func TestTemplateNeverErrors(t *testing.T) {
	gen := NewTemplateGenerator(model.PromptConfig{})
	for _, intent := range []model.IntentName{
		model.IntentGreeting, model.IntentHelp, model.IntentSearch,
		model.IntentFaqInfo, model.IntentProductInfo, model.IntentFilterClear,
		model.IntentReset, model.IntentUnknown,
	} {
		for _, lang := range []string{model.LanguageID, model.LanguageEN} {
			out, err := gen.Generate(context.Background(), model.GenerateContext{Language: lang, Intent: intent})
			require.NoError(t, err)
			require.NotNil(t, out)
			assert.NotEmpty(t, out.Intro)
		}
	}
}
