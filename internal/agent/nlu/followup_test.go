package nlu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
)

func TestResolveFollowUp(t *testing.T) {
	unknown := func() *model.Intent {
		return &model.Intent{Intent: model.IntentUnknown, Language: model.LanguageID}
	}

	tests := []struct {
		name    string
		message string
		in      *model.Intent
		state   *model.ConversationState
		want    model.IntentName
		topic   string
	}{
		{
			name:    "search with results resolves to product info",
			message: "iya",
			in:      unknown(),
			state: &model.ConversationState{
				LastIntent: string(model.IntentSearch),
				Search:     model.SearchState{ResultCount: 3},
			},
			want: model.IntentProductInfo,
		},
		{
			name:    "search without results falls back to help",
			message: "iya",
			in:      unknown(),
			state: &model.ConversationState{
				LastIntent: string(model.IntentSearch),
			},
			want: model.IntentHelp,
		},
		{
			name:    "faq location resolves to hours",
			message: "ya",
			in:      unknown(),
			state: &model.ConversationState{
				LastIntent:   string(model.IntentFaqInfo),
				LastFaqTopic: model.FaqTopicLocation,
			},
			want:  model.IntentFaqInfo,
			topic: model.FaqTopicHours,
		},
		{
			name:    "faq other topic falls back to help",
			message: "ok",
			in:      unknown(),
			state: &model.ConversationState{
				LastIntent:   string(model.IntentFaqInfo),
				LastFaqTopic: model.FaqTopicDelivery,
			},
			want: model.IntentHelp,
		},
		{
			name:    "empty history falls back to help",
			message: "iya",
			in:      unknown(),
			state:   &model.ConversationState{},
			want:    model.IntentHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ResolveFollowUp(tt.message, tt.in, tt.state)
			assert.Equal(t, tt.want, out.Intent)
			assert.Equal(t, tt.topic, out.FaqTopic)
		})
	}
}

func TestResolveFollowUpOnlyFiresOnAffirmativeUnknown(t *testing.T) {
	st := &model.ConversationState{
		LastIntent: string(model.IntentSearch),
		Search:     model.SearchState{ResultCount: 2},
	}

	// non-affirmative message passes through
	in := &model.Intent{Intent: model.IntentUnknown}
	assert.Equal(t, model.IntentUnknown, ResolveFollowUp("apa itu", in, st).Intent)

	// concrete intent passes through even when the message is affirmative
	in = &model.Intent{Intent: model.IntentSearch, SearchQuery: "mau"}
	assert.Equal(t, model.IntentSearch, ResolveFollowUp("mau", in, st).Intent)

	// input is not mutated
	in = &model.Intent{Intent: model.IntentUnknown}
	out := ResolveFollowUp("iya", in, st)
	assert.Equal(t, model.IntentProductInfo, out.Intent)
	assert.Equal(t, model.IntentUnknown, in.Intent)
}
