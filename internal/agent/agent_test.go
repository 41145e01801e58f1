package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/search"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/state"
	errx "github.com/IbalArrasyid/E-Commerce-Agent/internal/core/error"
)

// countingSearch wraps a SearchService and records dispatches.
type countingSearch struct {
	inner model.SearchService
	calls int
	err   error
}

func (c *countingSearch) Search(ctx context.Context, query string, filters model.Filters, n int, mode string) (*model.SearchResult, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.inner.Search(ctx, query, filters, n, mode)
}

type fakeClassifier struct {
	out *model.Intent
	err error
}

func (f *fakeClassifier) Extract(context.Context, string, model.ClassifyContext) (*model.Intent, error) {
	return f.out, f.err
}

type fakeGenerator struct {
	out *model.GeneratedResponse
	err error
}

func (f *fakeGenerator) Generate(context.Context, model.GenerateContext) (*model.GeneratedResponse, error) {
	return f.out, f.err
}

func newTestAgent(opts Options) (*Agent, *state.Store, *countingSearch) {
	store := state.NewStore(state.NewMemoryRepository())
	cs := &countingSearch{inner: search.NewMemorySearch(nil)}
	return New(store, cs, opts), store, cs
}

func TestGreetingNeverInvokesSearch(t *testing.T) {
	ag, _, cs := newTestAgent(Options{})
	ctx := context.Background()

	reply, err := ag.ProcessMessage(ctx, "t1", "halo")
	require.NoError(t, err)

	assert.Equal(t, string(model.IntentGreeting), reply.Meta.Intent)
	assert.Empty(t, reply.Products)
	assert.False(t, reply.Meta.HasProducts)
	assert.Zero(t, cs.calls)
	assert.NotEmpty(t, reply.Intro)
}

func TestSearchThenColorContinuation(t *testing.T) {
	ag, store, _ := newTestAgent(Options{})
	ctx := context.Background()

	reply, err := ag.ProcessMessage(ctx, "t1", "cari sofa")
	require.NoError(t, err)
	assert.Equal(t, string(model.IntentSearch), reply.Meta.Intent)
	require.NotEmpty(t, reply.Products)

	st, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "sofa", st.Search.BaseQuery)
	assert.Equal(t, len(st.Search.Results), st.Search.ResultCount)

	reply, err = ag.ProcessMessage(ctx, "t1", "putih")
	require.NoError(t, err)
	require.NotEmpty(t, reply.Products)
	for _, p := range reply.Products {
		assert.Equal(t, "sofa", p.Category)
		assert.Equal(t, "putih", p.Color)
	}

	st, err = store.Get(ctx, "t1")
	require.NoError(t, err)
	// continuation refines the query but keeps the episode anchor
	assert.Equal(t, "sofa putih", st.Search.Query)
	assert.Equal(t, "sofa", st.Search.BaseQuery)
	assert.Equal(t, "putih", st.Filters.Color)
}

func TestCategorySwitchStartsNewEpisode(t *testing.T) {
	ag, store, _ := newTestAgent(Options{})
	ctx := context.Background()

	_, err := ag.ProcessMessage(ctx, "t1", "cari sofa")
	require.NoError(t, err)

	reply, err := ag.ProcessMessage(ctx, "t1", "ada meja kayu")
	require.NoError(t, err)
	assert.Equal(t, string(model.IntentSearch), reply.Meta.Intent)

	st, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "ada meja kayu", st.Search.Query)
	assert.Equal(t, "ada meja kayu", st.Search.BaseQuery)
	assert.Equal(t, "meja", st.Filters.Category)
	assert.Equal(t, "kayu", st.Filters.Material)
}

func TestAffirmativeReusesResultsWithoutSearch(t *testing.T) {
	ag, _, cs := newTestAgent(Options{})
	ctx := context.Background()

	first, err := ag.ProcessMessage(ctx, "t1", "cari sofa")
	require.NoError(t, err)
	require.NotEmpty(t, first.Products)
	callsAfterSearch := cs.calls

	reply, err := ag.ProcessMessage(ctx, "t1", "iya")
	require.NoError(t, err)

	assert.Equal(t, string(model.IntentProductInfo), reply.Meta.Intent)
	assert.Equal(t, first.Products, reply.Products)
	assert.Equal(t, callsAfterSearch, cs.calls)
}

func TestFilterClearEmptiesFilters(t *testing.T) {
	ag, store, _ := newTestAgent(Options{})
	ctx := context.Background()

	_, err := ag.ProcessMessage(ctx, "t1", "cari sofa")
	require.NoError(t, err)
	_, err = ag.ProcessMessage(ctx, "t1", "putih")
	require.NoError(t, err)

	st, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	require.False(t, st.Filters.IsZero())

	reply, err := ag.ProcessMessage(ctx, "t1", "hapus filter")
	require.NoError(t, err)
	assert.Equal(t, string(model.IntentFilterClear), reply.Meta.Intent)

	st, err = store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, st.Filters.IsZero())
}

func TestResetDeletesState(t *testing.T) {
	ag, store, _ := newTestAgent(Options{})
	ctx := context.Background()

	_, err := ag.ProcessMessage(ctx, "t1", "cari sofa")
	require.NoError(t, err)

	reply, err := ag.ProcessMessage(ctx, "t1", "tolong mulai ulang")
	require.NoError(t, err)
	assert.Equal(t, string(model.IntentReset), reply.Meta.Intent)

	st, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestUnsupportedLanguageRefusal(t *testing.T) {
	fc := &fakeClassifier{out: &model.Intent{Intent: model.IntentSearch, SearchQuery: "canape", Language: "fr"}}
	ag, store, cs := newTestAgent(Options{Classifier: fc})
	ctx := context.Background()

	reply, err := ag.ProcessMessage(ctx, "t1", "je cherche un canape")
	require.NoError(t, err)

	assert.Equal(t, "fr", reply.Meta.DetectedLanguage)
	assert.Empty(t, reply.Products)
	assert.Zero(t, cs.calls)

	// the refused user message is still logged
	st, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotEmpty(t, st.Messages)
	assert.Equal(t, "je cherche un canape", st.Messages[0].Content)
}

func TestClassifierFailureDegradesToRules(t *testing.T) {
	fc := &fakeClassifier{err: errors.New("timeout")}
	ag, _, cs := newTestAgent(Options{Classifier: fc})
	ctx := context.Background()

	reply, err := ag.ProcessMessage(ctx, "t1", "halo")
	require.NoError(t, err)

	assert.Equal(t, string(model.IntentGreeting), reply.Meta.Intent)
	assert.Zero(t, cs.calls)
}

func TestSearchFailurePropagates(t *testing.T) {
	ag, _, cs := newTestAgent(Options{})
	cs.err = errors.New("backend down")
	ctx := context.Background()

	_, err := ag.ProcessMessage(ctx, "t1", "cari sofa")
	require.Error(t, err)

	var ex *errx.Error
	require.True(t, errors.As(err, &ex))
	assert.Equal(t, errx.SearchErrorMessage, ex.Message)
}

func TestGeneratorFailureDegradesToTemplates(t *testing.T) {
	fg := &fakeGenerator{err: errors.New("llm down")}
	ag, _, _ := newTestAgent(Options{Generator: fg})
	ctx := context.Background()

	reply, err := ag.ProcessMessage(ctx, "t1", "cari sofa")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Intro)
	assert.NotEmpty(t, reply.FollowUp)
}

func TestEmptyMessageRejected(t *testing.T) {
	ag, _, _ := newTestAgent(Options{})

	_, err := ag.ProcessMessage(context.Background(), "t1", "   ")
	require.Error(t, err)

	var ex *errx.Error
	require.True(t, errors.As(err, &ex))
	assert.Equal(t, 400, ex.Status)
}

func TestAssistantMessagesAppendedToAuditLog(t *testing.T) {
	ag, store, _ := newTestAgent(Options{})
	ctx := context.Background()

	_, err := ag.ProcessMessage(ctx, "t1", "halo")
	require.NoError(t, err)
	_, err = ag.ProcessMessage(ctx, "t1", "cari sofa")
	require.NoError(t, err)

	st, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	// two user messages and two assistant messages, in order
	require.Len(t, st.Messages, 4)
	assert.Equal(t, "halo", st.Messages[0].Content)
	assert.Equal(t, "cari sofa", st.Messages[2].Content)
}
