// Package agent is the orchestrator: it drives one user message through
// intent resolution, query reformulation, filter merging, search dispatch and
// response assembly, persisting the conversation state between steps.
package agent

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/lexicon"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/nlu"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/query"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/respond"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/state"
	errx "github.com/IbalArrasyid/E-Commerce-Agent/internal/core/error"
	logx "github.com/IbalArrasyid/E-Commerce-Agent/pkg/logger"
)

const (
	searchLimit    = 10
	searchModeAuto = "auto"

	refusalIntro = "Maaf, saat ini saya hanya bisa membantu dalam Bahasa Indonesia atau Inggris. " +
		"Sorry, I can currently only help in Indonesian or English."
	refusalFollowUp = "Bisa diulangi dalam Bahasa Indonesia atau Inggris? Could you repeat that in Indonesian or English?"
)

// Options are the optional collaborators. Every field may be left nil/zero:
// the agent then runs fully deterministic on the rule fallbacks.
type Options struct {
	Classifier         model.Classifier
	Reformulator       model.Reformulator
	Generator          model.ResponseGenerator
	ReformulateTimeout time.Duration
	Prompt             model.PromptConfig
}

// Agent processes messages for conversation threads.
type Agent struct {
	store     *state.Store
	search    model.SearchService
	classify  model.Classifier
	fallback  *nlu.RuleClassifier
	reform    *query.Reformulator
	generator model.ResponseGenerator
	templates *respond.TemplateGenerator
	norm      *lexicon.Normalizer
}

func New(store *state.Store, search model.SearchService, opts Options) *Agent {
	timeout := opts.ReformulateTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Agent{
		store:     store,
		search:    search,
		classify:  opts.Classifier,
		fallback:  nlu.NewRuleClassifier(),
		reform:    query.NewReformulator(opts.Reformulator, timeout),
		generator: opts.Generator,
		templates: respond.NewTemplateGenerator(opts.Prompt),
		norm:      lexicon.NewNormalizer(),
	}
}

// ProcessMessage runs one message through the pipeline and returns the
// assembled reply. Collaborator failures degrade to deterministic paths;
// only state-store and search failures surface as errors.
func (a *Agent) ProcessMessage(ctx context.Context, threadID, message string) (*model.Reply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, errx.New(errors.New("empty message"), http.StatusBadRequest, "message must not be empty")
	}

	st, err := a.store.GetOrCreate(ctx, threadID)
	if err != nil {
		return nil, err
	}

	intent := a.resolveIntent(ctx, message, st)
	intent = nlu.ResolveFollowUp(message, intent, st)
	lang := intent.Language

	logx.Info().
		Str("thread_id", threadID).
		Str("intent", string(intent.Intent)).
		Str("language", lang).
		Msg("message classified")

	// The user message is logged before the language gate so refused turns
	// still leave an audit trail.
	cmds := []state.Command{state.AddMessage{Role: schema.User, Content: message}}
	if model.SupportedLanguage(lang) {
		cmds = append(cmds, state.SetLanguage{Language: lang})
	}
	if st, err = a.store.Update(ctx, threadID, cmds...); err != nil {
		return nil, err
	}

	if !model.SupportedLanguage(lang) {
		return a.finishReply(ctx, threadID, &model.GeneratedResponse{
			Intro:    refusalIntro,
			FollowUp: refusalFollowUp,
		}, nil, model.SearchTypeNone, intent.Intent, lang)
	}

	switch intent.Intent {
	case model.IntentGreeting, model.IntentHelp, model.IntentFaqInfo:
		return a.handleDirect(ctx, threadID, intent)
	case model.IntentProductInfo:
		return a.handleProductInfo(ctx, threadID, st, intent)
	case model.IntentReset:
		return a.handleReset(ctx, threadID, intent)
	}

	return a.handleSearch(ctx, threadID, message, st, intent)
}

// resolveIntent tries the external classifier and degrades to the rule
// fallback on any failure. It always returns a non-nil intent.
func (a *Agent) resolveIntent(ctx context.Context, message string, st *model.ConversationState) *model.Intent {
	cc := model.ClassifyContext{
		CurrentCategory: st.Filters.Category,
		ActiveFilters:   st.Filters,
		LastQuery:       st.Search.Query,
		LastIntent:      st.LastIntent,
		LastFaqTopic:    st.LastFaqTopic,
	}

	if a.classify != nil {
		out, err := a.classify.Extract(ctx, message, cc)
		if err == nil && out != nil {
			return out
		}
		logx.Warn().Err(err).Msg("classifier failed; using rule fallback")
	}

	out, _ := a.fallback.Extract(ctx, message, cc)
	return out
}

// handleDirect answers greeting, help and FAQ turns without touching search.
func (a *Agent) handleDirect(ctx context.Context, threadID string, intent *model.Intent) (*model.Reply, error) {
	gen := a.generate(ctx, model.GenerateContext{
		Language: intent.Language,
		Intent:   intent.Intent,
		FaqTopic: intent.FaqTopic,
	})

	if _, err := a.store.Update(ctx, threadID,
		state.SetLastIntent{Intent: intent.Intent, FaqTopic: intent.FaqTopic},
	); err != nil {
		return nil, err
	}

	return a.finishReply(ctx, threadID, gen, nil, model.SearchTypeNone, intent.Intent, intent.Language)
}

// handleProductInfo re-surfaces the most recent result set without a new
// search dispatch.
func (a *Agent) handleProductInfo(ctx context.Context, threadID string, st *model.ConversationState, intent *model.Intent) (*model.Reply, error) {
	products := st.Search.Results

	gen := a.generate(ctx, model.GenerateContext{
		Language:      intent.Language,
		HasProducts:   len(products) > 0,
		ProductCount:  len(products),
		Products:      products,
		SearchQuery:   st.Search.Query,
		ActiveFilters: st.Filters,
		Intent:        model.IntentProductInfo,
	})

	if _, err := a.store.Update(ctx, threadID,
		state.SetLastIntent{Intent: model.IntentProductInfo},
	); err != nil {
		return nil, err
	}

	return a.finishReply(ctx, threadID, gen, products, st.Search.SearchType, model.IntentProductInfo, intent.Language)
}

// handleReset deletes the thread state entirely. The confirmation reply is
// not persisted; there is no state left to append it to.
func (a *Agent) handleReset(ctx context.Context, threadID string, intent *model.Intent) (*model.Reply, error) {
	if err := a.store.Delete(ctx, threadID); err != nil {
		return nil, err
	}
	logx.Info().Str("thread_id", threadID).Msg("conversation reset")

	gen := a.generate(ctx, model.GenerateContext{
		Language: intent.Language,
		Intent:   model.IntentReset,
	})
	return &model.Reply{
		Intro:    gen.Intro,
		Products: []model.Product{},
		FollowUp: gen.FollowUp,
		Meta: model.ReplyMeta{
			SearchType:       model.SearchTypeNone,
			Intent:           string(model.IntentReset),
			DetectedLanguage: intent.Language,
		},
	}, nil
}

// handleSearch is the main pipeline: base-query determination, new-search
// check, reformulation, filter merge, dispatch, state update and assembly.
func (a *Agent) handleSearch(ctx context.Context, threadID, message string, st *model.ConversationState, intent *model.Intent) (*model.Reply, error) {
	base := st.Search.BaseQuery
	if base == "" {
		base = intent.SearchQuery
	}
	if base == "" {
		base = message
	}

	var rq *model.ReformulatedQuery
	switch {
	case intent.Intent == model.IntentFilterClear:
		// The message itself is a command, not search text; re-run the
		// current episode (if any) against the emptied filter set.
		if st.Search.BaseQuery == "" {
			if _, err := a.store.Update(ctx, threadID,
				state.ClearFilters{},
				state.SetLastIntent{Intent: model.IntentFilterClear},
			); err != nil {
				return nil, err
			}
			gen := a.generate(ctx, model.GenerateContext{
				Language: intent.Language,
				Intent:   model.IntentFilterClear,
			})
			return a.finishReply(ctx, threadID, gen, nil, model.SearchTypeNone, model.IntentFilterClear, intent.Language)
		}
		rq = &model.ReformulatedQuery{Query: st.Search.BaseQuery}

	case query.DetectNewSearch(message, st.Search.BaseQuery, intent):
		next := intent.SearchQuery
		if next == "" {
			next = message
		}
		base = next
		rq = &model.ReformulatedQuery{Query: next, IsNewSearch: true}

	default:
		rq = a.reform.Resolve(ctx, message, model.ReformulateContext{
			BaseQuery:       st.Search.BaseQuery,
			LastSearchQuery: st.Search.Query,
			ActiveFilters:   st.Filters,
			Language:        intent.Language,
		})
	}

	filterCmds, merged := a.mergeFilters(st, intent, rq)

	res, err := a.search.Search(ctx, rq.Query, merged, searchLimit, searchModeAuto)
	if err != nil {
		var ex *errx.Error
		if errors.As(err, &ex) {
			return nil, err
		}
		return nil, errx.New(err, http.StatusBadGateway, errx.SearchErrorMessage)
	}

	lastIntent := intent.Intent
	if lastIntent != model.IntentFilterClear {
		lastIntent = model.IntentSearch
	}
	cmds := append(filterCmds,
		state.SetSearch{
			Query:      rq.Query,
			BaseQuery:  base,
			Results:    res.Products,
			SearchType: res.SearchType,
		},
		state.SetLastIntent{Intent: lastIntent},
	)
	if _, err := a.store.Update(ctx, threadID, cmds...); err != nil {
		return nil, err
	}

	gen := a.generate(ctx, model.GenerateContext{
		Language:      intent.Language,
		HasProducts:   res.Count > 0,
		ProductCount:  res.Count,
		Products:      res.Products,
		SearchQuery:   rq.Query,
		ActiveFilters: merged,
		Intent:        lastIntent,
	})

	return a.finishReply(ctx, threadID, gen, res.Products, res.SearchType, lastIntent, intent.Language)
}

// mergeFilters turns the classifier patch plus the reformulation's detected
// attributes into filter commands, and returns the merged set used for this
// dispatch. Zero-valued numerics count as absent. A filter_clear intent
// empties the map before anything lands.
func (a *Agent) mergeFilters(st *model.ConversationState, intent *model.Intent, rq *model.ReformulatedQuery) ([]state.Command, model.Filters) {
	var cmds []state.Command

	merged := st.Filters
	if intent.Intent == model.IntentFilterClear {
		cmds = append(cmds, state.ClearFilters{})
		merged = model.Filters{}
	}

	patch := intent.Filters
	if patch == nil {
		patch = &model.FilterPatch{}
	}

	category := lexicon.Normalize(patch.Category)
	if category == "" && rq.DetectedAttributes.Category != "" {
		category = rq.DetectedAttributes.Category
	}
	color := patch.Color
	if color == "" {
		color = rq.DetectedAttributes.Color
	}
	material := patch.Material
	if material == "" {
		material = rq.DetectedAttributes.Material
	}

	if category != "" {
		cmds = append(cmds, state.SetFilter{Key: state.FilterCategory, Text: category})
		merged.Category = category
	}
	if color != "" {
		c := a.norm.Color(color)
		cmds = append(cmds, state.SetFilter{Key: state.FilterColor, Text: c})
		merged.Color = c
	}
	if material != "" {
		m := a.norm.Material(material)
		cmds = append(cmds, state.SetFilter{Key: state.FilterMaterial, Text: m})
		merged.Material = m
	}
	if patch.Brand != "" {
		cmds = append(cmds, state.SetFilter{Key: state.FilterBrand, Text: patch.Brand})
		merged.Brand = patch.Brand
	}
	if patch.PriceMin != nil && *patch.PriceMin > 0 {
		cmds = append(cmds, state.SetFilter{Key: state.FilterPriceMin, Number: *patch.PriceMin})
		v := *patch.PriceMin
		merged.PriceMin = &v
	}
	if patch.PriceMax != nil && *patch.PriceMax > 0 {
		cmds = append(cmds, state.SetFilter{Key: state.FilterPriceMax, Number: *patch.PriceMax})
		v := *patch.PriceMax
		merged.PriceMax = &v
	}

	return cmds, merged
}

// generate delegates narrative generation, degrading to the deterministic
// templates when the external generator is absent or fails.
func (a *Agent) generate(ctx context.Context, gc model.GenerateContext) *model.GeneratedResponse {
	if a.generator != nil {
		out, err := a.generator.Generate(ctx, gc)
		if err == nil && out != nil {
			return out
		}
		logx.Warn().Err(err).Str("intent", string(gc.Intent)).
			Msg("response generator failed; using templates")
	}
	out, _ := a.templates.Generate(ctx, gc)
	return out
}

// finishReply appends the assistant message to the audit log and assembles
// the Reply envelope.
func (a *Agent) finishReply(ctx context.Context, threadID string, gen *model.GeneratedResponse, products []model.Product, searchType string, intent model.IntentName, lang string) (*model.Reply, error) {
	content := strings.TrimSpace(gen.Intro + " " + gen.FollowUp)
	if _, err := a.store.Update(ctx, threadID,
		state.AddMessage{Role: schema.Assistant, Content: content},
	); err != nil {
		return nil, err
	}

	if products == nil {
		products = []model.Product{}
	}
	return &model.Reply{
		Intro:    gen.Intro,
		Products: products,
		FollowUp: gen.FollowUp,
		Meta: model.ReplyMeta{
			HasProducts:      len(products) > 0,
			SearchType:       searchType,
			ProductCount:     len(products),
			Intent:           string(intent),
			DetectedLanguage: lang,
		},
	}, nil
}
