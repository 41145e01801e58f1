package query

import (
	"context"
	"strings"
	"time"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/lexicon"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	logx "github.com/IbalArrasyid/E-Commerce-Agent/pkg/logger"
)

// maxAttributeWords is the meaningful-word budget under which a message
// counts as "essentially just an attribute mention".
const maxAttributeWords = 2

// Reformulator resolves the search query for a turn in two tiers: a
// deterministic rule path that is authoritative whenever it is conclusive,
// and an optional external fallback for everything else. Resolve never
// returns an error; the worst case is raw-message passthrough.
type Reformulator struct {
	fallback model.Reformulator // nil disables tier 2
	timeout  time.Duration
	norm     *lexicon.Normalizer
}

func NewReformulator(fallback model.Reformulator, timeout time.Duration) *Reformulator {
	return &Reformulator{
		fallback: fallback,
		timeout:  timeout,
		norm:     lexicon.NewNormalizer(),
	}
}

// Resolve returns the reformulated query for this turn.
func (r *Reformulator) Resolve(ctx context.Context, message string, rc model.ReformulateContext) *model.ReformulatedQuery {
	if rq, ok := r.Deterministic(message, rc.BaseQuery); ok {
		return rq
	}

	if r.fallback != nil {
		cctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()
		rq, err := r.fallback.Reformulate(cctx, message, rc)
		if err == nil && rq != nil && strings.TrimSpace(rq.Query) != "" {
			return rq
		}
		logx.Warn().Err(err).Str("base_query", rc.BaseQuery).
			Msg("reformulator fallback failed; passing message through")
	}

	return &model.ReformulatedQuery{Query: message}
}

// Deterministic is the tier-1 rule path. The second return value reports
// whether the rules were conclusive; when false the caller escalates to
// tier 2. It is a pure function of its inputs.
func (r *Reformulator) Deterministic(message, baseQuery string) (*model.ReformulatedQuery, bool) {
	msg := lexicon.Normalize(message)

	// Explicit trigger naming a different category starts a fresh episode:
	// the raw message becomes the query.
	if lexicon.HasNewSearchTrigger(msg) {
		if cat := lexicon.FindCategory(msg); cat != "" && !lexicon.ContainsTerm(baseQuery, cat) {
			return &model.ReformulatedQuery{
				Query:              message,
				IsNewSearch:        true,
				DetectedAttributes: model.Attributes{Category: cat},
			}, true
		}
	}

	attrs := model.Attributes{
		Color:    lexicon.FindColor(msg),
		Material: lexicon.FindMaterial(msg),
		Price:    lexicon.FindPriceDescriptor(msg),
	}
	hasAttr := attrs.Color != "" || attrs.Material != "" || attrs.Price != ""

	if hasAttr && lexicon.MeaningfulWordCount(msg) <= maxAttributeWords {
		if baseQuery == "" {
			// First-ever query; nothing to refine yet.
			return &model.ReformulatedQuery{Query: message, DetectedAttributes: attrs}, true
		}
		return &model.ReformulatedQuery{
			Query:              r.mergeAttributes(baseQuery, attrs),
			IsContinuation:     true,
			DetectedAttributes: attrs,
		}, true
	}

	if baseQuery == "" {
		return &model.ReformulatedQuery{Query: message}, true
	}

	// Inconclusive: escalate to tier 2.
	return nil, false
}

// mergeAttributes rewrites the base query with this turn's attributes. Only
// attribute kinds re-mentioned this turn are stripped from the base, so an
// earlier color survives a later material refinement; replacements land in
// fixed category-color-material-price order.
func (r *Reformulator) mergeAttributes(baseQuery string, attrs model.Attributes) string {
	base := lexicon.Normalize(baseQuery)
	if attrs.Color != "" {
		base = lexicon.StripColors(base)
	}
	if attrs.Material != "" {
		base = lexicon.StripMaterials(base)
	}
	if attrs.Price != "" {
		base = lexicon.StripPriceDescriptors(base)
	}
	base = lexicon.StripLeadIn(base)

	parts := []string{base}
	if attrs.Color != "" {
		parts = append(parts, r.norm.Color(attrs.Color))
	}
	if attrs.Material != "" {
		parts = append(parts, r.norm.Material(attrs.Material))
	}
	if attrs.Price != "" {
		parts = append(parts, r.norm.PriceDescriptor(attrs.Price))
	}

	joined := strings.Join(parts, " ")
	return strings.Join(strings.Fields(joined), " ")
}
