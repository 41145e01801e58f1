package nlu

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	logx "github.com/IbalArrasyid/E-Commerce-Agent/pkg/logger"
)

// basic safety limits to avoid pathological model outputs
const (
	maxContentLen = 64 * 1024 // 64KB
	maxQueryLen   = 1024
	maxErrSnippet = 200
)

// extractJSON strips markdown fences and surrounding prose, returning the
// outermost JSON object in the content.
func extractJSON(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("empty content")
	}
	if len(content) > maxContentLen {
		logx.Warn().
			Int("max_len", maxContentLen).
			Int("orig_len", len(content)).
			Msg("classifier content truncated due to size limit")
		content = content[:maxContentLen]
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no json object in content: %s", safeSnippet(content))
	}
	return content[start : end+1], nil
}

// ParseIntent parses the classifier's JSON output into an Intent, validating
// every field. Unrecognized intent names degrade to unknown rather than
// erroring; structural failures return an error so the caller can fall back.
func ParseIntent(content string) (*model.Intent, error) {
	raw, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	var in model.Intent
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil, fmt.Errorf("unmarshal intent: %w (%s)", err, safeSnippet(raw))
	}

	if !in.Intent.Valid() {
		logx.Warn().Str("intent", string(in.Intent)).Msg("classifier produced unrecognized intent")
		in.Intent = model.IntentUnknown
	}
	in.Language = normalizeLanguage(in.Language)
	in.SearchQuery = clampString(strings.TrimSpace(in.SearchQuery), maxQueryLen)
	in.FaqTopic = strings.ToLower(strings.TrimSpace(in.FaqTopic))

	if in.Filters != nil {
		sanitizeFilterPatch(in.Filters)
		if *in.Filters == (model.FilterPatch{}) {
			in.Filters = nil
		}
	}

	return &in, nil
}

// ParseReformulated parses the tier-2 reformulator's JSON output.
func ParseReformulated(content string) (*model.ReformulatedQuery, error) {
	raw, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	var rq model.ReformulatedQuery
	if err := json.Unmarshal([]byte(raw), &rq); err != nil {
		return nil, fmt.Errorf("unmarshal reformulated query: %w (%s)", err, safeSnippet(raw))
	}

	rq.Query = clampString(strings.TrimSpace(rq.Query), maxQueryLen)
	if rq.Query == "" {
		return nil, fmt.Errorf("reformulated query is empty")
	}
	if rq.IsNewSearch && rq.IsContinuation {
		// Contradictory flags; new search wins because it is the safer reset.
		rq.IsContinuation = false
	}
	return &rq, nil
}

// ParseGenerated parses the response generator's JSON output.
func ParseGenerated(content string) (*model.GeneratedResponse, error) {
	raw, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	var gr model.GeneratedResponse
	if err := json.Unmarshal([]byte(raw), &gr); err != nil {
		return nil, fmt.Errorf("unmarshal generated response: %w (%s)", err, safeSnippet(raw))
	}
	gr.Intro = strings.TrimSpace(gr.Intro)
	gr.FollowUp = strings.TrimSpace(gr.FollowUp)
	if gr.Intro == "" {
		return nil, fmt.Errorf("generated response has no intro")
	}
	return &gr, nil
}

func sanitizeFilterPatch(p *model.FilterPatch) {
	p.Category = strings.ToLower(strings.TrimSpace(p.Category))
	p.Color = strings.ToLower(strings.TrimSpace(p.Color))
	p.Material = strings.ToLower(strings.TrimSpace(p.Material))
	p.Brand = strings.TrimSpace(p.Brand)
	// Zero is treated as "no constraint", same as the merge rule downstream.
	if p.PriceMin != nil && *p.PriceMin <= 0 {
		p.PriceMin = nil
	}
	if p.PriceMax != nil && *p.PriceMax <= 0 {
		p.PriceMax = nil
	}
	if p.PriceMin != nil && p.PriceMax != nil && *p.PriceMin > *p.PriceMax {
		p.PriceMin, p.PriceMax = nil, nil
	}
}

func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch lang {
	case "id", "ind", "indonesian", "bahasa indonesia":
		return model.LanguageID
	case "en", "eng", "english":
		return model.LanguageEN
	case "":
		return model.LanguageID
	}
	return lang
}

func clampString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func safeSnippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxErrSnippet {
		return s
	}
	return s[:maxErrSnippet]
}
