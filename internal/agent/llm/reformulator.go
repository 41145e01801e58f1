package llm

import (
	"context"
	_ "embed"
	"time"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/nlu"
	errx "github.com/IbalArrasyid/E-Commerce-Agent/internal/core/error"
)

//go:embed template/reformulator_prompt.txt
var reformulatorSystemPrompt string

// GeminiReformulator implements the tier-2 reformulation fallback on a
// Gemini chat model.
type GeminiReformulator struct {
	chatModel *gemini.ChatModel
	modelName string
	timeout   time.Duration
}

func NewGeminiReformulator(cm *gemini.ChatModel, cfg model.ReformulatorModelConfig) *GeminiReformulator {
	return &GeminiReformulator{
		chatModel: cm,
		modelName: cfg.Model,
		timeout:   cfg.Timeout,
	}
}

func (r *GeminiReformulator) Reformulate(ctx context.Context, message string, rc model.ReformulateContext) (*model.ReformulatedQuery, error) {
	sys, err := renderSystem(ctx, reformulatorSystemPrompt,
		"{base_query}", orNone(rc.BaseQuery),
		"{last_search_query}", orNone(rc.LastSearchQuery),
		"{active_filters}", filtersJSON(rc.ActiveFilters),
		"{language}", orNone(rc.Language),
	)
	if err != nil {
		return nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.chatModel.Generate(cctx, []*schema.Message{
		schema.SystemMessage(sys),
		schema.UserMessage(message),
	})
	if err != nil {
		return nil, errx.WrapLLM(err)
	}
	logUsage("reformulator", r.modelName, out)

	return nlu.ParseReformulated(out.Content)
}

var _ model.Reformulator = (*GeminiReformulator)(nil)
