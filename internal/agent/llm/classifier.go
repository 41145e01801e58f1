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

//go:embed template/classifier_prompt.txt
var classifierSystemPrompt string

// GeminiClassifier implements model.Classifier on a Gemini chat model.
type GeminiClassifier struct {
	chatModel *gemini.ChatModel
	modelName string
	timeout   time.Duration
}

func NewGeminiClassifier(cm *gemini.ChatModel, cfg model.ClassifierModelConfig) *GeminiClassifier {
	return &GeminiClassifier{
		chatModel: cm,
		modelName: cfg.Model,
		timeout:   cfg.Timeout,
	}
}

// Extract classifies the message through the model. Errors (including
// timeouts) are wrapped into errx categories; the orchestrator degrades to
// the deterministic fallback on any of them.
func (c *GeminiClassifier) Extract(ctx context.Context, message string, cc model.ClassifyContext) (*model.Intent, error) {
	sys, err := renderSystem(ctx, classifierSystemPrompt,
		"{current_category}", orNone(cc.CurrentCategory),
		"{active_filters}", filtersJSON(cc.ActiveFilters),
		"{last_query}", orNone(cc.LastQuery),
		"{last_intent}", orNone(cc.LastIntent),
		"{last_faq_topic}", orNone(cc.LastFaqTopic),
	)
	if err != nil {
		return nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.chatModel.Generate(cctx, []*schema.Message{
		schema.SystemMessage(sys),
		schema.UserMessage(message),
	})
	if err != nil {
		return nil, errx.WrapLLM(err)
	}
	logUsage("classifier", c.modelName, out)

	return nlu.ParseIntent(out.Content)
}

var _ model.Classifier = (*GeminiClassifier)(nil)
