package llm

import (
	"context"
	_ "embed"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/nlu"
	errx "github.com/IbalArrasyid/E-Commerce-Agent/internal/core/error"
)

//go:embed template/response_prompt.txt
var responseSystemPrompt string

// maxPromptProducts caps how many results are interpolated into the prompt.
const maxPromptProducts = 10

// GeminiResponseGenerator implements model.ResponseGenerator on a Gemini
// chat model.
type GeminiResponseGenerator struct {
	chatModel *gemini.ChatModel
	modelName string
	timeout   time.Duration
	prompt    model.PromptConfig
}

func NewGeminiResponseGenerator(cm *gemini.ChatModel, cfg model.ResponseModelConfig, prompt model.PromptConfig) *GeminiResponseGenerator {
	return &GeminiResponseGenerator{
		chatModel: cm,
		modelName: cfg.Model,
		timeout:   cfg.Timeout,
		prompt:    prompt,
	}
}

func (g *GeminiResponseGenerator) Generate(ctx context.Context, gc model.GenerateContext) (*model.GeneratedResponse, error) {
	products := gc.Products
	if len(products) > maxPromptProducts {
		products = products[:maxPromptProducts]
	}
	productsJSON, err := json.Marshal(products)
	if err != nil {
		productsJSON = []byte("[]")
	}

	sys, err := renderSystem(ctx, responseSystemPrompt,
		"{store_name}", g.prompt.StoreName,
		"{store_type}", g.prompt.StoreType,
		"{language}", orNone(gc.Language),
		"{intent}", string(gc.Intent),
		"{faq_topic}", orNone(gc.FaqTopic),
		"{search_query}", orNone(gc.SearchQuery),
		"{active_filters}", filtersJSON(gc.ActiveFilters),
		"{product_count}", strconv.Itoa(gc.ProductCount),
		"{products_json}", string(productsJSON),
	)
	if err != nil {
		return nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	out, err := g.chatModel.Generate(cctx, []*schema.Message{
		schema.SystemMessage(sys),
		schema.UserMessage("Write the intro and follow-up for this turn."),
	})
	if err != nil {
		return nil, errx.WrapLLM(err)
	}
	logUsage("response_generator", g.modelName, out)

	return nlu.ParseGenerated(out.Content)
}

var _ model.ResponseGenerator = (*GeminiResponseGenerator)(nil)
