package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
)

// renderSystem applies the replacements to a template and runs the result
// through the Eino prompt component so prompt callbacks fire.
func renderSystem(ctx context.Context, template string, replacements ...string) (string, error) {
	content := strings.NewReplacer(replacements...).Replace(template)

	tpl := prompt.FromMessages(
		schema.FString,
		schema.MessagesPlaceholder("system_messages", false),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"system_messages": []*schema.Message{schema.SystemMessage(content)},
	})
	if err != nil {
		return "", fmt.Errorf("prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("prompt render: empty result")
	}
	return msgs[0].Content, nil
}

// filtersJSON renders the active filters compactly for prompt interpolation.
func filtersJSON(f model.Filters) string {
	if f.IsZero() {
		return "{}"
	}
	b, err := json.Marshal(f)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
