// Package llm provides the Gemini-backed implementations of the external
// collaborators: intent classifier, query reformulator and response
// generator. Each call is bounded by a timeout and every failure maps to an
// errx category; callers are expected to degrade to deterministic paths.
package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"google.golang.org/genai"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	logx "github.com/IbalArrasyid/E-Commerce-Agent/pkg/logger"
)

// ChatModelConfig holds the configuration for chat model creation.
type ChatModelConfig struct {
	APIKey       string
	BaseURL      string
	Classifier   *model.ClassifierModelConfig
	Reformulator *model.ReformulatorModelConfig
	Response     *model.ResponseModelConfig
}

// ChatModels holds the three chat models backing the collaborators.
type ChatModels struct {
	Classifier   *gemini.ChatModel
	Reformulator *gemini.ChatModel
	Response     *gemini.ChatModel
}

// NewChatModels creates the classifier, reformulator and response chat
// models on one shared Gemini client.
func NewChatModels(ctx context.Context, config ChatModelConfig) (*ChatModels, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	classifier, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       config.Classifier.Model,
		Temperature: &config.Classifier.Temperature,
		MaxTokens:   &config.Classifier.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating classifier model")
		return nil, fmt.Errorf("error creating classifier model: %w", err)
	}

	reformulator, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       config.Reformulator.Model,
		Temperature: &config.Reformulator.Temperature,
		MaxTokens:   &config.Reformulator.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating reformulator model")
		return nil, fmt.Errorf("error creating reformulator model: %w", err)
	}

	response, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       config.Response.Model,
		Temperature: &config.Response.Temperature,
		MaxTokens:   &config.Response.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating response model")
		return nil, fmt.Errorf("error creating response model: %w", err)
	}

	return &ChatModels{
		Classifier:   classifier,
		Reformulator: reformulator,
		Response:     response,
	}, nil
}
