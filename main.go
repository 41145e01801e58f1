package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/llm"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/search"
	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/state"
	logx "github.com/IbalArrasyid/E-Commerce-Agent/pkg/logger"
	pkgredis "github.com/IbalArrasyid/E-Commerce-Agent/pkg/redis"
)

// AppConfig defines all configurable parameters for the demo, sourced from
// environment variables (loaded from .env for local runs).
type AppConfig struct {
	// Infrastructure. Leave REDIS_URL empty to run on the in-memory store.
	Redis pkgredis.Config

	// LLM provider. Leave GEMINI_API_KEY empty to run fully deterministic.
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Agent configs
	Classifier   model.ClassifierModelConfig
	Reformulator model.ReformulatorModelConfig
	Response     model.ResponseModelConfig
	Prompt       model.PromptConfig
	Conversation model.ConversationConfig
}

func main() {
	logx.Init()
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	ttl, err := time.ParseDuration(envCfg.Conversation.TTL)
	if err != nil {
		log.Fatalf("Invalid CONVERSATION_TTL '%s': %v", envCfg.Conversation.TTL, err)
	}

	var repo model.StateRepository
	if envCfg.Redis.URL != "" {
		rdb, err := envCfg.Redis.New()
		if err != nil {
			log.Fatalf("Failed to initialise Redis client: %v", err)
		}
		defer rdb.Close()
		repo = state.NewRedisRepository(rdb, ttl)
		fmt.Println("Connected to Redis successfully")
	} else {
		repo = state.NewMemoryRepository()
		fmt.Println("REDIS_URL not set; using in-memory state store")
	}

	opts := agent.Options{
		ReformulateTimeout: envCfg.Reformulator.Timeout,
		Prompt:             envCfg.Prompt,
	}
	if envCfg.APIKey != "" {
		models, err := llm.NewChatModels(ctx, llm.ChatModelConfig{
			APIKey:       envCfg.APIKey,
			BaseURL:      envCfg.BaseURL,
			Classifier:   &envCfg.Classifier,
			Reformulator: &envCfg.Reformulator,
			Response:     &envCfg.Response,
		})
		if err != nil {
			log.Fatalf("Failed to build chat models: %v", err)
		}
		opts.Classifier = llm.NewGeminiClassifier(models.Classifier, envCfg.Classifier)
		opts.Reformulator = llm.NewGeminiReformulator(models.Reformulator, envCfg.Reformulator)
		opts.Generator = llm.NewGeminiResponseGenerator(models.Response, envCfg.Response, envCfg.Prompt)
	} else {
		fmt.Println("GEMINI_API_KEY not set; running on deterministic rules only")
	}

	ag := agent.New(state.NewStore(repo), search.NewMemorySearch(nil), opts)

	turns := []struct {
		description string
		message     string
	}{
		{"Greeting", "halo"},
		{"Start a search", "cari sofa"},
		{"Refine with a color", "putih"},
		{"Switch category", "ada meja kayu"},
		{"Affirmative follow-up", "iya"},
		{"Clear filters", "hapus filter"},
	}

	threadID := uuid.NewString()
	fmt.Printf("Thread: %s\n", threadID)

	for i, turn := range turns {
		fmt.Printf("\nTurn %d: %s\n", i+1, turn.description)
		fmt.Printf("User: %q\n", turn.message)

		reply, err := ag.ProcessMessage(ctx, threadID, turn.message)
		if err != nil {
			log.Fatalf("Failed to process turn %d: %v", i+1, err)
		}

		fmt.Printf("Agent: %s\n", reply.Intro)
		for _, p := range reply.Products {
			fmt.Printf("  - %s (%s) Rp%.0f\n", p.Name, p.Category, p.Price)
		}
		fmt.Printf("Agent: %s\n", reply.FollowUp)
		fmt.Printf("meta: intent=%s lang=%s products=%d searchType=%s\n",
			reply.Meta.Intent, reply.Meta.DetectedLanguage, reply.Meta.ProductCount, reply.Meta.SearchType)
	}

	fmt.Println("\nConversation completed")
}
