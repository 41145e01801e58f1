package model

import "time"

// ================ Config ================

type ConversationConfig struct {
	TTL string `envconfig:"CONVERSATION_TTL" default:"15m"`
}

type ClassifierModelConfig struct {
	Model       string        `envconfig:"CLASSIFIER_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int           `envconfig:"CLASSIFIER_MAX_TOKENS" default:"1000"`
	Temperature float32       `envconfig:"CLASSIFIER_TEMPERATURE" default:"0.1"`
	Timeout     time.Duration `envconfig:"CLASSIFIER_TIMEOUT" default:"6s"`
}

type ReformulatorModelConfig struct {
	Model       string        `envconfig:"REFORMULATOR_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int           `envconfig:"REFORMULATOR_MAX_TOKENS" default:"500"`
	Temperature float32       `envconfig:"REFORMULATOR_TEMPERATURE" default:"0.1"`
	Timeout     time.Duration `envconfig:"REFORMULATOR_TIMEOUT" default:"5s"`
}

type ResponseModelConfig struct {
	Model       string        `envconfig:"RESPONSE_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int           `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32       `envconfig:"RESPONSE_TEMPERATURE" default:"0.4"`
	Timeout     time.Duration `envconfig:"RESPONSE_TIMEOUT" default:"10s"`
}

type PromptConfig struct {
	StoreName string `envconfig:"PROMPT_STORE_NAME" default:"Griya Kayu"`
	StoreType string `envconfig:"PROMPT_STORE_TYPE" default:"furniture store"`
}
