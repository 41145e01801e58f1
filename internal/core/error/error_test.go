package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestErrorUnwrapAndAs(t *testing.T) {
	base := errors.New("boom")
	err := New(base, http.StatusBadGateway, SystemErrorMessage)

	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "boom")

	var ex *Error
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &ex))
	assert.Equal(t, http.StatusBadGateway, ex.Status)
}

func TestWrapRedis(t *testing.T) {
	assert.Nil(t, WrapRedis(nil))

	err := WrapRedis(redis.Nil)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, RedisNotFoundMessage, err.Message)

	err = WrapRedis(errors.New("connection refused"))
	assert.Equal(t, http.StatusBadGateway, err.Status)
	assert.Equal(t, RedisErrorMessage, err.Message)
}

func TestWrapLLM(t *testing.T) {
	assert.Nil(t, WrapLLM(nil))

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "rate limit maps to unavailable",
			err:         genai.APIError{Code: http.StatusTooManyRequests, Message: "quota exceeded"},
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: LLMUnavailableMessage,
		},
		{
			name:        "auth maps to misconfigured",
			err:         genai.APIError{Code: http.StatusUnauthorized, Message: "bad key"},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: LLMMisconfiguredMessage,
		},
		{
			name:        "forbidden maps to misconfigured",
			err:         genai.APIError{Code: http.StatusForbidden, Message: "no access"},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: LLMMisconfiguredMessage,
		},
		{
			name:        "other api errors map to bad gateway",
			err:         genai.APIError{Code: http.StatusInternalServerError, Message: "upstream"},
			wantStatus:  http.StatusBadGateway,
			wantMessage: LLMUnavailableMessage,
		},
		{
			name:        "plain errors map to bad gateway",
			err:         errors.New("deadline exceeded"),
			wantStatus:  http.StatusBadGateway,
			wantMessage: LLMUnavailableMessage,
		},
		{
			name:        "wrapped api error still detected",
			err:         fmt.Errorf("call failed: %w", genai.APIError{Code: http.StatusTooManyRequests}),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: LLMUnavailableMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapLLM(tt.err)
			require.NotNil(t, err)
			assert.Equal(t, tt.wantStatus, err.Status)
			assert.Equal(t, tt.wantMessage, err.Message)
		})
	}
}
