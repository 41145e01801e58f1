package errx

import (
	"errors"
	"net/http"

	"google.golang.org/genai"
)

// WrapLLM maps upstream LLM provider errors to the unified Error type.
// Rate-limit errors become a service-unavailable category while auth and
// permission errors become a misconfiguration category, so callers can tell
// "try again later" apart from "fix your deployment". Errors are never
// retried here.
func WrapLLM(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return New(err, http.StatusServiceUnavailable, LLMUnavailableMessage)
		case http.StatusUnauthorized, http.StatusForbidden:
			return New(err, http.StatusInternalServerError, LLMMisconfiguredMessage)
		}
	}

	return New(err, http.StatusBadGateway, LLMUnavailableMessage)
}
