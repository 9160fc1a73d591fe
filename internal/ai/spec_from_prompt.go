package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"pagespec_server/internal/ai/prompts"
	"pagespec_server/internal/spec"
	"pagespec_server/internal/utils"
)

// wrappedKeys are the object keys models tend to nest the document under.
var wrappedKeys = []string{"spec", "page", "result", "data"}

// SpecFromPrompt asks the model for a specification and validates it. A
// retryable API failure is retried once.
func (g *Generator) SpecFromPrompt(ctx context.Context, userPrompt string) (*spec.PageSpec, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompts.GetPageSpecPrompt(userPrompt)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens:   2048,
		Temperature: 0.3,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil && utils.ShouldRetry(err) {
		g.log.WithFields(map[string]any{"model": g.model}).Error(err, "openai call failed, retrying once")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(g.retryDelay):
		}
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		g.log.WithFields(map[string]any{"usage": resp.Usage}).Warn("openai returned empty response")
		return nil, errors.New("openai returned empty response")
	}

	page, err := ParseSpecOutput(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	g.log.WithFields(map[string]any{"model": g.model, "title": page.Title}).Debug("parsed llm spec")
	return page, nil
}

// ParseSpecOutput cleans code fences from model output and parses the
// specification, either at the top level or under one of the wrapped keys.
// The top-level validation error is returned when nothing parses.
func ParseSpecOutput(raw string) (*spec.PageSpec, error) {
	cleaned := cleanOutput(raw)

	page, err := spec.Parse([]byte(cleaned))
	if err == nil {
		return page, nil
	}

	var wrapper map[string]json.RawMessage
	if json.Unmarshal([]byte(cleaned), &wrapper) == nil {
		for _, key := range wrappedKeys {
			inner, ok := wrapper[key]
			if !ok {
				continue
			}
			if page, innerErr := spec.Parse(inner); innerErr == nil {
				return page, nil
			}
		}
	}
	return nil, err
}

func cleanOutput(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
