// Package llm wraps the hosted text-generation service used to turn a
// candidate recipe list into a meal plan.
package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-pro-latest"

// TextGenerator is the generation surface consumed by the planner.
// Implementations return the raw generated text or an error; callers
// treat any error as a single failure signal without retrying.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini-backed text generator. An empty
// modelName selects DefaultModel.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (TextGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	return &geminiClient{client: client, model: client.GenerativeModel(modelName)}, nil
}

func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}
	return string(text), nil
}

func (c *geminiClient) Close() error {
	return c.client.Close()
}
