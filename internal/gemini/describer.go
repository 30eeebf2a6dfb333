package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Describer generates marketing copy for new listings via the Gemini API.
// One-shot call, no retries; callers degrade to a fixed fallback on error.
type Describer struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey, model string) (*Describer, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Describer{client: client, model: model}, nil
}

func (d *Describer) Describe(ctx context.Context, title, propertyType, features string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(`Write a sophisticated, high-end real estate description for a property with these details:
Title: %s, Type: %s, Key Features: %s.
Make it sound exclusive and luxurious for Wealth Estate clients. Keep it under 150 words.`,
		title, propertyType, features)

	res, err := d.client.Models.GenerateContent(ctx, d.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.7)},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	return res.Text(), nil
}

// Disabled is the describer used when no API key is configured; every call
// fails so the upload workflow falls back to the manual-description notice.
type Disabled struct{}

func (Disabled) Describe(context.Context, string, string, string) (string, error) {
	return "", errors.New("description generation is not configured")
}
