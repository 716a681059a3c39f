package vision

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiExtractor implements Extractor on top of the Gemini API.
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor creates a new extractor instance using the Gemini client.
func NewGeminiExtractor(apiKey string, model string) (*GeminiExtractor, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiExtractor{
		client: client,
		model:  model,
	}, nil
}

// Extract sends the image and the fixed instruction prompt to Gemini and
// parses the JSON estimate out of the reply.
func (g *GeminiExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*Result, error) {
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(image, mimeType),
		genai.NewPartFromText(extractionPrompt),
	}, genai.RoleUser)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		MaxOutputTokens:  1024,
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{content}, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return parseResult(result.Text())
}
