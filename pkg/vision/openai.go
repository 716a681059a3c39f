package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIExtractor implements Extractor using OpenAI's official Go SDK. It
// works against any OpenAI-compatible endpoint, including local models.
type OpenAIExtractor struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewOpenAIExtractor creates a new extractor instance using the OpenAI client.
func NewOpenAIExtractor(apiKey string, model string) *OpenAIExtractor {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIExtractor{
		client: &client,
		apiKey: apiKey,
		model:  model,
	}
}

func (o *OpenAIExtractor) ChangeBaseURL(baseURL string) {
	client := openai.NewClient(
		option.WithAPIKey(o.apiKey),
		option.WithBaseURL(baseURL),
	)
	o.client = &client
}

func (o *OpenAIExtractor) SetModel(model string) {
	o.model = model
}

// Extract sends the image as a base64 data URL alongside the fixed
// instruction prompt, asking for the strict Result schema back.
func (o *OpenAIExtractor) Extract(ctx context.Context, image []byte, mimeType string) (*Result, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	params := openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Role: "user",
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfArrayOfContentParts: []openai.ChatCompletionContentPartUnionParam{
							{
								OfImageURL: &openai.ChatCompletionContentPartImageParam{
									ImageURL: openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL},
								},
							},
							{
								OfText: &openai.ChatCompletionContentPartTextParam{Text: extractionPrompt},
							},
						},
					},
				},
			},
		},
		MaxCompletionTokens: openai.Int(1024),
		Temperature:         openai.Float(0),
		ResponseFormat:      resultResponseFormat(),
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai extraction error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no choices returned")
	}

	return parseResult(resp.Choices[0].Message.Content)
}

func resultResponseFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	p := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "visual_signals",
		Description: openai.String("Visual triage signals extracted from a stray animal photo"),
		Schema:      ResultSchema,
		Strict:      openai.Bool(true),
	}
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: p},
	}
}
