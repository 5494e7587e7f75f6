package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"arch_ai_server/internal/utils"
)

// ErrUpstreamCall marks a failed or empty reply from the model capability.
// Flows surface it immediately; no retries are attempted here, callers own
// any retry or timeout policy around a flow invocation.
var ErrUpstreamCall = errors.New("model call failed")

// ErrInvalidInput marks a flow input that fails its declared schema.
var ErrInvalidInput = errors.New("invalid flow input")

// ModelClient is the external generative capability: structured text from a
// prompt, or an image from a prompt. Both are opaque remote calls.
type ModelClient interface {
	GenerateStructured(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

const structuredSystemPrompt = "You are a helpful AI assistant that replies with structured JSON exactly matching the schema given in the user's instructions."

type openAIModelClient struct {
	client     *openai.Client
	textModel  string
	imageModel string
}

// NewOpenAIModelClient builds the production ModelClient on top of the
// OpenAI API.
func NewOpenAIModelClient(apiKey, textModel, imageModel string) ModelClient {
	return &openAIModelClient{
		client:     openai.NewClient(apiKey),
		textModel:  textModel,
		imageModel: imageModel,
	}
}

func (c *openAIModelClient) GenerateStructured(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.textModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: structuredSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: 0.7,
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %v", ErrUpstreamCall, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty chat completion reply", ErrUpstreamCall)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *openAIModelClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateImage(
		ctx,
		openai.ImageRequest{
			Model:          c.imageModel,
			Prompt:         prompt,
			N:              1,
			Size:           openai.CreateImageSize1024x1024,
			ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: image generation: %v", ErrUpstreamCall, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", fmt.Errorf("%w: empty image reply", ErrUpstreamCall)
	}
	return utils.DataURI("image/png", resp.Data[0].B64JSON), nil
}

// Generator runs the prompt-driven flows. It holds no cross-call state;
// every invocation is independent and safe to run concurrently with any
// other.
type Generator struct {
	model  ModelClient
	logger zerolog.Logger
}

func NewGenerator(model ModelClient, logger zerolog.Logger) *Generator {
	return &Generator{
		model:  model,
		logger: logger.With().Str("component", "generator").Logger(),
	}
}
