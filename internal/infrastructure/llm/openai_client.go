package llm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"invoice_intake/internal/usecase/interfaces"
	"log"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultModel     = "gpt-4o"
	defaultMaxTokens = 800
	defaultTimeout   = 30 * time.Second
)

var (
	ErrMissingOpenAIKey = errors.New("missing OPENAI_API_KEY")
	ErrEmptyCompletion  = errors.New("empty completion")
)

// OpenAIClient implements the text-understanding port on the Chat
// Completions API.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

var _ interfaces.ITextUnderstanding = (*OpenAIClient)(nil)

// NewOpenAIClientFromEnv reads OPENAI_API_KEY, OPENAI_MODEL and the optional
// OPENAI_BASE_URL. A missing key is reported so the caller can warn and run
// without extraction.
func NewOpenAIClientFromEnv() (*OpenAIClient, error) {
	key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if key == "" {
		log.Printf("[intake][llm] missing OPENAI_API_KEY")
		return nil, ErrMissingOpenAIKey
	}
	cfg := openai.DefaultConfig(key)
	if base := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); base != "" {
		cfg.BaseURL = base
	}
	model := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if model == "" {
		model = defaultModel
	}
	log.Printf("[intake][llm] OpenAI client initialized model=%s", model)
	return NewOpenAIClient(openai.NewClientWithConfig(cfg), model), nil
}

func NewOpenAIClient(client *openai.Client, model string) *OpenAIClient {
	if model == "" {
		model = defaultModel
	}
	return &OpenAIClient{client: client, model: model, maxTokens: defaultMaxTokens, timeout: defaultTimeout}
}

// ExtractText sends the image inline as a low-detail data URL.
func (c *OpenAIClient) ExtractText(ctx context.Context, image []byte, contentType string, instruction string) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(image))
	req := openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: instruction},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailLow,
						},
					},
				},
			},
		},
	}
	return c.complete(ctx, req)
}

func (c *OpenAIClient) CompleteJSON(ctx context.Context, system string, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	}
	return c.complete(ctx, req)
}

func (c *OpenAIClient) complete(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("[intake][llm] completion failed model=%s err=%v", c.model, err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	log.Printf("[intake][llm] completion success model=%s chars=%d", c.model, len(content))
	return content, nil
}
