package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const openAIRequestTimeout = 60 * time.Second

// OpenAIClient condenses over-long comment texts before scoring. Optional:
// a nil client means long texts are truncated instead of summarized.
type OpenAIClient struct {
	Client *openai.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{Timeout: openAIRequestTimeout}

	return &OpenAIClient{Client: openai.NewClientWithConfig(config)}
}

func (oc *OpenAIClient) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := oc.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Summarize the following social media comment in at most two sentences, preserving its tone and sentiment.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("[OpenAIClient] Summarization failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("[OpenAIClient] Empty completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
