package gpt

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/llm"
)

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	output, err := c.Client.Chat.Completions.New(ctx, buildParams(c.ModelID, request))
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", c.ModelID, err)
	}

	if len(output.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	choice := output.Choices[0]
	return &llm.LLMResponse{
		Content:    choice.Message.Content,
		StopReason: string(choice.FinishReason),
	}, nil
}

// InvokeModelWithRetry relies on the SDK's own retry policy (option.WithMaxRetries).
func (c *Client) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	return c.InvokeModel(ctx, request)
}

func buildParams(model string, request llm.LLMRequest) openai.ChatCompletionNewParams {
	var messages []openai.ChatCompletionMessageParamUnion
	if request.System != "" {
		messages = append(messages, openai.SystemMessage(request.System))
	}
	messages = append(messages, openai.UserMessage(request.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    messages,
		Temperature: openai.Float(request.Temperature),
	}
	if request.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(request.MaxTokens))
	}
	if len(request.StopSequences) > 0 {
		params.Stop = openai.ChatCompletionNewParamsStopUnion{OfStringArray: request.StopSequences}
	}
	return params
}
