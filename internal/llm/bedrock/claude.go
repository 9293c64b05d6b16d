package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/llm"
)

const anthropicVersion = "bedrock-2023-05-31"

type messagesRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	System           string    `json:"system,omitempty"`
	MaxTokens        int       `json:"max_tokens"`
	Temperature      float64   `json:"temperature"`
	StopSequences    []string  `json:"stop_sequences,omitempty"`
	Messages         []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	body, err := json.Marshal(messagesRequest{
		AnthropicVersion: anthropicVersion,
		System:           request.System,
		MaxTokens:        request.MaxTokens,
		Temperature:      request.Temperature,
		StopSequences:    request.StopSequences,
		Messages:         []message{{Role: "user", Content: request.Prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode claude request: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.ModelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", c.ModelID, err)
	}

	return parseResponse(output.Body)
}

// parseResponse joins every text block; tool and thinking blocks are skipped.
func parseResponse(body []byte) (*llm.LLMResponse, error) {
	var response messagesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode claude response: %w", err)
	}

	var sb strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return &llm.LLMResponse{
		Content:    sb.String(),
		StopReason: response.StopReason,
	}, nil
}

func (c *Client) InvokeModelWithRetry(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	var lastErr error

	for attempt := range c.MaxRetries {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(calculateBackoff(attempt-1, c.InitialDelay, c.MaxDelay)):
			}
		}

		response, err := c.InvokeModel(ctx, request)
		if err == nil {
			return response, nil
		}
		if !isRetryableError(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("giving up after %d attempts: %w", c.MaxRetries, lastErr)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var (
		throttled   *types.ThrottlingException
		unavailable *types.ServiceUnavailableException
		internal    *types.InternalServerException
		notReady    *types.ModelNotReadyException
		modelTimout *types.ModelTimeoutException
	)
	if errors.As(err, &throttled) || errors.As(err, &unavailable) || errors.As(err, &internal) ||
		errors.As(err, &notReady) || errors.As(err, &modelTimout) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, net.ErrClosed) || strings.Contains(err.Error(), "connection reset")
}

func calculateBackoff(attempt int, initialDelay, maxDelay time.Duration) time.Duration {
	backoff := math.Min(float64(initialDelay)*math.Pow(2, float64(attempt)), float64(maxDelay))

	// +/- 20% jitter
	backoff += backoff * 0.2 * (2*rand.Float64() - 1)

	return time.Duration(backoff)
}
