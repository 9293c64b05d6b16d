package rewrite

import (
	"context"
	"strings"

	"github.com/povarna/generative-ai-agents/vvquest-api/internal/llm"
	"github.com/rs/zerolog"
)

const maxRewriteLength = 500

type Rewriter struct {
	client llm.LLMClient
	logger *zerolog.Logger
}

func NewRewriter(client llm.LLMClient, logger *zerolog.Logger) *Rewriter {
	return &Rewriter{
		client: client,
		logger: logger,
	}
}

const systemPrompt = `You help users find sticker and meme images by text.
Rewrite the user's query as a short visual description of the image they want:
1. Describe what is visible (characters, expression, action, text on the image)
2. Keep the user's language
3. Drop filler words and typos
Return ONLY the rewritten query on a single line, nothing else.`

// RewriteQuery turns a free-form request into a short visual description that
// embeds well. Any failure falls back to the original query.
func (r *Rewriter) RewriteQuery(ctx context.Context, originalQuery string) (string, error) {
	response, err := r.client.InvokeModelWithRetry(ctx, llm.LLMRequest{
		System:        systemPrompt,
		Prompt:        originalQuery,
		MaxTokens:     200,
		Temperature:   0.2,
		StopSequences: []string{"\n\n"},
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to rewrite query")
		return originalQuery, nil
	}

	rewritten := strings.Trim(strings.TrimSpace(response.Content), `"`)
	if rewritten == "" || len(rewritten) > maxRewriteLength {
		r.logger.Warn().Int("length", len(rewritten)).Msg("Discarding rewritten query")
		return originalQuery, nil
	}

	r.logger.Debug().
		Str("original", originalQuery).
		Str("rewritten", rewritten).
		Msg("Query rewritten")

	return rewritten, nil
}
