package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/vvquest-api/internal/engine"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/postprocess"
	"github.com/rs/zerolog"
)

const DefaultNResults = 5

var (
	ErrEmptyQuery      = errors.New("query must not be empty")
	ErrInvalidNResults = errors.New("n_results must be at least 1")
)

type Request struct {
	Query             string
	NResults          int
	ResourcePackUUIDs []string
	AISearch          bool
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return ErrEmptyQuery
	}
	if r.NResults < 1 {
		return ErrInvalidNResults
	}
	return nil
}

type CredentialSource interface {
	Snapshot() engine.Credentials
}

type QueryRewriter interface {
	RewriteQuery(ctx context.Context, query string) (string, error)
}

// Service runs a query through the engine and shapes the hits for clients.
type Service struct {
	engine    engine.Engine
	settings  CredentialSource
	processor *postprocess.Processor
	rewriter  QueryRewriter
	logger    *zerolog.Logger
}

// NewService accepts a nil rewriter; ai_search requests are then forwarded as-is.
func NewService(
	eng engine.Engine,
	settings CredentialSource,
	processor *postprocess.Processor,
	rewriter QueryRewriter,
	logger *zerolog.Logger,
) *Service {
	return &Service{
		engine:    eng,
		settings:  settings,
		processor: processor,
		rewriter:  rewriter,
		logger:    logger,
	}
}

func (s *Service) Search(ctx context.Context, req Request) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := req.Query
	if req.AISearch && s.rewriter != nil {
		rewritten, err := s.rewriter.RewriteQuery(ctx, query)
		if err == nil && rewritten != "" {
			query = rewritten
		}
	}

	packs := req.ResourcePackUUIDs
	if packs == nil {
		packs = []string{}
	}

	params := engine.SearchParams{
		Query:             query,
		NResults:          req.NResults,
		ResourcePackUUIDs: packs,
		UseLLM:            req.AISearch,
		ReturnType:        s.processor.ReturnHint(),
		Credentials:       s.settings.Snapshot(),
	}

	hits, err := s.engine.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	results, err := s.processor.Process(hits)
	if err != nil {
		return nil, fmt.Errorf("failed to process search results: %w", err)
	}

	s.logger.Debug().
		Str("query", query).
		Int("n_results", req.NResults).
		Int("hits", len(results)).
		Bool("ai_search", req.AISearch).
		Msg("Search complete")

	return results, nil
}
