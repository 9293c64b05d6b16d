package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/search"
)

// SearchImagesInput is the MCP tool input schema (matches HTTP API field names).
type SearchImagesInput struct {
	Query             string   `json:"query" jsonschema:"free-text description of the sticker or meme"`
	NResults          *int     `json:"n_results,omitempty" jsonschema:"number of results (default: 5)"`
	ResourcePackUUIDs []string `json:"resource_pack_uuids,omitempty" jsonschema:"restrict the search to these resource packs"`
	AISearch          bool     `json:"ai_search,omitempty" jsonschema:"rewrite the query with an LLM before searching"`
}

type SearchImagesOutput struct {
	Results []string `json:"results"`
}

type Searcher interface {
	Search(ctx context.Context, req search.Request) ([]string, error)
}

// NewSearchImagesHandler returns a tool handler backed by searcher.
// Pass the returned function to mcp.AddTool.
func NewSearchImagesHandler(searcher Searcher) func(context.Context, *mcp.CallToolRequest, SearchImagesInput) (*mcp.CallToolResult, SearchImagesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchImagesInput) (*mcp.CallToolResult, SearchImagesOutput, error) {
		return SearchImages(ctx, searcher, input)
	}
}

func SearchImages(ctx context.Context, searcher Searcher, input SearchImagesInput) (*mcp.CallToolResult, SearchImagesOutput, error) {
	nResults := search.DefaultNResults
	if input.NResults != nil {
		nResults = *input.NResults
	}

	packs := input.ResourcePackUUIDs
	if packs == nil {
		packs = []string{}
	}

	req := search.Request{
		Query:             input.Query,
		NResults:          nResults,
		ResourcePackUUIDs: packs,
		AISearch:          input.AISearch,
	}
	if err := req.Validate(); err != nil {
		return nil, SearchImagesOutput{}, err
	}

	results, err := searcher.Search(ctx, req)
	if err != nil {
		return nil, SearchImagesOutput{}, err
	}

	return nil, SearchImagesOutput{Results: results}, nil
}
