package api

import (
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/search"
)

type SearchRequestEnhanced struct {
	Query             string   `json:"query" description:"Free-text image query"`
	NResults          int      `json:"n_results" description:"Number of results (default: 5)"`
	ResourcePackUUIDs []string `json:"resource_pack_uuids" description:"Restrict search to these resource packs"`
	AISearch          bool     `json:"ai_search" description:"Use the LLM-assisted search path"`
}

func newSearchRequest() SearchRequestEnhanced {
	return SearchRequestEnhanced{
		NResults:          search.DefaultNResults,
		ResourcePackUUIDs: []string{},
	}
}

// SetDefaults fills what an explicit JSON null can leave empty.
func (r *SearchRequestEnhanced) SetDefaults() {
	if r.ResourcePackUUIDs == nil {
		r.ResourcePackUUIDs = []string{}
	}
}

func (r *SearchRequestEnhanced) Validate() error {
	return r.toSearch().Validate()
}

func (r *SearchRequestEnhanced) toSearch() search.Request {
	return search.Request{
		Query:             r.Query,
		NResults:          r.NResults,
		ResourcePackUUIDs: r.ResourcePackUUIDs,
		AISearch:          r.AISearch,
	}
}

type SearchResponse struct {
	Results []string `json:"results"`
}

// ConfigUpdate fields are optional; nil or empty leaves the value untouched.
type ConfigUpdate struct {
	APIKey  *string `json:"api_key,omitempty"`
	BaseURL *string `json:"base_url,omitempty"`
}

type ConfigResponse struct {
	Model   string `json:"model"`
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
