package engine

import (
	"context"
	"encoding/json"
	"fmt"
)

// ReturnHint tells the engine whether hits must carry a content hash.
type ReturnHint string

const (
	ReturnHintDefault ReturnHint = "default"
	ReturnHintHash    ReturnHint = "hash"
)

//go:generate mockgen -destination=mocks/mock_engine.go -package=mocks . Engine

// Engine is the image-similarity search service the API sits in front of.
type Engine interface {
	Search(ctx context.Context, params SearchParams) ([]Hit, error)
	HasCache(ctx context.Context) (bool, error)
	GenerateCache(ctx context.Context, creds Credentials) error
}

type SearchParams struct {
	Query             string      `json:"query"`
	NResults          int         `json:"n_results"`
	ResourcePackUUIDs []string    `json:"resource_pack_uuids"`
	UseLLM            bool        `json:"use_llm"`
	ReturnType        ReturnHint  `json:"return_type"`
	Credentials       Credentials `json:"credentials"`
}

// Credentials are the embedding-service settings forwarded with every engine call.
type Credentials struct {
	Model   string `json:"model"`
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url"`
}

// Hit is one raw search result. Hash is only set when the engine was asked
// for ReturnHintHash.
type Hit struct {
	Path string
	Hash string
}

// UnmarshalJSON accepts either a plain path string or a [path, hash] pair.
func (h *Hit) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		*h = Hit{Path: path}
		return nil
	}

	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("hit must be a string or [path, hash] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("hit pair must have 2 elements, got %d", len(pair))
	}

	*h = Hit{Path: pair[0], Hash: pair[1]}
	return nil
}

func (h Hit) MarshalJSON() ([]byte, error) {
	if h.Hash == "" {
		return json.Marshal(h.Path)
	}
	return json.Marshal([]string{h.Path, h.Hash})
}
