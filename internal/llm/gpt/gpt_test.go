package gpt

import (
	"testing"

	"github.com/povarna/generative-ai-agents/vvquest-api/internal/llm"
)

func TestNewClient_RequiresKeyAndModel(t *testing.T) {
	if _, err := NewClient("", "", "gpt-4o-mini"); err == nil {
		t.Error("Expected error without api key")
	}
	if _, err := NewClient("sk-test", "", ""); err == nil {
		t.Error("Expected error without model")
	}

	client, err := NewClient("sk-test", "https://llm.internal/v1", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	if client.ModelID != "gpt-4o-mini" {
		t.Errorf("Unexpected model %q", client.ModelID)
	}
}

func TestBuildParams_Messages(t *testing.T) {
	withSystem := buildParams("m", llm.LLMRequest{System: "rewrite", Prompt: "cat", MaxTokens: 50})
	if len(withSystem.Messages) != 2 {
		t.Errorf("Expected system and user messages, got %d", len(withSystem.Messages))
	}

	userOnly := buildParams("m", llm.LLMRequest{Prompt: "cat"})
	if len(userOnly.Messages) != 1 {
		t.Errorf("Expected only the user message, got %d", len(userOnly.Messages))
	}
}

func TestBuildParams_StopSequences(t *testing.T) {
	params := buildParams("m", llm.LLMRequest{Prompt: "cat", StopSequences: []string{"\n\n"}})
	if got := params.Stop.OfStringArray; len(got) != 1 || got[0] != "\n\n" {
		t.Errorf("Expected stop sequences to be forwarded, got %q", got)
	}

	none := buildParams("m", llm.LLMRequest{Prompt: "cat"})
	if none.Stop.OfStringArray != nil {
		t.Errorf("Expected no stop sequences, got %q", none.Stop.OfStringArray)
	}
}
