package llm

// LLMRequest carries the caller's text in Prompt and any fixed instructions in
// System, so user input never mixes with instructions.
type LLMRequest struct {
	System        string
	Prompt        string
	MaxTokens     int
	Temperature   float64
	StopSequences []string
}

type LLMResponse struct {
	Content    string
	StopReason string
}
