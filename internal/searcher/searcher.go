package searcher

import "context"

// Searcher runs a generative web search for a prompt and returns the response
// text. An empty response with a nil error means the call succeeded but
// produced no usable text content.
type Searcher interface {
	Search(ctx context.Context, prompt string) (string, error)
	Name() string
}

// MockSearcher returns controllable fixed data for development and testing.
type MockSearcher struct {
	Response string
	Err      error
	// Calls counts Search invocations, for retry assertions.
	Calls   int
	Prompts []string
}

func (m *MockSearcher) Name() string { return "mock" }

func (m *MockSearcher) Search(_ context.Context, prompt string) (string, error) {
	m.Calls++
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
