package analyses

import (
	"context"
	"sync"

	"syllabus-analyzer/internal/llm"
)

const geneticsReply = `[{"topic":"Genetics","intendedLearningOutcome":"Apply Mendelian genetics","questionNumber":"3","bloomsLevel":"Applying","suggestedItemPlacement":"Keep as is","suggestedTOS_TableRow":"Genetics: Applying principles"}]`

type fakeProvider struct {
	mu         sync.Mutex
	configured bool
	reply      string
	err        error
	calls      int
	requests   []llm.Request
}

func (f *fakeProvider) Configured() bool {
	return f.configured
}

func (f *fakeProvider) Generate(ctx context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.requests = append(f.requests, req)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.reply, f.err
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
