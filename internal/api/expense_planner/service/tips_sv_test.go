package plannerService

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ExpensePlannerGolang/internal/entity"
	"ExpensePlannerGolang/pkg/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xcontext "golang.org/x/net/context"
)

func TestFetchBudgetTips_SanitizesModelOutput(t *testing.T) {
	gm := &stubGemini{text: "1. **Save more**\n2. *Invest wisely*"}
	svc := newTestService(nil, gm)

	tips := svc.FetchBudgetTips(context.Background())
	assert.Equal(t, []string{"Save more", "Invest wisely"}, tips)

	stored, isLoading := svc.BudgetTips()
	assert.Equal(t, tips, stored)
	assert.False(t, isLoading)
}

func TestFetchBudgetTips_PromptCarriesSnapshot(t *testing.T) {
	repo := newFakeRepository()
	repo.ledger.entries = []entity.LedgerEntry{
		income(1000),
		expense("Food", 300),
		expense("Transport", 100),
	}
	gm := &stubGemini{text: "Spend less on food"}
	svc := newTestService(repo, gm)

	svc.FetchBudgetTips(context.Background())

	require.Len(t, gm.prompts, 1)
	assert.Contains(t, gm.prompts[0], "- Total Income: $1000")
	assert.Contains(t, gm.prompts[0], "Food: 75%")
}

func TestFetchBudgetTips_ErrorsBecomeDisplayStrings(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "api error payload",
			err:      &gemini.APIError{Message: "quota exceeded"},
			expected: "Error: API error - quota exceeded",
		},
		{
			name:     "http status",
			err:      &gemini.StatusError{Code: 429},
			expected: "Error: HTTP 429",
		},
		{
			name:     "no data",
			err:      gemini.ErrNoData,
			expected: "Error: No data received from API",
		},
		{
			name:     "no candidates",
			err:      gemini.ErrNoCandidates,
			expected: "Error: No candidates found in response",
		},
		{
			name:     "no parts",
			err:      gemini.ErrNoParts,
			expected: "Error: No tips found in response",
		},
		{
			name:     "decode failure",
			err:      &gemini.DecodeError{Err: errors.New("unexpected token")},
			expected: "Error: Failed to parse response - unexpected token",
		},
		{
			name:     "transport failure",
			err:      errors.New("dial tcp: connection refused"),
			expected: "Error: Network error - dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(nil, &stubGemini{err: tt.err})

			tips := svc.FetchBudgetTips(context.Background())
			assert.Equal(t, []string{tt.expected}, tips)
		})
	}
}

// blockingGemini hands each call a channel so the test decides when and with
// what text a fetch completes.
type blockingGemini struct {
	mu    sync.Mutex
	calls []chan string
	ready chan struct{}
}

func (g *blockingGemini) GenerateText(_ xcontext.Context, _ string) (string, error) {
	ch := make(chan string)
	g.mu.Lock()
	g.calls = append(g.calls, ch)
	g.mu.Unlock()
	g.ready <- struct{}{}
	return <-ch, nil
}

func TestFetchBudgetTips_StaleFetchDoesNotOverwriteNewerResult(t *testing.T) {
	gm := &blockingGemini{ready: make(chan struct{})}
	svc := NewPlannerService(testLogger(), newFakeRepository(), gm).(*plannerService)

	var wg sync.WaitGroup
	var first, second []string

	wg.Add(1)
	go func() {
		defer wg.Done()
		first = svc.FetchBudgetTips(context.Background())
	}()
	<-gm.ready

	wg.Add(1)
	go func() {
		defer wg.Done()
		second = svc.FetchBudgetTips(context.Background())
	}()
	<-gm.ready

	// the newer fetch finishes first, then the older one straggles in
	gm.calls[1] <- "Fresh tip"
	gm.calls[0] <- "Stale tip"
	wg.Wait()

	assert.Equal(t, []string{"Stale tip"}, first)
	assert.Equal(t, []string{"Fresh tip"}, second)

	stored, isLoading := svc.BudgetTips()
	assert.Equal(t, []string{"Fresh tip"}, stored)
	assert.False(t, isLoading)
}

func TestFetchBudgetTips_LoadingFlagVisibleDuringFetch(t *testing.T) {
	gm := &blockingGemini{ready: make(chan struct{})}
	svc := NewPlannerService(testLogger(), newFakeRepository(), gm).(*plannerService)

	done := make(chan struct{})
	go func() {
		svc.FetchBudgetTips(context.Background())
		close(done)
	}()
	<-gm.ready

	_, isLoading := svc.BudgetTips()
	assert.True(t, isLoading)

	gm.calls[0] <- "A tip"
	<-done

	_, isLoading = svc.BudgetTips()
	assert.False(t, isLoading)
}
