package plannerService

import (
	"io"
	"sync"

	plannerRepository "ExpensePlannerGolang/internal/api/expense_planner/repository"
	"ExpensePlannerGolang/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type fakeLedger struct {
	mu      sync.Mutex
	entries []entity.LedgerEntry
	saveErr error
	saves   int
}

func (f *fakeLedger) LoadEntries(_ context.Context) ([]entity.LedgerEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := make([]entity.LedgerEntry, len(f.entries))
	copy(entries, f.entries)
	return entries, nil
}

func (f *fakeLedger) SaveEntries(_ context.Context, entries []entity.LedgerEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries = make([]entity.LedgerEntry, len(entries))
	copy(f.entries, entries)
	f.saves++
	return nil
}

type fakeRepository struct {
	ledger *fakeLedger
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{ledger: &fakeLedger{}}
}

func (f *fakeRepository) NewClient() plannerRepository.Client {
	return plannerRepository.Client{Ledger: f.ledger}
}

type stubGemini struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (g *stubGemini) GenerateText(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	return g.text, g.err
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestService(repo *fakeRepository, gm *stubGemini) *plannerService {
	if repo == nil {
		repo = newFakeRepository()
	}
	if gm == nil {
		gm = &stubGemini{}
	}
	return NewPlannerService(testLogger(), repo, gm).(*plannerService)
}
