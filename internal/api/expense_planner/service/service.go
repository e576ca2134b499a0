package plannerService

import (
	"ExpensePlannerGolang/internal/api/expense_planner"
	plannerRepository "ExpensePlannerGolang/internal/api/expense_planner/repository"
	"ExpensePlannerGolang/internal/entity"
	"ExpensePlannerGolang/pkg/gemini"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IPlannerService interface {
	AddEntry(ctx context.Context, req expense_planner.CreateEntryRequest) (entity.LedgerEntry, error)
	GetEntries(ctx context.Context) ([]entity.LedgerEntry, error)
	GetSummary(ctx context.Context) (FinancialSnapshot, error)
	FetchBudgetTips(ctx context.Context) []string
	BudgetTips() ([]string, bool)
}

type plannerService struct {
	log               *logrus.Logger
	plannerRepository plannerRepository.Repository
	gemini            gemini.IGemini

	mu      sync.RWMutex
	entries []entity.LedgerEntry
	loaded  bool

	tipsMu        sync.RWMutex
	budgetTips    []string
	isLoadingTips bool
	fetchSeq      atomic.Uint64
}

func NewPlannerService(log *logrus.Logger, pr plannerRepository.Repository, gm gemini.IGemini) IPlannerService {
	return &plannerService{
		log:               log,
		plannerRepository: pr,
		gemini:            gm,
	}
}

// ensureLoadedLocked hydrates the in-memory ledger from storage on first use.
// Callers must hold mu.
func (s *plannerService) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	repo := s.plannerRepository.NewClient()
	entries, err := repo.Ledger.LoadEntries(ctx)
	if err != nil {
		return err
	}

	s.entries = entries
	s.loaded = true
	return nil
}
