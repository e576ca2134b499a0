package plannerService

import (
	"ExpensePlannerGolang/internal/api/expense_planner"
	"ExpensePlannerGolang/internal/entity"
	contextPkg "ExpensePlannerGolang/pkg/context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *plannerService) AddEntry(ctx context.Context, req expense_planner.CreateEntryRequest) (entity.LedgerEntry, error) {
	requestID := contextPkg.GetRequestID(ctx)

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Invalid entry date")
		return entity.LedgerEntry{}, expense_planner.ErrInvalidDate
	}

	category := req.Category
	description := req.Description
	if req.IsIncome {
		category = entity.IncomeCategory
		if description == "" {
			description = entity.IncomeDefaultDescription
		}
	}

	entry := entity.LedgerEntry{
		ID:          uuid.NewString(),
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      req.Amount,
		IsIncome:    req.IsIncome,
	}

	if err := entry.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   entry.Category,
			"amount":     entry.Amount,
			"error":      err.Error(),
		}).Warn("Invalid entry data, ledger unchanged")
		return entity.LedgerEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return entity.LedgerEntry{}, err
	}

	s.entries = append(s.entries, entry)

	repo := s.plannerRepository.NewClient()
	if err := repo.Ledger.SaveEntries(ctx, s.entries); err != nil {
		// Durability is best-effort: the entry stays in memory and the caller
		// still sees success. The failure is only visible in the logs.
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"entry_id":   entry.ID,
			"error":      err.Error(),
		}).Error("Failed to persist ledger after append")
	}

	return entry, nil
}

func (s *plannerService) GetEntries(ctx context.Context) ([]entity.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	entries := make([]entity.LedgerEntry, len(s.entries))
	copy(entries, s.entries)
	return entries, nil
}
