package plannerService

import (
	contextPkg "ExpensePlannerGolang/pkg/context"
	"ExpensePlannerGolang/pkg/gemini"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// FetchBudgetTips runs the full pipeline: snapshot, prompt, API call,
// sanitization. It never fails from the caller's point of view; every error
// path collapses into a one-element tip list describing the failure.
//
// Overlapping fetches are sequenced: each call takes the next sequence number
// and only the call holding the latest number may publish its result to the
// shared tip state. A stale call still returns its own result to its caller.
func (s *plannerService) FetchBudgetTips(ctx context.Context) []string {
	seq := s.fetchSeq.Add(1)

	s.tipsMu.Lock()
	s.isLoadingTips = true
	s.tipsMu.Unlock()

	tips := s.generateTips(ctx)

	s.tipsMu.Lock()
	if seq == s.fetchSeq.Load() {
		s.budgetTips = tips
		s.isLoadingTips = false
	}
	s.tipsMu.Unlock()

	return tips
}

func (s *plannerService) generateTips(ctx context.Context) []string {
	requestID := contextPkg.GetRequestID(ctx)

	snapshot, err := s.GetSummary(ctx)
	if err != nil {
		return []string{fmt.Sprintf("Error: Failed to load ledger - %v", err)}
	}

	prompt := BuildTipsPrompt(snapshot)

	text, err := s.gemini.GenerateText(ctx, prompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Budget tip fetch failed")
		return []string{tipForError(err)}
	}

	return gemini.SanitizeTips(text)
}

// tipForError flattens every failure mode of the fetch into a display string.
func tipForError(err error) string {
	var statusErr *gemini.StatusError
	var decodeErr *gemini.DecodeError
	var apiErr *gemini.APIError

	switch {
	case errors.Is(err, gemini.ErrNoData):
		return "Error: No data received from API"
	case errors.Is(err, gemini.ErrNoCandidates):
		return "Error: No candidates found in response"
	case errors.Is(err, gemini.ErrNoParts):
		return "Error: No tips found in response"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Error: HTTP %d", statusErr.Code)
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("Error: Failed to parse response - %v", decodeErr.Err)
	case errors.As(err, &apiErr):
		return fmt.Sprintf("Error: API error - %s", apiErr.Message)
	default:
		return fmt.Sprintf("Error: Network error - %v", err)
	}
}

// BudgetTips returns the last published tip list and whether a fetch is in
// flight.
func (s *plannerService) BudgetTips() ([]string, bool) {
	s.tipsMu.RLock()
	defer s.tipsMu.RUnlock()

	tips := make([]string, len(s.budgetTips))
	copy(tips, s.budgetTips)
	return tips, s.isLoadingTips
}
