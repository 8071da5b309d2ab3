package matches

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sfmk07/Flairv3/internal/domain/model"
	pgrepo "github.com/sfmk07/Flairv3/internal/repo/postgres"
)

type stubMatchStore struct {
	byID      map[int64]model.Match
	summaries []pgrepo.MatchSummary
	lastLimit int
}

func (s *stubMatchStore) GetByID(_ context.Context, matchID int64) (model.Match, error) {
	match, ok := s.byID[matchID]
	if !ok {
		return model.Match{}, pgrepo.ErrMatchNotFound
	}
	return match, nil
}

func (s *stubMatchStore) ListForUser(_ context.Context, _ int64, limit int) ([]pgrepo.MatchSummary, error) {
	s.lastLimit = limit
	return s.summaries, nil
}

type stubBlockStore struct {
	pairs [][2]int64
}

func (s *stubBlockStore) Upsert(_ context.Context, blockerID, blockedID int64) error {
	s.pairs = append(s.pairs, [2]int64{blockerID, blockedID})
	return nil
}

type stubReportStore struct {
	reasons []string
}

func (s *stubReportStore) Create(_ context.Context, _, _ int64, reason string) error {
	s.reasons = append(s.reasons, reason)
	return nil
}

func newServiceForTest() (*Service, *stubMatchStore, *stubBlockStore, *stubReportStore) {
	matchStore := &stubMatchStore{byID: map[int64]model.Match{
		10: {ID: 10, User1ID: 1, User2ID: 2},
	}}
	blockStore := &stubBlockStore{}
	reportStore := &stubReportStore{}
	svc := NewService(Dependencies{
		Matches: matchStore,
		Blocks:  blockStore,
		Reports: reportStore,
	}, Config{ListLimit: 50})
	return svc, matchStore, blockStore, reportStore
}

func TestListUsesConfiguredLimit(t *testing.T) {
	svc, store, _, _ := newServiceForTest()

	if _, err := svc.List(context.Background(), 1); err != nil {
		t.Fatalf("list: %v", err)
	}
	if store.lastLimit != 50 {
		t.Fatalf("expected limit 50, got %d", store.lastLimit)
	}
}

func TestGetParticipantsOnly(t *testing.T) {
	svc, _, _, _ := newServiceForTest()
	ctx := context.Background()

	match, err := svc.Get(ctx, 2, 10)
	if err != nil {
		t.Fatalf("get as participant: %v", err)
	}
	if match.ID != 10 {
		t.Fatalf("unexpected match %+v", match)
	}

	if _, err := svc.Get(ctx, 3, 10); !errors.Is(err, ErrForbidden) {
		t.Fatalf("outsider must be forbidden, got %v", err)
	}
	if _, err := svc.Get(ctx, 1, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown match must be not found, got %v", err)
	}
}

func TestBlock(t *testing.T) {
	svc, _, blocks, _ := newServiceForTest()
	ctx := context.Background()

	if err := svc.Block(ctx, 1, 2); err != nil {
		t.Fatalf("block: %v", err)
	}
	if len(blocks.pairs) != 1 || blocks.pairs[0] != [2]int64{1, 2} {
		t.Fatalf("unexpected block edges %v", blocks.pairs)
	}

	if err := svc.Block(ctx, 1, 1); !errors.Is(err, ErrValidation) {
		t.Fatalf("self block must be rejected, got %v", err)
	}
}

func TestReportValidation(t *testing.T) {
	svc, _, _, reports := newServiceForTest()
	ctx := context.Background()

	if err := svc.Report(ctx, 1, 2, "  spam profile  "); err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(reports.reasons) != 1 || reports.reasons[0] != "spam profile" {
		t.Fatalf("reason not normalized: %v", reports.reasons)
	}

	if err := svc.Report(ctx, 1, 2, "   "); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty reason must be rejected, got %v", err)
	}
	if err := svc.Report(ctx, 1, 2, strings.Repeat("x", 301)); !errors.Is(err, ErrValidation) {
		t.Fatalf("oversized reason must be rejected, got %v", err)
	}
	if err := svc.Report(ctx, 1, 1, "spam"); !errors.Is(err, ErrValidation) {
		t.Fatalf("self report must be rejected, got %v", err)
	}
}
