package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scidrill/internal/modules/bank/adapter/out"
	bankin "scidrill/internal/modules/bank/port/in"
	"scidrill/internal/modules/bank/service"
	"scidrill/internal/modules/bank/usecase"
	apperrors "scidrill/internal/platform/errors"
)

func newBank(t *testing.T, csvContent string) bankin.Usecase {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "questions_full.csv")
	if csvContent != "" {
		if err := os.WriteFile(csvPath, []byte(csvContent), 0o644); err != nil {
			t.Fatalf("write csv: %v", err)
		}
	}
	projector, err := out.NewSQLiteCatalogProjector(filepath.Join(dir, ".scidrill", "catalog.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	svc := service.NewBankService(out.NewCSVQuestionSource(csvPath), out.NewPDFQuestionParser(), projector)
	return usecase.NewInteractor(svc)
}

const fixtureCSV = `event,topic,question,answer,options__001,options__002,hint,explanation
Astronomy,Stars,Is the Sun a star?,True,True,False,,
Astronomy,Stars,Which is hotter?,Blue,Blue,Red,,
Astronomy,Galaxies,Name our galaxy,Milky Way,,,,
Fossils,Trilobites,How many lobes?,Three,,,,
`

func TestLoadAndListEvents(t *testing.T) {
	t.Parallel()
	bank := newBank(t, fixtureCSV)
	ctx := context.Background()

	loaded, err := bank.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Questions != 4 || loaded.Events != 2 {
		t.Fatalf("expected 4 questions / 2 events, got %+v", loaded)
	}

	events, err := bank.ListEvents(ctx)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Name != "Astronomy" || events[0].Topics != 2 || events[0].Questions != 3 {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].Name != "Fossils" || events[1].Questions != 1 {
		t.Fatalf("unexpected second event: %+v", events[1])
	}
}

func TestListTopicsMatchesEventCaseInsensitively(t *testing.T) {
	t.Parallel()
	bank := newBank(t, fixtureCSV)
	ctx := context.Background()

	topics, err := bank.ListTopics(ctx, "  astronomy ")
	if err != nil {
		t.Fatalf("list topics: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}
	if topics[0].Name != "Galaxies" || topics[1].Name != "Stars" || topics[1].Questions != 2 {
		t.Fatalf("unexpected topics: %+v", topics)
	}
}

func TestListTopicsRequiresEvent(t *testing.T) {
	t.Parallel()
	bank := newBank(t, fixtureCSV)
	if _, err := bank.ListTopics(context.Background(), "  "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestQuestionsForEventFilters(t *testing.T) {
	t.Parallel()
	bank := newBank(t, fixtureCSV)

	pool, err := bank.QuestionsForEvent(context.Background(), "Fossils")
	if err != nil {
		t.Fatalf("questions for event: %v", err)
	}
	if len(pool) != 1 || pool[0].Prompt != "How many lobes?" {
		t.Fatalf("unexpected pool: %+v", pool)
	}
	if pool[0].Type != "short_answer" {
		t.Fatalf("expected short_answer, got %s", pool[0].Type)
	}
}

func TestLoadFailureLeavesEmptyBank(t *testing.T) {
	t.Parallel()
	bank := newBank(t, "")

	if _, err := bank.Load(context.Background()); err == nil {
		t.Fatalf("expected load error for a missing file")
	}
	events, err := bank.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("list events after failed load: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected an empty catalog, got %+v", events)
	}
}

func TestReloadReplacesCatalog(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "questions_full.csv")
	if err := os.WriteFile(csvPath, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	projector, err := out.NewSQLiteCatalogProjector(filepath.Join(dir, ".scidrill", "catalog.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	svc := service.NewBankService(out.NewCSVQuestionSource(csvPath), out.NewPDFQuestionParser(), projector)
	bank := usecase.NewInteractor(svc)
	ctx := context.Background()

	if _, err := bank.Load(ctx); err != nil {
		t.Fatalf("first load: %v", err)
	}
	shrunk := strings.Join(strings.Split(fixtureCSV, "\n")[:2], "\n") + "\n"
	if err := os.WriteFile(csvPath, []byte(shrunk), 0o644); err != nil {
		t.Fatalf("rewrite csv: %v", err)
	}
	if _, err := bank.Load(ctx); err != nil {
		t.Fatalf("second load: %v", err)
	}
	events, err := bank.ListEvents(ctx)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 1 || events[0].Questions != 1 {
		t.Fatalf("catalog must be rebuilt, not accreted: %+v", events)
	}
}
