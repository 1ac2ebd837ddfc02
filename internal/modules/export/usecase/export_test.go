package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	bankdto "scidrill/internal/modules/bank/dto"
	drilldomain "scidrill/internal/modules/drill/domain"
	drilldto "scidrill/internal/modules/drill/dto"
	drillin "scidrill/internal/modules/drill/port/in"
	drillservice "scidrill/internal/modules/drill/service"
	drillusecase "scidrill/internal/modules/drill/usecase"
	"scidrill/internal/modules/export/adapter/out"
	exportdomain "scidrill/internal/modules/export/domain"
	"scidrill/internal/modules/export/dto"
	"scidrill/internal/modules/export/service"
	"scidrill/internal/modules/export/usecase"
	"scidrill/internal/platform/random"
)

type stubBank struct {
	pool []bankdto.QuestionOutput
}

func (s stubBank) Load(context.Context) (bankdto.LoadOutput, error) { return bankdto.LoadOutput{}, nil }
func (s stubBank) ListEvents(context.Context) ([]bankdto.EventOutput, error) {
	return nil, nil
}
func (s stubBank) ListTopics(context.Context, string) ([]bankdto.TopicOutput, error) {
	return nil, nil
}
func (s stubBank) QuestionsForEvent(context.Context, string) ([]bankdto.QuestionOutput, error) {
	return s.pool, nil
}
func (s stubBank) ImportPDF(context.Context, bankdto.ImportPDFInput) (bankdto.ImportOutput, error) {
	return bankdto.ImportOutput{}, nil
}

type frozenClock struct{}

func (frozenClock) Now() time.Time { return time.Unix(1000, 0) }

type seqID struct{}

func (seqID) New() string { return "d1" }

// missDrill starts a single-question drill and misses it so the cheat sheet
// has one entry.
func missDrill(t *testing.T) drillin.Usecase {
	t.Helper()
	svc := drillservice.NewDrillService(frozenClock{}, seqID{}, random.NewMathSource(1), drillservice.Options{
		SamplingPolicy:  drilldomain.PolicyQuota,
		TopicQuota:      5,
		DefaultCount:    10,
		QuestionSeconds: 60,
		CheatPolicy:     drilldomain.CheatOnReveal,
	})
	bank := stubBank{pool: []bankdto.QuestionOutput{
		{Event: "Astronomy", Topic: "Stars", Prompt: "Which is hotter?", Answer: "Blue", Explanation: "Blue stars burn hotter."},
	}}
	drill := drillusecase.NewInteractor(svc, bank, frozenClock{})
	ctx := context.Background()
	if _, err := drill.Start(ctx, drilldto.StartInput{Event: "Astronomy", Mode: "study"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := drill.Submit(ctx, "Red"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := drill.Reveal(ctx); err != nil {
		t.Fatalf("reveal: %v", err)
	}
	return drill
}

func TestExportCheatSheetWritesFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	drill := missDrill(t)
	export := usecase.NewInteractor(service.NewExportService("SciOly", out.NewFileArtifactWriter(dir)), drill)

	got, err := export.ExportCheatSheet(context.Background(), dto.ExportInput{Format: "txt"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if got.Entries != 1 {
		t.Fatalf("expected 1 entry, got %d", got.Entries)
	}
	wantPath := filepath.Join(dir, "SciOly_Astronomy_CheatSheet.txt")
	if got.Path != wantPath {
		t.Fatalf("unexpected path: %q", got.Path)
	}
	body, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(body), "- Blue stars burn hotter.") {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestExportCheatSheetMarkdownExtension(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	drill := missDrill(t)
	export := usecase.NewInteractor(service.NewExportService("SciOly", out.NewFileArtifactWriter(dir)), drill)

	got, err := export.ExportCheatSheet(context.Background(), dto.ExportInput{Format: "md"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Ext(got.Path) != ".md" {
		t.Fatalf("expected .md extension, got %q", got.Path)
	}
}

func TestExportCheatSheetUnknownFormat(t *testing.T) {
	t.Parallel()
	drill := missDrill(t)
	export := usecase.NewInteractor(service.NewExportService("SciOly", out.NewFileArtifactWriter(t.TempDir())), drill)

	if _, err := export.ExportCheatSheet(context.Background(), dto.ExportInput{Format: "pdf"}); !errors.Is(err, exportdomain.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestExportEmptyCheatSheet(t *testing.T) {
	t.Parallel()
	svc := drillservice.NewDrillService(frozenClock{}, seqID{}, random.NewMathSource(1), drillservice.Options{
		SamplingPolicy: drilldomain.PolicyQuota, TopicQuota: 5, DefaultCount: 10, QuestionSeconds: 60, CheatPolicy: drilldomain.CheatOnReveal,
	})
	bank := stubBank{pool: []bankdto.QuestionOutput{{Event: "Astronomy", Topic: "Stars", Prompt: "q", Answer: "a"}}}
	drill := drillusecase.NewInteractor(svc, bank, frozenClock{})
	if _, err := drill.Start(context.Background(), drilldto.StartInput{Event: "Astronomy", Mode: "study"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	export := usecase.NewInteractor(service.NewExportService("SciOly", out.NewFileArtifactWriter(t.TempDir())), drill)

	if _, err := export.ExportCheatSheet(context.Background(), dto.ExportInput{Format: "txt"}); !errors.Is(err, exportdomain.ErrEmptyCheatSheet) {
		t.Fatalf("expected ErrEmptyCheatSheet, got %v", err)
	}
}
