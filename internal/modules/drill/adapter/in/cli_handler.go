package in

import (
	"context"

	"scidrill/internal/modules/drill/dto"
	drillin "scidrill/internal/modules/drill/port/in"
)

type CLIHandler struct {
	usecase drillin.Usecase
}

func NewCLIHandler(usecase drillin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, event, mode string, topics []string, count int) (dto.SessionView, error) {
	return h.usecase.Start(ctx, dto.StartInput{Event: event, Mode: mode, Topics: topics, Count: count})
}

func (h CLIHandler) Sample(ctx context.Context, event string, topics []string, count int) (dto.SampleOutput, error) {
	return h.usecase.Sample(ctx, dto.StartInput{Event: event, Topics: topics, Count: count})
}

func (h CLIHandler) View(ctx context.Context) (dto.SessionView, error) {
	return h.usecase.View(ctx)
}

func (h CLIHandler) Submit(ctx context.Context, answer string) (dto.SessionView, error) {
	return h.usecase.Submit(ctx, answer)
}

func (h CLIHandler) ShowHint(ctx context.Context) (dto.SessionView, error) {
	return h.usecase.ShowHint(ctx)
}

func (h CLIHandler) Reveal(ctx context.Context) (dto.SessionView, error) {
	return h.usecase.Reveal(ctx)
}

func (h CLIHandler) ExtraMinute(ctx context.Context) (dto.SessionView, error) {
	return h.usecase.ExtraMinute(ctx)
}

func (h CLIHandler) MarkForReview(ctx context.Context) (dto.SessionView, error) {
	return h.usecase.MarkForReview(ctx)
}

func (h CLIHandler) Advance(ctx context.Context) (dto.SessionView, error) {
	return h.usecase.Advance(ctx)
}

func (h CLIHandler) Tick(ctx context.Context) (dto.TickOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h CLIHandler) OpenCheatSheet(ctx context.Context) (dto.SessionView, error) {
	return h.usecase.OpenCheatSheet(ctx)
}

func (h CLIHandler) CloseCheatSheet(ctx context.Context) (dto.SessionView, error) {
	return h.usecase.CloseCheatSheet(ctx)
}

func (h CLIHandler) CheatSheet(ctx context.Context) (dto.CheatSheetOutput, error) {
	return h.usecase.CheatSheet(ctx)
}

func (h CLIHandler) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) RequestExit(ctx context.Context) (dto.ExitOutput, error) {
	return h.usecase.RequestExit(ctx)
}

func (h CLIHandler) ConfirmExit(ctx context.Context) error {
	return h.usecase.ConfirmExit(ctx)
}

func (h CLIHandler) CancelExit(ctx context.Context) (dto.SessionView, error) {
	return h.usecase.CancelExit(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
