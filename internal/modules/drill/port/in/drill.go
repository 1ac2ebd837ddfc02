package in

import (
	"context"

	"scidrill/internal/modules/drill/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.SessionView, error)
	Sample(ctx context.Context, input dto.StartInput) (dto.SampleOutput, error)
	View(ctx context.Context) (dto.SessionView, error)
	Submit(ctx context.Context, answer string) (dto.SessionView, error)
	ShowHint(ctx context.Context) (dto.SessionView, error)
	Reveal(ctx context.Context) (dto.SessionView, error)
	ExtraMinute(ctx context.Context) (dto.SessionView, error)
	MarkForReview(ctx context.Context) (dto.SessionView, error)
	Advance(ctx context.Context) (dto.SessionView, error)
	Tick(ctx context.Context) (dto.TickOutput, error)
	OpenCheatSheet(ctx context.Context) (dto.SessionView, error)
	CloseCheatSheet(ctx context.Context) (dto.SessionView, error)
	CheatSheet(ctx context.Context) (dto.CheatSheetOutput, error)
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	RequestExit(ctx context.Context) (dto.ExitOutput, error)
	ConfirmExit(ctx context.Context) error
	CancelExit(ctx context.Context) (dto.SessionView, error)
	Reset(ctx context.Context) error
}
