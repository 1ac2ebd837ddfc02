package in

import (
	"context"

	"scidrill/internal/modules/bank/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.LoadOutput, error)
	ListEvents(ctx context.Context) ([]dto.EventOutput, error)
	ListTopics(ctx context.Context, event string) ([]dto.TopicOutput, error)
	QuestionsForEvent(ctx context.Context, event string) ([]dto.QuestionOutput, error)
	ImportPDF(ctx context.Context, input dto.ImportPDFInput) (dto.ImportOutput, error)
}
