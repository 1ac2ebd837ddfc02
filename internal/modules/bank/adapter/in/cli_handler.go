package in

import (
	"context"

	"scidrill/internal/modules/bank/dto"
	bankin "scidrill/internal/modules/bank/port/in"
)

type CLIHandler struct {
	usecase bankin.Usecase
}

func NewCLIHandler(usecase bankin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) (dto.LoadOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) ListEvents(ctx context.Context) ([]dto.EventOutput, error) {
	return h.usecase.ListEvents(ctx)
}

func (h CLIHandler) ListTopics(ctx context.Context, event string) ([]dto.TopicOutput, error) {
	return h.usecase.ListTopics(ctx, event)
}

func (h CLIHandler) QuestionsForEvent(ctx context.Context, event string) ([]dto.QuestionOutput, error) {
	return h.usecase.QuestionsForEvent(ctx, event)
}

func (h CLIHandler) ImportPDF(ctx context.Context, path, event, topic string) (dto.ImportOutput, error) {
	return h.usecase.ImportPDF(ctx, dto.ImportPDFInput{Path: path, Event: event, Topic: topic})
}
