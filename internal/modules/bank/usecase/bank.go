package usecase

import (
	"context"
	"strings"

	"scidrill/internal/modules/bank/dto"
	bankin "scidrill/internal/modules/bank/port/in"
	"scidrill/internal/modules/bank/service"
	apperrors "scidrill/internal/platform/errors"
)

type Interactor struct {
	svc *service.BankService
}

func NewInteractor(svc *service.BankService) bankin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) (dto.LoadOutput, error) {
	count, err := i.svc.Load(ctx)
	if err != nil {
		return dto.LoadOutput{}, err
	}
	events, err := i.svc.Events(ctx)
	if err != nil {
		return dto.LoadOutput{}, err
	}
	return dto.LoadOutput{Questions: count, Events: len(events)}, nil
}

func (i *Interactor) ListEvents(ctx context.Context) ([]dto.EventOutput, error) {
	events, err := i.svc.Events(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventOutput, 0, len(events))
	for _, e := range events {
		out = append(out, dto.EventOutput{Name: e.Event, Topics: e.Topics, Questions: e.Questions})
	}
	return out, nil
}

func (i *Interactor) ListTopics(ctx context.Context, event string) ([]dto.TopicOutput, error) {
	if strings.TrimSpace(event) == "" {
		return nil, apperrors.ErrInvalidInput
	}
	topics, err := i.svc.Topics(ctx, event)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopicOutput, 0, len(topics))
	for _, t := range topics {
		out = append(out, dto.TopicOutput{Name: t.Topic, Questions: t.Questions})
	}
	return out, nil
}

func (i *Interactor) QuestionsForEvent(ctx context.Context, event string) ([]dto.QuestionOutput, error) {
	if strings.TrimSpace(event) == "" {
		return nil, apperrors.ErrInvalidInput
	}
	pool, err := i.svc.PoolForEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuestionOutput, 0, len(pool))
	for _, q := range pool {
		out = append(out, dto.QuestionOutput{
			Event:       q.Event,
			Topic:       q.Topic,
			Prompt:      q.Prompt,
			Answer:      q.Answer,
			Options:     q.Options,
			Type:        string(q.Type),
			Hint:        q.Hint,
			Explanation: q.Explanation,
		})
	}
	return out, nil
}

func (i *Interactor) ImportPDF(ctx context.Context, input dto.ImportPDFInput) (dto.ImportOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return dto.ImportOutput{}, apperrors.ErrInvalidInput
	}
	imported, err := i.svc.Import(ctx, input.Path, input.Event, input.Topic)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	return dto.ImportOutput{Imported: imported}, nil
}
