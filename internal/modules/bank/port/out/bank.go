package out

import (
	"context"

	"scidrill/internal/modules/bank/domain"
)

// QuestionSource is the tabular backing store for question records.
type QuestionSource interface {
	Load(ctx context.Context) ([]domain.Question, error)
	Append(ctx context.Context, questions []domain.Question) error
}

// QuestionParser extracts question records from an external document.
type QuestionParser interface {
	Parse(ctx context.Context, path, event, topic string) ([]domain.Question, error)
}

// CatalogProjector maintains the derived event/topic index.
type CatalogProjector interface {
	Reset(ctx context.Context) error
	Upsert(ctx context.Context, entry domain.CatalogEntry) error
	ListEvents(ctx context.Context) ([]domain.EventSummary, error)
	ListTopics(ctx context.Context, event string) ([]domain.TopicSummary, error)
}
