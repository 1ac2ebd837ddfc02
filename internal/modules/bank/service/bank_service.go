package service

import (
	"context"
	"fmt"

	"scidrill/internal/modules/bank/domain"
	bankout "scidrill/internal/modules/bank/port/out"
	"scidrill/internal/platform/slug"
)

// BankService owns the in-memory question pool for the lifetime of the
// process and keeps the catalog projection in step with it.
type BankService struct {
	source    bankout.QuestionSource
	parser    bankout.QuestionParser
	projector bankout.CatalogProjector

	pool   []domain.Question
	loaded bool
}

func NewBankService(source bankout.QuestionSource, parser bankout.QuestionParser, projector bankout.CatalogProjector) *BankService {
	return &BankService{source: source, parser: parser, projector: projector}
}

// Load reads the question source, drops untagged rows, and rebuilds the
// catalog index. A load failure leaves the service usable with an empty pool.
func (s *BankService) Load(ctx context.Context) (int, error) {
	questions, err := s.source.Load(ctx)
	if err != nil {
		s.pool = nil
		s.loaded = true
		return 0, fmt.Errorf("load questions: %w", err)
	}
	s.pool = questions
	s.loaded = true
	if err := s.reindex(ctx); err != nil {
		return len(s.pool), err
	}
	return len(s.pool), nil
}

func (s *BankService) reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	for _, entry := range domain.Aggregate(s.pool) {
		if err := s.projector.Upsert(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func (s *BankService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	_, err := s.Load(ctx)
	return err
}

func (s *BankService) Events(ctx context.Context) ([]domain.EventSummary, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.projector.ListEvents(ctx)
}

func (s *BankService) Topics(ctx context.Context, event string) ([]domain.TopicSummary, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.projector.ListTopics(ctx, event)
}

// PoolForEvent returns every question tagged with the event, in load order.
func (s *BankService) PoolForEvent(ctx context.Context, event string) ([]domain.Question, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	key := slug.Make(event)
	out := []domain.Question{}
	for _, q := range s.pool {
		if slug.Make(q.Event) == key {
			out = append(out, q)
		}
	}
	return out, nil
}

// Import parses questions out of a document, appends them to the source, and
// reloads so the pool and catalog pick them up.
func (s *BankService) Import(ctx context.Context, path, event, topic string) (int, error) {
	parsed, err := s.parser.Parse(ctx, path, event, topic)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := s.source.Append(ctx, parsed); err != nil {
		return 0, fmt.Errorf("append questions: %w", err)
	}
	if _, err := s.Load(ctx); err != nil {
		return 0, err
	}
	return len(parsed), nil
}
