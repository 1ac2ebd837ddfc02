package service

import (
	"time"

	"scidrill/internal/modules/drill/domain"
	"scidrill/internal/platform/clock"
	apperrors "scidrill/internal/platform/errors"
	"scidrill/internal/platform/id"
	"scidrill/internal/platform/random"
)

// Options are the drill tunables resolved from configuration at startup.
type Options struct {
	SamplingPolicy  domain.SamplingPolicy
	TopicQuota      int
	DefaultCount    int
	QuestionSeconds int
	CheatPolicy     domain.CheatSheetPolicy
}

// DrillService owns the single live session. There is exactly one logical
// actor, so no locking; every user action is one synchronous transition.
type DrillService struct {
	clock clock.Clock
	ids   id.Generator
	rand  random.Source
	opts  Options

	session *domain.Session
	event   string
}

func NewDrillService(clk clock.Clock, ids id.Generator, rand random.Source, opts Options) *DrillService {
	return &DrillService{clock: clk, ids: ids, rand: rand, opts: opts}
}

// Start samples the drill sequence from the event pool and replaces any
// previous session. An empty sample is a valid "nothing to practice" session,
// not an error.
func (s *DrillService) Start(event string, mode domain.Mode, topics []string, count int, pool []domain.Question) (*domain.Session, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = s.opts.DefaultCount
	}
	questions := domain.Sample(pool, domain.SampleSpec{
		Event:      event,
		Topics:     topics,
		Count:      count,
		Policy:     s.opts.SamplingPolicy,
		TopicQuota: s.opts.TopicQuota,
	}, s.rand)
	s.session = domain.NewSession(
		s.ids.New(),
		event,
		mode,
		topics,
		questions,
		s.opts.QuestionSeconds,
		s.opts.CheatPolicy,
		s.clock.Now(),
	)
	s.event = event
	return s.session, nil
}

// Preview runs the sampler without touching the live session, for headless
// inspection of what a drill would contain.
func (s *DrillService) Preview(event string, topics []string, count int, pool []domain.Question) []domain.Question {
	if count <= 0 {
		count = s.opts.DefaultCount
	}
	return domain.Sample(pool, domain.SampleSpec{
		Event:      event,
		Topics:     topics,
		Count:      count,
		Policy:     s.opts.SamplingPolicy,
		TopicQuota: s.opts.TopicQuota,
	}, s.rand)
}

func (s *DrillService) Session() (*domain.Session, error) {
	if s.session == nil {
		return nil, apperrors.ErrNoActiveDrill
	}
	return s.session, nil
}

// Event survives a reset so the learner lands back on topic selection.
func (s *DrillService) Event() string {
	return s.event
}

func (s *DrillService) Submit(answer string) (*domain.Session, error) {
	session, err := s.Session()
	if err != nil {
		return nil, err
	}
	if err := session.Submit(answer); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DrillService) ShowHint() (*domain.Session, error) {
	session, err := s.Session()
	if err != nil {
		return nil, err
	}
	if err := session.ShowHint(); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DrillService) Reveal() (*domain.Session, error) {
	session, err := s.Session()
	if err != nil {
		return nil, err
	}
	if err := session.Reveal(); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DrillService) ExtraMinute() (*domain.Session, error) {
	session, err := s.Session()
	if err != nil {
		return nil, err
	}
	if err := session.ExtraMinute(s.clock.Now()); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DrillService) MarkForReview() (*domain.Session, error) {
	session, err := s.Session()
	if err != nil {
		return nil, err
	}
	if err := session.MarkForReview(); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DrillService) Advance() (*domain.Session, error) {
	session, err := s.Session()
	if err != nil {
		return nil, err
	}
	if err := session.Advance(s.clock.Now()); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DrillService) Tick() (*domain.Session, time.Duration, bool, error) {
	session, err := s.Session()
	if err != nil {
		return nil, 0, false, err
	}
	remaining, expired := session.Tick(s.clock.Now())
	return session, remaining, expired, nil
}

// RequestExit discards the session immediately below the confirmation
// threshold; above it, the session stays armed until ConfirmExit or
// CancelExit.
func (s *DrillService) RequestExit() (bool, error) {
	session, err := s.Session()
	if err != nil {
		return false, err
	}
	if session.RequestExit() {
		return true, nil
	}
	s.discard(true)
	return false, nil
}

func (s *DrillService) ConfirmExit() error {
	if _, err := s.Session(); err != nil {
		return err
	}
	s.discard(true)
	return nil
}

func (s *DrillService) CancelExit() (*domain.Session, error) {
	session, err := s.Session()
	if err != nil {
		return nil, err
	}
	session.CancelExit()
	return session, nil
}

// Reset discards the session but keeps the event, returning the learner to
// topic selection rather than event selection.
func (s *DrillService) Reset() error {
	if _, err := s.Session(); err != nil {
		return err
	}
	s.discard(false)
	return nil
}

func (s *DrillService) discard(clearEvent bool) {
	s.session = nil
	if clearEvent {
		s.event = ""
	}
}
