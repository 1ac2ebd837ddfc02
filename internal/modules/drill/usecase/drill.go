package usecase

import (
	"context"
	"strings"
	"time"

	bankdto "scidrill/internal/modules/bank/dto"
	bankin "scidrill/internal/modules/bank/port/in"
	"scidrill/internal/modules/drill/domain"
	"scidrill/internal/modules/drill/dto"
	drillin "scidrill/internal/modules/drill/port/in"
	"scidrill/internal/modules/drill/service"
	"scidrill/internal/platform/clock"
	apperrors "scidrill/internal/platform/errors"
)

type Interactor struct {
	svc   *service.DrillService
	bank  bankin.Usecase
	clock clock.Clock
}

func NewInteractor(svc *service.DrillService, bank bankin.Usecase, clk clock.Clock) drillin.Usecase {
	return &Interactor{svc: svc, bank: bank, clock: clk}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.SessionView, error) {
	event := strings.TrimSpace(input.Event)
	if event == "" {
		return dto.SessionView{}, apperrors.ErrInvalidInput
	}
	mode, err := parseMode(input.Mode)
	if err != nil {
		return dto.SessionView{}, err
	}
	pool, err := i.bank.QuestionsForEvent(ctx, event)
	if err != nil {
		return dto.SessionView{}, err
	}
	session, err := i.svc.Start(event, mode, input.Topics, input.Count, toDomain(pool))
	if err != nil {
		return dto.SessionView{}, err
	}
	return i.view(session), nil
}

func (i *Interactor) Sample(ctx context.Context, input dto.StartInput) (dto.SampleOutput, error) {
	event := strings.TrimSpace(input.Event)
	if event == "" {
		return dto.SampleOutput{}, apperrors.ErrInvalidInput
	}
	pool, err := i.bank.QuestionsForEvent(ctx, event)
	if err != nil {
		return dto.SampleOutput{}, err
	}
	sampled := i.svc.Preview(event, input.Topics, input.Count, toDomain(pool))
	out := dto.SampleOutput{Event: event}
	for _, q := range sampled {
		out.Questions = append(out.Questions, dto.SampledQuestion{Topic: q.Topic, Prompt: q.Prompt, Type: string(q.Type)})
	}
	return out, nil
}

func parseMode(raw string) (domain.Mode, error) {
	mode := domain.Mode(strings.ToLower(strings.TrimSpace(raw)))
	if err := mode.Validate(); err != nil {
		return "", err
	}
	return mode, nil
}

func toDomain(pool []bankdto.QuestionOutput) []domain.Question {
	out := make([]domain.Question, 0, len(pool))
	for _, q := range pool {
		out = append(out, domain.Question{
			Event:       q.Event,
			Topic:       q.Topic,
			Prompt:      q.Prompt,
			Answer:      q.Answer,
			Options:     q.Options,
			Type:        domain.QuestionType(q.Type),
			Hint:        q.Hint,
			Explanation: q.Explanation,
		})
	}
	return out
}

func (i *Interactor) View(_ context.Context) (dto.SessionView, error) {
	session, err := i.svc.Session()
	if err != nil {
		return dto.SessionView{}, err
	}
	return i.view(session), nil
}

func (i *Interactor) Submit(_ context.Context, answer string) (dto.SessionView, error) {
	session, err := i.svc.Submit(answer)
	if err != nil {
		return dto.SessionView{}, err
	}
	return i.view(session), nil
}

func (i *Interactor) ShowHint(_ context.Context) (dto.SessionView, error) {
	session, err := i.svc.ShowHint()
	if err != nil {
		return dto.SessionView{}, err
	}
	return i.view(session), nil
}

func (i *Interactor) Reveal(_ context.Context) (dto.SessionView, error) {
	session, err := i.svc.Reveal()
	if err != nil {
		return dto.SessionView{}, err
	}
	return i.view(session), nil
}

func (i *Interactor) ExtraMinute(_ context.Context) (dto.SessionView, error) {
	session, err := i.svc.ExtraMinute()
	if err != nil {
		return dto.SessionView{}, err
	}
	return i.view(session), nil
}

func (i *Interactor) MarkForReview(_ context.Context) (dto.SessionView, error) {
	session, err := i.svc.MarkForReview()
	if err != nil {
		return dto.SessionView{}, err
	}
	return i.view(session), nil
}

func (i *Interactor) Advance(_ context.Context) (dto.SessionView, error) {
	session, err := i.svc.Advance()
	if err != nil {
		return dto.SessionView{}, err
	}
	return i.view(session), nil
}

func (i *Interactor) Tick(_ context.Context) (dto.TickOutput, error) {
	session, _, expired, err := i.svc.Tick()
	if err != nil {
		return dto.TickOutput{}, err
	}
	return dto.TickOutput{View: i.view(session), Expired: expired}, nil
}

func (i *Interactor) OpenCheatSheet(_ context.Context) (dto.SessionView, error) {
	session, err := i.svc.Session()
	if err != nil {
		return dto.SessionView{}, err
	}
	session.OpenCheatSheet()
	return i.view(session), nil
}

func (i *Interactor) CloseCheatSheet(_ context.Context) (dto.SessionView, error) {
	session, err := i.svc.Session()
	if err != nil {
		return dto.SessionView{}, err
	}
	session.CloseCheatSheet()
	return i.view(session), nil
}

func (i *Interactor) CheatSheet(_ context.Context) (dto.CheatSheetOutput, error) {
	session, err := i.svc.Session()
	if err != nil {
		return dto.CheatSheetOutput{}, err
	}
	out := dto.CheatSheetOutput{Event: session.Event}
	for _, q := range session.Missed {
		out.Entries = append(out.Entries, dto.CheatEntry{
			Prompt:      q.Prompt,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		})
	}
	return out, nil
}

func (i *Interactor) Summary(_ context.Context) (dto.SummaryOutput, error) {
	session, err := i.svc.Session()
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	summary := session.Summary()
	out := dto.SummaryOutput{
		Event:       summary.Event,
		Mode:        string(summary.Mode),
		Score:       summary.Score,
		Attempted:   summary.Attempted,
		HintsUsed:   summary.HintsUsed,
		Missed:      summary.Missed,
		AccuracyPct: summary.AccuracyPct,
		Advice:      summary.Advice,
	}
	for _, topic := range summary.Topics {
		out.Topics = append(out.Topics, dto.TopicSummaryOutput{
			Topic:       topic.Topic,
			Attempted:   topic.Attempted,
			Correct:     topic.Correct,
			AccuracyPct: topic.AccuracyPct,
		})
	}
	return out, nil
}

func (i *Interactor) RequestExit(_ context.Context) (dto.ExitOutput, error) {
	needsConfirm, err := i.svc.RequestExit()
	if err != nil {
		return dto.ExitOutput{}, err
	}
	return dto.ExitOutput{ConfirmationRequired: needsConfirm}, nil
}

func (i *Interactor) ConfirmExit(_ context.Context) error {
	return i.svc.ConfirmExit()
}

func (i *Interactor) CancelExit(_ context.Context) (dto.SessionView, error) {
	session, err := i.svc.CancelExit()
	if err != nil {
		return dto.SessionView{}, err
	}
	return i.view(session), nil
}

func (i *Interactor) Reset(_ context.Context) error {
	return i.svc.Reset()
}

// view projects the session for display. Answer, hint, and explanation leak
// into the view only once the machine has revealed them.
func (i *Interactor) view(session *domain.Session) dto.SessionView {
	phase := session.Phase()
	view := dto.SessionView{
		DrillID:         session.ID,
		Event:           session.Event,
		Mode:            string(session.Mode),
		Phase:           string(phase),
		Score:           session.Score,
		Attempted:       session.Attempted,
		HintsUsed:       session.HintsUsed,
		MissedCount:     len(session.Missed),
		Progress:        session.Progress(),
		HintRevealed:    session.HintRevealed,
		TimedOut:        session.TimedOut,
		ExtraMinuteUsed: session.ExtraMinuteUsed,
		CheatSheetOpen:  session.CheatSheetOpen,
		ExitPending:     session.ExitPending,
	}
	if session.Attempted > 0 {
		view.AccuracyPct = float64(session.Score) / float64(session.Attempted) * 100
	}
	question, ok := session.CurrentQuestion()
	if !ok {
		return view
	}
	view.Question = dto.QuestionView{
		Index:   session.Current + 1,
		Total:   len(session.Questions),
		Topic:   question.Topic,
		Prompt:  question.Prompt,
		Options: question.Options,
		Type:    string(question.Type),
	}
	if session.HintRevealed {
		view.Question.Hint = question.Hint
	}
	if session.Revealed {
		view.Question.Answer = question.Answer
		view.Question.Explanation = question.Explanation
	}
	if session.Mode == domain.ModeTimed && !session.Deadline.IsZero() && phase == domain.PhaseInProgress {
		remaining := session.Deadline.Sub(i.clock.Now())
		if remaining < 0 {
			remaining = 0
		}
		view.RemainingSeconds = int((remaining + time.Second - 1) / time.Second)
	}
	return view
}
