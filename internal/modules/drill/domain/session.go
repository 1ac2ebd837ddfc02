package domain

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrUnknownMode       = errors.New("unknown drill mode")
	ErrInvalidTransition = errors.New("action not valid in current drill state")
	ErrEmptyAnswer       = errors.New("an answer is required")
)

// CheatSheetPolicy controls when a missed question enters the cheat sheet.
type CheatSheetPolicy string

const (
	// CheatOnReveal collects the question when the learner gives up and
	// reveals the answer (the classic behavior).
	CheatOnReveal CheatSheetPolicy = "on_reveal"
	// CheatOnMiss collects the question the moment an answer misses or the
	// clock runs out. Duplicates accumulate across retries.
	CheatOnMiss CheatSheetPolicy = "on_miss"
)

type AnswerState string

const (
	AnswerNone      AnswerState = "none"
	AnswerCorrect   AnswerState = "correct"
	AnswerIncorrect AnswerState = "incorrect"
)

// Phase is derived from the session flags; it is never stored.
type Phase string

const (
	PhaseSelecting        Phase = "selecting"
	PhaseInProgress       Phase = "in_progress"
	PhaseCorrect          Phase = "correct"
	PhaseIncorrectPending Phase = "incorrect_pending"
	PhaseRevealed         Phase = "revealed"
	PhaseComplete         Phase = "complete"
)

type TopicStat struct {
	Attempted int
	Correct   int
}

// Session is the whole mutable state of one drill attempt. Every transition
// is a method; invalid transitions return ErrInvalidTransition and leave the
// session untouched, so callers can treat them as no-ops.
type Session struct {
	ID              string
	Event           string
	Mode            Mode
	SelectedTopics  []string
	Questions       []Question
	QuestionSeconds int
	CheatPolicy     CheatSheetPolicy

	Current    int
	Score      int
	Attempted  int
	TopicStats map[string]TopicStat
	Missed     []Question
	HintsUsed  int

	// transient per-question flags
	UserAnswer     string
	AnswerState    AnswerState
	HintRevealed   bool
	AwaitingAction bool
	Revealed       bool
	TimedOut       bool

	// overlay flags, orthogonal to the main line
	CheatSheetOpen bool
	ExitPending    bool

	Deadline        time.Time
	ExtraMinuteUsed bool
}

func NewSession(id, event string, mode Mode, topics []string, questions []Question, questionSeconds int, policy CheatSheetPolicy, now time.Time) *Session {
	if questionSeconds <= 0 {
		questionSeconds = 60
	}
	if policy == "" {
		policy = CheatOnReveal
	}
	s := &Session{
		ID:              id,
		Event:           event,
		Mode:            mode,
		SelectedTopics:  topics,
		Questions:       questions,
		QuestionSeconds: questionSeconds,
		CheatPolicy:     policy,
		TopicStats:      map[string]TopicStat{},
	}
	if mode == ModeTimed && len(questions) > 0 {
		s.Deadline = now.Add(s.questionDuration())
	}
	return s
}

func (s *Session) questionDuration() time.Duration {
	return time.Duration(s.QuestionSeconds) * time.Second
}

func (s *Session) Phase() Phase {
	switch {
	case len(s.Questions) == 0:
		return PhaseSelecting
	case s.Current >= len(s.Questions):
		return PhaseComplete
	case s.AnswerState == AnswerCorrect:
		return PhaseCorrect
	case s.AwaitingAction:
		return PhaseIncorrectPending
	case s.Revealed:
		return PhaseRevealed
	default:
		return PhaseInProgress
	}
}

func (s *Session) CurrentQuestion() (Question, bool) {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Current], true
}

// Progress is the consumed fraction of the question sequence.
func (s *Session) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Current) / float64(len(s.Questions))
}

// Submit checks a trimmed, case-insensitive answer against the current
// question. Empty answers are rejected so the machine enforces the
// disabled-submit invariant itself rather than trusting the UI.
func (s *Session) Submit(answer string) error {
	if s.Phase() != PhaseInProgress {
		return ErrInvalidTransition
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return ErrEmptyAnswer
	}
	q := s.Questions[s.Current]
	s.UserAnswer = trimmed
	s.Attempted++
	stat := s.TopicStats[q.Topic]
	stat.Attempted++

	if strings.EqualFold(trimmed, strings.TrimSpace(q.Answer)) {
		s.Score++
		stat.Correct++
		s.AnswerState = AnswerCorrect
		s.Revealed = true
		s.Deadline = time.Time{}
	} else {
		s.AnswerState = AnswerIncorrect
		s.AwaitingAction = true
		if s.CheatPolicy == CheatOnMiss {
			s.Missed = append(s.Missed, q)
		}
	}
	s.TopicStats[q.Topic] = stat
	return nil
}

// ShowHint returns a missed question to the answerable state with the hint
// exposed.
func (s *Session) ShowHint() error {
	if s.Phase() != PhaseIncorrectPending {
		return ErrInvalidTransition
	}
	s.HintRevealed = true
	s.AwaitingAction = false
	s.UserAnswer = ""
	s.AnswerState = AnswerNone
	s.TimedOut = false
	s.HintsUsed++
	return nil
}

// Reveal gives up on the current question. Under the on_reveal policy this is
// the moment the question enters the cheat sheet; duplicates are never
// dropped.
func (s *Session) Reveal() error {
	if s.Phase() != PhaseIncorrectPending {
		return ErrInvalidTransition
	}
	s.Revealed = true
	s.AwaitingAction = false
	if s.CheatPolicy == CheatOnReveal {
		s.Missed = append(s.Missed, s.Questions[s.Current])
	}
	s.Deadline = time.Time{}
	return nil
}

// ExtraMinute restarts the countdown once per question in timed mode. A
// second request is a no-op, not an error.
func (s *Session) ExtraMinute(now time.Time) error {
	if s.Mode != ModeTimed || s.Phase() != PhaseIncorrectPending {
		return ErrInvalidTransition
	}
	if s.ExtraMinuteUsed {
		return nil
	}
	s.ExtraMinuteUsed = true
	s.Deadline = now.Add(s.questionDuration())
	s.AwaitingAction = false
	s.UserAnswer = ""
	s.AnswerState = AnswerNone
	s.TimedOut = false
	return nil
}

// MarkForReview appends the current question to the cheat sheet without
// changing state.
func (s *Session) MarkForReview() error {
	if s.Phase() != PhaseIncorrectPending {
		return ErrInvalidTransition
	}
	s.Missed = append(s.Missed, s.Questions[s.Current])
	return nil
}

// Advance moves to the next question, resetting every per-question flag.
// Advancing past the last question completes the drill.
func (s *Session) Advance(now time.Time) error {
	phase := s.Phase()
	if phase != PhaseCorrect && phase != PhaseRevealed {
		return ErrInvalidTransition
	}
	s.Current++
	s.UserAnswer = ""
	s.AnswerState = AnswerNone
	s.HintRevealed = false
	s.AwaitingAction = false
	s.Revealed = false
	s.TimedOut = false
	s.ExitPending = false
	s.ExtraMinuteUsed = false
	if s.Mode == ModeTimed && s.Current < len(s.Questions) {
		s.Deadline = now.Add(s.questionDuration())
	} else {
		s.Deadline = time.Time{}
	}
	return nil
}

// Tick evaluates the countdown against the clock. Remaining time is always
// recomputed from the stored deadline, never counted down independently.
// Expiry forces the incorrect-pending state without touching the attempted
// counters: a timeout is not a submitted answer.
func (s *Session) Tick(now time.Time) (time.Duration, bool) {
	if s.Mode != ModeTimed || s.Phase() != PhaseInProgress || s.Deadline.IsZero() {
		return 0, false
	}
	remaining := s.Deadline.Sub(now)
	if remaining > 0 {
		return remaining, false
	}
	s.AnswerState = AnswerIncorrect
	s.AwaitingAction = true
	s.TimedOut = true
	if s.CheatPolicy == CheatOnMiss {
		s.Missed = append(s.Missed, s.Questions[s.Current])
	}
	return 0, true
}

// NeedsExitConfirmation reports whether leaving now discards more than half a
// drill's progress.
func (s *Session) NeedsExitConfirmation() bool {
	return len(s.Questions) > 0 && s.Progress() > 0.5
}

// RequestExit arms the confirmation detour when warranted. It returns true
// when the caller must confirm before discarding the session.
func (s *Session) RequestExit() bool {
	if s.NeedsExitConfirmation() {
		s.ExitPending = true
		return true
	}
	return false
}

func (s *Session) CancelExit() {
	s.ExitPending = false
}

func (s *Session) OpenCheatSheet()  { s.CheatSheetOpen = true }
func (s *Session) CloseCheatSheet() { s.CheatSheetOpen = false }

type TopicSummary struct {
	Topic       string
	Attempted   int
	Correct     int
	AccuracyPct float64
}

type Summary struct {
	Event       string
	Mode        Mode
	Score       int
	Attempted   int
	HintsUsed   int
	Missed      int
	AccuracyPct float64
	Topics      []TopicSummary
	Advice      string
}

// Summary derives the end-of-drill report. It is read-only: computing it does
// not change session state.
func (s *Session) Summary() Summary {
	summary := Summary{
		Event:     s.Event,
		Mode:      s.Mode,
		Score:     s.Score,
		Attempted: s.Attempted,
		HintsUsed: s.HintsUsed,
		Missed:    len(s.Missed),
	}
	if s.Attempted > 0 {
		summary.AccuracyPct = float64(s.Score) / float64(s.Attempted) * 100
	}
	for topic, stat := range s.TopicStats {
		entry := TopicSummary{Topic: topic, Attempted: stat.Attempted, Correct: stat.Correct}
		if stat.Attempted > 0 {
			entry.AccuracyPct = float64(stat.Correct) / float64(stat.Attempted) * 100
		}
		summary.Topics = append(summary.Topics, entry)
	}
	sort.Slice(summary.Topics, func(i, j int) bool { return summary.Topics[i].Topic < summary.Topics[j].Topic })
	summary.Advice = advice(summary.AccuracyPct, s.Attempted)
	return summary
}

func advice(accuracy float64, attempted int) string {
	switch {
	case attempted == 0:
		return "You didn't answer any questions this session. Pick a topic and give it another go."
	case accuracy >= 80:
		return "Excellent work! You have a strong grasp of the material. Consider branching into new topics or events."
	case accuracy >= 50:
		return "Great effort! Review the topics that gave you trouble — your cheat sheet is the place to start — then run another drill to solidify them."
	default:
		return "You now have a starting point. Study the explanations on your cheat sheet; every missed question is a chance to learn something new."
	}
}
