package dto

type StartInput struct {
	Event  string
	Mode   string
	Topics []string
	Count  int
}

// QuestionView exposes only what the current phase should show: the answer,
// hint, and explanation fields stay empty until the machine reveals them.
type QuestionView struct {
	Index       int
	Total       int
	Topic       string
	Prompt      string
	Options     []string
	Type        string
	Hint        string
	Answer      string
	Explanation string
}

type SessionView struct {
	DrillID          string
	Event            string
	Mode             string
	Phase            string
	Question         QuestionView
	Score            int
	Attempted        int
	HintsUsed        int
	MissedCount      int
	AccuracyPct      float64
	Progress         float64
	HintRevealed     bool
	TimedOut         bool
	ExtraMinuteUsed  bool
	RemainingSeconds int
	CheatSheetOpen   bool
	ExitPending      bool
}

type SampledQuestion struct {
	Topic  string
	Prompt string
	Type   string
}

type SampleOutput struct {
	Event     string
	Questions []SampledQuestion
}

type TickOutput struct {
	View    SessionView
	Expired bool
}

type ExitOutput struct {
	ConfirmationRequired bool
}

type CheatEntry struct {
	Prompt      string
	Answer      string
	Explanation string
}

type CheatSheetOutput struct {
	Event   string
	Entries []CheatEntry
}

type TopicSummaryOutput struct {
	Topic       string
	Attempted   int
	Correct     int
	AccuracyPct float64
}

type SummaryOutput struct {
	Event       string
	Mode        string
	Score       int
	Attempted   int
	HintsUsed   int
	Missed      int
	AccuracyPct float64
	Topics      []TopicSummaryOutput
	Advice      string
}
