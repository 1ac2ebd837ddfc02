package domain

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeShortAnswer    QuestionType = "short_answer"
)

// Question is the drill-side view of a bank record. The sequence a drill runs
// over is fixed at start and never mutated.
type Question struct {
	Event       string
	Topic       string
	Prompt      string
	Answer      string
	Options     []string
	Type        QuestionType
	Hint        string
	Explanation string
}

type Mode string

const (
	ModeStudy Mode = "study"
	ModeTimed Mode = "timed"
)

func (m Mode) Validate() error {
	switch m {
	case ModeStudy, ModeTimed:
		return nil
	default:
		return ErrUnknownMode
	}
}
