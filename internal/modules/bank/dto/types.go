package dto

type QuestionOutput struct {
	Event       string
	Topic       string
	Prompt      string
	Answer      string
	Options     []string
	Type        string
	Hint        string
	Explanation string
}

type LoadOutput struct {
	Questions int
	Events    int
}

type EventOutput struct {
	Name      string
	Topics    int
	Questions int
}

type TopicOutput struct {
	Name      string
	Questions int
}

type ImportPDFInput struct {
	Path  string
	Event string
	Topic string
}

type ImportOutput struct {
	Imported int
}
