package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoOptionColumns = errors.New("question data has no options__ columns")
	ErrNoQuestionData  = errors.New("question data is empty")
)

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeShortAnswer    QuestionType = "short_answer"
)

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

// New trims all cells, drops empty options, and infers the question type.
func New(event, topic, prompt, answer string, options []string, hint, explanation string) Question {
	cleaned := make([]string, 0, len(options))
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		cleaned = append(cleaned, opt)
	}
	return Question{
		Event:       strings.TrimSpace(event),
		Topic:       strings.TrimSpace(topic),
		Prompt:      strings.TrimSpace(prompt),
		Answer:      strings.TrimSpace(answer),
		Options:     cleaned,
		Type:        InferType(cleaned),
		Hint:        strings.TrimSpace(hint),
		Explanation: strings.TrimSpace(explanation),
	}
}

// InferType derives the question type from the option list: exactly
// {True, False} is true/false, any other multi-option set is multiple choice,
// everything else is short answer.
func InferType(options []string) QuestionType {
	if len(options) == 2 {
		seen := map[string]bool{}
		for _, opt := range options {
			seen[opt] = true
		}
		if seen["True"] && seen["False"] {
			return TypeTrueFalse
		}
	}
	if len(options) > 1 {
		return TypeMultipleChoice
	}
	return TypeShortAnswer
}

// Tagged reports whether the record carries the event and topic tags drills
// filter on. Untagged rows are dropped at load time.
func (q Question) Tagged() bool {
	return q.Event != "" && q.Topic != ""
}

func (q Question) Validate() error {
	if q.Event == "" {
		return fmt.Errorf("question event is required")
	}
	if q.Topic == "" {
		return fmt.Errorf("question topic is required")
	}
	if q.Prompt == "" {
		return fmt.Errorf("question prompt is required")
	}
	if q.Answer == "" {
		return fmt.Errorf("question answer is required")
	}
	return nil
}

// CatalogEntry is one (event, topic) aggregate projected into the index.
type CatalogEntry struct {
	Event     string
	Topic     string
	Questions int
}

type EventSummary struct {
	Event     string
	Topics    int
	Questions int
}

type TopicSummary struct {
	Topic     string
	Questions int
}

// Aggregate folds a question pool into catalog entries, preserving first-seen
// display names per (event, topic) pair.
func Aggregate(pool []Question) []CatalogEntry {
	type key struct{ event, topic string }
	counts := map[key]*CatalogEntry{}
	order := []key{}
	for _, q := range pool {
		k := key{strings.ToLower(q.Event), strings.ToLower(q.Topic)}
		entry, ok := counts[k]
		if !ok {
			entry = &CatalogEntry{Event: q.Event, Topic: q.Topic}
			counts[k] = entry
			order = append(order, k)
		}
		entry.Questions++
	}
	out := make([]CatalogEntry, 0, len(order))
	for _, k := range order {
		out = append(out, *counts[k])
	}
	return out
}
