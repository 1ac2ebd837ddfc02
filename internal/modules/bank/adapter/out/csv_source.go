package out

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"scidrill/internal/modules/bank/domain"
	bankout "scidrill/internal/modules/bank/port/out"
)

const optionColumnPrefix = "options__"

// CSVQuestionSource reads and appends question rows in the flat drill format:
// event, topic, question, answer, a variable number of sparse options__N
// columns, and optional hint/explanation columns.
type CSVQuestionSource struct {
	path string
}

func NewCSVQuestionSource(path string) *CSVQuestionSource {
	return &CSVQuestionSource{path: path}
}

var _ bankout.QuestionSource = (*CSVQuestionSource)(nil)

type csvLayout struct {
	header  []string
	event   int
	topic   int
	prompt  int
	answer  int
	hint    int
	explain int
	options []int
}

func parseLayout(header []string) (csvLayout, error) {
	layout := csvLayout{header: header, event: -1, topic: -1, prompt: -1, answer: -1, hint: -1, explain: -1}
	type optionCol struct{ order, index int }
	optionCols := []optionCol{}
	for i, name := range header {
		name = strings.TrimSpace(name)
		switch {
		case name == "event":
			layout.event = i
		case name == "topic":
			layout.topic = i
		case name == "question":
			layout.prompt = i
		case name == "answer":
			layout.answer = i
		case name == "hint":
			layout.hint = i
		case name == "explanation":
			layout.explain = i
		case strings.HasPrefix(name, optionColumnPrefix):
			order, err := strconv.Atoi(strings.TrimPrefix(name, optionColumnPrefix))
			if err != nil {
				order = i
			}
			optionCols = append(optionCols, optionCol{order: order, index: i})
		}
	}
	for _, required := range []struct {
		index int
		name  string
	}{
		{layout.event, "event"},
		{layout.topic, "topic"},
		{layout.prompt, "question"},
		{layout.answer, "answer"},
	} {
		if required.index < 0 {
			return csvLayout{}, fmt.Errorf("missing required column %q", required.name)
		}
	}
	if len(optionCols) == 0 {
		return csvLayout{}, domain.ErrNoOptionColumns
	}
	sort.Slice(optionCols, func(i, j int) bool { return optionCols[i].order < optionCols[j].order })
	for _, col := range optionCols {
		layout.options = append(layout.options, col.index)
	}
	return layout, nil
}

func (s *CSVQuestionSource) Load(_ context.Context) ([]domain.Question, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open question data: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read question data: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoQuestionData
	}
	layout, err := parseLayout(rows[0])
	if err != nil {
		return nil, fmt.Errorf("question data %s: %w", s.path, err)
	}

	questions := make([]domain.Question, 0, len(rows)-1)
	for _, row := range rows[1:] {
		options := make([]string, 0, len(layout.options))
		for _, idx := range layout.options {
			options = append(options, cell(row, idx))
		}
		q := domain.New(
			cell(row, layout.event),
			cell(row, layout.topic),
			cell(row, layout.prompt),
			cell(row, layout.answer),
			options,
			cell(row, layout.hint),
			cell(row, layout.explain),
		)
		if !q.Tagged() {
			continue
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// Append adds rows to the existing file, fitting each question into the
// file's option columns. A missing file is created with a default layout.
func (s *CSVQuestionSource) Append(ctx context.Context, questions []domain.Question) error {
	if len(questions) == 0 {
		return nil
	}
	layout, err := s.appendLayout(ctx, questions)
	if err != nil {
		return err
	}
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open question data for append: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return err
		}
		if len(q.Options) > len(layout.options) {
			return fmt.Errorf("question %q has %d options but the data file only has %d option columns", q.Prompt, len(q.Options), len(layout.options))
		}
		row := make([]string, len(layout.header))
		row[layout.event] = q.Event
		row[layout.topic] = q.Topic
		row[layout.prompt] = q.Prompt
		row[layout.answer] = q.Answer
		if layout.hint >= 0 {
			row[layout.hint] = q.Hint
		}
		if layout.explain >= 0 {
			row[layout.explain] = q.Explanation
		}
		for i, opt := range q.Options {
			row[layout.options[i]] = opt
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("append question row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush question rows: %w", err)
	}
	return nil
}

func (s *CSVQuestionSource) appendLayout(_ context.Context, questions []domain.Question) (csvLayout, error) {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return s.createWithLayout(questions)
	}
	if err != nil {
		return csvLayout{}, fmt.Errorf("open question data: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return csvLayout{}, fmt.Errorf("read question data header: %w", err)
	}
	layout, err := parseLayout(header)
	if err != nil {
		return csvLayout{}, fmt.Errorf("question data %s: %w", s.path, err)
	}
	return layout, nil
}

func (s *CSVQuestionSource) createWithLayout(questions []domain.Question) (csvLayout, error) {
	maxOptions := 2
	for _, q := range questions {
		if len(q.Options) > maxOptions {
			maxOptions = len(q.Options)
		}
	}
	header := []string{"event", "topic", "question", "answer", "hint", "explanation"}
	for i := 1; i <= maxOptions; i++ {
		header = append(header, fmt.Sprintf("%s%03d", optionColumnPrefix, i))
	}
	file, err := os.Create(s.path)
	if err != nil {
		return csvLayout{}, fmt.Errorf("create question data: %w", err)
	}
	defer func() { _ = file.Close() }()
	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return csvLayout{}, fmt.Errorf("write question data header: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return csvLayout{}, fmt.Errorf("flush question data header: %w", err)
	}
	return parseLayout(header)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
