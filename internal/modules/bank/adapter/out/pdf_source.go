package out

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"rsc.io/pdf"

	"scidrill/internal/modules/bank/domain"
	bankout "scidrill/internal/modules/bank/port/out"
)

// PDFQuestionParser extracts drill questions from exam PDFs laid out as
// numbered questions with lettered options and an answer key line:
//
//	12. Which planet is known as the Red Planet?
//	a) Venus
//	b) Mars
//	Answer: b
type PDFQuestionParser struct{}

func NewPDFQuestionParser() *PDFQuestionParser {
	return &PDFQuestionParser{}
}

var _ bankout.QuestionParser = (*PDFQuestionParser)(nil)

var (
	questionPattern = regexp.MustCompile(`^(\d+)[.)]\s+(.+)$`)
	optionPattern   = regexp.MustCompile(`^([a-f])\)\s*(.+)$`)
	answerPattern   = regexp.MustCompile(`(?i)^answer:\s*([a-f])\s*$`)
)

func (p *PDFQuestionParser) Parse(_ context.Context, path, event, topic string) ([]domain.Question, error) {
	if strings.TrimSpace(event) == "" || strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("pdf import requires an event and a topic")
	}
	doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	lines := []string{}
	for pageNum := 1; pageNum <= doc.NumPage(); pageNum++ {
		page := doc.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		lines = append(lines, pageLines(page)...)
	}
	return assemble(lines, event, topic)
}

// pageLines rebuilds text lines from positioned runs: group by Y, order top
// to bottom, runs left to right within a line.
func pageLines(page pdf.Page) []string {
	content := page.Content()
	byY := map[float64][]pdf.Text{}
	ys := []float64{}
	for _, text := range content.Text {
		if strings.TrimSpace(text.S) == "" {
			continue
		}
		if _, ok := byY[text.Y]; !ok {
			ys = append(ys, text.Y)
		}
		byY[text.Y] = append(byY[text.Y], text)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ys)))
	lines := make([]string, 0, len(ys))
	for _, y := range ys {
		runs := byY[y]
		sort.Slice(runs, func(i, j int) bool { return runs[i].X < runs[j].X })
		parts := make([]string, 0, len(runs))
		for _, run := range runs {
			parts = append(parts, run.S)
		}
		lines = append(lines, strings.TrimSpace(strings.Join(parts, "")))
	}
	return lines
}

type rawQuestion struct {
	prompt  string
	options []string
	answer  string
}

func assemble(lines []string, event, topic string) ([]domain.Question, error) {
	questions := []domain.Question{}
	var current *rawQuestion

	flush := func() error {
		if current == nil {
			return nil
		}
		if current.answer == "" {
			return fmt.Errorf("question %q has no answer key line", current.prompt)
		}
		questions = append(questions, domain.New(event, topic, current.prompt, current.answer, current.options, "", ""))
		current = nil
		return nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := questionPattern.FindStringSubmatch(line); m != nil {
			if err := flush(); err != nil {
				return nil, err
			}
			current = &rawQuestion{prompt: strings.TrimSpace(m[2])}
			continue
		}
		if current == nil {
			continue
		}
		if m := answerPattern.FindStringSubmatch(line); m != nil {
			letter := strings.ToLower(m[1])
			idx := int(letter[0] - 'a')
			if idx >= len(current.options) {
				return nil, fmt.Errorf("question %q: answer key %q has no matching option", current.prompt, letter)
			}
			current.answer = current.options[idx]
			continue
		}
		if m := optionPattern.FindStringSubmatch(line); m != nil {
			current.options = append(current.options, strings.TrimSpace(m[2]))
			continue
		}
		// continuation of the prompt before any option appeared
		if len(current.options) == 0 && current.answer == "" {
			current.prompt += " " + line
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions recognized in pdf")
	}
	return questions, nil
}
