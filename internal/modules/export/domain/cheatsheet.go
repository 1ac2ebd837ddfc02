package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCheatSheet = errors.New("cheat sheet is empty")
	ErrUnknownFormat   = errors.New("unknown export format")
)

type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
)

func (f Format) Validate() error {
	switch f {
	case FormatText, FormatMarkdown:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

func (f Format) Extension() string {
	return "." + string(f)
}

// Entry is one missed question destined for the cheat sheet.
type Entry struct {
	Prompt      string
	Answer      string
	Explanation string
}

// Phrase prefers the explanation and falls back to a Q/A pair.
func (e Entry) Phrase() string {
	if strings.TrimSpace(e.Explanation) != "" {
		return e.Explanation
	}
	return fmt.Sprintf("Q: %s\nA: %s", e.Prompt, e.Answer)
}

// Render produces the cheat sheet body: one dashed entry per missed
// question, double-newline separated. The text and markdown variants share
// this list shape.
func Render(entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", ErrEmptyCheatSheet
	}
	builder := strings.Builder{}
	for _, entry := range entries {
		builder.WriteString("- ")
		builder.WriteString(entry.Phrase())
		builder.WriteString("\n\n")
	}
	return builder.String(), nil
}

// Filename follows the <Prefix>_<Event>_CheatSheet.<ext> pattern.
func Filename(prefix, event string, format Format) string {
	return fmt.Sprintf("%s_%s_CheatSheet%s", prefix, event, format.Extension())
}
