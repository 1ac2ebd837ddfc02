package out

import (
	"strings"
	"testing"

	"scidrill/internal/modules/bank/domain"
)

func TestAssembleQuestions(t *testing.T) {
	t.Parallel()
	lines := []string{
		"Astronomy Invitational 2026",
		"1. Which planet is known as",
		"the Red Planet?",
		"a) Venus",
		"b) Mars",
		"c) Jupiter",
		"Answer: b",
		"2) Is the Sun a star?",
		"a) True",
		"b) False",
		"ANSWER: a",
	}
	questions, err := assemble(lines, "Astronomy", "Planets")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	first := questions[0]
	if first.Prompt != "Which planet is known as the Red Planet?" {
		t.Fatalf("prompt continuation lost: %q", first.Prompt)
	}
	if first.Answer != "Mars" {
		t.Fatalf("answer letter must resolve to the option text, got %q", first.Answer)
	}
	if first.Event != "Astronomy" || first.Topic != "Planets" {
		t.Fatalf("imported tags lost: %+v", first)
	}
	if first.Type != domain.TypeMultipleChoice {
		t.Fatalf("expected multiple_choice, got %s", first.Type)
	}
	if questions[1].Answer != "True" {
		t.Fatalf("case-insensitive answer key failed: %q", questions[1].Answer)
	}
}

func TestAssembleMissingAnswerKey(t *testing.T) {
	t.Parallel()
	lines := []string{
		"1. Orphan question?",
		"a) Yes",
		"b) No",
	}
	if _, err := assemble(lines, "Astronomy", "Planets"); err == nil || !strings.Contains(err.Error(), "no answer key") {
		t.Fatalf("expected missing answer key error, got %v", err)
	}
}

func TestAssembleAnswerKeyOutOfRange(t *testing.T) {
	t.Parallel()
	lines := []string{
		"1. One option only?",
		"a) Yes",
		"Answer: c",
	}
	if _, err := assemble(lines, "Astronomy", "Planets"); err == nil || !strings.Contains(err.Error(), "no matching option") {
		t.Fatalf("expected out-of-range answer key error, got %v", err)
	}
}

func TestAssembleNoQuestions(t *testing.T) {
	t.Parallel()
	if _, err := assemble([]string{"just a title page"}, "Astronomy", "Planets"); err == nil {
		t.Fatalf("expected error for a pdf with no questions")
	}
}
