package domain

import "testing"

func TestNewTrimsAndInfersType(t *testing.T) {
	t.Parallel()
	q := New(" Astronomy ", " Stars ", " Which is hotter? ", " Blue ", []string{" Blue ", "Red", "  "}, " hint ", " because ")
	if q.Event != "Astronomy" || q.Topic != "Stars" || q.Prompt != "Which is hotter?" || q.Answer != "Blue" {
		t.Fatalf("cells not trimmed: %+v", q)
	}
	if len(q.Options) != 2 {
		t.Fatalf("empty options must be dropped, got %v", q.Options)
	}
	if q.Type != TypeMultipleChoice {
		t.Fatalf("expected multiple_choice, got %s", q.Type)
	}
	if q.Hint != "hint" || q.Explanation != "because" {
		t.Fatalf("hint/explanation not trimmed: %+v", q)
	}
}

func TestInferType(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		options []string
		want    QuestionType
	}{
		{"exact true false", []string{"True", "False"}, TypeTrueFalse},
		{"reversed true false", []string{"False", "True"}, TypeTrueFalse},
		{"lowercase is not true false", []string{"true", "false"}, TypeMultipleChoice},
		{"two options", []string{"Igneous", "Sedimentary"}, TypeMultipleChoice},
		{"four options", []string{"a", "b", "c", "d"}, TypeMultipleChoice},
		{"one option", []string{"only"}, TypeShortAnswer},
		{"no options", nil, TypeShortAnswer},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := InferType(tc.options); got != tc.want {
				t.Fatalf("InferType(%v) = %s, want %s", tc.options, got, tc.want)
			}
		})
	}
}

func TestTagged(t *testing.T) {
	t.Parallel()
	if (Question{Event: "Astronomy"}).Tagged() {
		t.Fatalf("missing topic must not count as tagged")
	}
	if (Question{Topic: "Stars"}).Tagged() {
		t.Fatalf("missing event must not count as tagged")
	}
	if !(Question{Event: "Astronomy", Topic: "Stars"}).Tagged() {
		t.Fatalf("tagged question reported untagged")
	}
}

func TestAggregateFoldsCaseInsensitively(t *testing.T) {
	t.Parallel()
	pool := []Question{
		{Event: "Astronomy", Topic: "Stars"},
		{Event: "astronomy", Topic: "stars"},
		{Event: "Astronomy", Topic: "Galaxies"},
		{Event: "Fossils", Topic: "Trilobites"},
	}
	entries := Aggregate(pool)
	if len(entries) != 3 {
		t.Fatalf("expected 3 catalog entries, got %d", len(entries))
	}
	if entries[0].Event != "Astronomy" || entries[0].Topic != "Stars" || entries[0].Questions != 2 {
		t.Fatalf("first-seen display name and count expected, got %+v", entries[0])
	}
	if entries[1].Topic != "Galaxies" || entries[2].Event != "Fossils" {
		t.Fatalf("load order must be preserved: %+v", entries)
	}
}
