package domain

import (
	"testing"

	"scidrill/internal/platform/random"
)

func samplePool() []Question {
	pool := []Question{}
	topics := []string{"Stars", "Galaxies", "Planets"}
	prompts := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, topic := range topics {
		for _, p := range prompts {
			pool = append(pool, Question{Event: "Astronomy", Topic: topic, Prompt: topic + "-" + p, Answer: "x"})
		}
	}
	pool = append(pool, Question{Event: "Fossils", Topic: "Trilobites", Prompt: "other-event", Answer: "x"})
	return pool
}

func TestSampleFiltersByEvent(t *testing.T) {
	t.Parallel()
	got := Sample(samplePool(), SampleSpec{Event: "astronomy ", Count: 100}, random.NewMathSource(1))
	if len(got) != 21 {
		t.Fatalf("expected the full event pool, got %d", len(got))
	}
	for _, q := range got {
		if q.Event != "Astronomy" {
			t.Fatalf("foreign event leaked into the sample: %+v", q)
		}
	}
}

func TestSampleQuotaCapsPerTopic(t *testing.T) {
	t.Parallel()
	spec := SampleSpec{
		Event:      "Astronomy",
		Topics:     []string{"Stars", "Galaxies"},
		Count:      100,
		Policy:     PolicyQuota,
		TopicQuota: 5,
	}
	got := Sample(samplePool(), spec, random.NewMathSource(7))
	if len(got) != 10 {
		t.Fatalf("expected 5 per topic across 2 topics, got %d", len(got))
	}
	perTopic := map[string]int{}
	for _, q := range got {
		perTopic[q.Topic]++
	}
	for topic, n := range perTopic {
		if n > 5 {
			t.Fatalf("topic %s exceeded quota: %d", topic, n)
		}
	}
	if perTopic["Planets"] != 0 {
		t.Fatalf("unselected topic leaked into the sample")
	}
}

func TestSampleFlatIgnoresQuota(t *testing.T) {
	t.Parallel()
	spec := SampleSpec{
		Event:      "Astronomy",
		Topics:     []string{"Stars"},
		Count:      100,
		Policy:     PolicyFlat,
		TopicQuota: 5,
	}
	got := Sample(samplePool(), spec, random.NewMathSource(7))
	if len(got) != 7 {
		t.Fatalf("flat policy must take the whole topic, got %d", len(got))
	}
}

func TestSampleAllTopicsSentinel(t *testing.T) {
	t.Parallel()
	spec := SampleSpec{
		Event:  "Astronomy",
		Topics: []string{"Stars", AllTopics},
		Count:  100,
		Policy: PolicyQuota,
	}
	got := Sample(samplePool(), spec, random.NewMathSource(3))
	if len(got) != 21 {
		t.Fatalf("the sentinel must widen the sample to the whole event, got %d", len(got))
	}
}

func TestSampleTruncatesToCount(t *testing.T) {
	t.Parallel()
	got := Sample(samplePool(), SampleSpec{Event: "Astronomy", Count: 4}, random.NewMathSource(9))
	if len(got) != 4 {
		t.Fatalf("expected truncation to 4, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, q := range got {
		if seen[q.Prompt] {
			t.Fatalf("duplicate question in sample: %s", q.Prompt)
		}
		seen[q.Prompt] = true
	}
}

func TestSampleShortPoolIsNotAnError(t *testing.T) {
	t.Parallel()
	spec := SampleSpec{Event: "Fossils", Topics: []string{"Trilobites"}, Count: 10, Policy: PolicyQuota}
	got := Sample(samplePool(), spec, random.NewMathSource(2))
	if len(got) != 1 {
		t.Fatalf("a short pool yields a short drill, got %d", len(got))
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	t.Parallel()
	spec := SampleSpec{Event: "Astronomy", Count: 10}
	first := Sample(samplePool(), spec, random.NewMathSource(42))
	second := Sample(samplePool(), spec, random.NewMathSource(42))
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Prompt != second[i].Prompt {
			t.Fatalf("same seed must give the same sequence, diverged at %d", i)
		}
	}
}

func TestSampleUnknownTopicYieldsEmpty(t *testing.T) {
	t.Parallel()
	spec := SampleSpec{Event: "Astronomy", Topics: []string{"Black Holes"}, Count: 10, Policy: PolicyQuota}
	if got := Sample(samplePool(), spec, random.NewMathSource(5)); len(got) != 0 {
		t.Fatalf("unknown topic must yield an empty sample, got %d", len(got))
	}
}
