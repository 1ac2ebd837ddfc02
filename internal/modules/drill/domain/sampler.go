package domain

import (
	"strings"

	"scidrill/internal/platform/random"
)

// AllTopics is the topic-selection sentinel meaning "draw from the whole
// event pool".
const AllTopics = "All Topics"

type SamplingPolicy string

const (
	// PolicyQuota shuffles each selected topic independently and takes at
	// most TopicQuota questions from it before the final shuffle.
	PolicyQuota SamplingPolicy = "quota"
	// PolicyFlat pools every question whose topic is selected, with no
	// per-topic cap.
	PolicyFlat SamplingPolicy = "flat"
)

type SampleSpec struct {
	Event      string
	Topics     []string
	Count      int
	Policy     SamplingPolicy
	TopicQuota int
}

// Sample selects and shuffles a bounded subset of the pool for one drill.
// The result is truncated to spec.Count when the candidate pool is larger; a
// shorter result is valid, not an error. Shuffling goes through src so tests
// can fix a seed.
func Sample(pool []Question, spec SampleSpec, src random.Source) []Question {
	eventPool := make([]Question, 0, len(pool))
	for _, q := range pool {
		if sameName(q.Event, spec.Event) {
			eventPool = append(eventPool, q)
		}
	}

	var candidates []Question
	if wantsAllTopics(spec.Topics) {
		candidates = eventPool
	} else if spec.Policy == PolicyFlat {
		for _, q := range eventPool {
			if topicSelected(q.Topic, spec.Topics) {
				candidates = append(candidates, q)
			}
		}
	} else {
		quota := spec.TopicQuota
		if quota <= 0 {
			quota = 5
		}
		for _, topic := range spec.Topics {
			matching := []Question{}
			for _, q := range eventPool {
				if sameName(q.Topic, topic) {
					matching = append(matching, q)
				}
			}
			src.Shuffle(len(matching), func(i, j int) {
				matching[i], matching[j] = matching[j], matching[i]
			})
			if len(matching) > quota {
				matching = matching[:quota]
			}
			candidates = append(candidates, matching...)
		}
	}

	selected := make([]Question, len(candidates))
	copy(selected, candidates)
	src.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	if spec.Count > 0 && len(selected) > spec.Count {
		selected = selected[:spec.Count]
	}
	return selected
}

func wantsAllTopics(topics []string) bool {
	if len(topics) == 0 {
		return true
	}
	for _, topic := range topics {
		if sameName(topic, AllTopics) {
			return true
		}
	}
	return false
}

func topicSelected(topic string, selected []string) bool {
	for _, s := range selected {
		if sameName(topic, s) {
			return true
		}
	}
	return false
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
