package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	PolicyQuota = "quota"
	PolicyFlat  = "flat"

	CheatOnReveal = "on_reveal"
	CheatOnMiss   = "on_miss"
)

// Drill holds the tunable behavior of a practice session. Defaults match the
// classic behavior: quota sampling capped at 5 per topic, 10 questions per
// drill, 60 seconds per timed question, misses collected on reveal.
type Drill struct {
	SamplingPolicy   string `yaml:"sampling_policy"`
	TopicQuota       int    `yaml:"topic_quota"`
	QuestionCount    int    `yaml:"question_count"`
	QuestionSeconds  int    `yaml:"question_seconds"`
	CheatSheetPolicy string `yaml:"cheat_sheet_policy"`
	ExportPrefix     string `yaml:"export_prefix"`
	ExportDir        string `yaml:"export_dir"`
}

type Config struct {
	DataPath string
	CSVPath  string
	DBPath   string
	Drill    Drill
}

// New derives all paths from the data directory and overlays scidrill.yaml
// when one exists there.
func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	cfg := Config{
		DataPath: dataPath,
		CSVPath:  filepath.Join(dataPath, "questions_full.csv"),
		DBPath:   filepath.Join(dataPath, ".scidrill", "catalog.db"),
		Drill: Drill{
			SamplingPolicy:   PolicyQuota,
			TopicQuota:       5,
			QuestionCount:    10,
			QuestionSeconds:  60,
			CheatSheetPolicy: CheatOnReveal,
			ExportPrefix:     "SciOly",
			ExportDir:        dataPath,
		},
	}
	overlay := filepath.Join(dataPath, "scidrill.yaml")
	raw, err := os.ReadFile(overlay)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config overlay: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg.Drill); err != nil {
		return Config{}, fmt.Errorf("unmarshal config overlay: %w", err)
	}
	if err := cfg.Drill.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (d Drill) validate() error {
	switch d.SamplingPolicy {
	case PolicyQuota, PolicyFlat:
	default:
		return fmt.Errorf("sampling_policy must be %q or %q, got %q", PolicyQuota, PolicyFlat, d.SamplingPolicy)
	}
	switch d.CheatSheetPolicy {
	case CheatOnReveal, CheatOnMiss:
	default:
		return fmt.Errorf("cheat_sheet_policy must be %q or %q, got %q", CheatOnReveal, CheatOnMiss, d.CheatSheetPolicy)
	}
	if d.TopicQuota <= 0 {
		return fmt.Errorf("topic_quota must be positive, got %d", d.TopicQuota)
	}
	if d.QuestionCount <= 0 {
		return fmt.Errorf("question_count must be positive, got %d", d.QuestionCount)
	}
	if d.QuestionSeconds <= 0 {
		return fmt.Errorf("question_seconds must be positive, got %d", d.QuestionSeconds)
	}
	return nil
}
