// Package config loads the engine's tunable constants from YAML,
// mirroring the teacher's plain-struct-plus-yaml.v3 loading style.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Parameters bundles every engine constant named in the driver contract:
// reliance factor, bag sizing, forgetting rate, admission thresholds, and
// the bounded-length caps that keep evidential bases and derivation
// chains from growing without limit.
type Parameters struct {
	Reliance float64 `yaml:"reliance"`

	ConceptBagCapacity int `yaml:"concept_bag_capacity"`
	ConceptBagLevels   int `yaml:"concept_bag_levels"`
	NovelBagCapacity   int `yaml:"novel_bag_capacity"`
	NovelBagLevels     int `yaml:"novel_bag_levels"`
	TaskLinkCapacity   int `yaml:"task_link_capacity"`
	TaskLinkLevels     int `yaml:"task_link_levels"`
	TermLinkCapacity   int `yaml:"term_link_capacity"`
	TermLinkLevels     int `yaml:"term_link_levels"`

	ForgettingRate float64 `yaml:"forgetting_rate"`

	AdmissionThreshold  float64 `yaml:"admission_threshold"`
	NovelTaskExpectation float64 `yaml:"novel_task_expectation"`
	NoiseLevel          float64 `yaml:"noise_level"`

	MaxEvidentialBaseLen int `yaml:"max_evidential_base_len"`
	MaxDerivationChainLen int `yaml:"max_derivation_chain_len"`

	MaxBeliefs   int `yaml:"max_beliefs"`
	MaxQuestions int `yaml:"max_questions"`
	MaxGoals     int `yaml:"max_goals"`

	RandomSeed uint64 `yaml:"random_seed"`
}

// Default returns the parameter set used when no config file is
// supplied, chosen to match the magnitudes used in spec.md's worked
// examples and the original engine's published constants.
func Default() Parameters {
	return Parameters{
		Reliance: 0.9,

		ConceptBagCapacity: 1000,
		ConceptBagLevels:   100,
		NovelBagCapacity:   100,
		NovelBagLevels:     100,
		TaskLinkCapacity:   20,
		TaskLinkLevels:     10,
		TermLinkCapacity:   20,
		TermLinkLevels:     10,

		ForgettingRate: 0.9,

		AdmissionThreshold:   0.15,
		NovelTaskExpectation: 0.66,
		NoiseLevel:           0.1,

		MaxEvidentialBaseLen:  20,
		MaxDerivationChainLen: 10,

		MaxBeliefs:   7,
		MaxQuestions: 5,
		MaxGoals:     7,

		RandomSeed: 1,
	}
}

// Load reads Parameters from a YAML file at path, starting from Default
// so an incomplete file only overrides the fields it sets.
func Load(path string) (Parameters, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Parameters{}, err
	}
	return p, nil
}
