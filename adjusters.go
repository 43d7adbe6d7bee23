package sentimently

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrRulesLoad is returned when an adjuster rules file cannot be read or parsed.
var ErrRulesLoad = errors.New("adjuster rules load failed")

// AdjusterRules holds the context words that modify the score of the word
// that follows them.
type AdjusterRules struct {
	negators     map[string]bool
	incrementors map[string]bool
	hybrid       map[string]bool
}

// AdjusterRulesFile is the shape of a rules file. JSON is accepted as well,
// since it is read with a YAML decoder.
type AdjusterRulesFile struct {
	Negators     []string `json:"negators" yaml:"negators"`
	Incrementors []string `json:"incrementors" yaml:"incrementors"`
	Hybrid       []string `json:"hybrid" yaml:"hybrid"`
}

var (
	defaultNegators = []string{
		"cant", "can't",
		"didnt", "didn't",
		"dont", "don't",
		"doesnt", "doesn't",
		"not", "non",
		"wont", "won't",
		"isnt", "isn't",
	}
	defaultIncrementors = []string{"very", "really"}
	defaultHybrid       = []string{"super", "extremely"}
)

// DefaultAdjusterRules returns the built-in English rule set.
func DefaultAdjusterRules() AdjusterRules {
	return NewAdjusterRules(defaultNegators, defaultIncrementors, defaultHybrid)
}

// NewAdjusterRules builds a rule set. Words are lowercased and trimmed.
func NewAdjusterRules(negators, incrementors, hybrid []string) AdjusterRules {
	return AdjusterRules{
		negators:     toSet(negators),
		incrementors: toSet(incrementors),
		hybrid:       toSet(hybrid),
	}
}

// LoadAdjusterRules reads a YAML or JSON rules file. A file that sets none of
// negators, incrementors or hybrid is rejected.
func LoadAdjusterRules(path string) (AdjusterRules, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return AdjusterRules{}, fmt.Errorf("%w: %w", ErrRulesLoad, err)
	}
	var f AdjusterRulesFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return AdjusterRules{}, fmt.Errorf("%w: error parsing %s: %w", ErrRulesLoad, path, err)
	}
	if f.Negators == nil && f.Incrementors == nil && f.Hybrid == nil {
		return AdjusterRules{}, fmt.Errorf("%w: %s has no negators, incrementors or hybrid list", ErrRulesLoad, path)
	}
	return NewAdjusterRules(f.Negators, f.Incrementors, f.Hybrid), nil
}

// IsNegator reports whether word flips the following score down by one.
func (r AdjusterRules) IsNegator(word string) bool {
	return r.negators[word]
}

// IsIncrementor reports whether word raises the following score by one.
func (r AdjusterRules) IsIncrementor(word string) bool {
	return r.incrementors[word]
}

// IsHybrid reports whether word doubles the following score.
func (r AdjusterRules) IsHybrid(word string) bool {
	return r.hybrid[word]
}

// IsAdjuster reports whether word belongs to any of the three sets.
func (r AdjusterRules) IsAdjuster(word string) bool {
	return r.IsNegator(word) || r.IsIncrementor(word) || r.IsHybrid(word)
}

// File returns the rules in their YAML file shape.
func (r AdjusterRules) File() AdjusterRulesFile {
	return AdjusterRulesFile{
		Negators:     sortedKeys(r.negators),
		Incrementors: sortedKeys(r.incrementors),
		Hybrid:       sortedKeys(r.hybrid),
	}
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if w = normalizeWord(w); w != "" {
			set[w] = true
		}
	}
	return set
}
