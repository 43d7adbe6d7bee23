package sentimently

import (
	"fmt"
	"strconv"
	"strings"
)

// A Token represents an individual scoring unit of a phrase.
type Token struct {
	Text string `json:"text" yaml:"text"`                   // The token's lowercased surface form.
	Tag  string `json:"tag,omitempty" yaml:"tag,omitempty"` // The token's lemma or tag, if any.
	Word string `json:"word" yaml:"word"`                   // The form used for lexicon lookup.
}

// HasTag reports whether the token carries a tag that differs from its surface form.
func (t Token) HasTag() bool {
	return t.Tag != "" && t.Tag != t.Text
}

// WeightOverride injects or replaces the score of a single word.
type WeightOverride struct {
	Word  string `json:"word" yaml:"word"`
	Score int    `json:"score" yaml:"score"`
}

// ParseWeightOverride parses "word=score" into a WeightOverride.
func ParseWeightOverride(s string) (WeightOverride, error) {
	word, score, ok := strings.Cut(s, "=")
	word = normalizeWord(word)
	if !ok || word == "" {
		return WeightOverride{}, fmt.Errorf("invalid weight override %q: expected word=score", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(score))
	if err != nil {
		return WeightOverride{}, fmt.Errorf("invalid weight override %q: %w", s, err)
	}
	return WeightOverride{Word: word, Score: n}, nil
}

// AnalysisResult summarizes the sentiment of a single phrase.
type AnalysisResult struct {
	Phrase      string   `json:"phrase" yaml:"phrase"`
	Score       int      `json:"score" yaml:"score"`             // Sum of adjusted token scores.
	Comparative float64  `json:"comparative" yaml:"comparative"` // Score divided by token count.
	Positive    []string `json:"positive" yaml:"positive"`
	Negative    []string `json:"negative" yaml:"negative"`
	Tokens      []Token  `json:"tokens" yaml:"tokens"`
}

// Polarity returns the coarse class of the result.
func (r AnalysisResult) Polarity() Polarity {
	return Classify(r.Comparative)
}

func emptyResult(phrase string) AnalysisResult {
	return AnalysisResult{
		Phrase:   phrase,
		Positive: []string{},
		Negative: []string{},
		Tokens:   []Token{},
	}
}

// Polarity represents coarse sentiment categories.
type Polarity int

const (
	Negative Polarity = -1
	Neutral  Polarity = 0
	Positive Polarity = 1
)

var polarityNames = map[Polarity]string{
	Negative: "negative",
	Neutral:  "neutral",
	Positive: "positive",
}

// String returns the name of the polarity.
func (p Polarity) String() string {
	if name, ok := polarityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Polarity(%d)", int(p))
}

// MarshalText encodes the polarity as its name.
func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a polarity name.
func (p *Polarity) UnmarshalText(text []byte) error {
	for k, v := range polarityNames {
		if v == strings.ToLower(string(text)) {
			*p = k
			return nil
		}
	}
	return fmt.Errorf("unknown polarity: %q", string(text))
}

// Classify maps a comparative score onto a Polarity.
func Classify(comparative float64) Polarity {
	switch {
	case comparative > 0:
		return Positive
	case comparative < 0:
		return Negative
	default:
		return Neutral
	}
}

// Language represents supported languages.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
	German  Language = "de"
)

// snowballName returns the stemmer name used by the snowball package.
func (l Language) snowballName() string {
	switch l {
	case Spanish:
		return "spanish"
	case French:
		return "french"
	case German:
		// snowball has no German stemmer; fall back to English rules.
		return "english"
	default:
		return "english"
	}
}

// ParseLanguage converts an ISO 639-1 code or English name into a Language.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "en", "english":
		return English, nil
	case "es", "spanish":
		return Spanish, nil
	case "fr", "french":
		return French, nil
	case "de", "german":
		return German, nil
	default:
		return "", fmt.Errorf("language %s is not supported. Supported languages: %v",
			s, SupportedLanguages())
	}
}

// SupportedLanguages returns all supported languages.
func SupportedLanguages() []Language {
	return []Language{English, Spanish, French, German}
}

// Strategy selects how phrases are split into tokens.
type Strategy string

const (
	// StrategyPlain strips punctuation and splits on spaces.
	StrategyPlain Strategy = "plain"
	// StrategyTagged uses a Tagger and prefers a stronger-scoring lemma.
	StrategyTagged Strategy = "tagged"
)

// ParseStrategy converts a strategy name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyTagged:
		return StrategyTagged, nil
	case StrategyPlain:
		return StrategyPlain, nil
	default:
		return "", fmt.Errorf("unknown tokenization strategy %q", s)
	}
}

func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
