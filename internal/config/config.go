// Package config loads the sentimently CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/sentimently"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file looked up in the user config directory.
	FileName = "config.yaml"

	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the settings shared by all CLI commands. Command-line flags
// take precedence over values read from the file.
type Config struct {
	Lexicon   string   `yaml:"lexicon,omitempty"`
	Rules     string   `yaml:"rules,omitempty"`
	Lemmas    string   `yaml:"lemmas,omitempty"`
	Strategy  string   `yaml:"strategy,omitempty"`
	Language  string   `yaml:"language,omitempty"`
	StopWords bool     `yaml:"stopwords,omitempty"`
	Fold      bool     `yaml:"fold,omitempty"`
	LogLevel  string   `yaml:"log_level,omitempty"`
	Format    string   `yaml:"format,omitempty"`
	Overrides []string `yaml:"overrides,omitempty"`
	Workers   int      `yaml:"workers,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Strategy: string(sentimently.StrategyTagged),
		Language: string(sentimently.English),
		LogLevel: "info",
		Format:   FormatJSON,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/sentimently/config.yaml or its
// platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "sentimently", FileName)
}

// Load reads path on top of Default. A missing file is not an error when
// optional is true.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated fields and the override syntax.
func (c *Config) Validate() error {
	if _, err := sentimently.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err := sentimently.ParseLanguage(c.Language); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "", FormatJSON, FormatYAML, "yml":
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if _, err := c.Weights(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Weights parses Overrides.
func (c *Config) Weights() ([]sentimently.WeightOverride, error) {
	out := make([]sentimently.WeightOverride, 0, len(c.Overrides))
	for _, s := range c.Overrides {
		w, err := sentimently.ParseWeightOverride(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// ScorerOpts translates the configuration into scorer options. It fails if
// the rules or lemma files cannot be loaded.
func (c *Config) ScorerOpts() ([]sentimently.ScorerOpt, error) {
	strategy, err := sentimently.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	lang, err := sentimently.ParseLanguage(c.Language)
	if err != nil {
		return nil, err
	}
	weights, err := c.Weights()
	if err != nil {
		return nil, err
	}

	opts := []sentimently.ScorerOpt{
		sentimently.WithStrategy(strategy),
		sentimently.WithLanguage(lang),
		sentimently.WithStopWords(c.StopWords),
		sentimently.WithFolding(c.Fold),
		sentimently.WithWeights(weights...),
	}
	if c.Lexicon != "" {
		opts = append(opts, sentimently.WithLexiconFile(c.Lexicon))
	}
	if c.Rules != "" {
		rules, err := sentimently.LoadAdjusterRules(c.Rules)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sentimently.WithRules(rules))
	}
	if c.Lemmas != "" {
		dict, err := sentimently.LoadDictionaryLemmatizer(c.Lemmas)
		if err != nil {
			return nil, err
		}
		tagger := sentimently.NewLemmaTagger(dict, sentimently.StemLemmatizer{Language: lang})
		opts = append(opts, sentimently.WithTagger(tagger))
	}
	if c.Workers > 0 {
		opts = append(opts, sentimently.WithConcurrency(c.Workers))
	}
	return opts, nil
}
