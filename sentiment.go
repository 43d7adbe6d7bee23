package sentimently

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

// A ScorerOpt represents a setting that changes how a Scorer is built.
//
// For example, it might switch to the plain tokenizer:
//
//	s := sentimently.NewScorer(sentimently.WithStrategy(sentimently.StrategyPlain))
type ScorerOpt func(opts *ScorerOpts)

// ScorerOpts controls Scorer construction:
type ScorerOpts struct {
	Lexicon     *Lexicon         // Base lexicon; DefaultLexicon when nil and no Loader
	Loader      LexiconLoader    // Lexicon source, takes precedence over Lexicon
	Weights     []WeightOverride // Merged into the base lexicon once
	Rules       *AdjusterRules   // Adjuster rules; DefaultAdjusterRules when nil
	Strategy    Strategy         // Tokenization strategy
	Tagger      Tagger           // Tagger for StrategyTagged
	Language    Language         // Stemmer, stop word and folding language
	StopWords   bool             // If true, drop neutral stop words before scoring
	Fold        bool             // If true, fold accents before tokenizing
	Logger      *slog.Logger     // Logger for construction-time problems
	Concurrency int              // Worker limit for ScoreAll
}

// WithLexicon sets the base lexicon.
func WithLexicon(lex *Lexicon) ScorerOpt {
	return func(opts *ScorerOpts) {
		opts.Lexicon = lex
	}
}

// WithLexiconLoader loads the base lexicon from loader.
func WithLexiconLoader(loader LexiconLoader) ScorerOpt {
	return func(opts *ScorerOpts) {
		opts.Loader = loader
	}
}

// WithLexiconFile loads the base lexicon from a JSON word list.
func WithLexiconFile(path string) ScorerOpt {
	return WithLexiconLoader(FileLoader{Path: path})
}

// WithWeights injects weights into the base lexicon for the Scorer's lifetime.
func WithWeights(weights ...WeightOverride) ScorerOpt {
	return func(opts *ScorerOpts) {
		opts.Weights = append(opts.Weights, weights...)
	}
}

// WithRules replaces the default adjuster rules.
func WithRules(rules AdjusterRules) ScorerOpt {
	return func(opts *ScorerOpts) {
		opts.Rules = &rules
	}
}

// WithStrategy selects the tokenization strategy.
func WithStrategy(strategy Strategy) ScorerOpt {
	return func(opts *ScorerOpts) {
		opts.Strategy = strategy
	}
}

// WithTagger sets the Tagger used by StrategyTagged.
func WithTagger(tagger Tagger) ScorerOpt {
	return func(opts *ScorerOpts) {
		opts.Tagger = tagger
	}
}

// WithLanguage sets the language.
func WithLanguage(lang Language) ScorerOpt {
	return func(opts *ScorerOpts) {
		opts.Language = lang
	}
}

// WithStopWords can enable or disable (the default) stop word removal.
func WithStopWords(include bool) ScorerOpt {
	return func(opts *ScorerOpts) {
		opts.StopWords = include
	}
}

// WithFolding can enable or disable (the default) accent folding.
func WithFolding(include bool) ScorerOpt {
	return func(opts *ScorerOpts) {
		opts.Fold = include
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ScorerOpt {
	return func(opts *ScorerOpts) {
		opts.Logger = logger
	}
}

// WithConcurrency limits the number of phrases ScoreAll scores at once.
func WithConcurrency(n int) ScorerOpt {
	return func(opts *ScorerOpts) {
		opts.Concurrency = n
	}
}

const defaultConcurrency = 8

// Scorer scores phrases against a fixed lexicon and rule set. It is safe for
// concurrent use.
type Scorer struct {
	lexicon   *Lexicon
	rules     AdjusterRules
	tokenizer Tokenizer
	stop      *stopWordFilter
	language  Language
	fold      bool
	workers   int
	logger    *slog.Logger
}

// NewScorer creates a Scorer according to the user-specified options.
//
// A lexicon that fails to load is logged once and replaced by an empty one,
// so every later score is neutral.
func NewScorer(opts ...ScorerOpt) *Scorer {
	base := ScorerOpts{
		Strategy:    StrategyTagged,
		Language:    English,
		Concurrency: defaultConcurrency,
	}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.Logger == nil {
		base.Logger = slog.Default()
	}
	if base.Language == "" {
		base.Language = English
	}
	if base.Concurrency < 1 {
		base.Concurrency = 1
	}

	lex := base.Lexicon
	switch {
	case base.Loader != nil:
		loaded, err := LoadLexicon(base.Loader)
		if err != nil {
			base.Logger.Error("scoring with empty lexicon", "error", err)
			loaded = EmptyLexicon()
		}
		lex = loaded
	case lex == nil:
		lex = DefaultLexicon()
	}
	lex = lex.Merge(base.Weights...).flatten()

	rules := DefaultAdjusterRules()
	if base.Rules != nil {
		rules = *base.Rules
	}

	tagger := base.Tagger
	if tagger == nil {
		tagger = NewStemTagger(base.Language)
	}

	s := &Scorer{
		lexicon:   lex,
		rules:     rules,
		tokenizer: NewTokenizer(base.Strategy, tagger),
		language:  base.Language,
		fold:      base.Fold,
		workers:   base.Concurrency,
		logger:    base.Logger,
	}
	if base.StopWords {
		s.stop = &stopWordFilter{language: base.Language}
	}
	s.logger.Debug("scorer ready",
		"words", lex.Len(), "strategy", base.Strategy, "language", base.Language)
	return s
}

// Lexicon returns the Scorer's base lexicon.
func (s *Scorer) Lexicon() *Lexicon {
	return s.lexicon
}

// Rules returns the Scorer's adjuster rules.
func (s *Scorer) Rules() AdjusterRules {
	return s.rules
}

// Score analyzes phrase. The overrides apply to this call only.
func (s *Scorer) Score(phrase string, overrides ...WeightOverride) AnalysisResult {
	return s.score(phrase, s.lexicon.Merge(overrides...))
}

func (s *Scorer) score(phrase string, lex *Lexicon) AnalysisResult {
	out := emptyResult(phrase)
	if strings.TrimSpace(phrase) == "" {
		return out
	}

	text := phrase
	if s.fold {
		text = FoldText(s.language, text)
	}
	tokens := s.tokenizer.Tokenize(text, lex)
	if s.stop != nil {
		tokens = s.stop.filter(tokens, lex, s.rules)
	}
	if len(tokens) == 0 {
		return out
	}

	out.Tokens = tokens
	for i, token := range tokens {
		adjusted := s.adjust(tokens, i, lex)
		if adjusted > 0 {
			out.Positive = append(out.Positive, token.Text)
		} else if adjusted < 0 {
			out.Negative = append(out.Negative, token.Text)
		}
		out.Score += adjusted
	}
	out.Comparative = float64(out.Score) / float64(len(tokens))
	return out
}

// adjust returns the score of the token at position after applying the
// previous token's negator, incrementor and hybrid effects. Words without a
// lexicon weight stay neutral whatever precedes them.
func (s *Scorer) adjust(tokens []Token, position int, lex *Lexicon) int {
	base := lex.Score(tokens[position].Word)
	if base == 0 || position == 0 {
		return base
	}

	prev := tokens[position-1].Text
	adjusted := base
	if s.rules.IsNegator(prev) {
		adjusted--
	}
	if s.rules.IsIncrementor(prev) {
		adjusted++
	}
	if s.rules.IsHybrid(prev) && lex.Has(prev) {
		adjusted += base
	}
	return adjusted
}

// ScoreAll scores phrases concurrently and returns results in input order.
// It stops early only when ctx is done.
func (s *Scorer) ScoreAll(ctx context.Context, phrases []string, overrides ...WeightOverride) ([]AnalysisResult, error) {
	lex := s.lexicon.Merge(overrides...)
	results := make([]AnalysisResult, len(phrases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, phrase := range phrases {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = s.score(phrase, lex)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
