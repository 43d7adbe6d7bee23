package sentimently

import (
	"strings"
	"unicode"
)

// A Tokenizer splits a phrase into scoring tokens. The lexicon is the
// effective one for the current call; strategies that choose between a
// surface form and a tag consult it.
type Tokenizer interface {
	Tokenize(phrase string, lex *Lexicon) []Token
}

// NewTokenizer returns the tokenizer for strategy. A nil tagger falls back to
// the English stem tagger.
func NewTokenizer(strategy Strategy, tagger Tagger) Tokenizer {
	if strategy == StrategyPlain {
		return NewPlainTokenizer()
	}
	if tagger == nil {
		tagger = NewStemTagger(English)
	}
	return NewTaggedTokenizer(tagger)
}

// plainTokenizer lowercases, removes everything that is not a letter, digit
// or space, and splits on spaces.
type plainTokenizer struct{}

// NewPlainTokenizer returns the punctuation-stripping word tokenizer.
func NewPlainTokenizer() Tokenizer {
	return plainTokenizer{}
}

func (plainTokenizer) Tokenize(phrase string, _ *Lexicon) []Token {
	clean := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, phrase)

	var tokens []Token
	for _, w := range strings.Split(clean, " ") {
		if w == "" {
			continue
		}
		tokens = append(tokens, Token{Text: w, Word: w})
	}
	return tokens
}

// taggedTokenizer asks a Tagger for (surface, tag) pairs and scores each
// pair by whichever form carries the larger lexicon weight.
type taggedTokenizer struct {
	tagger Tagger
}

// NewTaggedTokenizer returns a tokenizer backed by tagger.
func NewTaggedTokenizer(tagger Tagger) Tokenizer {
	return &taggedTokenizer{tagger: tagger}
}

func (t *taggedTokenizer) Tokenize(phrase string, lex *Lexicon) []Token {
	tagged := t.tagger.Tag(strings.ToLower(phrase))

	tokens := make([]Token, 0, len(tagged))
	for _, tt := range tagged {
		text := normalizeWord(tt.Text)
		if text == "" {
			continue
		}
		tok := Token{Text: text, Word: text}
		if tag := normalizeWord(tt.Tag); tag != text {
			tok.Tag = tag
		}
		tok.Word = chooseForm(tok, lex)
		tokens = append(tokens, tok)
	}
	return tokens
}

// chooseForm picks the lookup form for tok. The surface form starts with a
// weight of zero and a candidate only wins with a strictly larger magnitude,
// so ties go to the surface form.
func chooseForm(tok Token, lex *Lexicon) string {
	chosen, best := tok.Text, 0
	candidates := []string{tok.Text}
	if tok.HasTag() {
		candidates = append(candidates, tok.Tag)
	}
	for _, c := range candidates {
		if s, ok := lex.Lookup(c); ok && abs(s) > best {
			chosen, best = c, abs(s)
		}
	}
	return chosen
}

// WordSplitter splits text into word spans. Whitespace and punctuation
// separate words; apostrophes and hyphens inside a word are kept.
type WordSplitter struct {
	sanitizer *strings.Replacer
	prefixes  []string
	suffixes  []string
}

// A SplitterOptFunc configures a WordSplitter.
type SplitterOptFunc func(*WordSplitter)

// Use the provided sanitizer.
func UsingSanitizer(x *strings.Replacer) SplitterOptFunc {
	return func(s *WordSplitter) {
		s.sanitizer = x
	}
}

// Use the provided prefixes.
func UsingPrefixes(x []string) SplitterOptFunc {
	return func(s *WordSplitter) {
		s.prefixes = x
	}
}

// Use the provided suffixes.
func UsingSuffixes(x []string) SplitterOptFunc {
	return func(s *WordSplitter) {
		s.suffixes = x
	}
}

// NewWordSplitter returns a splitter with the default sanitizer and affixes.
func NewWordSplitter(opts ...SplitterOptFunc) *WordSplitter {
	s := &WordSplitter{
		sanitizer: sanitizer,
		prefixes:  prefixes,
		suffixes:  suffixes,
	}
	for _, applyOpt := range opts {
		applyOpt(s)
	}
	return s
}

// Split returns the word spans of text in order.
func (s *WordSplitter) Split(text string) []string {
	var words []string
	for _, field := range strings.Fields(s.sanitizer.Replace(text)) {
		for _, piece := range strings.FieldsFunc(field, isBreak) {
			if w := s.trim(piece); isWord(w) {
				words = append(words, w)
			}
		}
	}
	return words
}

// isBreak reports whether r ends a word inside a whitespace-free field.
// Apostrophes and hyphens are left for affix trimming.
func isBreak(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
		return false
	}
	return r != '\'' && r != '-'
}

// trim removes leading prefixes and trailing suffixes -- e.g., ("great!") -> great.
func (s *WordSplitter) trim(token string) string {
	for token != "" {
		if p := anyPrefix(token, s.prefixes); p != "" {
			token = token[len(p):]
		} else if sfx := anySuffix(token, s.suffixes); sfx != "" {
			token = token[:len(token)-len(sfx)]
		} else {
			break
		}
	}
	return token
}

func anyPrefix(s string, prefixes []string) string {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return p
		}
	}
	return ""
}

func anySuffix(s string, suffixes []string) string {
	for _, sfx := range suffixes {
		if sfx != "" && strings.HasSuffix(s, sfx) {
			return sfx
		}
	}
	return ""
}

// isWord reports whether s has at least one letter or digit.
func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")
var suffixes = []string{",", ")", `"`, "]", "}", "!", ";", ".", "?", ":", "'", "…", "-"}
var prefixes = []string{"$", "(", `"`, "[", "{", "'", "¿", "¡", "-"}
