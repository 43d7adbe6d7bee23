package sentimently

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kljensen/snowball"
)

// A TaggedToken is one word span with an optional lemma or grammatical tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// A Tagger splits text into word spans and annotates each with a tag.
// Whitespace and punctuation are omitted.
type Tagger interface {
	Tag(text string) []TaggedToken
}

// TaggerFunc adapts a function to the Tagger interface.
type TaggerFunc func(text string) []TaggedToken

// Tag calls f(text).
func (f TaggerFunc) Tag(text string) []TaggedToken {
	return f(text)
}

// A Lemmatizer maps a word to its base form. It returns the word itself, or
// "", when it has nothing better.
type Lemmatizer interface {
	Lemma(word string) string
}

// LemmaTagger tags each word span with the first lemma that differs from the
// word.
type LemmaTagger struct {
	splitter    *WordSplitter
	lemmatizers []Lemmatizer
}

// NewLemmaTagger returns a tagger consulting lemmatizers in order.
func NewLemmaTagger(lemmatizers ...Lemmatizer) *LemmaTagger {
	return &LemmaTagger{
		splitter:    NewWordSplitter(),
		lemmatizers: lemmatizers,
	}
}

// NewStemTagger returns a tagger that uses the snowball stemmer for lang.
func NewStemTagger(lang Language) *LemmaTagger {
	return NewLemmaTagger(StemLemmatizer{Language: lang})
}

// Tag implements Tagger.
func (t *LemmaTagger) Tag(text string) []TaggedToken {
	words := t.splitter.Split(text)
	out := make([]TaggedToken, 0, len(words))
	for _, w := range words {
		out = append(out, TaggedToken{Text: w, Tag: t.lemma(w)})
	}
	return out
}

func (t *LemmaTagger) lemma(word string) string {
	lower := strings.ToLower(word)
	for _, l := range t.lemmatizers {
		if lemma := l.Lemma(lower); lemma != "" && lemma != lower {
			return lemma
		}
	}
	return ""
}

// StemLemmatizer approximates lemmas with the snowball stemmer.
type StemLemmatizer struct {
	Language Language
}

// Lemma returns the stem of word, or "" when the stemmer rejects it.
func (s StemLemmatizer) Lemma(word string) string {
	stem, err := snowball.Stem(word, s.Language.snowballName(), false)
	if err != nil {
		return ""
	}
	return stem
}

// DictionaryLemmatizer looks lemmas up in a fixed table.
type DictionaryLemmatizer map[string]string

// Lemma returns the base form if present.
func (d DictionaryLemmatizer) Lemma(word string) string {
	return d[word]
}

// LoadDictionaryLemmatizer reads "word,lemma" records from a CSV file.
func LoadDictionaryLemmatizer(path string) (DictionaryLemmatizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening lemma file: %w", err)
	}
	defer f.Close()
	return ReadDictionaryLemmatizer(f)
}

// ReadDictionaryLemmatizer parses "word,lemma" records. Lines starting with
// '#' are comments; records without exactly two fields are skipped.
func ReadDictionaryLemmatizer(r io.Reader) (DictionaryLemmatizer, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	dict := DictionaryLemmatizer{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error parsing lemma file: %w", err)
		}
		if len(rec) != 2 {
			continue
		}
		word, lemma := normalizeWord(rec[0]), normalizeWord(rec[1])
		if word != "" && lemma != "" {
			dict[word] = lemma
		}
	}
	return dict, nil
}
