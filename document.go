package sentimently

import (
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A SentenceResult is the analysis of one segmented sentence.
type SentenceResult struct {
	Start          int `json:"start" yaml:"start"` // Start position in original text
	End            int `json:"end" yaml:"end"`     // End position in original text
	AnalysisResult `yaml:",inline"`
}

// DocumentResult aggregates the sentences of a longer text.
type DocumentResult struct {
	Text        string           `json:"text" yaml:"text"`
	Score       int              `json:"score" yaml:"score"`
	Comparative float64          `json:"comparative" yaml:"comparative"` // Score divided by the total token count.
	Positive    []string         `json:"positive" yaml:"positive"`
	Negative    []string         `json:"negative" yaml:"negative"`
	Sentences   []SentenceResult `json:"sentences" yaml:"sentences"`
}

// Polarity returns the coarse class of the document.
func (d DocumentResult) Polarity() Polarity {
	return Classify(d.Comparative)
}

var (
	segmenterOnce sync.Once
	segmenter     *sentences.DefaultSentenceTokenizer
	segmenterErr  error
)

func defaultSegmenter() (*sentences.DefaultSentenceTokenizer, error) {
	segmenterOnce.Do(func() {
		segmenter, segmenterErr = english.NewSentenceTokenizer(nil)
	})
	return segmenter, segmenterErr
}

// ScoreDocument splits text into sentences and scores each one with the same
// effective lexicon. If the segmenter is unavailable the whole text is
// scored as a single sentence.
func (s *Scorer) ScoreDocument(text string, overrides ...WeightOverride) DocumentResult {
	lex := s.lexicon.Merge(overrides...)
	doc := DocumentResult{
		Text:      text,
		Positive:  []string{},
		Negative:  []string{},
		Sentences: []SentenceResult{},
	}
	if strings.TrimSpace(text) == "" {
		return doc
	}

	var tokenCount int
	for _, sent := range s.segment(text) {
		res := s.score(sent.Text, lex)
		if len(res.Tokens) == 0 {
			continue
		}
		doc.Sentences = append(doc.Sentences, SentenceResult{
			Start:          sent.Start,
			End:            sent.End,
			AnalysisResult: res,
		})
		doc.Score += res.Score
		doc.Positive = append(doc.Positive, res.Positive...)
		doc.Negative = append(doc.Negative, res.Negative...)
		tokenCount += len(res.Tokens)
	}
	if tokenCount > 0 {
		doc.Comparative = float64(doc.Score) / float64(tokenCount)
	}
	return doc
}

func (s *Scorer) segment(text string) []*sentences.Sentence {
	seg, err := defaultSegmenter()
	if err != nil {
		s.logger.Warn("sentence segmentation unavailable", "error", err)
		return []*sentences.Sentence{{Start: 0, End: len(text), Text: text}}
	}
	return seg.Tokenize(text)
}
