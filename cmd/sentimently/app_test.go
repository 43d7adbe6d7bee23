package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI without reading the user's config file.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	argv := append([]string{"sentimently", "--config", ""}, args...)
	err := newApp(strings.NewReader(stdin), &stdout, &stderr).Run(t.Context(), argv)
	return stdout.String(), stderr.String(), err
}

func TestScoreCommand(t *testing.T) {
	out, _, err := run(t, "", "--lexicon", "testdata/lexicon.json", "score", "I love cats")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.EqualValues(t, 3, res["score"])
	assert.InDelta(t, 1.0, res["comparative"], 1e-9)
	assert.Equal(t, "positive", res["polarity"])
	assert.Equal(t, []any{"love"}, res["positive"])
}

func TestScoreCommandOverrides(t *testing.T) {
	out, _, err := run(t, "", "--lexicon", "testdata/lexicon.json", "--override", "cats=5", "-o", "i=1",
		"score", "I love cats")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.EqualValues(t, 9, res["score"])
}

func TestScoreCommandStdin(t *testing.T) {
	out, _, err := run(t, "I love cats\n\nthis is bad\n", "--lexicon", "testdata/lexicon.json", "score")
	require.NoError(t, err)

	var res []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res, 2)
	assert.Equal(t, "positive", res[0]["polarity"])
	assert.Equal(t, "negative", res[1]["polarity"])
}

func TestScoreCommandYAML(t *testing.T) {
	out, _, err := run(t, "", "--lexicon", "testdata/lexicon.json", "--format", "yaml", "--strategy", "plain",
		"score", "very good")
	require.NoError(t, err)

	var res struct {
		Phrase   string `yaml:"phrase"`
		Score    int    `yaml:"score"`
		Polarity string `yaml:"polarity"`
		Tokens   []struct {
			Text string `yaml:"text"`
		} `yaml:"tokens"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, "very good", res.Phrase)
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, "positive", res.Polarity)
	assert.Len(t, res.Tokens, 2)
}

func TestScoreCommandMissingLexicon(t *testing.T) {
	out, stderr, err := run(t, "", "--lexicon", "testdata/missing.json", "score", "I love cats")
	require.NoError(t, err)
	assert.Contains(t, stderr, "empty lexicon")

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.EqualValues(t, 0, res["score"])
}

func TestDocumentCommand(t *testing.T) {
	out, _, err := run(t, "", "--lexicon", "testdata/lexicon.json", "document", "testdata/story.txt")
	require.NoError(t, err)

	var doc struct {
		Score     int    `json:"score"`
		Polarity  string `json:"polarity"`
		Sentences []struct {
			Score int `json:"score"`
		} `json:"sentences"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Sentences, 3)
	assert.Equal(t, -1, doc.Score)
	assert.Equal(t, "negative", doc.Polarity)
}

func TestDocumentCommandStdin(t *testing.T) {
	out, _, err := run(t, "Good times. Bad times.", "--lexicon", "testdata/lexicon.json", "document", "-")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.EqualValues(t, 0, doc["score"])
	assert.Equal(t, "neutral", doc["polarity"])
}

func TestBatchCommand(t *testing.T) {
	out, _, err := run(t, "", "--lexicon", "testdata/lexicon.json", "batch", "testdata/reviews.txt")
	require.NoError(t, err)

	var res struct {
		Results []struct {
			Phrase string `json:"phrase"`
			Score  int    `json:"score"`
		} `json:"results"`
		Summary struct {
			Count    int `json:"count"`
			Total    int `json:"total"`
			Positive int `json:"positive"`
			Negative int `json:"negative"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Results, 3)
	assert.Equal(t, "I love cats", res.Results[0].Phrase)
	assert.Equal(t, 3, res.Results[0].Score)
	assert.Equal(t, -3, res.Results[1].Score)
	assert.Equal(t, 2, res.Results[2].Score)
	assert.Equal(t, 3, res.Summary.Count)
	assert.Equal(t, 2, res.Summary.Total)
	assert.Equal(t, 2, res.Summary.Positive)
	assert.Equal(t, 1, res.Summary.Negative)
}

func TestBatchCommandSummaryOnly(t *testing.T) {
	out, _, err := run(t, "good\nbad\n", "--lexicon", "testdata/lexicon.json", "batch", "--summary-only")
	require.NoError(t, err)
	assert.NotContains(t, out, "results")
	assert.Contains(t, out, "summary")
}

func TestLexiconCommand(t *testing.T) {
	out, _, err := run(t, "", "--lexicon", "testdata/lexicon.json", "-o", "cats=2",
		"lexicon", "--word", "Love", "-w", "cats", "-w", "dogs")
	require.NoError(t, err)

	var res lexiconOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 5, res.Size)
	assert.Equal(t, []wordScore{
		{Word: "love", Score: 3, Found: true},
		{Word: "cats", Score: 2, Found: true},
		{Word: "dogs", Score: 0, Found: false},
	}, res.Words)
}

func TestLexiconCommandList(t *testing.T) {
	out, _, err := run(t, "", "--lexicon", "testdata/lexicon.json", "lexicon", "--list")
	require.NoError(t, err)

	var res lexiconOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Words, 4)
	assert.Equal(t, "bad", res.Words[0].Word)
}

func TestInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"strategy", []string{"--strategy", "lemma", "score", "x"}},
		{"language", []string{"--language", "klingon", "score", "x"}},
		{"format", []string{"--format", "xml", "score", "x"}},
		{"override", []string{"--override", "cats", "score", "x"}},
		{"config", []string{"--config", "testdata/missing.yaml", "score", "x"}},
		{"rules", []string{"--rules", "testdata/missing.yaml", "score", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "", "--debug", "score", "hello")
	require.NoError(t, err)
	assert.Contains(t, stderr, "scorer ready")
}

func TestRulesCommand(t *testing.T) {
	out, _, err := run(t, "", "--format", "yaml", "rules")
	require.NoError(t, err)

	var rules struct {
		Negators     []string `yaml:"negators"`
		Incrementors []string `yaml:"incrementors"`
		Hybrid       []string `yaml:"hybrid"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rules))
	assert.Contains(t, rules.Negators, "don't")
	assert.Equal(t, []string{"really", "very"}, rules.Incrementors)
	assert.Equal(t, []string{"extremely", "super"}, rules.Hybrid)
}

func TestLemmasFlag(t *testing.T) {
	out, _, err := run(t, "", "--lexicon", "testdata/lexicon.json", "--lemmas", "testdata/lemmas.csv",
		"score", "better days")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.EqualValues(t, 3, res["score"])
}

func TestRulesRoundTrip(t *testing.T) {
	out, _, err := run(t, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, `"negators"`)

	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))

	out, _, err = run(t, "", "--lexicon", "testdata/lexicon.json", "--rules", path, "score", "not good")
	require.NoError(t, err)

	var res map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.EqualValues(t, 2, res["score"])
}
