package main

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"
)

const (
	wordFlag = "word"
	listFlag = "list"
)

type wordScore struct {
	Word  string `json:"word" yaml:"word"`
	Score int    `json:"score" yaml:"score"`
	Found bool   `json:"found" yaml:"found"`
}

type lexiconOutput struct {
	Size  int         `json:"size" yaml:"size"`
	Words []wordScore `json:"words,omitempty" yaml:"words,omitempty"`
}

func (a *app) lexiconCmd() *cli.Command {
	return &cli.Command{
		Name:  "lexicon",
		Usage: "Inspect the effective lexicon",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    wordFlag,
				Aliases: []string{"w"},
				Usage:   "Word to look up (repeatable)",
			},
			&cli.BoolFlag{
				Name:  listFlag,
				Usage: "Print every word with its score",
			},
		},
		Action: a.cmdLexicon,
	}
}

func (a *app) cmdLexicon(_ context.Context, cmd *cli.Command) error {
	lex := a.scorer.Lexicon().Merge(a.overrides...)
	out := lexiconOutput{Size: lex.Len()}

	words := cmd.StringSlice(wordFlag)
	if cmd.Bool(listFlag) {
		words = lex.Words()
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		score, found := lex.Lookup(w)
		out.Words = append(out.Words, wordScore{Word: w, Score: score, Found: found})
	}
	return a.encode(out)
}
