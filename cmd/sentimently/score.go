package main

import (
	"context"

	"github.com/tsawler/sentimently"
	"github.com/urfave/cli/v3"
)

// scoreOutput adds the polarity class to an analysis result.
type scoreOutput struct {
	sentimently.AnalysisResult `yaml:",inline"`
	Polarity                   sentimently.Polarity `json:"polarity" yaml:"polarity"`
}

func newScoreOutput(r sentimently.AnalysisResult) scoreOutput {
	return scoreOutput{AnalysisResult: r, Polarity: r.Polarity()}
}

func (a *app) scoreCmd() *cli.Command {
	return &cli.Command{
		Name:      "score",
		Aliases:   []string{"s"},
		Usage:     "Score each phrase argument, or each line of stdin",
		ArgsUsage: "[phrase...]",
		Action:    a.cmdScore,
	}
}

func (a *app) cmdScore(_ context.Context, cmd *cli.Command) error {
	phrases := cmd.Args().Slice()
	if len(phrases) == 0 {
		lines, err := readLines(a.stdin)
		if err != nil {
			return err
		}
		phrases = lines
	}

	out := make([]scoreOutput, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, newScoreOutput(a.scorer.Score(p, a.overrides...)))
	}
	if len(out) == 1 {
		return a.encode(out[0])
	}
	return a.encode(out)
}
