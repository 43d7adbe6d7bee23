package main

import (
	"context"

	"github.com/tsawler/sentimently"
	"github.com/urfave/cli/v3"
)

const summaryOnlyFlag = "summary-only"

type batchOutput struct {
	Results []scoreOutput       `json:"results,omitempty" yaml:"results,omitempty"`
	Summary sentimently.Summary `json:"summary" yaml:"summary"`
}

func (a *app) batchCmd() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Aliases:   []string{"b"},
		Usage:     "Score every line of a file concurrently and summarize",
		ArgsUsage: "[file|-]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  summaryOnlyFlag,
				Usage: "Print only the aggregate statistics",
			},
		},
		Action: a.cmdBatch,
	}
}

func (a *app) cmdBatch(ctx context.Context, cmd *cli.Command) error {
	r, err := a.input(cmd.Args().First())
	if err != nil {
		return err
	}
	defer r.Close()

	lines, err := readLines(r)
	if err != nil {
		return err
	}

	results, err := a.scorer.ScoreAll(ctx, lines, a.overrides...)
	if err != nil {
		return err
	}

	out := batchOutput{Summary: sentimently.Summarize(results)}
	if !cmd.Bool(summaryOnlyFlag) {
		out.Results = make([]scoreOutput, 0, len(results))
		for _, res := range results {
			out.Results = append(out.Results, newScoreOutput(res))
		}
	}
	a.logger.Debug("batch scored", "phrases", len(lines), "mean", out.Summary.Mean)
	return a.encode(out)
}
