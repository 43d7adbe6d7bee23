package main

import (
	"context"
	"fmt"
	"io"

	"github.com/tsawler/sentimently"
	"github.com/urfave/cli/v3"
)

type documentOutput struct {
	sentimently.DocumentResult `yaml:",inline"`
	Polarity                   sentimently.Polarity `json:"polarity" yaml:"polarity"`
}

func (a *app) documentCmd() *cli.Command {
	return &cli.Command{
		Name:      "document",
		Aliases:   []string{"doc"},
		Usage:     "Score a text file sentence by sentence",
		ArgsUsage: "[file|-]",
		Action:    a.cmdDocument,
	}
}

func (a *app) cmdDocument(_ context.Context, cmd *cli.Command) error {
	r, err := a.input(cmd.Args().First())
	if err != nil {
		return err
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	doc := a.scorer.ScoreDocument(string(b), a.overrides...)
	a.logger.Debug("document scored", "sentences", len(doc.Sentences), "score", doc.Score)
	return a.encode(documentOutput{DocumentResult: doc, Polarity: doc.Polarity()})
}
