package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

func (a *app) rulesCmd() *cli.Command {
	return &cli.Command{
		Name:   "rules",
		Usage:  "Print the adjuster rules in use, in rules-file form",
		Action: a.cmdRules,
	}
}

func (a *app) cmdRules(_ context.Context, _ *cli.Command) error {
	return a.encode(a.scorer.Rules().File())
}
