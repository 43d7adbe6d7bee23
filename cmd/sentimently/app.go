package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tsawler/sentimently"
	"github.com/tsawler/sentimently/internal/config"
	"github.com/tsawler/sentimently/internal/logging"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	configFlag    = "config"
	lexiconFlag   = "lexicon"
	rulesFlag     = "rules"
	lemmasFlag    = "lemmas"
	strategyFlag  = "strategy"
	languageFlag  = "language"
	stopWordsFlag = "stopwords"
	foldFlag      = "fold"
	formatFlag    = "format"
	overrideFlag  = "override"
	debugFlag     = "debug"
)

var (
	version = "v0.0.1-default"
	commit  = ""
)

// globalFlags returns fresh flag values; urfave flags keep parse state.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    configFlag,
			Usage:   "Path to the YAML config file (default: " + config.DefaultPath() + ")",
			Sources: cli.EnvVars("SENTIMENTLY_CONFIG"),
		},
		&cli.StringFlag{
			Name:    lexiconFlag,
			Aliases: []string{"l"},
			Usage:   "JSON word list replacing the built-in lexicon",
		},
		&cli.StringFlag{
			Name:  rulesFlag,
			Usage: "YAML file with negators, incrementors and hybrid words",
		},
		&cli.StringFlag{
			Name:  lemmasFlag,
			Usage: "CSV file of word,lemma pairs consulted before the stemmer",
		},
		&cli.StringFlag{
			Name:    strategyFlag,
			Aliases: []string{"s"},
			Usage:   "Tokenization strategy [plain, tagged]",
		},
		&cli.StringFlag{
			Name:  languageFlag,
			Usage: "Language for stemming, stop words and folding [en, es, fr, de]",
		},
		&cli.BoolFlag{
			Name:  stopWordsFlag,
			Usage: "Drop neutral stop words before scoring",
		},
		&cli.BoolFlag{
			Name:  foldFlag,
			Usage: "Fold accented letters before tokenizing",
		},
		&cli.StringFlag{
			Name:    formatFlag,
			Aliases: []string{"f"},
			Usage:   "Output format [json, yaml]",
		},
		&cli.StringSliceFlag{
			Name:    overrideFlag,
			Aliases: []string{"o"},
			Usage:   "Per-run weight as word=score (repeatable)",
		},
		&cli.BoolFlag{
			Name:  debugFlag,
			Usage: "Prints verbose logs (optional, default: false)",
		},
	}
}

// app carries the state shared by all commands once Before has run.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg       *config.Config
	logger    *slog.Logger
	scorer    *sentimently.Scorer
	overrides []sentimently.WeightOverride
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	return &cli.Command{
		Name:      "sentimently",
		Version:   fmt.Sprintf("%s (%s)", version, commit),
		Usage:     "Lexicon-based sentiment scoring",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(),
		Commands: []*cli.Command{
			a.scoreCmd(),
			a.documentCmd(),
			a.batchCmd(),
			a.lexiconCmd(),
			a.rulesCmd(),
		},
		Before: a.before,
	}
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path, optional := config.DefaultPath(), true
	if cmd.IsSet(configFlag) {
		path, optional = cmd.String(configFlag), false
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return ctx, err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return ctx, err
	}
	a.cfg = cfg

	a.logger = slog.New(logging.NewCLIHandler(a.stderr, logging.ParseLogLevel(cfg.LogLevel)))
	a.logger.Debug("config loaded", "path", path, "strategy", cfg.Strategy, "language", cfg.Language)

	for _, s := range cmd.StringSlice(overrideFlag) {
		w, err := sentimently.ParseWeightOverride(s)
		if err != nil {
			return ctx, err
		}
		a.overrides = append(a.overrides, w)
	}

	opts, err := cfg.ScorerOpts()
	if err != nil {
		return ctx, err
	}
	a.scorer = sentimently.NewScorer(append(opts, sentimently.WithLogger(a.logger))...)
	return ctx, nil
}

// applyFlags copies explicitly set flags over the file configuration.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	for name, dst := range map[string]*string{
		lexiconFlag:  &cfg.Lexicon,
		rulesFlag:    &cfg.Rules,
		lemmasFlag:   &cfg.Lemmas,
		strategyFlag: &cfg.Strategy,
		languageFlag: &cfg.Language,
		formatFlag:   &cfg.Format,
	} {
		if cmd.IsSet(name) {
			*dst = cmd.String(name)
		}
	}
	if cmd.IsSet(stopWordsFlag) {
		cfg.StopWords = cmd.Bool(stopWordsFlag)
	}
	if cmd.IsSet(foldFlag) {
		cfg.Fold = cmd.Bool(foldFlag)
	}
	if cmd.Bool(debugFlag) {
		cfg.LogLevel = "debug"
	}
}

func (a *app) encode(v any) error {
	switch strings.ToLower(a.cfg.Format) {
	case config.FormatYAML, "yml":
		e := yaml.NewEncoder(a.stdout)
		defer e.Close()
		return e.Encode(v)
	default:
		e := json.NewEncoder(a.stdout)
		e.SetIndent("", "  ")
		return e.Encode(v)
	}
}

// input opens the named file, or stdin for "" and "-".
func (a *app) input(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(a.stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
