package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/config"
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/logging"
	"github.com/katalvlaran/wordladder/report"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// app holds flag values and the state shared by all subcommands.
type app struct {
	verbosity  int
	configPath string
	dictPath   string

	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd builds the wordladder command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wordladder [source target]",
		Short: "Find shortest word ladders",
		Long: `wordladder finds a shortest sequence of dictionary words leading from
source to target, changing one letter at a time.

With no arguments it times a fixed set of example pairs and prints a
results table. With two arguments it runs that pair and prints the path.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 args, received %d", len(args))
			}
			return nil
		},
		PersistentPreRunE: a.setup,
		RunE:              a.runLadder,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/wordladder/config.toml)")
	rootCmd.PersistentFlags().StringVar(&a.dictPath, "dict", "", "dictionary file, one word per line (overrides config)")

	rootCmd.AddCommand(
		newNeighborsCmd(a),
		newReachCmd(a),
		newComponentsCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = logging.Setup(a.verbosity, cmd.ErrOrStderr())
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	overrides := map[string]interface{}{}
	if a.dictPath != "" {
		overrides["dictionary.path"] = a.dictPath
	}
	cfg, err := config.LoadWithOverrides(a.configPath, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	return nil
}

// loadDictionary reads the configured word list. A positive length keeps
// only words of that many runes.
func (a *app) loadDictionary(length int) ([]string, error) {
	defer logging.OperationStart(a.logger, "load dictionary")()

	var opts []dictionary.Option
	if length > 0 {
		opts = append(opts, dictionary.WithLengthRange(length, length))
	}
	if a.cfg.Dictionary.LowercaseOnly {
		opts = append(opts, dictionary.WithLowercaseOnly())
	}
	if a.cfg.Dictionary.LettersOnly {
		opts = append(opts, dictionary.WithLettersOnly())
	}
	words, err := dictionary.Load(a.cfg.Dictionary.Path, opts...)
	if err != nil {
		return nil, err
	}
	a.logger.Info().Str("path", a.cfg.Dictionary.Path).Int("words", len(words)).Msg("Dictionary loaded")

	return words, nil
}

func (a *app) graphOptions() []wordgraph.Option {
	opts := []wordgraph.Option{
		wordgraph.WithWildcard(a.cfg.WildcardRune()),
		wordgraph.WithLogger(logging.Component("wordgraph")),
	}
	if a.cfg.Graph.Eager {
		opts = append(opts, wordgraph.WithEagerNeighbors())
	}

	return opts
}

// buildAround builds the graph of word's length with word injected.
func (a *app) buildAround(word string) (*wordgraph.Graph, error) {
	n := utf8.RuneCountInString(word)
	if n == 0 {
		return nil, ladder.ErrEmptyWord
	}
	words, err := a.loadDictionary(n)
	if err != nil {
		return nil, err
	}

	return wordgraph.Build(words, n, append(a.graphOptions(), wordgraph.WithInjected(word))...)
}

func (a *app) runLadder(cmd *cobra.Command, args []string) error {
	pairs := report.DefaultPairs()
	length := 0 // demo pairs span several lengths
	if len(args) == 2 {
		if err := ladder.Validate(args[0], args[1]); err != nil {
			return err
		}
		pairs = []report.Pair{{Source: args[0], Target: args[1]}}
		length = utf8.RuneCountInString(args[0])
	}

	words, err := a.loadDictionary(length)
	if err != nil {
		return err
	}

	runs, err := report.RunAll(cmd.Context(), words, pairs, a.cfg.Report.Parallelism,
		report.WithGraphOptions(a.graphOptions()...),
		report.WithSearchOptions(bfs.WithMaxDepth(a.cfg.Search.MaxDepth)),
		report.WithTimeout(a.cfg.Search.Timeout),
		report.WithLogger(logging.Component("report")),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.RenderTable(out, runs); err != nil {
		return err
	}
	if len(args) == 2 {
		if runs[0].Err != nil {
			return runs[0].Err
		}
		return report.RenderPath(out, runs[0])
	}

	return nil
}
