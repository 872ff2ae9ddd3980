package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// Pair is one (source, target) query.
type Pair struct {
	Source string
	Target string
}

// DefaultPairs returns example pairs of increasing word length.
func DefaultPairs() []Pair {
	return []Pair{
		{"at", "to"},
		{"dog", "cat"},
		{"cold", "warm"},
		{"thing", "items"},
		{"summer", "winter"},
		{"longest", "boredom"},
	}
}

// Run is the timed outcome of one Pair.
type Run struct {
	Pair

	Path  bfs.Path
	Found bool
	Words int // vertices in the pair's graph

	BuildTime time.Duration
	FindTime  time.Duration

	// Err is set for invalid pairs and failed searches; "no ladder" is
	// reported through Found, not Err.
	Err error
}

// Moves returns the ladder length, or -1 when absent or failed.
func (r Run) Moves() int {
	if r.Err != nil || !r.Found {
		return -1
	}

	return r.Path.Moves()
}

// Option configures TimeRun and RunAll.
type Option func(*Options)

// Options tunes each run.
type Options struct {
	Graph   []wordgraph.Option
	Search  []bfs.Option
	Timeout time.Duration // per search; 0 means none
	Logger  zerolog.Logger
}

func defaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithGraphOptions passes options to every graph build.
func WithGraphOptions(opts ...wordgraph.Option) Option {
	return func(o *Options) { o.Graph = append(o.Graph, opts...) }
}

// WithSearchOptions passes options to every search.
func WithSearchOptions(opts ...bfs.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// WithTimeout bounds each search. Non-positive values disable the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithLogger sets the logger for per-run diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// TimeRun builds a graph for p and searches it, timing both steps.
func TimeRun(ctx context.Context, dictionary []string, p Pair, opts ...Option) Run {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return timeRun(ctx, dictionary, p, o)
}

func timeRun(ctx context.Context, dictionary []string, p Pair, o Options) Run {
	run := Run{Pair: p}
	logger := o.Logger.With().Str("source", p.Source).Str("target", p.Target).Logger()

	gopts := make([]wordgraph.Option, 0, len(o.Graph)+1)
	gopts = append(gopts, o.Graph...)
	gopts = append(gopts, wordgraph.WithLogger(logger))

	start := time.Now()
	g, err := ladder.Build(dictionary, p.Source, p.Target, gopts...)
	run.BuildTime = time.Since(start)
	if err != nil {
		run.Err = err
		logger.Warn().Err(err).Msg("build failed")
		return run
	}
	run.Words = g.WordCount()

	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}
	start = time.Now()
	res, err := ladder.Search(ctx, g, p.Source, p.Target, o.Search...)
	run.FindTime = time.Since(start)
	if err != nil {
		run.Err = err
		logger.Warn().Err(err).Msg("search failed")
		return run
	}
	run.Path, run.Found = res.Path, res.Found

	logger.Info().
		Int("words", run.Words).
		Int("moves", run.Moves()).
		Int("expanded", res.Expanded).
		Dur("build", run.BuildTime).
		Dur("find", run.FindTime).
		Msg("pair done")

	return run
}

// RunAll times every pair with at most parallelism concurrent runs.
// Results keep the order of pairs. Per-pair failures land in Run.Err; the
// returned error is non-nil only when ctx ends first.
func RunAll(ctx context.Context, dictionary []string, pairs []Pair, parallelism int, opts ...Option) ([]Run, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if parallelism < 1 {
		parallelism = 1
	}

	runs := make([]Run, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, p := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			runs[i] = timeRun(gctx, dictionary, p, o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return runs, err
	}

	return runs, ctx.Err()
}

// seconds formats d as fractional seconds.
func seconds(d time.Duration) string {
	return fmt.Sprintf("%f", d.Seconds())
}

// TableData returns the header and one row per run.
func TableData(runs []Run) pterm.TableData {
	data := pterm.TableData{{"Source", "Target", "Moves", "Gen. Time", "Find Time"}}
	for _, r := range runs {
		moves, find := "N/A", "No match"
		switch {
		case r.Err != nil:
			find = "Error"
		case r.Found:
			moves = fmt.Sprintf("%d", r.Moves())
			find = seconds(r.FindTime)
		}
		data = append(data, []string{r.Source, r.Target, moves, seconds(r.BuildTime), find})
	}

	return data
}

// RenderTable writes the runs as a boxed table.
func RenderTable(w io.Writer, runs []Run) error {
	s, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(TableData(runs)).
		Srender()
	if err != nil {
		return fmt.Errorf("report: render table: %w", err)
	}
	_, err = fmt.Fprintln(w, s)

	return err
}

// RenderPath writes the numbered steps of a run's ladder, or nothing if
// there is none.
func RenderPath(w io.Writer, r Run) error {
	if !r.Found {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nPath:"); err != nil {
		return err
	}
	for i, word := range r.Path {
		if _, err := fmt.Fprintf(w, "%d %s\n", i, word); err != nil {
			return err
		}
	}

	return nil
}
