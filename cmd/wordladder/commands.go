package main

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/wordgraph"
)

var (
	version = "dev"
	commit  = "none"
)

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <word>",
		Short: "List words one letter away from word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.buildAround(args[0])
			if err != nil {
				return err
			}
			nbrs, err := g.Neighbors(args[0])
			if err != nil {
				return err
			}
			for _, w := range nbrs {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}

func newReachCmd(a *app) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "reach <word>",
		Short: "List words reachable from word within --depth steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.buildAround(args[0])
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, args[0], bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(depth))
			if err != nil {
				return err
			}
			for _, w := range res.Order {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", res.Depth[w], w)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 1, "maximum number of steps (0 = unbounded)")

	return cmd
}

func newComponentsCmd(a *app) *cobra.Command {
	var (
		length int
		top    int
	)

	cmd := &cobra.Command{
		Use:   "components",
		Short: "Summarise connected components among words of one length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if length < 1 {
				return fmt.Errorf("--length must be at least 1, got %d", length)
			}
			words, err := a.loadDictionary(length)
			if err != nil {
				return err
			}
			g, err := wordgraph.Build(words, length, a.graphOptions()...)
			if err != nil {
				return err
			}
			comps := g.Components()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "words: %d  patterns: %d  edges: %d  components: %d\n",
				g.WordCount(), g.Index().PatternCount(), g.EdgeCount(), len(comps))

			sort.SliceStable(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })
			if top >= 0 && top < len(comps) {
				comps = comps[:top]
			}
			data := pterm.TableData{{"Rank", "Size", "First word"}}
			for i, c := range comps {
				data = append(data, []string{fmt.Sprint(i + 1), fmt.Sprint(len(c)), c[0]})
			}
			s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, s)
			return err
		},
	}
	cmd.Flags().IntVar(&length, "length", 3, "word length in letters")
	cmd.Flags().IntVar(&top, "top", 5, "number of largest components to list")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wordladder version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		},
	}
}
