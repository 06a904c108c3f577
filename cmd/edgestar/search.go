package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgestar/astar"
)

type searchOptions struct {
	source        sourceOptions
	from, to      string
	weight        string
	cost          string
	maxExpansions int
	validate      bool
}

func (so *searchOptions) bind(cmd *cobra.Command) {
	so.source.bind(cmd)
	cmd.Flags().StringVar(&so.from, "from", "", "Source vertex")
	cmd.Flags().StringVar(&so.to, "to", "", "Target vertex")
	cmd.Flags().StringVar(&so.weight, "weight", "weight", "Edge attribute to price edges with")
	cmd.Flags().StringVar(&so.cost, "cost", "sum", "Cost model: sum (attribute as is) or ratio (attribute over previous edge's)")
	cmd.Flags().IntVar(&so.maxExpansions, "max-expansions", 0, "Stop after this many expanded vertices (0 = unlimited)")
	cmd.Flags().BoolVar(&so.validate, "validate", false, "Fail on negative, NaN or infinite edge costs")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

// run loads the graph and searches it.
func (so *searchOptions) run(cmd *cobra.Command, ro *rootOptions) (astar.Result[string], error) {
	if so.cost != "sum" && so.cost != "ratio" {
		return astar.Result[string]{}, errUnknownCostFn
	}
	if so.maxExpansions < 0 {
		return astar.Result[string]{}, astar.ErrBadMaxExpansions
	}

	g, err := so.source.load(cmd.Context())
	if err != nil {
		ro.logger.Error("loading graph failed", "error", err)
		return astar.Result[string]{}, err
	}
	ro.logger.Debug("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "directed", g.Directed())

	cg := astar.NewCoreGraph(g)
	weight := cg.WeightBy(so.weight)
	if so.cost == "ratio" {
		weight = cg.RatioWeightBy(so.weight)
	}
	opts := []astar.Option{astar.WithMaxExpansions(so.maxExpansions)}
	if so.validate {
		opts = append(opts, astar.WithCostValidation())
	}

	res, err := astar.Search(cg, so.from, so.to, weight, nil, opts...)
	if err != nil {
		ro.logger.Debug("search failed", "from", so.from, "to", so.to, "expanded", res.Expanded, "error", err)
		return res, err
	}
	ro.logger.Debug("search done", "from", so.from, "to", so.to, "expanded", res.Expanded, "hops", len(res.Edges))

	return res, nil
}

func newPathCmd(ro *rootOptions) *cobra.Command {
	so := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the least-cost path and its cost",
		Example: `  edgestar path --graph roads.yaml --from S --to T
  edgestar path --sqlite graphs.db --name roads --from S --to T --cost ratio`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := so.run(cmd, ro)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(res.Path, " -> "))
			fmt.Fprintln(cmd.OutOrStdout(), "cost:", formatCost(res.Cost))

			return nil
		},
	}
	so.bind(cmd)

	return cmd
}

func newLengthCmd(ro *rootOptions) *cobra.Command {
	so := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "length",
		Short: "Print only the cost of the least-cost path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := so.run(cmd, ro)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatCost(res.Cost))

			return nil
		},
	}
	so.bind(cmd)

	return cmd
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
