package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgestar/core"
	"github.com/katalvlaran/edgestar/graphio"
)

var (
	errNoSource      = errors.New("one of --graph or --sqlite is required")
	errTwoSources    = errors.New("--graph and --sqlite are mutually exclusive")
	errMissingName   = errors.New("--sqlite requires --name")
	errUnknownCostFn = errors.New("--cost must be sum or ratio")
)

// sourceOptions selects where a graph is read from.
type sourceOptions struct {
	graphFile string
	sqlite    string
	name      string
}

func (so *sourceOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&so.graphFile, "graph", "", "Path to a YAML graph document")
	cmd.Flags().StringVar(&so.sqlite, "sqlite", "", "Path to a SQLite graph database")
	cmd.Flags().StringVar(&so.name, "name", "", "Graph name inside the SQLite database")
}

func (so *sourceOptions) validate() error {
	switch {
	case so.graphFile == "" && so.sqlite == "":
		return errNoSource
	case so.graphFile != "" && so.sqlite != "":
		return errTwoSources
	case so.sqlite != "" && so.name == "":
		return errMissingName
	}

	return nil
}

// load reads the selected graph.
func (so *sourceOptions) load(ctx context.Context) (*core.Graph, error) {
	if err := so.validate(); err != nil {
		return nil, err
	}
	if so.graphFile != "" {
		return graphio.LoadYAMLFile(so.graphFile)
	}

	db, err := graphio.OpenSQLite(ctx, so.sqlite)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	g, err := graphio.LoadSQLite(ctx, db, so.name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", so.sqlite, err)
	}

	return g, nil
}
