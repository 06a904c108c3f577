package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/edgestar/graphio"
)

func newImportCmd(ro *rootOptions) *cobra.Command {
	var (
		graphFile string
		dbPath    string
		name      string
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store a YAML graph document in a SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := graphio.LoadYAMLFile(graphFile)
			if err != nil {
				return err
			}

			db, err := graphio.OpenSQLite(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := graphio.SaveSQLite(cmd.Context(), db, name, g); err != nil {
				return fmt.Errorf("saving %q: %w", name, err)
			}
			ro.logger.Info("graph imported", "name", name, "vertices", g.VertexCount(), "edges", g.EdgeCount())
			fmt.Fprintf(cmd.OutOrStdout(), "imported %q: %d vertices, %d edges\n", name, g.VertexCount(), g.EdgeCount())

			return nil
		},
	}
	cmd.Flags().StringVar(&graphFile, "graph", "", "Path to a YAML graph document")
	cmd.Flags().StringVar(&dbPath, "sqlite", "", "Path to the SQLite graph database")
	cmd.Flags().StringVar(&name, "name", "", "Name to store the graph under")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("sqlite")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
