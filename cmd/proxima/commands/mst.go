package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/proxima/connectivity"
)

func newMSTCommand(a *app) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "mst [file]",
		Short: "Print the spanning tree edge count and total squared weight",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if method != connectivity.MethodKruskal && method != connectivity.MethodPrim {
				return fmt.Errorf("%w: method must be %s or %s, got %q",
					ErrInvalidConfig, connectivity.MethodKruskal, connectivity.MethodPrim, method)
			}
			set, err := a.loadPoints(cmd, args)
			if err != nil {
				return err
			}
			tree, weight, err := a.engine(connectivity.WithMethod(method)).SpanningTree(cmd.Context(), set)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "edges=%d weight=%d\n", len(tree), weight)
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", connectivity.MethodKruskal, "spanning tree algorithm (kruskal, prim)")

	return cmd
}
