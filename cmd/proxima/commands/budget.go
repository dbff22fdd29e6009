package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBudgetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget [file]",
		Short: "Connect the closest pairs and multiply the largest cluster sizes",
		Long: `Consider the --edges closest pairs in ascending distance order and
connect each one; pairs already in the same cluster still use up budget.
Prints the product of the --top-k largest resulting cluster sizes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.loadPoints(cmd, args)
			if err != nil {
				return err
			}
			res, err := a.engine().Budget(cmd.Context(), set, a.cfg.Edges)
			if err != nil {
				return err
			}
			if show, _ := cmd.Flags().GetBool("sizes"); show {
				fmt.Fprintf(cmd.OutOrStdout(), "considered=%d merged=%d clusters=%d sizes=%v\n",
					res.Considered, res.Merged, res.Clusters, res.Sizes)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Product)
			return nil
		},
	}
	cmd.Flags().IntVarP(&a.cfg.Edges, "edges", "n", a.cfg.Edges, "number of closest pairs to consider")
	cmd.Flags().IntVarP(&a.cfg.TopK, "top-k", "k", a.cfg.TopK, "number of largest clusters to multiply")
	cmd.Flags().Bool("sizes", false, "also print run statistics and all cluster sizes")

	return cmd
}
