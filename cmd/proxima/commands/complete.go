package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete [file]",
		Short: "Find the pair that first joins all points into one cluster",
		Long: `Connect pairs in ascending distance order until every point is in a
single cluster. Prints the product of the X coordinates of the pair
that made the final merge, or 0 for fewer than two points.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.loadPoints(cmd, args)
			if err != nil {
				return err
			}
			res, err := a.engine().Complete(cmd.Context(), set)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Value)
			return nil
		},
	}
}
