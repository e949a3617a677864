package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-vector/vector"
)

var parseCmd = &cobra.Command{
	Use:   "parse <literal>",
	Short: "Parse a vector literal and print its canonical form",
	Long: `Parse a vector literal such as '[1, 2, 3]'. With --dim the literal must
have exactly that many dimensions; --dim -1 accepts any dimension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dim, err := cmd.Flags().GetInt32("dim")
		if err != nil {
			return fmt.Errorf("failed to read 'dim' flag: %w", err)
		}
		v, err := vector.Input(args[0], dim)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), vector.Format(v))
		return nil
	},
}

var typmodCmd = &cobra.Command{
	Use:   "typmod <token>...",
	Short: "Decode a vector(N) type modifier",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		typmod, err := vector.DecodeModifier(args)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\tvector%s\n", typmod, vector.EncodeModifier(typmod))
		return nil
	},
}

var distanceCmd = &cobra.Command{
	Use:   "distance <a> <b>",
	Short: "Print the cosine distance between two vector literals",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := vector.Parse(args[1])
		if err != nil {
			return err
		}
		metric, _ := cmd.Flags().GetString("metric")
		var d float64
		switch metric {
		case "cosine":
			d, err = vector.CosineDistance(a, b)
		case "l2":
			d, err = vector.L2Distance(a, b)
		default:
			return fmt.Errorf("unknown metric %q, want cosine or l2", metric)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	},
}

func init() {
	parseCmd.Flags().Int32("dim", vector.Unconstrained, "required dimension, -1 for any")
	distanceCmd.Flags().String("metric", "cosine", "distance metric: cosine or l2")
}
