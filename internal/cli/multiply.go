package cli

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// MultiplyResult is the JSON output of the multiply command.
type MultiplyResult struct {
	Factors []PolyResult `json:"factors"`
	Product PolyResult   `json:"product"`
}

func NewMultiplyCommand() *cobra.Command {
	var modulus string

	cmd := &cobra.Command{
		Use:   "multiply [poly] [poly...]",
		Short: "Multiply polynomials over GF(2^8)",
		Long: `Multiply two or more polynomials. Each polynomial is a comma separated
coefficient list, lowest degree first.

Examples:
  # (1 + x)(1 + x) = 1 + x^2
  gfpoly multiply 1,1 1,1

  # Three factors as JSON
  gfpoly multiply --json 1,1 2,1 3,0,1`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveField(cmd, modulus)
			if err != nil {
				return err
			}

			result := MultiplyResult{}
			product, err := parsePoly(args[0], f)
			if err != nil {
				return fmt.Errorf("factor 1: %w", err)
			}
			first, err := polyResult(product)
			if err != nil {
				return err
			}
			result.Factors = append(result.Factors, first)

			for i, arg := range args[1:] {
				factor, err := parsePoly(arg, f)
				if err != nil {
					return fmt.Errorf("factor %d: %w", i+2, err)
				}
				fr, err := polyResult(factor)
				if err != nil {
					return err
				}
				result.Factors = append(result.Factors, fr)

				product, err = product.Mul(factor)
				if err != nil {
					return err
				}
				slog.Debug("Multiplied factor", "index", i+2, "length", product.Len())
			}

			result.Product, err = polyResult(product)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if wantJSON(cmd) {
				return writeJSON(out, result)
			}

			cyan := color.New(color.FgCyan)
			green := color.New(color.FgGreen, color.Bold)
			for i, fr := range result.Factors {
				cyan.Fprintf(out, "Factor %d: ", i+1)
				fmt.Fprintf(out, "%v  (%s)\n", fr.Coefficients, fr.Rendered)
			}
			green.Fprint(out, "Product:  ")
			fmt.Fprintf(out, "%v  (%s)\n", result.Product.Coefficients, result.Product.Rendered)
			return nil
		},
	}

	addModulusFlag(cmd, &modulus)

	return cmd
}
