package cli

import (
	"fmt"

	"github.com/Davincible/gfpoly/internal/validation"
	"github.com/spf13/cobra"
)

// EvalResult is the JSON output of the eval command.
type EvalResult struct {
	Poly  PolyResult `json:"poly"`
	At    int        `json:"at"`
	Value int        `json:"value"`
}

func NewEvalCommand() *cobra.Command {
	var (
		modulus string
		at      string
	)

	cmd := &cobra.Command{
		Use:   "eval [poly]",
		Short: "Evaluate a polynomial at a field element",
		Long: `Evaluate a polynomial, given as a comma separated coefficient list, at a
point of the field.

Examples:
  gfpoly eval --at 2 1,0,3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := validation.ParseFieldElement(at)
			if err != nil {
				return err
			}

			f, err := resolveField(cmd, modulus)
			if err != nil {
				return err
			}

			p, err := parsePoly(args[0], f)
			if err != nil {
				return err
			}

			pr, err := polyResult(p)
			if err != nil {
				return err
			}
			result := EvalResult{Poly: pr, At: int(x), Value: int(p.Eval(x))}

			if wantJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "p(%d) = %d\n", result.At, result.Value)
			return err
		},
	}

	addModulusFlag(cmd, &modulus)
	cmd.Flags().StringVar(&at, "at", "", "Field element to evaluate at (0-255)")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}
