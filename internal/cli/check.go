package cli

import (
	"errors"
	"fmt"

	"github.com/Davincible/gfpoly/internal/validation"
	"github.com/Davincible/gfpoly/pkg/gf256"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CheckResult reports whether one reducing polynomial yields a valid field.
type CheckResult struct {
	ReducingPolynomial int    `json:"reducing_polynomial"`
	Valid              bool   `json:"valid"`
	Reason             string `json:"reason,omitempty"`
}

func NewCheckCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "check [polynomial...]",
		Short: "Check reducing polynomials",
		Long: `Check whether reducing polynomials produce a field whose powers of 2 cycle
through every nonzero byte with period 255. Values that fail are irreducible
but not primitive (e.g. 283, the AES polynomial) or reducible.

Examples:
  gfpoly check 285 283
  gfpoly check --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return listPrimitive(cmd)
			}
			if len(args) == 0 {
				return fmt.Errorf("give at least one polynomial or --all")
			}

			results := make([]CheckResult, 0, len(args))
			for _, arg := range args {
				poly, err := validation.ParseReducingPolynomial(arg)
				if err != nil {
					return err
				}
				results = append(results, checkPolynomial(poly))
			}

			out := cmd.OutOrStdout()
			if wantJSON(cmd) {
				if err := writeJSON(out, results); err != nil {
					return err
				}
			} else {
				green := color.New(color.FgGreen, color.Bold)
				red := color.New(color.FgRed, color.Bold)
				for _, r := range results {
					if r.Valid {
						green.Fprintf(out, "✓ %d (0x%x) is a valid reducing polynomial\n",
							r.ReducingPolynomial, r.ReducingPolynomial)
					} else {
						red.Fprintf(out, "✗ %d (0x%x): %s\n",
							r.ReducingPolynomial, r.ReducingPolynomial, r.Reason)
					}
				}
			}

			rejected := 0
			for _, r := range results {
				if !r.Valid {
					rejected++
				}
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d polynomials rejected", rejected, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every valid reducing polynomial")

	return cmd
}

func checkPolynomial(poly int) CheckResult {
	_, err := gf256.NewField(poly)
	if err == nil {
		return CheckResult{ReducingPolynomial: poly, Valid: true}
	}

	reason := err.Error()
	var de *gf256.DomainError
	if errors.As(err, &de) {
		reason = de.Reason
	}
	return CheckResult{ReducingPolynomial: poly, Reason: reason}
}

func listPrimitive(cmd *cobra.Command) error {
	polys := gf256.PrimitivePolynomials()

	out := cmd.OutOrStdout()
	if wantJSON(cmd) {
		return writeJSON(out, polys)
	}

	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(out, "%d valid reducing polynomials:\n", len(polys))
	for _, p := range polys {
		fmt.Fprintf(out, "  %d (0x%x)\n", p, p)
	}
	return nil
}
