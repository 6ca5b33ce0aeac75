package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func NewRenderCommand() *cobra.Command {
	var modulus string

	cmd := &cobra.Command{
		Use:   "render [coefficients...]",
		Short: "Render a polynomial in canonical form",
		Long: `Render a polynomial given its coefficients, lowest degree first.

Examples:
  # 3x^2 over the default field
  gfpoly render 0 0 3

  # Comma separated, different reducing polynomial
  gfpoly render --modulus 0x12d 1,2,3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveField(cmd, modulus)
			if err != nil {
				return err
			}

			p, err := parsePoly(strings.Join(args, " "), f)
			if err != nil {
				return err
			}

			result, err := polyResult(p)
			if err != nil {
				return err
			}

			if wantJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Rendered)
			return err
		},
	}

	addModulusFlag(cmd, &modulus)

	return cmd
}
