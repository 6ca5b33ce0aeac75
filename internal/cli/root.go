package cli

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the gfpoly command tree. level is raised to debug
// when --verbose is given.
func NewRootCommand(version string, level *slog.LevelVar) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gfpoly",
		Short: "Polynomial arithmetic over GF(2^8)",
		Long: `gfpoly builds GF(2^8) power and logarithm tables from a reducing polynomial
and multiplies, evaluates and renders polynomials with coefficients in that field.

Coefficients are written lowest degree first. A rendered polynomial shows each
nonzero coefficient as a power of the generator a, e.g. "1 + a^25 x^2".

The default reducing polynomial is 285 (x^8 + x^4 + x^3 + x^2 + 1).`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		settings := loadSettings()
		withSettings(cmd, settings)

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && level != nil {
			level.Set(slog.LevelDebug)
		}
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || !settings.UI.UseColor {
			color.NoColor = true
		}
	}

	rootCmd.AddCommand(
		NewMessagesCommand(),
		NewRenderCommand(),
		NewMultiplyCommand(),
		NewEvalCommand(),
		NewTableCommand(),
		NewCheckCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	return rootCmd
}
