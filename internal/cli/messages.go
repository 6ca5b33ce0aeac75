package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Davincible/gfpoly/internal/message"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func NewMessagesCommand() *cobra.Command {
	var (
		inputFile  string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Render a batch of polynomial records",
		Long: `Read a record count followed by that many records of the form

  <count> <reducing_polynomial> <coefficient>...

and write one line "Message #<n>: <polynomial>" per record.

Examples:
  # From a file
  gfpoly messages --input records.txt

  # From stdin to a file
  gfpoly messages --output rendered.txt < records.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if inputFile != "" {
				f, err := os.Open(inputFile)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			} else if isTerminal(in) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Enter the record count, then one record per line (Ctrl-D to finish):")
			}

			var out io.Writer = cmd.OutOrStdout()
			if outputFile != "" {
				f, err := os.OpenFile(outputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			n, err := message.NewProcessor().Process(in, out)
			slog.Debug("Processed records", "written", n)
			if err != nil {
				return fmt.Errorf("failed to process records: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Read records from file instead of stdin")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write rendered lines to file instead of stdout")

	return cmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
