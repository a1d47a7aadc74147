package tool

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elijahdou/fastulid/pkg/log"
	"github.com/elijahdou/fastulid/pkg/ulid"
)

// NewValidateCommand constructs the `validate` command. It reads one
// candidate per line from a file argument or stdin, skips lines that are
// not 26 characters (logs, prompts), and exits non-zero if any candidate
// fails to parse.
func NewValidateCommand(logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate ULIDs read line-by-line from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			out := cmd.OutOrStdout()
			valid, total := 0, 0
			scanner := bufio.NewScanner(in)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if len(line) != ulid.EncodedSize {
					continue
				}
				total++
				if _, err := ulid.Parse(line); err != nil {
					fmt.Fprintf(out, "%s -> invalid: %v\n", line, err)
					continue
				}
				valid++
			}
			if err := scanner.Err(); err != nil {
				return err
			}

			fmt.Fprintf(out, "%d/%d valid\n", valid, total)
			logger.Debug("validated input", log.Int("valid", valid), log.Int("total", total))
			if valid != total {
				return fmt.Errorf("%d of %d identifiers invalid", total-valid, total)
			}
			return nil
		},
	}
}
