package tool

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/elijahdou/fastulid/pkg/ulid"
)

// NewInspectCommand constructs the `inspect` command: it decodes one
// identifier and prints its components.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <ulid>",
		Short: "Decode a ULID and print its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ulid.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "canonical: %s\n", id)
			fmt.Fprintf(out, "timestamp: %d (%s)\n", id.Timestamp(), id.Time().UTC().Format(time.RFC3339Nano))
			fmt.Fprintf(out, "rand_hi:   0x%04x\n", id.RandHi())
			fmt.Fprintf(out, "rand_lo:   0x%016x\n", id.RandLo())
			fmt.Fprintf(out, "bytes:     %s\n", hex.EncodeToString(id.Bytes()))
			fmt.Fprintf(out, "uuid:      %s\n", id.UUID())
			return nil
		},
	}
}
