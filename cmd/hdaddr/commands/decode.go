package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/ModChain/hdsecp256k1/ecckd"
	"github.com/spf13/cobra"
)

// NewDecodeCmd produces a DecodeCmd which prints the fields of an extended key
func NewDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [xkey]",
		Short: "Decode an xprv, xpub or zpub",
		Args:  cobra.ExactArgs(1),
		RunE:  decode,
	}
}

func decode(cmd *cobra.Command, args []string) error {
	ek, err := ecckd.FromString(args[0])
	if err != nil {
		return fmt.Errorf("decoding extended key: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "kind:        %s\n", ek.Kind())
	fmt.Fprintf(out, "version:     %s\n", ek.Version)
	fmt.Fprintf(out, "depth:       %d\n", ek.Depth)
	fmt.Fprintf(out, "fingerprint: %x\n", ek.Fingerprint[:])
	fmt.Fprintf(out, "child:       %08x\n", ek.ChildNumber)
	fmt.Fprintf(out, "chain code:  %x\n", ek.ChainCode[:])
	fmt.Fprintf(out, "key:         %s\n", hex.EncodeToString(ek.KeyData[:]))
	return nil
}
