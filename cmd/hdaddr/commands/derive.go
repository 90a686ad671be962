package commands

import (
	"fmt"

	"github.com/ModChain/hdsecp256k1/address"
	"github.com/ModChain/hdsecp256k1/ecckd"
	"github.com/spf13/cobra"
)

// NewDeriveCmd produces a DeriveCmd which lists receive addresses of an
// account key
func NewDeriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive [xpub|zpub]",
		Short: "List receive addresses below an account key",
		Args:  cobra.ExactArgs(1),
		RunE:  derive,
	}
	AddDeriveFlags(cmd)
	return cmd
}

//AddDeriveFlags adds flags to the derive command
func AddDeriveFlags(cmd *cobra.Command) {
	defaults := NewDefaultCLIConfig()
	cmd.Flags().Uint32("start", defaults.Start, "First address index")
	cmd.Flags().Uint32("count", defaults.Count, "Number of addresses")
	cmd.Flags().Int("workers", defaults.Workers, "Number of parallel derivations")
}

func derive(cmd *cobra.Command, args []string) error {
	params, err := _config.Params()
	if err != nil {
		return err
	}

	ek, err := ecckd.FromString(args[0])
	if err != nil {
		return fmt.Errorf("decoding extended key: %w", err)
	}

	scanner := address.NewScanner(params, _config.Workers, logger.WithField("prefix", "derive"))
	res, err := scanner.Scan(cmd.Context(), ek, _config.Start, _config.Count)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, d := range res {
		fmt.Fprintf(out, "%d %s %x\n", d.Index, d.Address, d.PublicKey.SerializeCompressed())
	}
	return nil
}
