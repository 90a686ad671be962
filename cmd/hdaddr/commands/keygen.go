package commands

import (
	"fmt"

	secp256k1 "github.com/ModChain/hdsecp256k1"
	"github.com/ModChain/hdsecp256k1/address"
	"github.com/spf13/cobra"
)

// NewKeygenCmd produces a KeygenCmd which creates a key pair
func NewKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Create new key pair",
		Args:  cobra.NoArgs,
		RunE:  keygen,
	}

	AddKeygenFlags(cmd)

	return cmd
}

//AddKeygenFlags adds flags to the keygen command
func AddKeygenFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("uncompressed", false, "Print the public key in the 65-byte form")
}

func keygen(cmd *cobra.Command, args []string) error {
	params, err := _config.Params()
	if err != nil {
		return err
	}

	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}
	pub := key.PubKey()

	p2wpkh, err := address.P2WPKH(pub, params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "private: %x\n", key.Serialize())
	fmt.Fprintf(out, "public:  %x\n", pub.Serialize(!_config.Uncompressed))
	fmt.Fprintf(out, "p2pkh:   %s\n", address.P2PKH(pub, params))
	fmt.Fprintf(out, "p2wpkh:  %s\n", p2wpkh)

	logger.WithField("prefix", "keygen").Debug("Generated key pair")
	return nil
}
